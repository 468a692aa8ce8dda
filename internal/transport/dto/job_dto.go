// internal/transport/dto/job_dto.go
package dto

import (
	"time"

	"agenda-modista/internal/models"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job.
type CreateJobRequest struct {
	JobName               string              `json:"nombre_trabajo" validate:"required"`
	ClientName            string              `json:"nombre_cliente" validate:"required"`
	ClientPhone           string              `json:"telefono_cliente"`
	PieceCount            int                 `json:"cantidad_piezas" validate:"omitempty,gt=0"`
	ReceivedDate          *models.Date        `json:"fecha_recepcion,omitempty"`
	EstimatedDeliveryDate *models.Date        `json:"fecha_entrega_estimada,omitempty"`
	ActualDeliveryDate    *models.Date        `json:"fecha_entrega,omitempty"`
	TotalValue            float64             `json:"valor_total" validate:"gte=0"`
	DepositReceived       float64             `json:"abono_recibido" validate:"gte=0"`
	Status                models.JobStatus    `json:"estado_trabajo"`
	Detail                string              `json:"detalle_general"`
	Measurements          models.Measurements `json:"medidas"`
	ImageURL              string              `json:"imagen_url"`
}

// UpdateJobRequest defines a partial update: nil fields keep their stored
// value. The ID comes from the URL path, never from the body.
type UpdateJobRequest struct {
	ID                    int64                `json:"-"`
	JobName               *string              `json:"nombre_trabajo,omitempty"`
	ClientName            *string              `json:"nombre_cliente,omitempty"`
	ClientPhone           *string              `json:"telefono_cliente,omitempty"`
	PieceCount            *int                 `json:"cantidad_piezas,omitempty" validate:"omitempty,gt=0"`
	ReceivedDate          *models.Date         `json:"fecha_recepcion,omitempty"`
	EstimatedDeliveryDate *models.Date         `json:"fecha_entrega_estimada,omitempty"`
	ActualDeliveryDate    *models.Date         `json:"fecha_entrega,omitempty"`
	TotalValue            *float64             `json:"valor_total,omitempty" validate:"omitempty,gte=0"`
	DepositReceived       *float64             `json:"abono_recibido,omitempty" validate:"omitempty,gte=0"`
	Status                *models.JobStatus    `json:"estado_trabajo,omitempty"`
	Detail                *string              `json:"detalle_general,omitempty"`
	Measurements          *models.Measurements `json:"medidas,omitempty"`
	ImageURL              *string              `json:"imagen_url,omitempty"`
}

// MoveStatusRequest moves a job to another workflow column (the drag-and-drop
// target of the board, reduced to a single status change).
type MoveStatusRequest struct {
	ID     int64            `json:"-"`
	Status models.JobStatus `json:"estado_trabajo" validate:"required"`
}

// DeleteJobRequest carries the id plus the destructive-action confirmation
// the UI boundary must obtain before calling delete.
type DeleteJobRequest struct {
	ID      int64 `json:"-"`
	Confirm bool  `json:"-"`
}

// JobResponse defines the standard job data returned to the client, derived
// fields included.
type JobResponse struct {
	ID                    int64               `json:"id"`
	JobName               string              `json:"nombre_trabajo"`
	ClientName            string              `json:"nombre_cliente"`
	ClientPhone           string              `json:"telefono_cliente"`
	PieceCount            int                 `json:"cantidad_piezas"`
	ReceivedDate          *models.Date        `json:"fecha_recepcion,omitempty"`
	EstimatedDeliveryDate *models.Date        `json:"fecha_entrega_estimada,omitempty"`
	ActualDeliveryDate    *models.Date        `json:"fecha_entrega,omitempty"`
	TotalValue            float64             `json:"valor_total"`
	DepositReceived       float64             `json:"abono_recibido"`
	Status                string              `json:"estado_trabajo"`
	Detail                string              `json:"detalle_general"`
	Measurements          models.Measurements `json:"medidas"`
	ImageURL              string              `json:"imagen_url,omitempty"`
	PendingBalance        float64             `json:"valor_pendiente"`
	PaymentStatus         string              `json:"estado_pago"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// BoardResponse is the kanban partition: three disjoint columns, each in
// chronological order.
type BoardResponse struct {
	ToDo       []JobResponse `json:"por_hacer"`
	InProgress []JobResponse `json:"en_proceso"`
	Done       []JobResponse `json:"terminado"`
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// --- Job Status Enum ---
// The workflow columns of the dashboard. Values are the Spanish labels the
// API has always exposed, so they double as wire values.
type JobStatus string

const (
	JobStatusToDo       JobStatus = "Por Hacer"
	JobStatusInProgress JobStatus = "En Proceso"
	JobStatusDone       JobStatus = "Terminado"
)

// Valid reports whether the status is one of the three workflow stages.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusToDo, JobStatusInProgress, JobStatusDone:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for JobStatus
func (s *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for JobStatus
func (s JobStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Payment Status Enum ---
// Derived classification; never persisted, always recomputed from
// TotalValue/DepositReceived.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "Falta por Pagar"
	PaymentStatusPartial PaymentStatus = "Abono"
	PaymentStatusPaid    PaymentStatus = "Pagado"
)

// --- Date ---
// Date is a calendar date marshalled as "YYYY-MM-DD", matching the date
// inputs of the dashboard forms.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON implements json.Unmarshaler. Accepts "YYYY-MM-DD" and, for
// tolerance with older clients, full RFC 3339 timestamps.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
		}
	}
	*d = Date{Time: t}
	return nil
}

// Scan implements the sql.Scanner interface for Date
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = Date{Time: v}
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fmt.Errorf("failed to scan Date: %w", err)
		}
		*d = Date{Time: t}
		return nil
	default:
		return fmt.Errorf("failed to scan Date: unsupported type %T", value)
	}
}

// Value implements the driver.Valuer interface for Date
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// --- Measurements ---
// Measurement is a single named measurement ("cintura": "72cm"). Measurements
// keep insertion order, which is the display order in the detail view; a map
// would lose it, so the set is a slice serialized as a JSON array.
type Measurement struct {
	Name  string `json:"nombre"`
	Value string `json:"valor"`
}

type Measurements []Measurement

// Validate checks that every measurement name is non-empty after trimming and
// that names are unique.
func (m Measurements) Validate() error {
	seen := make(map[string]struct{}, len(m))
	for _, entry := range m {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return fmt.Errorf("measurement name must not be blank")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate measurement name: %s", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Scan implements the sql.Scanner interface for Measurements (JSONB column)
func (m *Measurements) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to scan Measurements: unsupported type %T", value)
	}
	return json.Unmarshal(data, m)
}

// Value implements the driver.Valuer interface for Measurements
func (m Measurements) Value() (driver.Value, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m)
}

// Job represents a tailoring order tracked through the workflow.
// PendingBalance and PaymentStatus are derived fields: they are never stored
// and are recomputed from TotalValue/DepositReceived on every read and write.
type Job struct {
	ID                    int64        `json:"id" db:"id"`
	JobName               string       `json:"nombre_trabajo" db:"job_name"`
	ClientName            string       `json:"nombre_cliente" db:"client_name"`
	ClientPhone           string       `json:"telefono_cliente" db:"client_phone"`
	PieceCount            int          `json:"cantidad_piezas" db:"piece_count"`
	ReceivedDate          *Date        `json:"fecha_recepcion,omitempty" db:"received_date"`
	EstimatedDeliveryDate *Date        `json:"fecha_entrega_estimada,omitempty" db:"estimated_delivery_date"`
	ActualDeliveryDate    *Date        `json:"fecha_entrega,omitempty" db:"actual_delivery_date"`
	TotalValue            float64      `json:"valor_total" db:"total_value"`
	DepositReceived       float64      `json:"abono_recibido" db:"deposit_received"`
	Status                JobStatus    `json:"estado_trabajo" db:"status"`
	Detail                string       `json:"detalle_general" db:"detail"`
	Measurements          Measurements `json:"medidas" db:"measurements"`
	ImageURL              string       `json:"imagen_url,omitempty" db:"image_url"`

	PendingBalance float64       `json:"valor_pendiente" db:"-"`
	PaymentStatus  PaymentStatus `json:"estado_pago" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

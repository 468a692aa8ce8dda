package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda-modista/internal/api/handlers"
	"agenda-modista/internal/api/routes"
	"agenda-modista/internal/finance"
	"agenda-modista/internal/models"
	"agenda-modista/internal/services"
	"agenda-modista/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(service services.JobService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	apiV1 := router.Group("/api/v1")

	validate := validator.New()
	routes.RegisterJobRoutes(apiV1, handlers.NewJobHandler(service, validate))
	routes.RegisterFinanceRoutes(apiV1, handlers.NewFinanceHandler(service))
	return router
}

func TestCreateJob_Created(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	created := &models.Job{
		ID: 1, JobName: "Vestido", ClientName: "María", PieceCount: 1,
		TotalValue: 100, DepositReceived: 40, Status: models.JobStatusToDo,
		PendingBalance: 60, PaymentStatus: models.PaymentStatusPartial,
	}
	mockService.On("Create", mock.Anything, mock.AnythingOfType("*dto.CreateJobRequest")).
		Return(created, nil).Once()

	body := `{"nombre_trabajo":"Vestido","nombre_cliente":"María","valor_total":100,"abono_recibido":40}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/trabajos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 60.0, resp.PendingBalance)
	assert.Equal(t, string(models.PaymentStatusPartial), resp.PaymentStatus)
	mockService.AssertExpectations(t)
}

func TestCreateJob_MissingRequiredFields(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	body := `{"nombre_trabajo":"Vestido"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/trabajos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestGetJobByID_NotFound(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	mockService.On("GetByID", mock.Anything, int64(99)).
		Return(nil, fmt.Errorf("%w: job 99", services.ErrNotFound)).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/trabajos/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetJobByID_MalformedID(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/trabajos/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetByID")
}

func TestUpdateJob_PersistenceErrorMapsToBadGateway(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	mockService.On("Update", mock.Anything, mock.AnythingOfType("*dto.UpdateJobRequest")).
		Return(nil, fmt.Errorf("%w: updating job 1", services.ErrPersistence)).Once()

	body := `{"abono_recibido":50}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/trabajos/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestMoveJobStatus(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	moved := &models.Job{ID: 1, JobName: "Vestido", ClientName: "María", PieceCount: 1,
		Status: models.JobStatusDone, PaymentStatus: models.PaymentStatusPaid}
	mockService.On("MoveStatus", mock.Anything, mock.MatchedBy(func(req *dto.MoveStatusRequest) bool {
		return req.ID == 1 && req.Status == models.JobStatusDone
	})).Return(moved, nil).Once()

	body := `{"estado_trabajo":"Terminado"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/trabajos/1/estado", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(models.JobStatusDone), resp.Status)
	mockService.AssertExpectations(t)
}

func TestDeleteJob_RequiresConfirmQuery(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/trabajos/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Delete")
}

func TestDeleteJob_Confirmed(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	mockService.On("Delete", mock.Anything, mock.MatchedBy(func(req *dto.DeleteJobRequest) bool {
		return req.ID == 1 && req.Confirm
	})).Return(nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/trabajos/1?confirm=true", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestDeleteJob_SecondDeleteNotFound(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	mockService.On("Delete", mock.Anything, mock.AnythingOfType("*dto.DeleteJobRequest")).
		Return(fmt.Errorf("%w: job 1", services.ErrNotFound)).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/trabajos/1?confirm=true", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBoard(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	board := services.Board{
		ToDo:       []models.Job{{ID: 1, JobName: "A", Status: models.JobStatusToDo}},
		InProgress: []models.Job{},
		Done:       []models.Job{{ID: 2, JobName: "B", Status: models.JobStatusDone}},
	}
	mockService.On("Board", mock.Anything).Return(board).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/trabajos/tablero", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BoardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.ToDo, 1)
	assert.Empty(t, resp.InProgress)
	require.Len(t, resp.Done, 1)
	assert.Equal(t, int64(2), resp.Done[0].ID)
}

func TestGetFinanceSummary_DefaultsToMonthly(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	summary := &finance.Summary{
		Buckets: []finance.Bucket{
			{Year: 2024, Period: 1, Label: "2024-1", TotalValue: 300, CollectedValue: 150, PendingValue: 150},
		},
		TotalValue: 300, CollectedValue: 150, PendingValue: 150,
	}
	mockService.On("FinanceSummary", mock.Anything, finance.GranularityMonthly).
		Return(summary, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/finanzas", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.FinanceSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mensual", resp.Period)
	require.Len(t, resp.Buckets, 1)
	assert.Equal(t, "2024-1", resp.Buckets[0].Period)
	assert.Equal(t, 150.0, resp.Totals.CollectedValue)
	mockService.AssertExpectations(t)
}

func TestGetFinanceSummary_InvalidPeriod(t *testing.T) {
	mockService := new(MockJobService)
	router := setupRouter(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/finanzas?periodo=anual", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "FinanceSummary")
}

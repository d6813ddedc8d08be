package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vetpoint/internal/adapter/http/handlers/mocks"
	"vetpoint/internal/domain/entities"
	"vetpoint/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreatePaymentByAppointmentDetailID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/payments/:appointment_detail_id", h.CreatePaymentByAppointmentDetailID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/42", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), "42", entities.PaymentMethod("credit-card"), gomock.Any()).
			Return(entities.Payment{}, usecase.ErrInvalidPaymentMethod)

		r := gin.New()
		r.POST("/v1/payments/:appointment_detail_id", h.CreatePaymentByAppointmentDetailID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/42", bytes.NewBufferString(`{"method":"credit-card"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("appointment not processed maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), "42", entities.PaymentMethodCash, gomock.Any()).
			Return(entities.Payment{}, usecase.ErrAppointmentNotProcessed)

		r := gin.New()
		r.POST("/v1/payments/:appointment_detail_id", h.CreatePaymentByAppointmentDetailID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/42", bytes.NewBufferString(`{"method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cash success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), "42", entities.PaymentMethodCash, gomock.Any()).Return(entities.Payment{
			ID:                  "pay-1",
			AppointmentDetailID: "42",
			Method:              entities.PaymentMethodCash,
			Status:              entities.PaymentStatusPaid,
			Date:                time.Now(),
		}, nil)

		r := gin.New()
		r.POST("/v1/payments/:appointment_detail_id", h.CreatePaymentByAppointmentDetailID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/42", bytes.NewBufferString(`{"method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "PAID" || resp["method"] != "cash" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestPaymentHandler_GetPaymentByAppointmentDetailID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		uc.EXPECT().LatestByAppointmentDetailID(gomock.Any(), "42").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		r := gin.New()
		r.GET("/v1/payments/:appointment_detail_id", h.GetPaymentByAppointmentDetailID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns the latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		uc.EXPECT().LatestByAppointmentDetailID(gomock.Any(), "42").Return(entities.Payment{
			ID:                  "mp-123",
			AppointmentDetailID: "42",
			Method:              entities.PaymentMethodBankTransfer,
			Status:              entities.PaymentStatusPending,
		}, nil)

		r := gin.New()
		r.GET("/v1/payments/:appointment_detail_id", h.GetPaymentByAppointmentDetailID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "mp-123" || resp["status"] != "PENDING" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestPaymentHandler_GatewayReturn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(nil, rec)

		rec.EXPECT().Reconcile(gomock.Any(), usecase.GatewayReturnParams{
			OrderCode: "42",
			Status:    "PAID",
			Code:      "00",
		}, gomock.Any()).Return(usecase.ReconcileResult{
			State:         usecase.ReconcileCompleted,
			Message:       "Payment confirmed. The appointment is marked as paid.",
			RedirectDelay: 3 * time.Second,
			Payment:       entities.Payment{ID: "mp-123", Status: entities.PaymentStatusPaid},
		}, nil)

		r := gin.New()
		r.GET("/v1/payments/gateway/return", h.GatewayReturn)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/gateway/return?orderCode=42&status=PAID&code=00", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["state"] != "COMPLETED" || resp["redirect_delay_ms"] != float64(3000) {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("pending maps to 202", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(nil, rec)

		rec.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.ReconcileResult{
			State:   usecase.ReconcilePending,
			Message: "Payment is still being processed.",
		}, nil)

		r := gin.New()
		r.GET("/v1/payments/gateway/return", h.GatewayReturn)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/gateway/return?orderCode=42&status=PAID&code=00", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("validation states map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(nil, rec)

		rec.EXPECT().Reconcile(gomock.Any(), usecase.GatewayReturnParams{
			OrderCode: "42",
			Status:    "PAID",
			Code:      "01",
		}, gomock.Any()).Return(usecase.ReconcileResult{
			State:         usecase.ReconcileInvalidResultCode,
			Message:       "The payment was not confirmed by the gateway.",
			RedirectDelay: 5 * time.Second,
		}, nil)

		r := gin.New()
		r.GET("/v1/payments/gateway/return", h.GatewayReturn)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/gateway/return?orderCode=42&status=PAID&code=01", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("commit failure maps to 500 with contact-administrator message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(nil, rec)

		rec.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.ReconcileResult{
			State:         usecase.ReconcileCommitFailed,
			Message:       "Payment confirmation failed. Please contact an administrator.",
			RedirectDelay: 5 * time.Second,
		}, usecase.ErrPaymentNotFound)

		r := gin.New()
		r.GET("/v1/payments/gateway/return", h.GatewayReturn)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/gateway/return?orderCode=42&status=PAID&code=00", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["message"] != "Payment confirmation failed. Please contact an administrator." {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

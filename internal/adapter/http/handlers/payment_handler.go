package handlers

import (
	"errors"
	"log"
	"net/http"

	request "vetpoint/internal/adapter/http/dto/request"
	response "vetpoint/internal/adapter/http/dto/response"
	"vetpoint/internal/domain/workflow"
	"vetpoint/internal/usecase"
	"vetpoint/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payments, including the
// gateway return endpoint that drives reconciliation.

type PaymentHandler struct {
	payments       usecase.IPaymentUseCase
	reconciliation usecase.IReconciliationUseCase
}

func NewPaymentHandler(payments usecase.IPaymentUseCase, reconciliation usecase.IReconciliationUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments, reconciliation: reconciliation}
}

// CreatePaymentByAppointmentDetailID initiates a payment for a PROCESSED
// appointment.
func (h *PaymentHandler) CreatePaymentByAppointmentDetailID(c *gin.Context) {
	detailID := c.Param("appointment_detail_id")
	log.Printf("[payment][handler] create start appointment_detail_id=%s", detailID)

	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.payments.Create(c.Request.Context(), detailID, payload.ResolveMethod(), payload.ProviderPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed appointment_detail_id=%s err=%v", detailID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success appointment_detail_id=%s payment_id=%s status=%s", detailID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetPaymentByAppointmentDetailID returns the latest payment for an
// appointment detail.
func (h *PaymentHandler) GetPaymentByAppointmentDetailID(c *gin.Context) {
	detailID := c.Param("appointment_detail_id")

	latest, err := h.payments.LatestByAppointmentDetailID(c.Request.Context(), detailID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(latest))
}

// GatewayReturn is the redirect target the payment gateway sends the
// customer back to. It validates the query parameters and runs the
// reconciliation flow; the response tells the page what to display and
// when to redirect back to the appointment list.
func (h *PaymentHandler) GatewayReturn(c *gin.Context) {
	params := usecase.GatewayReturnParams{
		OrderCode: c.Query("orderCode"),
		Status:    c.Query("status"),
		Code:      c.Query("code"),
	}

	var session workflow.PaymentSession
	result, err := h.reconciliation.Reconcile(c.Request.Context(), params, &session)
	if err != nil {
		log.Printf("[payment][handler] gateway return failed order_code=%s state=%s err=%v", params.OrderCode, result.State, err)
	}

	c.JSON(gatewayReturnHTTPStatus(result.State), response.FromReconcileResult(result))
}

func gatewayReturnHTTPStatus(state usecase.ReconcileState) int {
	switch state {
	case usecase.ReconcileCompleted:
		return http.StatusOK
	case usecase.ReconcilePending:
		return http.StatusAccepted
	case usecase.ReconcileInvalidResultCode, usecase.ReconcileMissingOrderCode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDetailID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrInvalidPaymentStatus),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotProcessed):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_PROCESSED", "Appointment has not completed the clinical examination", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

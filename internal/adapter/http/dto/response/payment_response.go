package response

import (
	"time"

	"vetpoint/internal/domain/entities"
	"vetpoint/internal/usecase"
)

type PaymentResponse struct {
	ID                  string    `json:"id"`
	AppointmentDetailID string    `json:"appointment_detail_id"`
	Method              string    `json:"method"`
	Status              string    `json:"status"`
	Amount              float64   `json:"amount,omitempty"`
	Date                time.Time `json:"date"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                  p.ID,
		AppointmentDetailID: p.AppointmentDetailID,
		Method:              string(p.Method),
		Status:              string(p.Status),
		Amount:              p.Amount,
		Date:                p.Date,
		ProviderPayloadRaw:  string(p.ProviderPayloadRaw),
		ProviderPayload:     p.ProviderPayload,
	}
}

// GatewayReturnResponse is what the gateway return page renders before
// redirecting back to the appointment list.
type GatewayReturnResponse struct {
	State           string           `json:"state"`
	Message         string           `json:"message"`
	RedirectDelayMS int64            `json:"redirect_delay_ms"`
	Payment         *PaymentResponse `json:"payment,omitempty"`
}

func FromReconcileResult(r usecase.ReconcileResult) GatewayReturnResponse {
	resp := GatewayReturnResponse{
		State:           string(r.State),
		Message:         r.Message,
		RedirectDelayMS: r.RedirectDelay.Milliseconds(),
	}
	if r.Payment.ID != "" {
		p := FromPayment(r.Payment)
		resp.Payment = &p
	}
	return resp
}

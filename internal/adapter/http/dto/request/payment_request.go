package request

import (
	"encoding/json"
	"strings"

	"vetpoint/internal/domain/entities"
)

// CreatePaymentRequest initiates a payment for a PROCESSED appointment.
// ProviderPayload is passed through to the gateway untouched for
// bank-transfer payments and ignored for cash.
type CreatePaymentRequest struct {
	Method          string          `json:"method" binding:"required"`
	ProviderPayload json.RawMessage `json:"provider_payload"`
}

func (r CreatePaymentRequest) ResolveMethod() entities.PaymentMethod {
	return entities.PaymentMethod(strings.TrimSpace(strings.ToLower(r.Method)))
}

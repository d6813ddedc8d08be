package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// The literal "PAID" doubles as the status value carried by the gateway
// redirect, so the strings here are part of the external contract.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// PaymentMethod is how the customer settles the appointment.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank-transfer"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodBankTransfer
}

// Payment is the payment record persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (appointment_detail_id-index): appointment_detail_id
//
// Gateway payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging. (We persist both because provider schemas vary.)

type Payment struct {
	ID                  string        `json:"id"`
	AppointmentDetailID string        `json:"appointment_detail_id"`
	Method              PaymentMethod `json:"method"`
	Status              PaymentStatus `json:"status"`
	Amount              float64       `json:"amount"`
	Date                time.Time     `json:"date"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

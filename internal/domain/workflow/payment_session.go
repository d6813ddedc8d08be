package workflow

import "vetpoint/internal/domain/entities"

// PaymentSession holds the state shared between the workflow and the
// external payment gateway round-trip: the in-progress payment identifier,
// the chosen method, and the "new pending payment" flag the return flow
// checks on re-entry.
//
// Session-scoped, one appointment at a time. A new appointment seed must
// clear it so a previous appointment's payment never leaks into a new one.
type PaymentSession struct {
	PaymentID     string
	PaymentMethod entities.PaymentMethod
	Loading       bool
	Err           error
	Pending       bool
}

// Begin records a freshly initiated payment and raises the pending flag.
func (s *PaymentSession) Begin(paymentID string, method entities.PaymentMethod) {
	s.PaymentID = paymentID
	s.PaymentMethod = method
	s.Pending = true
	s.Err = nil
}

// Clear drops all payment state (appointment completed or abandoned).
func (s *PaymentSession) Clear() {
	*s = PaymentSession{}
}

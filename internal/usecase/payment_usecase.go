package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vetpoint/internal/domain/entities"
	"vetpoint/internal/domain/workflow"
	"vetpoint/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentID           = errors.New("invalid payment id")
	ErrInvalidPaymentMethod       = errors.New("invalid payment method")
	ErrInvalidPaymentAmount       = errors.New("invalid payment amount")
	ErrInvalidPaymentStatus       = errors.New("invalid payment status")
	ErrAppointmentNotProcessed    = errors.New("appointment not processed")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase encapsulates payment creation and settlement.
//
// A payment is created while the appointment sits at PROCESSED. Cash is
// confirmed in-app, settles immediately and moves the appointment to PAID
// in the same call; bank-transfer goes through the external gateway and
// settles via the gateway return flow.

type IPaymentUseCase interface {
	Create(ctx context.Context, detailID string, method entities.PaymentMethod, providerPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	LatestByAppointmentDetailID(ctx context.Context, detailID string) (entities.Payment, error)
	FindPendingByAppointmentDetailID(ctx context.Context, detailID string) (entities.Payment, bool, error)
	UpdateStatus(ctx context.Context, paymentID string, status entities.PaymentStatus) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo            interfaces.IPaymentRepository
	appointmentRepo interfaces.IAppointmentRepository
	gateway         interfaces.IPaymentGateway
	transitions     ITransitionUseCase
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, appointmentRepo interfaces.IAppointmentRepository, gateway interfaces.IPaymentGateway, transitions ITransitionUseCase) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, appointmentRepo: appointmentRepo, gateway: gateway, transitions: transitions}
}

func (u *PaymentUseCase) Create(ctx context.Context, detailID string, method entities.PaymentMethod, providerPayload json.RawMessage) (entities.Payment, error) {
	log.Printf("[payment][usecase] create start appointment_detail_id=%q method=%s", detailID, method)
	detailID = strings.TrimSpace(detailID)
	if detailID == "" {
		return entities.Payment{}, ErrInvalidDetailID
	}
	if !method.Valid() {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}

	appt, err := u.appointmentRepo.GetByAppointmentDetailID(ctx, detailID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading appointment appointment_detail_id=%s err=%v", detailID, err)
		return entities.Payment{}, err
	}
	if appt.ID == "" {
		return entities.Payment{}, ErrAppointmentNotFound
	}
	if appt.Status != entities.AppointmentStatusProcessed {
		log.Printf("[payment][usecase] appointment not processed appointment_detail_id=%s status=%s", detailID, appt.Status)
		return entities.Payment{}, ErrAppointmentNotProcessed
	}

	now := time.Now().UTC()
	p := entities.Payment{
		AppointmentDetailID: detailID,
		Method:              method,
		Date:                now,
	}

	switch method {
	case entities.PaymentMethodCash:
		// In-app confirmation: no provider round-trip, settled on the spot.
		p.ID = uuid.NewString()
		p.Status = entities.PaymentStatusPaid
	case entities.PaymentMethodBankTransfer:
		providerID, providerStatus, providerResp, err := u.createViaGateway(ctx, detailID, providerPayload)
		if err != nil {
			return entities.Payment{}, err
		}
		p.ID = providerID
		p.Status = entities.PaymentStatusPending
		p.ProviderPayloadRaw = providerResp
		var parsed map[string]interface{}
		if err := json.Unmarshal(providerResp, &parsed); err == nil {
			p.ProviderPayload = parsed
		}
		log.Printf("[payment][usecase] gateway success appointment_detail_id=%s provider_payment_id=%s provider_status=%s", detailID, providerID, providerStatus)
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed appointment_detail_id=%s payment_id=%s err=%v", detailID, p.ID, err)
		return entities.Payment{}, err
	}

	attached, err := u.appointmentRepo.UpdatePaymentRef(ctx, appt.ID, entities.PaymentRef{
		PaymentID:     created.ID,
		PaymentMethod: created.Method,
		PaymentStatus: created.Status,
	})
	if err != nil {
		log.Printf("[payment][usecase] attach payment ref failed appointment_id=%s payment_id=%s err=%v", appt.ID, created.ID, err)
		return entities.Payment{}, err
	}

	if method == entities.PaymentMethodCash {
		// Cash is settled the moment staff confirms it, so the appointment
		// advances to PAID here rather than waiting on a gateway return.
		var form workflow.FormState
		form.Seed(attached)
		if _, err := u.transitions.Submit(ctx, workflow.RoleStaff, entities.AppointmentStatusPaid, &form); err != nil {
			log.Printf("[payment][usecase] cash status commit failed appointment_id=%s payment_id=%s err=%v", appt.ID, created.ID, err)
			return entities.Payment{}, err
		}
	}

	log.Printf("[payment][usecase] create success appointment_detail_id=%s payment_id=%s status=%s", detailID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) createViaGateway(ctx context.Context, detailID string, providerPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if u.gateway == nil {
		return "", "", nil, errors.New("payment gateway not configured")
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		providerPayload = json.RawMessage("{}")
	}

	// external_reference carries the appointment detail id so the gateway
	// redirect can be reconciled back to this appointment.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = detailID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Appointment %s", detailID)
		}
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed appointment_detail_id=%s err=%v", detailID, err)
		if isGatewayUnauthorized(err) {
			return "", "", nil, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return "", "", nil, ErrPaymentGatewayBadRequest
		}
		return "", "", nil, err
	}
	return providerID, providerStatus, providerResp, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) LatestByAppointmentDetailID(ctx context.Context, detailID string) (entities.Payment, error) {
	detailID = strings.TrimSpace(detailID)
	if detailID == "" {
		return entities.Payment{}, ErrInvalidDetailID
	}

	payments, err := u.repo.ListByAppointmentDetailID(ctx, detailID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(payments) == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

// FindPendingByAppointmentDetailID looks up the in-flight payment for a
// gateway return. A missing record is not an error: the gateway's own
// write may still be propagating, so the caller idles instead of failing.
func (u *PaymentUseCase) FindPendingByAppointmentDetailID(ctx context.Context, detailID string) (entities.Payment, bool, error) {
	detailID = strings.TrimSpace(detailID)
	if detailID == "" {
		return entities.Payment{}, false, ErrInvalidDetailID
	}

	payments, err := u.repo.ListByAppointmentDetailID(ctx, detailID)
	if err != nil {
		return entities.Payment{}, false, err
	}
	for _, p := range payments {
		if p.Status == entities.PaymentStatusPending {
			return p, true, nil
		}
	}
	return entities.Payment{}, false, nil
}

// UpdateStatus settles or fails a payment and refreshes the appointment's
// payment reference. Re-settling an already-PAID payment is a no-op.
func (u *PaymentUseCase) UpdateStatus(ctx context.Context, paymentID string, status entities.PaymentStatus) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	switch status {
	case entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentStatusFailed:
	default:
		return entities.Payment{}, ErrInvalidPaymentStatus
	}

	current, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if current.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if current.Status == entities.PaymentStatusPaid && status == entities.PaymentStatusPaid {
		log.Printf("[payment][usecase] repeated PAID update treated as no-op payment_id=%s", paymentID)
		return current, nil
	}

	updated, err := u.repo.UpdateStatusByID(ctx, paymentID, status)
	if err != nil {
		return entities.Payment{}, err
	}

	appt, err := u.appointmentRepo.GetByAppointmentDetailID(ctx, updated.AppointmentDetailID)
	if err != nil {
		return entities.Payment{}, err
	}
	if appt.ID != "" {
		if _, err := u.appointmentRepo.UpdatePaymentRef(ctx, appt.ID, entities.PaymentRef{
			PaymentID:     updated.ID,
			PaymentMethod: updated.Method,
			PaymentStatus: updated.Status,
		}); err != nil {
			return entities.Payment{}, err
		}
	}

	log.Printf("[payment][usecase] update-status success payment_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

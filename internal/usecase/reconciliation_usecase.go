package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"vetpoint/internal/domain/entities"
	"vetpoint/internal/domain/workflow"
)

// Gateway return contract: the redirect back from the payment gateway
// carries these literal values when the payment went through.
const (
	gatewayReturnStatusPaid = "PAID"
	gatewayReturnCodeOK     = "00"
)

// Fixed delays of the return flow. The debounce keeps the commit from
// racing the gateway's own asynchronous write; the redirect delays give
// the actor time to read the outcome before leaving the page.
const (
	commitDebounce       = 2 * time.Second
	successRedirectDelay = 3 * time.Second
	failureRedirectDelay = 5 * time.Second
)

// GatewayReturnParams are the read-only query parameters of the redirect.
type GatewayReturnParams struct {
	OrderCode string // expected numeric, maps to appointment_detail_id
	Status    string // expected literal "PAID"
	Code      string // expected literal "00"
}

// ReconcileState labels the terminal state the return flow landed in.
type ReconcileState string

const (
	ReconcileInvalidResultCode ReconcileState = "INVALID_RESULT_CODE"
	ReconcileMissingOrderCode  ReconcileState = "MISSING_ORDER_CODE"
	ReconcilePending           ReconcileState = "PENDING"
	ReconcileCompleted         ReconcileState = "COMPLETED"
	ReconcileCommitFailed      ReconcileState = "COMMIT_FAILED"
)

// ReconcileResult is what the return page renders: the state reached, an
// actor-facing message, and how long to wait before redirecting back to
// the appointment list.
type ReconcileResult struct {
	State         ReconcileState
	Message       string
	RedirectDelay time.Duration
	Payment       entities.Payment
}

// IReconciliationUseCase completes the PROCESSED -> PAID transition when
// payment happens via the external gateway redirect rather than an in-app
// cash confirmation.

type IReconciliationUseCase interface {
	Reconcile(ctx context.Context, params GatewayReturnParams, session *workflow.PaymentSession) (ReconcileResult, error)
}

type ReconciliationUseCase struct {
	payments     IPaymentUseCase
	appointments IAppointmentUseCase
	transitions  ITransitionUseCase

	sleep func(time.Duration)
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(payments IPaymentUseCase, appointments IAppointmentUseCase, transitions ITransitionUseCase) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		payments:     payments,
		appointments: appointments,
		transitions:  transitions,
		sleep:        time.Sleep,
	}
}

// Reconcile validates the redirect, looks up the pending payment and
// drives the status machine forward.
//
// Validation mismatches short-circuit without touching anything. A missing
// payment record idles (the gateway write may still be propagating); it is
// neither an error nor a commit. Commit failures are surfaced as a
// "contact administrator" outcome and never retried automatically.
func (u *ReconciliationUseCase) Reconcile(ctx context.Context, params GatewayReturnParams, session *workflow.PaymentSession) (ReconcileResult, error) {
	orderCode := strings.TrimSpace(params.OrderCode)
	log.Printf("[reconcile][usecase] start order_code=%q status=%q code=%q", orderCode, params.Status, params.Code)

	if orderCode == "" {
		return ReconcileResult{
			State:         ReconcileMissingOrderCode,
			Message:       "Payment reference is missing from the gateway response.",
			RedirectDelay: failureRedirectDelay,
		}, nil
	}
	if _, err := strconv.ParseInt(orderCode, 10, 64); err != nil {
		return ReconcileResult{
			State:         ReconcileMissingOrderCode,
			Message:       "Payment reference from the gateway response is not recognized.",
			RedirectDelay: failureRedirectDelay,
		}, nil
	}
	if params.Code != gatewayReturnCodeOK || params.Status != gatewayReturnStatusPaid {
		log.Printf("[reconcile][usecase] result code mismatch order_code=%s status=%q code=%q", orderCode, params.Status, params.Code)
		return ReconcileResult{
			State:         ReconcileInvalidResultCode,
			Message:       "The payment was not confirmed by the gateway.",
			RedirectDelay: failureRedirectDelay,
		}, nil
	}

	payment, found, err := u.payments.FindPendingByAppointmentDetailID(ctx, orderCode)
	if err != nil {
		return ReconcileResult{
			State:         ReconcileCommitFailed,
			Message:       "Payment could not be verified. Please contact an administrator.",
			RedirectDelay: failureRedirectDelay,
		}, err
	}
	if !found {
		// Still processing upstream; idle rather than fail.
		log.Printf("[reconcile][usecase] no pending payment yet order_code=%s", orderCode)
		return ReconcileResult{
			State:         ReconcilePending,
			Message:       "Payment is still being processed.",
			RedirectDelay: 0,
		}, nil
	}

	session.Begin(payment.ID, payment.Method)
	u.sleep(commitDebounce)

	settled, err := u.payments.UpdateStatus(ctx, payment.ID, entities.PaymentStatusPaid)
	if err != nil {
		log.Printf("[reconcile][usecase] payment commit failed payment_id=%s err=%v", payment.ID, err)
		session.Err = err
		return ReconcileResult{
			State:         ReconcileCommitFailed,
			Message:       "Payment confirmation failed. Please contact an administrator.",
			RedirectDelay: failureRedirectDelay,
			Payment:       payment,
		}, err
	}

	appt, err := u.appointments.GetByAppointmentDetailID(ctx, orderCode)
	if err != nil {
		session.Err = err
		return ReconcileResult{
			State:         ReconcileCommitFailed,
			Message:       "Payment confirmation failed. Please contact an administrator.",
			RedirectDelay: failureRedirectDelay,
			Payment:       settled,
		}, err
	}

	if appt.Status == entities.AppointmentStatusProcessed || appt.Status == entities.AppointmentStatusPaid {
		var form workflow.FormState
		form.Seed(appt)
		if _, err := u.transitions.Submit(ctx, workflow.RoleStaff, entities.AppointmentStatusPaid, &form); err != nil {
			log.Printf("[reconcile][usecase] status commit failed appointment_id=%s err=%v", appt.ID, err)
			session.Err = err
			return ReconcileResult{
				State:         ReconcileCommitFailed,
				Message:       "Payment confirmation failed. Please contact an administrator.",
				RedirectDelay: failureRedirectDelay,
				Payment:       settled,
			}, err
		}
	}

	session.Pending = false
	log.Printf("[reconcile][usecase] success order_code=%s payment_id=%s", orderCode, settled.ID)
	return ReconcileResult{
		State:         ReconcileCompleted,
		Message:       "Payment confirmed. The appointment is marked as paid.",
		RedirectDelay: successRedirectDelay,
		Payment:       settled,
	}, nil
}

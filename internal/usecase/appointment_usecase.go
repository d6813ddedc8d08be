package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"vetpoint/internal/domain/entities"
	"vetpoint/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrInvalidAppointmentID   = errors.New("invalid appointment id")
	ErrInvalidDetailID        = errors.New("invalid appointment_detail_id")
	ErrInvalidTargetStatus    = errors.New("invalid target status")
	ErrIllegalTransition      = errors.New("illegal status transition")
	ErrPaymentNotSettled      = errors.New("payment not settled")
	ErrAppointmentIsFinalized = errors.New("appointment is finalized")
)

// IAppointmentUseCase owns the server side of the appointment status
// machine: fetching the authoritative record and applying transitions.
//
// Transition semantics:
//   - every transition except assign-vet is a full-record replace of the
//     mutable fields from the submitted snapshot;
//   - assign-vet touches only the vet assignment;
//   - a repeated PAID update against an already-PAID appointment is a
//     no-op returning the current record, so the gateway return flow can
//     safely re-enter after a refresh.

type IAppointmentUseCase interface {
	Create(ctx context.Context, detailID, petID, healthConditionID, microchipItemID string) (entities.AppointmentWorkflow, error)
	FetchAppointmentDetail(ctx context.Context, id string) (entities.AppointmentWorkflow, error)
	GetByAppointmentDetailID(ctx context.Context, detailID string) (entities.AppointmentWorkflow, error)
	UpdateAppointmentStatus(ctx context.Context, payload entities.UpdateStatusPayload) (entities.AppointmentWorkflow, error)
	AttachPayment(ctx context.Context, id string, ref entities.PaymentRef) (entities.AppointmentWorkflow, error)
}

type AppointmentUseCase struct {
	repo interfaces.IAppointmentRepository
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)
var _ interfaces.IAppointmentStatusClient = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

func (u *AppointmentUseCase) Create(ctx context.Context, detailID, petID, healthConditionID, microchipItemID string) (entities.AppointmentWorkflow, error) {
	detailID = strings.TrimSpace(detailID)
	if detailID == "" {
		return entities.AppointmentWorkflow{}, ErrInvalidDetailID
	}

	now := time.Now().UTC()
	a := entities.AppointmentWorkflow{
		ID:                  uuid.NewString(),
		AppointmentDetailID: detailID,
		Status:              entities.AppointmentStatusProcessing,
		PetID:               petID,
		HealthConditionID:   healthConditionID,
		MicrochipItemID:     microchipItemID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return u.repo.Create(ctx, a)
}

func (u *AppointmentUseCase) FetchAppointmentDetail(ctx context.Context, id string) (entities.AppointmentWorkflow, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AppointmentWorkflow{}, ErrInvalidAppointmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AppointmentWorkflow{}, err
	}
	if a.ID == "" {
		return entities.AppointmentWorkflow{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *AppointmentUseCase) GetByAppointmentDetailID(ctx context.Context, detailID string) (entities.AppointmentWorkflow, error) {
	detailID = strings.TrimSpace(detailID)
	if detailID == "" {
		return entities.AppointmentWorkflow{}, ErrInvalidDetailID
	}

	a, err := u.repo.GetByAppointmentDetailID(ctx, detailID)
	if err != nil {
		return entities.AppointmentWorkflow{}, err
	}
	if a.ID == "" {
		return entities.AppointmentWorkflow{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *AppointmentUseCase) UpdateAppointmentStatus(ctx context.Context, payload entities.UpdateStatusPayload) (entities.AppointmentWorkflow, error) {
	id := strings.TrimSpace(payload.AppointmentID)
	if id == "" {
		return entities.AppointmentWorkflow{}, ErrInvalidAppointmentID
	}
	target := payload.AppointmentStatus
	if !target.Valid() {
		return entities.AppointmentWorkflow{}, ErrInvalidTargetStatus
	}
	log.Printf("[appointment][usecase] update-status start appointment_id=%s target=%s", id, target)

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AppointmentWorkflow{}, err
	}
	if current.ID == "" {
		return entities.AppointmentWorkflow{}, ErrAppointmentNotFound
	}

	// Re-entered PAID commit (browser back/refresh on the gateway return
	// page) must not fail; the repeated transition is accepted as a no-op.
	if current.Status == entities.AppointmentStatusPaid && target == entities.AppointmentStatusPaid {
		log.Printf("[appointment][usecase] repeated PAID transition treated as no-op appointment_id=%s", id)
		return current, nil
	}

	if current.Status.Terminal() {
		return entities.AppointmentWorkflow{}, ErrAppointmentIsFinalized
	}
	if !current.Status.CanTransitionTo(target) {
		log.Printf("[appointment][usecase] illegal transition appointment_id=%s from=%s to=%s", id, current.Status, target)
		return entities.AppointmentWorkflow{}, ErrIllegalTransition
	}

	// PAID requires a settled payment attached to the record.
	if target == entities.AppointmentStatusPaid && current.Payment.PaymentStatus != entities.PaymentStatusPaid {
		return entities.AppointmentWorkflow{}, ErrPaymentNotSettled
	}

	if payload.IsAssignVet() {
		updated, err := u.repo.UpdateVetAssignment(ctx, id, payload.VetID, target)
		if err != nil {
			return entities.AppointmentWorkflow{}, err
		}
		if updated.ID == "" {
			return entities.AppointmentWorkflow{}, ErrAppointmentNotFound
		}
		log.Printf("[appointment][usecase] update-status success appointment_id=%s status=%s vet_id=%s", id, target, payload.VetID)
		return updated, nil
	}

	next := applySnapshot(current, payload)
	updated, err := u.repo.Replace(ctx, next)
	if err != nil {
		return entities.AppointmentWorkflow{}, err
	}
	log.Printf("[appointment][usecase] update-status success appointment_id=%s status=%s", id, target)
	return updated, nil
}

func (u *AppointmentUseCase) AttachPayment(ctx context.Context, id string, ref entities.PaymentRef) (entities.AppointmentWorkflow, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AppointmentWorkflow{}, ErrInvalidAppointmentID
	}

	updated, err := u.repo.UpdatePaymentRef(ctx, id, ref)
	if err != nil {
		return entities.AppointmentWorkflow{}, err
	}
	if updated.ID == "" {
		return entities.AppointmentWorkflow{}, ErrAppointmentNotFound
	}
	return updated, nil
}

// applySnapshot replaces the mutable fields of current with the submitted
// full snapshot. Identity, vet id, payment ref and create time survive;
// everything the form carries is written as-is.
func applySnapshot(current entities.AppointmentWorkflow, p entities.UpdateStatusPayload) entities.AppointmentWorkflow {
	next := current
	next.Status = p.AppointmentStatus
	next.PetID = p.PetID
	next.HealthConditionID = p.HealthConditionID
	next.MicrochipItemID = p.MicrochipItemID
	next.Note = p.Note
	if p.AppointmentDate != nil {
		next.VetAssignment.AppointmentDate = *p.AppointmentDate
	}
	if p.VitalSigns != nil {
		next.VitalSigns = *p.VitalSigns
	}
	if p.HealthCheck != nil {
		next.HealthCheck = *p.HealthCheck
	}
	next.UpdatedAt = time.Now().UTC()
	return next
}

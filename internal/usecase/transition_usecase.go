package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"vetpoint/internal/domain/entities"
	"vetpoint/internal/domain/workflow"
	"vetpoint/internal/usecase/interfaces"
)

var (
	ErrTransitionInFlight   = errors.New("transition already in flight")
	ErrRoleNotAllowed       = errors.New("role not allowed for this transition")
	ErrMissingVetSelection  = errors.New("missing vet selection")
	ErrMissingRejectReason  = errors.New("missing reject reason")
	ErrTransitionNotAllowed = errors.New("transition not allowed from current status")
)

// ITransitionUseCase is the status transition service: it translates
// "actor wants to move the appointment to status B" into the exact payload
// the status-update operation expects, and invokes it.

type ITransitionUseCase interface {
	Submit(ctx context.Context, role workflow.Role, target entities.AppointmentStatus, form *workflow.FormState) (entities.AppointmentWorkflow, error)
	Reject(ctx context.Context, role workflow.Role, reason string, form *workflow.FormState) (entities.AppointmentWorkflow, error)
}

type TransitionUseCase struct {
	client interfaces.IAppointmentStatusClient

	// inFlight is keyed by appointment id: only a duplicate submit for the
	// same appointment is rejected, unrelated appointments stay independent.
	mu       sync.Mutex
	inFlight map[string]bool
}

var _ ITransitionUseCase = (*TransitionUseCase)(nil)

func NewTransitionUseCase(client interfaces.IAppointmentStatusClient) *TransitionUseCase {
	return &TransitionUseCase{client: client, inFlight: make(map[string]bool)}
}

// BuildPayload shapes the update payload for the requested target status.
//
// Assign-vet (-> CHECKED_IN) carries only appointment id, vet id and the
// target status; assigning a vet must not overwrite clinical or note
// fields. Every other transition carries the full form snapshot, because
// the backend treats each update as a full-record replace.
//
// Building is deterministic: the same form and target always produce a
// structurally identical payload.
func BuildPayload(target entities.AppointmentStatus, form *workflow.FormState) (entities.UpdateStatusPayload, error) {
	if target == entities.AppointmentStatusCheckedIn {
		vetID := strings.TrimSpace(form.VetSelection.VetID)
		if vetID == "" {
			return entities.UpdateStatusPayload{}, ErrMissingVetSelection
		}
		return entities.UpdateStatusPayload{
			AppointmentID:     form.AppointmentID,
			AppointmentStatus: target,
			VetID:             vetID,
		}, nil
	}

	vitals := form.VitalSigns
	health := form.HealthCheck
	p := entities.UpdateStatusPayload{
		AppointmentID:     form.AppointmentID,
		AppointmentStatus: target,
		PetID:             form.PetID,
		HealthConditionID: form.HealthConditionID,
		MicrochipItemID:   form.MicrochipItemID,
		Note:              form.Note,
		VitalSigns:        &vitals,
		HealthCheck:       &health,
	}
	if !form.VetSelection.AppointmentDate.IsZero() {
		date := form.VetSelection.AppointmentDate
		p.AppointmentDate = &date
	}
	return p, nil
}

// Submit performs exactly one status-update call. On success the
// appointment detail is refetched and the form re-seeded from it, which
// snaps the view back to the authoritative status. On failure the draft
// is left untouched so the actor does not lose input; nothing is retried.
func (u *TransitionUseCase) Submit(ctx context.Context, role workflow.Role, target entities.AppointmentStatus, form *workflow.FormState) (entities.AppointmentWorkflow, error) {
	if !target.Valid() {
		return entities.AppointmentWorkflow{}, ErrInvalidTargetStatus
	}
	if !workflow.CanSubmit(role, target) {
		return entities.AppointmentWorkflow{}, ErrRoleNotAllowed
	}
	if !form.ServerStatus.CanTransitionTo(target) &&
		!(form.ServerStatus == entities.AppointmentStatusPaid && target == entities.AppointmentStatusPaid) {
		return entities.AppointmentWorkflow{}, ErrTransitionNotAllowed
	}

	payload, err := BuildPayload(target, form)
	if err != nil {
		return entities.AppointmentWorkflow{}, err
	}

	u.mu.Lock()
	if u.inFlight[payload.AppointmentID] {
		u.mu.Unlock()
		return entities.AppointmentWorkflow{}, ErrTransitionInFlight
	}
	u.inFlight[payload.AppointmentID] = true
	u.mu.Unlock()
	defer func() {
		u.mu.Lock()
		delete(u.inFlight, payload.AppointmentID)
		u.mu.Unlock()
	}()

	log.Printf("[transition][usecase] submit appointment_id=%s target=%s role=%s", payload.AppointmentID, target, role)
	updated, err := u.client.UpdateAppointmentStatus(ctx, payload)
	if err != nil {
		log.Printf("[transition][usecase] submit failed appointment_id=%s target=%s err=%v", payload.AppointmentID, target, err)
		return entities.AppointmentWorkflow{}, err
	}

	fresh, err := u.client.FetchAppointmentDetail(ctx, payload.AppointmentID)
	if err != nil {
		// The transition itself settled; fall back to the update response.
		log.Printf("[transition][usecase] refetch failed appointment_id=%s err=%v", payload.AppointmentID, err)
		fresh = updated
	}
	form.Seed(fresh)
	log.Printf("[transition][usecase] submit success appointment_id=%s status=%s", fresh.ID, fresh.Status)
	return fresh, nil
}

// Reject moves the appointment to CANCELLED, overwriting the drafted note
// with the actor-supplied reason regardless of prior content.
func (u *TransitionUseCase) Reject(ctx context.Context, role workflow.Role, reason string, form *workflow.FormState) (entities.AppointmentWorkflow, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.AppointmentWorkflow{}, ErrMissingRejectReason
	}
	form.SetNote(reason)
	return u.Submit(ctx, role, entities.AppointmentStatusCancelled, form)
}

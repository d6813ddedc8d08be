package workflow

import "vetpoint/internal/domain/entities"

// Step is a numbered position in the visible step sequence. The five
// non-terminal statuses map to steps 1..5 in workflow order; terminal
// statuses fall outside the sequence and render the finalized view.

type Step int

const (
	StepFinalized Step = 0

	StepProcessing Step = 1
	StepConfirmed  Step = 2
	StepCheckedIn  Step = 3
	StepProcessed  Step = 4
	StepPaid       Step = 5
)

// StepForStatus maps an appointment status onto the step sequence.
func StepForStatus(s entities.AppointmentStatus) Step {
	if s.Terminal() || !s.Valid() {
		return StepFinalized
	}
	return Step(s)
}

// Role of the signed-in actor. Authorization is transition-specific, not
// screen-specific: an actor without the required role still sees the step,
// only the mutating controls are withheld.
type Role string

const (
	RoleStaff        Role = "staff"
	RoleVeterinarian Role = "veterinarian"
)

func (r Role) Valid() bool {
	return r == RoleStaff || r == RoleVeterinarian
}

// EffectiveStep is the step currently displayed: the viewed-step override
// when set, otherwise the step of the authoritative server status.
func EffectiveStep(viewed *Step, server entities.AppointmentStatus) Step {
	if viewed != nil {
		return *viewed
	}
	return StepForStatus(server)
}

// IsEditable reports whether step s accepts input. A step is editable only
// when the actor is viewing exactly the step that is also the live server
// status; a past, already-completed step is never editable, even when
// re-selected for viewing.
func IsEditable(s Step, viewed *Step, server entities.AppointmentStatus) bool {
	if s == StepFinalized {
		return false
	}
	return EffectiveStep(viewed, server) == s && StepForStatus(server) == s
}

// IsViewable reports whether step s may be browsed read-only.
func IsViewable(s Step, server entities.AppointmentStatus) bool {
	if s == StepFinalized {
		return server.Terminal()
	}
	return s <= StepForStatus(server) && StepForStatus(server) != StepFinalized
}

// RequiredRole returns the role authorized to drive the transition into
// target. Confirmation, rejection and payment finalization are staff
// actions; vet assignment, clinical-record submission and exam completion
// belong to the veterinarian.
func RequiredRole(target entities.AppointmentStatus) Role {
	switch target {
	case entities.AppointmentStatusCheckedIn, entities.AppointmentStatusProcessed:
		return RoleVeterinarian
	default:
		return RoleStaff
	}
}

// CanSubmit reports whether the actor's role may submit the transition.
func CanSubmit(role Role, target entities.AppointmentStatus) bool {
	return role.Valid() && role == RequiredRole(target)
}

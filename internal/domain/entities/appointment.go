package entities

import "time"

// AppointmentStatus is the lifecycle of a clinical service request.
//
// Domain notes:
//   - The numeric values are a hard compatibility contract shared with every
//     collaborator (console, gateway return flow); they must never be reordered.
//   - Zero is deliberately not a status so an unset field can never pass as one.
//   - COMPLETED and CANCELLED are terminal; no transition leaves them.

type AppointmentStatus int

const (
	AppointmentStatusProcessing AppointmentStatus = 1
	AppointmentStatusConfirmed  AppointmentStatus = 2
	AppointmentStatusCheckedIn  AppointmentStatus = 3
	AppointmentStatusProcessed  AppointmentStatus = 4
	AppointmentStatusPaid       AppointmentStatus = 5
	AppointmentStatusCompleted  AppointmentStatus = 6
	AppointmentStatusCancelled  AppointmentStatus = 7
)

func (s AppointmentStatus) Valid() bool {
	return s >= AppointmentStatusProcessing && s <= AppointmentStatusCancelled
}

func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

func (s AppointmentStatus) String() string {
	switch s {
	case AppointmentStatusProcessing:
		return "PROCESSING"
	case AppointmentStatusConfirmed:
		return "CONFIRMED"
	case AppointmentStatusCheckedIn:
		return "CHECKED_IN"
	case AppointmentStatusProcessed:
		return "PROCESSED"
	case AppointmentStatusPaid:
		return "PAID"
	case AppointmentStatusCompleted:
		return "COMPLETED"
	case AppointmentStatusCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// CanTransitionTo reports whether target is a legal next status.
//
// Forward moves are strictly adjacent. CANCELLED is reachable from any
// non-terminal status (rejection is a forward transition, not an abort).
// A repeated PAID request against an already-PAID appointment is not a
// transition; the use case accepts it separately as a no-op.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	if !s.Valid() || !target.Valid() {
		return false
	}
	if s.Terminal() {
		return false
	}
	if target == AppointmentStatusCancelled {
		return true
	}
	if s == AppointmentStatusProcessed && target == AppointmentStatusPaid {
		return true
	}
	return target == s+1
}

// VitalSigns captured during the clinical examination.
type VitalSigns struct {
	HeartRate     float64 `json:"heart_rate"`
	BreathingRate float64 `json:"breathing_rate"`
	Weight        float64 `json:"weight"`
	Temperature   float64 `json:"temperature"`
}

// HealthCheck holds the categorical examination findings plus the vet's
// conclusion. Each field is free text within its category.
type HealthCheck struct {
	SkinAndCoat     string `json:"skin_and_coat"`
	EyesAndEars     string `json:"eyes_and_ears"`
	OralCavity      string `json:"oral_cavity"`
	Respiratory     string `json:"respiratory"`
	Cardiovascular  string `json:"cardiovascular"`
	Digestive       string `json:"digestive"`
	Musculoskeletal string `json:"musculoskeletal"`
	NervousSystem   string `json:"nervous_system"`
	Conclusion      string `json:"conclusion"`
}

// VetAssignment is set when the appointment enters CHECKED_IN.
type VetAssignment struct {
	VetID           string    `json:"vet_id"`
	AppointmentDate time.Time `json:"appointment_date"`
}

// PaymentRef is the payment attached to the appointment once one is created.
// Its status moves independently of the appointment status but gates the
// PAID transition.
type PaymentRef struct {
	PaymentID     string        `json:"payment_id,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
}

// AppointmentWorkflow is the aggregate driven through the status machine.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (appointment_detail_id-index): appointment_detail_id
//
// The status stored here is the authoritative value; the console never
// assumes a transition succeeded until this record confirms it.
type AppointmentWorkflow struct {
	ID                  string            `json:"id"`
	AppointmentDetailID string            `json:"appointment_detail_id"`
	Status              AppointmentStatus `json:"status"`

	PetID             string `json:"pet_id"`
	HealthConditionID string `json:"health_condition_id"`
	MicrochipItemID   string `json:"microchip_item_id"`
	Note              string `json:"note"`

	VetAssignment VetAssignment `json:"vet_assignment"`
	VitalSigns    VitalSigns    `json:"vital_signs"`
	HealthCheck   HealthCheck   `json:"health_check"`
	Payment       PaymentRef    `json:"payment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateStatusPayload is the wire payload of the status-update operation.
//
// Two shapes share this struct:
//   - assign-vet (CONFIRMED -> CHECKED_IN) carries only AppointmentID, VetID
//     and AppointmentStatus; everything else stays nil/zero so assigning a
//     vet can never overwrite clinical or note fields.
//   - every other transition carries the full form snapshot, because the
//     backend treats each update as a full-record replace.
type UpdateStatusPayload struct {
	AppointmentID     string            `json:"appointment_id"`
	AppointmentStatus AppointmentStatus `json:"appointment_status"`

	VetID string `json:"vet_id,omitempty"`

	AppointmentDate   *time.Time   `json:"appointment_date,omitempty"`
	PetID             string       `json:"pet_id,omitempty"`
	HealthConditionID string       `json:"health_condition_id,omitempty"`
	MicrochipItemID   string       `json:"microchip_item_id,omitempty"`
	Note              string       `json:"note,omitempty"`
	VitalSigns        *VitalSigns  `json:"vital_signs,omitempty"`
	HealthCheck       *HealthCheck `json:"health_check,omitempty"`
}

// IsAssignVet reports whether the payload is the narrow vet-assignment shape.
func (p UpdateStatusPayload) IsAssignVet() bool {
	return p.AppointmentStatus == AppointmentStatusCheckedIn && p.VetID != ""
}

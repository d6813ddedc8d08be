package request

import (
	"strings"
	"time"

	"vetpoint/internal/domain/entities"
	"vetpoint/internal/domain/workflow"
)

// CreateAppointmentRequest registers a new workflow for a service request.
type CreateAppointmentRequest struct {
	AppointmentDetailID string `json:"appointment_detail_id" binding:"required"`
	PetID               string `json:"pet_id"`
	HealthConditionID   string `json:"health_condition_id"`
	MicrochipItemID     string `json:"microchip_item_id"`
}

func (r CreateAppointmentRequest) ResolveDetailID() string {
	return strings.TrimSpace(r.AppointmentDetailID)
}

type VitalSignsRequest struct {
	HeartRate     float64 `json:"heart_rate"`
	BreathingRate float64 `json:"breathing_rate"`
	Weight        float64 `json:"weight"`
	Temperature   float64 `json:"temperature"`
}

type HealthCheckRequest struct {
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

// TransitionRequest is the full form snapshot the console submits with a
// status transition. Absent sections leave the server-seeded draft values
// in place; present sections overwrite them wholesale, mirroring the
// full-record-replace contract.
type TransitionRequest struct {
	AppointmentDate   *time.Time          `json:"appointment_date"`
	PetID             *string             `json:"pet_id"`
	HealthConditionID *string             `json:"health_condition_id"`
	MicrochipItemID   *string             `json:"microchip_item_id"`
	Note              *string             `json:"note"`
	VitalSigns        *VitalSignsRequest  `json:"vital_signs"`
	HealthCheck       *HealthCheckRequest `json:"health_check"`
}

// Apply overlays the submitted snapshot onto a form seeded from server truth.
func (r TransitionRequest) Apply(form *workflow.FormState) {
	if r.AppointmentDate != nil {
		form.VetSelection.AppointmentDate = *r.AppointmentDate
	}
	if r.PetID != nil {
		form.PetID = *r.PetID
	}
	if r.HealthConditionID != nil {
		form.HealthConditionID = *r.HealthConditionID
	}
	if r.MicrochipItemID != nil {
		form.MicrochipItemID = *r.MicrochipItemID
	}
	if r.Note != nil {
		form.SetNote(*r.Note)
	}
	if r.VitalSigns != nil {
		form.VitalSigns = entities.VitalSigns{
			HeartRate:     r.VitalSigns.HeartRate,
			BreathingRate: r.VitalSigns.BreathingRate,
			Weight:        r.VitalSigns.Weight,
			Temperature:   r.VitalSigns.Temperature,
		}
	}
	if r.HealthCheck != nil {
		form.HealthCheck = entities.HealthCheck{
			SkinAndCoat:     r.HealthCheck.SkinAndCoat,
			EyesAndEars:     r.HealthCheck.EyesAndEars,
			OralCavity:      r.HealthCheck.OralCavity,
			Respiratory:     r.HealthCheck.Respiratory,
			Cardiovascular:  r.HealthCheck.Cardiovascular,
			Digestive:       r.HealthCheck.Digestive,
			Musculoskeletal: r.HealthCheck.Musculoskeletal,
			NervousSystem:   r.HealthCheck.NervousSystem,
			Conclusion:      r.HealthCheck.Conclusion,
		}
	}
}

// AssignVetRequest carries the vet-assignment step input. Deliberately
// narrow: assigning a vet must not touch clinical or note fields.
type AssignVetRequest struct {
	VetID           string     `json:"vet_id" binding:"required"`
	AppointmentDate *time.Time `json:"appointment_date"`
}

func (r AssignVetRequest) ResolveVetID() string {
	return strings.TrimSpace(r.VetID)
}

// RejectRequest cancels the appointment with an actor-supplied reason.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
	TransitionRequest
}

func (r RejectRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}

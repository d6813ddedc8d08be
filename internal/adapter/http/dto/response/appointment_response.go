package response

import (
	"time"

	"vetpoint/internal/domain/entities"
)

type VetAssignmentResponse struct {
	VetID           string     `json:"vet_id,omitempty"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
}

type AppointmentResponse struct {
	ID                  string `json:"id"`
	AppointmentDetailID string `json:"appointment_detail_id"`
	Status              int    `json:"status"`
	StatusLabel         string `json:"status_label"`

	PetID             string `json:"pet_id,omitempty"`
	HealthConditionID string `json:"health_condition_id,omitempty"`
	MicrochipItemID   string `json:"microchip_item_id,omitempty"`
	Note              string `json:"note,omitempty"`

	VetAssignment VetAssignmentResponse `json:"vet_assignment"`
	VitalSigns    entities.VitalSigns   `json:"vital_signs"`
	HealthCheck   entities.HealthCheck  `json:"health_check"`
	Payment       entities.PaymentRef   `json:"payment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromAppointment(a entities.AppointmentWorkflow) AppointmentResponse {
	resp := AppointmentResponse{
		ID:                  a.ID,
		AppointmentDetailID: a.AppointmentDetailID,
		Status:              int(a.Status),
		StatusLabel:         a.Status.String(),
		PetID:               a.PetID,
		HealthConditionID:   a.HealthConditionID,
		MicrochipItemID:     a.MicrochipItemID,
		Note:                a.Note,
		VetAssignment: VetAssignmentResponse{
			VetID: a.VetAssignment.VetID,
		},
		VitalSigns:  a.VitalSigns,
		HealthCheck: a.HealthCheck,
		Payment:     a.Payment,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if !a.VetAssignment.AppointmentDate.IsZero() {
		date := a.VetAssignment.AppointmentDate
		resp.VetAssignment.AppointmentDate = &date
	}
	return resp
}

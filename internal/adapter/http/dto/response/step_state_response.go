package response

import (
	"vetpoint/internal/domain/entities"
	"vetpoint/internal/domain/workflow"
)

type StepResponse struct {
	Step         int    `json:"step"`
	StatusLabel  string `json:"status_label"`
	Viewable     bool   `json:"viewable"`
	Editable     bool   `json:"editable"`
	RequiredRole string `json:"required_role"`
	CanSubmit    bool   `json:"can_submit"`
}

type StepStateResponse struct {
	AppointmentID string         `json:"appointment_id"`
	Status        int            `json:"status"`
	StatusLabel   string         `json:"status_label"`
	EffectiveStep int            `json:"effective_step"`
	Finalized     bool           `json:"finalized"`
	Steps         []StepResponse `json:"steps"`
}

// FromStepState renders the navigability of every step for the given actor.
// Each step's required role is the role that drives the transition out of
// it, so can_submit is true only on the live, editable step when the actor
// holds that role.
func FromStepState(a entities.AppointmentWorkflow, viewed *workflow.Step, role workflow.Role) StepStateResponse {
	resp := StepStateResponse{
		AppointmentID: a.ID,
		Status:        int(a.Status),
		StatusLabel:   a.Status.String(),
		EffectiveStep: int(workflow.EffectiveStep(viewed, a.Status)),
		Finalized:     a.Status.Terminal(),
	}

	for s := workflow.StepProcessing; s <= workflow.StepPaid; s++ {
		target := entities.AppointmentStatus(s) + 1
		editable := workflow.IsEditable(s, viewed, a.Status)
		resp.Steps = append(resp.Steps, StepResponse{
			Step:         int(s),
			StatusLabel:  entities.AppointmentStatus(s).String(),
			Viewable:     workflow.IsViewable(s, a.Status),
			Editable:     editable,
			RequiredRole: string(workflow.RequiredRole(target)),
			CanSubmit:    editable && workflow.CanSubmit(role, target),
		})
	}
	return resp
}

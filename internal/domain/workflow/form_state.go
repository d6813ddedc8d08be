package workflow

import (
	"errors"
	"time"

	"vetpoint/internal/domain/entities"
)

var ErrViewedStepAhead = errors.New("viewed step is ahead of server status")

// Section names the patchable areas of the form state.
type Section string

const (
	SectionVetSelection Section = "vetSelection"
	SectionVitalSigns   Section = "vitalSigns"
	SectionHealthCheck  Section = "healthCheck"
)

// VetSelectionPatch, VitalSignsPatch and HealthCheckPatch carry partial
// section updates. Nil fields are left untouched: patching is a merge,
// never a replace, so switching between sub-fields never loses sibling
// input.

type VetSelectionPatch struct {
	VetID           *string
	AppointmentDate *time.Time
}

type VitalSignsPatch struct {
	HeartRate     *float64
	BreathingRate *float64
	Weight        *float64
	Temperature   *float64
}

type HealthCheckPatch struct {
	SkinAndCoat     *string
	EyesAndEars     *string
	OralCavity      *string
	Respiratory     *string
	Cardiovascular  *string
	Digestive       *string
	Musculoskeletal *string
	NervousSystem   *string
	Conclusion      *string
}

// FormState is the single source of truth for in-progress, unsaved step
// input: a draft superset of every step payload, plus the optional viewed
// step override. It performs no I/O; the transition use case consumes it
// as a pure in-memory projection.
//
// Only the fields relevant to the currently legal transition are required
// to be valid at any time; all others are carried forward unchanged.
type FormState struct {
	AppointmentID       string
	AppointmentDetailID string

	// ServerStatus mirrors the authoritative status at seed time. Edit
	// permission is always derived from this half, never from ViewedStep.
	ServerStatus entities.AppointmentStatus

	VetSelection      entities.VetAssignment
	PetID             string
	HealthConditionID string
	MicrochipItemID   string
	Note              string
	VitalSigns        entities.VitalSigns
	HealthCheck       entities.HealthCheck

	viewedStep *Step
}

// Seed fully overwrites the draft from server truth. Any residue from a
// previously edited appointment is discarded, including the viewed step.
func (f *FormState) Seed(a entities.AppointmentWorkflow) {
	*f = FormState{
		AppointmentID:       a.ID,
		AppointmentDetailID: a.AppointmentDetailID,
		ServerStatus:        a.Status,
		VetSelection:        a.VetAssignment,
		PetID:               a.PetID,
		HealthConditionID:   a.HealthConditionID,
		MicrochipItemID:     a.MicrochipItemID,
		Note:                a.Note,
		VitalSigns:          a.VitalSigns,
		HealthCheck:         a.HealthCheck,
	}
}

// Reset clears the draft entirely (navigation away / explicit reset).
func (f *FormState) Reset() {
	*f = FormState{}
}

func (f *FormState) PatchVetSelection(p VetSelectionPatch) {
	if p.VetID != nil {
		f.VetSelection.VetID = *p.VetID
	}
	if p.AppointmentDate != nil {
		f.VetSelection.AppointmentDate = *p.AppointmentDate
	}
}

func (f *FormState) PatchVitalSigns(p VitalSignsPatch) {
	if p.HeartRate != nil {
		f.VitalSigns.HeartRate = *p.HeartRate
	}
	if p.BreathingRate != nil {
		f.VitalSigns.BreathingRate = *p.BreathingRate
	}
	if p.Weight != nil {
		f.VitalSigns.Weight = *p.Weight
	}
	if p.Temperature != nil {
		f.VitalSigns.Temperature = *p.Temperature
	}
}

func (f *FormState) PatchHealthCheck(p HealthCheckPatch) {
	if p.SkinAndCoat != nil {
		f.HealthCheck.SkinAndCoat = *p.SkinAndCoat
	}
	if p.EyesAndEars != nil {
		f.HealthCheck.EyesAndEars = *p.EyesAndEars
	}
	if p.OralCavity != nil {
		f.HealthCheck.OralCavity = *p.OralCavity
	}
	if p.Respiratory != nil {
		f.HealthCheck.Respiratory = *p.Respiratory
	}
	if p.Cardiovascular != nil {
		f.HealthCheck.Cardiovascular = *p.Cardiovascular
	}
	if p.Digestive != nil {
		f.HealthCheck.Digestive = *p.Digestive
	}
	if p.Musculoskeletal != nil {
		f.HealthCheck.Musculoskeletal = *p.Musculoskeletal
	}
	if p.NervousSystem != nil {
		f.HealthCheck.NervousSystem = *p.NervousSystem
	}
	if p.Conclusion != nil {
		f.HealthCheck.Conclusion = *p.Conclusion
	}
}

func (f *FormState) SetNote(note string) {
	f.Note = note
}

// SetViewedStep overrides which step is displayed. Passing nil returns the
// view to the authoritative status. Browsing into the future is rejected.
func (f *FormState) SetViewedStep(s *Step) error {
	if s == nil {
		f.viewedStep = nil
		return nil
	}
	if *s > StepForStatus(f.ServerStatus) {
		return ErrViewedStepAhead
	}
	step := *s
	f.viewedStep = &step
	return nil
}

// ViewedStep returns the override, or nil when the view follows the server.
func (f *FormState) ViewedStep() *Step {
	return f.viewedStep
}

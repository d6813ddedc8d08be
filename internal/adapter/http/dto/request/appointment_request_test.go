package request

import (
	"testing"
	"time"

	"vetpoint/internal/domain/entities"
	"vetpoint/internal/domain/workflow"
)

func TestTransitionRequest_Apply(t *testing.T) {
	seed := func() *workflow.FormState {
		var f workflow.FormState
		f.Seed(entities.AppointmentWorkflow{
			ID:                "apt-1",
			Status:            entities.AppointmentStatusCheckedIn,
			PetID:             "pet-1",
			HealthConditionID: "hc-1",
			Note:              "server note",
			VitalSigns:        entities.VitalSigns{HeartRate: 80},
		})
		return &f
	}

	t.Run("absent fields keep seeded values", func(t *testing.T) {
		form := seed()
		TransitionRequest{}.Apply(form)

		if form.PetID != "pet-1" || form.Note != "server note" || form.VitalSigns.HeartRate != 80 {
			t.Fatalf("expected seeded values preserved, got %+v", form)
		}
	})

	t.Run("present sections overwrite wholesale", func(t *testing.T) {
		form := seed()
		note := "updated"
		TransitionRequest{
			Note:       &note,
			VitalSigns: &VitalSignsRequest{Weight: 7.5},
		}.Apply(form)

		if form.Note != "updated" {
			t.Fatalf("expected note replaced, got %q", form.Note)
		}
		// The section is replaced as a whole, not merged.
		if form.VitalSigns.HeartRate != 0 || form.VitalSigns.Weight != 7.5 {
			t.Fatalf("expected full section replace, got %+v", form.VitalSigns)
		}
	})

	t.Run("appointment date lands on the vet selection", func(t *testing.T) {
		form := seed()
		when := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
		TransitionRequest{AppointmentDate: &when}.Apply(form)

		if !form.VetSelection.AppointmentDate.Equal(when) {
			t.Fatalf("unexpected date: %v", form.VetSelection.AppointmentDate)
		}
	})
}

func TestAssignVetRequest_ResolveVetID(t *testing.T) {
	if got := (AssignVetRequest{VetID: "  vet-9  "}).ResolveVetID(); got != "vet-9" {
		t.Fatalf("expected trimmed vet id, got %q", got)
	}
	if got := (AssignVetRequest{VetID: "   "}).ResolveVetID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestRejectRequest_ResolveReason(t *testing.T) {
	if got := (RejectRequest{Reason: " owner cancelled "}).ResolveReason(); got != "owner cancelled" {
		t.Fatalf("expected trimmed reason, got %q", got)
	}
}

package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"vetpoint/internal/domain/entities"
	"vetpoint/internal/domain/workflow"
	mock_interfaces "vetpoint/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strptr(s string) *string        { return &s }
func f64ptr(v float64) *float64      { return &v }
func timeptr(t time.Time) *time.Time { return &t }

func seededForm(status entities.AppointmentStatus) *workflow.FormState {
	return seededFormFor("apt-1", status)
}

func seededFormFor(id string, status entities.AppointmentStatus) *workflow.FormState {
	var f workflow.FormState
	f.Seed(entities.AppointmentWorkflow{
		ID:                  id,
		AppointmentDetailID: "42",
		Status:              status,
		PetID:               "pet-1",
		HealthConditionID:   "hc-1",
		MicrochipItemID:     "mc-1",
		Note:                "server note",
	})
	return &f
}

func TestBuildPayload(t *testing.T) {
	t.Run("assign vet carries only id, vet id and status", func(t *testing.T) {
		form := seededForm(entities.AppointmentStatusConfirmed)
		form.PatchVetSelection(workflow.VetSelectionPatch{VetID: strptr("vet-9")})
		form.PatchVitalSigns(workflow.VitalSignsPatch{HeartRate: f64ptr(95)})
		form.SetNote("a note that must not travel")

		p, err := BuildPayload(entities.AppointmentStatusCheckedIn, form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.UpdateStatusPayload{
			AppointmentID:     "apt-1",
			AppointmentStatus: entities.AppointmentStatusCheckedIn,
			VetID:             "vet-9",
		}
		if !reflect.DeepEqual(p, want) {
			t.Fatalf("expected narrow payload, got %+v", p)
		}
	})

	t.Run("assign vet payload is identical regardless of other form content", func(t *testing.T) {
		clean := seededForm(entities.AppointmentStatusConfirmed)
		clean.PatchVetSelection(workflow.VetSelectionPatch{VetID: strptr("vet-9")})

		dirty := seededForm(entities.AppointmentStatusConfirmed)
		dirty.PatchVetSelection(workflow.VetSelectionPatch{VetID: strptr("vet-9")})
		dirty.PatchVitalSigns(workflow.VitalSignsPatch{Weight: f64ptr(8.1)})
		dirty.PatchHealthCheck(workflow.HealthCheckPatch{Conclusion: strptr("ok")})
		dirty.SetNote("scratch")

		p1, err := BuildPayload(entities.AppointmentStatusCheckedIn, clean)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p2, err := BuildPayload(entities.AppointmentStatusCheckedIn, dirty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(p1, p2) {
			t.Fatalf("payloads differ:\n%+v\n%+v", p1, p2)
		}
	})

	t.Run("assign vet without a vet id", func(t *testing.T) {
		form := seededForm(entities.AppointmentStatusConfirmed)
		_, err := BuildPayload(entities.AppointmentStatusCheckedIn, form)
		if !errors.Is(err, ErrMissingVetSelection) {
			t.Fatalf("expected ErrMissingVetSelection, got %v", err)
		}
	})

	t.Run("other transitions carry the full snapshot", func(t *testing.T) {
		form := seededForm(entities.AppointmentStatusCheckedIn)
		when := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		form.PatchVetSelection(workflow.VetSelectionPatch{AppointmentDate: timeptr(when)})
		form.PatchVitalSigns(workflow.VitalSignsPatch{HeartRate: f64ptr(95), Temperature: f64ptr(38.5)})
		form.PatchHealthCheck(workflow.HealthCheckPatch{Conclusion: strptr("healthy")})

		p, err := BuildPayload(entities.AppointmentStatusProcessed, form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.AppointmentStatus != entities.AppointmentStatusProcessed || p.PetID != "pet-1" || p.Note != "server note" {
			t.Fatalf("unexpected payload: %+v", p)
		}
		if p.VitalSigns == nil || p.VitalSigns.HeartRate != 95 || p.VitalSigns.Temperature != 38.5 {
			t.Fatalf("unexpected vitals: %+v", p.VitalSigns)
		}
		if p.HealthCheck == nil || p.HealthCheck.Conclusion != "healthy" {
			t.Fatalf("unexpected health check: %+v", p.HealthCheck)
		}
		if p.AppointmentDate == nil || !p.AppointmentDate.Equal(when) {
			t.Fatalf("unexpected date: %v", p.AppointmentDate)
		}
	})

	t.Run("building twice from the same form yields equal payloads", func(t *testing.T) {
		form := seededForm(entities.AppointmentStatusProcessing)
		p1, err := BuildPayload(entities.AppointmentStatusConfirmed, form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p2, err := BuildPayload(entities.AppointmentStatusConfirmed, form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(p1, p2) {
			t.Fatalf("payloads differ:\n%+v\n%+v", p1, p2)
		}
	})
}

func TestTransitionUseCase_Submit(t *testing.T) {
	t.Run("role not allowed", func(t *testing.T) {
		uc := NewTransitionUseCase(nil)
		form := seededForm(entities.AppointmentStatusConfirmed)
		_, err := uc.Submit(context.Background(), workflow.RoleStaff, entities.AppointmentStatusCheckedIn, form)
		if !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})

	t.Run("transition not legal from current status", func(t *testing.T) {
		uc := NewTransitionUseCase(nil)
		form := seededForm(entities.AppointmentStatusProcessing)
		_, err := uc.Submit(context.Background(), workflow.RoleStaff, entities.AppointmentStatusPaid, form)
		if !errors.Is(err, ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
	})

	t.Run("success refetches and reseeds the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAppointmentStatusClient(ctrl)
		uc := NewTransitionUseCase(client)

		form := seededForm(entities.AppointmentStatusProcessing)
		form.SetNote("draft note")

		updated := entities.AppointmentWorkflow{ID: "apt-1", Status: entities.AppointmentStatusConfirmed}
		fresh := entities.AppointmentWorkflow{ID: "apt-1", AppointmentDetailID: "42", Status: entities.AppointmentStatusConfirmed, Note: "committed note"}

		client.EXPECT().UpdateAppointmentStatus(gomock.Any(), gomock.AssignableToTypeOf(entities.UpdateStatusPayload{})).DoAndReturn(
			func(_ context.Context, p entities.UpdateStatusPayload) (entities.AppointmentWorkflow, error) {
				if p.AppointmentStatus != entities.AppointmentStatusConfirmed || p.Note != "draft note" {
					t.Fatalf("unexpected payload: %+v", p)
				}
				return updated, nil
			},
		)
		client.EXPECT().FetchAppointmentDetail(gomock.Any(), "apt-1").Return(fresh, nil)

		res, err := uc.Submit(context.Background(), workflow.RoleStaff, entities.AppointmentStatusConfirmed, form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Note != "committed note" {
			t.Fatalf("expected refetched record, got %+v", res)
		}
		if form.ServerStatus != entities.AppointmentStatusConfirmed || form.Note != "committed note" {
			t.Fatalf("expected form reseeded from server, got %+v", form)
		}
	})

	t.Run("refetch failure falls back to update response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAppointmentStatusClient(ctrl)
		uc := NewTransitionUseCase(client)

		form := seededForm(entities.AppointmentStatusProcessing)
		updated := entities.AppointmentWorkflow{ID: "apt-1", AppointmentDetailID: "42", Status: entities.AppointmentStatusConfirmed}

		client.EXPECT().UpdateAppointmentStatus(gomock.Any(), gomock.Any()).Return(updated, nil)
		client.EXPECT().FetchAppointmentDetail(gomock.Any(), "apt-1").Return(entities.AppointmentWorkflow{}, errors.New("network"))

		res, err := uc.Submit(context.Background(), workflow.RoleStaff, entities.AppointmentStatusConfirmed, form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.AppointmentStatusConfirmed {
			t.Fatalf("expected update response, got %+v", res)
		}
		if form.ServerStatus != entities.AppointmentStatusConfirmed {
			t.Fatalf("expected form reseeded, got %+v", form)
		}
	})

	t.Run("update failure leaves the draft untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAppointmentStatusClient(ctrl)
		uc := NewTransitionUseCase(client)

		form := seededForm(entities.AppointmentStatusProcessing)
		form.SetNote("draft note")

		client.EXPECT().UpdateAppointmentStatus(gomock.Any(), gomock.Any()).Return(entities.AppointmentWorkflow{}, errors.New("backend down"))

		_, err := uc.Submit(context.Background(), workflow.RoleStaff, entities.AppointmentStatusConfirmed, form)
		if err == nil {
			t.Fatalf("expected error")
		}
		if form.Note != "draft note" || form.ServerStatus != entities.AppointmentStatusProcessing {
			t.Fatalf("expected draft preserved, got %+v", form)
		}
	})

	t.Run("duplicate submit for the same appointment is rejected, other appointments proceed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAppointmentStatusClient(ctrl)
		uc := NewTransitionUseCase(client)

		form := seededForm(entities.AppointmentStatusProcessing)

		release := make(chan struct{})
		firstDone := make(chan error, 1)
		duplicateErr := make(chan error, 1)
		otherErr := make(chan error, 1)

		// First expectation blocks the apt-1 submit; while it is held,
		// a duplicate apt-1 submit and an unrelated apt-2 submit run.
		client.EXPECT().UpdateAppointmentStatus(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.UpdateStatusPayload) (entities.AppointmentWorkflow, error) {
				duplicate := seededForm(entities.AppointmentStatusProcessing)
				_, err := uc.Submit(context.Background(), workflow.RoleStaff, entities.AppointmentStatusConfirmed, duplicate)
				duplicateErr <- err

				other := seededFormFor("apt-2", entities.AppointmentStatusProcessing)
				_, err = uc.Submit(context.Background(), workflow.RoleStaff, entities.AppointmentStatusConfirmed, other)
				otherErr <- err

				<-release
				return entities.AppointmentWorkflow{ID: "apt-1", Status: entities.AppointmentStatusConfirmed}, nil
			},
		)
		client.EXPECT().UpdateAppointmentStatus(gomock.Any(), gomock.Any()).Return(
			entities.AppointmentWorkflow{ID: "apt-2", Status: entities.AppointmentStatusConfirmed}, nil)
		client.EXPECT().FetchAppointmentDetail(gomock.Any(), "apt-1").Return(
			entities.AppointmentWorkflow{ID: "apt-1", Status: entities.AppointmentStatusConfirmed}, nil)
		client.EXPECT().FetchAppointmentDetail(gomock.Any(), "apt-2").Return(
			entities.AppointmentWorkflow{ID: "apt-2", Status: entities.AppointmentStatusConfirmed}, nil)

		go func() {
			_, err := uc.Submit(context.Background(), workflow.RoleStaff, entities.AppointmentStatusConfirmed, form)
			firstDone <- err
		}()

		if err := <-duplicateErr; !errors.Is(err, ErrTransitionInFlight) {
			t.Fatalf("expected ErrTransitionInFlight for the duplicate, got %v", err)
		}
		if err := <-otherErr; err != nil {
			t.Fatalf("unexpected error for unrelated appointment: %v", err)
		}
		close(release)
		if err := <-firstDone; err != nil {
			t.Fatalf("unexpected error on first submit: %v", err)
		}
	})
}

func TestTransitionUseCase_Reject(t *testing.T) {
	t.Run("empty reason", func(t *testing.T) {
		uc := NewTransitionUseCase(nil)
		form := seededForm(entities.AppointmentStatusConfirmed)
		_, err := uc.Reject(context.Background(), workflow.RoleStaff, "   ", form)
		if !errors.Is(err, ErrMissingRejectReason) {
			t.Fatalf("expected ErrMissingRejectReason, got %v", err)
		}
	})

	t.Run("reason overwrites the drafted note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAppointmentStatusClient(ctrl)
		uc := NewTransitionUseCase(client)

		form := seededForm(entities.AppointmentStatusConfirmed)
		form.SetNote("clinical draft that must be replaced")

		cancelled := entities.AppointmentWorkflow{ID: "apt-1", Status: entities.AppointmentStatusCancelled, Note: "owner cancelled"}
		client.EXPECT().UpdateAppointmentStatus(gomock.Any(), gomock.AssignableToTypeOf(entities.UpdateStatusPayload{})).DoAndReturn(
			func(_ context.Context, p entities.UpdateStatusPayload) (entities.AppointmentWorkflow, error) {
				if p.AppointmentStatus != entities.AppointmentStatusCancelled {
					t.Fatalf("expected CANCELLED, got %v", p.AppointmentStatus)
				}
				if p.Note != "owner cancelled" {
					t.Fatalf("expected reason as note, got %q", p.Note)
				}
				return cancelled, nil
			},
		)
		client.EXPECT().FetchAppointmentDetail(gomock.Any(), "apt-1").Return(cancelled, nil)

		res, err := uc.Reject(context.Background(), workflow.RoleStaff, " owner cancelled ", form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.AppointmentStatusCancelled {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

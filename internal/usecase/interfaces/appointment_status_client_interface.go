package interfaces

import (
	"context"
	"vetpoint/internal/domain/entities"
)

// IAppointmentStatusClient is the appointment-detail collaborator the
// transition service talks to: fetch the authoritative record, submit a
// status update. The appointment use case satisfies it in-process; the
// console build satisfies it with an HTTP client.
type IAppointmentStatusClient interface {
	FetchAppointmentDetail(ctx context.Context, id string) (entities.AppointmentWorkflow, error)
	UpdateAppointmentStatus(ctx context.Context, payload entities.UpdateStatusPayload) (entities.AppointmentWorkflow, error)
}

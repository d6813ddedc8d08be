package interfaces

import (
	"context"
	"vetpoint/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for AppointmentWorkflow.
//
// The service must be able to:
//   - create an appointment workflow record
//   - resolve a record by id or by appointment detail id (gateway order code)
//   - replace the full record on a status transition
//   - update only the vet assignment on the assign-vet transition
//   - attach/refresh the payment reference

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.AppointmentWorkflow) (entities.AppointmentWorkflow, error)
	GetByID(ctx context.Context, id string) (entities.AppointmentWorkflow, error)
	GetByAppointmentDetailID(ctx context.Context, detailID string) (entities.AppointmentWorkflow, error)
	Replace(ctx context.Context, a entities.AppointmentWorkflow) (entities.AppointmentWorkflow, error)
	UpdateVetAssignment(ctx context.Context, id string, vetID string, status entities.AppointmentStatus) (entities.AppointmentWorkflow, error)
	UpdatePaymentRef(ctx context.Context, id string, ref entities.PaymentRef) (entities.AppointmentWorkflow, error)
}

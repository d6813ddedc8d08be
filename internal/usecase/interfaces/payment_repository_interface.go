package interfaces

import (
	"context"
	"vetpoint/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByAppointmentDetailID(ctx context.Context, detailID string) ([]entities.Payment, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
}

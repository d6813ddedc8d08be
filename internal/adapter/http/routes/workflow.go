package routes

import (
	"vetpoint/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAppointments = "/appointments"
	PathPayments     = "/payments"
)

func addWorkflowRoutes(rg *gin.RouterGroup, appointmentHandler *handlers.AppointmentHandler, paymentHandler *handlers.PaymentHandler) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", appointmentHandler.CreateAppointment)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
		appointments.GET("/:id/steps", appointmentHandler.GetStepState)

		// Status transitions, one endpoint per workflow verb.
		appointments.PATCH("/:id/confirm", appointmentHandler.Confirm)
		appointments.PATCH("/:id/reject", appointmentHandler.Reject)
		appointments.PATCH("/:id/assign-vet", appointmentHandler.AssignVet)
		appointments.PATCH("/:id/complete-exam", appointmentHandler.CompleteExam)
		appointments.PATCH("/:id/finalize", appointmentHandler.Finalize)
	}

	payments := rg.Group(PathPayments)
	{
		// The gateway return route must precede the param routes so
		// "gateway" is never captured as an appointment_detail_id.
		payments.GET("/gateway/return", paymentHandler.GatewayReturn)

		payments.POST("/:appointment_detail_id", paymentHandler.CreatePaymentByAppointmentDetailID)
		payments.GET("/:appointment_detail_id", paymentHandler.GetPaymentByAppointmentDetailID)
	}
}

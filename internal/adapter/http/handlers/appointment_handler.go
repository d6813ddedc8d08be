package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "vetpoint/internal/adapter/http/dto/request"
	response "vetpoint/internal/adapter/http/dto/response"
	"vetpoint/internal/domain/entities"
	"vetpoint/internal/domain/workflow"
	"vetpoint/internal/usecase"
	"vetpoint/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTransitionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSITION_INPUT", "Invalid transition payload", http.StatusBadRequest)
)

// actorRoleHeader carries the signed-in actor's role. Session handling is
// an external collaborator; the workflow only needs the role for its
// transition guards.
const actorRoleHeader = "X-Actor-Role"

// AppointmentHandler handles HTTP requests for the appointment workflow.

type AppointmentHandler struct {
	appointments usecase.IAppointmentUseCase
	transitions  usecase.ITransitionUseCase
}

func NewAppointmentHandler(appointments usecase.IAppointmentUseCase, transitions usecase.ITransitionUseCase) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, transitions: transitions}
}

// CreateAppointment registers a new workflow record in PROCESSING.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload request.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	detailID := payload.ResolveDetailID()
	if detailID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.appointments.Create(c.Request.Context(), detailID, payload.PetID, payload.HealthConditionID, payload.MicrochipItemID)
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

// GetAppointment returns the authoritative appointment detail.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	a, err := h.appointments.FetchAppointmentDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(a))
}

// GetStepState reports, per step, whether the actor may browse or edit it.
// An optional viewed_step query parameter re-selects a past step; asking
// for a step ahead of the live status is rejected.
func (h *AppointmentHandler) GetStepState(c *gin.Context) {
	a, err := h.appointments.FetchAppointmentDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var form workflow.FormState
	form.Seed(a)
	if raw := c.Query("viewed_step"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_VIEWED_STEP", "Viewed step must be a step number", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		step := workflow.Step(n)
		if err := form.SetViewedStep(&step); err != nil {
			appErr := pkg.NewDomainErrorSimple("VIEWED_STEP_AHEAD", "Viewed step is ahead of the appointment status", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	role := workflow.Role(c.GetHeader(actorRoleHeader))
	c.JSON(http.StatusOK, response.FromStepState(a, form.ViewedStep(), role))
}

// Confirm moves PROCESSING -> CONFIRMED (staff).
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.submitSnapshotTransition(c, entities.AppointmentStatusConfirmed)
}

// CompleteExam moves CHECKED_IN -> PROCESSED with the clinical record
// (veterinarian).
func (h *AppointmentHandler) CompleteExam(c *gin.Context) {
	h.submitSnapshotTransition(c, entities.AppointmentStatusProcessed)
}

// Finalize moves PAID -> COMPLETED (staff).
func (h *AppointmentHandler) Finalize(c *gin.Context) {
	h.submitSnapshotTransition(c, entities.AppointmentStatusCompleted)
}

func (h *AppointmentHandler) submitSnapshotTransition(c *gin.Context, target entities.AppointmentStatus) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	form, appErr := h.seedForm(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	payload.Apply(form)

	role := workflow.Role(c.GetHeader(actorRoleHeader))
	updated, err := h.transitions.Submit(c.Request.Context(), role, target, form)
	if err != nil {
		log.Printf("[appointment][handler] transition failed appointment_id=%s target=%s err=%v", c.Param("id"), target, err)
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

// AssignVet moves CONFIRMED -> CHECKED_IN (veterinarian). Only the vet
// selection travels to the backend on this transition.
func (h *AppointmentHandler) AssignVet(c *gin.Context) {
	var payload request.AssignVetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	vetID := payload.ResolveVetID()
	if vetID == "" {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	form, appErr := h.seedForm(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	form.PatchVetSelection(workflow.VetSelectionPatch{
		VetID:           &vetID,
		AppointmentDate: payload.AppointmentDate,
	})

	role := workflow.Role(c.GetHeader(actorRoleHeader))
	updated, err := h.transitions.Submit(c.Request.Context(), role, entities.AppointmentStatusCheckedIn, form)
	if err != nil {
		log.Printf("[appointment][handler] assign-vet failed appointment_id=%s err=%v", c.Param("id"), err)
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

// Reject cancels the appointment with the actor-supplied reason (staff).
func (h *AppointmentHandler) Reject(c *gin.Context) {
	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	reason := payload.ResolveReason()
	if reason == "" {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	form, appErr := h.seedForm(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	payload.Apply(form)

	role := workflow.Role(c.GetHeader(actorRoleHeader))
	updated, err := h.transitions.Reject(c.Request.Context(), role, reason, form)
	if err != nil {
		log.Printf("[appointment][handler] reject failed appointment_id=%s err=%v", c.Param("id"), err)
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

func (h *AppointmentHandler) seedForm(c *gin.Context) (*workflow.FormState, *pkg.AppError) {
	a, err := h.appointments.FetchAppointmentDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		return nil, mapAppointmentError(err)
	}
	var form workflow.FormState
	form.Seed(a)
	return &form, nil
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID), errors.Is(err, usecase.ErrInvalidDetailID), errors.Is(err, usecase.ErrInvalidTargetStatus),
		errors.Is(err, usecase.ErrMissingVetSelection), errors.Is(err, usecase.ErrMissingRejectReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRoleNotAllowed):
		return pkg.NewDomainErrorSimple("ROLE_NOT_ALLOWED", "Actor role may not submit this step", http.StatusForbidden)
	case errors.Is(err, usecase.ErrTransitionInFlight):
		return pkg.NewDomainErrorSimple("TRANSITION_IN_FLIGHT", "A transition is already being submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransitionNotAllowed), errors.Is(err, usecase.ErrIllegalTransition), errors.Is(err, usecase.ErrAppointmentIsFinalized):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Transition is not legal from the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotSettled):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_SETTLED", "Payment has not been settled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

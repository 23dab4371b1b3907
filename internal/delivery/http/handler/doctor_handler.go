package handler

import (
	"net/http"

	"medtrack/internal/delivery/dto"
	"medtrack/internal/delivery/http/middleware"
	"medtrack/internal/delivery/http/view"
	"medtrack/internal/domain/entity"
	"medtrack/internal/usecase"
	"medtrack/pkg/response"
	"medtrack/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type DoctorHandler struct {
	dashboardUsecase   usecase.DashboardUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	renderer           *view.Renderer
	log                *logrus.Logger
}

func NewDoctorHandler(
	dashboardUsecase usecase.DashboardUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
	renderer *view.Renderer,
	log *logrus.Logger,
) *DoctorHandler {
	return &DoctorHandler{
		dashboardUsecase:   dashboardUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		renderer:           renderer,
		log:                log,
	}
}

// Dashboard handles GET /doctor
func (h *DoctorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	dashboard, err := h.dashboardUsecase.DoctorDashboard(r.Context(), identity)
	if err != nil {
		response.InternalServerError(w, "Failed to load appointments")
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PageDoctorDashboard, dashboard)
}

// AddPrecautions handles POST /doctor/appointment/{id}/precautions
func (h *DoctorHandler) AddPrecautions(w http.ResponseWriter, r *http.Request) {
	var req dto.PrecautionsRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.apply(w, r, func(identity *entity.Identity, id uuid.UUID) error {
		return h.appointmentUsecase.AddPrecautions(r.Context(), identity, id, &req)
	})
}

// Reschedule handles POST /doctor/appointment/{id}/reschedule
func (h *DoctorHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req dto.RescheduleAppointmentRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.apply(w, r, func(identity *entity.Identity, id uuid.UUID) error {
		return h.appointmentUsecase.Reschedule(r.Context(), identity, id, &req)
	})
}

// Cancel handles POST /doctor/appointment/{id}/cancel
func (h *DoctorHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(identity *entity.Identity, id uuid.UUID) error {
		return h.appointmentUsecase.Cancel(r.Context(), identity, id)
	})
}

// Confirm handles POST /doctor/appointment/{id}/confirm
func (h *DoctorHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(identity *entity.Identity, id uuid.UUID) error {
		return h.appointmentUsecase.Confirm(r.Context(), identity, id)
	})
}

// History handles GET /doctor/appointment/{id}/history
func (h *DoctorHandler) History(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "Appointment not found")
		return
	}

	history, err := h.appointmentUsecase.History(r.Context(), identity, id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound, usecase.ErrAppointmentNotOwned:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to load history")
		}
		return
	}

	response.JSON(w, http.StatusOK, history)
}

func (h *DoctorHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := h.validator.DecodeForm(r, dst); err != nil {
		response.BadRequest(w, "Invalid form")
		return false
	}
	if err := h.validator.Validate(dst); err != nil {
		response.BadRequest(w, h.validator.Summary(err))
		return false
	}
	return true
}

// apply runs a lifecycle action and returns to the dashboard. Actions on unknown,
// foreign, or ineligible appointments are skipped; only store failures surface.
func (h *DoctorHandler) apply(w http.ResponseWriter, r *http.Request, action func(*entity.Identity, uuid.UUID) error) {
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.log.Infof("Ignoring action on malformed appointment id %q", mux.Vars(r)["id"])
		response.Redirect(w, r, "/doctor")
		return
	}

	if err := action(identity, id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound, usecase.ErrAppointmentNotOwned, usecase.ErrInvalidTransition, usecase.ErrForbidden:
			h.log.WithField("appointment_id", id.String()).Infof("Skipped %s: %v", r.URL.Path, err)
		default:
			response.InternalServerError(w, "Failed to update appointment")
			return
		}
	}

	response.Redirect(w, r, "/doctor")
}

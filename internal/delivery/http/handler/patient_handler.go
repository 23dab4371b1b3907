package handler

import (
	"net/http"

	"medtrack/internal/delivery/dto"
	"medtrack/internal/delivery/http/middleware"
	"medtrack/internal/delivery/http/view"
	"medtrack/internal/usecase"
	"medtrack/pkg/response"
	"medtrack/pkg/validator"

	"github.com/sirupsen/logrus"
)

type PatientHandler struct {
	dashboardUsecase   usecase.DashboardUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	renderer           *view.Renderer
	log                *logrus.Logger
}

func NewPatientHandler(
	dashboardUsecase usecase.DashboardUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
	renderer *view.Renderer,
	log *logrus.Logger,
) *PatientHandler {
	return &PatientHandler{
		dashboardUsecase:   dashboardUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		renderer:           renderer,
		log:                log,
	}
}

// Profile handles GET /patient/dashboard
func (h *PatientHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	profile, err := h.dashboardUsecase.PatientProfile(r.Context(), identity)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.Redirect(w, r, "/logout")
		default:
			response.InternalServerError(w, "Failed to load profile")
		}
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PagePatientProfile, profile)
}

// Dashboard handles GET /patient
func (h *PatientHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	dashboard, err := h.dashboardUsecase.PatientDashboard(r.Context(), identity)
	if err != nil {
		response.InternalServerError(w, "Failed to load appointments")
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PagePatientDashboard, dashboard)
}

// Book handles POST /patient/book
func (h *PatientHandler) Book(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentityFromContext(r.Context())

	var req dto.BookAppointmentRequest
	if err := h.validator.DecodeForm(r, &req); err != nil {
		response.BadRequest(w, "Invalid form")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Summary(err))
		return
	}

	if _, err := h.appointmentUsecase.BookAppointment(r.Context(), identity, &req); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.BadRequest(w, "Invalid doctor")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Redirect(w, r, "/patient")
}

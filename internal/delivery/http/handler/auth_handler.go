package handler

import (
	"net/http"
	"time"

	"medtrack/internal/delivery/dto"
	"medtrack/internal/delivery/http/middleware"
	"medtrack/internal/delivery/http/view"
	"medtrack/internal/usecase"
	"medtrack/pkg/response"
	"medtrack/pkg/validator"

	"github.com/sirupsen/logrus"
)

const invalidCredentialsMessage = "Invalid credentials"

type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	validator    *validator.CustomValidator
	renderer     *view.Renderer
	log          *logrus.Logger
	sessionTTL   time.Duration
	secureCookie bool
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *validator.CustomValidator,
	renderer *view.Renderer,
	log *logrus.Logger,
	sessionTTL time.Duration,
	secureCookie bool,
) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		validator:    validator,
		renderer:     renderer,
		log:          log,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

// RegisterPatient handles POST /register/patient
func (h *AuthHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := h.validator.DecodeForm(r, &req); err != nil {
		response.BadRequest(w, "Invalid form")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Summary(err))
		return
	}

	if _, err := h.authUsecase.RegisterPatient(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrPatientExists:
			response.Conflict(w, "Patient exists")
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Redirect(w, r, "/login")
}

// RegisterDoctor handles POST /register/doctor
func (h *AuthHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := h.validator.DecodeForm(r, &req); err != nil {
		response.BadRequest(w, "Invalid form")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Summary(err))
		return
	}

	if _, err := h.authUsecase.RegisterDoctor(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrDoctorExists:
			response.Conflict(w, "Doctor exists")
		default:
			response.InternalServerError(w, "Failed to register doctor")
		}
		return
	}

	response.Redirect(w, r, "/login")
}

// Login handles POST /check. Any failure re-renders the login form.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := h.validator.DecodeForm(r, &req); err != nil {
		h.renderer.Render(w, http.StatusOK, view.PageLogin, view.LoginPage{Message: invalidCredentialsMessage})
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.renderer.Render(w, http.StatusOK, view.PageLogin, view.LoginPage{Message: invalidCredentialsMessage})
		return
	}

	session, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			h.renderer.Render(w, http.StatusOK, view.PageLogin, view.LoginPage{Message: invalidCredentialsMessage})
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	middleware.SetSessionCookie(w, session.Token, h.sessionTTL, h.secureCookie)
	response.Redirect(w, r, "/"+session.Role)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.GetTokenFromContext(r.Context()); ok {
		if err := h.authUsecase.Logout(r.Context(), token); err != nil {
			h.log.Warnf("Failed to destroy session: %+v", err)
		}
	}

	middleware.ClearSessionCookie(w)
	response.Redirect(w, r, "/")
}

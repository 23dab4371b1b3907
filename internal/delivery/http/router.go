package http

import (
	"net/http"

	"medtrack/internal/delivery/http/handler"
	"medtrack/internal/delivery/http/middleware"
	"medtrack/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	pageHandler       *handler.PageHandler
	authHandler       *handler.AuthHandler
	patientHandler    *handler.PatientHandler
	doctorHandler     *handler.DoctorHandler
	sessionMiddleware *middleware.SessionMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		pageHandler:       pageHandler,
		authHandler:       authHandler,
		patientHandler:    patientHandler,
		doctorHandler:     doctorHandler,
		sessionMiddleware: sessionMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/healthz", r.healthCheck).Methods(http.MethodGet)

	// Public pages
	r.router.HandleFunc("/", r.pageHandler.Index).Methods(http.MethodGet)
	r.router.HandleFunc("/about", r.pageHandler.About).Methods(http.MethodGet)
	r.router.HandleFunc("/contactus", r.pageHandler.Contact).Methods(http.MethodGet)
	r.router.HandleFunc("/register", r.pageHandler.Register).Methods(http.MethodGet)
	r.router.HandleFunc("/login", r.pageHandler.Login).Methods(http.MethodGet)

	// Auth routes (public)
	r.router.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	r.router.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	r.router.HandleFunc("/check", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodGet)

	// Patient routes
	r.router.Handle("/patient/dashboard", middleware.RequireSession(http.HandlerFunc(r.patientHandler.Profile))).Methods(http.MethodGet)
	r.router.Handle("/patient", patientOnly(r.patientHandler.Dashboard)).Methods(http.MethodGet)
	r.router.Handle("/patient/book", patientOnly(r.patientHandler.Book)).Methods(http.MethodPost)

	// Doctor routes
	r.router.Handle("/doctor", doctorOnly(r.doctorHandler.Dashboard)).Methods(http.MethodGet)
	appointment := r.router.PathPrefix("/doctor/appointment/{id}").Subrouter()
	appointment.Use(middleware.RequireDoctor)
	appointment.HandleFunc("/precautions", r.doctorHandler.AddPrecautions).Methods(http.MethodPost)
	appointment.HandleFunc("/reschedule", r.doctorHandler.Reschedule).Methods(http.MethodPost)
	appointment.HandleFunc("/cancel", r.doctorHandler.Cancel).Methods(http.MethodPost)
	appointment.HandleFunc("/confirm", r.doctorHandler.Confirm).Methods(http.MethodPost)
	appointment.HandleFunc("/history", r.doctorHandler.History).Methods(http.MethodGet)

	// Sessions are resolved before any route guard runs
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.sessionMiddleware.LoadSession)

	return r.router
}

func patientOnly(h http.HandlerFunc) http.Handler {
	return middleware.RequirePatient(h)
}

func doctorOnly(h http.HandlerFunc) http.Handler {
	return middleware.RequireDoctor(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package http

import (
	"net/http"

	"odontocare/internal/delivery/http/handler"
	"odontocare/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

// UserServiceRouter wires the identity and administration API.
type UserServiceRouter struct {
	router         *mux.Router
	infoHandler    *handler.InfoHandler
	authHandler    *handler.AuthHandler
	patientHandler *handler.PatientHandler
	doctorHandler  *handler.DoctorHandler
	centerHandler  *handler.CenterHandler
	verifyHandler  *handler.VerifyHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewUserServiceRouter(
	infoHandler *handler.InfoHandler,
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	centerHandler *handler.CenterHandler,
	verifyHandler *handler.VerifyHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *UserServiceRouter {
	return &UserServiceRouter{
		router:         mux.NewRouter(),
		infoHandler:    infoHandler,
		authHandler:    authHandler,
		patientHandler: patientHandler,
		doctorHandler:  doctorHandler,
		centerHandler:  centerHandler,
		verifyHandler:  verifyHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *UserServiceRouter) Setup() *mux.Router {
	r.router.HandleFunc("/", r.infoHandler.Root).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.infoHandler.Health).Methods(http.MethodGet)

	// Auth routes (public)
	auth := r.router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := r.router.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Verify routes (protected, any role): consumed by the appointment
	// service, so they answer flat JSON instead of the envelope.
	verify := r.router.PathPrefix("/verify").Subrouter()
	verify.Use(r.authMiddleware.Authenticate)
	verify.HandleFunc("/token", r.authHandler.VerifyToken).Methods(http.MethodGet)
	verify.HandleFunc("/pacientes/{id}", r.verifyHandler.VerifyPatient).Methods(http.MethodGet)
	verify.HandleFunc("/doctores/{id}", r.verifyHandler.VerifyDoctor).Methods(http.MethodGet)
	verify.HandleFunc("/centros/{id}", r.verifyHandler.VerifyCenter).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := r.router.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/pacientes", r.patientHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/pacientes", r.patientHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/pacientes/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/pacientes/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/pacientes/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/doctores", r.doctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctores", r.doctorHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/doctores/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/doctores/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctores/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/centros", r.centerHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/centros", r.centerHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/centros/{id}", r.centerHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/centros/{id}", r.centerHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/centros/{id}", r.centerHandler.Delete).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// AppointmentServiceRouter wires the booking API.
type AppointmentServiceRouter struct {
	router             *mux.Router
	infoHandler        *handler.InfoHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewAppointmentServiceRouter(
	infoHandler *handler.InfoHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *AppointmentServiceRouter {
	return &AppointmentServiceRouter{
		router:             mux.NewRouter(),
		infoHandler:        infoHandler,
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *AppointmentServiceRouter) Setup() *mux.Router {
	r.router.HandleFunc("/", r.infoHandler.Root).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.infoHandler.Health).Methods(http.MethodGet)

	citas := r.router.PathPrefix("/citas").Subrouter()
	citas.Use(r.authMiddleware.Authenticate)
	citas.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	citas.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	citas.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	// Cancellation is the only mutation, exposed as PUT on the resource.
	citas.HandleFunc("/{id}", r.appointmentHandler.Cancel).Methods(http.MethodPut)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

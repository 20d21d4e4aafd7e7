package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate).Post("/", appointmentController.Book)
	router.With(middlewares.Authenticate).Get("/", appointmentController.GetPatientAppointments)
	router.With(middlewares.Authenticate).Get("/practitioner", appointmentController.GetPractitionerAppointments)
	router.With(middlewares.Authenticate).Patch("/{appointmentID}/status", appointmentController.UpdateStatus)
}

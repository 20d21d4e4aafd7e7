package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPractitionerRoutes(router chi.Router, middlewares *middlewares.Middlewares, practitionerController *controllers.PractitionerController, appointmentController *controllers.AppointmentController) {
	router.Get("/", practitionerController.FindAll)
	router.Get("/{practitionerID}", practitionerController.FindByID)
	router.Get("/{practitionerID}/reviews", practitionerController.FindReviews)
	router.With(middlewares.Authenticate).Post("/{practitionerID}/appointments", appointmentController.BookFromPractitioner)
}

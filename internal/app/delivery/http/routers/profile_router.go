package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.With(middlewares.Authenticate).Get("/profile", profileController.GetProfileBySession)
	router.With(middlewares.Authenticate).Put("/profile", profileController.UpdateProfileBySession)
}

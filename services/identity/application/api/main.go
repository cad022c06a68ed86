package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/blooprint/pkg/app"
	"github.com/ghuser/blooprint/services/identity/application/handlers"
	appsvcs "github.com/ghuser/blooprint/services/identity/application/services"
)

// AuthRoutes registers registration and login endpoints on the provided chi router.
func AuthRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Post("/register/", handlers.NewRegisterHandler(svcs).Execute)
	r.Post("/login/", handlers.NewLoginHandler(svcs).Execute)
}

package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/blooprint/pkg/app"
	"github.com/ghuser/blooprint/pkg/auth"
	"github.com/ghuser/blooprint/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/blooprint/services/inventory/application/services"
)

// ItemRoutes registers inventory endpoints on the provided chi router.
// Reads are open; mutations require a bearer token.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Get("/items-list/", handlers.NewListItemsHandler(svcs).Execute)

	r.Route("/items", func(r chi.Router) {
		r.Get("/{id}/", handlers.NewGetItemHandler(svcs).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.Tokens, a.Logger))
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Put("/{id}/", handlers.NewPutItemHandler(svcs).Execute)
			r.Delete("/{id}/", handlers.NewDeleteItemHandler(svcs).Execute)
		})
	})
}

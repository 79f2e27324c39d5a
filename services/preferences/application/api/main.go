package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/assettrack/services/preferences/application/handlers"
	appsvcs "github.com/ghuser/assettrack/services/preferences/application/services"
)

// PreferencesRoutes registers preference endpoints on the provided chi router.
func PreferencesRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/preferences", func(r chi.Router) {
		r.Get("/", handlers.NewGetPreferencesHandler(svcs).Execute)
		r.Put("/theme", handlers.NewPutThemeHandler(svcs).Execute)
		r.Post("/theme/toggle", handlers.NewToggleThemeHandler(svcs).Execute)
		r.Put("/logo", handlers.NewPutLogoHandler(svcs).Execute)
		r.Delete("/logo", handlers.NewDeleteLogoHandler(svcs).Execute)
	})
}

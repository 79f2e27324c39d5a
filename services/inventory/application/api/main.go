package api

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/assettrack/pkg/app"
	"github.com/ghuser/assettrack/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/assettrack/services/inventory/application/services"
	"github.com/ghuser/assettrack/services/inventory/application/subscribers"
)

// InventoryRoutes registers inventory endpoints on the provided chi router and
// subscribes the operation log to mutation events. The subscription lives
// until ctx is cancelled.
func InventoryRoutes(ctx context.Context, r chi.Router, a *app.Application) error {
	svcs, err := appsvcs.New(ctx, a)
	if err != nil {
		return err
	}

	oplog := subscribers.NewOperationLog(a.Config.OpLogCapacity)
	if a.EventBus != nil {
		h := subscribers.NewInventoryMutatedHandler(oplog, a.Logger.With("subscriber", "operation_log"))
		if err := subscribers.Register(ctx, a.EventBus, h); err != nil {
			return err
		}
	}

	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", handlers.NewGetInventoryHandler(svcs).Execute)
		r.Get("/stats", handlers.NewGetStatsHandler(svcs).Execute)
		r.Get("/chart", handlers.NewGetChartHandler(svcs).Execute)
		r.Get("/view", handlers.NewGetViewHandler(svcs).Execute)
		r.Get("/operations", handlers.NewGetOperationsHandler(oplog).Execute)
		r.Post("/reset", handlers.NewPostResetHandler(svcs).Execute)

		r.Post("/blocks", handlers.NewPostBlockHandler(svcs).Execute)
		r.Route("/blocks/{blockID}", func(r chi.Router) {
			r.Get("/", handlers.NewGetBlockHandler(svcs).Execute)
			r.Put("/", handlers.NewPutBlockHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteBlockHandler(svcs).Execute)

			r.Post("/rooms", handlers.NewPostRoomHandler(svcs).Execute)
			r.Route("/rooms/{roomID}", func(r chi.Router) {
				r.Put("/", handlers.NewPutRoomHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteRoomHandler(svcs).Execute)

				r.Get("/items", handlers.NewGetItemsHandler(svcs).Execute)
				r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
				r.Get("/items/{itemID}", handlers.NewGetItemHandler(svcs).Execute)
				r.Put("/items/{itemID}", handlers.NewPutItemHandler(svcs).Execute)
				r.Delete("/items/{itemID}", handlers.NewDeleteItemHandler(svcs).Execute)
			})
		})
	})
	return nil
}

package seed

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/assettrack/services/inventory/domain/models"
)

// Default returns a fresh copy of the built-in campus dataset.
func Default() models.Inventory {
	return models.NewInventory(
		models.Block{ID: "block-1", Name: "Block A - Science Wing", Rooms: []models.Room{
			{ID: "room-1-1", Name: "Physics Lab (A-101)", Items: []models.Item{
				item("item-1-1-1", "Microscopes", 15, 350),
				item("item-1-1-2", "Beakers (500ml)", 150, 5),
				item("item-1-1-3", "Bunsen Burners", 20, 75),
			}},
			{ID: "room-1-2", Name: "Chemistry Lab (A-102)", Items: []models.Item{
				item("item-1-2-1", "Test Tubes", 500, 0.5),
				item("item-1-2-2", "Safety Goggles", 50, 10),
			}},
		}},
		models.Block{ID: "block-2", Name: "Block B - Arts & Humanities", Rooms: []models.Room{
			{ID: "room-2-1", Name: "Art Studio (B-205)", Items: []models.Item{
				item("item-2-1-1", "Easels", 25, 120),
				item("item-2-1-2", "Canvas (24x36)", 100, 15),
			}},
		}},
		models.Block{ID: "block-3", Name: "Block C - Computer Science", Rooms: []models.Room{
			{ID: "room-3-1", Name: "Main Computer Lab (C-301)", Items: []models.Item{
				item("item-3-1-1", "Desktop Computers", 60, 800),
				item("item-3-1-2", "Ergonomic Chairs", 60, 150),
				item("item-3-1-3", "Projectors", 4, 400),
			}},
			{ID: "room-3-2", Name: "Networking Lab (C-302)", Items: []models.Item{
				item("item-3-2-1", "Rack Servers", 8, 2500),
				item("item-3-2-2", "Cisco Routers", 15, 500),
			}},
		}},
	)
}

func item(id, name string, qty int64, price float64) models.Item {
	return models.Item{
		ID:        models.ItemID(id),
		Name:      models.Name(name),
		Quantity:  qty,
		UnitPrice: decimal.NewFromFloat(price),
	}
}

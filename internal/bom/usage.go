package bom

import (
	"context"
	"sort"

	"rasoi/internal/units"
)

// SoldLine is one already-filtered sale supplied by the upstream
// ordering system: menu item, units sold, optional modifier option.
type SoldLine struct {
	MenuItemID     string  `json:"menu_item_id"`
	Quantity       float64 `json:"quantity"`
	ModifierOption *string `json:"modifier_option,omitempty"`
}

// UsageRow is the aggregate consumption of one inventory item,
// normalized into its primary unit. When the inventory record is
// missing there is no primary unit to fold into, so one row is emitted
// per declared unit with the quantity as accumulated.
type UsageRow struct {
	InventoryItemID string  `json:"inventory_item_id"`
	Name            string  `json:"name,omitempty"`
	Unit            string  `json:"unit"`
	Quantity        float64 `json:"quantity"`
}

// ComputeUsage explodes every sold line with a fresh visited set,
// merges the results additively, and normalizes each item's total into
// its primary unit once at the end. The result is independent of line
// order and of how a requirement was split across declared units.
func (e *Engine) ComputeUsage(ctx context.Context, restaurantID string, lines []SoldLine) ([]UsageRow, error) {
	batch := NewAccumulator()
	for _, line := range lines {
		acc, err := e.Explode(ctx, restaurantID, line.MenuItemID, line.Quantity, line.ModifierOption)
		if err != nil {
			return nil, err
		}
		batch.Merge(acc)
	}
	return e.normalize(ctx, restaurantID, batch)
}

func (e *Engine) normalize(ctx context.Context, restaurantID string, batch Accumulator) ([]UsageRow, error) {
	rows := []UsageRow{}

	for itemID, byUnit := range batch {
		item, err := e.inventory.GetByID(ctx, itemID)
		if err != nil {
			return nil, err
		}

		if item == nil {
			e.log.Warn("usage references unknown inventory item",
				"restaurant_id", restaurantID,
				"inventory_item_id", itemID,
			)
			for unit, qty := range byUnit {
				rows = append(rows, UsageRow{
					InventoryItemID: itemID,
					Unit:            unit,
					Quantity:        qty,
				})
			}
			continue
		}

		total := 0.0
		for unit, qty := range byUnit {
			converted, exact := units.Convert(qty, unit, item.PrimaryUnit)
			if !exact {
				e.log.Warn("unit does not reconcile with primary unit, using 1:1 fallback",
					"restaurant_id", restaurantID,
					"inventory_item_id", itemID,
					"declared_unit", unit,
					"primary_unit", item.PrimaryUnit,
				)
			}
			total += converted
		}
		rows = append(rows, UsageRow{
			InventoryItemID: itemID,
			Name:            item.Name,
			Unit:            item.PrimaryUnit,
			Quantity:        total,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].InventoryItemID != rows[j].InventoryItemID {
			return rows[i].InventoryItemID < rows[j].InventoryItemID
		}
		return rows[i].Unit < rows[j].Unit
	})
	return rows, nil
}

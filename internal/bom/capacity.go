package bom

import (
	"context"
	"math"
	"sort"

	"rasoi/internal/units"
)

// Requirement is one ingredient's contribution to a capacity figure.
type Requirement struct {
	InventoryItemID string  `json:"inventory_item_id"`
	Name            string  `json:"name,omitempty"`
	Unit            string  `json:"unit"`
	RequiredPerUnit float64 `json:"required_per_unit"`
	Stock           float64 `json:"stock"`
	PossibleUnits   *int    `json:"possible_units,omitempty"`
}

// CapacityResult reports how many units of a menu item current stock
// supports. NoMapping distinguishes "no recipe configured" from a
// genuine zero so callers never mistake unknown for unlimited.
type CapacityResult struct {
	Capacity     int           `json:"capacity"`
	NoMapping    bool          `json:"no_mapping"`
	Requirements []Requirement `json:"requirements"`
}

// ComputeCapacity explodes one unit of the menu item, normalizes every
// requirement into its item's primary unit, and takes the bottleneck
// minimum of floor(stock / requiredPerUnit).
//
// Business invariant, preserved exactly: any referenced inventory item
// with zero or negative stock forces capacity to zero, regardless of
// how abundant every other ingredient is. A missing inventory record
// counts as zero stock.
func (e *Engine) ComputeCapacity(
	ctx context.Context,
	restaurantID string,
	menuItemID string,
	activeOption *string,
) (*CapacityResult, error) {
	acc, err := e.Explode(ctx, restaurantID, menuItemID, 1, activeOption)
	if err != nil {
		return nil, err
	}

	if len(acc) == 0 {
		return &CapacityResult{Capacity: 0, NoMapping: true, Requirements: []Requirement{}}, nil
	}

	result := &CapacityResult{Requirements: []Requirement{}}
	capacity := math.MaxInt
	constrained := false
	outOfStock := false

	for itemID, byUnit := range acc {
		item, err := e.inventory.GetByID(ctx, itemID)
		if err != nil {
			return nil, err
		}

		req := Requirement{InventoryItemID: itemID}
		if item != nil {
			req.Name = item.Name
			req.Unit = item.PrimaryUnit
			req.Stock = item.Stock
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
				req.RequiredPerUnit += converted
			}
		} else {
			// Unknown item: zero stock, no primary unit to fold into.
			e.log.Warn("capacity references unknown inventory item",
				"restaurant_id", restaurantID,
				"inventory_item_id", itemID,
			)
			for unit, qty := range byUnit {
				req.Unit = unit
				req.RequiredPerUnit += qty
			}
		}

		if req.Stock <= 0 {
			outOfStock = true
		} else if req.RequiredPerUnit > 0 {
			possible := int(math.Floor(req.Stock / req.RequiredPerUnit))
			req.PossibleUnits = &possible
			constrained = true
			if possible < capacity {
				capacity = possible
			}
		}

		result.Requirements = append(result.Requirements, req)
	}

	switch {
	case outOfStock:
		result.Capacity = 0
	case constrained:
		result.Capacity = capacity
	default:
		// Mapped, in stock, but no positive requirement to divide by.
		// Conservative zero rather than pretending unlimited.
		result.Capacity = 0
	}

	sort.Slice(result.Requirements, func(i, j int) bool {
		return result.Requirements[i].InventoryItemID < result.Requirements[j].InventoryItemID
	})
	return result, nil
}

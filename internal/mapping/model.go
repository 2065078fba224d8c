package mapping

import "time"

// ComponentType tags the Component variant.
type ComponentType string

const (
	// ComponentInventory consumes a raw inventory item directly.
	ComponentInventory ComponentType = "inventory"
	// ComponentMenu consumes another menu item's recipe (nested BOM).
	ComponentMenu ComponentType = "menu"
)

// Component is one ingredient line of a Mapping.
//
// Inventory variant: InventoryItemID + Quantity + Unit (+ Notes).
// Menu variant: MenuItemID + Quantity multiplier; when Overrides is
// non-empty it replaces recursive expansion of the nested recipe
// entirely for this occurrence.
//
// ModifierOptionID, when set, is a guard: the component only counts if
// the caller's active modifier option equals it exactly. A guarded
// component contributes nothing when no option is supplied, even if the
// guard is the empty string.
type Component struct {
	Type ComponentType `json:"type"`

	InventoryItemID string `json:"inventory_item_id,omitempty"`
	MenuItemID      string `json:"menu_item_id,omitempty"`

	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
	Notes    string  `json:"notes,omitempty"`

	ModifierOptionID *string `json:"modifier_option_id,omitempty"`

	Overrides []Component `json:"overrides,omitempty"`
}

// GuardSatisfied reports whether this component counts for the given
// active modifier option (nil = none supplied by the caller).
func (c Component) GuardSatisfied(activeOption *string) bool {
	if c.ModifierOptionID == nil {
		return true
	}
	return activeOption != nil && *activeOption == *c.ModifierOptionID
}

// Mapping is the bill of materials for one menu item, keyed by
// (restaurant, external menu item id). Steps are free-text recipe
// instructions consumed only by export; the explosion engine ignores them.
type Mapping struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	MenuItemID   string      `json:"menu_item_id"`
	Components   []Component `json:"components"`
	Steps        []string    `json:"steps,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

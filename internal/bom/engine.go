package bom

import (
	"context"

	"rasoi/internal/inventory"
	"rasoi/internal/logger"
	"rasoi/internal/mapping"
)

// MappingSource supplies BOM mappings. A missing mapping is (nil, nil).
type MappingSource interface {
	Get(ctx context.Context, restaurantID, menuItemID string) (*mapping.Mapping, error)
}

// InventorySource supplies stock records. A missing item is (nil, nil).
type InventorySource interface {
	GetByID(ctx context.Context, itemID string) (*inventory.Item, error)
}

// Engine resolves menu items into raw inventory requirements. It holds
// no per-call state, so one Engine can serve concurrent requests.
type Engine struct {
	mappings  MappingSource
	inventory InventorySource
	log       *logger.Logger
}

func NewEngine(mappings MappingSource, inv InventorySource, log *logger.Logger) *Engine {
	return &Engine{mappings: mappings, inventory: inv, log: log}
}

// maxDepth caps non-cyclic recursion as defense-in-depth; the visited
// set already guarantees termination on cycles.
const maxDepth = 200

// call carries the per-explosion state threaded through the recursion.
type call struct {
	restaurantID string
	activeOption *string

	// visited holds the menu item ids on the current expansion path.
	// Entries are removed on unwind, so a sub-recipe shared by two
	// sibling branches still counts once per branch; only a true cycle
	// short-circuits.
	visited map[string]bool

	// mappingMemo caches lookups within this one call. Never shared
	// across calls: merchants edit mappings concurrently with queries.
	mappingMemo map[string]*mapping.Mapping

	acc Accumulator
}

// Explode resolves quantity units of a menu item (with an optional
// active modifier option) into accumulated raw inventory requirements,
// grouped by declared unit. Missing mappings, guard misses and cycles
// all contribute zero silently; only repository failures surface.
func (e *Engine) Explode(
	ctx context.Context,
	restaurantID string,
	menuItemID string,
	quantity float64,
	activeOption *string,
) (Accumulator, error) {
	c := &call{
		restaurantID: restaurantID,
		activeOption: activeOption,
		visited:      make(map[string]bool),
		mappingMemo:  make(map[string]*mapping.Mapping),
		acc:          NewAccumulator(),
	}
	if err := e.explode(ctx, c, menuItemID, quantity, 0); err != nil {
		return nil, err
	}
	return c.acc, nil
}

func (e *Engine) explode(ctx context.Context, c *call, menuItemID string, quantity float64, depth int) error {
	if depth > maxDepth {
		e.log.Warn("bom recursion depth ceiling hit",
			"restaurant_id", c.restaurantID,
			"menu_item_id", menuItemID,
			"depth", depth,
		)
		return nil
	}
	if c.visited[menuItemID] {
		// A cycle is a configuration error; it contributes nothing
		// rather than crashing the whole computation.
		e.log.Warn("cyclic bom mapping short-circuited",
			"restaurant_id", c.restaurantID,
			"menu_item_id", menuItemID,
		)
		return nil
	}

	m, err := e.lookupMapping(ctx, c, menuItemID)
	if err != nil {
		return err
	}
	if m == nil {
		// Unmapped item: terminal leaf, the common case.
		return nil
	}

	c.visited[menuItemID] = true
	defer delete(c.visited, menuItemID)

	for _, comp := range m.Components {
		if !comp.GuardSatisfied(c.activeOption) {
			continue
		}

		switch comp.Type {
		case mapping.ComponentInventory:
			c.acc.Add(comp.InventoryItemID, comp.Unit, comp.Quantity*quantity)

		case mapping.ComponentMenu:
			if len(comp.Overrides) > 0 {
				// Overrides replace the nested recipe entirely for
				// this occurrence.
				if err := e.explodeOverrides(ctx, c, comp, quantity, depth); err != nil {
					return err
				}
				continue
			}
			if err := e.explode(ctx, c, comp.MenuItemID, quantity*comp.Quantity, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) explodeOverrides(ctx context.Context, c *call, parent mapping.Component, quantity float64, depth int) error {
	// Override guards are evaluated against the same active option as
	// everything else, independent of the parent's own guard.
	for _, ov := range parent.Overrides {
		if !ov.GuardSatisfied(c.activeOption) {
			continue
		}
		switch ov.Type {
		case mapping.ComponentInventory:
			c.acc.Add(ov.InventoryItemID, ov.Unit, ov.Quantity*quantity*parent.Quantity)
		case mapping.ComponentMenu:
			if err := e.explode(ctx, c, ov.MenuItemID, quantity*parent.Quantity*ov.Quantity, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) lookupMapping(ctx context.Context, c *call, menuItemID string) (*mapping.Mapping, error) {
	if m, ok := c.mappingMemo[menuItemID]; ok {
		return m, nil
	}
	m, err := e.mappings.Get(ctx, c.restaurantID, menuItemID)
	if err != nil {
		return nil, err
	}
	c.mappingMemo[menuItemID] = m
	return m, nil
}

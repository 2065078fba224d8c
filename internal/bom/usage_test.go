package bom

import (
	"context"
	"math"
	"reflect"
	"testing"
)

func TestComputeUsageNormalizesIntoPrimaryUnit(t *testing.T) {
	engine, mappings, inv := newTestEngine(t)

	addItem(t, inv, "milk", "Milk", "ml", 10000)
	// The same item referenced in two different volume units.
	saveMapping(t, mappings, "r1", "latte",
		invComponent("milk", 200, "ml"),
	)
	saveMapping(t, mappings, "r1", "flat-white",
		invComponent("milk", 0.5, "cup"),
	)

	rows, err := engine.ComputeUsage(context.Background(), "r1", []SoldLine{
		{MenuItemID: "latte", Quantity: 2},
		{MenuItemID: "flat-white", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	row := rows[0]
	if row.InventoryItemID != "milk" || row.Unit != "ml" {
		t.Fatalf("unexpected row identity: %+v", row)
	}
	want := 400 + 0.5*236.588
	if math.Abs(row.Quantity-want) > 1e-6 {
		t.Fatalf("expected %v ml, got %v", want, row.Quantity)
	}
}

func TestComputeUsageIndependentOfLineOrder(t *testing.T) {
	build := func(lines []SoldLine) []UsageRow {
		engine, mappings, inv := newTestEngine(t)
		addItem(t, inv, "beef-patty", "Beef Patty", "each", 100)
		addItem(t, inv, "bun", "Bun", "each", 100)
		saveMapping(t, mappings, "r1", "burger",
			invComponent("beef-patty", 1, "each"),
			invComponent("bun", 2, "each"),
		)
		saveMapping(t, mappings, "r1", "slider",
			invComponent("beef-patty", 0.5, "each"),
			invComponent("bun", 1, "each"),
		)
		rows, err := engine.ComputeUsage(context.Background(), "r1", lines)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return rows
	}

	forward := build([]SoldLine{
		{MenuItemID: "burger", Quantity: 3},
		{MenuItemID: "slider", Quantity: 4},
	})
	reversed := build([]SoldLine{
		{MenuItemID: "slider", Quantity: 4},
		{MenuItemID: "burger", Quantity: 3},
	})

	if !reflect.DeepEqual(forward, reversed) {
		t.Fatalf("line order changed usage: %+v vs %+v", forward, reversed)
	}
}

func TestComputeUsageAppliesModifierPerLine(t *testing.T) {
	engine, mappings, inv := newTestEngine(t)

	addItem(t, inv, "cheese", "Cheese", "slice", 100)
	guarded := invComponent("cheese", 1, "slice")
	guarded.ModifierOptionID = strptr("add-cheese")
	saveMapping(t, mappings, "r1", "burger", guarded)

	rows, err := engine.ComputeUsage(context.Background(), "r1", []SoldLine{
		{MenuItemID: "burger", Quantity: 2, ModifierOption: strptr("add-cheese")},
		{MenuItemID: "burger", Quantity: 5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0].Quantity != 2 {
		t.Fatalf("expected 2 slices (only the modified line), got %v", rows[0].Quantity)
	}
}

func TestComputeUsageMissingItemKeepsDeclaredUnit(t *testing.T) {
	engine, mappings, _ := newTestEngine(t)

	saveMapping(t, mappings, "r1", "mystery",
		invComponent("ghost-item", 2, "oz"),
	)

	rows, err := engine.ComputeUsage(context.Background(), "r1", []SoldLine{
		{MenuItemID: "mystery", Quantity: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	row := rows[0]
	if row.InventoryItemID != "ghost-item" || row.Unit != "oz" || row.Quantity != 6 {
		t.Fatalf("expected 6 oz ghost-item in declared unit, got %+v", row)
	}
}

func TestComputeUsageMismatchedUnitFallsBackOneToOne(t *testing.T) {
	engine, mappings, inv := newTestEngine(t)

	// Count-tracked item referenced by volume: no conversion exists,
	// quantities fold 1:1 into the primary unit.
	addItem(t, inv, "lemon", "Lemon", "each", 50)
	saveMapping(t, mappings, "r1", "lemonade",
		invComponent("lemon", 30, "ml"),
	)

	rows, err := engine.ComputeUsage(context.Background(), "r1", []SoldLine{
		{MenuItemID: "lemonade", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 1 || rows[0].Quantity != 60 || rows[0].Unit != "each" {
		t.Fatalf("expected 60 each via 1:1 fallback, got %+v", rows)
	}
}

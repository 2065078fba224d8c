package bom

// Accumulator collects exploded ingredient requirements, keyed by
// inventory item id then by the unit each requirement was declared in.
// Quantities stay grouped by declared unit until a single normalization
// pass at the end of the usage/capacity flows, so repeated conversions
// never compound rounding error.
type Accumulator map[string]map[string]float64

func NewAccumulator() Accumulator {
	return make(Accumulator)
}

func (a Accumulator) Add(inventoryItemID, unit string, quantity float64) {
	byUnit, ok := a[inventoryItemID]
	if !ok {
		byUnit = make(map[string]float64)
		a[inventoryItemID] = byUnit
	}
	byUnit[unit] += quantity
}

// Merge adds every entry of other into a.
func (a Accumulator) Merge(other Accumulator) {
	for itemID, byUnit := range other {
		for unit, qty := range byUnit {
			a.Add(itemID, unit, qty)
		}
	}
}

package units

import "strings"

// Family groups units that can be converted into each other.
type Family string

const (
	FamilyMass   Family = "mass"
	FamilyVolume Family = "volume"
	FamilyCount  Family = "count"
)

type unitDef struct {
	family Family
	// factor converts one of this unit into the family base unit
	// (gram for mass, millilitre for volume, each for count).
	factor float64
}

// Alias spellings merchants actually type. Keys are lowercase.
var unitTable = map[string]unitDef{
	// mass, base = gram
	"g":         {FamilyMass, 1},
	"gram":      {FamilyMass, 1},
	"grams":     {FamilyMass, 1},
	"mg":        {FamilyMass, 0.001},
	"kg":        {FamilyMass, 1000},
	"kilogram":  {FamilyMass, 1000},
	"kilograms": {FamilyMass, 1000},
	"oz":        {FamilyMass, 28.3495},
	"ounce":     {FamilyMass, 28.3495},
	"ounces":    {FamilyMass, 28.3495},
	"lb":        {FamilyMass, 453.592},
	"lbs":       {FamilyMass, 453.592},
	"pound":     {FamilyMass, 453.592},
	"pounds":    {FamilyMass, 453.592},

	// volume, base = millilitre
	"ml":          {FamilyVolume, 1},
	"millilitre":  {FamilyVolume, 1},
	"milliliter":  {FamilyVolume, 1},
	"milliliters": {FamilyVolume, 1},
	"l":           {FamilyVolume, 1000},
	"litre":       {FamilyVolume, 1000},
	"liter":       {FamilyVolume, 1000},
	"liters":      {FamilyVolume, 1000},
	"tsp":         {FamilyVolume, 4.92892},
	"teaspoon":    {FamilyVolume, 4.92892},
	"teaspoons":   {FamilyVolume, 4.92892},
	"tbsp":        {FamilyVolume, 14.7868},
	"tablespoon":  {FamilyVolume, 14.7868},
	"tablespoons": {FamilyVolume, 14.7868},
	"floz":        {FamilyVolume, 29.5735},
	"fl oz":       {FamilyVolume, 29.5735},
	"cup":         {FamilyVolume, 236.588},
	"cups":        {FamilyVolume, 236.588},
	"pint":        {FamilyVolume, 473.176},
	"pints":       {FamilyVolume, 473.176},
	"quart":       {FamilyVolume, 946.353},
	"quarts":      {FamilyVolume, 946.353},
	"gal":         {FamilyVolume, 3785.41},
	"gallon":      {FamilyVolume, 3785.41},
	"gallons":     {FamilyVolume, 3785.41},

	// count, base = each
	"each":   {FamilyCount, 1},
	"ea":     {FamilyCount, 1},
	"unit":   {FamilyCount, 1},
	"units":  {FamilyCount, 1},
	"pc":     {FamilyCount, 1},
	"pcs":    {FamilyCount, 1},
	"piece":  {FamilyCount, 1},
	"pieces": {FamilyCount, 1},
	"slice":  {FamilyCount, 1},
	"slices": {FamilyCount, 1},
	"dozen":  {FamilyCount, 12},
}

func normalize(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// Lookup returns the family a unit belongs to.
func Lookup(unit string) (Family, bool) {
	def, ok := unitTable[normalize(unit)]
	return def.family, ok
}

// Convert re-expresses quantity from one unit in another.
//
// If the units are the same (after normalization) the quantity is returned
// unchanged. If either unit is unknown, or the two units belong to different
// families (e.g. volume vs count), conversion is undefined and the quantity is
// returned unchanged as a documented 1:1 approximation; the second return
// value reports whether the result is an exact conversion so callers can warn
// merchants about units that don't reconcile.
func Convert(quantity float64, fromUnit, toUnit string) (float64, bool) {
	from := normalize(fromUnit)
	to := normalize(toUnit)
	if from == to {
		return quantity, true
	}

	fromDef, okFrom := unitTable[from]
	toDef, okTo := unitTable[to]
	if !okFrom || !okTo || fromDef.family != toDef.family {
		return quantity, false
	}

	return quantity * fromDef.factor / toDef.factor, true
}

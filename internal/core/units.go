package core

// Unit is a canonical code from the closed catalog of measurement units.
type Unit string

const (
	// Weight/Mass
	UnitGram     Unit = "g"
	UnitKilogram Unit = "kg"

	// Volume - Liquid
	UnitMillilitre Unit = "ml"
	UnitLitre      Unit = "l"

	// Volume - Cooking measurements
	UnitTeaspoon   Unit = "tsp"
	UnitTablespoon Unit = "tbsp"
	UnitCup        Unit = "cup"

	// Count/Pieces
	UnitPiece  Unit = "piece"
	UnitPieces Unit = "pieces"
	UnitClove  Unit = "clove"
	UnitCloves Unit = "cloves"

	// Length (pasta, vegetables)
	UnitCentimetre Unit = "cm"

	// Special cooking units
	UnitPinch Unit = "pinch"
	UnitDash  Unit = "dash"

	// Package/Container units
	UnitCan    Unit = "can"
	UnitJar    Unit = "jar"
	UnitBottle Unit = "bottle"
	UnitPacket Unit = "packet"
	UnitBag    Unit = "bag"

	// Fresh produce units
	UnitHead   Unit = "head"  // lettuce, cabbage
	UnitBunch  Unit = "bunch" // herbs, green onions
	UnitStalk  Unit = "stalk" // celery
	UnitLeaf   Unit = "leaf"  // bay leaves
	UnitLeaves Unit = "leaves"
)

// UnitOption pairs a unit code with its display label for UI selects.
type UnitOption struct {
	Code  Unit
	Label string
}

// unitOptions is the full catalog in display order.
var unitOptions = []UnitOption{
	{UnitGram, "Gram (g)"},
	{UnitKilogram, "Kilogram (kg)"},
	{UnitMillilitre, "Millilitre (ml)"},
	{UnitLitre, "Litre (l)"},
	{UnitTeaspoon, "Teaspoon (tsp)"},
	{UnitTablespoon, "Tablespoon (tbsp)"},
	{UnitCup, "Cup"},
	{UnitPiece, "Piece"},
	{UnitPieces, "Pieces"},
	{UnitClove, "Clove"},
	{UnitCloves, "Cloves"},
	{UnitCentimetre, "Centimetre (cm)"},
	{UnitPinch, "Pinch"},
	{UnitDash, "Dash"},
	{UnitCan, "Can"},
	{UnitJar, "Jar"},
	{UnitBottle, "Bottle"},
	{UnitPacket, "Packet"},
	{UnitBag, "Bag"},
	{UnitHead, "Head"},
	{UnitBunch, "Bunch"},
	{UnitStalk, "Stalk"},
	{UnitLeaf, "Leaf"},
	{UnitLeaves, "Leaves"},
}

var unitLabels = func() map[Unit]string {
	m := make(map[Unit]string, len(unitOptions))
	for _, o := range unitOptions {
		m[o.Code] = o.Label
	}
	return m
}()

// UnitOptions returns the ordered (code, label) catalog for UI population.
func UnitOptions() []UnitOption {
	out := make([]UnitOption, len(unitOptions))
	copy(out, unitOptions)
	return out
}

// LookupUnit resolves a raw code against the catalog.
func LookupUnit(code string) (Unit, bool) {
	u := Unit(code)
	_, ok := unitLabels[u]
	return u, ok
}

// Valid reports whether the unit code is in the catalog.
func (u Unit) Valid() bool {
	_, ok := unitLabels[u]
	return ok
}

// Label returns the display label, or the raw code for an unknown unit.
func (u Unit) Label() string {
	if label, ok := unitLabels[u]; ok {
		return label
	}
	return string(u)
}

func (u Unit) String() string {
	return string(u)
}

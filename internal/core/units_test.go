package core

import "testing"

func TestLookupUnit(t *testing.T) {
	u, ok := LookupUnit("g")
	if !ok || u != UnitGram {
		t.Fatalf("LookupUnit(g) = %v, %v", u, ok)
	}
	if _, ok := LookupUnit("stone"); ok {
		t.Fatalf("expected unknown unit lookup to fail")
	}
	if _, ok := LookupUnit(""); ok {
		t.Fatalf("expected empty unit lookup to fail")
	}
}

func TestUnitLabel(t *testing.T) {
	cases := []struct {
		unit Unit
		want string
	}{
		{UnitGram, "Gram (g)"},
		{UnitTablespoon, "Tablespoon (tbsp)"},
		{UnitCup, "Cup"},
		{UnitBunch, "Bunch"},
	}
	for _, tc := range cases {
		if got := tc.unit.Label(); got != tc.want {
			t.Fatalf("%s.Label() = %q, want %q", tc.unit, got, tc.want)
		}
	}
	// Unknown units fall back to the raw code.
	if got := Unit("stone").Label(); got != "stone" {
		t.Fatalf("unknown unit label = %q", got)
	}
}

func TestUnitOptionsOrderedAndComplete(t *testing.T) {
	opts := UnitOptions()
	if len(opts) != 24 {
		t.Fatalf("expected 24 units, got %d", len(opts))
	}
	if opts[0].Code != UnitGram || opts[len(opts)-1].Code != UnitLeaves {
		t.Fatalf("unexpected catalog order: first=%s last=%s", opts[0].Code, opts[len(opts)-1].Code)
	}
	for _, o := range opts {
		if !o.Code.Valid() {
			t.Fatalf("catalog entry %s not valid", o.Code)
		}
	}
}

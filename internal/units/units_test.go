package units

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestConvertSameUnitIsIdentity(t *testing.T) {
	got, exact := Convert(3.5, "oz", "oz")
	if !exact || got != 3.5 {
		t.Fatalf("expected identity, got %v (exact=%v)", got, exact)
	}
}

func TestConvertIgnoresCaseAndSpacing(t *testing.T) {
	got, exact := Convert(2, " KG ", "g")
	if !exact || !almostEqual(got, 2000) {
		t.Fatalf("expected 2000 g, got %v (exact=%v)", got, exact)
	}
}

func TestConvertWithinMassFamily(t *testing.T) {
	got, exact := Convert(1, "lb", "oz")
	if !exact || !almostEqual(got, 453.592/28.3495) {
		t.Fatalf("expected ~16 oz, got %v (exact=%v)", got, exact)
	}
}

func TestConvertWithinVolumeFamily(t *testing.T) {
	got, exact := Convert(0.5, "cup", "ml")
	if !exact || !almostEqual(got, 118.294) {
		t.Fatalf("expected 118.294 ml, got %v (exact=%v)", got, exact)
	}
}

func TestConvertCountFamily(t *testing.T) {
	got, exact := Convert(2, "dozen", "each")
	if !exact || !almostEqual(got, 24) {
		t.Fatalf("expected 24 each, got %v (exact=%v)", got, exact)
	}
}

func TestConvertAcrossFamiliesFallsBackOneToOne(t *testing.T) {
	got, exact := Convert(5, "cup", "each")
	if exact {
		t.Fatal("volume to count must not be reported as exact")
	}
	if got != 5 {
		t.Fatalf("family mismatch must pass quantity through, got %v", got)
	}
}

func TestConvertUnknownUnitFallsBackOneToOne(t *testing.T) {
	got, exact := Convert(7, "scoop", "g")
	if exact {
		t.Fatal("unknown unit must not be reported as exact")
	}
	if got != 7 {
		t.Fatalf("unknown unit must pass quantity through, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	fam, ok := Lookup("Slices")
	if !ok || fam != FamilyCount {
		t.Fatalf("expected count family for slices, got %v (ok=%v)", fam, ok)
	}
	if _, ok := Lookup("parsec"); ok {
		t.Fatal("parsec should be unknown")
	}
}

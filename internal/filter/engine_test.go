package filter

import (
	"reflect"
	"testing"

	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
)

func sampleProps() []models.Property {
	return []models.Property{
		{Category: "Grande de alta plusvalía", Neighborhood: "Del Carmen", EstimatedValue: 6_000_000},
		{Category: "Pequeño en zona de alta plusvalía", Neighborhood: "Del Carmen", EstimatedValue: 1_000_000},
		{Category: "Pequeño en zona de alta plusvalía", Neighborhood: "Ajusco", EstimatedValue: 850_000},
		{Category: "Grande y antiguo", Neighborhood: "Pedregal de Santo Domingo", EstimatedValue: 2_400_000},
		{Category: "Grande y antiguo", Neighborhood: "Ajusco", EstimatedValue: 5_000_000},
	}
}

func mustBracket(t *testing.T, key string) Bracket {
	t.Helper()
	b, ok := BracketByKey(key)
	if !ok {
		t.Fatalf("unknown bracket key %q", key)
	}
	return b
}

func TestApplyEmptySelectionIsPassThrough(t *testing.T) {
	props := sampleProps()

	// Empty category and neighborhood sets mean "no filter on that
	// dimension", not "match nothing". Deliberate behavior: a user who
	// clears a multi-select still sees the full dataset.
	got := Apply(props, Selection{Bracket: mustBracket(t, "any")})
	if len(got) != len(props) {
		t.Fatalf("empty selection: got %d rows, want %d", len(got), len(props))
	}
}

func TestApplyCategoryClause(t *testing.T) {
	got := Apply(sampleProps(), Selection{
		Categories: []string{"Grande y antiguo"},
		Bracket:    mustBracket(t, "any"),
	})
	if len(got) != 2 {
		t.Fatalf("category clause: got %d rows, want 2", len(got))
	}
	for _, p := range got {
		if p.Category != "Grande y antiguo" {
			t.Errorf("category clause leaked row with category %q", p.Category)
		}
	}
}

func TestApplyBudgetBoundsAreInclusive(t *testing.T) {
	props := sampleProps()

	under := Apply(props, Selection{Bracket: mustBracket(t, "under-1m")})
	if len(under) != 2 {
		t.Fatalf("under-1m: got %d rows, want 2", len(under))
	}
	found := false
	for _, p := range under {
		if p.EstimatedValue == 1_000_000 {
			found = true
		}
	}
	if !found {
		t.Error("under-1m must include the row valued at exactly $1,000,000")
	}

	over := Apply(props, Selection{Bracket: mustBracket(t, "over-5m")})
	if len(over) != 2 {
		t.Fatalf("over-5m: got %d rows, want 2", len(over))
	}
	found = false
	for _, p := range over {
		if p.EstimatedValue == 5_000_000 {
			found = true
		}
	}
	if !found {
		t.Error("over-5m must include the row valued at exactly $5,000,000")
	}
}

func TestApplyNeighborhoodClause(t *testing.T) {
	got := Apply(sampleProps(), Selection{
		Bracket:       mustBracket(t, "any"),
		Neighborhoods: []string{"Ajusco"},
	})
	if len(got) != 2 {
		t.Fatalf("neighborhood clause: got %d rows, want 2", len(got))
	}
}

func TestApplyIsSubsetAndMonotonic(t *testing.T) {
	props := sampleProps()
	all := Apply(props, Selection{Bracket: mustBracket(t, "any")})

	narrowed := Apply(props, Selection{
		Categories: []string{"Grande y antiguo", "Grande de alta plusvalía"},
		Bracket:    mustBracket(t, "1m-3m"),
	})
	if len(narrowed) > len(all) {
		t.Fatalf("narrowing grew the result: %d > %d", len(narrowed), len(all))
	}

	// Every filtered row must come from the base table.
	for _, p := range narrowed {
		match := false
		for _, base := range props {
			if reflect.DeepEqual(p, base) {
				match = true
				break
			}
		}
		if !match {
			t.Errorf("fabricated row in filtered result: %+v", p)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	props := sampleProps()
	sel := Selection{
		Categories:    []string{"Pequeño en zona de alta plusvalía"},
		Bracket:       mustBracket(t, "under-1m"),
		Neighborhoods: []string{"Ajusco"},
	}

	first := Apply(props, sel)
	second := Apply(props, sel)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical calls diverged: %+v vs %+v", first, second)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	props := sampleProps()
	want := sampleProps()

	Apply(props, Selection{
		Categories: []string{"Grande y antiguo"},
		Bracket:    mustBracket(t, "3m-5m"),
	})
	if !reflect.DeepEqual(props, want) {
		t.Error("Apply mutated its input slice")
	}
}

func TestAvailableNeighborhoods(t *testing.T) {
	got := AvailableNeighborhoods(sampleProps(),
		[]string{"Grande y antiguo"}, mustBracket(t, "any"))
	want := []string{"Ajusco", "Pedregal de Santo Domingo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableNeighborhoods: got %v, want %v", got, want)
	}
}

func TestAvailableNeighborhoodsIgnoresNeighborhoodSelection(t *testing.T) {
	// The option domain depends on category+budget only.
	got := AvailableNeighborhoods(sampleProps(), nil, mustBracket(t, "over-5m"))
	want := []string{"Ajusco", "Del Carmen"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableNeighborhoods: got %v, want %v", got, want)
	}
}

func TestBracketByKey(t *testing.T) {
	if b, ok := BracketByKey(""); !ok || b.Key != "any" {
		t.Errorf("empty key should resolve to the any bracket, got %+v ok=%v", b, ok)
	}
	if _, ok := BracketByKey("mansions-only"); ok {
		t.Error("unknown key should not resolve")
	}
	if b, _ := BracketByKey("any"); b.Min != nil || b.Max != nil {
		t.Error("any bracket should be unbounded on both sides")
	}
}

func TestCategories(t *testing.T) {
	got := Categories(sampleProps())
	want := []string{
		"Grande de alta plusvalía",
		"Grande y antiguo",
		"Pequeño en zona de alta plusvalía",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories: got %v, want %v", got, want)
	}
}

package prompt

import "testing"

var wantStyleIDs = []string{
	"pun",
	"wordplay",
	"observational",
	"anti-humor",
	"question-answer",
	"one-liner",
	"knock-knock",
	"classic",
}

func TestCatalogStylesOrderAndUniqueness(t *testing.T) {
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	styles := catalog.Styles()
	if len(styles) != len(wantStyleIDs) {
		t.Fatalf("expected %d styles, got %d", len(wantStyleIDs), len(styles))
	}

	seen := make(map[string]bool)
	for i, def := range styles {
		if def.ID != wantStyleIDs[i] {
			t.Errorf("style %d: expected %q, got %q", i, wantStyleIDs[i], def.ID)
		}
		if seen[def.ID] {
			t.Errorf("duplicate style ID %q", def.ID)
		}
		seen[def.ID] = true
		if def.Fragment == "" || def.Format == "" || def.Name == "" || def.Description == "" {
			t.Errorf("style %q has an empty field", def.ID)
		}
	}
}

func TestCatalogStylesReturnsCopy(t *testing.T) {
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	styles := catalog.Styles()
	styles[0].ID = "mutated"

	if catalog.Styles()[0].ID != wantStyleIDs[0] {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestCatalogResolve(t *testing.T) {
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	tests := []struct {
		name        string
		input       string
		wantID      string
		wantMatched bool
	}{
		{"exact match", "pun", "pun", true},
		{"mixed case", "PUN", "pun", true},
		{"surrounding whitespace", "  knock-knock  ", "knock-knock", true},
		{"empty selects default", "", DefaultStyle, true},
		{"whitespace only selects default", "   ", DefaultStyle, true},
		{"unknown falls back", "limerick", DefaultStyle, false},
		{"separators not normalized", "one liner", DefaultStyle, false},
		{"default resolvable by name", "classic", "classic", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def, matched := catalog.Resolve(tc.input)
			if def.ID != tc.wantID {
				t.Errorf("Resolve(%q) = %q, want %q", tc.input, def.ID, tc.wantID)
			}
			if matched != tc.wantMatched {
				t.Errorf("Resolve(%q) matched = %v, want %v", tc.input, matched, tc.wantMatched)
			}
		})
	}
}

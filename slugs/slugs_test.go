package slugs

import (
	"strings"
	"testing"
)

func takenFrom(existing ...string) func(string) bool {
	set := make(map[string]bool, len(existing))
	for _, s := range existing {
		set[s] = true
	}
	return func(candidate string) bool { return set[candidate] }
}

func TestUnique(t *testing.T) {
	tests := map[string]struct {
		title    string
		existing []string
		want     string
	}{
		"plain title": {
			title: "Zapato Deportivo",
			want:  "zapato-deportivo",
		},
		"diacritics stripped": {
			title: "Botín Ñandú Café",
			want:  "botin-nandu-cafe",
		},
		"punctuation stripped": {
			title: "Air Max, 90's!",
			want:  "air-max-90s",
		},
		"first collision gets -2": {
			title:    "Zapato Deportivo",
			existing: []string{"zapato-deportivo"},
			want:     "zapato-deportivo-2",
		},
		"probe keeps incrementing": {
			title:    "Zapato Deportivo",
			existing: []string{"zapato-deportivo", "zapato-deportivo-2", "zapato-deportivo-3"},
			want:     "zapato-deportivo-4",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Unique(tc.title, takenFrom(tc.existing...))
			if got != tc.want {
				t.Fatalf("Unique(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestUniqueEmptyTitleFallsBack(t *testing.T) {
	got := Unique("!!! ???", takenFrom())
	if got == "" {
		t.Fatal("expected non-empty slug for title with no alphanumeric content")
	}
	if !strings.HasPrefix(got, "product-") {
		t.Fatalf("expected time-based placeholder, got %q", got)
	}
}

func TestUniqueFallbackStillProbed(t *testing.T) {
	// Even the placeholder goes through the collision probe.
	first := Unique("###", takenFrom())
	second := Unique("###", takenFrom(first))
	if first == second {
		t.Fatalf("expected distinct slugs, both were %q", first)
	}
}

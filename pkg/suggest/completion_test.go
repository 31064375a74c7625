package suggest

import (
	"testing"

	"github.com/bastiangx/wordlore/pkg/freq"
	"github.com/google/go-cmp/cmp"
)

func TestComplete(t *testing.T) {
	table := freq.Table{
		"elizabeth": 2,
		"Elizabeth": 600,
		"else":      40,
		"elder":     12,
		"eldest":    12,
		"el":        3,
		"Bingley":   300,
	}
	c := NewCompleterFromTable(table, 1)

	tests := []struct {
		name   string
		prefix string
		limit  int
		want   []Suggestion
	}{
		{"ranked by frequency", "el", 10, []Suggestion{
			{"Elizabeth", 602}, {"else", 40}, {"elder", 12}, {"eldest", 12},
		}},
		{"limit", "el", 2, []Suggestion{{"Elizabeth", 602}, {"else", 40}}},
		{"typed capitals kept", "ELD", 10, []Suggestion{{"ELDer", 12}, {"ELDest", 12}}},
		{"case-insensitive lookup", "bing", 10, []Suggestion{{"Bingley", 300}}},
		{"no match", "zz", 10, nil},
		{"empty prefix", "", 10, []Suggestion{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Complete(tt.prefix, tt.limit)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Complete(%q) (-want +got):\n%s", tt.prefix, diff)
			}
		})
	}
}

func TestCompleteMinFrequency(t *testing.T) {
	c := NewCompleterFromTable(freq.Table{"rare": 1, "really": 5}, 2)
	want := []Suggestion{{"really", 5}}
	if diff := cmp.Diff(want, c.Complete("r", 10)); diff != "" {
		t.Errorf("Complete (-want +got):\n%s", diff)
	}
	stats := c.Stats()
	if stats["uniqueKeys"] != 2 || stats["maxFrequency"] != 5 {
		t.Errorf("Stats() = %v", stats)
	}
}

package rank

import (
	"fmt"
	"testing"

	"github.com/bastiangx/wordlore/pkg/freq"
	"github.com/google/go-cmp/cmp"
)

var sample = freq.Table{
	"the":       10,
	"and":       10,
	"Elizabeth": 7,
	"i":         6,
	"zebra":     1,
	"apple":     1,
	"1":         5,
	"2":         1,
	"mango":     3,
}

func TestTopK(t *testing.T) {
	got := TopK(sample, 4)
	want := []Entry{{"and", 10}, {"the", 10}, {"Elizabeth", 7}, {"i", 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopK (-want +got):\n%s", diff)
	}
}

func TestTopKOrderAndPrefix(t *testing.T) {
	all := TopK(sample, len(sample)+5)
	if len(all) != len(sample) {
		t.Fatalf("TopK returned %d entries, want %d", len(all), len(sample))
	}
	for i := 1; i < len(all); i++ {
		a, b := all[i-1], all[i]
		if a.Count < b.Count || (a.Count == b.Count && a.Word > b.Word) {
			t.Errorf("out of order at %d: %v before %v", i, a, b)
		}
	}
	for k := 0; k < len(sample); k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			shorter, longer := TopK(sample, k), TopK(sample, k+1)
			if diff := cmp.Diff(shorter, longer[:len(shorter)]); diff != "" {
				t.Errorf("TopK(%d) is not a prefix of TopK(%d):\n%s", k, k+1, diff)
			}
		})
	}
}

func TestTopKExcludingCommonWords(t *testing.T) {
	common := NewCommonWords([]string{"the", "and", "I"})
	got := TopKExcluding(sample, 3, common)
	want := []Entry{{"Elizabeth", 7}, {"1", 5}, {"mango", 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopKExcluding (-want +got):\n%s", diff)
	}
}

func TestBottomKExcluding(t *testing.T) {
	got := BottomKExcluding(freq.Table{"1": 5, "zebra": 1}, 20, NewSet([]string{"1"}))
	want := []Entry{{"zebra", 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BottomKExcluding (-want +got):\n%s", diff)
	}

	got = BottomKExcluding(sample, 3, NewSet(freq.ChapterNumberTokens(2)))
	want = []Entry{{"apple", 1}, {"zebra", 1}, {"mango", 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BottomKExcluding chapters (-want +got):\n%s", diff)
	}
}

func TestSelectExhausted(t *testing.T) {
	if got := TopKExcluding(sample, 20, NewSet([]string{"the"})); len(got) != len(sample)-1 {
		t.Errorf("got %d entries, want %d", len(got), len(sample)-1)
	}
	if got := TopK(freq.Table{}, 20); len(got) != 0 {
		t.Errorf("empty table gave %v", got)
	}
	if got := TopK(sample, 0); len(got) != 0 {
		t.Errorf("k=0 gave %v", got)
	}
}

package suggest

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/bastiangx/wordlore/pkg/freq"
)

var testPrefixes = []string{
	"a", "ab", "abc",
	"h", "he", "hel", "hell",
	"w", "wo", "wor",
	"p", "pr", "pro",
	"t", "th", "the", "ther",
	"c", "co", "com",
}

var testSentences = []string{
	"It is a truth universally acknowledged.",
	"It is a truth not generally known.",
	"He had gone.",
	"He had hoped to be admitted.",
	"The evening altogether passed off pleasantly.",
	"The village of Longbourn.",
}

// syntheticTable holds size words spread over the test prefixes.
func syntheticTable(size int) freq.Table {
	t := make(freq.Table, size)
	for i := 0; i < size; i++ {
		prefix := testPrefixes[i%len(testPrefixes)]
		t[fmt.Sprintf("%s%d", prefix, i)] = size - i
	}
	return t
}

func BenchmarkComplete(b *testing.B) {
	for _, size := range []int{1000, 10000} {
		c := NewCompleterFromTable(syntheticTable(size), 1)
		b.Run(fmt.Sprintf("words_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				c.Complete(testPrefixes[i%len(testPrefixes)], 20)
			}
		})
	}
}

func BenchmarkAutocomplete(b *testing.B) {
	s := NewSentenceTrie()
	for i := 0; i < 2000; i++ {
		s.Insert(fmt.Sprintf("%s %d", testSentences[i%len(testSentences)], i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		words := strings.Fields(testSentences[i%len(testSentences)])
		s.Autocomplete(strings.Join(words[:2], " "))
	}
}

// Repeated queries must not grow the heap: completion allocates only its
// result slice.
func TestCompleteMemoryStable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping memory test in short mode")
	}
	c := NewCompleterFromTable(syntheticTable(5000), 1)

	measure := func() uint64 {
		runtime.GC()
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return m.HeapAlloc
	}

	for i := 0; i < 100; i++ {
		c.Complete(testPrefixes[i%len(testPrefixes)], 20)
	}
	before := measure()
	for i := 0; i < 5000; i++ {
		c.Complete(testPrefixes[i%len(testPrefixes)], 20)
	}
	after := measure()

	const slack = 1 << 20
	if after > before+slack {
		t.Errorf("Heap grew from %d to %d bytes over 5000 completions", before, after)
	}
}

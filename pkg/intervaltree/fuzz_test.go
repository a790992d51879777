package intervaltree

import (
	"testing"

	"github.com/fmstephe/spacegrid/pkg/fuzzutil"
)

// FuzzOverlapSearch builds a tree from fuzz-generated intervals and checks
// the universal invariants from the spec's testable properties: in-order
// iteration is non-decreasing by start, and OverlapSearch finds some
// overlap for every interval that was actually inserted (it always overlaps
// itself).
func FuzzOverlapSearch(f *testing.F) {
	for _, tc := range fuzzutil.MakeRandomTestCases() {
		f.Add(tc)
	}
	f.Fuzz(func(t *testing.T, bytes []byte) {
		bc := fuzzutil.NewByteConsumer(bytes)

		var entries []Entry[int, struct{}]
		tr := New[int, struct{}]()

		for bc.Len() > 0 {
			start := bc.ConsumeIntn(1000)
			length := bc.ConsumeIntn(50)
			e := entry(start, start+length)
			tr.Insert(e)
			entries = append(entries, e)
		}

		if tr.Len() != len(entries) {
			panic("intervaltree: Len diverged from insert count")
		}

		var starts []int
		it := tr.IterInorder()
		for {
			e, ok := it.Next()
			if !ok {
				break
			}
			starts = append(starts, e.Interval.Start)
		}
		if len(starts) != len(entries) {
			panic("intervaltree: in-order iteration yielded the wrong count")
		}
		if !sortedNonDecreasing(starts) {
			panic("intervaltree: in-order iteration was not sorted by start")
		}

		for _, e := range entries {
			if got, ok := tr.OverlapSearch(e.Interval); !ok || !got.Interval.Overlaps(e.Interval) {
				panic("intervaltree: OverlapSearch failed to find an overlap for an inserted interval")
			}
		}
	})
}

// Package dedupkitcontract provides the behavioral contract of a
// consecutive-duplicate collapsing sequence adapter.
// Apply it to anything dedup shaped to verify it upholds the same laws
// as the adapters in dedupkit.
package dedupkitcontract

import (
	"iter"
	"reflect"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"
)

// AdapterSubject contains the dependencies of the Adapter contract.
type AdapterSubject[T any] struct {
	// MakePipeline returns the adapter under test, wrapping the given source sequence.
	MakePipeline func(src iter.Seq[T]) iter.Seq[T]
	// Same is the equivalence the pipeline is expected to collapse consecutive runs under.
	// It must be reflexive for the values MakeElement produces.
	Same func(a, b T) bool
	// MakeElement returns a random element.
	// To cover every law, it should be able to produce non-equivalent elements;
	// laws that need them are skipped otherwise.
	MakeElement func(tb testing.TB) T
}

// Adapter returns the contract of a lazy consecutive-duplicate collapsing adapter.
func Adapter[T any](mk func(tb testing.TB) AdapterSubject[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) AdapterSubject[T] {
		return mk(t)
	})

	var makeUnlike = func(t *testcase.T, prev T, has bool) T {
		sub := subject.Get(t)
		for i := 0; i < 128; i++ {
			v := sub.MakeElement(t)
			if !has {
				return v
			}
			if !sub.Same(prev, v) && !sub.Same(v, prev) {
				return v
			}
		}
		t.Skip("MakeElement was unable to produce two non-equivalent elements")
		return prev
	}

	// a source with runs of random length, where every run repeats its first element
	var makeRunsInput = func(t *testcase.T) (input []T, runFirsts []T) {
		var prev T
		var has bool
		runCount := t.Random.IntB(1, 7)
		for i := 0; i < runCount; i++ {
			v := makeUnlike(t, prev, has)
			prev, has = v, true
			runFirsts = append(runFirsts, v)
			runLength := t.Random.IntB(1, 4)
			for j := 0; j < runLength; j++ {
				input = append(input, v)
			}
		}
		return input, runFirsts
	}

	s.Test("an empty source yields an empty sequence", func(t *testcase.T) {
		out := subject.Get(t).MakePipeline(iterkit.Empty[T]())
		assert.Empty(t, iterkit.Collect(out))
	})

	s.Test("a single element source yields that element unchanged", func(t *testcase.T) {
		sub := subject.Get(t)
		v := sub.MakeElement(t)
		out := iterkit.Collect(sub.MakePipeline(iterkit.Slice([]T{v})))
		assert.Equal(t, []T{v}, out)
	})

	s.Test("a source of all equivalent elements collapses to its first element", func(t *testcase.T) {
		sub := subject.Get(t)
		v := sub.MakeElement(t)
		var input []T
		length := t.Random.IntB(2, 7)
		for i := 0; i < length; i++ {
			input = append(input, v)
		}
		out := iterkit.Collect(sub.MakePipeline(iterkit.Slice(input)))
		assert.Equal(t, []T{v}, out)
	})

	s.Test("every maximal run contributes exactly its first element", func(t *testcase.T) {
		sub := subject.Get(t)
		input, runFirsts := makeRunsInput(t)
		out := iterkit.Collect(sub.MakePipeline(iterkit.Slice(input)))
		assert.Equal(t, runFirsts, out)
	})

	s.Test("no two consecutively yielded elements are equivalent", func(t *testcase.T) {
		sub := subject.Get(t)
		input, _ := makeRunsInput(t)
		out := iterkit.Collect(sub.MakePipeline(iterkit.Slice(input)))
		for i := 1; i < len(out); i++ {
			assert.False(t, sub.Same(out[i-1], out[i]),
				"two consecutive elements of the output were still equivalent")
		}
	})

	s.Test("the output is an order preserving subsequence of the input", func(t *testcase.T) {
		sub := subject.Get(t)
		input, _ := makeRunsInput(t)
		out := iterkit.Collect(sub.MakePipeline(iterkit.Slice(input)))
		var at int
		for _, v := range out {
			var found bool
			for ; at < len(input); at++ {
				if reflect.DeepEqual(input[at], v) {
					found = true
					at++
					break
				}
			}
			assert.True(t, found, "output contained an element out of source order")
		}
	})

	s.Test("applying the adapter twice yields the same as applying it once", func(t *testcase.T) {
		sub := subject.Get(t)
		input, _ := makeRunsInput(t)
		once := iterkit.Collect(sub.MakePipeline(iterkit.Slice(input)))
		twice := iterkit.Collect(sub.MakePipeline(sub.MakePipeline(iterkit.Slice(input))))
		assert.Equal(t, once, twice)
	})

	s.Test("collapsing is lazy and usable on an endless source", func(t *testcase.T) {
		sub := subject.Get(t)
		var zero T
		a := makeUnlike(t, zero, false)
		b := makeUnlike(t, a, true)
		var endless iter.Seq[T] = func(yield func(T) bool) {
			for {
				if !yield(a) {
					return
				}
				if !yield(b) {
					return
				}
			}
		}
		n := t.Random.IntB(3, 12)
		out := iterkit.Collect(iterkit.Head(sub.MakePipeline(endless), n))
		assert.Equal(t, n, len(out))
	})

	return s.AsSuite("dedup adapter")
}

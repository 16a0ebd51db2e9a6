package dedupkitcontract_test

import (
	"iter"
	"testing"

	"go.llib.dev/testcase"

	"go.llib.dev/dedupkit"
	"go.llib.dev/dedupkit/dedupkitcontract"
)

func ExampleAdapter() {
	var t *testing.T

	dedupkitcontract.Adapter[int](func(tb testing.TB) dedupkitcontract.AdapterSubject[int] {
		return dedupkitcontract.AdapterSubject[int]{
			MakePipeline: func(src iter.Seq[int]) iter.Seq[int] {
				return dedupkit.Dedup[int](src)
			},
			Same: func(a, b int) bool { return a == b },
			MakeElement: func(tb testing.TB) int {
				t := testcase.ToT(&tb)
				return t.Random.IntB(1, 100)
			},
		}
	}).Test(t)
}

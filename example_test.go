package dedupkit_test

import (
	"fmt"
	"unicode"

	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/dedupkit"
)

func ExampleDedup() {
	chars := iterkit.Slice([]rune("aabbccdddeeeeffffeee"))

	fmt.Println(string(iterkit.Collect(dedupkit.Dedup[rune](chars))))
	// Output: abcdefe
}

func ExampleDedup_laterReoccurrence() {
	numbers := iterkit.Slice([]int{10, 20, 20, 21, 30, 20})

	// only consecutive duplicates collapse, the trailing 20 is yielded again
	fmt.Println(iterkit.Collect(dedupkit.Dedup[int](numbers)))
	// Output: [10 20 21 30 20]
}

func ExampleDedupBy() {
	chars := iterkit.Slice([]rune("This  string   had useless   spaces"))

	itr := dedupkit.DedupBy(chars, func(last, candidate rune) bool {
		return unicode.IsSpace(last) && unicode.IsSpace(candidate)
	})

	fmt.Println(string(iterkit.Collect(itr)))
	// Output: This string had useless spaces
}

func ExampleDedupByKey() {
	chars := iterkit.Slice([]rune("aAbBBcC"))

	itr := dedupkit.DedupByKey(chars, unicode.ToLower)

	fmt.Println(string(iterkit.Collect(itr)))
	// Output: abc
}

func ExampleDedup2() {
	var pairs = iterkit.FromKV([]iterkit.KV[string, int]{
		{K: "a", V: 1},
		{K: "a", V: 1},
		{K: "a", V: 2},
		{K: "b", V: 2},
	})

	for k, v := range dedupkit.Dedup2(pairs) {
		fmt.Println(k, v)
	}
	// Output:
	// a 1
	// a 2
	// b 2
}

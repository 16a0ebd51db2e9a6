// Package dedupkit provides lazy sequence adapters that collapse runs of
// consecutive equal elements, similar to the dedup family of operations
// known from growable array types.
//
// Unlike set based deduplication, only adjacent elements are compared,
// so an element that reoccurs later in the sequence is yielded again.
// Collapsing happens lazily while the result sequence is being walked,
// and only a single element (or key) worth of state is retained,
// which makes the adapters safe to use on endless sequences as well.
package dedupkit

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Dedup returns a sequence where runs of consecutive equal elements
// are collapsed into their first element.
// Equality is the element type's own == comparison.
//
// The input sequence can be either an iter.Seq[T] or an iterkit.ErrSeq[T].
// With an ErrSeq input, error pairs pass through unchanged,
// and deduplication continues against the last successfully yielded element.
func Dedup[T comparable, Iter iterkit.I1[T]](i Iter) Iter {
	return DedupBy[T, Iter](i, func(last, candidate T) bool {
		return last == candidate
	})
}

// DedupBy returns a sequence where an element is suppressed
// when the same function reports it equal to the last yielded element.
// The function always receives the last yielded element as its first argument
// and the current candidate as its second,
// so asymmetric relations behave deterministically.
//
// Comparison is always made against the last yielded element,
// never against a suppressed one.
// With a relation that is not transitive,
// a candidate can therefore be yielded even when it relates
// to the element suppressed right before it.
func DedupBy[T any, Iter iterkit.I1[T]](i Iter, same func(last, candidate T) bool) Iter {
	return collapse[T, Iter](i, func() func(T) bool {
		var (
			last    T
			yielded bool
		)
		return func(candidate T) bool {
			if yielded && same(last, candidate) {
				return true
			}
			last, yielded = candidate, true
			return false
		}
	})
}

// DedupByKey returns a sequence where an element is suppressed
// when its key equals the key of the last yielded element.
// The key function is called once per element,
// and the key retained for comparison is the one computed at yield time.
// Only the key is retained, the element type itself does not need to be comparable.
func DedupByKey[T any, K comparable, Iter iterkit.I1[T]](i Iter, key func(T) K) Iter {
	return collapse[T, Iter](i, func() func(T) bool {
		var (
			lastKey K
			yielded bool
		)
		return func(candidate T) bool {
			k := key(candidate)
			if yielded && k == lastKey {
				return true
			}
			lastKey, yielded = k, true
			return false
		}
	})
}

// collapse is the shared traversal of the dedup adapters.
// The strategy factory is invoked once per walk of the returned sequence,
// since sequences are re-iterable values and each walk needs its own state.
// The returned check reports whether a candidate duplicates the last yielded
// element, and must update its retained state only when it reports false,
// so suppressed elements never become the basis of comparison.
func collapse[T any, Iter iterkit.I1[T]](i Iter, strategy func() func(candidate T) bool) Iter {
	switch itr := any(i).(type) {
	case iter.Seq[T]:
		if itr == nil {
			return i
		}
		var out iter.Seq[T] = func(yield func(T) bool) {
			isDup := strategy()
			for v := range itr {
				if isDup(v) {
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
		return any(out).(Iter)
	case iterkit.ErrSeq[T]:
		if itr == nil {
			return i
		}
		var out iterkit.ErrSeq[T] = func(yield func(T, error) bool) {
			isDup := strategy()
			for v, err := range itr {
				if err != nil {
					var zero T
					if !yield(zero, err) {
						return
					}
					continue
				}
				if isDup(v) {
					continue
				}
				if !yield(v, nil) {
					return
				}
			}
		}
		return any(out).(Iter)
	default:
		panic("not-implemented")
	}
}

// Dedup2 is the iter.Seq2 variant of Dedup,
// where a pair duplicates the last yielded pair when both positions are equal.
func Dedup2[K, V comparable](i iter.Seq2[K, V]) iter.Seq2[K, V] {
	return DedupBy2(i, func(lastK K, lastV V, k K, v V) bool {
		return lastK == k && lastV == v
	})
}

// DedupBy2 is the iter.Seq2 variant of DedupBy.
// The same function receives the last yielded pair first, then the candidate pair.
func DedupBy2[K, V any](i iter.Seq2[K, V], same func(lastK K, lastV V, k K, v V) bool) iter.Seq2[K, V] {
	return collapse2(i, func() func(K, V) bool {
		var (
			lastK   K
			lastV   V
			yielded bool
		)
		return func(k K, v V) bool {
			if yielded && same(lastK, lastV, k, v) {
				return true
			}
			lastK, lastV, yielded = k, v, true
			return false
		}
	})
}

// DedupByKey2 is the iter.Seq2 variant of DedupByKey,
// with the key projected from the whole pair.
func DedupByKey2[K, V any, DK comparable](i iter.Seq2[K, V], key func(K, V) DK) iter.Seq2[K, V] {
	return collapse2(i, func() func(K, V) bool {
		var (
			lastKey DK
			yielded bool
		)
		return func(k K, v V) bool {
			dk := key(k, v)
			if yielded && dk == lastKey {
				return true
			}
			lastKey, yielded = dk, true
			return false
		}
	})
}

func collapse2[K, V any](i iter.Seq2[K, V], strategy func() func(K, V) bool) iter.Seq2[K, V] {
	if i == nil {
		return nil
	}
	return func(yield func(K, V) bool) {
		isDup := strategy()
		for k, v := range i {
			if isDup(k, v) {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

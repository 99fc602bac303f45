package dataseries

import (
	"cmp"
	"fmt"
)

// Pair holds the values of both sides of an intersection.
type Pair[L, R any] struct {
	Left  L
	Right R
}

func (p Pair[L, R]) String() string {
	return fmt.Sprintf("(%v,%v)", p.Left, p.Right)
}

// Intersect returns the data points of the union of left and right at which
// both sides are in effect. Positions where only one side has started are
// dropped.
func Intersect[P cmp.Ordered, L, R any](left Series[P, L], right Series[P, R]) Series[P, Pair[L, R]] {
	return IntersectFunc(cmp.Compare[P], left, right)
}

// IntersectFunc is like Intersect but positions are ordered by the cmp
// function.
func IntersectFunc[P, L, R any](cmp func(P, P) int, left Series[P, L], right Series[P, R]) Series[P, Pair[L, R]] {
	return func(yield func(DataPoint[P, Pair[L, R]]) bool) {
		u := newUnion(cmp, left, right)
		defer u.stop()

		for u.next() {
			p, r := u.result()
			if r.Kind() != Both {
				continue
			}
			if !yield(DataPoint[P, Pair[L, R]]{Point: p, Data: Pair[L, R]{Left: r.left, Right: r.right}}) {
				return
			}
		}
	}
}

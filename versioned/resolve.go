package versioned

import (
	"cmp"

	"github.com/achille-roussel/dataseries-go"
)

// Resolve combines two replicas of a series. Where only one replica is in
// effect its value is kept; where both are, the greater option wins, so a
// value beats an end marker and a higher version beats a lower one.
func Resolve[P cmp.Ordered, V, T cmp.Ordered](left, right dataseries.Series[P, Option[V, T]]) dataseries.Series[P, Option[V, T]] {
	return ResolveFunc(cmp.Compare[P], left, right)
}

// ResolveFunc is like Resolve but positions are ordered by the cmp function.
func ResolveFunc[P any, V, T cmp.Ordered](cmp func(P, P) int, left, right dataseries.Series[P, Option[V, T]]) dataseries.Series[P, Option[V, T]] {
	return dataseries.UnionFunc(cmp, left, right, resolve[V, T])
}

func resolve[V, T cmp.Ordered](r dataseries.UnionResult[Option[V, T], Option[V, T]]) Option[V, T] {
	l, lok := r.Left()
	v, rok := r.Right()
	switch {
	case !rok:
		return l
	case !lok:
		return v
	case CompareOptions(l, v) > 0:
		return l
	default:
		return v
	}
}

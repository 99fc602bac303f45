package dataseries

// Merge returns a series with the redundant data points of s removed: of each
// run of consecutive data points holding the same value, only the first one
// is kept since it already covers the positions of the others.
func Merge[P any, V comparable](s Series[P, V]) Series[P, V] {
	return MergeFunc(equal[V], s)
}

// MergeFunc is like Merge but values are compared with the eq function.
func MergeFunc[P, V any](eq func(V, V) bool, s Series[P, V]) Series[P, V] {
	return func(yield func(DataPoint[P, V]) bool) {
		var pending DataPoint[P, V]
		var hasPending bool

		for dp := range s {
			switch {
			case !hasPending:
				pending, hasPending = dp, true
			case eq(pending.Data, dp.Data):
				// Absorbed by the pending data point, which starts earlier.
			default:
				if !yield(pending) {
					return
				}
				pending = dp
			}
		}

		if hasPending {
			yield(pending)
		}
	}
}

func equal[V comparable](a, b V) bool {
	return a == b
}

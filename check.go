package dataseries

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
)

// ErrNotIncreasing is matched by the errors reported when the positions of a
// series do not strictly increase.
var ErrNotIncreasing = errors.New("dataseries: positions are not strictly increasing")

// OrderError reports the first data point of a series whose position is not
// greater than the position of the data point before it.
type OrderError struct {
	Index    int
	Previous any
	Current  any
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s: data point %d at %v follows %v", ErrNotIncreasing, e.Index, e.Current, e.Previous)
}

func (e *OrderError) Unwrap() error {
	return ErrNotIncreasing
}

// Check forwards the data points of s, verifying that their positions strictly
// increase. At the first violation it yields an *OrderError and stops.
func Check[P cmp.Ordered, V any](s Series[P, V]) iter.Seq2[DataPoint[P, V], error] {
	return CheckFunc(cmp.Compare[P], s)
}

// CheckFunc is like Check but positions are ordered by the cmp function.
func CheckFunc[P, V any](cmp func(P, P) int, s Series[P, V]) iter.Seq2[DataPoint[P, V], error] {
	return func(yield func(DataPoint[P, V], error) bool) {
		var prev DataPoint[P, V]
		i := 0

		for dp := range s {
			if i > 0 && cmp(prev.Point, dp.Point) >= 0 {
				yield(dp, &OrderError{Index: i, Previous: prev.Point, Current: dp.Point})
				return
			}
			if !yield(dp, nil) {
				return
			}
			prev = dp
			i++
		}
	}
}

// Validate consumes s and returns an *OrderError if its positions do not
// strictly increase.
func Validate[P cmp.Ordered, V any](s Series[P, V]) error {
	return ValidateFunc(cmp.Compare[P], s)
}

// ValidateFunc is like Validate but positions are ordered by the cmp function.
func ValidateFunc[P, V any](cmp func(P, P) int, s Series[P, V]) error {
	for _, err := range CheckFunc(cmp, s) {
		if err != nil {
			return err
		}
	}
	return nil
}

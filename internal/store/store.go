// Package store keeps data points ordered by position in memory, turning
// unordered input into a well-formed series.
package store

import (
	"github.com/google/btree"

	"github.com/achille-roussel/dataseries-go"
)

const degree = 16

// Store is an ordered set of data points with at most one data point per
// position. It is not safe for concurrent use.
type Store[P, V any] struct {
	points *btree.BTreeG[dataseries.DataPoint[P, V]]
}

// New creates an empty store ordering positions with cmp.
func New[P, V any](cmp func(P, P) int) *Store[P, V] {
	return &Store[P, V]{
		points: btree.NewG(degree, func(a, b dataseries.DataPoint[P, V]) bool {
			return cmp(a.Point, b.Point) < 0
		}),
	}
}

// Set records the value at position p, replacing the value already recorded
// at that position. It reports whether a value was replaced.
func (s *Store[P, V]) Set(p P, v V) bool {
	_, replaced := s.points.ReplaceOrInsert(dataseries.DataPoint[P, V]{Point: p, Data: v})
	return replaced
}

// Get returns the value recorded at position p.
func (s *Store[P, V]) Get(p P) (v V, ok bool) {
	dp, ok := s.points.Get(dataseries.DataPoint[P, V]{Point: p})
	return dp.Data, ok
}

// Delete removes the value at position p and reports whether there was one.
func (s *Store[P, V]) Delete(p P) bool {
	_, ok := s.points.Delete(dataseries.DataPoint[P, V]{Point: p})
	return ok
}

func (s *Store[P, V]) Len() int {
	return s.points.Len()
}

func (s *Store[P, V]) Clear() {
	s.points.Clear(false)
}

// Series returns the data points of the store in ascending order of position.
// The store must not be modified while the series is being iterated.
func (s *Store[P, V]) Series() dataseries.Series[P, V] {
	return func(yield func(dataseries.DataPoint[P, V]) bool) {
		s.points.Ascend(func(dp dataseries.DataPoint[P, V]) bool {
			return yield(dp)
		})
	}
}

// Package dataseries implements lazy combinators over step-function time
// series.
//
// A series is a sequence of data points with strictly increasing positions.
// Each value holds from its position up to, but not including, the position
// of the next data point; the value of the last data point never ends.
//
// Union combines two series into one that changes wherever either input
// changes, and Merge drops data points which repeat the value already in
// effect. Both are evaluated lazily: inputs are only pulled when the next
// output is requested, and no more than two data points of each input are
// retained at any time.
//
// None of the combinators verify that positions are increasing; malformed
// inputs produce unspecified results. Use Check or Validate when the order of
// an input is not guaranteed.
package dataseries

import "iter"

// Series is a lazily evaluated sequence of data points ordered by position.
type Series[P, V any] iter.Seq[DataPoint[P, V]]

// Of returns a series producing the given data points.
func Of[P, V any](points ...DataPoint[P, V]) Series[P, V] {
	return FromSlice(points)
}

// FromSlice returns a series producing the data points of s. The slice is not
// copied, it must not be modified while the series is in use.
func FromSlice[P, V any](s []DataPoint[P, V]) Series[P, V] {
	return func(yield func(DataPoint[P, V]) bool) {
		for _, dp := range s {
			if !yield(dp) {
				return
			}
		}
	}
}

// FromSeq adapts a sequence of data points to a series.
func FromSeq[P, V any](seq iter.Seq[DataPoint[P, V]]) Series[P, V] {
	return Series[P, V](seq)
}

// FromSeq2 adapts a sequence of position/value pairs to a series.
func FromSeq2[P, V any](seq iter.Seq2[P, V]) Series[P, V] {
	return func(yield func(DataPoint[P, V]) bool) {
		for p, v := range seq {
			if !yield(DataPoint[P, V]{Point: p, Data: v}) {
				return
			}
		}
	}
}

// All returns the series as a sequence of position/value pairs.
func (s Series[P, V]) All() iter.Seq2[P, V] {
	return func(yield func(P, V) bool) {
		for dp := range s {
			if !yield(dp.Point, dp.Data) {
				return
			}
		}
	}
}

// Collect consumes the series and returns its data points.
func (s Series[P, V]) Collect() []DataPoint[P, V] {
	return Collect(s)
}

// MergeFunc is the method form of the MergeFunc function.
func (s Series[P, V]) MergeFunc(eq func(V, V) bool) Series[P, V] {
	return MergeFunc(eq, s)
}

// Collect consumes s and returns its data points.
func Collect[P, V any](s Series[P, V]) (points []DataPoint[P, V]) {
	for dp := range s {
		points = append(points, dp)
	}
	return points
}

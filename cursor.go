package dataseries

import "iter"

// bound is the end of an interval: either a finite position or unbounded.
// An unbounded end compares greater than any finite end.
type bound[P any] struct {
	point     P
	unbounded bool
}

func finite[P any](p P) bound[P] {
	return bound[P]{point: p}
}

func unbounded[P any]() bound[P] {
	return bound[P]{unbounded: true}
}

func (b bound[P]) compare(cmp func(P, P) int, other bound[P]) int {
	switch {
	case b.unbounded && other.unbounded:
		return 0
	case b.unbounded:
		return +1
	case other.unbounded:
		return -1
	default:
		return cmp(b.point, other.point)
	}
}

// after reports whether the bound lies strictly after the position p.
func (b bound[P]) after(cmp func(P, P) int, p P) bool {
	return b.unbounded || cmp(b.point, p) > 0
}

// window is one step of a cursor: the current data point and, unless single
// is set, the data point which follows it. The value of fst holds on
// [fst.Point, snd.Point), or on [fst.Point, +inf) for a single window.
type window[P, V any] struct {
	fst    DataPoint[P, V]
	snd    DataPoint[P, V]
	single bool
}

func (w window[P, V]) start() P {
	return w.fst.Point
}

func (w window[P, V]) end() bound[P] {
	if w.single {
		return unbounded[P]()
	}
	return finite(w.snd.Point)
}

// overlaps reports whether the intervals of the two windows intersect, that
// is max(starts) < min(ends).
func overlaps[P, L, R any](cmp func(P, P) int, left window[P, L], right window[P, R]) bool {
	start := left.start()
	if cmp(right.start(), start) > 0 {
		start = right.start()
	}
	end := left.end()
	if e := right.end(); e.compare(cmp, end) < 0 {
		end = e
	}
	return end.after(cmp, start)
}

type cursorState int

const (
	cursorNotPulled cursorState = iota
	cursorEntry
	cursorDone
)

// cursor pulls data points from a series one at a time and exposes them as
// windows, so that every step knows where its current value ends. Interior
// data points are seen twice: as the snd of one window and the fst of the
// following one.
type cursor[P, V any] struct {
	pull    func() (DataPoint[P, V], bool)
	stop    func()
	state   cursorState
	current DataPoint[P, V]
}

func newCursor[P, V any](s Series[P, V]) *cursor[P, V] {
	next, stop := iter.Pull(iter.Seq[DataPoint[P, V]](s))
	return &cursor[P, V]{pull: next, stop: stop}
}

func (c *cursor[P, V]) next() (w window[P, V], ok bool) {
	switch c.state {
	case cursorNotPulled:
		fst, ok := c.pull()
		if !ok {
			c.done()
			return w, false
		}
		c.current = fst
		c.state = cursorEntry
		return c.next()

	case cursorEntry:
		snd, ok := c.pull()
		if !ok {
			w = window[P, V]{fst: c.current, single: true}
			c.done()
			return w, true
		}
		w = window[P, V]{fst: c.current, snd: snd}
		c.current = snd
		return w, true

	default:
		return w, false
	}
}

func (c *cursor[P, V]) done() {
	var zero DataPoint[P, V]
	c.current = zero
	c.state = cursorDone
	c.stop()
}

package dataseries

import (
	"cmp"
	"fmt"
)

// UnionKind tells which sides of a union contributed to a result.
type UnionKind int

const (
	LeftOnly UnionKind = iota + 1
	RightOnly
	Both
)

func (k UnionKind) String() string {
	switch k {
	case LeftOnly:
		return "left-only"
	case RightOnly:
		return "right-only"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("UnionKind(%d)", int(k))
	}
}

// UnionResult is the value passed to the combine function of a union. It
// holds the value in effect on the left side, the right side, or both.
type UnionResult[L, R any] struct {
	kind  UnionKind
	left  L
	right R
}

func LeftOnlyResult[L, R any](left L) UnionResult[L, R] {
	return UnionResult[L, R]{kind: LeftOnly, left: left}
}

func RightOnlyResult[L, R any](right R) UnionResult[L, R] {
	return UnionResult[L, R]{kind: RightOnly, right: right}
}

func BothResult[L, R any](left L, right R) UnionResult[L, R] {
	return UnionResult[L, R]{kind: Both, left: left, right: right}
}

func (r UnionResult[L, R]) Kind() UnionKind { return r.kind }

// Left returns the left value, the boolean is false if the left side did not
// contribute to the result.
func (r UnionResult[L, R]) Left() (L, bool) { return r.left, r.kind != RightOnly }

// Right returns the right value, the boolean is false if the right side did
// not contribute to the result.
func (r UnionResult[L, R]) Right() (R, bool) { return r.right, r.kind != LeftOnly }

// Swap exchanges the left and right sides of the result.
func (r UnionResult[L, R]) Swap() UnionResult[R, L] {
	switch r.kind {
	case LeftOnly:
		return RightOnlyResult[R](r.left)
	case RightOnly:
		return LeftOnlyResult[R, L](r.right)
	default:
		return BothResult(r.right, r.left)
	}
}

func (r UnionResult[L, R]) String() string {
	switch r.kind {
	case LeftOnly:
		return fmt.Sprintf("left-only(%v)", r.left)
	case RightOnly:
		return fmt.Sprintf("right-only(%v)", r.right)
	default:
		return fmt.Sprintf("both(%v,%v)", r.left, r.right)
	}
}

// Union combines two series into one which has a data point at every position
// where the value of either input changes. The value of each data point is
// computed by f from the values in effect on each side at that position.
// Before a side has started, f receives a one-sided result.
//
// Both inputs must have strictly increasing positions. Output positions are
// then strictly increasing as well.
func Union[P cmp.Ordered, L, R, T any](left Series[P, L], right Series[P, R], f func(UnionResult[L, R]) T) Series[P, T] {
	return UnionFunc(cmp.Compare[P], left, right, f)
}

// UnionFunc is like Union but positions are ordered by the cmp function.
func UnionFunc[P, L, R, T any](cmp func(P, P) int, left Series[P, L], right Series[P, R], f func(UnionResult[L, R]) T) Series[P, T] {
	return func(yield func(DataPoint[P, T]) bool) {
		u := newUnion(cmp, left, right)
		defer u.stop()

		for u.next() {
			p, r := u.result()
			if !yield(DataPoint[P, T]{Point: p, Data: f(r)}) {
				return
			}
		}
	}
}

type unionState int

const (
	unionIdle unionState = iota
	unionLeftOnly
	unionRightOnly
	unionDisjoint
	unionOverlapping
)

func (s unionState) String() string {
	switch s {
	case unionIdle:
		return "idle"
	case unionLeftOnly:
		return "left-only"
	case unionRightOnly:
		return "right-only"
	case unionDisjoint:
		return "disjoint"
	case unionOverlapping:
		return "overlapping"
	default:
		return fmt.Sprintf("unionState(%d)", int(s))
	}
}

// union is the state machine aligning the breakpoints of two series. The
// windows are only meaningful for the sides the current state refers to.
type union[P, L, R any] struct {
	cmp   func(P, P) int
	left  *cursor[P, L]
	right *cursor[P, R]
	state unionState
	lw    window[P, L]
	rw    window[P, R]
}

func newUnion[P, L, R any](cmp func(P, P) int, left Series[P, L], right Series[P, R]) *union[P, L, R] {
	return &union[P, L, R]{
		cmp:   cmp,
		left:  newCursor(left),
		right: newCursor(right),
	}
}

func (u *union[P, L, R]) stop() {
	u.left.stop()
	u.right.stop()
}

// next moves the state machine by one step and reports whether there is a
// result to emit.
func (u *union[P, L, R]) next() bool {
	switch u.state {
	case unionIdle:
		lw, lok := u.left.next()
		rw, rok := u.right.next()
		switch {
		case lok && rok:
			u.classify(lw, rw)
		case lok:
			u.setLeft(lw)
		case rok:
			u.setRight(rw)
		}

	case unionLeftOnly:
		u.advanceLeftOnly()

	case unionRightOnly:
		u.advanceRightOnly()

	case unionDisjoint:
		switch {
		case overlaps(u.cmp, u.lw, u.rw):
			u.state = unionOverlapping
		case u.lw.end().compare(u.cmp, u.rw.end()) < 0:
			if lw, ok := u.left.next(); ok {
				u.classify(lw, u.rw)
			} else {
				u.advanceRightOnly()
			}
		default:
			if rw, ok := u.right.next(); ok {
				u.classify(u.lw, rw)
			} else {
				u.advanceLeftOnly()
			}
		}

	case unionOverlapping:
		switch c := u.lw.end().compare(u.cmp, u.rw.end()); {
		case c < 0:
			if lw, ok := u.left.next(); ok {
				u.lw = lw
			} else {
				u.advanceRightOnly()
			}
		case c > 0:
			if rw, ok := u.right.next(); ok {
				u.rw = rw
			} else {
				u.advanceLeftOnly()
			}
		default:
			// Both values change at the same position, advancing both sides
			// produces a single output for the shared breakpoint.
			lw, lok := u.left.next()
			rw, rok := u.right.next()
			switch {
			case lok && rok:
				u.lw, u.rw = lw, rw
			case lok:
				u.setLeft(lw)
			case rok:
				u.setRight(rw)
			default:
				u.state = unionIdle
			}
		}
	}
	return u.state != unionIdle
}

// classify sets the state for two freshly pulled windows. Windows starting at
// different positions are disjoint even when their intervals intersect: the
// side which is behind must be emitted alone first, the promotion to
// overlapping happens on the following step.
func (u *union[P, L, R]) classify(lw window[P, L], rw window[P, R]) {
	u.lw, u.rw = lw, rw
	if u.cmp(lw.start(), rw.start()) == 0 {
		u.state = unionOverlapping
	} else {
		u.state = unionDisjoint
	}
}

func (u *union[P, L, R]) setLeft(lw window[P, L]) {
	u.lw, u.rw = lw, window[P, R]{}
	u.state = unionLeftOnly
}

func (u *union[P, L, R]) setRight(rw window[P, R]) {
	u.lw, u.rw = window[P, L]{}, rw
	u.state = unionRightOnly
}

func (u *union[P, L, R]) advanceLeftOnly() {
	if lw, ok := u.left.next(); ok {
		u.setLeft(lw)
	} else {
		u.state = unionIdle
	}
}

func (u *union[P, L, R]) advanceRightOnly() {
	if rw, ok := u.right.next(); ok {
		u.setRight(rw)
	} else {
		u.state = unionIdle
	}
}

// result returns the position and union result for the current state. It
// must only be called after next returned true.
func (u *union[P, L, R]) result() (P, UnionResult[L, R]) {
	switch u.state {
	case unionLeftOnly:
		return u.lw.start(), LeftOnlyResult[L, R](u.lw.fst.Data)
	case unionRightOnly:
		return u.rw.start(), RightOnlyResult[L](u.rw.fst.Data)
	case unionDisjoint:
		if u.cmp(u.lw.start(), u.rw.start()) < 0 {
			return u.lw.start(), LeftOnlyResult[L, R](u.lw.fst.Data)
		}
		return u.rw.start(), RightOnlyResult[L](u.rw.fst.Data)
	case unionOverlapping:
		p := u.lw.start()
		if u.cmp(u.rw.start(), p) > 0 {
			p = u.rw.start()
		}
		return p, BothResult(u.lw.fst.Data, u.rw.fst.Data)
	default:
		panic("dataseries: union has no result in state " + u.state.String())
	}
}

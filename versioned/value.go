// Package versioned resolves conflicts between series of versioned values.
//
// Two replicas of the same series may be updated independently. Each data
// point carries the version (for example the time of the write) that
// produced it, and an interval ends with a data point holding no value. When
// the replicas are combined, the value with the highest version wins wherever
// both are in effect (last-writer-wins).
package versioned

import (
	"cmp"
	"fmt"
)

// Value is a value tagged with the version which produced it.
type Value[V, T cmp.Ordered] struct {
	Version V
	Data    T
}

func New[V, T cmp.Ordered](version V, data T) Value[V, T] {
	return Value[V, T]{Version: version, Data: data}
}

// Compare orders values by version first, then by data so that equal
// versions are still resolved deterministically.
func Compare[V, T cmp.Ordered](a, b Value[V, T]) int {
	if c := cmp.Compare(a.Version, b.Version); c != 0 {
		return c
	}
	return cmp.Compare(a.Data, b.Data)
}

// Max returns the greater of a and b, or b if they are equal.
func Max[V, T cmp.Ordered](a, b Value[V, T]) Value[V, T] {
	if Compare(a, b) > 0 {
		return a
	}
	return b
}

func (v Value[V, T]) String() string {
	return fmt.Sprintf("%v@%v", v.Data, v.Version)
}

// Option is either a value or the end of an interval.
type Option[V, T cmp.Ordered] struct {
	value Value[V, T]
	ok    bool
}

func Some[V, T cmp.Ordered](v Value[V, T]) Option[V, T] {
	return Option[V, T]{value: v, ok: true}
}

// None returns the marker ending an interval.
func None[V, T cmp.Ordered]() Option[V, T] {
	return Option[V, T]{}
}

func (o Option[V, T]) Get() (Value[V, T], bool) {
	return o.value, o.ok
}

func (o Option[V, T]) String() string {
	if !o.ok {
		return "none"
	}
	return o.value.String()
}

// CompareOptions orders options by value, an end marker sorts before every
// value.
func CompareOptions[V, T cmp.Ordered](a, b Option[V, T]) int {
	switch {
	case !a.ok && !b.ok:
		return 0
	case !a.ok:
		return -1
	case !b.ok:
		return +1
	default:
		return Compare(a.value, b.value)
	}
}

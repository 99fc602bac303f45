package dataseries

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"testing"
	"time"
)

type option[T any] struct {
	value T
	ok    bool
}

func some[T any](v T) option[T] { return option[T]{value: v, ok: true} }

func none[T any]() option[T] { return option[T]{} }

func (o option[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprint(o.value)
}

type sides struct {
	left  option[int]
	right option[int]
}

func (s sides) String() string {
	return fmt.Sprintf("(%v,%v)", s.left, s.right)
}

func toSides(r UnionResult[int, int]) sides {
	l, lok := r.Left()
	rr, rok := r.Right()
	return sides{left: option[int]{l, lok}, right: option[int]{rr, rok}}
}

func dp[V any](p int, v V) DataPoint[int, V] {
	return DataPoint[int, V]{Point: p, Data: v}
}

func both(l, r int) sides { return sides{left: some(l), right: some(r)} }

func leftOnly(l int) sides { return sides{left: some(l), right: none[int]()} }

func rightOnly(r int) sides { return sides{left: none[int](), right: some(r)} }

func TestUnion(t *testing.T) {
	tests := []struct {
		scenario string
		left     []DataPoint[int, int]
		right    []DataPoint[int, int]
		want     []DataPoint[int, sides]
	}{
		{
			scenario: "two empty series",
		},

		{
			scenario: "one data point and an empty series",
			left:     []DataPoint[int, int]{dp(1, 100)},
			want:     []DataPoint[int, sides]{dp(1, leftOnly(100))},
		},

		{
			scenario: "data points with repeated values and an empty series",
			left:     []DataPoint[int, int]{dp(1, 100), dp(3, 100), dp(4, 100)},
			want: []DataPoint[int, sides]{
				dp(1, leftOnly(100)),
				dp(3, leftOnly(100)),
				dp(4, leftOnly(100)),
			},
		},

		{
			scenario: "single data points at different positions",
			left:     []DataPoint[int, int]{dp(2, 120)},
			right:    []DataPoint[int, int]{dp(1, 100)},
			want: []DataPoint[int, sides]{
				dp(1, rightOnly(100)),
				dp(2, both(120, 100)),
			},
		},

		{
			scenario: "single data points at the same position",
			left:     []DataPoint[int, int]{dp(1, 120)},
			right:    []DataPoint[int, int]{dp(1, 100)},
			want:     []DataPoint[int, sides]{dp(1, both(120, 100))},
		},

		{
			scenario: "single data point after a pair",
			left:     []DataPoint[int, int]{dp(10, 130)},
			right:    []DataPoint[int, int]{dp(1, 120), dp(5, 200)},
			want: []DataPoint[int, sides]{
				dp(1, rightOnly(120)),
				dp(5, rightOnly(200)),
				dp(10, both(130, 200)),
			},
		},

		{
			scenario: "single data point inside a pair",
			left:     []DataPoint[int, int]{dp(2, 120)},
			right:    []DataPoint[int, int]{dp(1, 100), dp(3, 150)},
			want: []DataPoint[int, sides]{
				dp(1, rightOnly(100)),
				dp(2, both(120, 100)),
				dp(3, both(120, 150)),
			},
		},

		{
			scenario: "single data point before a pair",
			left:     []DataPoint[int, int]{dp(1, 120)},
			right:    []DataPoint[int, int]{dp(2, 100), dp(5, 150)},
			want: []DataPoint[int, sides]{
				dp(1, leftOnly(120)),
				dp(2, both(120, 100)),
				dp(5, both(120, 150)),
			},
		},

		{
			scenario: "partial intersection",
			left:     []DataPoint[int, int]{dp(1, 130), dp(3, 120), dp(10, 95)},
			right:    []DataPoint[int, int]{dp(2, 120), dp(10, 95)},
			want: []DataPoint[int, sides]{
				dp(1, leftOnly(130)),
				dp(2, both(130, 120)),
				dp(3, both(120, 120)),
				dp(10, both(95, 95)),
			},
		},

		{
			scenario: "segmented full intersection",
			left:     []DataPoint[int, int]{dp(1, 130), dp(3, 120), dp(10, 95)},
			right:    []DataPoint[int, int]{dp(3, 120), dp(10, 95)},
			want: []DataPoint[int, sides]{
				dp(1, leftOnly(130)),
				dp(3, both(120, 120)),
				dp(10, both(95, 95)),
			},
		},

		{
			scenario: "pair after a pair",
			left:     []DataPoint[int, int]{dp(10, 130), dp(12, 140)},
			right:    []DataPoint[int, int]{dp(1, 120), dp(5, 200)},
			want: []DataPoint[int, sides]{
				dp(1, rightOnly(120)),
				dp(5, rightOnly(200)),
				dp(10, both(130, 200)),
				dp(12, both(140, 200)),
			},
		},

		{
			scenario: "all data points of one side first",
			left:     []DataPoint[int, int]{dp(1, 130), dp(2, 140), dp(5, 150), dp(20, 160)},
			right:    []DataPoint[int, int]{dp(30, 120)},
			want: []DataPoint[int, sides]{
				dp(1, leftOnly(130)),
				dp(2, leftOnly(140)),
				dp(5, leftOnly(150)),
				dp(20, leftOnly(160)),
				dp(30, both(160, 120)),
			},
		},

		{
			scenario: "multiple intersections",
			left:     []DataPoint[int, int]{dp(1, 130), dp(20, 160)},
			right: []DataPoint[int, int]{
				dp(3, 120), dp(5, 110), dp(6, 100), dp(10, 90), dp(15, 190), dp(19, 180),
			},
			want: []DataPoint[int, sides]{
				dp(1, leftOnly(130)),
				dp(3, both(130, 120)),
				dp(5, both(130, 110)),
				dp(6, both(130, 100)),
				dp(10, both(130, 90)),
				dp(15, both(130, 190)),
				dp(19, both(130, 180)),
				dp(20, both(160, 180)),
			},
		},

		{
			scenario: "multiple intersections ending at the same position",
			left:     []DataPoint[int, int]{dp(1, 130), dp(20, 160)},
			right: []DataPoint[int, int]{
				dp(3, 120), dp(5, 110), dp(6, 100), dp(10, 90), dp(15, 190), dp(20, 180),
			},
			want: []DataPoint[int, sides]{
				dp(1, leftOnly(130)),
				dp(3, both(130, 120)),
				dp(5, both(130, 110)),
				dp(6, both(130, 100)),
				dp(10, both(130, 90)),
				dp(15, both(130, 190)),
				dp(20, both(160, 180)),
			},
		},

		{
			scenario: "multiple overlapping intersections",
			left:     []DataPoint[int, int]{dp(1, 130), dp(3, 120), dp(10, 95), dp(20, 160)},
			right: []DataPoint[int, int]{
				dp(3, 105), dp(5, 110), dp(6, 100), dp(10, 90), dp(15, 190), dp(20, 180),
			},
			want: []DataPoint[int, sides]{
				dp(1, leftOnly(130)),
				dp(3, both(120, 105)),
				dp(5, both(120, 110)),
				dp(6, both(120, 100)),
				dp(10, both(95, 90)),
				dp(15, both(95, 190)),
				dp(20, both(160, 180)),
			},
		},

		{
			scenario: "one side starting after the other side changed",
			left:     []DataPoint[int, int]{dp(1, 130), dp(3, 120), dp(10, 95), dp(20, 160)},
			right:    []DataPoint[int, int]{dp(12, 105), dp(15, 110)},
			want: []DataPoint[int, sides]{
				dp(1, leftOnly(130)),
				dp(3, leftOnly(120)),
				dp(10, leftOnly(95)),
				dp(12, both(95, 105)),
				dp(15, both(95, 110)),
				dp(20, both(160, 110)),
			},
		},

		{
			scenario: "full intersection",
			left:     []DataPoint[int, int]{dp(1, 130), dp(3, 120), dp(10, 95), dp(20, 160)},
			right:    []DataPoint[int, int]{dp(1, 130), dp(3, 120), dp(10, 95), dp(20, 160)},
			want: []DataPoint[int, sides]{
				dp(1, both(130, 130)),
				dp(3, both(120, 120)),
				dp(10, both(95, 95)),
				dp(20, both(160, 160)),
			},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			got := Collect(Union(FromSlice(test.left), FromSlice(test.right), toSides))
			if !slices.Equal(got, test.want) {
				t.Errorf("expected %v, got %v", test.want, got)
			}

			mirror := Collect(Union(FromSlice(test.right), FromSlice(test.left), func(r UnionResult[int, int]) sides {
				return toSides(r.Swap())
			}))
			if !slices.Equal(mirror, test.want) {
				t.Errorf("expected mirrored union to be %v, got %v", test.want, mirror)
			}
		})
	}
}

// valueAt returns the value in effect at position p.
func valueAt(points []DataPoint[int, int], p int) (v int, ok bool) {
	for _, dp := range points {
		if dp.Point > p {
			break
		}
		v, ok = dp.Data, true
	}
	return v, ok
}

// naiveUnion computes the union by evaluating both step functions at every
// position of either input.
func naiveUnion(left, right []DataPoint[int, int]) []DataPoint[int, sides] {
	var positions []int
	for _, dp := range left {
		positions = append(positions, dp.Point)
	}
	for _, dp := range right {
		positions = append(positions, dp.Point)
	}
	slices.Sort(positions)
	positions = slices.Compact(positions)

	var want []DataPoint[int, sides]
	for _, p := range positions {
		l, lok := valueAt(left, p)
		r, rok := valueAt(right, p)
		want = append(want, dp(p, sides{left: option[int]{l, lok}, right: option[int]{r, rok}}))
	}
	return want
}

func randomSeries(prng *rand.Rand) []DataPoint[int, int] {
	n := prng.IntN(10)
	points := make([]DataPoint[int, int], n)
	p := prng.IntN(5)
	for i := range points {
		points[i] = dp(p, prng.IntN(4))
		p += 1 + prng.IntN(4)
	}
	return points
}

func TestUnionRandom(t *testing.T) {
	prng := rand.New(rand.NewPCG(1, 2))

	for i := range 1000 {
		left := randomSeries(prng)
		right := randomSeries(prng)

		got := Collect(Union(FromSlice(left), FromSlice(right), toSides))
		want := naiveUnion(left, right)
		if !slices.Equal(got, want) {
			t.Fatalf("test %d: union of %v and %v\nexpected %v\ngot      %v", i, left, right, want, got)
		}
	}
}

func TestUnionDisjoint(t *testing.T) {
	left := []DataPoint[int, int]{dp(1, 10), dp(2, 20), dp(3, 30)}
	right := []DataPoint[int, int]{dp(5, 50), dp(6, 60)}

	got := Collect(Union(FromSlice(left), FromSlice(right), toSides))
	// The last value of the left side never ends, it is still in effect when
	// the right side starts.
	want := []DataPoint[int, sides]{
		dp(1, leftOnly(10)),
		dp(2, leftOnly(20)),
		dp(3, leftOnly(30)),
		dp(5, both(30, 50)),
		dp(6, both(30, 60)),
	}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestUnionEmptySide(t *testing.T) {
	left := []DataPoint[int, int]{dp(1, 10), dp(4, 10), dp(9, 0)}

	got := Collect(Union(FromSlice(left), Of[int, int](), toSides))
	want := []DataPoint[int, sides]{dp(1, leftOnly(10)), dp(4, leftOnly(10)), dp(9, leftOnly(0))}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// naturals is an infinite series, it only terminates when the consumer stops.
func naturals(pulls *int) Series[int, int] {
	return func(yield func(DataPoint[int, int]) bool) {
		for i := 0; ; i++ {
			*pulls++
			if !yield(dp(i, i)) {
				return
			}
		}
	}
}

func TestUnionIsLazy(t *testing.T) {
	var leftPulls, rightPulls int
	union := Union(naturals(&leftPulls), naturals(&rightPulls), toSides)

	if leftPulls != 0 || rightPulls != 0 {
		t.Fatalf("expected no pulls before iterating, got %d and %d", leftPulls, rightPulls)
	}

	next, stop := iter.Pull(iter.Seq[DataPoint[int, sides]](union))
	defer stop()

	for i := range 3 {
		v, ok := next()
		if !ok {
			t.Fatalf("expected a value at step %d", i)
		}
		if want := dp(i, both(i, i)); v != want {
			t.Errorf("expected %v, got %v", want, v)
		}
		// Each cursor holds at most the current data point and the next one.
		if leftPulls > i+2 || rightPulls > i+2 {
			t.Errorf("step %d: too many pulls %d and %d", i, leftPulls, rightPulls)
		}
	}
}

func TestUnionFunc(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2023, time.January, d, 0, 0, 0, 0, time.UTC) }

	left := Of(NewDataPoint(day(3), 50))
	right := Of(NewDataPoint(day(4), 100), NewDataPoint(day(7), 110))

	got := Collect(UnionFunc(time.Time.Compare, left, right, func(r UnionResult[int, int]) UnionKind {
		return r.Kind()
	}))
	want := []DataPoint[time.Time, UnionKind]{
		NewDataPoint(day(3), LeftOnly),
		NewDataPoint(day(4), Both),
		NewDataPoint(day(7), Both),
	}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestUnionResult(t *testing.T) {
	r := BothResult(1, "a")
	if l, ok := r.Left(); !ok || l != 1 {
		t.Errorf("expected left value 1, got %v (%t)", l, ok)
	}
	if s := r.Swap().String(); s != "both(a,1)" {
		t.Errorf("expected swapped result to be both(a,1), got %s", s)
	}

	l := LeftOnlyResult[int, string](2)
	if _, ok := l.Right(); ok {
		t.Errorf("expected no right value in %v", l)
	}
	if k := l.Swap().Kind(); k != RightOnly {
		t.Errorf("expected swapped kind to be %v, got %v", RightOnly, k)
	}
}

func BenchmarkUnion(b *testing.B) {
	left := make([]DataPoint[int, int], 1000)
	right := make([]DataPoint[int, int], 1000)
	for i := range left {
		left[i] = dp(2*i, i)
		right[i] = dp(3*i, i)
	}

	start := time.Now()
	count := 0
	for range b.N {
		for range Union(FromSlice(left), FromSlice(right), toSides) {
			count++
		}
	}
	duration := time.Since(start)
	b.ReportMetric(float64(count)/duration.Seconds(), "union/s")
}

package dataseries

import (
	"cmp"
	"fmt"

	"github.com/xlab/treeprint"
)

// Explain runs the union of left and right and renders every step of it as a
// tree: the state reached, the data point emitted and the interval of each
// side taking part in it. It is meant for debugging; the inputs are fully
// consumed.
func Explain[P cmp.Ordered, L, R any](left Series[P, L], right Series[P, R]) string {
	return ExplainFunc(cmp.Compare[P], left, right)
}

// ExplainFunc is like Explain but positions are ordered by the cmp function.
func ExplainFunc[P, L, R any](cmp func(P, P) int, left Series[P, L], right Series[P, R]) string {
	u := newUnion(cmp, left, right)
	defer u.stop()

	tree := treeprint.NewWithRoot("union")
	for step := 0; u.next(); step++ {
		p, r := u.result()
		branch := tree.AddMetaBranch(step, fmt.Sprintf("%s %v %v", u.state, p, r))

		switch u.state {
		case unionLeftOnly:
			branch.AddMetaNode("left", u.lw.interval())
		case unionRightOnly:
			branch.AddMetaNode("right", u.rw.interval())
		default:
			branch.AddMetaNode("left", u.lw.interval())
			branch.AddMetaNode("right", u.rw.interval())
		}
	}
	return tree.String()
}

func (w window[P, V]) interval() string {
	if w.single {
		return fmt.Sprintf("[%v, +inf) %v", w.fst.Point, w.fst.Data)
	}
	return fmt.Sprintf("[%v, %v) %v", w.fst.Point, w.snd.Point, w.fst.Data)
}

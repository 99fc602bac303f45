package dataseries

import "fmt"

// DataPoint is a value of a series together with the position from which it
// holds. The value remains in effect until the position of the next data point
// of the same series, or forever if it is the last one.
type DataPoint[P, V any] struct {
	Point P
	Data  V
}

// NewDataPoint is a convenience constructor for data point literals.
func NewDataPoint[P, V any](point P, data V) DataPoint[P, V] {
	return DataPoint[P, V]{Point: point, Data: data}
}

func (dp DataPoint[P, V]) String() string {
	return fmt.Sprintf("(%v,%v)", dp.Point, dp.Data)
}

package main

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/achille-roussel/dataseries-go"
	"github.com/achille-roussel/dataseries-go/internal/store"
	"github.com/achille-roussel/dataseries-go/versioned"
)

// record is a data point as found in input files. Data holds any JSON value,
// a null data ends an interval of a versioned series.
type record struct {
	Point   int64           `json:"point"`
	Data    json.RawMessage `json:"data"`
	Version int64           `json:"version,omitempty"`
}

func readRecords(path string) ([]record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var records []record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return records, nil
}

// compact returns the canonical text of a JSON value so that equal values
// compare equal as strings.
func compact(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "null", nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func plainValue(r record) (string, error) {
	return compact(r.Data)
}

func versionedValue(r record) (versioned.Option[int64, string], error) {
	data, err := compact(r.Data)
	if err != nil {
		return versioned.None[int64, string](), err
	}
	if data == "null" {
		return versioned.None[int64, string](), nil
	}
	return versioned.Some(versioned.New(r.Version, data)), nil
}

// buildSeries converts records to a series. In strict mode the records must
// already be ordered; otherwise they are sorted and a later record replaces
// an earlier one at the same position.
func buildSeries[V any](path string, records []record, strict bool, log *zap.SugaredLogger, value func(record) (V, error)) (dataseries.Series[int64, V], error) {
	if strict {
		points := make([]dataseries.DataPoint[int64, V], len(records))
		for i, r := range records {
			v, err := value(r)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid data at point %d: %w", path, r.Point, err)
			}
			points[i] = dataseries.NewDataPoint(r.Point, v)
		}
		s := dataseries.FromSlice(points)
		if err := dataseries.Validate(s); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return s, nil
	}

	st := store.New[int64, V](cmp.Compare[int64])
	replaced := 0
	for _, r := range records {
		v, err := value(r)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid data at point %d: %w", path, r.Point, err)
		}
		if st.Set(r.Point, v) {
			replaced++
		}
	}
	if replaced > 0 {
		log.Debugw("replaced data points at duplicate positions", "file", path, "replaced", replaced)
	}
	return st.Series(), nil
}

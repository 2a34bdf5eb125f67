// Package dataframego converts github.com/rocketlaunchr/dataframe-go
// DataFrames into frames consumable by the conversion pipeline.
package dataframego

import (
	"fmt"
	"math"

	dataframe "github.com/rocketlaunchr/dataframe-go"

	"github.com/chedl98/hyperleaup/pkg/frame"
)

// ToFrame converts a DataFrame into a Frame. Series types map to logical
// kinds (int64 -> long, float64 -> double, string -> string, time ->
// timestamp); nil and NaN values become nulls. All columns are nullable,
// matching the DataFrame model.
func ToFrame(df *dataframe.DataFrame) (*frame.Frame, error) {
	schema := frame.Schema{Columns: make([]frame.ColumnSchema, len(df.Series))}
	for i, s := range df.Series {
		var kind frame.Kind
		switch s.(type) {
		case *dataframe.SeriesInt64:
			kind = frame.KindLong
		case *dataframe.SeriesFloat64:
			kind = frame.KindDouble
		case *dataframe.SeriesString:
			kind = frame.KindString
		case *dataframe.SeriesTime:
			kind = frame.KindTimestamp
		default:
			return nil, fmt.Errorf("series %q: unsupported series type %T", s.Name(), s)
		}
		schema.Columns[i] = frame.ColumnSchema{Name: s.Name(), Type: kind, Nullable: true}
	}

	f := frame.NewFrame(schema)
	nrows := df.NRows()
	for r := 0; r < nrows; r++ {
		f.AppendNullRow()
		for c, s := range df.Series {
			v := s.Value(r)
			if v == nil {
				continue
			}
			if x, ok := v.(float64); ok && math.IsNaN(x) {
				continue
			}
			if err := f.SetCell(r, schema.Columns[c].Name, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

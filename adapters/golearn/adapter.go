// Package golearn provides adapters to convert between the dataframe used by
// the conversion pipeline and github.com/sjwhitworth/golearn/base
// DenseInstances.
package golearn

import (
	"strconv"
	"time"

	"github.com/sjwhitworth/golearn/base"

	"github.com/chedl98/hyperleaup/pkg/frame"
)

// ToDenseInstances converts a Frame into golearn DenseInstances. Numeric
// kinds become float attributes, everything else categorical.
func ToDenseInstances(f *frame.Frame) (*base.DenseInstances, error) {
	attrs := make([]base.Attribute, len(f.Schema().Columns))
	for i, cs := range f.Schema().Columns {
		switch cs.Type {
		case frame.KindShort, frame.KindInt, frame.KindLong, frame.KindFloat, frame.KindDouble:
			attrs[i] = base.NewFloatAttribute(cs.Name)
		default:
			ca := new(base.CategoricalAttribute)
			ca.SetName(cs.Name)
			attrs[i] = ca
		}
	}
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(f.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < f.Rows(); r++ {
		for c, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case frame.KindFloat, frame.KindDouble:
				if v, ok := col.(*frame.FloatColumn).Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(v))
				}
			case frame.KindShort, frame.KindInt, frame.KindLong:
				if v, ok := col.(*frame.IntColumn).Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(float64(v)))
				}
			default:
				if v, ok := categoricalString(col, cs.Type, r); ok {
					inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], v))
				}
			}
		}
	}
	// Heuristic: last column as class attribute.
	if len(attrs) > 0 {
		if err := inst.AddClassAttribute(attrs[len(attrs)-1]); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// categoricalString renders a non-numeric cell as the string fed to a
// categorical attribute. Returns false for null cells.
func categoricalString(col frame.Column, kind frame.Kind, row int) (string, bool) {
	switch c := col.(type) {
	case *frame.StringColumn:
		return c.Get(row)
	case *frame.BoolColumn:
		if v, ok := c.Get(row); ok {
			return strconv.FormatBool(v), true
		}
	case *frame.TimeColumn:
		if v, ok := c.Get(row); ok {
			if kind == frame.KindDate {
				return v.Format("2006-01-02"), true
			}
			return v.Format(time.RFC3339), true
		}
	}
	return "", false
}

// FromDenseInstances converts golearn DenseInstances into a Frame. Float
// attributes become double columns, categorical ones string columns; every
// column is nullable.
func FromDenseInstances(inst *base.DenseInstances) (*frame.Frame, error) {
	attrs := inst.AllAttributes()
	schema := frame.Schema{Columns: make([]frame.ColumnSchema, len(attrs))}
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		k := frame.KindString
		if a.GetType() == base.Float64Type {
			k = frame.KindDouble
		}
		schema.Columns[i] = frame.ColumnSchema{Name: a.GetName(), Type: k, Nullable: true}
		spec, err := inst.GetAttribute(a)
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}
	f := frame.NewFrame(schema)
	_, nrows := inst.Size()
	for r := 0; r < nrows; r++ {
		f.AppendNullRow()
		for c, cs := range schema.Columns {
			switch cs.Type {
			case frame.KindDouble:
				v := base.UnpackBytesToFloat(inst.Get(specs[c], r))
				_ = f.SetCell(r, cs.Name, v)
			default:
				v := base.Attribute.GetStringFromSysVal(specs[c].GetAttribute(), inst.Get(specs[c], r))
				_ = f.SetCell(r, cs.Name, v)
			}
		}
	}
	return f, nil
}

package creator

import (
	"github.com/chedl98/hyperleaup/pkg/frame"
	"github.com/chedl98/hyperleaup/pkg/hyper"
)

// ConvertColumn maps one source column to its engine column. Name and
// nullability pass through verbatim; the type is the unique mapped
// equivalent. Unrecognized kinds fail with UnsupportedTypeError.
func ConvertColumn(cs frame.ColumnSchema) (hyper.TableColumn, error) {
	var t hyper.SqlType
	switch cs.Type {
	case frame.KindString:
		t = hyper.Text()
	case frame.KindDate:
		t = hyper.Date()
	case frame.KindTimestamp:
		t = hyper.Timestamp()
	case frame.KindShort:
		t = hyper.SmallInt()
	case frame.KindInt:
		t = hyper.Integer()
	case frame.KindLong:
		t = hyper.BigInt()
	case frame.KindFloat, frame.KindDouble:
		t = hyper.Double()
	case frame.KindBool:
		t = hyper.Bool()
	case frame.KindDecimal:
		t = hyper.Numeric(cs.Precision, cs.Scale)
	default:
		return hyper.TableColumn{}, &UnsupportedTypeError{Column: cs.Name, Kind: cs.Type}
	}
	n := hyper.NotNullable
	if cs.Nullable {
		n = hyper.Nullable
	}
	return hyper.TableColumn{Name: cs.Name, Type: t, Nullability: n}, nil
}

// TableDefFor converts a full source schema into a table definition,
// preserving column order. It is all-or-nothing: the first unconvertible
// column aborts with no partial definition.
func TableDefFor(s frame.Schema, schemaName, tableName string) (hyper.TableDefinition, error) {
	cols := make([]hyper.TableColumn, len(s.Columns))
	for i, cs := range s.Columns {
		col, err := ConvertColumn(cs)
		if err != nil {
			return hyper.TableDefinition{}, err
		}
		cols[i] = col
	}
	return hyper.TableDefinition{
		Name:    hyper.TableName{Schema: schemaName, Name: tableName},
		Columns: cols,
	}, nil
}

// Rows materializes every record of the source dataframe into memory as
// ordered scalar slices. This is the one potentially expensive, memory-bound
// step of the pipeline; callers must size their datasets accordingly.
func Rows(f *frame.Frame) [][]any {
	return f.Records()
}

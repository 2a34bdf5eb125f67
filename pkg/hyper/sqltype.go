package hyper

import (
	"fmt"
	"strings"
)

// TypeTag discriminates the engine scalar types.
type TypeTag int

const (
	TagInvalid TypeTag = iota
	TagBool
	TagSmallInt
	TagInteger
	TagBigInt
	TagDouble
	TagText
	TagDate
	TagTimestamp
	TagNumeric
)

// SqlType is an engine column type. Precision and Scale are set for
// numeric types only.
type SqlType struct {
	Tag       TypeTag
	Precision int
	Scale     int
}

func Bool() SqlType      { return SqlType{Tag: TagBool} }
func SmallInt() SqlType  { return SqlType{Tag: TagSmallInt} }
func Integer() SqlType   { return SqlType{Tag: TagInteger} }
func BigInt() SqlType    { return SqlType{Tag: TagBigInt} }
func Double() SqlType    { return SqlType{Tag: TagDouble} }
func Text() SqlType      { return SqlType{Tag: TagText} }
func Date() SqlType      { return SqlType{Tag: TagDate} }
func Timestamp() SqlType { return SqlType{Tag: TagTimestamp} }

func Numeric(precision, scale int) SqlType {
	return SqlType{Tag: TagNumeric, Precision: precision, Scale: scale}
}

// String renders the type as engine DDL text.
func (t SqlType) String() string {
	switch t.Tag {
	case TagBool:
		return "BOOLEAN"
	case TagSmallInt:
		return "SMALLINT"
	case TagInteger:
		return "INTEGER"
	case TagBigInt:
		return "BIGINT"
	case TagDouble:
		return "DOUBLE PRECISION"
	case TagText:
		return "TEXT"
	case TagDate:
		return "DATE"
	case TagTimestamp:
		return "TIMESTAMP"
	case TagNumeric:
		return fmt.Sprintf("NUMERIC(%d,%d)", t.Precision, t.Scale)
	default:
		return "INVALID"
	}
}

// Nullability of an engine column.
type Nullability int

const (
	NotNullable Nullability = iota
	Nullable
)

func (n Nullability) String() string {
	if n == Nullable {
		return "NULLABLE"
	}
	return "NOT_NULLABLE"
}

// QuoteName wraps an identifier in double quotes, escaping embedded quotes.
func QuoteName(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

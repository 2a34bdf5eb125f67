package creator_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chedl98/hyperleaup/pkg/creator"
	"github.com/chedl98/hyperleaup/pkg/engine"
	"github.com/chedl98/hyperleaup/pkg/frame"
	"github.com/chedl98/hyperleaup/pkg/hyper"
)

func peopleFrame(t *testing.T, rows [][]any) *frame.Frame {
	t.Helper()
	s := frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "id", Type: frame.KindLong, Nullable: true},
		{Name: "first_name", Type: frame.KindString, Nullable: true},
		{Name: "last_name", Type: frame.KindString, Nullable: true},
	}}
	f := frame.NewFrame(s)
	for r, rec := range rows {
		f.AppendNullRow()
		for c, cs := range s.Columns {
			require.NoError(t, f.SetCell(r, cs.Name, rec[c]))
		}
	}
	return f
}

func tableNames(t *testing.T, path, schema string) []string {
	t.Helper()
	conn, err := engine.Open(path)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()
	names, err := conn.TableNames(schema)
	require.NoError(t, err)
	return names
}

func rowCount(t *testing.T, path, schema, table string) int64 {
	t.Helper()
	conn, err := engine.Open(path)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()
	n, err := conn.RowCount(schema, table)
	require.NoError(t, err)
	return n
}

func TestInsertDataIntoExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.extract")
	def := hyper.TableDefinition{
		Name: hyper.TableName{Schema: "Extract", Name: "Extract"},
		Columns: []hyper.TableColumn{
			{Name: "id", Type: hyper.BigInt(), Nullability: hyper.Nullable},
			{Name: "first_name", Type: hyper.Text(), Nullability: hyper.Nullable},
			{Name: "last_name", Type: hyper.Text(), Nullability: hyper.Nullable},
		},
	}
	rows := [][]any{
		{int64(1001), "Jane", "Doe"},
		{int64(1002), "John", "Doe"},
		{int64(2201), "Elonzo", "Smith"},
	}
	got, err := creator.InsertDataIntoExtract(rows, path, def, false)
	require.NoError(t, err)
	require.Equal(t, path, got)

	require.Equal(t, []string{"Extract"}, tableNames(t, path, "Extract"))
	require.EqualValues(t, 3, rowCount(t, path, "Extract", "Extract"))
}

func TestCreate(t *testing.T) {
	rows := [][]any{
		{int64(1001), "Jane", "Doe"},
		{int64(1002), "John", "Doe"},
		{int64(2201), "Elonzo", "Smith"},
	}
	df := peopleFrame(t, rows)
	path := filepath.Join(t.TempDir(), "output.extract")

	got, err := creator.New(df, path, false).Create()
	require.NoError(t, err)
	require.Equal(t, path, got)
	require.Equal(t, []string{"Extract"}, tableNames(t, path, "Extract"))
	require.EqualValues(t, 3, rowCount(t, path, "Extract", "Extract"))
}

func TestCreateDestinationConflict(t *testing.T) {
	rows := [][]any{{int64(1), "A", "B"}}
	df := peopleFrame(t, rows)
	path := filepath.Join(t.TempDir(), "output.extract")

	_, err := creator.New(df, path, false).Create()
	require.NoError(t, err)

	_, err = creator.New(df, path, false).Create()
	var dce *creator.DestinationConflictError
	require.ErrorAs(t, err, &dce)
	require.Equal(t, path, dce.Path)
}

func TestCreateReplaceIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.extract")

	first := peopleFrame(t, [][]any{
		{int64(1), "A", "B"},
		{int64(2), "C", "D"},
	})
	_, err := creator.New(first, path, true).Create()
	require.NoError(t, err)
	require.EqualValues(t, 2, rowCount(t, path, "Extract", "Extract"))

	second := peopleFrame(t, [][]any{
		{int64(3), "E", "F"},
		{int64(4), "G", "H"},
		{int64(5), "I", "J"},
	})
	_, err = creator.New(second, path, true).Create()
	require.NoError(t, err)
	// second load reflects only the second dataset
	require.EqualValues(t, 3, rowCount(t, path, "Extract", "Extract"))
	require.Equal(t, []string{"Extract"}, tableNames(t, path, "Extract"))
}

func TestCreateCustomNames(t *testing.T) {
	df := peopleFrame(t, [][]any{{int64(1), "A", "B"}})
	path := filepath.Join(t.TempDir(), "people.extract")

	_, err := creator.NewWithNames(df, path, false, "Public", "People").Create()
	require.NoError(t, err)
	require.Equal(t, []string{"People"}, tableNames(t, path, "Public"))
	require.EqualValues(t, 1, rowCount(t, path, "Public", "People"))
}

func TestCreateAbortsOnUnsupportedColumn(t *testing.T) {
	s := frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "bad", Type: frame.KindInvalid},
	}}
	// NewFrame panics on invalid kinds, so build the schema check directly.
	_, err := creator.TableDefFor(s, "Extract", "Extract")
	var ute *creator.UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
}

func TestCreateWithNulls(t *testing.T) {
	s := frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "id", Type: frame.KindLong, Nullable: true},
		{Name: "note", Type: frame.KindString, Nullable: true},
	}}
	df := frame.NewFrame(s)
	df.AppendNullRow()
	require.NoError(t, df.SetCell(0, "id", int64(7)))
	df.AppendNullRow() // fully null row

	path := filepath.Join(t.TempDir(), "nulls.extract")
	_, err := creator.New(df, path, false).Create()
	require.NoError(t, err)
	require.EqualValues(t, 2, rowCount(t, path, "Extract", "Extract"))
}

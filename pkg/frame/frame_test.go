package frame_test

import (
	"testing"
	"time"

	"github.com/chedl98/hyperleaup/pkg/frame"
)

func TestFrameSetAndGet(t *testing.T) {
	s := frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "id", Type: frame.KindLong, Nullable: true},
		{Name: "name", Type: frame.KindString, Nullable: true},
		{Name: "age", Type: frame.KindDouble, Nullable: true},
		{Name: "active", Type: frame.KindBool, Nullable: true},
		{Name: "joined", Type: frame.KindTimestamp, Nullable: true},
	}}
	f := frame.NewFrame(s)
	f.AppendNullRow()
	if err := f.SetCell(0, "id", int64(1001)); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "name", "Jane"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "age", 29.0); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "active", false); err != nil {
		t.Fatal(err)
	}
	joined := time.Date(2020, 5, 1, 12, 30, 0, 0, time.UTC)
	if err := f.SetCell(0, "joined", joined); err != nil {
		t.Fatal(err)
	}

	col, ok := f.ColumnByName("id")
	if !ok {
		t.Fatal("missing id column")
	}
	v, present := col.(*frame.IntColumn).Get(0)
	if !present || v != 1001 {
		t.Fatalf("got id %d (present=%v)", v, present)
	}
	if col.Kind() != frame.KindLong {
		t.Fatalf("expected long kind, got %s", col.Kind())
	}
}

func TestRecordsMaterialization(t *testing.T) {
	s := frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "id", Type: frame.KindLong, Nullable: true},
		{Name: "first_name", Type: frame.KindString, Nullable: true},
	}}
	f := frame.NewFrame(s)
	for i := 0; i < 3; i++ {
		f.AppendNullRow()
	}
	_ = f.SetCell(0, "id", int64(1001))
	_ = f.SetCell(0, "first_name", "Jane")
	_ = f.SetCell(1, "id", int64(1002))
	// row 1 first_name left null; row 2 all null

	rows := f.Records()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != 2 {
			t.Fatalf("row %d: expected 2 cells, got %d", i, len(row))
		}
	}
	if rows[0][0] != int64(1001) || rows[0][1] != "Jane" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][1] != nil {
		t.Fatalf("expected null marker in row 1, got %v", rows[1][1])
	}
	if rows[2][0] != nil || rows[2][1] != nil {
		t.Fatalf("expected all-null row 2, got %v", rows[2])
	}
}

func TestSetCellNullAndTypeMismatch(t *testing.T) {
	s := frame.Schema{Columns: []frame.ColumnSchema{{Name: "x", Type: frame.KindDouble, Nullable: true}}}
	f := frame.NewFrame(s)
	f.AppendNullRow()
	_ = f.SetCell(0, "x", 1.5)
	if err := f.SetCell(0, "x", nil); err != nil {
		t.Fatal(err)
	}
	col, _ := f.ColumnByName("x")
	if !col.IsNull(0) {
		t.Fatal("expected cell back to null")
	}
	if err := f.SetCell(0, "x", "nope"); err == nil {
		t.Fatal("expected type mismatch error")
	}
	if err := f.SetCell(0, "y", 1.0); err == nil {
		t.Fatal("expected unknown column error")
	}
}

func TestDecimalColumnIsStringBacked(t *testing.T) {
	s := frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "price", Type: frame.KindDecimal, Nullable: true, Precision: 10, Scale: 2},
	}}
	f := frame.NewFrame(s)
	f.AppendNullRow()
	if err := f.SetCell(0, "price", "19.99"); err != nil {
		t.Fatal(err)
	}
	col, _ := f.ColumnByName("price")
	if col.Kind() != frame.KindDecimal {
		t.Fatalf("expected decimal kind, got %s", col.Kind())
	}
	if v := col.Value(0); v != "19.99" {
		t.Fatalf("got %v", v)
	}
}

package hyper_test

import (
	"testing"

	"github.com/chedl98/hyperleaup/pkg/hyper"
)

func TestSqlTypeRendering(t *testing.T) {
	cases := []struct {
		in   hyper.SqlType
		want string
	}{
		{hyper.Text(), "TEXT"},
		{hyper.Date(), "DATE"},
		{hyper.Timestamp(), "TIMESTAMP"},
		{hyper.SmallInt(), "SMALLINT"},
		{hyper.Integer(), "INTEGER"},
		{hyper.BigInt(), "BIGINT"},
		{hyper.Double(), "DOUBLE PRECISION"},
		{hyper.Bool(), "BOOLEAN"},
		{hyper.Numeric(10, 2), "NUMERIC(10,2)"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}

func TestQuoteName(t *testing.T) {
	if got := hyper.QuoteName("first_name"); got != `"first_name"` {
		t.Fatalf("got %q", got)
	}
	if got := hyper.QuoteName(`we"ird`); got != `"we""ird"` {
		t.Fatalf("got %q", got)
	}
}

func TestTableNameString(t *testing.T) {
	n := hyper.TableName{Schema: "Extract", Name: "Extract"}
	if got := n.String(); got != `"Extract"."Extract"` {
		t.Fatalf("got %q", got)
	}
	bare := hyper.TableName{Name: "People"}
	if got := bare.String(); got != `"People"` {
		t.Fatalf("got %q", got)
	}
}

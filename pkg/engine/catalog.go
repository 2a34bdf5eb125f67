package engine

import (
	"strings"

	"github.com/chedl98/hyperleaup/pkg/hyper"
)

// TableNames returns the names of all tables under the given schema,
// without the schema prefix.
func (c *Conn) TableNames(schema string) ([]string, error) {
	prefix := schema + "."
	pattern := likeEscape(prefix) + "%"
	rows, err := c.db.Query(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name LIKE ? ESCAPE '\' ORDER BY name`,
		pattern,
	)
	if err != nil {
		return nil, engineErr("table names", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, engineErr("table names", err)
		}
		names = append(names, strings.TrimPrefix(name, prefix))
	}
	if err := rows.Err(); err != nil {
		return nil, engineErr("table names", err)
	}
	return names, nil
}

// RowCount returns the number of rows in the given table.
func (c *Conn) RowCount(schema, table string) (int64, error) {
	ident := tableIdent(hyper.TableName{Schema: schema, Name: table})
	var n int64
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM ` + ident).Scan(&n); err != nil {
		return 0, engineErr("row count", err)
	}
	return n, nil
}

func likeEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Package engine is a thin client for the file-backed extract engine. It
// exposes the narrow surface the conversion pipeline needs: open a file,
// create a schema and table, bulk-insert rows, and query the catalog.
package engine

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/chedl98/hyperleaup/pkg/hyper"
)

// Error wraps a failure from the underlying engine, preserving its
// diagnostic message.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("engine %s: %v", e.Op, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

func engineErr(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// schemaCatalog records created schema names. The engine file has no native
// schema namespaces; tables are stored under a composite "schema.table"
// identifier and this catalog makes empty schemas observable.
const schemaCatalog = "extract_schemas"

// Conn is an open connection to an extract file. Callers must Close it;
// Close releases the engine handle unconditionally.
type Conn struct {
	db *sql.DB
}

// Open starts the engine against the file at path, creating it if absent.
func Open(path string) (*Conn, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, engineErr("open", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, engineErr("connect", err)
	}
	return &Conn{db: db}, nil
}

func (c *Conn) Close() error {
	return c.db.Close()
}

// CreateSchema registers the schema name, creating the catalog on first use.
// Creating an existing schema is a no-op.
func (c *Conn) CreateSchema(name string) error {
	if _, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS ` + hyper.QuoteName(schemaCatalog) + ` (name TEXT PRIMARY KEY)`); err != nil {
		return engineErr("create schema", err)
	}
	if _, err := c.db.Exec(`INSERT OR IGNORE INTO `+hyper.QuoteName(schemaCatalog)+` (name) VALUES (?)`, name); err != nil {
		return engineErr("create schema", err)
	}
	return nil
}

// CreateTable creates the table described by def. It fails if a table with
// the same qualified name already exists.
func (c *Conn) CreateTable(def hyper.TableDefinition) error {
	ddl := `CREATE TABLE ` + tableIdent(def.Name) + ` (`
	for i, col := range def.Columns {
		if i > 0 {
			ddl += ", "
		}
		ddl += hyper.QuoteName(col.Name) + " " + col.Type.String()
		if col.Nullability == hyper.NotNullable {
			ddl += " NOT NULL"
		}
	}
	ddl += `)`
	if _, err := c.db.Exec(ddl); err != nil {
		return engineErr("create table", err)
	}
	return nil
}

// Insert bulk-loads rows into the table in a single transaction. Row order
// is preserved; a nil cell binds NULL.
func (c *Conn) Insert(def hyper.TableDefinition, rows [][]any) error {
	tx, err := c.db.Begin()
	if err != nil {
		return engineErr("insert", err)
	}
	stmt, err := tx.Prepare(insertSQL(def))
	if err != nil {
		_ = tx.Rollback()
		return engineErr("insert", err)
	}
	for _, row := range rows {
		args := make([]any, len(def.Columns))
		for i := range def.Columns {
			var v any
			if i < len(row) {
				v = row[i]
			}
			args[i] = bindValue(def.Columns[i].Type, v)
		}
		if _, err := stmt.Exec(args...); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return engineErr("insert", err)
		}
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return engineErr("insert", err)
	}
	if err := tx.Commit(); err != nil {
		return engineErr("insert", err)
	}
	return nil
}

func insertSQL(def hyper.TableDefinition) string {
	q := `INSERT INTO ` + tableIdent(def.Name) + ` VALUES (`
	for i := range def.Columns {
		if i > 0 {
			q += ", "
		}
		q += "?"
	}
	return q + `)`
}

// tableIdent renders the qualified name as one composite identifier:
// the file holds a flat table namespace, so the schema becomes a prefix.
func tableIdent(n hyper.TableName) string {
	if n.Schema == "" {
		return hyper.QuoteName(n.Name)
	}
	return hyper.QuoteName(n.Schema + "." + n.Name)
}

// bindValue converts a materialized scalar to the engine wire value for the
// given column type. The client owns the wire formats for dates, timestamps
// and booleans.
func bindValue(t hyper.SqlType, v any) any {
	if v == nil {
		return nil
	}
	switch t.Tag {
	case hyper.TagDate:
		if ts, ok := v.(time.Time); ok {
			return ts.Format("2006-01-02")
		}
	case hyper.TagTimestamp:
		if ts, ok := v.(time.Time); ok {
			return ts.Format("2006-01-02 15:04:05.999999")
		}
	case hyper.TagBool:
		if b, ok := v.(bool); ok {
			if b {
				return int64(1)
			}
			return int64(0)
		}
	}
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	}
	return v
}

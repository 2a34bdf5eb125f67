// Package creator converts a typed dataframe into a single-file extract:
// map the schema, materialize the rows, bulk-load them through the engine
// client.
package creator

import (
	"errors"
	"io/fs"
	"os"

	"github.com/chedl98/hyperleaup/pkg/engine"
	"github.com/chedl98/hyperleaup/pkg/frame"
	"github.com/chedl98/hyperleaup/pkg/hyper"
)

const (
	DefaultSchemaName = "Extract"
	DefaultTableName  = "Extract"
)

// InsertDataIntoExtract bulk-loads rows into a new table at path and returns
// the path. The destination conflict check happens before the engine is
// started; when replace is true an existing artifact is removed first. The
// engine connection is released on every exit.
func InsertDataIntoExtract(rows [][]any, path string, def hyper.TableDefinition, replace bool) (string, error) {
	if _, err := os.Stat(path); err == nil {
		if !replace {
			return "", &DestinationConflictError{Path: path}
		}
		if err := os.Remove(path); err != nil {
			return "", err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	conn, err := engine.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = conn.Close() }()

	if err := conn.CreateSchema(def.Name.Schema); err != nil {
		return "", err
	}
	if err := conn.CreateTable(def); err != nil {
		return "", err
	}
	if err := conn.Insert(def, rows); err != nil {
		return "", err
	}
	return path, nil
}

// Creator runs the three-stage conversion: schema derivation, row
// extraction, load. Each stage runs once; the first failure aborts.
type Creator struct {
	df         *frame.Frame
	path       string
	replace    bool
	schemaName string
	tableName  string
}

// New builds a Creator with the default schema and table names.
func New(df *frame.Frame, path string, replace bool) *Creator {
	return NewWithNames(df, path, replace, DefaultSchemaName, DefaultTableName)
}

// NewWithNames builds a Creator targeting the given schema and table names.
// Empty names fall back to the defaults.
func NewWithNames(df *frame.Frame, path string, replace bool, schemaName, tableName string) *Creator {
	if schemaName == "" {
		schemaName = DefaultSchemaName
	}
	if tableName == "" {
		tableName = DefaultTableName
	}
	return &Creator{df: df, path: path, replace: replace, schemaName: schemaName, tableName: tableName}
}

// Create produces the extract file and returns its path.
func (c *Creator) Create() (string, error) {
	def, err := TableDefFor(c.df.Schema(), c.schemaName, c.tableName)
	if err != nil {
		return "", err
	}
	rows := Rows(c.df)
	return InsertDataIntoExtract(rows, c.path, def, c.replace)
}

package hyper

// TableName is a schema-qualified table name.
type TableName struct {
	Schema string
	Name   string
}

// String renders the qualified name with quoted identifiers.
func (n TableName) String() string {
	if n.Schema == "" {
		return QuoteName(n.Name)
	}
	return QuoteName(n.Schema) + "." + QuoteName(n.Name)
}

// TableColumn is one engine column: name and nullability carried over
// verbatim from the source column, type mapped to the engine equivalent.
type TableColumn struct {
	Name        string
	Type        SqlType
	Nullability Nullability
}

// TableDefinition describes a table to be created in the engine. Column
// order is positional: row values align by index.
type TableDefinition struct {
	Name    TableName
	Columns []TableColumn
}

// Column returns the i-th column.
func (d TableDefinition) Column(i int) TableColumn { return d.Columns[i] }

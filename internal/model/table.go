package model

// Column is an ordered sequence of raw cell values.
// Values can be strings, numbers, bools or nil for missing cells.
type Column struct {
	Name   string        `json:"name"`
	Values []interface{} `json:"values"`
}

// NewColumn creates a new column with the given values.
func NewColumn(name string, values ...interface{}) Column {
	return Column{
		Name:   name,
		Values: values,
	}
}

// Len returns the number of rows of the column.
func (c Column) Len() int {
	return len(c.Values)
}

// Table is an ordered list of named columns.
type Table struct {
	Columns []Column `json:"columns"`
}

// NewTable creates a new table from the given columns.
func NewTable(columns ...Column) Table {
	if columns == nil {
		columns = make([]Column, 0)
	}
	return Table{Columns: columns}
}

// Rows returns the number of rows of the longest column.
func (t Table) Rows() int {
	n := 0
	for _, c := range t.Columns {
		if c.Len() > n {
			n = c.Len()
		}
	}
	return n
}

// Column returns the column with the given name.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

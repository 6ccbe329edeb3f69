package sqlgen

// ColumnDef describes a single SQL column.
type ColumnDef struct {
	Name    string // SQL column name
	SQLType string // INT, VARCHAR(255), TEXT, DECIMAL(10, 2)
	NotNull bool
	PK      bool // PRIMARY KEY
}

// ForeignKey describes a table-level FOREIGN KEY clause.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
	OnDelete  string // e.g. "CASCADE"; empty omits the ON DELETE action
}

// TableDef describes a SQL table.
type TableDef struct {
	Name        string
	Columns     []ColumnDef
	ForeignKeys []ForeignKey
}

// Tables returns the catalog table definitions keyed by table name.
// Emission order is decided by SortTables, not by this map.
func Tables() map[string]*TableDef {
	return map[string]*TableDef{
		"categories": {
			Name: "categories",
			Columns: []ColumnDef{
				{Name: "id", SQLType: "INT", PK: true},
				{Name: "name", SQLType: "VARCHAR(255)", NotNull: true},
				{Name: "description", SQLType: "TEXT"},
			},
		},
		"products": {
			Name: "products",
			Columns: []ColumnDef{
				{Name: "id", SQLType: "INT", PK: true},
				{Name: "name", SQLType: "VARCHAR(255)", NotNull: true},
				{Name: "description", SQLType: "TEXT"},
				{Name: "price", SQLType: "DECIMAL(10, 2)", NotNull: true},
				{Name: "category_id", SQLType: "INT", NotNull: true},
			},
			ForeignKeys: []ForeignKey{
				{Column: "category_id", RefTable: "categories", RefColumn: "id", OnDelete: "CASCADE"},
			},
		},
	}
}

// SortedTables returns the catalog tables in FK dependency order,
// referenced tables first.
func SortedTables() []*TableDef {
	tables := Tables()
	var sorted []*TableDef
	for _, name := range SortTables(tables) {
		sorted = append(sorted, tables[name])
	}
	return sorted
}

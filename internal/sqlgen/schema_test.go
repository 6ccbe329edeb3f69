package sqlgen

import "testing"

const wantDDL = `CREATE TABLE IF NOT EXISTS categories (
  id INT PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  description TEXT
);

CREATE TABLE IF NOT EXISTS products (
  id INT PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  description TEXT,
  price DECIMAL(10, 2) NOT NULL,
  category_id INT NOT NULL,
  FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
);
`

func TestGenerateSchemaSQL(t *testing.T) {
	got := GenerateSchemaSQL(SortedTables())
	if got != wantDDL {
		t.Errorf("GenerateSchemaSQL() =\n%s\nwant:\n%s", got, wantDDL)
	}
}

func TestQuoteName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"name", "name"},
		{"category_id", "category_id"},
		{"order", `"order"`},
		{"User", `"User"`},
		{"limit", `"limit"`},
	}

	for _, tt := range tests {
		if got := quoteName(tt.input); got != tt.want {
			t.Errorf("quoteName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGenerateCreateTableQuotesReservedColumns(t *testing.T) {
	td := &TableDef{
		Name: "orders",
		Columns: []ColumnDef{
			{Name: "id", SQLType: "INT", PK: true},
			{Name: "order", SQLType: "INT", NotNull: true},
		},
	}

	want := `CREATE TABLE IF NOT EXISTS orders (
  id INT PRIMARY KEY,
  "order" INT NOT NULL
);
`
	if got := generateCreateTable(td); got != want {
		t.Errorf("generateCreateTable() =\n%s\nwant:\n%s", got, want)
	}
}

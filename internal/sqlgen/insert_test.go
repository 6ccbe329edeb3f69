package sqlgen

import (
	"strings"
	"testing"

	"github.com/catalogkit/go-catalog-schema/catalog"
)

func TestGenerateCategoryInserts(t *testing.T) {
	stmts := GenerateCategoryInserts(catalog.Sample(), Options{})

	if len(stmts) != 3 {
		t.Fatalf("statements = %d, want 3", len(stmts))
	}
	want := "INSERT INTO categories (id, name, description) VALUES (1, 'Electronics', 'Devices like phones, computers');"
	if stmts[0] != want {
		t.Errorf("stmts[0] = %q, want %q", stmts[0], want)
	}
}

func TestGenerateProductInserts(t *testing.T) {
	stmts := GenerateProductInserts(catalog.Sample(), Options{})

	if len(stmts) != 5 {
		t.Fatalf("statements = %d, want 5", len(stmts))
	}
	want := "INSERT INTO products (id, name, description, price, category_id) VALUES (1, 'Laptop Pro', 'High-performance laptop', 1200, 1);"
	if stmts[0] != want {
		t.Errorf("stmts[0] = %q, want %q", stmts[0], want)
	}
	// Fractional prices keep their full precision.
	if !strings.Contains(stmts[2], "75.5,") {
		t.Errorf("stmts[2] = %q, want price 75.5", stmts[2])
	}
}

func TestInsertEscapesSingleQuotes(t *testing.T) {
	s := catalog.Schema{
		Categories: []catalog.Category{
			{
				ID:          1,
				Name:        "O'Brien's Goods",
				Description: catalog.String("it's fine"),
				Products: []catalog.Product{
					{ID: 1, Name: "Fisherman's Friend", Price: 2.5, CategoryID: 1},
				},
			},
		},
	}

	catStmts := GenerateCategoryInserts(s, Options{})
	want := "INSERT INTO categories (id, name, description) VALUES (1, 'O''Brien''s Goods', 'it''s fine');"
	if catStmts[0] != want {
		t.Errorf("category insert = %q, want %q", catStmts[0], want)
	}

	prodStmts := GenerateProductInserts(s, Options{})
	if !strings.Contains(prodStmts[0], "'Fisherman''s Friend'") {
		t.Errorf("product insert %q does not double the quote", prodStmts[0])
	}
}

func TestMissingDescriptionRendering(t *testing.T) {
	s := catalog.Schema{
		Categories: []catalog.Category{
			{ID: 1, Name: "Misc", Products: []catalog.Product{
				{ID: 1, Name: "Widget", Price: 1, CategoryID: 1},
			}},
		},
	}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "default emits SQL NULL",
			opts: Options{},
			want: "INSERT INTO categories (id, name, description) VALUES (1, 'Misc', NULL);",
		},
		{
			name: "compat emits quoted NULL text",
			opts: Options{CompatNullStrings: true},
			want: "INSERT INTO categories (id, name, description) VALUES (1, 'Misc', 'NULL');",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCategoryInserts(s, tt.opts)[0]
			if got != tt.want {
				t.Errorf("insert = %q, want %q", got, tt.want)
			}

			prod := GenerateProductInserts(s, tt.opts)[0]
			wantVal := "NULL"
			if tt.opts.CompatNullStrings {
				wantVal = "'NULL'"
			}
			if !strings.Contains(prod, ", "+wantVal+", 1, 1);") {
				t.Errorf("product insert = %q, want description %s", prod, wantVal)
			}
		})
	}
}

func TestPriceValue(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{1200.00, "1200"},
		{75.50, "75.5"},
		{39.99, "39.99"},
		{0.1, "0.1"},
		{12.345, "12.345"},
	}

	for _, tt := range tests {
		if got := priceValue(tt.price); got != tt.want {
			t.Errorf("priceValue(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestGenerateSQL(t *testing.T) {
	got := GenerateSQL(catalog.Sample(), Options{})

	if n := strings.Count(got, "CREATE TABLE IF NOT EXISTS"); n != 2 {
		t.Errorf("CREATE TABLE statements = %d, want 2", n)
	}
	if n := strings.Count(got, "INSERT INTO categories"); n != 3 {
		t.Errorf("category INSERTs = %d, want 3", n)
	}
	if n := strings.Count(got, "INSERT INTO products"); n != 5 {
		t.Errorf("product INSERTs = %d, want 5", n)
	}

	// Block order: DDL, category inserts, product inserts.
	catHeader := strings.Index(got, "-- Insert sample data into categories")
	prodHeader := strings.Index(got, "-- Insert sample data into products")
	lastCreate := strings.LastIndex(got, "CREATE TABLE IF NOT EXISTS")
	if catHeader < 0 || prodHeader < 0 {
		t.Fatal("missing insert block headers")
	}
	if !(lastCreate < catHeader && catHeader < prodHeader) {
		t.Errorf("blocks out of order: create=%d categories=%d products=%d", lastCreate, catHeader, prodHeader)
	}
}

func TestGenerateSQLDeterministic(t *testing.T) {
	s := catalog.Sample()
	first := GenerateSQL(s, Options{})
	for i := 0; i < 10; i++ {
		if got := GenerateSQL(s, Options{}); got != first {
			t.Fatalf("rendering %d differs from first rendering", i)
		}
	}
}

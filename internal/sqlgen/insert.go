package sqlgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/catalogkit/go-catalog-schema/catalog"
)

// Options control INSERT rendering behavior.
type Options struct {
	// CompatNullStrings reproduces the original generator's treatment of a
	// missing description: the quoted four-character text 'NULL' instead of
	// a SQL NULL. Off by default; enable only when byte-compatible output
	// is required.
	CompatNullStrings bool
}

// escapeText doubles single quotes so an embedded quote cannot terminate
// the string literal.
func escapeText(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// textValue renders s as a quoted SQL string literal. A nil value renders
// as NULL, or as the quoted text 'NULL' in compat mode.
func textValue(s *string, opts Options) string {
	if s == nil {
		if opts.CompatNullStrings {
			return "'NULL'"
		}
		return "NULL"
	}
	return "'" + escapeText(*s) + "'"
}

// priceValue renders a price at full float precision. The DECIMAL(10, 2)
// column scale is not applied here; the database rounds on insert.
func priceValue(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// GenerateCategoryInserts emits one INSERT per category in schema order.
func GenerateCategoryInserts(s catalog.Schema, opts Options) []string {
	stmts := make([]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO categories (id, name, description) VALUES (%d, '%s', %s);",
			c.ID, escapeText(c.Name), textValue(c.Description, opts)))
	}
	return stmts
}

// GenerateProductInserts emits one INSERT per product, flattened across
// categories in category order then per-category product order.
func GenerateProductInserts(s catalog.Schema, opts Options) []string {
	products := s.Products()
	stmts := make([]string, 0, len(products))
	for _, p := range products {
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO products (id, name, description, price, category_id) VALUES (%d, '%s', %s, %s, %d);",
			p.ID, escapeText(p.Name), textValue(p.Description, opts), priceValue(p.Price), p.CategoryID))
	}
	return stmts
}

// GenerateSQL assembles the full SQL text block: table DDL in FK order,
// then category inserts, then product inserts, each insert block preceded
// by a comment header.
func GenerateSQL(s catalog.Schema, opts Options) string {
	var b strings.Builder

	b.WriteString(GenerateSchemaSQL(SortedTables()))

	b.WriteString("\n-- Insert sample data into categories\n")
	for _, stmt := range GenerateCategoryInserts(s, opts) {
		b.WriteString(stmt)
		b.WriteString("\n")
	}

	b.WriteString("\n-- Insert sample data into products\n")
	for _, stmt := range GenerateProductInserts(s, opts) {
		b.WriteString(stmt)
		b.WriteString("\n")
	}

	return b.String()
}

package sqlgen

import (
	"fmt"
	"strings"
)

// postgresReservedWords contains SQL keywords that must be quoted when used
// as column names.
var postgresReservedWords = map[string]bool{
	"all": true, "analyse": true, "analyze": true, "and": true, "any": true,
	"array": true, "as": true, "asc": true, "asymmetric": true, "both": true,
	"case": true, "cast": true, "check": true, "collate": true,
	"column": true, "constraint": true, "create": true, "current_date": true,
	"current_role": true, "current_time": true, "current_timestamp": true,
	"current_user": true, "default": true, "deferrable": true, "desc": true,
	"distinct": true, "do": true, "else": true, "end": true, "except": true,
	"false": true, "fetch": true, "for": true, "foreign": true, "from": true,
	"grant": true, "group": true, "having": true, "in": true,
	"initially": true, "intersect": true, "into": true, "lateral": true,
	"leading": true, "limit": true, "localtime": true,
	"localtimestamp": true, "not": true, "null": true, "offset": true,
	"on": true, "only": true, "or": true, "order": true, "placing": true,
	"primary": true, "references": true, "returning": true, "select": true,
	"session_user": true, "some": true, "symmetric": true, "table": true,
	"then": true, "to": true, "trailing": true, "true": true, "union": true,
	"unique": true, "user": true, "using": true, "variadic": true,
	"when": true, "where": true, "window": true, "with": true,
}

// quoteName returns the column name quoted with double quotes if it's a
// reserved SQL word, otherwise returns it unchanged.
func quoteName(name string) string {
	if postgresReservedWords[strings.ToLower(name)] {
		return `"` + name + `"`
	}
	return name
}

// GenerateSchemaSQL generates CREATE TABLE statements for the given tables
// in slice order. Each statement carries an IF NOT EXISTS guard so the
// output can be applied repeatedly.
func GenerateSchemaSQL(tables []*TableDef) string {
	var b strings.Builder

	for i, td := range tables {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(generateCreateTable(td))
	}

	return b.String()
}

func generateCreateTable(td *TableDef) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n", td.Name))

	for i, col := range td.Columns {
		b.WriteString("  ")
		b.WriteString(quoteName(col.Name))
		b.WriteString(" ")
		b.WriteString(col.SQLType)

		if col.PK {
			b.WriteString(" PRIMARY KEY")
		}
		if col.NotNull && !col.PK {
			b.WriteString(" NOT NULL")
		}

		// Trailing comma unless last column and no FK clauses follow.
		if i < len(td.Columns)-1 || len(td.ForeignKeys) > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	for i, fk := range td.ForeignKeys {
		b.WriteString(fmt.Sprintf("  FOREIGN KEY (%s) REFERENCES %s(%s)",
			quoteName(fk.Column), fk.RefTable, fk.RefColumn))
		if fk.OnDelete != "" {
			b.WriteString(" ON DELETE ")
			b.WriteString(fk.OnDelete)
		}
		if i < len(td.ForeignKeys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	b.WriteString(");\n")
	return b.String()
}

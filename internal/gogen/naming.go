package gogen

import "strings"

// goInitialisms maps lowercase identifier words to their Go spelling.
var goInitialisms = map[string]string{
	"id":  "ID",
	"sql": "SQL",
	"url": "URL",
}

// goFieldName converts a SQL column name (e.g. "category_id") to a Go
// field name (e.g. "CategoryID").
func goFieldName(sqlName string) string {
	parts := strings.Split(sqlName, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if init, ok := goInitialisms[part]; ok {
			b.WriteString(init)
			continue
		}
		runes := []rune(part)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		b.WriteString(string(runes))
	}
	return b.String()
}

// goTypeName converts a SQL table name (e.g. "categories") to a singular
// Go type name (e.g. "Category").
func goTypeName(tableName string) string {
	return goFieldName(singularize(tableName))
}

// singularize trims a plural table-name suffix. It handles the "-ies" and
// plain "-s" forms, which covers the catalog tables.
func singularize(s string) string {
	switch {
	case strings.HasSuffix(s, "ies"):
		return strings.TrimSuffix(s, "ies") + "y"
	case strings.HasSuffix(s, "ses"):
		return strings.TrimSuffix(s, "es")
	case strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		return strings.TrimSuffix(s, "s")
	}
	return s
}

// Package gogen emits Go model source code for the catalog tables.
package gogen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/catalogkit/go-catalog-schema/internal/sqlgen"
)

// Config holds all configuration for a model generation run.
type Config struct {
	OutputDir   string // output directory for models.go
	PackageName string // Go package name for the generated file
}

// Run generates models.go for the catalog tables into cfg.OutputDir.
func Run(cfg Config) error {
	pkgName := cfg.PackageName
	if pkgName == "" {
		pkgName = "models"
	}

	src, err := Generate(pkgName, sqlgen.SortedTables())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(cfg.OutputDir, "models.go")
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("writing models.go: %w", err)
	}
	return nil
}

// Generate renders one struct declaration per table, in slice order, with
// json tags matching the SQL column names. Nullable text columns become
// *string fields.
func Generate(pkgName string, tables []*sqlgen.TableDef) ([]byte, error) {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by genmodels. DO NOT EDIT.")

	for _, td := range tables {
		typeName := goTypeName(td.Name)
		fields := make([]jen.Code, 0, len(td.Columns))
		for _, col := range td.Columns {
			fields = append(fields, jen.Id(goFieldName(col.Name)).
				Add(goType(col)).
				Tag(map[string]string{"json": col.Name}))
		}
		f.Commentf("%s is a row of the %s table.", typeName, td.Name)
		f.Type().Id(typeName).Struct(fields...)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", pkgName, err)
	}
	return buf.Bytes(), nil
}

// goType maps a SQL column type to its Go representation.
func goType(col sqlgen.ColumnDef) *jen.Statement {
	nullable := !col.NotNull && !col.PK

	switch {
	case col.SQLType == "INT":
		if nullable {
			return jen.Op("*").Int()
		}
		return jen.Int()
	case strings.HasPrefix(col.SQLType, "DECIMAL"):
		if nullable {
			return jen.Op("*").Float64()
		}
		return jen.Float64()
	default: // VARCHAR(n), TEXT
		if nullable {
			return jen.Op("*").String()
		}
		return jen.String()
	}
}

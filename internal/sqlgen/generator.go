package sqlgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/catalogkit/go-catalog-schema/catalog"
)

// Config holds all configuration for a generator run.
type Config struct {
	SchemaFile        string    // optional YAML schema; empty uses the built-in sample
	OutputDir         string    // output directory; empty writes to Out
	CompatNullStrings bool      // render missing descriptions as the quoted text 'NULL'
	Out               io.Writer // stdout destination when OutputDir is empty
}

// Run executes the full generation pipeline: load (or default) the schema,
// validate it, render the JSON document and the SQL block, and either write
// schema.json and schema.sql into OutputDir or print both blocks to Out.
// No output is produced if any step fails.
func Run(cfg Config) error {
	// 1. Load the input schema.
	var schema catalog.Schema
	if cfg.SchemaFile != "" {
		loaded, err := catalog.LoadSchema(cfg.SchemaFile)
		if err != nil {
			return fmt.Errorf("loading schema: %w", err)
		}
		schema = *loaded
	} else {
		schema = catalog.Sample()
		if err := schema.Validate(); err != nil {
			return err
		}
	}

	// 2. Render both representations before writing anything.
	jsonDoc, err := schema.JSON()
	if err != nil {
		return err
	}
	sqlText := GenerateSQL(schema, Options{CompatNullStrings: cfg.CompatNullStrings})

	// 3. Write files.
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(filepath.Join(cfg.OutputDir, "schema.json"), append(jsonDoc, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing schema.json: %w", err)
		}
		if err := os.WriteFile(filepath.Join(cfg.OutputDir, "schema.sql"), []byte(sqlText), 0o644); err != nil {
			return fmt.Errorf("writing schema.sql: %w", err)
		}
		return nil
	}

	// 4. Or print to the console, JSON block first.
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintf(out, "--- Catalog Data in JSON Format ---\n%s\n", jsonDoc); err != nil {
		return fmt.Errorf("writing JSON block: %w", err)
	}
	if _, err := fmt.Fprintf(out, "\n--- SQL DDL for PostgreSQL ---\n%s", sqlText); err != nil {
		return fmt.Errorf("writing SQL block: %w", err)
	}
	return nil
}

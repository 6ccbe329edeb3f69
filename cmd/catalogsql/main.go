// Command catalogsql renders the product catalog as a pretty-printed JSON
// document and a PostgreSQL-compatible SQL block (CREATE TABLE statements
// plus sample-data INSERTs).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/catalogkit/go-catalog-schema/internal/sqlgen"
)

func main() {
	cfg := sqlgen.Config{}

	flag.StringVar(&cfg.SchemaFile, "schema", "", "Path to a catalog schema YAML file (default: built-in sample data)")
	flag.StringVar(&cfg.OutputDir, "output", "", "Output directory for schema.json and schema.sql (default: print to stdout)")
	flag.BoolVar(&cfg.CompatNullStrings, "compat-null", false, "Render missing descriptions as the quoted text 'NULL' for backward-compatible output")
	flag.Parse()

	if err := sqlgen.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

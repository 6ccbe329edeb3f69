// Command genmodels generates Go struct declarations for the catalog
// tables.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/catalogkit/go-catalog-schema/internal/gogen"
)

func main() {
	cfg := gogen.Config{}

	flag.StringVar(&cfg.OutputDir, "output", "models", "Output directory for models.go")
	flag.StringVar(&cfg.PackageName, "package", "models", "Go package name for generated file")
	flag.Parse()

	if err := gogen.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

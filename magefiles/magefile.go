//go:build mage

// Package main contains Mage build targets for catalog-export developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "catalog-export"
	cmdPkg  = "./cmd/catalog-export"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Export builds the CLI and converts products.xlsx into products.json
// using the defaults (or catalog-export.yaml when present).
func Export() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "export")
}

// Clean removes the built binary and the default catalog output.
func Clean() error {
	for _, p := range []string{binDir, "products.json"} {
		if err := sh.Rm(p); err != nil {
			return fmt.Errorf("removing %s: %w", p, err)
		}
	}
	return nil
}

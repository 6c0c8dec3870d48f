// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes product records for the catalog front-end.
// JSON is the primary format; YAML and a SQLite table are offered for
// inspection and for consumers that query the catalog directly.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/catalog-export/pkg/types"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case types.FormatJSON, types.FormatYAML, types.FormatSQLite:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use json, yaml, or sqlite", s)
	}
}

// WriteJSON writes records as an indented UTF-8 JSON array. Non-ASCII and
// HTML characters are written as is.
func WriteJSON(w io.Writer, records []types.ProductRecord) error {
	if records == nil {
		records = []types.ProductRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteYAML writes records as a YAML sequence.
func WriteYAML(w io.Writer, records []types.ProductRecord) error {
	if records == nil {
		records = []types.ProductRecord{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return nil
}

// WriteFile writes records to path in the given format. For sqlite the
// products table in the database at path is replaced.
func WriteFile(ctx context.Context, path string, format types.OutputFormat, records []types.ProductRecord) error {
	switch format {
	case types.FormatSQLite:
		store, err := OpenStore(path)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Replace(ctx, records)
	case types.FormatJSON, types.FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", path, err)
	}

	if format == types.FormatYAML {
		err = WriteYAML(f, records)
	} else {
		err = WriteJSON(f, records)
	}
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output %s: %w", path, err)
	}
	return nil
}

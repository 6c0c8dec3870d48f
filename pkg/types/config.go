// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the serializer used for the exported catalog.
type OutputFormat string

const (
	FormatJSON   OutputFormat = "json"
	FormatYAML   OutputFormat = "yaml"
	FormatSQLite OutputFormat = "sqlite"
)

// Defaults used when neither a flag, the config file, nor the environment
// provides a value.
const (
	DefaultInput  = "products.xlsx"
	DefaultSheet  = "Для сайта"
	DefaultOutput = "products.json"
	DefaultFormat = FormatJSON
)

// ExportConfig holds settings for one export run.
type ExportConfig struct {
	// Input is the path to the source workbook.
	Input string `json:"input" yaml:"input"`

	// Sheet is the worksheet name holding the product rows.
	Sheet string `json:"sheet" yaml:"sheet"`

	// Output is the path the catalog is written to.
	Output string `json:"output" yaml:"output"`

	// Format selects the output serializer: json, yaml, or sqlite.
	Format OutputFormat `json:"format" yaml:"format"`
}

// WithDefaults returns a copy of c with every empty field set to its default.
func (c ExportConfig) WithDefaults() ExportConfig {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Sheet == "" {
		c.Sheet = DefaultSheet
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	return c
}

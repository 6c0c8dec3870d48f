// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/catalog-export/internal/pipeline"
	"github.com/pdiddy/catalog-export/internal/sheet"
	"github.com/pdiddy/catalog-export/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the product sheet to the catalog file",
	Long: `Export reads every row of the product sheet, builds one catalog record
per row (ids follow row order starting at 1), and writes the records as JSON,
YAML, or a SQLite products table. The run stops at the first error; the
output file is only written after the whole sheet was read.`,
	RunE: runExport,
}

func init() {
	addExportFlags(exportCmd)

	rootCmd.AddCommand(exportCmd)
}

func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "source workbook (default "+types.DefaultInput+")")
	cmd.Flags().String("sheet", "", "worksheet holding the products (default "+types.DefaultSheet+")")
	cmd.Flags().String("output", "", "catalog file to write (default "+types.DefaultOutput+")")
	cmd.Flags().String("format", "", "output format: json, yaml, or sqlite (default json)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := exportConfig(cmd, viper.GetViper())
	_, err := pipeline.Run(cmd.Context(), sheet.NewExcelReader(), cfg, cmd.OutOrStdout())
	return err
}

// exportConfig resolves each setting from its flag when set, then from
// the config file or environment, then from the built-in default.
func exportConfig(cmd *cobra.Command, v *viper.Viper) types.ExportConfig {
	get := func(key string) string {
		if f := cmd.Flags().Lookup(key); f != nil && f.Changed {
			return f.Value.String()
		}
		return v.GetString(key)
	}

	cfg := types.ExportConfig{
		Input:  get("input"),
		Sheet:  get("sheet"),
		Output: get("output"),
		Format: types.OutputFormat(get("format")),
	}
	return cfg.WithDefaults()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-export/internal/export"
)

const defaultDB = "products.db"

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Print one product from a SQLite export",
	Long: `Show looks up a product by slug in a database written by
"export --format sqlite" and prints it as JSON. When several products share
the slug, the one with the lowest id is shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().String("db", defaultDB, "SQLite database written by export")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("db")
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	store, err := export.OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	record, err := store.BySlug(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}

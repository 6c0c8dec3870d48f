// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the catalog-export CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the catalog-export CLI.
var rootCmd = &cobra.Command{
	Use:   "catalog-export",
	Short: "Convert a product spreadsheet into catalog JSON",
	Long: `catalog-export reads the product sheet of an Excel workbook and writes
the catalog file consumed by the storefront: one JSON record per row with a
generated slug, image URLs pulled from the HTML column, and a specs block.

Settings come from flags, then catalog-export.yaml (in the working directory
or ~/.config/catalog-export), then CATALOG_EXPORT_* environment variables.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: catalog-export.yaml in . or ~/.config/catalog-export)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("catalog-export")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "catalog-export"))
		}
	}

	viper.SetEnvPrefix("CATALOG_EXPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

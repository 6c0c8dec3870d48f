package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-export/internal/transform"
)

var slugCmd = &cobra.Command{
	Use:   "slug [name...]",
	Short: "Print the slug generated for a product name",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), transform.GenerateSlug(strings.Join(args, " ")))
	},
}

func init() {
	rootCmd.AddCommand(slugCmd)
}

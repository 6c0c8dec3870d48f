// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/catalog-export/internal/export"
	"github.com/pdiddy/catalog-export/internal/sheet"
	"github.com/pdiddy/catalog-export/pkg/types"
)

func TestExportConfig(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		conf  map[string]string
		want  types.ExportConfig
	}{
		{
			name: "defaults",
			want: types.ExportConfig{
				Input:  types.DefaultInput,
				Sheet:  types.DefaultSheet,
				Output: types.DefaultOutput,
				Format: types.FormatJSON,
			},
		},
		{
			name: "config values",
			conf: map[string]string{"sheet": "Шины", "format": "yaml"},
			want: types.ExportConfig{
				Input:  types.DefaultInput,
				Sheet:  "Шины",
				Output: types.DefaultOutput,
				Format: types.FormatYAML,
			},
		},
		{
			name:  "flags win over config",
			flags: []string{"--sheet", "Диски", "--output", "out.db", "--format", "sqlite"},
			conf:  map[string]string{"sheet": "Шины", "input": "catalog.xlsx"},
			want: types.ExportConfig{
				Input:  "catalog.xlsx",
				Sheet:  "Диски",
				Output: "out.db",
				Format: types.FormatSQLite,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "export"}
			addExportFlags(cmd)
			require.NoError(t, cmd.ParseFlags(tt.flags))

			v := viper.New()
			for k, val := range tt.conf {
				v.Set(k, val)
			}

			assert.Equal(t, tt.want, exportConfig(cmd, v))
		})
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "products.xlsx")
	output := filepath.Join(dir, "products.json")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", types.DefaultSheet))
	for c, name := range sheet.ColumnNames() {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(types.DefaultSheet, cell, name))
	}
	require.NoError(t, f.SetCellValue(types.DefaultSheet, "A2", "Шина Nokian 205/55 R16"))
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"export", "--input", input, "--output", output})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "exported 1 products to "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"slug": "шина-nokian-20555-r16"`)
}

func TestSlugCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"slug", "Шина", "Nokian", "205/55", "R16"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "шина-nokian-20555-r16\n", out.String())
}

func TestShowCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "products.db")
	store, err := export.OpenStore(db)
	require.NoError(t, err)
	require.NoError(t, store.Replace(context.Background(), []types.ProductRecord{
		{ID: 1, Name: types.Text("Шина Nokian 205/55 R16"), Slug: "шина-nokian-20555-r16", Width: types.Float(205), Images: []string{}},
		{ID: 2, Name: types.Text("Cordiant"), Slug: "cordiant", Images: []string{"http://a/1.jpg?x=1&y=2"}},
	}))
	require.NoError(t, store.Close())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"show", "--db", db, "cordiant"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), `"id": 2,`)
	assert.Contains(t, out.String(), `"name": "Cordiant"`)
	assert.Contains(t, out.String(), `"http://a/1.jpg?x=1&y=2"`)

	out.Reset()
	rootCmd.SetArgs([]string{"show", "--db", db, "шина-nokian-20555-r16"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), `"width": 205.0`)
}

func TestShowCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "products.db")
	store, err := export.OpenStore(db)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); rootCmd.SetErr(nil) })

	rootCmd.SetArgs([]string{"show", "--db", db, "no-such-product"})
	err = rootCmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, export.ErrNotFound)

	missing := filepath.Join(dir, "missing.db")
	rootCmd.SetArgs([]string{"show", "--db", missing, "cordiant"})
	err = rootCmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening database")
	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr), "show must not create a database")
}

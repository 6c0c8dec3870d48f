// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/catalog-export/internal/export"
	"github.com/pdiddy/catalog-export/pkg/types"
)

// fakeReader implements sheet.Reader with canned rows or an error.
type fakeReader struct {
	rows []types.RawRow
	err  error

	gotPath, gotSheet string
}

func (f *fakeReader) ReadRows(ctx context.Context, path, sheet string) ([]types.RawRow, error) {
	f.gotPath, f.gotSheet = path, sheet
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func TestRun(t *testing.T) {
	reader := &fakeReader{rows: []types.RawRow{
		{
			Name:   types.TextCell("Шина Nokian 205/55 R16"),
			Width:  types.TextCell("205"),
			Images: types.TextCell(`<img src="http://a/1.jpg">`),
		},
		{Width: types.TextCell("wide")},
		{Name: types.TextCell("Cordiant"), Width: types.NumberCell("195")},
	}}
	out := filepath.Join(t.TempDir(), "products.json")
	cfg := types.ExportConfig{Input: "in.xlsx", Sheet: "Лист", Output: out}

	var log bytes.Buffer
	result, err := Run(context.Background(), reader, cfg, &log)
	require.NoError(t, err)

	assert.Equal(t, "in.xlsx", reader.gotPath)
	assert.Equal(t, "Лист", reader.gotSheet)
	assert.Equal(t, Result{Products: 3, WidthAsText: 1, Unnamed: 1}, result)
	assert.True(t, result.HasWarnings())

	assert.Contains(t, log.String(), "exported 3 products to "+out)
	assert.Contains(t, log.String(), `warning: product 2 width "wide" is not numeric`)
	assert.Contains(t, log.String(), "warning: product 2 has no name")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
	for i, rec := range decoded {
		assert.Equal(t, float64(i+1), rec["id"])
	}
	assert.Equal(t, "шина-nokian-20555-r16", decoded[0]["slug"])
	assert.Equal(t, []interface{}{"http://a/1.jpg"}, decoded[0]["images"])
	assert.Equal(t, "wide", decoded[1]["width"])
}

func TestRun_SQLite(t *testing.T) {
	reader := &fakeReader{rows: []types.RawRow{
		{Name: types.TextCell("Шина Nokian 205/55 R16"), Width: types.TextCell("205")},
		{Name: types.TextCell("Cordiant"), Width: types.NumberCell("195.5")},
	}}
	out := filepath.Join(t.TempDir(), "products.db")
	cfg := types.ExportConfig{Output: out, Format: types.FormatSQLite}

	var log bytes.Buffer
	result, err := Run(context.Background(), reader, cfg, &log)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Products)
	assert.Contains(t, log.String(), "exported 2 products to "+out)
	assert.Contains(t, log.String(), "stored 2 products in "+out)

	store, err := export.OpenStore(out)
	require.NoError(t, err)
	defer store.Close()
	got, err := store.BySlug(context.Background(), "cordiant")
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)
	assert.Equal(t, types.Float(195.5), got.Width)
}

func TestRun_DefaultsApplied(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	reader := &fakeReader{}
	var log bytes.Buffer
	result, err := Run(context.Background(), reader, types.ExportConfig{}, &log)
	require.NoError(t, err)

	assert.Equal(t, types.DefaultInput, reader.gotPath)
	assert.Equal(t, types.DefaultSheet, reader.gotSheet)
	assert.Equal(t, 0, result.Products)
	assert.False(t, result.HasWarnings())

	data, err := os.ReadFile(filepath.Join(dir, types.DefaultOutput))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestRun_ReadFailureWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "products.json")
	reader := &fakeReader{err: errors.New("sheet missing")}

	var log bytes.Buffer
	_, err := Run(context.Background(), reader, types.ExportConfig{Output: out}, &log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet missing")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_BadFormat(t *testing.T) {
	reader := &fakeReader{}
	_, err := Run(context.Background(), reader, types.ExportConfig{Format: "xml"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "xml"`)
	assert.Empty(t, reader.gotPath, "reader should not be called")
}

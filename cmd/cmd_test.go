package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aporo/pkg/catalog"
)

func init() {
	color.NoColor = true
}

func TestRootHasCommands(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"serve", "list-trails", "show-trail", "export", "chart", "validate"} {
		found, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, found.Name())
	}
}

func TestListTrails(t *testing.T) {
	var buf bytes.Buffer
	listTrails(&buf, catalog.Default().Trails())

	out := buf.String()
	assert.Contains(t, out, "#2 Trilha da Lagoinha do Leste")
	assert.Contains(t, out, "Moderada · 1h30min · 6,4km · 157m")
	assert.Contains(t, out, "Total: 4 trails")
}

func TestShowTrail(t *testing.T) {
	var buf bytes.Buffer
	trail, _ := catalog.Default().ByID(1)
	showTrail(&buf, trail, "en")

	out := buf.String()
	assert.Contains(t, out, "Trail: Caminho da Costa da Lagoa")
	assert.Contains(t, out, "(-27.5950, -48.4550)")
	assert.Contains(t, out, "Profile: 16 samples, min 0m, max 157m, mean 66m, ascent +167m")
}

func TestExportFormats(t *testing.T) {
	cat := catalog.Default()

	var buf bytes.Buffer
	require.NoError(t, exportData(&buf, cat, "json"))
	trails, err := catalog.Decode(buf.Bytes(), ".json")
	require.NoError(t, err)
	assert.Len(t, trails, 4)

	buf.Reset()
	require.NoError(t, exportData(&buf, cat, "yaml"))
	trails, err = catalog.Decode(buf.Bytes(), ".yaml")
	require.NoError(t, err)
	assert.Equal(t, cat.Trails(), trails)

	buf.Reset()
	require.NoError(t, exportData(&buf, cat, "geojson"))
	assert.Contains(t, buf.String(), "FeatureCollection")

	assert.Error(t, exportData(&buf, cat, "csv"))
}

func TestValidateCatalog(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	data, err := catalog.Default().Encode(".json")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(good, data, 0o600))

	var buf bytes.Buffer
	require.NoError(t, validateCatalog(&buf, good))
	assert.Contains(t, buf.String(), "ok:")
	assert.Contains(t, buf.String(), "(4 trails)")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("trails:\n  - id: 1\n    name: Sem fotos\n    distance: 1km\n"), 0o600))

	buf.Reset()
	err = validateCatalog(&buf, bad)
	assert.ErrorIs(t, err, catalog.ErrNoPhotos)
	assert.ErrorIs(t, err, catalog.ErrTooFewSamples)
	assert.Contains(t, buf.String(), "invalid:")
}

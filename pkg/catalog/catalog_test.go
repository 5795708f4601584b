package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aporo/pkg/models"
)

func validTrail(id int) models.Trail {
	return models.Trail{
		ID:            id,
		Name:          "Trail",
		Distance:      "2km",
		Photos:        []string{"a.jpg"},
		ElevationData: []float64{0, 10},
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 4, c.Len())

	first := c.At(0)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Caminho da Costa da Lagoa", first.Name)
	assert.Len(t, first.ElevationData, 16)

	trail, ok := c.ByID(4)
	require.True(t, ok)
	assert.Equal(t, "Trilha da Solidão", trail.Name)

	_, ok = c.ByID(99)
	assert.False(t, ok)
}

func TestCatalogIsImmutable(t *testing.T) {
	c := Default()
	trail := c.At(0)
	trail.Photos[0] = "changed"
	trail.ElevationData[0] = 999

	again := c.At(0)
	assert.NotEqual(t, "changed", again.Photos[0])
	assert.Equal(t, 0.0, again.ElevationData[0])
}

func TestNewRejectsMalformedTrails(t *testing.T) {
	noPhotos := validTrail(2)
	noPhotos.Photos = nil

	oneSample := validTrail(3)
	oneSample.ElevationData = []float64{5}

	badDistance := validTrail(4)
	badDistance.Distance = "far"

	_, err := New([]models.Trail{validTrail(1), validTrail(1), noPhotos, oneSample, badDistance, {}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.ErrorIs(t, err, ErrNoPhotos)
	assert.ErrorIs(t, err, ErrTooFewSamples)
	assert.ErrorIs(t, err, ErrInvalidDistance)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNewRejectsNonNumericText(t *testing.T) {
	for _, distance := range []string{"NaN", "Inf", "infinitykm", "0x1p2km", "1e3m"} {
		trail := validTrail(1)
		trail.Distance = distance
		_, err := New([]models.Trail{trail})
		assert.ErrorIs(t, err, ErrInvalidDistance, distance)
	}

	badElevation := validTrail(1)
	badElevation.Elevation = "NaNm"
	_, err := New([]models.Trail{badElevation})
	assert.ErrorIs(t, err, ErrInvalidDistance)

	noElevation := validTrail(1)
	_, err = New([]models.Trail{noElevation})
	assert.NoError(t, err, "elevation text is optional")
}

func TestNewEmptyCatalog(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Trails())
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trails.yaml")
	content := `trails:
  - id: 7
    name: Morro da Cruz
    difficulty: Fácil
    duration: 40min
    distance: 1.2km
    elevation: 280m
    photos: [cruz.jpg]
    coordinates: {lat: -27.59, lng: -48.53}
    elevationData: [0, 100, 280]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	trail := c.At(0)
	assert.Equal(t, "Morro da Cruz", trail.Name)
	assert.Equal(t, -48.53, trail.Coordinates.Lng)
	assert.Equal(t, []float64{0, 100, 280}, trail.ElevationData)
}

func TestEncodeRoundTripJSON(t *testing.T) {
	data, err := Default().Encode(".json")
	require.NoError(t, err)

	trails, err := Decode(data, ".json")
	require.NoError(t, err)
	assert.Equal(t, Default().Trails(), trails)
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := Decode([]byte("x"), ".toml")
	assert.Error(t, err)
}

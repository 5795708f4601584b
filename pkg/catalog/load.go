package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"aporo/pkg/models"
)

// file is the on-disk layout of a catalog file
type file struct {
	Trails []models.Trail `json:"trails" yaml:"trails"`
}

// LoadFile reads a YAML or JSON catalog file and validates it
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	trails, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}
	return New(trails)
}

// Decode parses catalog file contents; ext selects the format (".json", ".yaml", ".yml")
func Decode(data []byte, ext string) ([]models.Trail, error) {
	var f file
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	return f.Trails, nil
}

// Encode writes the catalog in the same layout LoadFile reads
func (c *Catalog) Encode(ext string) ([]byte, error) {
	f := file{Trails: c.Trails()}
	switch strings.ToLower(ext) {
	case ".json":
		return json.MarshalIndent(f, "", "  ")
	case ".yaml", ".yml":
		return yaml.Marshal(f)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
}

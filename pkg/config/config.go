package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Port        string
	CatalogFile string
	BucketName  string
	LogLevel    string
	Locale      string
	ViewsDir    string
	PublicDir   string
}

// ErrInvalidPort is returned when the PORT environment variable is not a port number
var ErrInvalidPort = errors.New("PORT environment variable is not a valid port")

// ErrUnsupportedCatalog is returned when CATALOG_FILE has an unknown extension
var ErrUnsupportedCatalog = errors.New("CATALOG_FILE must be a .json, .yaml or .yml file")

// Load loads configuration from environment variables
func Load() (*Config, error) {
	port := getenv("PORT", "8080")
	if !isPort(port) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPort, port)
	}

	catalogFile := os.Getenv("CATALOG_FILE")
	if catalogFile != "" && !hasCatalogExt(catalogFile) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCatalog, catalogFile)
	}

	return &Config{
		Port:        port,
		CatalogFile: catalogFile,
		BucketName:  os.Getenv("BUCKET_NAME"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		Locale:      getenv("LOCALE", "pt-BR"),
		ViewsDir:    getenv("VIEWS_DIR", "./views"),
		PublicDir:   getenv("PUBLIC_DIR", "./public"),
	}, nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Landing page: http://localhost:%s/\n", c.Port)
	fmt.Printf("Trail feed: http://localhost:%s/feed\n", c.Port)
	if c.BucketName != "" {
		fmt.Printf("Trail photos from bucket: %s\n", c.BucketName)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// isPort accepts a canonical decimal TCP port, without sign or leading zeros
func isPort(s string) bool {
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return false
	}
	return n > 0 && n <= 65535
}

func hasCatalogExt(path string) bool {
	p := strings.ToLower(path)
	return strings.HasSuffix(p, ".json") || strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml")
}

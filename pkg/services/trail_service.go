package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
	"unicode"

	"github.com/patrickmn/go-cache"

	"aporo/pkg/catalog"
	"aporo/pkg/chart"
	"aporo/pkg/config"
	"aporo/pkg/logging"
	"aporo/pkg/models"
)

// Service holds the trail catalog, the open viewer sessions and rendered assets
type Service struct {
	config   *config.Config
	catalog  *catalog.Catalog
	photos   PhotoLister
	sessions *cache.Cache
	assets   *cache.Cache
	mu       sync.RWMutex
}

// naturalLess compares strings in a way that treats numbers as numbers rather than characters
// For example: "photo2" < "photo10" when using naturalLess
func naturalLess(s1, s2 string) bool {
	i, j := 0, 0
	for i < len(s1) && j < len(s2) {
		// Skip leading spaces
		for i < len(s1) && unicode.IsSpace(rune(s1[i])) {
			i++
		}
		for j < len(s2) && unicode.IsSpace(rune(s2[j])) {
			j++
		}

		if i >= len(s1) || j >= len(s2) {
			break
		}

		if unicode.IsDigit(rune(s1[i])) && unicode.IsDigit(rune(s2[j])) {
			start1, start2 := i, j
			for i < len(s1) && unicode.IsDigit(rune(s1[i])) {
				i++
			}
			for j < len(s2) && unicode.IsDigit(rune(s2[j])) {
				j++
			}

			n1, _ := strconv.Atoi(s1[start1:i])
			n2, _ := strconv.Atoi(s2[start2:j])
			if n1 != n2 {
				return n1 < n2
			}
		} else {
			if s1[i] != s2[j] {
				return s1[i] < s2[j]
			}
			i++
			j++
		}
	}

	return len(s1)-i < len(s2)-j
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// InitService initializes the shared service with the given configuration.
// The catalog comes from cfg.CatalogFile, or the built-in trails when unset.
func InitService(cfg *config.Config) error {
	var err error
	once.Do(func() {
		var cat *catalog.Catalog
		cat, err = LoadCatalog(cfg)
		if err != nil {
			return
		}
		var photos PhotoLister
		if cfg.BucketName != "" {
			photos = &BucketPhotos{BucketName: cfg.BucketName}
		}
		defaultService = NewService(cfg, cat, photos)
	})
	return err
}

// Default returns the shared service; InitService must have been called
func Default() *Service {
	return defaultService
}

// LoadCatalog reads the configured catalog file or falls back to the built-in trails
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	logging.Logger.Info().Str("file", cfg.CatalogFile).Int("trails", cat.Len()).Msg("Loaded trail catalog")
	return cat, nil
}

// NewService creates a service over an already validated catalog. photos may be nil.
func NewService(cfg *config.Config, cat *catalog.Catalog, photos PhotoLister) *Service {
	return &Service{
		config:   cfg,
		catalog:  cat,
		photos:   photos,
		sessions: cache.New(30*time.Minute, 10*time.Minute),
		assets:   cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Config returns the configuration the service was created with
func (s *Service) Config() *config.Config {
	return s.config
}

// Catalog returns the current read-only catalog
func (s *Service) Catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// ReloadCatalog replaces the catalog with a freshly loaded one and drops rendered assets.
// Open viewers keep the catalog they were created with. On error the current catalog stays.
func (s *Service) ReloadCatalog() error {
	cat, err := LoadCatalog(s.config)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.catalog = cat
	s.mu.Unlock()
	s.assets.Flush()
	return nil
}

// GetTrails returns all trails in catalog order
func GetTrails() []models.Trail {
	return defaultService.Trails()
}

// GetTrail returns a trail by its id
func GetTrail(id int) (models.Trail, error) {
	return defaultService.Trail(id)
}

// Trails returns all trails in catalog order
func (s *Service) Trails() []models.Trail {
	return s.Catalog().Trails()
}

// Trail returns a trail by id with its photos resolved from storage when configured
func (s *Service) Trail(id int) (models.Trail, error) {
	trail, ok := s.Catalog().ByID(id)
	if !ok {
		return models.Trail{}, fmt.Errorf("%w: %d", ErrTrailNotFound, id)
	}
	trail.Photos = s.TrailPhotos(trail)
	return trail, nil
}

// TrailPhotos returns the photos of a trail, preferring the storage bucket when one is configured.
// Bucket failures and empty listings fall back to the catalog photos.
func (s *Service) TrailPhotos(trail models.Trail) []string {
	if s.photos == nil {
		return trail.Photos
	}

	key := fmt.Sprintf("photos:%d", trail.ID)
	s.mu.RLock()
	if cached, found := s.assets.Get(key); found {
		s.mu.RUnlock()
		return cached.([]string)
	}
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	photos, err := s.photos.ListPhotos(ctx, trail.ID)
	if err != nil {
		logging.Logger.Warn().Err(err).Int("trail", trail.ID).Msg("Listing trail photos failed, using catalog photos")
		return trail.Photos
	}
	if len(photos) == 0 {
		photos = trail.Photos
	}

	s.mu.Lock()
	s.assets.Set(key, photos, cache.DefaultExpiration)
	s.mu.Unlock()
	return photos
}

// ChartSVG renders the elevation profile of a trail, caching the result
func (s *Service) ChartSVG(id int) ([]byte, error) {
	key := fmt.Sprintf("chart:%d", id)
	if cached, found := s.assets.Get(key); found {
		return cached.([]byte), nil
	}

	trail, ok := s.Catalog().ByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTrailNotFound, id)
	}

	points, err := chart.Points(trail)
	if err != nil {
		return nil, err
	}

	opts := chart.DefaultOptions()
	opts.Title = trail.Name
	opts.Printer = chart.Printer(s.config.Locale)

	var buf bytes.Buffer
	if err := chart.RenderSVG(&buf, points, opts); err != nil {
		return nil, fmt.Errorf("rendering chart for trail %d: %w", id, err)
	}

	svg := buf.Bytes()
	s.assets.Set(key, svg, cache.DefaultExpiration)
	return svg, nil
}

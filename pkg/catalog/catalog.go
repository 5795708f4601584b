package catalog

import (
	"errors"
	"fmt"
	"strings"

	"aporo/pkg/models"
)

var (
	// ErrInvalidID is returned for trails without a positive id
	ErrInvalidID = errors.New("trail id must be positive")
	// ErrDuplicateID is returned when two trails share an id
	ErrDuplicateID = errors.New("duplicate trail id")
	// ErrEmptyName is returned for trails without a name
	ErrEmptyName = errors.New("trail name is empty")
	// ErrNoPhotos is returned for trails without photos
	ErrNoPhotos = errors.New("trail has no photos")
	// ErrTooFewSamples is returned when the elevation profile cannot be spread over the distance
	ErrTooFewSamples = errors.New("trail needs at least 2 elevation samples")
)

// Catalog is an immutable, ordered set of trails unique by id
type Catalog struct {
	trails []models.Trail
	byID   map[int]int
}

// New validates the trails and builds a catalog from them.
// Every malformed record is reported; a catalog with any bad record is rejected.
func New(trails []models.Trail) (*Catalog, error) {
	c := &Catalog{
		trails: make([]models.Trail, 0, len(trails)),
		byID:   make(map[int]int, len(trails)),
	}

	var errs []error
	for i, t := range trails {
		if err := Validate(t); err != nil {
			errs = append(errs, fmt.Errorf("trail #%d (%s): %w", i, label(t), err))
			continue
		}
		if _, exists := c.byID[t.ID]; exists {
			errs = append(errs, fmt.Errorf("trail #%d (%s): %w %d", i, label(t), ErrDuplicateID, t.ID))
			continue
		}
		c.byID[t.ID] = len(c.trails)
		c.trails = append(c.trails, clone(t))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// Default returns the catalog of built-in trails
func Default() *Catalog {
	c, err := New(defaultTrails)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Validate checks the preconditions the viewer and chart rely on
func Validate(t models.Trail) error {
	var errs []error
	if t.ID <= 0 {
		errs = append(errs, ErrInvalidID)
	}
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, ErrEmptyName)
	}
	if len(t.Photos) == 0 {
		errs = append(errs, ErrNoPhotos)
	}
	if len(t.ElevationData) < 2 {
		errs = append(errs, ErrTooFewSamples)
	}
	if _, err := ParseDistanceKm(t.Distance); err != nil {
		errs = append(errs, err)
	}
	if t.Elevation != "" {
		if _, err := ParseElevationM(t.Elevation); err != nil {
			errs = append(errs, fmt.Errorf("elevation: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of trails
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.trails)
}

// At returns the trail at position i in catalog order
func (c *Catalog) At(i int) models.Trail {
	return clone(c.trails[i])
}

// Trails returns a copy of all trails in catalog order
func (c *Catalog) Trails() []models.Trail {
	out := make([]models.Trail, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		out = append(out, c.At(i))
	}
	return out
}

// ByID looks up a trail by its id
func (c *Catalog) ByID(id int) (models.Trail, bool) {
	if c == nil {
		return models.Trail{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return models.Trail{}, false
	}
	return c.At(i), true
}

func clone(t models.Trail) models.Trail {
	t.Photos = append([]string(nil), t.Photos...)
	t.ElevationData = append([]float64(nil), t.ElevationData...)
	return t
}

func label(t models.Trail) string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("id %d", t.ID)
}

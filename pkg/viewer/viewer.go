// Package viewer implements the trail detail viewer: the focused trail, its
// active tab, the photo carousel and the "other trails" picker.
//
// The owner hands the viewer an initial focus with Open; from then on focus
// changes stay inside the viewer and are never reported back. The only
// outgoing signal is the close notification.
package viewer

import (
	"errors"
	"fmt"

	"aporo/pkg/carousel"
	"aporo/pkg/catalog"
	"aporo/pkg/models"
)

// Tab names a detail view
type Tab string

const (
	TabInfo      Tab = "info"
	TabPhotos    Tab = "photos"
	TabMap       Tab = "map"
	TabElevation Tab = "elevation"
)

// Tabs lists the detail views in display order
var Tabs = []Tab{TabInfo, TabPhotos, TabMap, TabElevation}

// ErrUnknownTab is returned by SetTab for names outside Tabs
var ErrUnknownTab = errors.New("unknown tab")

// ParseTab validates a tab name
func ParseTab(name string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, name)
}

// Viewer holds the transient state of one open detail viewer.
// It is not safe for concurrent use.
type Viewer struct {
	catalog *catalog.Catalog
	onClose func()

	open   bool
	focus  *models.Trail
	tab    Tab
	photos carousel.Photos
	picker carousel.Picker
}

// New creates a closed viewer over the catalog. onClose, if set, is called
// each time an open viewer is dismissed.
func New(cat *catalog.Catalog, onClose func()) *Viewer {
	return &Viewer{
		catalog: cat,
		onClose: onClose,
		tab:     TabInfo,
		picker:  carousel.NewPicker(cat.Len()),
	}
}

// SetCatalog points the viewer at another catalog snapshot and rewinds the picker over it
func (v *Viewer) SetCatalog(cat *catalog.Catalog) {
	v.catalog = cat
	v.picker = carousel.NewPicker(cat.Len())
}

// Open shows the viewer focused on initial and resets tab, photo and picker.
// A nil initial focus opens an empty shell.
func (v *Viewer) Open(initial *models.Trail) {
	v.open = true
	v.picker = carousel.NewPicker(v.catalog.Len())
	v.setFocus(initial)
}

// SelectTrail moves focus to t without closing. Tab and photo reset; the
// picker keeps its rotation.
func (v *Viewer) SelectTrail(t models.Trail) {
	v.setFocus(&t)
}

func (v *Viewer) setFocus(t *models.Trail) {
	if t == nil {
		v.focus = nil
		v.photos = carousel.NewPhotos(0)
	} else {
		focus := *t
		v.focus = &focus
		v.photos = carousel.NewPhotos(len(focus.Photos))
	}
	v.tab = TabInfo
}

// SetTab switches the active detail view
func (v *Viewer) SetTab(tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	v.tab = tab
	return nil
}

// NextPhoto advances the photo carousel
func (v *Viewer) NextPhoto() { v.photos.Next() }

// PrevPhoto steps the photo carousel back
func (v *Viewer) PrevPhoto() { v.photos.Prev() }

// JumpToPhoto selects a photo directly and reports whether i was valid
func (v *Viewer) JumpToPhoto(i int) bool { return v.photos.JumpTo(i) }

// NextTrails rotates the picker forward
func (v *Viewer) NextTrails() { v.picker.Next() }

// PrevTrails rotates the picker back
func (v *Viewer) PrevTrails() { v.picker.Prev() }

// Close dismisses the viewer and notifies the owner once
func (v *Viewer) Close() {
	if !v.open {
		return
	}
	v.open = false
	v.focus = nil
	v.tab = TabInfo
	v.photos = carousel.NewPhotos(0)
	if v.onClose != nil {
		v.onClose()
	}
}

// IsOpen reports whether the viewer is showing
func (v *Viewer) IsOpen() bool { return v.open }

// State is a read-only copy of the viewer for rendering
type State struct {
	Open          bool
	Empty         bool
	Focus         models.Trail
	Tab           Tab
	PhotoIndex    int
	Photo         string
	PickerOffset  int
	PickerEnabled bool
	Picker        []models.Trail
}

// Snapshot returns the current state
func (v *Viewer) Snapshot() State {
	s := State{
		Open:          v.open,
		Empty:         v.focus == nil,
		Tab:           v.tab,
		PhotoIndex:    v.photos.Index(),
		PickerOffset:  v.picker.Offset(),
		PickerEnabled: v.picker.Enabled(),
	}
	if v.focus != nil {
		s.Focus = *v.focus
		if s.PhotoIndex < len(s.Focus.Photos) {
			s.Photo = s.Focus.Photos[s.PhotoIndex]
		}
	}
	for _, i := range v.picker.Visible() {
		s.Picker = append(s.Picker, v.catalog.At(i))
	}
	return s
}

package models

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Trail represents a single hiking route with its display data and elevation profile
type Trail struct {
	ID            int         `json:"id" yaml:"id"`
	Name          string      `json:"name" yaml:"name"`
	Difficulty    string      `json:"difficulty" yaml:"difficulty"`
	Duration      string      `json:"duration" yaml:"duration"`
	Distance      string      `json:"distance" yaml:"distance"`
	Elevation     string      `json:"elevation" yaml:"elevation"`
	Photos        []string    `json:"photos" yaml:"photos"`
	Description   string      `json:"description" yaml:"description"`
	Coordinates   Coordinates `json:"coordinates" yaml:"coordinates"`
	ElevationData []float64   `json:"elevationData" yaml:"elevationData"`
}

// Cover returns the first photo of the trail, or an empty string when it has none
func (t Trail) Cover() string {
	if len(t.Photos) == 0 {
		return ""
	}
	return t.Photos[0]
}

// Card is a trail as shown in the landing page grid or the viewer picker
type Card struct {
	Trail
	OpenURL   string
	SelectURL string
	Focused   bool
}

// TabLink is one entry of the viewer tab bar
type TabLink struct {
	Name   string
	Label  string
	URL    string
	Active bool
}

// PhotoDot is one photo indicator of the carousel
type PhotoDot struct {
	Index  int
	URL    string
	Active bool
}

// Stat is a labelled value in the info and elevation tabs
type Stat struct {
	Label string
	Value string
}

// Modal represents the detail viewer data passed to the page template
type Modal struct {
	Open       bool
	Empty      bool
	Trail      Trail
	Tab        string
	Tabs       []TabLink
	Stats      []Stat
	Photo      string
	PhotoAlt   string
	PhotoDots  []PhotoDot
	MapLabel   string
	ChartURL   string
	ChartStats []Stat
	Picker     []Card
	PickerOn   bool
}

// Index represents the landing page data
type Index struct {
	Title string
	Cards []Card
	Modal Modal
}

// Package chart derives and draws the elevation profile of a trail.
package chart

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"aporo/pkg/catalog"
	"aporo/pkg/models"
)

// Point is one sample of the profile: distance along the trail in km and elevation in m
type Point struct {
	DistanceKm float64 `json:"distance"`
	Elevation  float64 `json:"elevation"`
}

// Points spreads the trail's elevation samples evenly over its distance
func Points(t models.Trail) ([]Point, error) {
	n := len(t.ElevationData)
	if n < 2 {
		return nil, fmt.Errorf("%s: %w", t.Name, catalog.ErrTooFewSamples)
	}

	km, err := catalog.ParseDistanceKm(t.Distance)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name, err)
	}

	points := make([]Point, n)
	for i, e := range t.ElevationData {
		points[i] = Point{
			DistanceKm: float64(i) / float64(n-1) * km,
			Elevation:  e,
		}
	}
	return points, nil
}

// Stats summarises a profile
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	Ascent float64
}

// Summarize computes the profile statistics. An empty profile yields zero stats.
func Summarize(points []Point) Stats {
	if len(points) == 0 {
		return Stats{}
	}

	elevations := make([]float64, len(points))
	for i, p := range points {
		elevations[i] = p.Elevation
	}

	var ascent float64
	for i := 1; i < len(elevations); i++ {
		if d := elevations[i] - elevations[i-1]; d > 0 {
			ascent += d
		}
	}

	return Stats{
		Min:    floats.Min(elevations),
		Max:    floats.Max(elevations),
		Mean:   stat.Mean(elevations, nil),
		Ascent: ascent,
	}
}

// Printer returns a number formatter for the locale, falling back to pt-BR
func Printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return message.NewPrinter(tag)
}

// FormatKm formats a distance tick the way the chart labels it, e.g. "3,8km"
func FormatKm(p *message.Printer, km float64) string {
	return p.Sprintf("%.1fkm", km)
}

// FormatM formats an elevation tick, e.g. "157m"
func FormatM(p *message.Printer, m float64) string {
	return p.Sprintf("%.0fm", m)
}

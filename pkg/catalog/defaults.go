package catalog

import "aporo/pkg/models"

// defaultTrails are the trails shipped with the landing page
var defaultTrails = []models.Trail{
	{
		ID:         1,
		Name:       "Caminho da Costa da Lagoa",
		Difficulty: "Moderada",
		Duration:   "1h30min",
		Distance:   "6,4km",
		Elevation:  "157m",
		Photos: []string{
			"https://placehold.co/800x600/52c069/white",
			"https://placehold.co/800x600/409653/white",
			"https://placehold.co/800x600/327842/white",
		},
		Description:   "Uma trilha clássica em Florianópolis, que segue a margem da Lagoa da Conceição. O percurso é bem sinalizado e oferece vistas deslumbrantes.",
		Coordinates:   models.Coordinates{Lat: -27.595, Lng: -48.455},
		ElevationData: []float64{0, 20, 50, 45, 60, 80, 75, 100, 110, 157, 120, 90, 85, 50, 20, 0},
	},
	{
		ID:         2,
		Name:       "Trilha da Lagoinha do Leste",
		Difficulty: "Difícil",
		Duration:   "2h30min",
		Distance:   "4,5km",
		Elevation:  "250m",
		Photos: []string{
			"https://placehold.co/800x600/104975/white",
			"https://placehold.co/800x600/1e83a4/white",
			"https://placehold.co/800x600/39b7c1/white",
		},
		Description:   "Uma das trilhas mais famosas de Florianópolis, que leva à paradisíaca praia da Lagoinha do Leste. Exige bom preparo físico.",
		Coordinates:   models.Coordinates{Lat: -27.712, Lng: -48.513},
		ElevationData: []float64{0, 50, 100, 150, 200, 250, 220, 180, 150, 120, 80, 50, 20, 0},
	},
	{
		ID:         3,
		Name:       "Caminho do Gravatá",
		Difficulty: "Fácil",
		Duration:   "1h",
		Distance:   "2km",
		Elevation:  "50m",
		Photos: []string{
			"https://placehold.co/800x600/8d8a57/white",
			"https://placehold.co/800x600/b0b76e/white",
			"https://placehold.co/800x600/d4db87/white",
		},
		Description:   "Trilha curta e tranquila que leva à Praia do Gravatá. Ideal para iniciantes e famílias.",
		Coordinates:   models.Coordinates{Lat: -27.689, Lng: -48.490},
		ElevationData: []float64{0, 10, 25, 40, 50, 45, 30, 15, 0},
	},
	{
		ID:         4,
		Name:       "Trilha da Solidão",
		Difficulty: "Moderada",
		Duration:   "1h15min",
		Distance:   "3,1km",
		Elevation:  "110m",
		Photos: []string{
			"https://placehold.co/800x600/989785/white",
			"https://placehold.co/800x600/b4b39b/white",
			"https://placehold.co/800x600/d1d0b1/white",
		},
		Description:   "Trilha que conecta a Praia da Solidão e a Praia da Prainha, com vistas incríveis da costa.",
		Coordinates:   models.Coordinates{Lat: -27.755, Lng: -48.530},
		ElevationData: []float64{0, 25, 60, 90, 110, 85, 50, 20, 0},
	},
}

package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"aporo/pkg/chart"
	"aporo/pkg/models"
	"aporo/pkg/viewer"
)

var tabLabels = map[viewer.Tab]string{
	viewer.TabInfo:      "Informações",
	viewer.TabPhotos:    "Fotos",
	viewer.TabMap:       "Mapa",
	viewer.TabElevation: "Altimetria",
}

func openURL(id int) string   { return "/trails/open?id=" + strconv.Itoa(id) }
func selectURL(id int) string { return "/viewer/select?id=" + strconv.Itoa(id) }
func tabURL(t viewer.Tab) string {
	return "/viewer/tab?name=" + url.QueryEscape(string(t))
}
func photoURL(i int) string { return "/viewer/photo?index=" + strconv.Itoa(i) }
func chartURL(id int) string {
	return fmt.Sprintf("/trails/%d/elevation.svg", id)
}

// buildIndex assembles the landing page from the catalog and the visitor's viewer
func buildIndex(trails []models.Trail, state viewer.State, locale string) models.Index {
	cards := make([]models.Card, 0, len(trails))
	for _, t := range trails {
		cards = append(cards, models.Card{Trail: t, OpenURL: openURL(t.ID)})
	}
	return models.Index{
		Title: "Bem vindo ao Aporo, encontre aqui a sua próxima aventura!",
		Cards: cards,
		Modal: buildModal(state, locale),
	}
}

// buildModal turns a viewer snapshot into what the modal template renders.
// A viewer without focus becomes an empty shell.
func buildModal(state viewer.State, locale string) models.Modal {
	m := models.Modal{Open: state.Open, Empty: state.Empty}
	if !state.Open || state.Empty {
		return m
	}

	t := state.Focus
	m.Trail = t
	m.Tab = string(state.Tab)

	for _, tab := range viewer.Tabs {
		m.Tabs = append(m.Tabs, models.TabLink{
			Name:   string(tab),
			Label:  tabLabels[tab],
			URL:    tabURL(tab),
			Active: tab == state.Tab,
		})
	}

	m.Stats = []models.Stat{
		{Label: "Dificuldade", Value: t.Difficulty},
		{Label: "Tempo", Value: t.Duration},
		{Label: "Distância", Value: t.Distance},
		{Label: "Elevação", Value: t.Elevation},
	}

	m.Photo = state.Photo
	m.PhotoAlt = fmt.Sprintf("%s photo %d", t.Name, state.PhotoIndex+1)
	for i := range t.Photos {
		m.PhotoDots = append(m.PhotoDots, models.PhotoDot{Index: i, URL: photoURL(i), Active: i == state.PhotoIndex})
	}

	m.MapLabel = fmt.Sprintf("Coordenadas: %v, %v", t.Coordinates.Lat, t.Coordinates.Lng)

	m.ChartURL = chartURL(t.ID)
	m.ChartStats = []models.Stat{{Label: "Elevação Máxima", Value: t.Elevation}}
	if points, err := chart.Points(t); err == nil {
		stats := chart.Summarize(points)
		p := chart.Printer(locale)
		m.ChartStats = append(m.ChartStats,
			models.Stat{Label: "Ganho de Elevação", Value: "+" + chart.FormatM(p, stats.Ascent)},
			models.Stat{Label: "Elevação Média", Value: chart.FormatM(p, stats.Mean)},
		)
	}

	m.PickerOn = state.PickerEnabled
	for _, other := range state.Picker {
		m.Picker = append(m.Picker, models.Card{
			Trail:     other,
			SelectURL: selectURL(other.ID),
			Focused:   other.ID == t.ID,
		})
	}
	return m
}

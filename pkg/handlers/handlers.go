package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"aporo/pkg/geojson"
	"aporo/pkg/logging"
	"aporo/pkg/services"
)

const sessionCookie = "aporo_session"

// Routes registers every page, viewer action and API endpoint on mux
func Routes(mux *http.ServeMux) {
	cfg := services.Default().Config()

	mux.Handle("/", http.FileServer(http.Dir(cfg.PublicDir)))
	mux.HandleFunc("GET /{$}", IndexHandler)
	mux.HandleFunc("GET /trails/open", OpenTrailHandler)
	mux.HandleFunc("GET /trails/{id}/elevation.svg", ChartHandler)
	mux.HandleFunc("GET /trails/{id}/map.geojson", TrailGeoJSONHandler)
	mux.HandleFunc("GET /trails.geojson", CatalogGeoJSONHandler)
	mux.HandleFunc("GET /feed", FeedHandler)
	mux.HandleFunc("GET /healthz", HealthHandler)
	registerViewerRoutes(mux)
}

// IndexHandler renders the landing page and, when open, the trail viewer
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	svc := services.Default()
	sess := currentSession(w, r)

	logging.Logger.Debug().Str("session", sess.ID).Msg("Generating landing page")

	template, err := compileView(svc.Config().ViewsDir, "index.pug")
	if err != nil {
		logging.Logger.Error().Err(err).Msg("Template error")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	page := buildIndex(svc.Trails(), sess.Snapshot(), svc.Config().Locale)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := template.Execute(w, page); err != nil {
		logging.Logger.Error().Err(err).Msg("Template execution error")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}

// OpenTrailHandler opens the viewer on the trail chosen from the card grid
func OpenTrailHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := queryInt(w, r, "id")
	if !ok {
		return
	}

	sess := currentSession(w, r)
	if err := services.Default().OpenTrail(sess, id); err != nil {
		writeError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// FeedHandler serves the trail catalog as JSON
func FeedHandler(w http.ResponseWriter, _ *http.Request) {
	logging.Logger.Debug().Msg("Generating feed")
	writeJSON(w, "application/json", services.Default().Trails())
}

// TrailGeoJSONHandler serves a trail's location as a GeoJSON Feature
func TrailGeoJSONHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	trail, err := services.Default().Trail(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, "application/geo+json", geojson.ToFeature(trail))
}

// CatalogGeoJSONHandler serves every trail location as a FeatureCollection
func CatalogGeoJSONHandler(w http.ResponseWriter, _ *http.Request) {
	data, err := geojson.ToFeatureCollection(services.Default().Trails()).ToJSON()
	if err != nil {
		logging.Logger.Error().Err(err).Msg("Encoding GeoJSON failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeBody(w, "application/geo+json", data)
}

// ChartHandler serves the elevation profile of a trail as SVG
func ChartHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	svg, err := services.Default().ChartSVG(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if _, err := w.Write(svg); err != nil {
		logging.Logger.Warn().Err(err).Msg("Writing chart failed")
	}
}

// HealthHandler reports that the server is up
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, "application/json", map[string]any{
		"status": "ok",
		"trails": services.Default().Catalog().Len(),
	})
}

// currentSession returns the visitor's session, starting one when the cookie is missing or expired
func currentSession(w http.ResponseWriter, r *http.Request) *services.Session {
	svc := services.Default()
	if c, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := svc.Session(c.Value); ok {
			return sess
		}
	}

	sess := svc.NewSession()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		http.Error(w, "Invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return n, true
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		http.Error(w, "Invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return n, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrTrailNotFound):
		logging.Logger.Info().Str("path", r.URL.Path).Msg("Trail not found")
		http.NotFound(w, r)
	case errors.Is(err, services.ErrViewerClosed):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logging.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, contentType string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Logger.Error().Err(err).Msg("Encoding JSON failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeBody(w, contentType, data)
}

func writeBody(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(data); err != nil {
		logging.Logger.Warn().Err(err).Msg("Writing response failed")
	}
}

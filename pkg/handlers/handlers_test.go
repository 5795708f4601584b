package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aporo/pkg/config"
	"aporo/pkg/logging"
	"aporo/pkg/models"
	"aporo/pkg/services"
	"aporo/pkg/viewer"
)

var mux *http.ServeMux

func TestMain(m *testing.M) {
	logging.Init("error", io.Discard)
	cfg := &config.Config{
		Port:      "8080",
		Locale:    "pt-BR",
		ViewsDir:  "../../views",
		PublicDir: "../../public",
	}
	if err := services.InitService(cfg); err != nil {
		panic(err)
	}
	mux = http.NewServeMux()
	Routes(mux)
	os.Exit(m.Run())
}

// visitor replays requests with the session cookie the server handed out
type visitor struct {
	t      *testing.T
	cookie *http.Cookie
}

func (v *visitor) get(path string) *httptest.ResponseRecorder {
	v.t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if v.cookie != nil {
		req.AddCookie(v.cookie)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			v.cookie = c
		}
	}
	return rec
}

func (v *visitor) state() viewer.State {
	v.t.Helper()
	require.NotNil(v.t, v.cookie)
	sess, ok := services.Default().Session(v.cookie.Value)
	require.True(v.t, ok)
	return sess.Snapshot()
}

func TestOpenAndNavigateViewer(t *testing.T) {
	v := &visitor{t: t}

	rec := v.get("/trails/open?id=1")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 1, v.state().Focus.ID)

	require.Equal(t, http.StatusSeeOther, v.get("/viewer/tab?name=photos").Code)
	require.Equal(t, http.StatusSeeOther, v.get("/viewer/photo/next").Code)
	require.Equal(t, http.StatusSeeOther, v.get("/viewer/photo/next").Code)
	s := v.state()
	assert.Equal(t, viewer.TabPhotos, s.Tab)
	assert.Equal(t, 2, s.PhotoIndex)

	require.Equal(t, http.StatusSeeOther, v.get("/viewer/photo/next").Code)
	assert.Equal(t, 0, v.state().PhotoIndex)

	require.Equal(t, http.StatusSeeOther, v.get("/viewer/photo?index=1").Code)
	assert.Equal(t, 1, v.state().PhotoIndex)

	require.Equal(t, http.StatusSeeOther, v.get("/viewer/trails/next").Code)
	assert.Equal(t, 1, v.state().PickerOffset)

	require.Equal(t, http.StatusSeeOther, v.get("/viewer/select?id=3").Code)
	s = v.state()
	assert.True(t, s.Open)
	assert.Equal(t, 3, s.Focus.ID)
	assert.Equal(t, viewer.TabInfo, s.Tab)
	assert.Equal(t, 0, s.PhotoIndex)

	sess, ok := services.Default().Session(v.cookie.Value)
	require.True(t, ok)
	require.Equal(t, http.StatusSeeOther, v.get("/viewer/close").Code)
	assert.False(t, sess.Snapshot().Open)
	assert.Equal(t, 1, sess.Closes())

	_, ok = services.Default().Session(sess.ID)
	assert.False(t, ok, "closing ends the session")

	rec = v.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Outras Trilhas")
	assert.False(t, v.state().Open)
}

func TestReopenResetsViewer(t *testing.T) {
	v := &visitor{t: t}
	v.get("/trails/open?id=2")
	v.get("/viewer/tab?name=elevation")
	v.get("/viewer/photo/prev")

	v.get("/trails/open?id=4")
	s := v.state()
	assert.Equal(t, 4, s.Focus.ID)
	assert.Equal(t, viewer.TabInfo, s.Tab)
	assert.Equal(t, 0, s.PhotoIndex)
}

func TestViewerBadRequests(t *testing.T) {
	v := &visitor{t: t}
	v.get("/trails/open?id=1")

	assert.Equal(t, http.StatusBadRequest, v.get("/viewer/tab?name=reviews").Code)
	assert.Equal(t, http.StatusBadRequest, v.get("/viewer/photo?index=9").Code)
	assert.Equal(t, http.StatusBadRequest, v.get("/viewer/photo?index=x").Code)
	assert.Equal(t, http.StatusBadRequest, v.get("/trails/open?id=abc").Code)
	assert.Equal(t, http.StatusNotFound, v.get("/trails/open?id=99").Code)
	assert.Equal(t, http.StatusNotFound, v.get("/viewer/select?id=99").Code)
	assert.Equal(t, viewer.TabInfo, v.state().Tab)
}

func TestSelectWhileClosedConflicts(t *testing.T) {
	v := &visitor{t: t}
	assert.Equal(t, http.StatusConflict, v.get("/viewer/select?id=2").Code)
}

func TestIndexRendersCardsAndModal(t *testing.T) {
	v := &visitor{t: t}

	rec := v.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Caminho da Costa da Lagoa")
	assert.Contains(t, rec.Body.String(), "/trails/open?id=4")

	v.get("/trails/open?id=2")
	rec = v.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Outras Trilhas")
	assert.Contains(t, rec.Body.String(), "/viewer/select?id=3")
}

func TestIndexRendersEachTab(t *testing.T) {
	sections := []string{"tab-info", "tab-photos", "tab-map", "tab-elevation"}
	tests := []struct {
		tab      string
		contains []string
	}{
		{"info", []string{"Descrição", "Lagoinha do Leste"}},
		{"photos", []string{"/viewer/photo/next", "/viewer/photo?index=2", "placehold.co/800x600/104975"}},
		{"map", []string{"Coordenadas: -27.712, -48.513"}},
		{"elevation", []string{"/trails/2/elevation.svg", "Ganho de Elevação", "Elevação Média"}},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			v := &visitor{t: t}
			v.get("/trails/open?id=2")
			require.Equal(t, http.StatusSeeOther, v.get("/viewer/tab?name="+tt.tab).Code)

			rec := v.get("/")
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, section := range sections {
				if section == "tab-"+tt.tab {
					assert.Contains(t, body, section)
				} else {
					assert.NotContains(t, body, section)
				}
			}
			for _, want := range tt.contains {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestIndexRendersEmptyShell(t *testing.T) {
	v := &visitor{t: t}
	require.Equal(t, http.StatusOK, v.get("/").Code)

	sess, ok := services.Default().Session(v.cookie.Value)
	require.True(t, ok)
	sess.Do(func(vw *viewer.Viewer) { vw.Open(nil) })

	rec := v.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Nenhuma trilha selecionada.")
	assert.NotContains(t, body, "/viewer/tab?name=")
	for _, section := range []string{"tab-info", "tab-photos", "tab-map", "tab-elevation"} {
		assert.NotContains(t, body, section)
	}
}

func TestFeedHandler(t *testing.T) {
	rec := (&visitor{t: t}).get("/feed")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var trails []models.Trail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trails))
	require.Len(t, trails, 4)
	assert.Equal(t, "6,4km", trails[0].Distance)
}

func TestGeoJSONHandlers(t *testing.T) {
	v := &visitor{t: t}

	rec := v.get("/trails/3/map.geojson")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Point"`)
	assert.Contains(t, rec.Body.String(), "-48.49")

	rec = v.get("/trails.geojson")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FeatureCollection")

	assert.Equal(t, http.StatusNotFound, v.get("/trails/9/map.geojson").Code)
}

func TestChartHandler(t *testing.T) {
	v := &visitor{t: t}

	rec := v.get("/trails/1/elevation.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Body.String(), "<svg"))

	assert.Equal(t, http.StatusNotFound, v.get("/trails/42/elevation.svg").Code)
	assert.Equal(t, http.StatusBadRequest, v.get("/trails/x/elevation.svg").Code)
}

func TestHealthHandler(t *testing.T) {
	rec := (&visitor{t: t}).get("/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trails":4`)
}

package handlers

import (
	"net/http"
	"strconv"

	"aporo/pkg/logging"
	"aporo/pkg/services"
	"aporo/pkg/viewer"
)

// viewerAction applies one transition to the visitor's viewer and sends them back to the page
type viewerAction func(r *http.Request, v *viewer.Viewer) (status int, msg string)

func registerViewerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /viewer/select", SelectTrailHandler)
	mux.HandleFunc("GET /viewer/tab", handleViewer(setTab))
	mux.HandleFunc("GET /viewer/photo", handleViewer(jumpToPhoto))
	mux.HandleFunc("GET /viewer/photo/next", handleViewer(func(_ *http.Request, v *viewer.Viewer) (int, string) {
		v.NextPhoto()
		return 0, ""
	}))
	mux.HandleFunc("GET /viewer/photo/prev", handleViewer(func(_ *http.Request, v *viewer.Viewer) (int, string) {
		v.PrevPhoto()
		return 0, ""
	}))
	mux.HandleFunc("GET /viewer/trails/next", handleViewer(func(_ *http.Request, v *viewer.Viewer) (int, string) {
		v.NextTrails()
		return 0, ""
	}))
	mux.HandleFunc("GET /viewer/trails/prev", handleViewer(func(_ *http.Request, v *viewer.Viewer) (int, string) {
		v.PrevTrails()
		return 0, ""
	}))
	mux.HandleFunc("GET /viewer/close", CloseViewerHandler)
}

// handleViewer wraps a transition; a non-zero status aborts with that error
func handleViewer(action viewerAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := currentSession(w, r)

		var status int
		var msg string
		sess.Do(func(v *viewer.Viewer) {
			status, msg = action(r, v)
		})
		if status != 0 {
			http.Error(w, msg, status)
			return
		}

		logging.Logger.Debug().Str("session", sess.ID).Str("action", r.URL.Path).Msg("Viewer updated")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// SelectTrailHandler switches the viewer to another trail from the picker
func SelectTrailHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := queryInt(w, r, "id")
	if !ok {
		return
	}

	sess := currentSession(w, r)
	if err := services.Default().SelectTrail(sess, id); err != nil {
		writeError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CloseViewerHandler dismisses the viewer and forgets the visitor's session
func CloseViewerHandler(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(w, r)
	services.Default().CloseViewer(sess)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func setTab(r *http.Request, v *viewer.Viewer) (int, string) {
	tab, err := viewer.ParseTab(r.URL.Query().Get("name"))
	if err != nil {
		return http.StatusBadRequest, err.Error()
	}
	if err := v.SetTab(tab); err != nil {
		return http.StatusBadRequest, err.Error()
	}
	return 0, ""
}

func jumpToPhoto(r *http.Request, v *viewer.Viewer) (int, string) {
	i, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil {
		return http.StatusBadRequest, "Invalid index"
	}
	if !v.JumpToPhoto(i) {
		return http.StatusBadRequest, "Photo index out of range"
	}
	return 0, ""
}

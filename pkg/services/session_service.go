package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"aporo/pkg/logging"
	"aporo/pkg/viewer"
)

// ErrViewerClosed is returned for viewer actions while the viewer is not showing
var ErrViewerClosed = errors.New("viewer is closed")

// Session is one visitor's page state: the open/closed viewer and its focus
type Session struct {
	ID     string
	mu     sync.Mutex
	viewer *viewer.Viewer
	closes int
}

// Do runs fn with exclusive access to the session's viewer
func (s *Session) Do(fn func(v *viewer.Viewer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.viewer)
}

// Snapshot returns the viewer state for rendering
func (s *Session) Snapshot() viewer.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewer.Snapshot()
}

// Closes returns how many times the viewer was dismissed in this session
func (s *Session) Closes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closes
}

// NewSession creates a session with a closed viewer
func (s *Service) NewSession() *Session {
	sess := &Session{ID: uuid.NewString()}
	sess.viewer = viewer.New(s.Catalog(), func() {
		sess.closes++
		logging.Logger.Debug().Str("session", sess.ID).Msg("Viewer closed")
	})
	s.sessions.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess
}

// Session looks up a live session and extends its lifetime
func (s *Service) Session(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	v, found := s.sessions.Get(id)
	if !found {
		return nil, false
	}
	sess := v.(*Session)
	s.sessions.Set(id, sess, cache.DefaultExpiration)
	return sess, true
}

// EndSession forgets a session
func (s *Service) EndSession(id string) {
	s.sessions.Delete(id)
}

// OpenTrail opens the session's viewer focused on a trail: the owner's one-way handoff
func (s *Service) OpenTrail(sess *Session, id int) error {
	trail, err := s.Trail(id)
	if err != nil {
		return err
	}
	cat := s.Catalog()
	sess.Do(func(v *viewer.Viewer) {
		v.SetCatalog(cat)
		v.Open(&trail)
	})
	logging.Logger.Debug().Str("session", sess.ID).Int("trail", id).Msg("Viewer opened")
	return nil
}

// SelectTrail moves the open viewer's focus to another trail
func (s *Service) SelectTrail(sess *Session, id int) error {
	trail, err := s.Trail(id)
	if err != nil {
		return err
	}
	var openErr error
	sess.Do(func(v *viewer.Viewer) {
		if !v.IsOpen() {
			openErr = ErrViewerClosed
			return
		}
		v.SelectTrail(trail)
	})
	return openErr
}

// CloseViewer dismisses the session's viewer and ends the session.
// The next request from the visitor starts over with a closed viewer.
func (s *Service) CloseViewer(sess *Session) {
	sess.Do(func(v *viewer.Viewer) { v.Close() })
	logging.Logger.Debug().Str("session", sess.ID).Int("closes", sess.Closes()).Msg("Session ended")
	s.EndSession(sess.ID)
}

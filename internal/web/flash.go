package web

import (
	"context"
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Register types for gob encoding (used by sessions)
func init() {
	gob.Register(FlashMessage{})
}

// FlashMessage structure
type FlashMessage struct {
	Type    string
	Message string
}

type flashScopeKey struct{}

// flashScope binds the cookie session to the request it belongs to, so the
// stores can add flashes through a plain context.Context.
type flashScope struct {
	w       http.ResponseWriter
	r       *http.Request
	session *sessions.Session
}

// Flasher surfaces store notifications as cookie-session flash messages. It
// implements the Notifier interface every store expects; the messages only
// land when the context carries a request scope, which Bind attaches.
type Flasher struct {
	store  sessions.Store
	name   string
	logger *zap.Logger
}

func NewFlasher(store sessions.Store, logger *zap.Logger) *Flasher {
	return &Flasher{
		store:  store,
		name:   "admin-session",
		logger: logger,
	}
}

// Bind loads the cookie session and attaches a flash scope to the request
// context before the handler runs.
func (f *Flasher) Bind(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := f.store.Get(r, f.name)
		if err != nil {
			// a stale or tampered cookie yields a fresh session, keep going
			f.logger.Debug("failed to decode session cookie", zap.Error(err))
		}
		scope := &flashScope{w: w, r: r, session: session}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), flashScopeKey{}, scope)))
	})
}

func (f *Flasher) Success(ctx context.Context, msg string) {
	f.add(ctx, "success", msg)
}

func (f *Flasher) Error(ctx context.Context, msg string) {
	f.add(ctx, "error", msg)
}

func (f *Flasher) add(ctx context.Context, kind, msg string) {
	scope, ok := ctx.Value(flashScopeKey{}).(*flashScope)
	if !ok {
		// background work has no request to flash at
		f.logger.Debug("notification outside request scope", zap.String("message", msg))
		return
	}
	scope.session.AddFlash(FlashMessage{Type: kind, Message: msg})
	if err := scope.session.Save(scope.r, scope.w); err != nil {
		f.logger.Error("failed to save session", zap.Error(err))
	}
}

// Drain retrieves and clears the pending flash messages for rendering.
func (f *Flasher) Drain(w http.ResponseWriter, r *http.Request) []FlashMessage {
	scope, ok := r.Context().Value(flashScopeKey{}).(*flashScope)
	if !ok {
		return nil
	}
	flashes := scope.session.Flashes()
	var messages []FlashMessage
	for _, raw := range flashes {
		if fm, ok := raw.(FlashMessage); ok {
			messages = append(messages, fm)
		}
	}
	if len(flashes) > 0 {
		if err := scope.session.Save(r, w); err != nil {
			f.logger.Error("failed to save session", zap.Error(err))
		}
	}
	return messages
}

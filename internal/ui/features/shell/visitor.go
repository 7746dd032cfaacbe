package shell

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Session cookie layout.
const (
	SessionName = "lustre"
	visitorKey  = "visitor"
	introKey    = "intro_dismissed"
)

type visitorCtxKey struct{}

// Visitor makes sure every request carries a visitor ID. New visitors get a
// random UUID stored in the session cookie.
func (h *Handlers) Visitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessionStore.Get(r, SessionName)
		if err != nil {
			// Unreadable cookies (rotated secret, tampering) start a fresh visitor.
			h.logger.Debug("discarding unreadable session", "error", err)
		}
		if sess == nil {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		id, _ := sess.Values[visitorKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[visitorKey] = id
			if err := sess.Save(r, w); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			h.logger.Debug("new visitor", "visitor", id)
		}

		next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), id)))
	})
}

// WithVisitor returns a context carrying the visitor ID.
func WithVisitor(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, visitorCtxKey{}, id)
}

// VisitorID returns the visitor ID set by the Visitor middleware.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorCtxKey{}).(string)
	return id
}

// cookieIntroDismissed reads the client-side copy of the intro flag.
func (h *Handlers) cookieIntroDismissed(r *http.Request) bool {
	sess, err := h.sessionStore.Get(r, SessionName)
	if err != nil || sess == nil {
		return false
	}
	v, _ := sess.Values[introKey].(bool)
	return v
}

// saveIntroCookie writes the intro flag into the session cookie. It must run
// before any response body is written.
func (h *Handlers) saveIntroCookie(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.sessionStore.Get(r, SessionName)
	if sess == nil {
		return err
	}
	sess.Values[introKey] = true
	return sess.Save(r, w)
}

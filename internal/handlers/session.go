package handlers

import (
	"context"
	"net/http"
	"time"

	"cozycorner/internal/profile"
	"cozycorner/internal/session"
)

const sessionCookieName = "cozycorner_session"

type sessionKey struct{}

// requireSession resolves the session cookie. Page requests without a live
// session go back to the login form; everything else gets 401.
func requireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := sessionFromCookie(r, store)
			if !ok {
				if r.Method == http.MethodGet {
					http.Redirect(w, r, "/", http.StatusSeeOther)
					return
				}
				http.Error(w, "login required", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func currentSession(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionKey{}).(*session.Session)
	return sess
}

func sessionFromCookie(r *http.Request, store *session.Store) (*session.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return store.Get(cookie.Value)
}

func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func viewPath(v profile.View) string {
	switch v {
	case profile.ViewStore:
		return "/store"
	case profile.ViewProfile:
		return "/profile"
	case profile.ViewAdmin:
		return "/admin"
	default:
		return "/room"
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cozycorner/internal/profile"
	"cozycorner/internal/session"
	"cozycorner/internal/viewmodel"
	"cozycorner/views/pages"
)

type AuthHandler struct {
	sessions         *session.Store
	startingCurrency int
}

func NewAuthHandler(sessions *session.Store, startingCurrency int) *AuthHandler {
	return &AuthHandler{sessions: sessions, startingCurrency: startingCurrency}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
}

func (h *AuthHandler) home(w http.ResponseWriter, r *http.Request) {
	if sess, ok := sessionFromCookie(r, h.sessions); ok {
		http.Redirect(w, r, viewPath(sess.View()), http.StatusSeeOther)
		return
	}
	render(w, r, pages.Login(viewmodel.LoginPage{}))
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.FormValue("username")
	p, err := profile.Login(username, h.startingCurrency, time.Now().UTC())
	if errors.Is(err, profile.ErrUsernameRequired) {
		renderStatus(w, r, http.StatusBadRequest, pages.Login(viewmodel.LoginPage{Error: "Please enter a name."}))
		return
	}
	if err != nil {
		log.Printf("[auth] login error: %v", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	sess := h.sessions.Create(p)
	setSessionCookie(w, sess.ID)
	log.Printf("[auth] login user=%q role=%s session=%s", p.Username, p.Role, sess.ID)
	http.Redirect(w, r, viewPath(sess.View()), http.StatusSeeOther)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := sessionFromCookie(r, h.sessions); ok {
		h.sessions.Delete(sess.ID)
		log.Printf("[auth] logout session=%s", sess.ID)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

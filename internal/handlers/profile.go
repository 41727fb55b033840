package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cozycorner/internal/analytics"
	"cozycorner/internal/catalog"
	"cozycorner/internal/profile"
	"cozycorner/internal/session"
	"cozycorner/internal/viewmodel"
	"cozycorner/views/pages"
)

var categoryColors = map[catalog.Category]string{
	catalog.CategoryFurniture:  "is-primary",
	catalog.CategoryDecoration: "is-link",
	catalog.CategorySurface:    "is-info",
	catalog.CategoryPlant:      "is-success",
	catalog.CategoryLighting:   "is-warning",
}

var trendColors = map[string]string{
	"emerald": "has-text-success",
	"blue":    "has-text-info",
	"violet":  "has-text-link",
	"orange":  "has-text-warning",
}

type ProfileHandler struct {
	sessions *session.Store
}

func NewProfileHandler(sessions *session.Store) *ProfileHandler {
	return &ProfileHandler{sessions: sessions}
}

func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(requireSession(h.sessions))
		r.Get("/profile", h.profilePage)
		r.Get("/admin", h.adminPage)
	})
}

func (h *ProfileHandler) profilePage(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if err := sess.SwitchView(profile.ViewProfile); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	snap := sess.Snapshot()
	p := snap.Profile
	placed := len(snap.Items)

	total := len(p.Inventory)
	stats := make([]viewmodel.StatSlice, 0)
	for _, c := range p.CategoryStats() {
		stats = append(stats, viewmodel.StatSlice{
			Label:   c.Label,
			Count:   c.Count,
			Percent: c.Count * 100 / total,
			Color:   categoryColors[c.Category],
		})
	}
	achievements := make([]viewmodel.Achievement, 0)
	for _, a := range p.Achievements(placed) {
		achievements = append(achievements, viewmodel.Achievement{
			Icon:        a.Icon,
			Title:       a.Title,
			Description: a.Description,
			Unlocked:    a.Unlocked,
		})
	}

	render(w, r, pages.Profile(viewmodel.ProfilePage{
		Layout:       buildLayout("Profile", snap),
		Username:     p.Username,
		Initial:      p.Initial(),
		Joined:       p.JoinedAt.Format("Jan 2, 2006"),
		Level:        p.Level,
		ItemCount:    placed,
		Stats:        stats,
		Achievements: achievements,
	}))
}

func (h *ProfileHandler) adminPage(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if err := sess.SwitchView(profile.ViewAdmin); err != nil {
		if errors.Is(err, session.ErrViewForbidden) {
			http.Error(w, "admin access required", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	snap := sess.Snapshot()
	dash := analytics.MockDashboard()

	cards := make([]viewmodel.StatCard, 0, len(dash.Cards))
	for _, c := range dash.Cards {
		cards = append(cards, viewmodel.StatCard{Label: c.Label, Value: c.Value, Trend: c.Trend, Color: trendColors[c.Color]})
	}
	txs := make([]viewmodel.Transaction, 0, len(dash.Transactions))
	for _, tx := range dash.Transactions {
		txs = append(txs, viewmodel.Transaction{User: tx.User, Item: tx.Item, Amount: tx.Amount, Status: tx.Status})
	}

	render(w, r, pages.Admin(viewmodel.AdminPage{
		Layout:       buildLayout("Admin", snap),
		Cards:        cards,
		Revenue:      toBars(dash.Revenue),
		Users:        toBars(dash.UserGrowth),
		Transactions: txs,
	}))
}

func toBars(series []analytics.Point) []viewmodel.Bar {
	peak := analytics.Peak(series)
	out := make([]viewmodel.Bar, 0, len(series))
	for _, p := range series {
		out = append(out, viewmodel.Bar{Label: p.Day, Value: p.Value, Percent: p.Value * 100 / peak})
	}
	return out
}

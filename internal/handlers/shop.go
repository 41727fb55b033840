package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"cozycorner/internal/catalog"
	"cozycorner/internal/profile"
	"cozycorner/internal/session"
	"cozycorner/internal/viewmodel"
	"cozycorner/views/pages"
)

type ShopHandler struct {
	sessions *session.Store
	catalog  *catalog.Catalog
}

func NewShopHandler(sessions *session.Store, cat *catalog.Catalog) *ShopHandler {
	return &ShopHandler{sessions: sessions, catalog: cat}
}

func (h *ShopHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(requireSession(h.sessions))
		r.Get("/store", h.storePage)
		r.Post("/store/buy", h.buy)
	})
}

func (h *ShopHandler) storePage(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if err := sess.SwitchView(profile.ViewStore); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	category := catalog.Category(strings.TrimSpace(r.URL.Query().Get("category")))
	if !category.Valid() {
		category = ""
	}

	snap := sess.Snapshot()
	p := snap.Profile
	defs := h.catalog.Filter(category)
	items := make([]viewmodel.StoreItem, 0, len(defs))
	for _, def := range defs {
		items = append(items, viewmodel.StoreItem{
			ID:          def.ID,
			Name:        def.Name,
			Category:    string(def.Category),
			Description: def.Description,
			Price:       def.Price,
			Color:       def.Color,
			Owned:       p.OwnedCount(def.ID),
			CanAfford:   p.CanAfford(def),
		})
	}

	tabs := []viewmodel.CategoryTab{{Value: "", Label: "All", Active: category == ""}}
	for _, c := range catalog.Categories() {
		tabs = append(tabs, viewmodel.CategoryTab{
			Value:  string(c),
			Label:  strings.ToUpper(string(c)[:1]) + string(c)[1:],
			Active: c == category,
		})
	}

	render(w, r, pages.Store(viewmodel.StorePage{
		Layout:   buildLayout("Store", snap),
		Currency: p.Currency,
		Tabs:     tabs,
		Items:    items,
		Notice:   h.notice(r.URL.Query()),
	}))
}

func (h *ShopHandler) notice(q url.Values) string {
	if id := q.Get("bought"); id != "" {
		if def, ok := h.catalog.Get(id); ok {
			return "Bought " + def.Name + "! Find it in your inventory."
		}
	}
	if id := q.Get("short"); id != "" {
		if def, ok := h.catalog.Get(id); ok {
			return "Not enough coins for " + def.Name + "."
		}
	}
	return ""
}

func (h *ShopHandler) buy(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	def, ok := h.catalog.Get(r.FormValue("item"))
	if !ok {
		http.Error(w, catalog.ErrUnknownItem.Error(), http.StatusNotFound)
		return
	}

	back := url.Values{}
	if c := catalog.Category(r.FormValue("category")); c.Valid() {
		back.Set("category", string(c))
	}
	err := sess.Buy(def)
	switch {
	case errors.Is(err, profile.ErrInsufficientFunds):
		back.Set("short", def.ID)
	case err != nil:
		log.Printf("[store] buy session=%s item=%s err=%v", sess.ID, def.ID, err)
		http.Error(w, "purchase failed", http.StatusInternalServerError)
		return
	default:
		log.Printf("[store] buy session=%s item=%s price=%d", sess.ID, def.ID, def.Price)
		back.Set("bought", def.ID)
		h.sessions.Publish(sess.ID, session.EventHUD)
	}
	http.Redirect(w, r, "/store?"+back.Encode(), http.StatusSeeOther)
}

package handlers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"cozycorner/internal/config"
	"cozycorner/internal/placement"
	"cozycorner/internal/profile"
	"cozycorner/internal/session"
	"cozycorner/internal/viewmodel"
	"cozycorner/views/components"
	"cozycorner/views/pages"
)

type RoomHandler struct {
	sessions *session.Store
	room     config.RoomConfig
}

func NewRoomHandler(sessions *session.Store, room config.RoomConfig) *RoomHandler {
	return &RoomHandler{sessions: sessions, room: room}
}

// RegisterRoutes registers the request/response room routes.
func (h *RoomHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(requireSession(h.sessions))
		r.Get("/room", h.roomPage)
		r.Get("/room/canvas", h.canvasFragment)
		r.Get("/room/items", h.listItems)
		r.Post("/room/click", h.click)
		r.Post("/room/items/{instanceID}/rotate", h.rotate)
		r.Delete("/room/items/{instanceID}", h.remove)
		r.Post("/room/pending", h.selectPending)
		r.Delete("/room/pending", h.cancelPending)
		r.Get("/room/assistant", h.chatFragment)
		r.Post("/room/assistant", h.ask)
	})
}

// RegisterStreamRoutes registers the long-lived SSE and websocket routes.
// They must sit outside any request timeout middleware.
func (h *RoomHandler) RegisterStreamRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(requireSession(h.sessions))
		r.Get("/room/stream", h.stream)
		r.Get("/room/ws", h.pointerStream)
	})
}

func (h *RoomHandler) roomPage(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if err := sess.SwitchView(profile.ViewRoom); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	snap := sess.Snapshot()
	render(w, r, pages.Room(viewmodel.RoomPage{
		Layout: buildLayout("My Room", snap),
		Canvas: buildCanvas(snap, h.room),
		Chat:   buildChat(snap),
	}))
}

func (h *RoomHandler) canvasFragment(w http.ResponseWriter, r *http.Request) {
	h.renderCanvas(w, r, currentSession(r))
}

func (h *RoomHandler) renderCanvas(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	render(w, r, components.Canvas(buildCanvas(sess.Snapshot(), h.room)))
}

type itemJSON struct {
	InstanceID string `json:"instanceId"`
	ItemID     string `json:"itemId"`
	Name       string `json:"name"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Rotation   int    `json:"rotation"`
	Depth      int    `json:"depth"`
	Selected   bool   `json:"selected"`
}

// listItems returns the room in draw order.
func (h *RoomHandler) listItems(w http.ResponseWriter, r *http.Request) {
	snap := currentSession(r).Snapshot()
	items := make([]itemJSON, 0, len(snap.Items))
	for _, d := range snap.Items {
		items = append(items, itemJSON{
			InstanceID: d.Item.InstanceID,
			ItemID:     d.Item.ID,
			Name:       d.Item.Name,
			X:          d.Item.X,
			Y:          d.Item.Y,
			Rotation:   int(d.Item.Rotation),
			Depth:      d.Depth,
			Selected:   d.Selected,
		})
	}
	writeJSON(w, map[string]any{
		"mode":  snap.Mode.String(),
		"items": items,
	})
}

func (h *RoomHandler) click(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	pointer, ok := parsePoint(r.FormValue("x"), r.FormValue("y"))
	if !ok {
		http.Error(w, "invalid pointer", http.StatusBadRequest)
		return
	}
	instanceID := strings.TrimSpace(r.FormValue("id"))
	if item, placed := sess.Click(instanceID, pointer); placed {
		log.Printf("[room] place session=%s item=%s instance=%s cell=%d,%d", sess.ID, item.ID, item.InstanceID, item.X, item.Y)
	}
	h.sessions.Publish(sess.ID, session.EventCanvas)
	h.renderCanvas(w, r, sess)
}

func (h *RoomHandler) rotate(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	sess.Rotate(chi.URLParam(r, "instanceID"))
	h.sessions.Publish(sess.ID, session.EventCanvas)
	h.renderCanvas(w, r, sess)
}

func (h *RoomHandler) remove(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	sess.Remove(chi.URLParam(r, "instanceID"))
	h.sessions.Publish(sess.ID, session.EventCanvas)
	h.renderCanvas(w, r, sess)
}

func (h *RoomHandler) selectPending(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		http.Error(w, "invalid inventory index", http.StatusBadRequest)
		return
	}
	if _, err := sess.SelectFromInventory(index); err != nil {
		if errors.Is(err, session.ErrNotInInventory) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.sessions.Publish(sess.ID, session.EventCanvas)
	h.renderCanvas(w, r, sess)
}

func (h *RoomHandler) cancelPending(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	sess.CancelPending()
	h.sessions.Publish(sess.ID, session.EventCanvas)
	h.renderCanvas(w, r, sess)
}

func (h *RoomHandler) chatFragment(w http.ResponseWriter, r *http.Request) {
	render(w, r, components.Chat(buildChat(currentSession(r).Snapshot())))
}

func (h *RoomHandler) ask(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if sess.Ask(r.FormValue("question")) {
		h.sessions.Publish(sess.ID, session.EventChat)
	}
	render(w, r, components.Chat(buildChat(sess.Snapshot())))
}

func (h *RoomHandler) stream(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	hub, ok := h.sessions.Broadcaster(sess.ID)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	send := func(canvas, chat, hud bool) {
		snap := sess.Snapshot()
		if canvas {
			writeSSE(w, string(session.EventCanvas), renderToString(r, components.Canvas(buildCanvas(snap, h.room))))
		}
		if chat {
			writeSSE(w, string(session.EventChat), renderToString(r, components.Chat(buildChat(snap))))
		}
		if hud {
			layout := buildLayout("", snap)
			writeSSE(w, string(session.EventHUD), renderToString(r, components.HUD(layout.HUD)))
		}
		flusher.Flush()
	}

	send(true, true, true)

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-sub:
			if !open {
				return
			}
			switch event {
			case session.EventCanvas:
				send(true, false, false)
			case session.EventChat:
				send(false, true, false)
			case session.EventHUD:
				send(false, false, true)
			}
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}

func parsePoint(xs, ys string) (placement.Point, bool) {
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil || !finite(x) || !finite(y) {
		return placement.Point{}, false
	}
	return placement.Point{X: x, Y: y}, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

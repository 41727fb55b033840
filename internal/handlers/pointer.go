package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"cozycorner/internal/placement"
	"cozycorner/internal/session"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	maxPointerMessageSize = 1024
)

// Pointer message types sent by the canvas script.
const (
	pointerDown  = "down"
	pointerMove  = "move"
	pointerUp    = "up"
	pointerLeave = "leave"
)

type pointerMessage struct {
	Type string  `json:"type"`
	ID   string  `json:"id,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type pointerReply struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Left int    `json:"left"`
	Top  int    `json:"top"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// pointerStream carries drag gestures. Clicks stay on plain POSTs; this
// socket only sees pointer down, move and release over placed items.
func (h *RoomHandler) pointerStream(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[room] websocket upgrade session=%s err=%v", sess.ID, err)
		return
	}
	defer ws.Close()
	// A dropped connection counts as the pointer leaving the canvas.
	defer func() {
		sess.EndDrag()
		h.sessions.Publish(sess.ID, session.EventCanvas)
	}()

	ws.SetReadLimit(maxPointerMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[room] websocket read session=%s err=%v", sess.ID, err)
			}
			return
		}
		var msg pointerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if !h.reply(ws, pointerReply{Type: "error"}) {
				return
			}
			continue
		}
		if !h.reply(ws, h.handlePointer(sess, msg)) {
			return
		}
	}
}

func (h *RoomHandler) handlePointer(sess *session.Session, msg pointerMessage) pointerReply {
	pointer := placement.Point{X: msg.X, Y: msg.Y}
	switch msg.Type {
	case pointerDown:
		if !sess.BeginDrag(msg.ID, pointer) {
			return pointerReply{Type: "ignored", ID: msg.ID}
		}
		h.sessions.Publish(sess.ID, session.EventCanvas)
		return pointerReply{Type: "grabbed", ID: msg.ID}
	case pointerMove:
		item, ok := sess.UpdateDrag(pointer)
		if !ok {
			return pointerReply{Type: "ignored"}
		}
		cell := sess.CellSize()
		return pointerReply{
			Type: "moved",
			ID:   item.InstanceID,
			X:    item.X,
			Y:    item.Y,
			Left: item.X * cell,
			Top:  item.Y * cell,
		}
	case pointerUp, pointerLeave:
		sess.EndDrag()
		h.sessions.Publish(sess.ID, session.EventCanvas)
		return pointerReply{Type: "dropped"}
	default:
		return pointerReply{Type: "error"}
	}
}

func (h *RoomHandler) reply(ws *websocket.Conn, msg pointerReply) bool {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	if err := ws.WriteJSON(msg); err != nil {
		log.Printf("[room] websocket write err=%v", err)
		return false
	}
	return true
}

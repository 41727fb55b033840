package handlers

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestStream_SendsInitialFragments(t *testing.T) {
	app := newTestApp(t, 2000)
	cookie := app.login(t, "alice")
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/room/stream", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.AddCookie(cookie)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type %q", ct)
	}

	seen := map[string]bool{}
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() && len(seen) < 3 {
		if event, ok := strings.CutPrefix(scanner.Text(), "event: "); ok {
			seen[event] = true
		}
	}
	for _, want := range []string{"canvas", "chat", "hud"} {
		if !seen[want] {
			t.Errorf("initial snapshot missing %q event", want)
		}
	}
}

func TestStream_EndsOnLogout(t *testing.T) {
	app := newTestApp(t, 2000)
	cookie := app.login(t, "alice")
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/room/stream", nil)
	req.AddCookie(cookie)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	defer resp.Body.Close()

	app.do(http.MethodPost, "/logout", nil, cookie)

	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("stream still open after logout")
	}
}

func dialPointer(t *testing.T, srv *httptest.Server, cookie *http.Cookie) *websocket.Conn {
	t.Helper()
	header := http.Header{}
	header.Set("Cookie", cookie.String())
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/room/ws"
	ws, _, err := websocket.DefaultDialer.Dial(u, header)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return ws
}

func exchange(t *testing.T, ws *websocket.Conn, msg pointerMessage) pointerReply {
	t.Helper()
	if err := ws.WriteJSON(msg); err != nil {
		t.Fatalf("write %s: %v", msg.Type, err)
	}
	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply pointerReply
	if err := ws.ReadJSON(&reply); err != nil {
		t.Fatalf("read reply to %s: %v", msg.Type, err)
	}
	return reply
}

func TestPointerStream_Drag(t *testing.T) {
	app := newTestApp(t, 2000)
	cookie := app.login(t, "alice")
	sofa := app.placeSofa(t, cookie)
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	ws := dialPointer(t, srv, cookie)
	defer ws.Close()

	// Grab the sofa at (2,2) 20px right and 10px down from its corner.
	if got := exchange(t, ws, pointerMessage{Type: pointerDown, ID: sofa.InstanceID, X: 100, Y: 90}); got.Type != "grabbed" {
		t.Fatalf("down reply %+v, want grabbed", got)
	}
	if mode := app.items(t, cookie).Mode; mode != "dragging" {
		t.Errorf("mode %q, want dragging", mode)
	}

	got := exchange(t, ws, pointerMessage{Type: pointerMove, X: 140, Y: 90})
	if got.Type != "moved" || got.X != 3 || got.Y != 2 || got.Left != 120 || got.Top != 80 {
		t.Errorf("move reply %+v, want cell (3,2) at 120,80", got)
	}

	if got := exchange(t, ws, pointerMessage{Type: pointerUp}); got.Type != "dropped" {
		t.Errorf("up reply %+v, want dropped", got)
	}
	items := app.items(t, cookie)
	if items.Mode != "selected" || items.Items[0].X != 3 || items.Items[0].Y != 2 {
		t.Errorf("after drop %+v, want sofa selected at (3,2)", items)
	}

	if got := exchange(t, ws, pointerMessage{Type: pointerMove, X: 300, Y: 300}); got.Type != "ignored" {
		t.Errorf("move after drop %+v, want ignored", got)
	}
}

func TestPointerStream_IgnoresWhilePlacing(t *testing.T) {
	app := newTestApp(t, 2000)
	cookie := app.login(t, "alice")
	sofa := app.placeSofa(t, cookie)
	app.do(http.MethodPost, "/room/pending", url.Values{"index": {"0"}}, cookie)
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	ws := dialPointer(t, srv, cookie)
	defer ws.Close()

	if got := exchange(t, ws, pointerMessage{Type: pointerDown, ID: sofa.InstanceID, X: 90, Y: 90}); got.Type != "ignored" {
		t.Errorf("down while placing %+v, want ignored", got)
	}
	if mode := app.items(t, cookie).Mode; mode != "placing" {
		t.Errorf("mode %q, want placing", mode)
	}
}

func TestPointerStream_BadMessages(t *testing.T) {
	app := newTestApp(t, 2000)
	cookie := app.login(t, "alice")
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	ws := dialPointer(t, srv, cookie)
	defer ws.Close()

	if got := exchange(t, ws, pointerMessage{Type: "wiggle"}); got.Type != "error" {
		t.Errorf("unknown type reply %+v, want error", got)
	}
	if err := ws.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	var reply pointerReply
	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := ws.ReadJSON(&reply); err != nil || reply.Type != "error" {
		t.Errorf("malformed reply %+v err %v, want error", reply, err)
	}
	if got := exchange(t, ws, pointerMessage{Type: pointerDown, ID: "missing", X: 1, Y: 1}); got.Type != "ignored" {
		t.Errorf("down on unknown item %+v, want ignored", got)
	}
}

func TestPointerStream_DisconnectEndsDrag(t *testing.T) {
	app := newTestApp(t, 2000)
	cookie := app.login(t, "alice")
	sofa := app.placeSofa(t, cookie)
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	ws := dialPointer(t, srv, cookie)
	exchange(t, ws, pointerMessage{Type: pointerDown, ID: sofa.InstanceID, X: 90, Y: 90})
	ws.Close()

	deadline := time.Now().Add(2 * time.Second)
	for app.items(t, cookie).Mode != "selected" {
		if time.Now().After(deadline) {
			t.Fatal("drag still active after the socket closed")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Package components renders the page fragments that SSE events replace in
// place: the HUD, the room canvas and the assistant chat.
package components

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"cozycorner/internal/viewmodel"
)

func esc(s string) string {
	return templ.EscapeString(s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// fragment adapts a string builder into a templ.Component.
func fragment(build func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Shell wraps body in the document head shared by every page.
func Shell(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + esc(title) + `</title>` +
			`<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bulma@0.9.4/css/bulma.min.css">` +
			`<link rel="stylesheet" href="/static/style.css">` +
			`</head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<script src="/static/app.js"></script></body></html>`)
		return err
	})
}

// HUD renders the player header and, in the room, the inventory bar.
func HUD(data viewmodel.HUD) templ.Component {
	return fragment(func(b *strings.Builder) {
		b.WriteString(`<nav class="level hud box">`)
		b.WriteString(`<div class="level-left"><div class="level-item">`)
		b.WriteString(`<span class="avatar">` + esc(data.Initial) + `</span>`)
		b.WriteString(`<div><p class="has-text-weight-bold">` + esc(data.Username) + `</p>`)
		b.WriteString(`<p class="is-size-7">Level ` + itoa(data.Level) + `</p></div>`)
		b.WriteString(`</div></div>`)
		b.WriteString(`<div class="level-right"><div class="level-item">`)
		b.WriteString(`<span class="tag is-warning is-medium">` + itoa(data.Currency) + ` coins</span>`)
		b.WriteString(`</div><div class="level-item">`)
		b.WriteString(`<form method="POST" action="/logout"><button type="submit" class="button is-small is-light">Log out</button></form>`)
		b.WriteString(`</div></div></nav>`)

		if !data.ShowInventory {
			return
		}
		b.WriteString(`<div class="inventory-bar box">`)
		if len(data.Inventory) == 0 {
			b.WriteString(`<p class="help">Your inventory is empty. Visit the store to buy furniture.</p>`)
		}
		for _, slot := range data.Inventory {
			b.WriteString(`<button type="button" class="button inventory-slot" data-action="pending" data-index="` + itoa(slot.Index) + `" title="` + esc(slot.Name) + `">`)
			b.WriteString(`<span class="swatch" style="background:` + esc(slot.Color) + `"></span>`)
			b.WriteString(esc(slot.Name) + `</button>`)
		}
		b.WriteString(`</div>`)
	})
}

// Nav renders the bottom navigation dock.
func Nav(links []viewmodel.NavLink) templ.Component {
	return fragment(func(b *strings.Builder) {
		b.WriteString(`<nav class="tabs is-centered is-boxed dock"><ul>`)
		for _, link := range links {
			class := ""
			if link.Active {
				class = ` class="is-active"`
			}
			b.WriteString(`<li` + class + `><a href="` + esc(link.Href) + `">` + esc(link.Label) + `</a></li>`)
		}
		b.WriteString(`</ul></nav>`)
	})
}

// Canvas renders the room grid and every placed item in draw order.
func Canvas(data viewmodel.CanvasFragment) templ.Component {
	return fragment(func(b *strings.Builder) {
		cell := itoa(data.CellSize)
		b.WriteString(`<div id="canvas-area" class="room-canvas" data-mode="` + esc(data.Mode) + `" data-cell="` + cell + `"`)
		b.WriteString(` style="width:` + itoa(data.WidthPx) + `px;height:` + itoa(data.HeightPx) + `px;background-size:` + cell + `px ` + cell + `px;">`)
		for _, item := range data.Items {
			class := "room-item"
			if item.Selected {
				class += " is-selected"
			}
			b.WriteString(`<div class="` + class + `" data-id="` + esc(item.InstanceID) + `" title="` + esc(item.Name) + `"`)
			b.WriteString(` style="left:` + itoa(item.Left) + `px;top:` + itoa(item.Top) + `px;width:` + itoa(item.Width) + `px;height:` + itoa(item.Height) + `px;z-index:` + itoa(item.Depth) + `;">`)
			b.WriteString(`<div class="room-item-body" style="background:` + esc(item.Color) + `;transform:rotate(` + itoa(item.Rotation) + `deg);">`)
			b.WriteString(`<span class="room-icon">` + esc(item.Icon) + `</span></div>`)
			if item.Selected {
				b.WriteString(`<div class="item-toolbar buttons has-addons">`)
				b.WriteString(`<button type="button" class="button is-small" data-action="rotate" data-id="` + esc(item.InstanceID) + `">Rotate</button>`)
				b.WriteString(`<button type="button" class="button is-small is-danger" data-action="remove" data-id="` + esc(item.InstanceID) + `">Remove</button>`)
				b.WriteString(`</div>`)
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
		if data.PendingName != "" {
			b.WriteString(`<div class="notification is-info is-light placing-banner">`)
			b.WriteString(`Click the room to place <strong>` + esc(data.PendingName) + `</strong>. `)
			b.WriteString(`<button type="button" class="button is-small" data-action="cancel-pending">Cancel</button></div>`)
		}
	})
}

// Chat renders the assistant conversation.
func Chat(data viewmodel.ChatFragment) templ.Component {
	return fragment(func(b *strings.Builder) {
		b.WriteString(`<div class="chat-log">`)
		for _, msg := range data.Messages {
			class := "chat-message is-model"
			if msg.FromUser {
				class = "chat-message is-user"
			}
			b.WriteString(`<div class="` + class + `"><p>` + esc(msg.Text) + `</p></div>`)
		}
		if data.Loading {
			b.WriteString(`<div class="chat-message is-model is-loading"><p>Thinking...</p></div>`)
		}
		b.WriteString(`</div>`)
	})
}

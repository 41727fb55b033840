package pages

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"cozycorner/internal/viewmodel"
	"cozycorner/views/components"
)

func esc(s string) string {
	return templ.EscapeString(s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// section renders a run of components and literal markup in order.
type section []any

func (s section) Render(ctx context.Context, w io.Writer) error {
	for _, part := range s {
		switch p := part.(type) {
		case string:
			if _, err := io.WriteString(w, p); err != nil {
				return err
			}
		case templ.Component:
			if err := p.Render(ctx, w); err != nil {
				return err
			}
		}
	}
	return nil
}

func game(layout viewmodel.Layout, stream string, content ...any) templ.Component {
	attrs := ""
	if stream != "" {
		attrs = ` data-stream="` + esc(stream) + `"`
	}
	body := section{`<div class="container app"` + attrs + `>`, `<div id="hud">`, components.HUD(layout.HUD), `</div>`}
	body = append(body, `<main class="view">`)
	body = append(body, content...)
	body = append(body, `</main>`, components.Nav(layout.Nav), `</div>`)
	return components.Shell(layout.Title, body)
}

// Login renders the entry form.
func Login(data viewmodel.LoginPage) templ.Component {
	var b strings.Builder
	b.WriteString(`<section class="hero is-fullheight login"><div class="hero-body"><div class="container has-text-centered">`)
	b.WriteString(`<h1 class="title is-2">CozyCorner</h1>`)
	b.WriteString(`<p class="subtitle">Decorate your own little room.</p>`)
	b.WriteString(`<form method="POST" action="/login" class="box login-box">`)
	if data.Error != "" {
		b.WriteString(`<div class="notification is-danger is-light">` + esc(data.Error) + `</div>`)
	}
	b.WriteString(`<div class="field"><label class="label" for="username">Your name</label>`)
	b.WriteString(`<div class="control"><input class="input" id="username" name="username" maxlength="20" value="` + esc(data.Username) + `" autofocus required></div></div>`)
	b.WriteString(`<button type="submit" class="button is-primary is-fullwidth">Start decorating</button>`)
	b.WriteString(`</form></div></div></section>`)
	return components.Shell("CozyCorner", section{b.String()})
}

// Room renders the decorating canvas with the assistant panel.
func Room(data viewmodel.RoomPage) templ.Component {
	return game(data.Layout, "/room/stream",
		`<div class="columns">`,
		`<div class="column is-two-thirds"><div id="canvas">`, components.Canvas(data.Canvas), `</div></div>`,
		`<div class="column"><div class="box assistant"><h2 class="subtitle">CozyBot</h2>`,
		`<div id="chat">`, components.Chat(data.Chat), `</div>`,
		`<form id="chat-form" class="field has-addons mt-3">`,
		`<div class="control is-expanded"><input class="input" name="question" placeholder="Ask for decorating tips" autocomplete="off"></div>`,
		`<div class="control"><button type="submit" class="button is-link">Ask</button></div>`,
		`</form></div></div>`,
		`</div>`,
	)
}

// Store renders the shop grid.
func Store(data viewmodel.StorePage) templ.Component {
	var b strings.Builder
	b.WriteString(`<div class="tabs is-toggle is-small store-tabs"><ul>`)
	for _, tab := range data.Tabs {
		class := ""
		if tab.Active {
			class = ` class="is-active"`
		}
		b.WriteString(`<li` + class + `><a href="/store?category=` + esc(tab.Value) + `">` + esc(tab.Label) + `</a></li>`)
	}
	b.WriteString(`</ul></div>`)
	if data.Notice != "" {
		b.WriteString(`<div class="notification is-info is-light">` + esc(data.Notice) + `</div>`)
	}
	active := ""
	for _, tab := range data.Tabs {
		if tab.Active {
			active = tab.Value
		}
	}
	b.WriteString(`<div class="columns is-multiline">`)
	for _, item := range data.Items {
		b.WriteString(`<div class="column is-one-third"><div class="card store-card"><div class="card-content">`)
		b.WriteString(`<div class="store-swatch" style="background:` + esc(item.Color) + `"></div>`)
		b.WriteString(`<p class="title is-5">` + esc(item.Name) + `</p>`)
		b.WriteString(`<p class="is-size-7">` + esc(item.Description) + `</p>`)
		b.WriteString(`<div class="tags mt-2"><span class="tag">` + esc(item.Category) + `</span>`)
		b.WriteString(`<span class="tag is-warning">` + itoa(item.Price) + ` coins</span>`)
		if item.Owned > 0 {
			b.WriteString(`<span class="tag is-success">Owned: ` + itoa(item.Owned) + `</span>`)
		}
		b.WriteString(`</div>`)
		b.WriteString(`<form method="POST" action="/store/buy">`)
		b.WriteString(`<input type="hidden" name="item" value="` + esc(item.ID) + `">`)
		b.WriteString(`<input type="hidden" name="category" value="` + esc(active) + `">`)
		if item.CanAfford {
			b.WriteString(`<button type="submit" class="button is-primary is-small">Buy</button>`)
		} else {
			b.WriteString(`<button type="submit" class="button is-small" disabled>Too Expensive</button>`)
		}
		b.WriteString(`</form></div></div></div>`)
	}
	b.WriteString(`</div>`)
	return game(data.Layout, "", b.String())
}

// Profile renders stats, the collection breakdown and achievements.
func Profile(data viewmodel.ProfilePage) templ.Component {
	var b strings.Builder
	b.WriteString(`<div class="box profile-card"><div class="media"><div class="media-left"><span class="avatar is-large">` + esc(data.Initial) + `</span></div>`)
	b.WriteString(`<div class="media-content"><p class="title is-4">` + esc(data.Username) + `</p>`)
	b.WriteString(`<p class="subtitle is-6">Level ` + itoa(data.Level) + ` decorator, joined ` + esc(data.Joined) + `</p>`)
	b.WriteString(`<p>` + itoa(data.ItemCount) + ` items in the room</p></div></div></div>`)

	b.WriteString(`<div class="box"><h2 class="subtitle">Collection</h2>`)
	for _, stat := range data.Stats {
		b.WriteString(`<div class="stat-row"><span class="stat-label">` + esc(stat.Label) + ` (` + itoa(stat.Count) + `)</span>`)
		b.WriteString(`<progress class="progress ` + esc(stat.Color) + `" value="` + itoa(stat.Percent) + `" max="100">` + itoa(stat.Percent) + `%</progress></div>`)
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="box"><h2 class="subtitle">Achievements</h2><div class="columns is-multiline">`)
	for _, a := range data.Achievements {
		class := "achievement"
		if !a.Unlocked {
			class += " is-locked"
		}
		b.WriteString(`<div class="column is-half"><div class="` + class + `">`)
		b.WriteString(`<span class="achievement-icon">` + esc(a.Icon) + `</span>`)
		b.WriteString(`<div><p class="has-text-weight-bold">` + esc(a.Title) + `</p><p class="is-size-7">` + esc(a.Description) + `</p></div>`)
		b.WriteString(`</div></div>`)
	}
	b.WriteString(`</div></div>`)
	return game(data.Layout, "", b.String())
}

// Admin renders the dashboard.
func Admin(data viewmodel.AdminPage) templ.Component {
	var b strings.Builder
	b.WriteString(`<div class="columns is-multiline">`)
	for _, card := range data.Cards {
		b.WriteString(`<div class="column is-one-quarter"><div class="box stat-card">`)
		b.WriteString(`<p class="heading">` + esc(card.Label) + `</p>`)
		b.WriteString(`<p class="title is-4">` + esc(card.Value) + `</p>`)
		b.WriteString(`<p class="is-size-7 ` + esc(card.Color) + `">` + esc(card.Trend) + `</p>`)
		b.WriteString(`</div></div>`)
	}
	b.WriteString(`</div><div class="columns">`)
	writeChart(&b, "Revenue", "bar-chart", data.Revenue)
	writeChart(&b, "User Growth", "line-chart", data.Users)
	b.WriteString(`</div>`)

	b.WriteString(`<div class="box"><h2 class="subtitle">Recent Transactions</h2>`)
	b.WriteString(`<table class="table is-fullwidth is-striped"><thead><tr><th>User</th><th>Item</th><th>Amount</th><th>Status</th></tr></thead><tbody>`)
	for _, tx := range data.Transactions {
		b.WriteString(`<tr><td>` + esc(tx.User) + `</td><td>` + esc(tx.Item) + `</td><td>` + esc(tx.Amount) + `</td><td>` + esc(tx.Status) + `</td></tr>`)
	}
	b.WriteString(`</tbody></table></div>`)
	return game(data.Layout, "", b.String())
}

func writeChart(b *strings.Builder, title, class string, bars []viewmodel.Bar) {
	b.WriteString(`<div class="column"><div class="box"><h2 class="subtitle">` + esc(title) + `</h2>`)
	b.WriteString(`<div class="chart ` + class + `">`)
	for _, bar := range bars {
		b.WriteString(`<div class="chart-column" title="` + itoa(bar.Value) + `">`)
		b.WriteString(`<div class="chart-bar" style="height:` + itoa(bar.Percent) + `%"></div>`)
		b.WriteString(`<span class="chart-label">` + esc(bar.Label) + `</span></div>`)
	}
	b.WriteString(`</div></div></div>`)
}

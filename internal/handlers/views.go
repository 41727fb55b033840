package handlers

import (
	"cozycorner/internal/advisor"
	"cozycorner/internal/config"
	"cozycorner/internal/profile"
	"cozycorner/internal/session"
	"cozycorner/internal/viewmodel"
)

var navViews = []struct {
	view  profile.View
	label string
}{
	{profile.ViewRoom, "My Room"},
	{profile.ViewStore, "Store"},
	{profile.ViewProfile, "Profile"},
	{profile.ViewAdmin, "Admin"},
}

func buildLayout(title string, snap session.Snapshot) viewmodel.Layout {
	p := snap.Profile
	hud := viewmodel.HUD{
		Username:      p.Username,
		Initial:       p.Initial(),
		Level:         p.Level,
		Currency:      p.Currency,
		ShowInventory: snap.View == profile.ViewRoom,
	}
	if hud.ShowInventory {
		hud.Inventory = make([]viewmodel.InventorySlot, 0, len(p.Inventory))
		for i, def := range p.Inventory {
			hud.Inventory = append(hud.Inventory, viewmodel.InventorySlot{Index: i, Name: def.Name, Color: def.Color})
		}
	}

	nav := make([]viewmodel.NavLink, 0, len(navViews))
	for _, entry := range navViews {
		if !p.CanView(entry.view) {
			continue
		}
		nav = append(nav, viewmodel.NavLink{
			Href:   viewPath(entry.view),
			Label:  entry.label,
			Active: entry.view == snap.View,
		})
	}
	return viewmodel.Layout{Title: title, HUD: hud, Nav: nav}
}

func buildCanvas(snap session.Snapshot, room config.RoomConfig) viewmodel.CanvasFragment {
	cell := snap.CellSize
	data := viewmodel.CanvasFragment{
		CellSize: cell,
		WidthPx:  room.Width * cell,
		HeightPx: room.Height * cell,
		Mode:     snap.Mode.String(),
		Items:    make([]viewmodel.CanvasItem, 0, len(snap.Items)),
	}
	if snap.Pending != nil {
		data.PendingName = snap.Pending.Name
	}
	for _, d := range snap.Items {
		item := d.Item
		data.Items = append(data.Items, viewmodel.CanvasItem{
			InstanceID: item.InstanceID,
			Name:       item.Name,
			Color:      item.Color,
			Icon:       item.Icon,
			Left:       item.X * cell,
			Top:        item.Y * cell,
			Width:      item.Width * cell,
			Height:     item.Height * cell,
			Rotation:   int(item.Rotation),
			Depth:      d.Depth,
			Selected:   d.Selected,
		})
	}
	return data
}

func buildChat(snap session.Snapshot) viewmodel.ChatFragment {
	data := viewmodel.ChatFragment{
		Messages: make([]viewmodel.ChatMessage, 0, len(snap.Messages)),
		Loading:  snap.Loading,
	}
	for _, msg := range snap.Messages {
		data.Messages = append(data.Messages, viewmodel.ChatMessage{
			FromUser: msg.Speaker == advisor.SpeakerUser,
			Text:     msg.Text,
		})
	}
	return data
}

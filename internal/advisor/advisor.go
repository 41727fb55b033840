// Package advisor answers decorating questions about the current room.
// The generative backend is swappable; callers only see Advisor.
package advisor

import "context"

// Fixed replies returned instead of errors.
const (
	UnconfiguredMessage = "Please configure your API Key to use the AI Interior Designer."
	FailureMessage      = "I'm having trouble seeing your room right now. Please try again later."
	EmptyReplyMessage   = "I couldn't think of anything right now, try moving some furniture!"
	GreetingMessage     = "Hi! I'm CozyBot. Need help decorating your room?"
)

// RoomItem is the part of a placed item the advisor sees.
type RoomItem struct {
	Name  string
	Color string
	X     int
	Y     int
}

// Advisor produces advice text for a room and a question. It never fails;
// problems come back as one of the fixed replies.
type Advisor interface {
	Advise(ctx context.Context, room []RoomItem, question string) string
}

// Func adapts a function to Advisor.
type Func func(ctx context.Context, room []RoomItem, question string) string

// Advise calls f.
func (f Func) Advise(ctx context.Context, room []RoomItem, question string) string {
	return f(ctx, room, question)
}

// Unconfigured answers every question with the configuration prompt.
func Unconfigured() Advisor {
	return Func(func(context.Context, []RoomItem, string) string {
		return UnconfiguredMessage
	})
}

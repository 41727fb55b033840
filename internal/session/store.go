package session

import (
	"time"

	"github.com/google/uuid"

	"cozycorner/internal/advisor"
	"cozycorner/internal/placement"
	"cozycorner/internal/profile"
	"cozycorner/pkg/realtime"
)

// Events published when part of a session's page changes.
const (
	EventCanvas realtime.Event = "canvas"
	EventChat   realtime.Event = "chat"
	EventHUD    realtime.Event = "hud"
)

// Options configures new sessions.
type Options struct {
	CellSize       int
	Advisor        advisor.Advisor
	AdvisorTimeout time.Duration
}

// Store holds sessions and delegates to realtime.RoomStore for lookup and broadcast.
type Store struct {
	r    *realtime.RoomStore[*Session]
	opts Options
}

// NewStore creates an in-memory session store with SSE broadcasters.
func NewStore(opts Options) *Store {
	if opts.CellSize <= 0 {
		opts.CellSize = placement.DefaultCellSize
	}
	if opts.Advisor == nil {
		opts.Advisor = advisor.Unconfigured()
	}
	return &Store{r: realtime.NewRoomStore[*Session](), opts: opts}
}

// Create starts a session for p with an empty room.
func (s *Store) Create(p *profile.Profile) *Session {
	id := uuid.NewString()
	sess := &Session{
		ID:      id,
		profile: p,
		engine:  placement.NewEngine(placement.WithCellSize(s.opts.CellSize)),
		view:    p.HomeView(),
	}
	sess.chat = advisor.NewChat(s.opts.Advisor, s.opts.AdvisorTimeout, func() {
		s.Publish(id, EventChat)
	})
	s.r.Create(id, sess)
	return sess
}

// Get returns a session by ID if it exists.
func (s *Store) Get(id string) (*Session, bool) {
	room, ok := s.r.Get(id)
	if !ok {
		return nil, false
	}
	return room.State, true
}

// Delete discards the session and its room, ending its event streams.
func (s *Store) Delete(id string) bool {
	room, ok := s.r.Get(id)
	if !ok {
		return false
	}
	room.State.close()
	return s.r.Delete(id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.r.Len()
}

// Broadcaster returns the SSE broadcaster for a session.
func (s *Store) Broadcaster(id string) (*realtime.Broadcaster, bool) {
	return s.r.Broadcaster(id)
}

// Publish notifies subscribers of a session update with a typed event.
func (s *Store) Publish(id string, event realtime.Event) {
	s.r.Publish(id, event)
}

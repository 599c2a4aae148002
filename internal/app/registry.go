package app

import (
	"context"
	"sync"

	"github.com/dkeye/Broadcast/internal/core"
	"github.com/dkeye/Broadcast/internal/domain"
	"github.com/rs/zerolog/log"
)

type connEntry struct {
	Signal core.SignalConnection
	Cancel context.CancelFunc
	// Rooms is the reverse index used for O(1) disconnect cleanup:
	// which streams this connection participates in, and as what.
	Rooms map[domain.RoomID]domain.Role
}

// Registry tracks live signaling connections. It owns no stream state;
// that belongs to core.StreamRegistry.
type Registry struct {
	mu    sync.RWMutex
	conns map[domain.ConnID]*connEntry
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[domain.ConnID]*connEntry)}
}

func (r *Registry) Bind(cid domain.ConnID, sig core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[cid] = &connEntry{
		Signal: sig,
		Cancel: cancel,
		Rooms:  make(map[domain.RoomID]domain.Role),
	}
	log.Info().Str("module", "app.registry").Str("conn", string(cid)).Msg("bound connection")
}

func (r *Registry) Unbind(cid domain.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, cid)
	log.Info().Str("module", "app.registry").Str("conn", string(cid)).Msg("unbound connection")
}

func (r *Registry) Signal(cid domain.ConnID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.conns[cid]; ok {
		return e.Signal, true
	}
	return nil, false
}

func (r *Registry) SetRole(cid domain.ConnID, room domain.RoomID, role domain.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.conns[cid]; ok {
		e.Rooms[room] = role
		log.Info().Str("module", "app.registry").Str("conn", string(cid)).Str("stream", string(room)).Stringer("role", role).Msg("set role")
	}
}

func (r *Registry) ClearRole(cid domain.ConnID, room domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.conns[cid]; ok {
		delete(e.Rooms, room)
	}
}

// RoomsOf returns a copy of the connection's stream memberships.
func (r *Registry) RoomsOf(cid domain.ConnID) map[domain.RoomID]domain.Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.conns[cid]
	if !ok {
		return nil
	}
	out := make(map[domain.RoomID]domain.Role, len(e.Rooms))
	for room, role := range e.Rooms {
		out[room] = role
	}
	return out
}

func (r *Registry) Cancel(cid domain.ConnID) bool {
	r.mu.RLock()
	e, ok := r.conns[cid]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("conn", string(cid)).Msg("canceled connection")
	return true
}

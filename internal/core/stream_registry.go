package core

import (
	"sync"

	"github.com/dkeye/Broadcast/internal/domain"
	"github.com/rs/zerolog/log"
)

type registryImpl struct {
	mu      sync.RWMutex
	streams map[domain.RoomID]StreamState
}

func NewStreamRegistry() StreamRegistry {
	return &registryImpl{streams: make(map[domain.RoomID]StreamState)}
}

func (r *registryImpl) Create(id domain.RoomID, publisher domain.ConnID) StreamState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.streams[id]; ok {
		// Compatible with the legacy coordinator: a second publisher
		// claiming the same id replaces the stream and its viewer set.
		log.Warn().Str("module", "core.registry").Str("stream", string(id)).
			Str("old_publisher", string(prev.Publisher())).
			Str("new_publisher", string(publisher)).
			Msg("stream overwritten by new publisher")
	}
	st := NewStreamState(id, publisher)
	r.streams[id] = st
	log.Info().Str("module", "core.registry").Str("stream", string(id)).Str("publisher", string(publisher)).Msg("stream created")
	return st
}

func (r *registryImpl) Get(id domain.RoomID) (StreamState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.streams[id]
	return st, ok
}

func (r *registryImpl) Delete(id domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.streams[id]; ok {
		st.SetLive(false)
	}
	delete(r.streams, id)
	log.Info().Str("module", "core.registry").Str("stream", string(id)).Msg("stream deleted")
}

func (r *registryImpl) List() []StreamInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]StreamInfo, 0, len(r.streams))
	for id, st := range r.streams {
		out = append(out, StreamInfo{ID: id, Viewers: st.ViewerCount(), Live: st.IsLive()})
	}
	return out
}

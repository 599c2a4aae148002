package core

import (
	"sync"

	"github.com/dkeye/Broadcast/internal/domain"
)

// streamImpl is a threadsafe in-memory stream.
// It never closes adapter-owned resources.
type streamImpl struct {
	id        domain.RoomID
	publisher domain.ConnID

	mu      sync.RWMutex
	viewers map[domain.ConnID]struct{}
	live    bool
}

func NewStreamState(id domain.RoomID, publisher domain.ConnID) StreamState {
	return &streamImpl{
		id:        id,
		publisher: publisher,
		viewers:   make(map[domain.ConnID]struct{}),
	}
}

func (s *streamImpl) ID() domain.RoomID        { return s.id }
func (s *streamImpl) Publisher() domain.ConnID { return s.publisher }

func (s *streamImpl) IsPublisher(cid domain.ConnID) bool { return s.publisher == cid }

func (s *streamImpl) AddViewer(cid domain.ConnID) bool {
	if cid == s.publisher {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewers[cid] = struct{}{}
	return true
}

func (s *streamImpl) RemoveViewer(cid domain.ConnID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.viewers[cid]
	delete(s.viewers, cid)
	return ok
}

func (s *streamImpl) HasViewer(cid domain.ConnID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.viewers[cid]
	return ok
}

func (s *streamImpl) ViewerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.viewers)
}

func (s *streamImpl) ViewersSnapshot() []domain.ConnID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ConnID, 0, len(s.viewers))
	for cid := range s.viewers {
		out = append(out, cid)
	}
	return out
}

func (s *streamImpl) SetLive(live bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live = live
}

func (s *streamImpl) IsLive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live
}

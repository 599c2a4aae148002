package core

import "github.com/dkeye/Broadcast/internal/domain"

// StreamState is the core-facing API of one broadcast stream: exactly one
// publisher, a set of viewers, a live flag. It owns the membership set but
// never touches transport resources.
type StreamState interface {
	ID() domain.RoomID
	Publisher() domain.ConnID
	IsPublisher(domain.ConnID) bool

	// AddViewer reports false when the connection is the stream's own
	// publisher, which must never appear in the viewer set.
	AddViewer(domain.ConnID) bool
	// RemoveViewer reports whether the connection was a viewer.
	RemoveViewer(domain.ConnID) bool
	HasViewer(domain.ConnID) bool
	ViewerCount() int
	// ViewersSnapshot copies the membership so callers can fan out
	// without holding the stream lock.
	ViewersSnapshot() []domain.ConnID

	SetLive(bool)
	IsLive() bool
}

// StreamInfo is a read-only view for APIs (no transport fields).
type StreamInfo struct {
	ID      domain.RoomID `json:"id"`
	Viewers int           `json:"viewers"`
	Live    bool          `json:"live"`
}

// StreamRegistry owns stream lifecycle: created when a publisher claims a
// room id, deleted when that publisher disconnects.
type StreamRegistry interface {
	// Create inserts a stream for id with the given publisher and no
	// viewers. An existing entry for id is silently replaced.
	Create(id domain.RoomID, publisher domain.ConnID) StreamState
	Get(id domain.RoomID) (StreamState, bool)
	Delete(id domain.RoomID)
	List() []StreamInfo
}

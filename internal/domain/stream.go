// Package domain contains entity without logic, just meta-data
package domain

import "errors"

type (
	// RoomID is the caller-supplied stream key. The core enforces no
	// format constraints on it.
	RoomID string

	// ConnID identifies one live signaling connection. Minted on
	// connect, dead after disconnect, never reused.
	ConnID string
)

var (
	ErrStreamNotFound = errors.New("stream not found")
	ErrNotPublisher   = errors.New("connection is not the publisher")
	ErrNotViewer      = errors.New("connection is not a viewer")
)

// Role is a connection's part in a stream.
type Role int8

const (
	RolePublisher Role = iota
	RoleViewer
)

func (r Role) String() string {
	switch r {
	case RolePublisher:
		return "publisher"
	case RoleViewer:
		return "viewer"
	}
	return "unknown"
}

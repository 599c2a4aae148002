package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkeye/Broadcast/internal/domain"
)

// Kind tags an inbound client message.
type Kind string

const (
	KindJoinPublisher Kind = "join-as-publisher"
	KindJoinViewer    Kind = "join-as-viewer"
	KindOffer         Kind = "webrtc-offer"
	KindAnswer        Kind = "webrtc-answer"
	KindCandidate     Kind = "ice-candidate"
	KindStartStream   Kind = "start-stream"
	KindStopStream    Kind = "stop-stream"
	KindLeaveRoom     Kind = "leave-room"
	KindPing          Kind = "ping"
)

// Outbound event names.
const (
	EventPublisherJoined       = "publisher-joined"
	EventViewerJoined          = "viewer-joined"
	EventViewerConnected       = "viewer-connected"
	EventOffer                 = "webrtc-offer"
	EventAnswer                = "webrtc-answer"
	EventCandidate             = "ice-candidate"
	EventStreamStarted         = "stream-started"
	EventStreamStopped         = "stream-stopped"
	EventPublisherDisconnected = "publisher-disconnected"
	EventViewerDisconnected    = "viewer-disconnected"
	EventError                 = "error"
	EventPong                  = "pong"
)

// MsgStreamNotFound is the only error text clients ever see; it is part of
// the wire contract with the publisher/viewer pages.
const MsgStreamNotFound = "Stream not found"

var ErrMalformed = errors.New("malformed signal message")

// Message is the decoded inbound envelope. Only the fields required by its
// Kind are populated; negotiation blobs stay raw.
type Message struct {
	Kind      Kind            `json:"type"`
	Room      domain.RoomID   `json:"roomId"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}

// Decode parses and validates one client frame. Anything that fails here is
// dropped by the caller with no notification to the sender.
func Decode(data []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch m.Kind {
	case KindPing:
	case KindJoinPublisher, KindJoinViewer, KindStartStream, KindStopStream, KindLeaveRoom:
		if m.Room == "" {
			return nil, fmt.Errorf("%w: %s without roomId", ErrMalformed, m.Kind)
		}
	case KindOffer:
		if m.Room == "" || len(m.Offer) == 0 {
			return nil, fmt.Errorf("%w: incomplete offer", ErrMalformed)
		}
	case KindAnswer:
		if m.Room == "" || len(m.Answer) == 0 {
			return nil, fmt.Errorf("%w: incomplete answer", ErrMalformed)
		}
	case KindCandidate:
		if m.Room == "" || len(m.Candidate) == 0 {
			return nil, fmt.Errorf("%w: incomplete candidate", ErrMalformed)
		}
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrMalformed, string(m.Kind))
	}
	return &m, nil
}

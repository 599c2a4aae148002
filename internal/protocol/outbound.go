package protocol

import (
	"encoding/json"

	"github.com/dkeye/Broadcast/internal/core"
	"github.com/dkeye/Broadcast/internal/domain"
	"github.com/rs/zerolog/log"
)

// encode marshals once so a fan-out reuses the same bytes. A nil frame is
// skipped by senders.
func encode(v any) core.Frame {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "protocol").Msg("encode outbound")
		return nil
	}
	return b
}

type roomEvent struct {
	Type string        `json:"type"`
	Room domain.RoomID `json:"roomId"`
}

func PublisherJoined(room domain.RoomID) core.Frame {
	return encode(roomEvent{Type: EventPublisherJoined, Room: room})
}

func ViewerJoined(room domain.RoomID) core.Frame {
	return encode(roomEvent{Type: EventViewerJoined, Room: room})
}

func StreamStarted(room domain.RoomID) core.Frame {
	return encode(roomEvent{Type: EventStreamStarted, Room: room})
}

func StreamStopped(room domain.RoomID) core.Frame {
	return encode(roomEvent{Type: EventStreamStopped, Room: room})
}

func ViewerConnected(viewer domain.ConnID) core.Frame {
	return encode(struct {
		Type   string        `json:"type"`
		Viewer domain.ConnID `json:"viewerId"`
	}{EventViewerConnected, viewer})
}

func Offer(offer json.RawMessage, publisher domain.ConnID) core.Frame {
	return encode(struct {
		Type      string          `json:"type"`
		Offer     json.RawMessage `json:"offer"`
		Publisher domain.ConnID   `json:"publisherId"`
	}{EventOffer, offer, publisher})
}

func Answer(answer json.RawMessage, viewer domain.ConnID) core.Frame {
	return encode(struct {
		Type   string          `json:"type"`
		Answer json.RawMessage `json:"answer"`
		Viewer domain.ConnID   `json:"viewerId"`
	}{EventAnswer, answer, viewer})
}

func CandidateFromPublisher(candidate json.RawMessage) core.Frame {
	return encode(struct {
		Type          string          `json:"type"`
		Candidate     json.RawMessage `json:"candidate"`
		FromPublisher bool            `json:"fromPublisher"`
	}{EventCandidate, candidate, true})
}

func CandidateFromViewer(candidate json.RawMessage, viewer domain.ConnID) core.Frame {
	return encode(struct {
		Type          string          `json:"type"`
		Candidate     json.RawMessage `json:"candidate"`
		FromPublisher bool            `json:"fromPublisher"`
		Viewer        domain.ConnID   `json:"viewerId"`
	}{EventCandidate, candidate, false, viewer})
}

// ViewerDisconnected is not emitted by the default flows: neither explicit
// leave nor transport disconnect tells the publisher about a viewer
// departure. It exists for deployments that opt into symmetric departure
// notification.
func ViewerDisconnected(viewer domain.ConnID) core.Frame {
	return encode(struct {
		Type   string        `json:"type"`
		Viewer domain.ConnID `json:"viewerId"`
	}{EventViewerDisconnected, viewer})
}

func PublisherDisconnected() core.Frame {
	return encode(struct {
		Type string `json:"type"`
	}{EventPublisherDisconnected})
}

func Error(msg string) core.Frame {
	return encode(struct {
		Type  string `json:"type"`
		Error string `json:"error"`
	}{EventError, msg})
}

func Pong() core.Frame {
	return encode(struct {
		Type string `json:"type"`
	}{EventPong})
}

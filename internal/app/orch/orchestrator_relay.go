package orch

import (
	"encoding/json"

	"github.com/dkeye/Broadcast/internal/domain"
	"github.com/dkeye/Broadcast/internal/protocol"
	"github.com/rs/zerolog/log"
)

// The relay forwards negotiation payloads verbatim. Wrong room, wrong role,
// missing stream: the message is dropped and the sender hears nothing.

// RelayOffer fans a publisher's offer out to every viewer of the stream.
func (o *Orchestrator) RelayOffer(cid domain.ConnID, room domain.RoomID, offer json.RawMessage) {
	st, ok := o.Streams.Get(room)
	if !ok || !st.IsPublisher(cid) {
		log.Debug().Str("module", "orch").Str("conn", string(cid)).Str("stream", string(room)).Msg("offer dropped")
		return
	}
	o.notifyStream(st, cid, protocol.Offer(offer, cid))
}

// RelayAnswer forwards a viewer's answer, tagged with the viewer's id, to
// the rest of the stream (in a single-publisher stream, the publisher).
func (o *Orchestrator) RelayAnswer(cid domain.ConnID, room domain.RoomID, answer json.RawMessage) {
	st, ok := o.Streams.Get(room)
	if !ok || !st.HasViewer(cid) {
		log.Debug().Str("module", "orch").Str("conn", string(cid)).Str("stream", string(room)).Msg("answer dropped")
		return
	}
	o.notifyStream(st, cid, protocol.Answer(answer, cid))
}

// RelayCandidate routes ICE candidates by sender role: publisher candidates
// go to the viewers, viewer candidates go back tagged with the viewer's id.
func (o *Orchestrator) RelayCandidate(cid domain.ConnID, room domain.RoomID, candidate json.RawMessage) {
	st, ok := o.Streams.Get(room)
	if !ok {
		return
	}
	switch {
	case st.IsPublisher(cid):
		o.notifyStream(st, cid, protocol.CandidateFromPublisher(candidate))
	case st.HasViewer(cid):
		o.notifyStream(st, cid, protocol.CandidateFromViewer(candidate, cid))
	default:
		log.Debug().Str("module", "orch").Str("conn", string(cid)).Str("stream", string(room)).Msg("candidate dropped")
	}
}

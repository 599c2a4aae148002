package orch

import (
	"github.com/dkeye/Broadcast/internal/core"
	"github.com/dkeye/Broadcast/internal/domain"
	"github.com/dkeye/Broadcast/internal/protocol"
	"github.com/rs/zerolog/log"
)

// JoinAsPublisher claims a stream id for the connection. An already-claimed
// id is replaced, legacy-coordinator style; the replaced stream's viewers
// are told the publisher is gone so they don't wait on a dead negotiation.
func (o *Orchestrator) JoinAsPublisher(cid domain.ConnID, room domain.RoomID) {
	if prev, ok := o.Streams.Get(room); ok {
		gone := protocol.PublisherDisconnected()
		for _, v := range prev.ViewersSnapshot() {
			o.sendTo(v, gone)
			o.Registry.ClearRole(v, room)
		}
		o.Registry.ClearRole(prev.Publisher(), room)
	}
	o.Streams.Create(room, cid)
	o.Registry.SetRole(cid, room, domain.RolePublisher)
	o.sendTo(cid, protocol.PublisherJoined(room))
	log.Info().Str("module", "orch").Str("conn", string(cid)).Str("stream", string(room)).Msg("publisher joined")
}

// JoinAsViewer adds the connection to an existing stream's audience. A
// missing stream is the one error clients are told about.
func (o *Orchestrator) JoinAsViewer(cid domain.ConnID, room domain.RoomID) {
	st, ok := o.Streams.Get(room)
	if !ok {
		log.Info().Str("module", "orch").Str("conn", string(cid)).Str("stream", string(room)).Msg("viewer join: stream not found")
		o.sendTo(cid, protocol.Error(protocol.MsgStreamNotFound))
		return
	}
	if !st.AddViewer(cid) {
		// The stream's own publisher cannot join its audience.
		return
	}
	o.Registry.SetRole(cid, room, domain.RoleViewer)
	o.sendTo(cid, protocol.ViewerJoined(room))
	o.notifyStream(st, cid, protocol.ViewerConnected(cid))
	log.Info().Str("module", "orch").Str("conn", string(cid)).Str("stream", string(room)).Msg("viewer joined")
}

func (o *Orchestrator) StartStream(cid domain.ConnID, room domain.RoomID) {
	o.setLive(cid, room, true)
}

func (o *Orchestrator) StopStream(cid domain.ConnID, room domain.RoomID) {
	o.setLive(cid, room, false)
}

// setLive flips the live flag. Only the stream's publisher may do this;
// anything else is ignored without notification.
func (o *Orchestrator) setLive(cid domain.ConnID, room domain.RoomID, live bool) {
	st, ok := o.Streams.Get(room)
	if !ok || !st.IsPublisher(cid) {
		return
	}
	st.SetLive(live)
	ev := protocol.StreamStopped(room)
	if live {
		ev = protocol.StreamStarted(room)
	}
	o.notifyStream(st, cid, ev)
	log.Info().Str("module", "orch").Str("stream", string(room)).Bool("live", live).Msg("stream liveness changed")
}

// LeaveStream drops the connection from the viewer set. Absent stream or
// absent membership is a no-op, so a double leave is harmless. A publisher
// calling leave keeps its stream; only disconnect ends a stream.
func (o *Orchestrator) LeaveStream(cid domain.ConnID, room domain.RoomID) {
	st, ok := o.Streams.Get(room)
	if !ok {
		return
	}
	o.removeViewer(st, cid, false)
	log.Info().Str("module", "orch").Str("conn", string(cid)).Str("stream", string(room)).Msg("left stream")
}

// removeViewer is the single removal path shared by explicit leave and
// disconnect. notify controls whether the stream hears about the departure;
// both built-in callers pass false, matching the legacy coordinator.
func (o *Orchestrator) removeViewer(st core.StreamState, cid domain.ConnID, notify bool) {
	if !st.RemoveViewer(cid) {
		return
	}
	o.Registry.ClearRole(cid, st.ID())
	if notify {
		o.notifyStream(st, cid, protocol.ViewerDisconnected(cid))
	}
}

// Disconnect tears down everything the connection participated in. Streams
// it published are deleted and every viewer gets exactly one
// publisher-disconnected; streams it viewed just lose the membership.
func (o *Orchestrator) Disconnect(cid domain.ConnID) {
	for room, role := range o.Registry.RoomsOf(cid) {
		st, ok := o.Streams.Get(room)
		if !ok {
			continue
		}
		switch role {
		case domain.RolePublisher:
			if !st.IsPublisher(cid) {
				continue
			}
			gone := protocol.PublisherDisconnected()
			for _, v := range st.ViewersSnapshot() {
				o.sendTo(v, gone)
				o.Registry.ClearRole(v, room)
			}
			o.Streams.Delete(room)
			log.Info().Str("module", "orch").Str("stream", string(room)).Msg("stream ended, publisher disconnected")
		case domain.RoleViewer:
			o.removeViewer(st, cid, false)
		}
	}
	o.Registry.Unbind(cid)
}

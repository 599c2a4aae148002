package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Broadcast/internal/domain"
	"github.com/dkeye/Broadcast/internal/protocol"
)

func (ctl *SignalWSController) handleJoinPublisher(cid domain.ConnID, msg *protocol.Message) {
	if !ctl.Limiter.Allow(cid) {
		log.Warn().Str("module", "signal").Str("conn", string(cid)).Msg("join rate limited")
		return
	}
	ctl.Orch.JoinAsPublisher(cid, msg.Room)
}

func (ctl *SignalWSController) handleJoinViewer(cid domain.ConnID, msg *protocol.Message) {
	if !ctl.Limiter.Allow(cid) {
		log.Warn().Str("module", "signal").Str("conn", string(cid)).Msg("join rate limited")
		return
	}
	ctl.Orch.JoinAsViewer(cid, msg.Room)
}

func (ctl *SignalWSController) handleStartStream(cid domain.ConnID, msg *protocol.Message) {
	ctl.Orch.StartStream(cid, msg.Room)
}

func (ctl *SignalWSController) handleStopStream(cid domain.ConnID, msg *protocol.Message) {
	ctl.Orch.StopStream(cid, msg.Room)
}

// handleLeave drops stream membership; the socket stays open.
func (ctl *SignalWSController) handleLeave(cid domain.ConnID, msg *protocol.Message) {
	ctl.Orch.LeaveStream(cid, msg.Room)
}

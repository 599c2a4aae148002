package signal

import (
	"github.com/dkeye/Broadcast/internal/domain"
	"github.com/dkeye/Broadcast/internal/protocol"
)

// Negotiation handlers hand the opaque payloads straight to the relay;
// role checks and routing happen there.

func (ctl *SignalWSController) handleOffer(cid domain.ConnID, msg *protocol.Message) {
	ctl.Orch.RelayOffer(cid, msg.Room, msg.Offer)
}

func (ctl *SignalWSController) handleAnswer(cid domain.ConnID, msg *protocol.Message) {
	ctl.Orch.RelayAnswer(cid, msg.Room, msg.Answer)
}

func (ctl *SignalWSController) handleCandidate(cid domain.ConnID, msg *protocol.Message) {
	ctl.Orch.RelayCandidate(cid, msg.Room, msg.Candidate)
}

// Package orch coordinates stream lifecycle and signal relay on top of the
// connection registry and the stream registry. Every method is one
// self-contained step: it reads or mutates registry state and emits zero or
// more outbound frames, never blocking on delivery.
package orch

import (
	"github.com/dkeye/Broadcast/internal/app"
	"github.com/dkeye/Broadcast/internal/core"
	"github.com/dkeye/Broadcast/internal/domain"
	"github.com/rs/zerolog/log"
)

type Orchestrator struct {
	Registry *app.Registry
	Streams  core.StreamRegistry
	Policy   app.Policy
}

// sendTo is fire-and-forget: a dead or absent connection loses the frame.
func (o *Orchestrator) sendTo(cid domain.ConnID, f core.Frame) {
	if f == nil {
		return
	}
	sig, ok := o.Registry.Signal(cid)
	if !ok {
		return
	}
	if err := sig.TrySend(f); err != nil {
		log.Warn().Err(err).Str("module", "orch").Str("conn", string(cid)).Msg("send failed")
		if o.Policy != nil && o.Policy.OnBackPressure(cid) == app.KickConn {
			o.Registry.Cancel(cid)
		}
	}
}

// notifyStream delivers one frame to every member of the stream except the
// sender, iterating a membership snapshot.
func (o *Orchestrator) notifyStream(st core.StreamState, from domain.ConnID, f core.Frame) {
	if pub := st.Publisher(); pub != from {
		o.sendTo(pub, f)
	}
	for _, v := range st.ViewersSnapshot() {
		if v != from {
			o.sendTo(v, f)
		}
	}
}

package signal

import "github.com/dkeye/Broadcast/internal/protocol"

func (ctl *SignalWSController) handlePing(conn *WsSignalConn) {
	_ = conn.TrySend(protocol.Pong())
}

package signal

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Broadcast/internal/domain"
	"github.com/dkeye/Broadcast/internal/protocol"
)

func (ctl *SignalWSController) writePump(ctx context.Context, c *WsSignalConn) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *SignalWSController) readPump(ctx context.Context, cid domain.ConnID, c *WsSignalConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("conn", string(cid)).Msg("readPump closing")
		ctl.Orch.Disconnect(cid)
		ctl.Limiter.Forget(cid)
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("conn", string(cid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Info().Err(err).Str("module", "signal").Str("conn", string(cid)).Msg("readPump read error")
				return
			}
			ctl.handleSignal(cid, c, data)
		}
	}
}

// handleSignal processes one inbound frame start to finish. Malformed
// frames are dropped here with no notification to the sender.
func (ctl *SignalWSController) handleSignal(cid domain.ConnID, c *WsSignalConn, data []byte) {
	msg, err := protocol.Decode(data)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("conn", string(cid)).Msg("dropped frame")
		return
	}

	switch msg.Kind {
	case protocol.KindJoinPublisher:
		ctl.handleJoinPublisher(cid, msg)
	case protocol.KindJoinViewer:
		ctl.handleJoinViewer(cid, msg)
	case protocol.KindOffer:
		ctl.handleOffer(cid, msg)
	case protocol.KindAnswer:
		ctl.handleAnswer(cid, msg)
	case protocol.KindCandidate:
		ctl.handleCandidate(cid, msg)
	case protocol.KindStartStream:
		ctl.handleStartStream(cid, msg)
	case protocol.KindStopStream:
		ctl.handleStopStream(cid, msg)
	case protocol.KindLeaveRoom:
		ctl.handleLeave(cid, msg)
	case protocol.KindPing:
		ctl.handlePing(c)
	}
}

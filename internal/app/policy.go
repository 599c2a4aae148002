package app

import "github.com/dkeye/Broadcast/internal/domain"

type BackpressureAction int

const (
	DropFrame BackpressureAction = iota
	KickConn
)

// Policy decides what to do with a connection whose send buffer is full
// during fan-out. Signaling traffic is tiny, so the default is to drop the
// frame and keep the connection.
type Policy interface {
	OnBackPressure(conn domain.ConnID) BackpressureAction
}

type DropPolicy struct{}

func (DropPolicy) OnBackPressure(domain.ConnID) BackpressureAction { return DropFrame }

// KickPolicy evicts slow consumers instead of letting them fall behind the
// negotiation exchange.
type KickPolicy struct{}

func (KickPolicy) OnBackPressure(domain.ConnID) BackpressureAction { return KickConn }

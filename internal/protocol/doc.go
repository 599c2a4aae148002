// Package protocol defines the signaling wire vocabulary: the inbound
// envelope sent by publisher/viewer clients and the outbound events the
// coordinator emits. Negotiation payloads (SDP offers/answers, ICE
// candidates) are opaque JSON relayed verbatim.
package protocol

package protocol

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		kind    Kind
	}{
		{
			name: "join as publisher",
			raw:  `{"type":"join-as-publisher","roomId":"r1"}`,
			kind: KindJoinPublisher,
		},
		{
			name: "join as viewer",
			raw:  `{"type":"join-as-viewer","roomId":"r1"}`,
			kind: KindJoinViewer,
		},
		{
			name: "offer with payload",
			raw:  `{"type":"webrtc-offer","roomId":"r1","offer":{"type":"offer","sdp":"v=0"}}`,
			kind: KindOffer,
		},
		{
			name: "answer with payload",
			raw:  `{"type":"webrtc-answer","roomId":"r1","answer":{"type":"answer","sdp":"v=0"}}`,
			kind: KindAnswer,
		},
		{
			name: "candidate with payload",
			raw:  `{"type":"ice-candidate","roomId":"r1","candidate":{"candidate":"candidate:1"}}`,
			kind: KindCandidate,
		},
		{
			name: "start stream",
			raw:  `{"type":"start-stream","roomId":"r1"}`,
			kind: KindStartStream,
		},
		{
			name: "leave room",
			raw:  `{"type":"leave-room","roomId":"r1"}`,
			kind: KindLeaveRoom,
		},
		{
			name: "ping needs no room",
			raw:  `{"type":"ping"}`,
			kind: KindPing,
		},
		{
			name:    "join without roomId",
			raw:     `{"type":"join-as-publisher"}`,
			wantErr: true,
		},
		{
			name:    "offer without payload",
			raw:     `{"type":"webrtc-offer","roomId":"r1"}`,
			wantErr: true,
		},
		{
			name:    "answer without roomId",
			raw:     `{"type":"webrtc-answer","answer":{}}`,
			wantErr: true,
		},
		{
			name:    "candidate without payload",
			raw:     `{"type":"ice-candidate","roomId":"r1"}`,
			wantErr: true,
		},
		{
			name:    "unknown type",
			raw:     `{"type":"subscribe","roomId":"r1"}`,
			wantErr: true,
		},
		{
			name:    "empty type",
			raw:     `{"roomId":"r1"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     `join r1`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode([]byte(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", msg)
				}
				if !errors.Is(err, ErrMalformed) {
					t.Fatalf("expected ErrMalformed, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if msg.Kind != tt.kind {
				t.Fatalf("kind = %q, want %q", msg.Kind, tt.kind)
			}
		})
	}
}

func TestDecodeKeepsPayloadVerbatim(t *testing.T) {
	raw := `{"type":"webrtc-offer","roomId":"r1","offer":{"sdp":"v=0\r\no=- 1 1 IN IP4 0.0.0.0","type":"offer"}}`
	msg, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	var got, want any
	if err := json.Unmarshal(msg.Offer, &got); err != nil {
		t.Fatalf("offer is not valid json: %v", err)
	}
	_ = json.Unmarshal([]byte(`{"sdp":"v=0\r\no=- 1 1 IN IP4 0.0.0.0","type":"offer"}`), &want)
	gotJSON, _ := json.Marshal(got)
	wantJSON, _ := json.Marshal(want)
	if string(gotJSON) != string(wantJSON) {
		t.Fatalf("offer payload altered: got %s want %s", gotJSON, wantJSON)
	}
}

func decodeFrame(t *testing.T, b []byte) map[string]any {
	t.Helper()
	if b == nil {
		t.Fatal("nil frame")
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("frame is not valid json: %v", err)
	}
	return m
}

func TestOutboundEvents(t *testing.T) {
	m := decodeFrame(t, Offer(json.RawMessage(`{"sdp":"x"}`), "pub-1"))
	if m["type"] != EventOffer || m["publisherId"] != "pub-1" {
		t.Fatalf("offer frame: %v", m)
	}
	if m["offer"].(map[string]any)["sdp"] != "x" {
		t.Fatalf("offer payload: %v", m["offer"])
	}

	m = decodeFrame(t, Answer(json.RawMessage(`{"sdp":"y"}`), "view-1"))
	if m["type"] != EventAnswer || m["viewerId"] != "view-1" {
		t.Fatalf("answer frame: %v", m)
	}

	m = decodeFrame(t, CandidateFromPublisher(json.RawMessage(`{"candidate":"c"}`)))
	if m["type"] != EventCandidate || m["fromPublisher"] != true {
		t.Fatalf("publisher candidate frame: %v", m)
	}
	if _, ok := m["viewerId"]; ok {
		t.Fatalf("publisher candidate must not carry viewerId: %v", m)
	}

	m = decodeFrame(t, CandidateFromViewer(json.RawMessage(`{"candidate":"c"}`), "view-2"))
	if m["fromPublisher"] != false || m["viewerId"] != "view-2" {
		t.Fatalf("viewer candidate frame: %v", m)
	}

	m = decodeFrame(t, Error(MsgStreamNotFound))
	if m["type"] != EventError || m["error"] != MsgStreamNotFound {
		t.Fatalf("error frame: %v", m)
	}

	m = decodeFrame(t, PublisherDisconnected())
	if m["type"] != EventPublisherDisconnected {
		t.Fatalf("publisher-disconnected frame: %v", m)
	}

	m = decodeFrame(t, ViewerConnected("view-3"))
	if m["type"] != EventViewerConnected || m["viewerId"] != "view-3" {
		t.Fatalf("viewer-connected frame: %v", m)
	}
}

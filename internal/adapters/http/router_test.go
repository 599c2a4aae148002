package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkeye/Broadcast/internal/app"
	"github.com/dkeye/Broadcast/internal/app/orch"
	"github.com/dkeye/Broadcast/internal/config"
	"github.com/dkeye/Broadcast/internal/core"
)

func newTestRouter(t *testing.T) (http.Handler, core.StreamRegistry) {
	t.Helper()
	streams := core.NewStreamRegistry()
	o := &orch.Orchestrator{
		Registry: app.NewRegistry(),
		Streams:  streams,
		Policy:   app.DropPolicy{},
	}
	cfg := &config.Config{
		Mode:   "release",
		Secret: "test-secret",
		ICEServers: []config.ICEServer{
			{URLs: []string{"stun:stun.l.google.com:19302"}},
			{URLs: []string{"turn:turn.example.com:3478"}, Username: "u", Credential: "p"},
		},
	}
	return SetupRouter(context.Background(), cfg, o, streams), streams
}

func TestStreamsEndpoint(t *testing.T) {
	r, streams := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/streams", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	st := streams.Create("r1", "pub")
	st.AddViewer("v1")
	st.SetLive(true)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/streams", nil))

	var infos []core.StreamInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	require.Equal(t, core.StreamInfo{ID: "r1", Viewers: 1, Live: true}, infos[0])
}

func TestICEServersEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ice-servers", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ICEServers []struct {
			URLs       []string `json:"urls"`
			Username   string   `json:"username"`
			Credential any      `json:"credential"`
		} `json:"iceServers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.ICEServers, 2)
	require.Equal(t, []string{"stun:stun.l.google.com:19302"}, body.ICEServers[0].URLs)
	require.Equal(t, "u", body.ICEServers[1].Username)
}

func TestClientTokenCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/streams", nil))

	var issued bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "ct" && c.Value != "" {
			issued = true
		}
	}
	require.True(t, issued, "client token cookie not issued")
}

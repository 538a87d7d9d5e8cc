package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Starts(t *testing.T) {
	cfg := &Config{Port: 0} // random port
	srv := NewServer(cfg, nil)

	go func() { _ = srv.Start() }()
	defer func() { _ = srv.Stop(context.Background()) }()

	// wait for server to be ready
	require.Eventually(t, func() bool {
		resp, err := http.Get(srv.BaseURL() + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == 200
	}, 2*time.Second, 100*time.Millisecond)
}

func TestServer_HealthEndpoint(t *testing.T) {
	cfg := &Config{Port: 0}
	srv := NewServer(cfg, nil)

	go srv.Start()
	defer srv.Stop(context.Background())

	time.Sleep(50 * time.Millisecond)

	resp, err := http.Get(srv.BaseURL() + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	err = json.NewDecoder(resp.Body).Decode(&health)
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.NotEmpty(t, health.Version)
}

func TestServer_WebSocketReceivesBroadcast(t *testing.T) {
	cfg := &Config{Port: 0}

	hub := NewHub()
	go hub.Run()

	srv := NewServer(cfg, hub)
	go srv.Start()
	defer srv.Stop(context.Background())

	time.Sleep(50 * time.Millisecond)

	u := url.URL{Scheme: "ws", Host: srv.listener.Addr().String(), Path: "/ws"}
	c, wsResp, err := websocket.DefaultDialer.Dial(u.String(), nil)
	require.NoError(t, err)
	defer c.Close()
	if wsResp != nil && wsResp.Body != nil {
		defer wsResp.Body.Close()
	}

	// registration races the broadcast without a small settle delay
	time.Sleep(50 * time.Millisecond)
	hub.Broadcast(JobStatusEvent(3, statusEntryFixture()))

	require.NoError(t, c.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := c.ReadMessage()
	require.NoError(t, err)

	var evt WSEvent
	require.NoError(t, json.Unmarshal(raw, &evt))
	assert.Equal(t, EventJobStatus, evt.Type)
}

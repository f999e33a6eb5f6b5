package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/avetisov/matchroom-server/internal/config"
	"github.com/avetisov/matchroom-server/internal/core"
	"github.com/avetisov/matchroom-server/internal/proto"
)

// startTestServer runs a hub and HTTP server for transport tests.
func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	hub := core.NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	nop := zerolog.Nop()
	server := NewServer(hub, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, &nop)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}

// dialWS opens a WebSocket connection to the test server.
func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

// sendInbound writes a typed inbound envelope.
func sendInbound(t *testing.T, ctx context.Context, conn *websocket.Conn, msgType string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s payload: %v", msgType, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: payload}); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

// readEvent reads outbound envelopes until one with the wanted event
// name arrives, then unmarshals its data into out (if non-nil).
func readEvent(t *testing.T, ctx context.Context, conn *websocket.Conn, event string, out any) proto.Outbound {
	t.Helper()

	for {
		var outbound struct {
			Type  string          `json:"type"`
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
			Error *proto.Error    `json:"error"`
		}
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			t.Fatalf("read while waiting for %q: %v", event, err)
		}
		if outbound.Event != event {
			continue
		}
		if out != nil && outbound.Data != nil {
			if err := json.Unmarshal(outbound.Data, out); err != nil {
				t.Fatalf("unmarshal %q data: %v", event, err)
			}
		}
		return proto.Outbound{
			Type:  outbound.Type,
			Event: outbound.Event,
			Error: outbound.Error,
		}
	}
}

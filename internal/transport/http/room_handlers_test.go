package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/avetisov/matchroom-server/internal/proto"
)

func TestListRoomsEmpty(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/rooms")
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var rooms []RoomSummary
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("expected no rooms, got %+v", rooms)
	}
}

func TestListAndGetRoom(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	sendInbound(t, ctx, conn, proto.InboundTypeCreateRoom, proto.CreateRoomData{PlayerName: "Alice"})
	var created proto.RoomCreatedData
	readEvent(t, ctx, conn, proto.EventRoomCreated, &created)

	resp, err := ts.Client().Get(ts.URL + "/api/rooms")
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	defer resp.Body.Close()

	var rooms []RoomSummary
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Code != created.RoomCode || rooms[0].Started {
		t.Fatalf("unexpected room list: %+v", rooms)
	}
	if len(rooms[0].Players) != 1 || rooms[0].Players[0] != "Alice" {
		t.Fatalf("unexpected player names: %+v", rooms[0].Players)
	}

	detail, err := ts.Client().Get(ts.URL + "/api/rooms/" + created.RoomCode)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	defer detail.Body.Close()

	if detail.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", detail.StatusCode)
	}
	var room proto.Room
	if err := json.NewDecoder(detail.Body).Decode(&room); err != nil {
		t.Fatalf("decode room: %v", err)
	}
	if room.Code != created.RoomCode || len(room.Players) != 1 || room.GameState.GameStarted {
		t.Fatalf("unexpected room detail: %+v", room)
	}
}

func TestGetRoomNotFound(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/rooms/NOSUCH")
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

// Command ws_smoke plays a complete scripted match against a running
// server using two connections: create, join, start, five moves ending
// in a win for X, one chat message. Exits non-zero on any mismatch.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/avetisov/matchroom-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	timeout := flag.Duration("timeout", 10*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	alice, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial alice: %w", err)
	}
	defer alice.Close(websocket.StatusNormalClosure, "bye")

	bob, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial bob: %w", err)
	}
	defer bob.Close(websocket.StatusNormalClosure, "bye")

	if err := send(ctx, alice, proto.InboundTypeCreateRoom, proto.CreateRoomData{PlayerName: "alice"}); err != nil {
		return err
	}
	var created proto.RoomCreatedData
	if err := await(ctx, alice, proto.EventRoomCreated, &created); err != nil {
		return err
	}
	code := created.RoomCode
	fmt.Printf("room created: %s\n", code)

	if err := send(ctx, bob, proto.InboundTypeJoinRoom, proto.JoinRoomData{RoomCode: code, PlayerName: "bob"}); err != nil {
		return err
	}
	var updated proto.RoomUpdatedData
	if err := await(ctx, bob, proto.EventRoomUpdated, &updated); err != nil {
		return err
	}
	if len(updated.Room.Players) != 2 {
		return fmt.Errorf("expected 2 players, got %d", len(updated.Room.Players))
	}

	if err := send(ctx, alice, proto.InboundTypeStartGame, proto.RoomCodeData{RoomCode: code}); err != nil {
		return err
	}
	if err := await(ctx, alice, proto.EventGameStarted, nil); err != nil {
		return err
	}

	// X takes the top row around O's replies.
	moves := []struct {
		conn *websocket.Conn
		pos  int
	}{
		{alice, 0}, {bob, 3}, {alice, 1}, {bob, 4}, {alice, 2},
	}
	var game proto.GameState
	for _, mv := range moves {
		pos := mv.pos
		if err := send(ctx, mv.conn, proto.InboundTypeMakeMove, proto.MakeMoveData{RoomCode: code, Position: &pos}); err != nil {
			return err
		}
		if err := await(ctx, bob, proto.EventGameUpdated, &game); err != nil {
			return err
		}
	}
	if game.Winner == nil || *game.Winner != "X" {
		return fmt.Errorf("expected X to win, got %+v", game)
	}
	fmt.Println("game won by X")

	if err := send(ctx, alice, proto.InboundTypeSendMessage, proto.SendMessageData{
		RoomCode:   code,
		Message:    "gg",
		PlayerName: "alice",
	}); err != nil {
		return err
	}
	var chat proto.ChatMessage
	if err := await(ctx, bob, proto.EventNewMessage, &chat); err != nil {
		return err
	}
	if chat.Message != "gg" {
		return fmt.Errorf("unexpected chat payload: %+v", chat)
	}

	fmt.Println("smoke test passed")
	return nil
}

func send(ctx context.Context, conn *websocket.Conn, msgType string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", msgType, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: payload}); err != nil {
		return fmt.Errorf("send %s: %w", msgType, err)
	}
	return nil
}

// await reads outbound envelopes until the wanted event arrives. Error
// envelopes abort immediately.
func await(ctx context.Context, conn *websocket.Conn, event string, out any) error {
	for {
		var outbound struct {
			Type  string          `json:"type"`
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
			Error *proto.Error    `json:"error"`
		}
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return fmt.Errorf("read while waiting for %q: %w", event, err)
		}
		if outbound.Type == proto.OutboundTypeError {
			if outbound.Error != nil {
				return fmt.Errorf("server error while waiting for %q: %s (%s)", event, outbound.Error.Msg, outbound.Error.Code)
			}
			return fmt.Errorf("server error while waiting for %q", event)
		}
		if outbound.Event != event {
			continue
		}
		if out != nil && outbound.Data != nil {
			if err := json.Unmarshal(outbound.Data, out); err != nil {
				return fmt.Errorf("unmarshal %q: %w", event, err)
			}
		}
		return nil
	}
}

// Command ws_play is an interactive terminal client for the matchroom
// server. It speaks the same JSON protocol as the browser client:
//
//	/create NAME      create a room
//	/join CODE NAME   join a room
//	/start            start the game
//	/move N           claim cell N (0-8)
//	/reset            start a new round
//	anything else     send as a chat message
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/avetisov/matchroom-server/internal/proto"
)

type session struct {
	roomCode   string
	playerName string
}

func main() {
	if err := run(); err != nil {
		log.Printf("ws_play: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	fmt.Printf("Connected to %s\n", *addr)
	fmt.Println("Commands: /create NAME, /join CODE NAME, /start, /move N, /reset. Plain text is chat.")

	s := &session{}

	go func() {
		defer cancel()
		readLoop(ctx, conn, s)
	}()

	writeLoop(ctx, conn, s)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func send(ctx context.Context, conn *websocket.Conn, msgType string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("marshal %s: %v", msgType, err)
		return
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: payload}); err != nil {
		log.Printf("send %s: %v", msgType, err)
	}
}

func writeLoop(ctx context.Context, conn *websocket.Conn, s *session) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "/create "):
			s.playerName = strings.TrimSpace(strings.TrimPrefix(line, "/create "))
			send(ctx, conn, proto.InboundTypeCreateRoom, proto.CreateRoomData{PlayerName: s.playerName})
		case strings.HasPrefix(line, "/join "):
			fields := strings.Fields(strings.TrimPrefix(line, "/join "))
			if len(fields) < 2 {
				fmt.Println("usage: /join CODE NAME")
				continue
			}
			s.playerName = fields[1]
			send(ctx, conn, proto.InboundTypeJoinRoom, proto.JoinRoomData{RoomCode: fields[0], PlayerName: fields[1]})
		case line == "/start":
			send(ctx, conn, proto.InboundTypeStartGame, proto.RoomCodeData{RoomCode: s.roomCode})
		case strings.HasPrefix(line, "/move "):
			pos, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/move ")))
			if err != nil {
				fmt.Println("usage: /move N (0-8)")
				continue
			}
			send(ctx, conn, proto.InboundTypeMakeMove, proto.MakeMoveData{RoomCode: s.roomCode, Position: &pos})
		case line == "/reset":
			send(ctx, conn, proto.InboundTypeResetGame, proto.RoomCodeData{RoomCode: s.roomCode})
		default:
			send(ctx, conn, proto.InboundTypeSendMessage, proto.SendMessageData{
				RoomCode:   s.roomCode,
				Message:    line,
				PlayerName: s.playerName,
			})
		}
	}
}

func readLoop(ctx context.Context, conn *websocket.Conn, s *session) {
	for {
		var outbound struct {
			Type  string          `json:"type"`
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
			Error *proto.Error    `json:"error"`
		}
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		if outbound.Type == proto.OutboundTypeError {
			if outbound.Error != nil {
				fmt.Printf("!! %s: %s\n", outbound.Error.Code, outbound.Error.Msg)
			}
			continue
		}

		switch outbound.Event {
		case proto.EventRoomCreated:
			var data proto.RoomCreatedData
			if json.Unmarshal(outbound.Data, &data) == nil {
				s.roomCode = data.RoomCode
				fmt.Printf("room %s created; share the code with your opponent\n", data.RoomCode)
			}
		case proto.EventRoomUpdated:
			var data proto.RoomUpdatedData
			if json.Unmarshal(outbound.Data, &data) == nil {
				s.roomCode = data.Room.Code
				names := make([]string, 0, len(data.Room.Players))
				for _, p := range data.Room.Players {
					names = append(names, fmt.Sprintf("%s(%s)", p.Name, p.Symbol))
				}
				fmt.Printf("room %s: %s\n", data.Room.Code, strings.Join(names, ", "))
			}
		case proto.EventGameStarted:
			var room proto.Room
			if json.Unmarshal(outbound.Data, &room) == nil {
				fmt.Println("game on; X moves first")
				printBoard(room.GameState)
			}
		case proto.EventGameUpdated, proto.EventGameReset:
			var game proto.GameState
			if json.Unmarshal(outbound.Data, &game) == nil {
				printBoard(game)
			}
		case proto.EventNewMessage:
			var msg proto.ChatMessage
			if json.Unmarshal(outbound.Data, &msg) == nil {
				fmt.Printf("[%s] %s: %s\n", msg.Timestamp, msg.PlayerName, msg.Message)
			}
		}
	}
}

func printBoard(game proto.GameState) {
	cell := func(i int) string {
		if i < len(game.Board) && game.Board[i] != nil {
			return *game.Board[i]
		}
		return strconv.Itoa(i)
	}
	for row := 0; row < 3; row++ {
		fmt.Printf(" %s | %s | %s\n", cell(row*3), cell(row*3+1), cell(row*3+2))
		if row < 2 {
			fmt.Println("---+---+---")
		}
	}
	switch {
	case game.Winner != nil:
		fmt.Printf("winner: %s\n", *game.Winner)
	case game.IsDraw:
		fmt.Println("draw")
	case game.GameStarted:
		fmt.Printf("turn: %s\n", game.CurrentPlayer)
	}
}

package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	ProtocolVersion = 1

	InboundTypeCreateRoom  = "create-room"
	InboundTypeJoinRoom    = "join-room"
	InboundTypeStartGame   = "start-game"
	InboundTypeMakeMove    = "make-move"
	InboundTypeSendMessage = "send-message"
	InboundTypeResetGame   = "reset-game"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventRoomCreated = "room-created"
	EventRoomUpdated = "room-updated"
	EventGameStarted = "game-started"
	EventGameUpdated = "game-updated"
	EventGameReset   = "game-reset"
	EventNewMessage  = "new-message"

	ErrorEventRoom = "room-error"
	ErrorEventGame = "game-error"
	ErrorEventChat = "chat-error"
)

// CreateRoomData opens a new room for the named player.
type CreateRoomData struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomData requests to join an existing room.
type JoinRoomData struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// RoomCodeData carries just a room code (start-game, reset-game).
type RoomCodeData struct {
	RoomCode string `json:"roomCode"`
}

// MakeMoveData claims a board cell. Position is a pointer so a missing
// field can be told apart from position 0.
type MakeMoveData struct {
	RoomCode string `json:"roomCode"`
	Position *int   `json:"position"`
}

// SendMessageData is a chat message from the client.
type SendMessageData struct {
	RoomCode   string `json:"roomCode"`
	Message    string `json:"message"`
	PlayerName string `json:"playerName"`
}

// Outbound is the envelope for messages sent to the client. Events use
// Type "event" with the event name and payload; failures use Type
// "error" with the error event name and a code/message pair.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Player is the wire form of a room participant.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// GameState is the wire form of a room's match state. Empty board cells
// and an unset winner serialize as null.
type GameState struct {
	Board         []*string `json:"board"`
	CurrentPlayer string    `json:"currentPlayer"`
	Winner        *string   `json:"winner"`
	IsDraw        bool      `json:"isDraw"`
	GameStarted   bool      `json:"gameStarted"`
}

// Room is the wire form of a match session.
type Room struct {
	Code      string    `json:"code"`
	Players   []Player  `json:"players"`
	GameState GameState `json:"gameState"`
}

// RoomCreatedData confirms room creation to the creator.
type RoomCreatedData struct {
	RoomCode string `json:"roomCode"`
	Room     Room   `json:"room"`
}

// RoomUpdatedData notifies room members about a membership change.
type RoomUpdatedData struct {
	Room Room `json:"room"`
}

// ChatMessage is the wire form of a chat log entry.
type ChatMessage struct {
	ID         int64  `json:"id"`
	PlayerName string `json:"playerName"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

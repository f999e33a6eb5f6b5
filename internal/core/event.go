package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomCreated confirms room creation to the creator only.
	EventRoomCreated EventKind = iota
	// EventRoomUpdated notifies room members about a membership change.
	EventRoomUpdated
	// EventGameStarted notifies room members that a match began.
	EventGameStarted
	// EventGameUpdated notifies room members about an accepted move.
	EventGameUpdated
	// EventGameReset notifies room members that the board was cleared
	// for a new round.
	EventGameReset
	// EventNewMessage notifies room members about a chat message.
	EventNewMessage

	// EventRoomError reports a failed create/join to the sender only.
	EventRoomError
	// EventGameError reports a failed start/move/reset to the sender only.
	EventGameError
	// EventChatError reports a failed chat send to the sender only.
	EventChatError
)

// Event is sent to clients to describe what happened in the system.
// Room and game payloads are snapshots; transports may read them without
// further synchronization.
type Event struct {
	Kind    EventKind
	Room    *RoomView
	Game    *GameState
	Message *ChatMessage
	Error   *CoreError
}

// RoomView is an immutable copy of a room's shareable state.
type RoomView struct {
	Code    string
	Players []Player
	Game    GameState
}

package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandCreateRoom opens a fresh room with the client as first player.
	CommandCreateRoom CommandKind = iota
	// CommandJoinRoom enters an existing room as the second player.
	CommandJoinRoom
	// CommandStartGame begins a match once both players are present.
	CommandStartGame
	// CommandMakeMove claims a board cell for the client's symbol.
	CommandMakeMove
	// CommandSendMessage appends a chat message to the room's log.
	CommandSendMessage
	// CommandResetGame restarts the room's match with an empty board.
	CommandResetGame
)

// Command represents an action requested by a client.
type Command struct {
	Kind       CommandKind
	Room       string
	PlayerName string
	Position   int
	Text       string
}

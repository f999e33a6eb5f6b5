package core

import "time"

// MaxPlayers is the membership capacity of a room.
const MaxPlayers = 2

// Player is a participant bound to a room. The symbol is assigned when
// the player enters the room and never changes afterwards.
type Player struct {
	ID     string
	Name   string
	Symbol Symbol
}

// Room is an isolated two-player match session identified by its code.
// All mutation happens on the hub goroutine; the room itself carries no
// locks.
type Room struct {
	Code    string
	Players []*Player
	Game    *GameState
	Chat    []ChatMessage

	clients map[*Client]struct{}
}

func newRoom(code string) *Room {
	return &Room{
		Code:    code,
		Game:    NewGameState(),
		clients: make(map[*Client]struct{}),
	}
}

func (r *Room) player(handle string) *Player {
	for _, p := range r.Players {
		if p.ID == handle {
			return p
		}
	}
	return nil
}

// Subscribe adds a client to the room's broadcast set.
func (r *Room) Subscribe(c *Client) {
	r.clients[c] = struct{}{}
}

// Unsubscribe removes a client from the room's broadcast set.
func (r *Room) Unsubscribe(c *Client) {
	delete(r.clients, c)
}

// Broadcast sends an event to all clients in the room, including the one
// that triggered it. Sends never block; slow consumers drop events.
func (r *Room) Broadcast(event *Event) {
	for client := range r.clients {
		select {
		case client.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}

// View returns an immutable snapshot safe to hand to other goroutines.
func (r *Room) View() RoomView {
	players := make([]Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = *p
	}
	return RoomView{Code: r.Code, Players: players, Game: *r.Game}
}

// Start begins a match. Any member may trigger it, but both seats must
// be taken. The board is cleared and X moves first.
func (r *Room) Start() (*GameState, *CoreError) {
	if len(r.Players) != MaxPlayers {
		return nil, coreError(ErrCodeCannotStart, "Cannot start game: need 2 players")
	}
	r.Game = NewGameState()
	r.Game.Started = true
	return r.Game, nil
}

// Move writes the player's symbol into the given cell after running the
// full validation chain: game started, game not over, position in range,
// player's turn, cell empty. On success the board is re-evaluated; a win
// freezes the turn marker, a draw sets the flag, otherwise the turn
// flips to the other symbol.
func (r *Room) Move(handle string, position int) (*GameState, *CoreError) {
	g := r.Game
	if !g.Started {
		return nil, coreError(ErrCodeGameNotStarted, "Game not started")
	}
	if g.Over() {
		return nil, coreError(ErrCodeGameOver, "Game is already over")
	}
	if position < 0 || position >= len(g.Board) {
		return nil, coreError(ErrCodeInvalidPosition, "Position out of range")
	}
	player := r.player(handle)
	if player == nil || player.Symbol != g.Turn {
		return nil, coreError(ErrCodeNotYourTurn, "Not your turn")
	}
	if g.Board[position] != SymbolNone {
		return nil, coreError(ErrCodePositionTaken, "Position already taken")
	}

	g.Board[position] = player.Symbol

	outcome := Evaluate(g.Board)
	switch {
	case outcome.Winner != SymbolNone:
		g.Winner = outcome.Winner
	case outcome.Draw:
		g.Draw = true
	default:
		g.Turn = g.Turn.Other()
	}
	return g, nil
}

// Reset reinitializes the match and immediately marks it started: a
// reset means a new round, not a return to the pre-start lobby.
func (r *Room) Reset() *GameState {
	r.Game = NewGameState()
	r.Game.Started = true
	return r.Game
}

// AppendChat adds a message to the room's log and returns it.
func (r *Room) AppendChat(id int64, playerName, text string) ChatMessage {
	msg := ChatMessage{
		ID:         id,
		PlayerName: playerName,
		Text:       text,
		Timestamp:  time.Now().Format("15:04:05"),
	}
	r.Chat = append(r.Chat, msg)
	return msg
}

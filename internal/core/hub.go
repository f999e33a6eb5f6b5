package core

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"
)

// Hub owns the room store and serializes every room mutation through a
// single goroutine: commands from all connections funnel into one
// channel, so each read-validate-mutate-broadcast step completes before
// the next one starts. Disconnects go through the same loop, which keeps
// participant removal consistent with concurrent moves and broadcasts.
type Hub struct {
	store *Store
	log   *zerolog.Logger

	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand
	snapshots  chan chan []RoomView
	done       chan struct{}

	clients map[*Client]struct{}
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// NewHub creates a hub around a fresh room store. A nil logger disables
// logging, which the tests rely on.
func NewHub(logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		store:      NewStore(),
		log:        logger,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan clientCommand),
		snapshots:  make(chan chan []RoomView),
		done:       make(chan struct{}),
		clients:    make(map[*Client]struct{}),
	}
}

// RegisterClient hands a new connection to the hub.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// UnregisterClient removes a connection from the hub. Callers must have
// stopped writing to the client's Commands channel; the hub closes the
// client's Events channel once room cleanup is done.
func (h *Hub) UnregisterClient(c *Client) {
	close(c.Commands)
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Snapshot returns a point-in-time view of all live rooms, sorted by
// code. The request is answered by the hub loop, so it observes a
// consistent state.
func (h *Hub) Snapshot(ctx context.Context) ([]RoomView, error) {
	resp := make(chan []RoomView, 1)
	select {
	case h.snapshots <- resp:
	case <-h.done:
		return nil, errors.New("hub stopped")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case views := <-resp:
		return views, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run processes registrations, commands and snapshot requests until the
// context is cancelled. It must be running before clients are registered.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			go h.pump(c)
		case c := <-h.unregister:
			h.dropClient(c)
		case cc := <-h.commands:
			if _, ok := h.clients[cc.client]; ok {
				h.dispatch(cc.client, cc.cmd)
			}
		case resp := <-h.snapshots:
			resp <- h.snapshotRooms()
		case <-ctx.Done():
			return
		}
	}
}

// pump forwards one client's commands into the hub loop.
func (h *Hub) pump(c *Client) {
	for cmd := range c.Commands {
		select {
		case h.commands <- clientCommand{client: c, cmd: cmd}:
		case <-h.done:
			return
		}
	}
}

func (h *Hub) dispatch(c *Client, cmd *Command) {
	switch cmd.Kind {
	case CommandCreateRoom:
		h.createRoom(c, cmd)
	case CommandJoinRoom:
		h.joinRoom(c, cmd)
	case CommandStartGame:
		h.startGame(c, cmd)
	case CommandMakeMove:
		h.makeMove(c, cmd)
	case CommandSendMessage:
		h.sendMessage(c, cmd)
	case CommandResetGame:
		h.resetGame(c, cmd)
	}
}

func (h *Hub) createRoom(c *Client, cmd *Command) {
	room, cerr := h.store.CreateRoom(c.ID, cmd.PlayerName)
	if cerr != nil {
		h.send(c, &Event{Kind: EventRoomError, Error: cerr})
		return
	}
	c.Name = cmd.PlayerName
	room.Subscribe(c)
	view := room.View()
	h.send(c, &Event{Kind: EventRoomCreated, Room: &view})
	h.log.Info().Str("room", room.Code).Str("player", cmd.PlayerName).Msg("room created")
}

func (h *Hub) joinRoom(c *Client, cmd *Command) {
	room, cerr := h.store.JoinRoom(cmd.Room, c.ID, cmd.PlayerName)
	if cerr != nil {
		h.send(c, &Event{Kind: EventRoomError, Error: cerr})
		return
	}
	c.Name = cmd.PlayerName
	room.Subscribe(c)
	view := room.View()
	room.Broadcast(&Event{Kind: EventRoomUpdated, Room: &view})
	h.log.Info().Str("room", room.Code).Str("player", cmd.PlayerName).Msg("player joined")
}

func (h *Hub) startGame(c *Client, cmd *Command) {
	room, ok := h.store.Get(cmd.Room)
	if !ok {
		h.send(c, &Event{Kind: EventGameError, Error: coreError(ErrCodeRoomNotFound, "Room not found")})
		return
	}
	if _, cerr := room.Start(); cerr != nil {
		h.send(c, &Event{Kind: EventGameError, Error: cerr})
		return
	}
	view := room.View()
	room.Broadcast(&Event{Kind: EventGameStarted, Room: &view})
	h.log.Info().Str("room", room.Code).Msg("game started")
}

func (h *Hub) makeMove(c *Client, cmd *Command) {
	room, ok := h.store.Get(cmd.Room)
	if !ok {
		h.send(c, &Event{Kind: EventGameError, Error: coreError(ErrCodeRoomNotFound, "Room not found")})
		return
	}
	game, cerr := room.Move(c.ID, cmd.Position)
	if cerr != nil {
		h.send(c, &Event{Kind: EventGameError, Error: cerr})
		return
	}
	snapshot := *game
	room.Broadcast(&Event{Kind: EventGameUpdated, Game: &snapshot})
	if game.Over() {
		h.log.Info().
			Str("room", room.Code).
			Str("winner", string(game.Winner)).
			Bool("draw", game.Draw).
			Msg("game finished")
	}
}

func (h *Hub) sendMessage(c *Client, cmd *Command) {
	msg, cerr := h.store.SendChat(cmd.Room, cmd.PlayerName, cmd.Text)
	if cerr != nil {
		h.send(c, &Event{Kind: EventChatError, Error: cerr})
		return
	}
	room, _ := h.store.Get(cmd.Room)
	room.Broadcast(&Event{Kind: EventNewMessage, Message: &msg})
}

func (h *Hub) resetGame(c *Client, cmd *Command) {
	room, ok := h.store.Get(cmd.Room)
	if !ok {
		h.send(c, &Event{Kind: EventGameError, Error: coreError(ErrCodeRoomNotFound, "Room not found")})
		return
	}
	game := room.Reset()
	snapshot := *game
	room.Broadcast(&Event{Kind: EventGameReset, Game: &snapshot})
	h.log.Info().Str("room", room.Code).Msg("game reset")
}

// dropClient handles a disconnect: remove the membership, tell anyone
// left in the room, tear the room down if it emptied.
func (h *Hub) dropClient(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)

	code, room := h.store.RemovePlayer(c.ID)
	switch {
	case code == "":
		// The connection belonged to no room; nothing to announce.
	case room == nil:
		h.log.Info().Str("room", code).Msg("room closed")
	default:
		room.Unsubscribe(c)
		view := room.View()
		room.Broadcast(&Event{Kind: EventRoomUpdated, Room: &view})
		h.log.Info().Str("room", code).Str("player", c.Name).Msg("player left")
	}
	close(c.Events)
}

// send delivers an event to a single client without blocking the loop.
func (h *Hub) send(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		// Drop if slow consumer.
	}
}

func (h *Hub) snapshotRooms() []RoomView {
	rooms := h.store.Rooms()
	views := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, room.View())
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Code < views[j].Code })
	return views
}

package core

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const (
	codeLength   = 6
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Store owns every live room, keyed by room code. It also tracks which
// room each connection handle belongs to, so a handle can hold at most
// one membership at a time. The store is driven solely by the hub
// goroutine and therefore carries no locks.
type Store struct {
	rooms     map[string]*Room
	memberOf  map[string]string // connection handle -> room code
	nextMsgID int64
}

// NewStore returns an empty room store.
func NewStore() *Store {
	return &Store{
		rooms:    make(map[string]*Room),
		memberOf: make(map[string]string),
	}
}

// newCode generates a fresh room code not used by any live room. Codes
// freed by room teardown become eligible again.
func (s *Store) newCode() string {
	for {
		buf := make([]byte, codeLength)
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand is effectively infallible; rather than spin,
			// fall back to a timestamp-derived code.
			ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))
			buf = []byte(ts[len(ts)-codeLength:])
		} else {
			for i := range buf {
				buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
			}
		}
		code := string(buf)
		if _, taken := s.rooms[code]; !taken {
			return code
		}
	}
}

// CreateRoom opens a room with the creator as its only player, holding
// symbol X, plus a fresh game and an empty chat log.
func (s *Store) CreateRoom(handle, name string) (*Room, *CoreError) {
	if code, ok := s.memberOf[handle]; ok {
		return nil, coreError(ErrCodeAlreadyInRoom, "Already in room "+code)
	}
	room := newRoom(s.newCode())
	room.Players = append(room.Players, &Player{ID: handle, Name: name, Symbol: SymbolX})
	s.rooms[room.Code] = room
	s.memberOf[handle] = room.Code
	return room, nil
}

// JoinRoom enters an existing room as the second player, holding symbol O.
func (s *Store) JoinRoom(code, handle, name string) (*Room, *CoreError) {
	if existing, ok := s.memberOf[handle]; ok {
		return nil, coreError(ErrCodeAlreadyInRoom, "Already in room "+existing)
	}
	room, ok := s.rooms[code]
	if !ok {
		return nil, coreError(ErrCodeRoomNotFound, "Room not found")
	}
	if len(room.Players) >= MaxPlayers {
		return nil, coreError(ErrCodeRoomFull, "Room is full")
	}
	room.Players = append(room.Players, &Player{ID: handle, Name: name, Symbol: SymbolO})
	s.memberOf[handle] = code
	return room, nil
}

// Get looks up a room by code.
func (s *Store) Get(code string) (*Room, bool) {
	room, ok := s.rooms[code]
	return room, ok
}

// RemovePlayer drops the handle's membership, if any. It returns the
// code of the room the player left ("" if none) and the room itself when
// other players remain; an emptied room is deleted together with its
// chat log, and nil is returned so callers know there is nobody left to
// notify.
func (s *Store) RemovePlayer(handle string) (string, *Room) {
	code, ok := s.memberOf[handle]
	if !ok {
		return "", nil
	}
	delete(s.memberOf, handle)

	room := s.rooms[code]
	for i, p := range room.Players {
		if p.ID == handle {
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			break
		}
	}
	if len(room.Players) == 0 {
		delete(s.rooms, code)
		return code, nil
	}
	return code, room
}

// SendChat appends a chat message to the room's log, stamping it with
// the next value of the process-wide message counter.
func (s *Store) SendChat(code, playerName, text string) (ChatMessage, *CoreError) {
	room, ok := s.rooms[code]
	if !ok {
		return ChatMessage{}, coreError(ErrCodeRoomNotFound, "Room not found")
	}
	s.nextMsgID++
	return room.AppendChat(s.nextMsgID, playerName, text), nil
}

// Rooms returns all live rooms in unspecified order.
func (s *Store) Rooms() []*Room {
	rooms := make([]*Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}

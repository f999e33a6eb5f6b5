package core

import (
	"strings"
	"testing"
)

func TestStoreCreateRoom(t *testing.T) {
	st := NewStore()

	room, cerr := st.CreateRoom("conn-1", "alice")
	if cerr != nil {
		t.Fatalf("create: %v", cerr)
	}
	if len(room.Code) != codeLength {
		t.Fatalf("code %q: length = %d, want %d", room.Code, len(room.Code), codeLength)
	}
	for _, r := range room.Code {
		if !strings.ContainsRune(codeAlphabet, r) {
			t.Fatalf("code %q contains %q outside alphabet", room.Code, r)
		}
	}
	if len(room.Players) != 1 || room.Players[0].Symbol != SymbolX || room.Players[0].Name != "alice" {
		t.Fatalf("unexpected creator: %+v", room.Players[0])
	}
	if room.Game.Started || room.Game.Over() {
		t.Fatalf("fresh room game should be unstarted and ongoing: %+v", room.Game)
	}
	if got, ok := st.Get(room.Code); !ok || got != room {
		t.Fatal("Get must return the created room")
	}
}

func TestStoreJoinAssignsOAndEnforcesCapacity(t *testing.T) {
	st := NewStore()
	room, _ := st.CreateRoom("conn-1", "alice")

	joined, cerr := st.JoinRoom(room.Code, "conn-2", "bob")
	if cerr != nil {
		t.Fatalf("join: %v", cerr)
	}
	if len(joined.Players) != 2 || joined.Players[1].Symbol != SymbolO {
		t.Fatalf("unexpected players after join: %+v", joined.Players)
	}

	if _, cerr := st.JoinRoom(room.Code, "conn-3", "carol"); cerr == nil || cerr.Code != ErrCodeRoomFull {
		t.Fatalf("third join: got %v, want %s", cerr, ErrCodeRoomFull)
	}
	if len(room.Players) != 2 {
		t.Fatalf("rejected join must not change membership, got %d players", len(room.Players))
	}
}

func TestStoreJoinUnknownCode(t *testing.T) {
	st := NewStore()
	if _, cerr := st.JoinRoom("NOSUCH", "conn-1", "alice"); cerr == nil || cerr.Code != ErrCodeRoomNotFound {
		t.Fatalf("got %v, want %s", cerr, ErrCodeRoomNotFound)
	}
}

func TestStoreSingleMembershipRule(t *testing.T) {
	st := NewStore()
	first, _ := st.CreateRoom("conn-1", "alice")

	if _, cerr := st.CreateRoom("conn-1", "alice"); cerr == nil || cerr.Code != ErrCodeAlreadyInRoom {
		t.Fatalf("second create: got %v, want %s", cerr, ErrCodeAlreadyInRoom)
	}

	other, _ := st.CreateRoom("conn-2", "bob")
	if _, cerr := st.JoinRoom(other.Code, "conn-1", "alice"); cerr == nil || cerr.Code != ErrCodeAlreadyInRoom {
		t.Fatalf("join while member of %s: got %v, want %s", first.Code, cerr, ErrCodeAlreadyInRoom)
	}
}

func TestStoreRemovePlayer(t *testing.T) {
	st := NewStore()
	room, _ := st.CreateRoom("conn-1", "alice")
	st.JoinRoom(room.Code, "conn-2", "bob")

	code, remaining := st.RemovePlayer("conn-1")
	if code != room.Code || remaining == nil {
		t.Fatalf("first removal: code=%q remaining=%v", code, remaining)
	}
	if len(remaining.Players) != 1 || remaining.Players[0].Name != "bob" {
		t.Fatalf("unexpected remaining players: %+v", remaining.Players)
	}

	code, remaining = st.RemovePlayer("conn-2")
	if code != room.Code || remaining != nil {
		t.Fatalf("last removal must delete the room: code=%q remaining=%v", code, remaining)
	}
	if _, ok := st.Get(room.Code); ok {
		t.Fatal("deleted room must not be retrievable")
	}

	// The handle no longer belongs anywhere; removal is a silent no-op.
	if code, remaining := st.RemovePlayer("conn-2"); code != "" || remaining != nil {
		t.Fatalf("repeat removal: code=%q remaining=%v", code, remaining)
	}

	// Freed handles can open rooms again.
	if _, cerr := st.CreateRoom("conn-1", "alice"); cerr != nil {
		t.Fatalf("create after leave: %v", cerr)
	}
}

func TestStoreChatIDsAreMonotonic(t *testing.T) {
	st := NewStore()
	room, _ := st.CreateRoom("conn-1", "alice")

	var last int64
	for i := 0; i < 5; i++ {
		msg, cerr := st.SendChat(room.Code, "alice", "hello")
		if cerr != nil {
			t.Fatalf("send: %v", cerr)
		}
		if msg.ID <= last {
			t.Fatalf("message id %d not greater than %d", msg.ID, last)
		}
		last = msg.ID
	}
	if len(room.Chat) != 5 {
		t.Fatalf("chat log length = %d, want 5", len(room.Chat))
	}
}

func TestStoreChatUnknownRoom(t *testing.T) {
	st := NewStore()
	if _, cerr := st.SendChat("NOSUCH", "alice", "hi"); cerr == nil || cerr.Code != ErrCodeRoomNotFound {
		t.Fatalf("got %v, want %s", cerr, ErrCodeRoomNotFound)
	}
}

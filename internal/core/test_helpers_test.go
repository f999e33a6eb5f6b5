package core

import (
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// pairedRoom registers two clients, creates a room with the first and
// joins the second, returning the room code.
func pairedRoom(t *testing.T, hub *Hub, creator, joiner *Client) string {
	t.Helper()

	hub.RegisterClient(creator)
	hub.RegisterClient(joiner)

	creator.Commands <- &Command{Kind: CommandCreateRoom, PlayerName: creator.Name}
	created := mustEvent(t, creator.Events, EventRoomCreated)
	if created.Room == nil || created.Room.Code == "" {
		t.Fatalf("room-created event missing room: %+v", created)
	}
	code := created.Room.Code

	joiner.Commands <- &Command{Kind: CommandJoinRoom, Room: code, PlayerName: joiner.Name}
	updated := mustEvent(t, joiner.Events, EventRoomUpdated)
	if len(updated.Room.Players) != 2 {
		t.Fatalf("expected 2 players after join, got %d", len(updated.Room.Players))
	}
	return code
}

package core

// ChatMessage is one entry in a room's append-only chat log. IDs come
// from a process-wide monotonic counter so concurrent sends within the
// same clock tick still get distinct identities.
type ChatMessage struct {
	ID         int64
	PlayerName string
	Text       string
	Timestamp  string
}

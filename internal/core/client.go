package core

// Client is a live connection as seen by the core layer. A client holds
// at most one room membership at a time, keyed by its ID.
type Client struct {
	ID       string
	Name     string
	Commands chan *Command
	Events   chan *Event
}

// NewClient constructs a client with initialized channels. The name may
// be empty; it is filled in from the first create-room or join-room
// request the client issues.
func NewClient(id, name string) *Client {
	return &Client{
		ID:       id,
		Name:     name,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 16),
	}
}

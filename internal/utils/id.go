package utils

import "github.com/google/uuid"

// NewID returns a unique connection handle. Handles are ephemeral: they
// live exactly as long as the WebSocket connection they identify.
func NewID() string {
	return uuid.NewString()
}

package core

// Error codes for domain errors.
const (
	ErrCodeRoomNotFound    = "room_not_found"
	ErrCodeRoomFull        = "room_full"
	ErrCodeAlreadyInRoom   = "already_in_room"
	ErrCodeCannotStart     = "cannot_start"
	ErrCodeGameNotStarted  = "game_not_started"
	ErrCodeGameOver        = "game_over"
	ErrCodeNotYourTurn     = "not_your_turn"
	ErrCodePositionTaken   = "position_taken"
	ErrCodeInvalidPosition = "invalid_position"
	ErrCodeBadRequest      = "bad_request"
)

// CoreError wraps a code and human-readable message. Every validation
// failure in the session engine is one of these; none are fatal and none
// mutate room state.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}

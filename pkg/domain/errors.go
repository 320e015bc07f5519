package domain

import "errors"

// ErrNotInitialized is returned when an operation requires a search tree
// but the session was never reinitialized.
var ErrNotInitialized = errors.New("session not initialized")

// ErrInvalidAction is returned by State.Apply when the action is not legal
// for that state.
var ErrInvalidAction = errors.New("invalid action")

// ErrNoMovesAvailable is returned when a best move is requested but the root
// has no expanded children.
var ErrNoMovesAvailable = errors.New("no moves available")

// ErrInvalidConfiguration is returned for out-of-range search parameters,
// such as a non-positive exploration constant.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrUnknownDomain is returned when a descriptor names a domain that is not registered.
var ErrUnknownDomain = errors.New("unknown domain")

// ErrSessionNotFound is returned when a session ID cannot be found.
var ErrSessionNotFound = errors.New("session not found")

// Error codes used when errors cross a transport boundary.
const (
	CodeNotInitialized       = "not_initialized"
	CodeInvalidAction        = "invalid_action"
	CodeNoMovesAvailable     = "no_moves_available"
	CodeInvalidConfiguration = "invalid_configuration"
	CodeUnknownDomain        = "unknown_domain"
	CodeSessionNotFound      = "session_not_found"
	CodeInternal             = "internal"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrNotInitialized, CodeNotInitialized},
	{ErrInvalidAction, CodeInvalidAction},
	{ErrNoMovesAvailable, CodeNoMovesAvailable},
	{ErrInvalidConfiguration, CodeInvalidConfiguration},
	{ErrUnknownDomain, CodeUnknownDomain},
	{ErrSessionNotFound, CodeSessionNotFound},
}

// ErrorCode maps err to its stable wire code. Wrapped errors are matched with
// errors.Is; anything unrecognized is reported as CodeInternal.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return CodeInternal
}

// ErrorBody is the structured error shape returned by every transport.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorBody builds the transport representation of err.
func NewErrorBody(err error) *ErrorBody {
	if err == nil {
		return nil
	}
	return &ErrorBody{Code: ErrorCode(err), Message: err.Error()}
}

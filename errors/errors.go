package errors

import (
	stderrors "errors"
	"fmt"
)

// Code is a stable machine-readable identifier for a breakout failure.
type Code string

const (
	CodeUnknown                  Code = "UNKNOWN"
	CodeConfigDisabled           Code = "BREAKOUT_CONFIG_DISABLED"
	CodeAlreadyConfigured        Code = "BREAKOUT_ALREADY_CONFIGURED"
	CodeUnsupportedRoomType      Code = "BREAKOUT_UNSUPPORTED_ROOM_TYPE"
	CodeNestedBreakoutNotAllowed Code = "BREAKOUT_NESTED_NOT_ALLOWED"
	CodeInvalidMode              Code = "BREAKOUT_INVALID_MODE"
	CodeInvalidAmount            Code = "BREAKOUT_INVALID_AMOUNT"
	CodeInvalidAttendeeMap       Code = "BREAKOUT_INVALID_ATTENDEE_MAP"
	CodeNotConfigured            Code = "BREAKOUT_NOT_CONFIGURED"
	CodeInvalidRoomState         Code = "BREAKOUT_INVALID_ROOM_STATE"
	CodeInvalidStatus            Code = "BREAKOUT_INVALID_STATUS"
)

// Error is a caller-input or precondition violation.
// Field names the request parameter at fault, as reported to API clients.
type Error struct {
	Code  Code
	Field string
	msg   string
}

func (e *Error) Error() string {
	return e.msg
}

func newError(code Code, field, msg string) *Error {
	return &Error{Code: code, Field: field, msg: msg}
}

var (
	ErrConfigDisabled           = newError(CodeConfigDisabled, "config", "breakout rooms are disabled")
	ErrAlreadyConfigured        = newError(CodeAlreadyConfigured, "room", "breakout rooms are already configured")
	ErrUnsupportedRoomType      = newError(CodeUnsupportedRoomType, "room", "breakout rooms need a group or public room")
	ErrNestedBreakoutNotAllowed = newError(CodeNestedBreakoutNotAllowed, "room", "breakout rooms can not be nested")
	ErrInvalidMode              = newError(CodeInvalidMode, "mode", "invalid breakout mode")
	ErrInvalidAmount            = newError(CodeInvalidAmount, "amount", "invalid amount of breakout rooms")
	ErrInvalidAttendeeMap       = newError(CodeInvalidAttendeeMap, "attendeeMap", "invalid attendee map")
	ErrNotConfigured            = newError(CodeNotConfigured, "mode", "breakout rooms are not configured")
	ErrInvalidRoomState         = newError(CodeInvalidRoomState, "room", "room is not an active breakout room")
	ErrInvalidStatus            = newError(CodeInvalidStatus, "status", "invalid assistance status")
)

var (
	ErrSessionNotFound     = fmt.Errorf("session not found")
	ErrParticipantNotFound = fmt.Errorf("participant not found")
	ErrInvalidMessage      = fmt.Errorf("invalid message")
)

// GetCode extracts the breakout code from any error.
// Returns CodeUnknown if the error is not a breakout error.
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// GetField returns the parameter name an API layer should report, or "".
func GetField(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Field
	}
	return ""
}

func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

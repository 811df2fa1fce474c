package message

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnterminated is returned by the single-message parse entry points when
// the input lacks a CR, LF or CRLF terminator. Streams tolerate a missing
// final terminator instead.
var ErrUnterminated = errors.New("usi: line not terminated")

// DecodeError reports a recognized field whose payload failed finer
// decoding: bad move notation, a numeric value out of range, and the like.
// The line's command shape was valid, so the caller may choose to log and
// continue the session.
type DecodeError struct {
	Command string
	Field   string
	Token   string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("usi: %s: bad %s %q: %v", e.Command, e.Field, e.Token, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TimeControlConflictError reports a go line that combined an exclusive
// time policy selector (ponder, infinite or movetime) with clock sub-fields.
// The selector wins and the clock readings are dropped from the message;
// the parse still returns the usable message alongside this error so the
// caller can decide whether the drop matters.
type TimeControlConflictError struct {
	Line    string
	Dropped []string
}

func (e *TimeControlConflictError) Error() string {
	return fmt.Sprintf("usi: go: time policy conflict, dropped %s in %q",
		strings.Join(e.Dropped, ", "), e.Line)
}

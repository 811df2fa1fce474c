// Package cli holds the line inspection logic behind the usikit commands,
// kept out of package main so it can be tested directly.
package cli

import (
	"errors"
	"fmt"

	"github.com/aretw0/usikit"
	"github.com/aretw0/usikit/pkg/message"
)

// Direction labels reported by Inspect.
const (
	DirectionDirector    = "director"
	DirectionParticipant = "participant"
	DirectionUnknown     = "unknown"
)

// Verdict is the inspection result for one protocol line.
type Verdict struct {
	// Direction says which side of the protocol the line belongs to.
	Direction string

	// Kind is the concrete message type, e.g. "message.Go". Empty when
	// the line failed to decode.
	Kind string

	// Canonical is the re-serialized wire text of the decoded message.
	// For unknown lines it is the verbatim input.
	Canonical string

	// Warning is a non-fatal note (time policy conflicts); the message
	// decoded fine.
	Warning error

	// Err is set when the line had a recognized command shape but its
	// payload failed to decode.
	Err error
}

// Inspect classifies one line (without terminator). It tries the director
// direction first, then the participant direction; a line neither side
// recognizes comes back as DirectionUnknown.
func Inspect(line string) Verdict {
	input := line + "\n"

	dmsg, derr := usikit.ParseDirector(input)
	if v, ok := verdict(DirectionDirector, dmsg, derr); ok {
		return v
	}
	pmsg, perr := usikit.ParseParticipant(input)
	if v, ok := verdict(DirectionParticipant, pmsg, perr); ok {
		return v
	}
	return Verdict{Direction: DirectionUnknown, Canonical: line}
}

// verdict folds one direction's parse outcome. ok is false only when the
// line is unknown to this direction and the other one should be tried.
func verdict(direction string, msg fmt.Stringer, err error) (Verdict, bool) {
	var conflict *message.TimeControlConflictError
	switch {
	case errors.As(err, &conflict):
		return Verdict{
			Direction: direction,
			Kind:      fmt.Sprintf("%T", msg),
			Canonical: msg.String(),
			Warning:   conflict,
		}, true
	case err != nil:
		return Verdict{Direction: direction, Err: err}, true
	}
	if _, unknown := msg.(message.Unknown); unknown {
		return Verdict{}, false
	}
	return Verdict{
		Direction: direction,
		Kind:      fmt.Sprintf("%T", msg),
		Canonical: msg.String(),
	}, true
}

// RoundTrips reports whether line decoded to a real message that
// re-serializes byte-for-byte, the property a compliant peer's output
// holds.
func (v Verdict) RoundTrips(line string) bool {
	return v.Err == nil && v.Direction != DirectionUnknown && v.Canonical == line
}

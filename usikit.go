package usikit

import (
	"github.com/aretw0/usikit/internal/extract"
	"github.com/aretw0/usikit/internal/grammar"
	"github.com/aretw0/usikit/pkg/message"
)

// Version is the library version, reported by the CLI.
const Version = "0.1.0"

// ParseDirector decodes one GUI-to-engine line. The input must carry a CR,
// LF or CRLF terminator; anything after the first terminator is ignored.
// Unterminated input returns message.ErrUnterminated.
//
// A line that matches no command comes back as message.Unknown with a nil
// error. A *message.TimeControlConflictError is returned together with a
// usable message; every other non-nil error means no message.
func ParseDirector(input string) (message.Director, error) {
	line, _, terminated := grammar.SplitLine(input)
	if !terminated {
		return nil, message.ErrUnterminated
	}
	return extract.Director(grammar.MatchDirector(line))
}

// ParseParticipant decodes one engine-to-GUI line under the same contract
// as ParseDirector.
func ParseParticipant(input string) (message.Participant, error) {
	line, _, terminated := grammar.SplitLine(input)
	if !terminated {
		return nil, message.ErrUnterminated
	}
	return extract.Participant(grammar.MatchParticipant(line))
}

package usikit

import (
	"io"

	"github.com/aretw0/usikit/internal/extract"
	"github.com/aretw0/usikit/internal/grammar"
	"github.com/aretw0/usikit/pkg/message"
)

// DirectorStream pulls GUI-to-engine messages out of a multi-line buffer,
// one terminated line at a time. Lines are not touched until asked for, so
// a decode error on line n surfaces on the nth Next call, after the first
// n-1 messages were already delivered. Rewinding means constructing a new
// stream over the same buffer.
type DirectorStream struct {
	lines lineFeed
}

// NewDirectorStream returns a stream over input.
func NewDirectorStream(input string) *DirectorStream {
	return &DirectorStream{lines: lineFeed{rest: input}}
}

// Next returns the next message. It returns io.EOF once the input is
// exhausted. Unlike the single-message entry points, a trailing chunk
// without a terminator is not an error: it is yielded as one final
// message.Unknown. A *message.TimeControlConflictError accompanies a usable
// message; any other non-nil error means the line produced no message, and
// the stream continues past it.
func (s *DirectorStream) Next() (message.Director, error) {
	line, terminated, ok := s.lines.pull()
	if !ok {
		return nil, io.EOF
	}
	if !terminated {
		return message.Unknown{Text: line}, nil
	}
	return extract.Director(grammar.MatchDirector(line))
}

// ParticipantStream pulls engine-to-GUI messages out of a multi-line
// buffer under the same contract as DirectorStream.
type ParticipantStream struct {
	lines lineFeed
}

// NewParticipantStream returns a stream over input.
func NewParticipantStream(input string) *ParticipantStream {
	return &ParticipantStream{lines: lineFeed{rest: input}}
}

// Next returns the next message; see DirectorStream.Next.
func (s *ParticipantStream) Next() (message.Participant, error) {
	line, terminated, ok := s.lines.pull()
	if !ok {
		return nil, io.EOF
	}
	if !terminated {
		return message.Unknown{Text: line}, nil
	}
	return extract.Participant(grammar.MatchParticipant(line))
}

// lineFeed hands out one line per pull and remembers nothing ahead of the
// consumer.
type lineFeed struct {
	rest string
	done bool
}

func (f *lineFeed) pull() (line string, terminated, ok bool) {
	if f.done {
		return "", false, false
	}
	line, f.rest, terminated = grammar.SplitLine(f.rest)
	if !terminated {
		f.done = true
		if line == "" {
			return "", false, false
		}
	}
	return line, terminated, true
}

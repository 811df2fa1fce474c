// Package message defines the typed model for USI protocol messages.
//
// The protocol has two directions, each modeled as a closed union: Director
// messages flow from the controlling program (GUI) to the engine, Participant
// messages flow from the engine back. Every variant knows how to render its
// canonical wire line via String(); the rendering never includes a line
// terminator, the writer appends it.
//
// Message values are immutable once constructed: there are no setters and
// all accessors return copies, so a value may be shared across goroutines
// without synchronization.
package message

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/usikit/pkg/shogi"
)

// StartposSFEN is the standard initial board in SFEN notation, the position
// that "position startpos" refers to.
const StartposSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// Director is a message sent from the controlling program to the engine.
type Director interface {
	fmt.Stringer
	director()
}

// Participant is a message sent from the engine to the controlling program.
type Participant interface {
	fmt.Stringer
	participant()
}

// Unknown wraps a line that matched no command shape. It is a normal,
// representable outcome rather than an error: one piece of peer chatter must
// never abort a protocol session. Text is the offending line without its
// terminator and is rendered back verbatim.
type Unknown struct {
	Text string
}

func (Unknown) director()    {}
func (Unknown) participant() {}

func (u Unknown) String() string { return u.Text }

// millis renders a duration the way the wire expects: base-10 integer
// milliseconds, no unit.
func millis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}

func formatMoves(moves []shogi.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

package message

import (
	"github.com/aretw0/usikit/pkg/shogi"
)

// IdentField says which identity field an id message carries.
type IdentField int

const (
	IdentName IdentField = iota + 1
	IdentAuthor
)

// Identify is the "id name <text>" / "id author <text>" message, sent as
// part of the engine's handshake response.
type Identify struct {
	Field IdentField
	Value string
}

func (Identify) participant() {}

func (i Identify) String() string {
	if i.Field == IdentAuthor {
		return "id author " + i.Value
	}
	return "id name " + i.Value
}

// HandshakeAck is the "usiok" message closing the opening handshake.
type HandshakeAck struct{}

func (HandshakeAck) participant()   {}
func (HandshakeAck) String() string { return "usiok" }

// ReadyAck is the "readyok" answer to a ReadyQuery.
type ReadyAck struct{}

func (ReadyAck) participant()   {}
func (ReadyAck) String() string { return "readyok" }

// BestMoveResult is the payload of a bestmove message: a chosen move with
// an optional ponder move, a resignation, or a win claim.
type BestMoveResult interface {
	bestMoveResult()
}

// MoveChoice is the ordinary bestmove payload.
type MoveChoice struct {
	Move   shogi.Move
	Ponder *shogi.Move
}

func (MoveChoice) bestMoveResult() {}

// Resign is the "bestmove resign" payload.
type Resign struct{}

func (Resign) bestMoveResult() {}

// ClaimWin is the "bestmove win" payload (nyugyoku declaration).
type ClaimWin struct{}

func (ClaimWin) bestMoveResult() {}

// BestMove ends a search and reports its result.
type BestMove struct {
	Result BestMoveResult
}

func (BestMove) participant() {}

func (m BestMove) String() string {
	switch r := m.Result.(type) {
	case MoveChoice:
		s := "bestmove " + r.Move.String()
		if r.Ponder != nil {
			s += " ponder " + r.Ponder.String()
		}
		return s
	case Resign:
		return "bestmove resign"
	case ClaimWin:
		return "bestmove win"
	}
	return "bestmove"
}

// CheckmateResult is the payload of a checkmate message, which terminates a
// "go mate" search.
type CheckmateResult interface {
	checkmateResult()
}

// ForcedMate is a proven mating sequence.
type ForcedMate struct {
	Moves []shogi.Move
}

func (ForcedMate) checkmateResult() {}

// NoMate means the engine proved no forced mate exists.
type NoMate struct{}

func (NoMate) checkmateResult() {}

// MateTimedOut means the mate search ran out of time inconclusively.
type MateTimedOut struct{}

func (MateTimedOut) checkmateResult() {}

// MateUnsupported means the engine does not implement mate search.
type MateUnsupported struct{}

func (MateUnsupported) checkmateResult() {}

// Checkmate reports the outcome of a mate search
// ("checkmate (<move>+ | nomate | timeout | notimplemented)").
type Checkmate struct {
	Result CheckmateResult
}

func (Checkmate) participant() {}

func (c Checkmate) String() string {
	switch r := c.Result.(type) {
	case ForcedMate:
		return "checkmate " + formatMoves(r.Moves)
	case NoMate:
		return "checkmate nomate"
	case MateTimedOut:
		return "checkmate timeout"
	case MateUnsupported:
		return "checkmate notimplemented"
	}
	return "checkmate"
}

// StatusCheck is the state reported by copyprotection and registration
// messages.
type StatusCheck int

const (
	StatusChecking StatusCheck = iota + 1
	StatusOk
	StatusError
)

func (s StatusCheck) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusOk:
		return "ok"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// CopyProtection is the "copyprotection <status>" message.
type CopyProtection struct {
	Status StatusCheck
}

func (CopyProtection) participant() {}

func (c CopyProtection) String() string { return "copyprotection " + c.Status.String() }

// Registration is the "registration <status>" message.
type Registration struct {
	Status StatusCheck
}

func (Registration) participant() {}

func (r Registration) String() string { return "registration " + r.Status.String() }

// OptionDecl declares one configurable engine option.
type OptionDecl struct {
	Spec OptionSpec
}

func (OptionDecl) participant() {}

func (o OptionDecl) String() string { return "option " + o.Spec.wire() }

// SearchInfo carries the info items of one info line, in wire order. Items
// from separate lines are never merged.
type SearchInfo struct {
	Items []InfoItem
}

func (SearchInfo) participant() {}

func (s SearchInfo) String() string {
	out := "info"
	for _, it := range s.Items {
		out += " " + it.wire()
	}
	return out
}

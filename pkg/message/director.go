package message

import (
	"strings"

	"github.com/aretw0/usikit/pkg/shogi"
)

// Handshake is the bare "usi" command that opens the protocol session.
type Handshake struct{}

func (Handshake) director()      {}
func (Handshake) String() string { return "usi" }

// SetDebug toggles the engine's debug mode ("debug on" / "debug off").
type SetDebug struct {
	On bool
}

func (SetDebug) director() {}

func (d SetDebug) String() string {
	if d.On {
		return "debug on"
	}
	return "debug off"
}

// ReadyQuery is the "isready" command; the engine answers with ReadyAck.
type ReadyQuery struct{}

func (ReadyQuery) director()      {}
func (ReadyQuery) String() string { return "isready" }

// SetOption changes an engine option ("setoption name <name> [value <v>]").
// A nil Value means the value clause was absent entirely, which is distinct
// from an empty value string.
type SetOption struct {
	Name  string
	Value *string
}

func (SetOption) director() {}

func (o SetOption) String() string {
	s := "setoption name " + o.Name
	if o.Value == nil {
		return s
	}
	if *o.Value == "" {
		return s + " value"
	}
	return s + " value " + *o.Value
}

// Register carries user registration data. Both fields nil renders the
// "register later" form.
type Register struct {
	Name *string
	Code *string
}

func (Register) director() {}

func (r Register) String() string {
	switch {
	case r.Name == nil && r.Code == nil:
		return "register later"
	case r.Code == nil:
		return "register name " + *r.Name
	case r.Name == nil:
		return "register code " + *r.Code
	default:
		return "register name " + *r.Name + " code " + *r.Code
	}
}

// NewGame is the "usinewgame" command.
type NewGame struct{}

func (NewGame) director()      {}
func (NewGame) String() string { return "usinewgame" }

// BoardSpec selects the base board of a position command: either the
// standard start position or an explicit SFEN string. The zero value is the
// start position, so the invalid both-set and neither-set states cannot be
// expressed.
type BoardSpec struct {
	sfen   string
	custom bool
}

// SfenBoard selects an explicit SFEN board.
func SfenBoard(sfen string) BoardSpec {
	return BoardSpec{sfen: sfen, custom: true}
}

// StartPos selects the standard initial position.
func StartPos() BoardSpec { return BoardSpec{} }

// IsStartpos reports whether the spec is the standard initial position.
func (b BoardSpec) IsStartpos() bool { return !b.custom }

// Sfen returns the SFEN string. ok is false for the start position.
func (b BoardSpec) Sfen() (string, bool) { return b.sfen, b.custom }

// Position sets the board and the moves played from it
// ("position (startpos|sfen <sfen>) [moves <move>+]").
type Position struct {
	Board BoardSpec
	Moves []shogi.Move
}

func (Position) director() {}

func (p Position) String() string {
	var b strings.Builder
	b.WriteString("position ")
	if sfen, ok := p.Board.Sfen(); ok {
		b.WriteString("sfen ")
		b.WriteString(sfen)
	} else {
		b.WriteString("startpos")
	}
	if len(p.Moves) > 0 {
		b.WriteString(" moves ")
		b.WriteString(formatMoves(p.Moves))
	}
	return b.String()
}

// Go starts a search with the given request ("go [subfields...]").
type Go struct {
	Request SearchRequest
}

func (Go) director() {}

func (g Go) String() string { return "go" + g.Request.wire() }

// Stop tells the engine to stop searching as soon as possible.
type Stop struct{}

func (Stop) director()      {}
func (Stop) String() string { return "stop" }

// PonderHit tells the engine the pondered move was actually played.
type PonderHit struct{}

func (PonderHit) director()      {}
func (PonderHit) String() string { return "ponderhit" }

// Outcome is the game result carried by "gameover", from the engine's own
// point of view.
type Outcome int

const (
	OutcomeWin Outcome = iota + 1
	OutcomeLose
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeDraw:
		return "draw"
	}
	return "unknown"
}

// GameOver informs the engine that the game ended ("gameover win|lose|draw").
type GameOver struct {
	Result Outcome
}

func (GameOver) director()        {}
func (g GameOver) String() string { return "gameover " + g.Result.String() }

// Quit tells the engine process to exit.
type Quit struct{}

func (Quit) director()      {}
func (Quit) String() string { return "quit" }

package message

import (
	"strconv"
	"time"

	"github.com/aretw0/usikit/pkg/shogi"
)

// InfoItem is one sub-field of an info line. A SearchInfo holds its items in
// wire order, so a line re-serializes field-for-field.
type InfoItem interface {
	wire() string
}

// Depth is the search depth in plies ("depth <n>").
type Depth uint16

func (d Depth) wire() string { return "depth " + strconv.FormatUint(uint64(d), 10) }

// SelDepth is the selective search depth in plies ("seldepth <n>").
type SelDepth uint16

func (d SelDepth) wire() string { return "seldepth " + strconv.FormatUint(uint64(d), 10) }

// ElapsedTime is the time searched so far ("time <ms>").
type ElapsedTime time.Duration

func (t ElapsedTime) wire() string { return "time " + millis(time.Duration(t)) }

// Nodes is the number of nodes searched ("nodes <n>").
type Nodes uint64

func (n Nodes) wire() string { return "nodes " + strconv.FormatUint(uint64(n), 10) }

// PV is the principal variation ("pv <move>+"). A pv ends its info line.
type PV []shogi.Move

func (p PV) wire() string { return "pv " + formatMoves(p) }

// MultiPV is the line index in multi-pv output, starting at 1
// ("multipv <n>").
type MultiPV uint16

func (m MultiPV) wire() string { return "multipv " + strconv.FormatUint(uint64(m), 10) }

// Bound qualifies a reported score.
type Bound int

const (
	// BoundExact is an exact score; it renders nothing.
	BoundExact Bound = iota
	// BoundLower marks the score as a lower bound ("lowerbound").
	BoundLower
	// BoundUpper marks the score as an upper bound ("upperbound").
	BoundUpper
	// BoundMating is the bare "+" of a mate score with unknown distance:
	// the engine has a forced mate.
	BoundMating
	// BoundMated is the bare "-": the engine is being mated.
	BoundMated
)

func (b Bound) suffix() string {
	switch b {
	case BoundLower:
		return " lowerbound"
	case BoundUpper:
		return " upperbound"
	case BoundMating:
		return " +"
	case BoundMated:
		return " -"
	}
	return ""
}

// CentipawnScore is an evaluation in centipawns from the engine's point of
// view ("score cp <n> [lowerbound|upperbound]").
type CentipawnScore struct {
	Value int32
	Bound Bound
}

func (s CentipawnScore) wire() string {
	return "score cp " + strconv.FormatInt(int64(s.Value), 10) + s.Bound.suffix()
}

// MateScore is a forced-mate evaluation ("score mate <plies>"). Negative
// plies mean the engine is being mated. A nil Plies with BoundMating or
// BoundMated reports a mate of unknown distance ("score mate +" / "-").
type MateScore struct {
	Plies *int32
	Bound Bound
}

func (s MateScore) wire() string {
	if s.Plies == nil {
		return "score mate" + s.Bound.suffix()
	}
	return "score mate " + strconv.FormatInt(int64(*s.Plies), 10) + s.Bound.suffix()
}

// CurrMove is the move currently being searched ("currmove <move>").
type CurrMove struct {
	Move shogi.Move
}

func (c CurrMove) wire() string { return "currmove " + c.Move.String() }

// CurrMoveNumber is the 1-based index of the current move
// ("currmovenumber <n>").
type CurrMoveNumber uint16

func (c CurrMoveNumber) wire() string {
	return "currmovenumber " + strconv.FormatUint(uint64(c), 10)
}

// HashFull is the hash table occupancy in permille ("hashfull <n>").
type HashFull uint16

func (h HashFull) wire() string { return "hashfull " + strconv.FormatUint(uint64(h), 10) }

// NPS is the search speed in nodes per second ("nps <n>").
type NPS uint64

func (n NPS) wire() string { return "nps " + strconv.FormatUint(uint64(n), 10) }

// CPULoad is the CPU usage in permille ("cpuload <n>").
type CPULoad uint16

func (c CPULoad) wire() string { return "cpuload " + strconv.FormatUint(uint64(c), 10) }

// DisplayString is free text the GUI should display ("string <text>"). It
// consumes the rest of its line.
type DisplayString string

func (s DisplayString) wire() string { return "string " + string(s) }

// Refutation is a refutation line; the first move is the move being refuted
// ("refutation <move>+").
type Refutation []shogi.Move

func (r Refutation) wire() string { return "refutation " + formatMoves(r) }

// CurrLine is the line currently being calculated, optionally tagged with
// the calculating CPU ("currline [<cpu>] <move>+").
type CurrLine struct {
	CPU  *uint16
	Line []shogi.Move
}

func (c CurrLine) wire() string {
	if c.CPU != nil {
		return "currline " + strconv.FormatUint(uint64(*c.CPU), 10) + " " + formatMoves(c.Line)
	}
	return "currline " + formatMoves(c.Line)
}

package message

import (
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/usikit/pkg/shogi"
)

// TimePolicy is the time setting of a search request. Exactly one variant is
// active per request: pondering, infinite search, an exact per-move time, or
// a clock reading. A nil TimePolicy means the go line carried no time
// sub-fields at all.
type TimePolicy interface {
	timePolicy()
}

// Ponder starts the search in ponder mode ("go ponder").
type Ponder struct{}

func (Ponder) timePolicy() {}

// Infinite searches until a stop command arrives ("go infinite").
type Infinite struct{}

func (Infinite) timePolicy() {}

// MoveTime searches for exactly this long ("go movetime <ms>").
type MoveTime struct {
	Duration time.Duration
}

func (MoveTime) timePolicy() {}

// Clock is the game clock reading merged from the clock sub-fields of one
// go line. Every field is an independent optional sub-reading; absent
// sub-fields stay nil.
type Clock struct {
	// BlackTime and WhiteTime are the main clocks ("btime", "wtime").
	BlackTime *time.Duration
	WhiteTime *time.Duration

	// BlackInc and WhiteInc are per-move increments ("binc", "winc").
	BlackInc *time.Duration
	WhiteInc *time.Duration

	// Byoyomi is the per-move grace allowance after the main clock runs
	// out ("byoyomi"), used instead of increments in most shogi play.
	Byoyomi *time.Duration

	// MovesToGo is the number of moves to the next time control
	// ("movestogo"). Rarely used in shogi.
	MovesToGo *uint16
}

func (Clock) timePolicy() {}

// MateLimit bounds a mate search: either a timeout in milliseconds or
// unbounded ("go mate <ms>" / "go mate infinite").
type MateLimit struct {
	timeout   time.Duration
	unbounded bool
}

// MateTimeout limits the mate search to d.
func MateTimeout(d time.Duration) MateLimit {
	return MateLimit{timeout: d}
}

// MateUnbounded searches for a forced mate until one is found.
func MateUnbounded() MateLimit {
	return MateLimit{unbounded: true}
}

// Unbounded reports whether the mate search has no time limit.
func (m MateLimit) Unbounded() bool { return m.unbounded }

// Timeout returns the mate search time limit. ok is false when unbounded.
func (m MateLimit) Timeout() (time.Duration, bool) {
	if m.unbounded {
		return 0, false
	}
	return m.timeout, true
}

// SearchLimits are the non-time search bounds of one go line.
type SearchLimits struct {
	Mate  *MateLimit
	Depth *uint16
	Nodes *uint64
}

// SearchRequest is the merged payload of a go command.
type SearchRequest struct {
	// SearchMoves restricts the search to these moves ("searchmoves").
	SearchMoves []shogi.Move

	// Time is the active time policy, nil if none was given.
	Time TimePolicy

	// Limits holds depth/nodes/mate bounds, nil if none were given.
	Limits *SearchLimits
}

// wire renders the sub-fields in canonical order: ponder, clock fields,
// depth, nodes, mate, movetime, infinite, searchmoves. The result is empty
// or starts with a space.
func (r SearchRequest) wire() string {
	var b strings.Builder

	if _, ok := r.Time.(Ponder); ok {
		b.WriteString(" ponder")
	}
	if c, ok := r.Time.(Clock); ok {
		writeClock(&b, c)
	}
	if l := r.Limits; l != nil {
		if l.Depth != nil {
			b.WriteString(" depth ")
			b.WriteString(strconv.FormatUint(uint64(*l.Depth), 10))
		}
		if l.Nodes != nil {
			b.WriteString(" nodes ")
			b.WriteString(strconv.FormatUint(*l.Nodes, 10))
		}
		if l.Mate != nil {
			if t, ok := l.Mate.Timeout(); ok {
				b.WriteString(" mate ")
				b.WriteString(millis(t))
			} else {
				b.WriteString(" mate infinite")
			}
		}
	}
	if mt, ok := r.Time.(MoveTime); ok {
		b.WriteString(" movetime ")
		b.WriteString(millis(mt.Duration))
	}
	if _, ok := r.Time.(Infinite); ok {
		b.WriteString(" infinite")
	}
	if len(r.SearchMoves) > 0 {
		b.WriteString(" searchmoves ")
		b.WriteString(formatMoves(r.SearchMoves))
	}

	return b.String()
}

func writeClock(b *strings.Builder, c Clock) {
	writeMillis := func(key string, d *time.Duration) {
		if d != nil {
			b.WriteString(" ")
			b.WriteString(key)
			b.WriteString(" ")
			b.WriteString(millis(*d))
		}
	}
	writeMillis("btime", c.BlackTime)
	writeMillis("wtime", c.WhiteTime)
	writeMillis("binc", c.BlackInc)
	writeMillis("winc", c.WhiteInc)
	writeMillis("byoyomi", c.Byoyomi)
	if c.MovesToGo != nil {
		b.WriteString(" movestogo ")
		b.WriteString(strconv.FormatUint(uint64(*c.MovesToGo), 10))
	}
}

// Package shogi implements the move notation used on the USI wire.
//
// The notation is purely syntactic: a move is either a board move
// "<from><to>" with an optional trailing '+' for promotion (e.g. "7g7f",
// "8h2b+"), or a drop "<piece>*<square>" (e.g. "P*5e"). The package does not
// know board rules and never validates legality; that is the caller's domain.
package shogi

import "fmt"

// Piece identifies a droppable piece in move notation.
type Piece byte

const (
	Pawn   Piece = 'P'
	Lance  Piece = 'L'
	Knight Piece = 'N'
	Silver Piece = 'S'
	Gold   Piece = 'G'
	Bishop Piece = 'B'
	Rook   Piece = 'R'
)

func validPiece(b byte) bool {
	switch Piece(b) {
	case Pawn, Lance, Knight, Silver, Gold, Bishop, Rook:
		return true
	}
	return false
}

// Square is a board coordinate: file 1..9, rank 1..9 (written a..i).
type Square struct {
	file int8
	rank int8
}

// NewSquare builds a square from 1-based file and rank numbers.
func NewSquare(file, rank int) (Square, error) {
	if file < 1 || file > 9 || rank < 1 || rank > 9 {
		return Square{}, fmt.Errorf("square out of range: file %d rank %d", file, rank)
	}
	return Square{file: int8(file), rank: int8(rank)}, nil
}

// File returns the 1-based file number.
func (s Square) File() int { return int(s.file) }

// Rank returns the 1-based rank number (rank 1 is written "a").
func (s Square) Rank() int { return int(s.rank) }

func (s Square) String() string {
	return string([]byte{byte('0' + s.file), byte('a' + s.rank - 1)})
}

// Move is one move in USI notation. The zero value is not a valid move;
// construct via NewMove, NewDrop or ParseMove. Moves are immutable values
// and safe to copy and compare with ==.
type Move struct {
	from    Square
	to      Square
	piece   Piece // nonzero for drops
	promote bool
}

// NewMove builds a board move, optionally promoting.
func NewMove(from, to Square, promote bool) Move {
	return Move{from: from, to: to, promote: promote}
}

// NewDrop builds a drop of piece onto to.
func NewDrop(piece Piece, to Square) Move {
	return Move{piece: piece, to: to}
}

// From returns the origin square. ok is false for drops.
func (m Move) From() (Square, bool) {
	if m.piece != 0 {
		return Square{}, false
	}
	return m.from, true
}

// To returns the destination square.
func (m Move) To() Square { return m.to }

// Drop returns the dropped piece. ok is false for board moves.
func (m Move) Drop() (Piece, bool) {
	if m.piece == 0 {
		return 0, false
	}
	return m.piece, true
}

// Promotes reports whether the move carries the '+' promotion suffix.
func (m Move) Promotes() bool { return m.promote }

// String renders the move in exact wire notation.
func (m Move) String() string {
	if m.piece != 0 {
		return string([]byte{byte(m.piece), '*'}) + m.to.String()
	}
	s := m.from.String() + m.to.String()
	if m.promote {
		s += "+"
	}
	return s
}

// MoveError reports move text that does not conform to the notation.
type MoveError struct {
	Text string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("invalid move notation %q", e.Text)
}

// ParseMove decodes one move token. It accepts exactly the wire notation:
// no surrounding whitespace, no alternative spellings.
func ParseMove(s string) (Move, error) {
	// Drop: "P*5e"
	if len(s) == 4 && s[1] == '*' {
		if !validPiece(s[0]) {
			return Move{}, &MoveError{Text: s}
		}
		to, ok := parseSquare(s[2], s[3])
		if !ok {
			return Move{}, &MoveError{Text: s}
		}
		return NewDrop(Piece(s[0]), to), nil
	}

	// Board move: "7g7f" or "8h2b+"
	promote := false
	if len(s) == 5 && s[4] == '+' {
		promote = true
		s = s[:4]
	}
	if len(s) != 4 {
		return Move{}, &MoveError{Text: orig(s, promote)}
	}
	from, ok := parseSquare(s[0], s[1])
	if !ok {
		return Move{}, &MoveError{Text: orig(s, promote)}
	}
	to, ok := parseSquare(s[2], s[3])
	if !ok {
		return Move{}, &MoveError{Text: orig(s, promote)}
	}
	// A null move is not representable in the notation.
	if from == to {
		return Move{}, &MoveError{Text: orig(s, promote)}
	}
	return NewMove(from, to, promote), nil
}

func orig(s string, promoted bool) string {
	if promoted {
		return s + "+"
	}
	return s
}

func parseSquare(file, rank byte) (Square, bool) {
	if file < '1' || file > '9' || rank < 'a' || rank > 'i' {
		return Square{}, false
	}
	return Square{file: int8(file - '0'), rank: int8(rank - 'a' + 1)}, true
}

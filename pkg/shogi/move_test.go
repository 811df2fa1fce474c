package shogi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove_BoardMoves(t *testing.T) {
	m, err := ParseMove("7g7f")
	require.NoError(t, err)

	from, ok := m.From()
	require.True(t, ok)
	assert.Equal(t, 7, from.File())
	assert.Equal(t, 7, from.Rank())
	assert.Equal(t, 7, m.To().File())
	assert.Equal(t, 6, m.To().Rank())
	assert.False(t, m.Promotes())
	assert.Equal(t, "7g7f", m.String())
}

func TestParseMove_Promotion(t *testing.T) {
	m, err := ParseMove("8h2b+")
	require.NoError(t, err)
	assert.True(t, m.Promotes())
	assert.Equal(t, "8h2b+", m.String())
}

func TestParseMove_Drop(t *testing.T) {
	m, err := ParseMove("P*5e")
	require.NoError(t, err)

	piece, ok := m.Drop()
	require.True(t, ok)
	assert.Equal(t, Pawn, piece)

	_, ok = m.From()
	assert.False(t, ok, "drops have no origin square")
	assert.Equal(t, "P*5e", m.String())
}

func TestParseMove_Invalid(t *testing.T) {
	for _, text := range []string{
		"", "7g", "7g7", "7g7j", "0a1a", "7g7f++", "X*5e", "P*5j", "p*5e", "7g7f ", "resign",
		"7g7g", "7g7g+",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseMove(text)
			require.Error(t, err)

			var merr *MoveError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, text, merr.Text)
		})
	}
}

func TestMove_Comparable(t *testing.T) {
	a, err := ParseMove("2g2f")
	require.NoError(t, err)
	b, err := ParseMove("2g2f")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, a == b)
}

func TestNewSquare_Range(t *testing.T) {
	sq, err := NewSquare(5, 1)
	require.NoError(t, err)
	assert.Equal(t, "5a", sq.String())

	_, err = NewSquare(10, 1)
	assert.Error(t, err)
	_, err = NewSquare(1, 0)
	assert.Error(t, err)
}

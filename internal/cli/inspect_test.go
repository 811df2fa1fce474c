package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/usikit/pkg/message"
)

func TestInspect_Directions(t *testing.T) {
	v := Inspect("position startpos moves 7g7f")
	assert.Equal(t, DirectionDirector, v.Direction)
	assert.Equal(t, "message.Position", v.Kind)
	assert.Equal(t, "position startpos moves 7g7f", v.Canonical)
	assert.NoError(t, v.Err)

	v = Inspect("bestmove 7g7f ponder 3c3d")
	assert.Equal(t, DirectionParticipant, v.Direction)
	assert.Equal(t, "message.BestMove", v.Kind)

	v = Inspect("flip mode")
	assert.Equal(t, DirectionUnknown, v.Direction)
	assert.Equal(t, "flip mode", v.Canonical)
}

func TestInspect_DecodeError(t *testing.T) {
	v := Inspect("go depth 70000")
	assert.Equal(t, DirectionDirector, v.Direction)
	var derr *message.DecodeError
	require.ErrorAs(t, v.Err, &derr)
	assert.Empty(t, v.Kind)
}

func TestInspect_ConflictIsWarning(t *testing.T) {
	v := Inspect("go ponder btime 1000")
	assert.Equal(t, DirectionDirector, v.Direction)
	assert.NoError(t, v.Err)
	var conflict *message.TimeControlConflictError
	require.ErrorAs(t, v.Warning, &conflict)
	assert.Equal(t, "go ponder", v.Canonical)
}

func TestVerdict_RoundTrips(t *testing.T) {
	assert.True(t, Inspect("usi").RoundTrips("usi"))
	// extra whitespace parses but is not canonical
	assert.False(t, Inspect("usi ").RoundTrips("usi "))
	assert.False(t, Inspect("flip mode").RoundTrips("flip mode"))
	assert.False(t, Inspect("go depth 70000").RoundTrips("go depth 70000"))
}

package usikit_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/usikit"
	"github.com/aretw0/usikit/pkg/message"
	"github.com/aretw0/usikit/pkg/shogi"
)

func mv(t *testing.T, s string) shogi.Move {
	t.Helper()
	m, err := shogi.ParseMove(s)
	require.NoError(t, err)
	return m
}

func TestParseDirector_Handshake(t *testing.T) {
	msg, err := usikit.ParseDirector("usi\n")
	require.NoError(t, err)
	assert.Equal(t, message.Handshake{}, msg)
	assert.Equal(t, "usi", msg.String())
}

func TestParseDirector_PositionStartpos(t *testing.T) {
	msg, err := usikit.ParseDirector("position startpos moves 2g2f 8c8d\n")
	require.NoError(t, err)
	pos := msg.(message.Position)
	assert.True(t, pos.Board.IsStartpos())
	assert.Equal(t, []shogi.Move{mv(t, "2g2f"), mv(t, "8c8d")}, pos.Moves)
}

func TestParseDirector_GoClock(t *testing.T) {
	msg, err := usikit.ParseDirector("go btime 300000 wtime 300000 byoyomi 5000\n")
	require.NoError(t, err)
	req := msg.(message.Go).Request
	clock := req.Time.(message.Clock)
	require.NotNil(t, clock.BlackTime)
	assert.Equal(t, 5*time.Minute, *clock.BlackTime)
	require.NotNil(t, clock.WhiteTime)
	assert.Equal(t, 5*time.Minute, *clock.WhiteTime)
	require.NotNil(t, clock.Byoyomi)
	assert.Equal(t, 5*time.Second, *clock.Byoyomi)
	assert.Nil(t, clock.BlackInc)
	assert.Nil(t, clock.WhiteInc)
	assert.Nil(t, clock.MovesToGo)
	assert.Nil(t, req.Limits)
}

func TestParseParticipant_BestMovePonder(t *testing.T) {
	msg, err := usikit.ParseParticipant("bestmove 8c8d ponder 3c3d\n")
	require.NoError(t, err)
	choice := msg.(message.BestMove).Result.(message.MoveChoice)
	assert.Equal(t, mv(t, "8c8d"), choice.Move)
	require.NotNil(t, choice.Ponder)
	assert.Equal(t, mv(t, "3c3d"), *choice.Ponder)
}

func TestParseParticipant_ComboOption(t *testing.T) {
	msg, err := usikit.ParseParticipant(
		"option name Style type combo default Normal var Solid var Normal var Wild\n")
	require.NoError(t, err)
	combo := msg.(message.OptionDecl).Spec.(message.ComboOption)
	assert.Equal(t, "Style", combo.Name)
	require.NotNil(t, combo.Default)
	assert.Equal(t, "Normal", *combo.Default)
	assert.Equal(t, []string{"Solid", "Normal", "Wild"}, combo.Choices)
}

func TestParseParticipant_InfoOrder(t *testing.T) {
	msg, err := usikit.ParseParticipant("info depth 2 score cp 214 time 1242 nodes 2124 pv 2g2f 8c8d\n")
	require.NoError(t, err)
	info := msg.(message.SearchInfo)
	require.Len(t, info.Items, 5)
	assert.Equal(t, message.Depth(2), info.Items[0])
	assert.Equal(t, message.CentipawnScore{Value: 214}, info.Items[1])
	assert.Equal(t, message.ElapsedTime(1242*time.Millisecond), info.Items[2])
	assert.Equal(t, message.Nodes(2124), info.Items[3])
	assert.Equal(t, message.PV{mv(t, "2g2f"), mv(t, "8c8d")}, info.Items[4])
}

func TestParse_RequiresTerminator(t *testing.T) {
	_, err := usikit.ParseDirector("usi")
	assert.ErrorIs(t, err, message.ErrUnterminated)

	_, err = usikit.ParseParticipant("usiok")
	assert.ErrorIs(t, err, message.ErrUnterminated)

	// CR and CRLF are terminators too
	for _, input := range []string{"usi\r", "usi\r\n"} {
		msg, err := usikit.ParseDirector(input)
		require.NoError(t, err)
		assert.Equal(t, message.Handshake{}, msg)
	}
}

func TestParse_IgnoresTrailingLines(t *testing.T) {
	msg, err := usikit.ParseDirector("usi\nisready\n")
	require.NoError(t, err)
	assert.Equal(t, message.Handshake{}, msg)
}

func TestParse_GoConflictReturnsUsableMessage(t *testing.T) {
	msg, err := usikit.ParseDirector("go ponder btime 60000 wtime 50000\n")

	var conflict *message.TimeControlConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"btime", "wtime"}, conflict.Dropped)

	require.NotNil(t, msg)
	assert.Equal(t, message.Ponder{}, msg.(message.Go).Request.Time)
}

// Parsing is total: arbitrary terminated bytes classify without a panic.
func TestParse_Totality(t *testing.T) {
	inputs := []string{
		"\n",
		"\x00\x01\x02\n",
		strings.Repeat("a", 1<<16) + "\n",
		"go go go go\n",
		"info info info\n",
		"position sfen\n",
		"setoption name\n",
		"usi extra\n",
		"\tusi\n",
		"usi \n",
		"ＵＳＩ 将棋\n",
	}
	for _, input := range inputs {
		d, err := usikit.ParseDirector(input)
		if err == nil {
			require.NotNil(t, d)
			_ = d.String()
		}
		p, err := usikit.ParseParticipant(input)
		if err == nil {
			require.NotNil(t, p)
			_ = p.String()
		}
	}
}

// A leading tab or trailing space is insignificant between tokens but makes
// the line non-canonical; the message still parses.
func TestParse_WhitespaceTolerance(t *testing.T) {
	msg, err := usikit.ParseDirector("usi \n")
	require.NoError(t, err)
	assert.Equal(t, message.Handshake{}, msg)

	msg, err = usikit.ParseDirector("go  btime  1000\n")
	require.NoError(t, err)
	clock := msg.(message.Go).Request.Time.(message.Clock)
	require.NotNil(t, clock.BlackTime)
	assert.Equal(t, time.Second, *clock.BlackTime)
}

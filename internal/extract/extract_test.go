package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/usikit/internal/grammar"
	"github.com/aretw0/usikit/pkg/message"
	"github.com/aretw0/usikit/pkg/shogi"
)

func director(t *testing.T, line string) message.Director {
	t.Helper()
	msg, err := Director(grammar.MatchDirector(line))
	require.NoError(t, err)
	require.NotNil(t, msg)
	return msg
}

func participant(t *testing.T, line string) message.Participant {
	t.Helper()
	msg, err := Participant(grammar.MatchParticipant(line))
	require.NoError(t, err)
	require.NotNil(t, msg)
	return msg
}

func mustMove(t *testing.T, s string) shogi.Move {
	t.Helper()
	m, err := shogi.ParseMove(s)
	require.NoError(t, err)
	return m
}

func TestDirector_Simple(t *testing.T) {
	assert.Equal(t, message.Handshake{}, director(t, "usi"))
	assert.Equal(t, message.ReadyQuery{}, director(t, "isready"))
	assert.Equal(t, message.Stop{}, director(t, "stop"))
	assert.Equal(t, message.Quit{}, director(t, "quit"))

	// debug with no mode flips on
	assert.Equal(t, message.SetDebug{On: true}, director(t, "debug"))
	assert.Equal(t, message.SetDebug{On: true}, director(t, "debug on"))
	assert.Equal(t, message.SetDebug{On: false}, director(t, "debug off"))

	assert.Equal(t, message.GameOver{Result: message.OutcomeLose}, director(t, "gameover lose"))
}

func TestDirector_SetOptionValuePresence(t *testing.T) {
	msg := director(t, "setoption name USI_Hash value 256")
	opt, ok := msg.(message.SetOption)
	require.True(t, ok)
	assert.Equal(t, "USI_Hash", opt.Name)
	require.NotNil(t, opt.Value)
	assert.Equal(t, "256", *opt.Value)

	msg = director(t, "setoption name BookFile value")
	opt = msg.(message.SetOption)
	require.NotNil(t, opt.Value)
	assert.Equal(t, "", *opt.Value)

	msg = director(t, "setoption name USI_Ponder")
	opt = msg.(message.SetOption)
	assert.Nil(t, opt.Value)
}

func TestDirector_Register(t *testing.T) {
	msg := director(t, "register later")
	reg := msg.(message.Register)
	assert.Nil(t, reg.Name)
	assert.Nil(t, reg.Code)

	reg = director(t, "register name Okada Yoshiharu code 12345").(message.Register)
	require.NotNil(t, reg.Name)
	require.NotNil(t, reg.Code)
	assert.Equal(t, "Okada Yoshiharu", *reg.Name)
	assert.Equal(t, "12345", *reg.Code)
}

func TestDirector_Position(t *testing.T) {
	pos := director(t, "position startpos moves 7g7f 3c3d").(message.Position)
	assert.True(t, pos.Board.IsStartpos())
	assert.Equal(t, []shogi.Move{mustMove(t, "7g7f"), mustMove(t, "3c3d")}, pos.Moves)

	sfen := "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"
	pos = director(t, "position sfen "+sfen).(message.Position)
	assert.False(t, pos.Board.IsStartpos())
	got, custom := pos.Board.Sfen()
	assert.True(t, custom)
	assert.Equal(t, sfen, got)
	assert.Empty(t, pos.Moves)

	// a near-miss move token is a decode error, not an unknown line
	_, err := Director(grammar.MatchDirector("position startpos moves 7g7g"))
	var derr *message.DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "position", derr.Command)
	assert.Equal(t, "7g7g", derr.Token)
}

func TestDirector_GoClockAndLimits(t *testing.T) {
	msg := director(t, "go btime 60000 wtime 50000 binc 1000 winc 2000 byoyomi 10000 movestogo 40 depth 24 nodes 5000000")
	req := msg.(message.Go).Request

	clock, ok := req.Time.(message.Clock)
	require.True(t, ok)
	require.NotNil(t, clock.BlackTime)
	assert.Equal(t, time.Minute, *clock.BlackTime)
	require.NotNil(t, clock.Byoyomi)
	assert.Equal(t, 10*time.Second, *clock.Byoyomi)
	require.NotNil(t, clock.MovesToGo)
	assert.Equal(t, uint16(40), *clock.MovesToGo)

	require.NotNil(t, req.Limits)
	require.NotNil(t, req.Limits.Depth)
	assert.Equal(t, uint16(24), *req.Limits.Depth)
	require.NotNil(t, req.Limits.Nodes)
	assert.Equal(t, uint64(5000000), *req.Limits.Nodes)
	assert.Nil(t, req.Limits.Mate)
}

func TestDirector_GoSelectors(t *testing.T) {
	req := director(t, "go ponder").(message.Go).Request
	assert.Equal(t, message.Ponder{}, req.Time)

	req = director(t, "go infinite").(message.Go).Request
	assert.Equal(t, message.Infinite{}, req.Time)

	req = director(t, "go movetime 2500").(message.Go).Request
	assert.Equal(t, message.MoveTime{Duration: 2500 * time.Millisecond}, req.Time)

	req = director(t, "go").(message.Go).Request
	assert.Nil(t, req.Time)
	assert.Nil(t, req.Limits)
	assert.Empty(t, req.SearchMoves)

	req = director(t, "go mate infinite").(message.Go).Request
	require.NotNil(t, req.Limits)
	require.NotNil(t, req.Limits.Mate)
	assert.True(t, req.Limits.Mate.Unbounded())

	req = director(t, "go mate 60000").(message.Go).Request
	d, bounded := req.Limits.Mate.Timeout()
	assert.True(t, bounded)
	assert.Equal(t, time.Minute, d)
}

func TestDirector_GoConflictKeepsSelector(t *testing.T) {
	n := grammar.MatchDirector("go ponder btime 60000 wtime 50000")
	msg, err := Director(n)

	var conflict *message.TimeControlConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"btime", "wtime"}, conflict.Dropped)

	// the message is still usable
	require.NotNil(t, msg)
	req := msg.(message.Go).Request
	assert.Equal(t, message.Ponder{}, req.Time)
}

func TestDirector_GoRepeatedFieldLastWins(t *testing.T) {
	req := director(t, "go movetime 1000 movetime 2000").(message.Go).Request
	assert.Equal(t, message.MoveTime{Duration: 2 * time.Second}, req.Time)
}

func TestParticipant_Simple(t *testing.T) {
	assert.Equal(t, message.HandshakeAck{}, participant(t, "usiok"))
	assert.Equal(t, message.ReadyAck{}, participant(t, "readyok"))

	id := participant(t, "id name Lesserkai 1.0").(message.Identify)
	assert.Equal(t, message.IdentName, id.Field)
	assert.Equal(t, "Lesserkai 1.0", id.Value)

	id = participant(t, "id author Program Writer").(message.Identify)
	assert.Equal(t, message.IdentAuthor, id.Field)

	cp := participant(t, "copyprotection checking").(message.CopyProtection)
	assert.Equal(t, message.StatusChecking, cp.Status)
	reg := participant(t, "registration error").(message.Registration)
	assert.Equal(t, message.StatusError, reg.Status)
}

func TestParticipant_BestMove(t *testing.T) {
	bm := participant(t, "bestmove resign").(message.BestMove)
	assert.Equal(t, message.Resign{}, bm.Result)

	bm = participant(t, "bestmove win").(message.BestMove)
	assert.Equal(t, message.ClaimWin{}, bm.Result)

	bm = participant(t, "bestmove 8h2b+ ponder 3c3d").(message.BestMove)
	choice := bm.Result.(message.MoveChoice)
	assert.Equal(t, mustMove(t, "8h2b+"), choice.Move)
	require.NotNil(t, choice.Ponder)
	assert.Equal(t, mustMove(t, "3c3d"), *choice.Ponder)
}

func TestParticipant_Checkmate(t *testing.T) {
	cm := participant(t, "checkmate nomate").(message.Checkmate)
	assert.Equal(t, message.NoMate{}, cm.Result)

	cm = participant(t, "checkmate timeout").(message.Checkmate)
	assert.Equal(t, message.MateTimedOut{}, cm.Result)

	cm = participant(t, "checkmate G*8f 9f9g").(message.Checkmate)
	mate := cm.Result.(message.ForcedMate)
	assert.Equal(t, []shogi.Move{mustMove(t, "G*8f"), mustMove(t, "9f9g")}, mate.Moves)
}

func TestParticipant_Options(t *testing.T) {
	decl := participant(t, "option name USI_Ponder type check default true").(message.OptionDecl)
	check := decl.Spec.(message.CheckOption)
	assert.Equal(t, "USI_Ponder", check.Name)
	require.NotNil(t, check.Default)
	assert.True(t, *check.Default)

	decl = participant(t, "option name USI_Hash type spin default 256 min 1 max 4096").(message.OptionDecl)
	spin := decl.Spec.(message.SpinOption)
	require.NotNil(t, spin.Default)
	assert.Equal(t, int64(256), *spin.Default)
	require.NotNil(t, spin.Min)
	assert.Equal(t, int64(1), *spin.Min)
	require.NotNil(t, spin.Max)
	assert.Equal(t, int64(4096), *spin.Max)

	decl = participant(t, "option name Style type combo default Normal var Solid var Normal var Risky").(message.OptionDecl)
	combo := decl.Spec.(message.ComboOption)
	require.NotNil(t, combo.Default)
	assert.Equal(t, "Normal", *combo.Default)
	assert.Equal(t, []string{"Solid", "Normal", "Risky"}, combo.Choices)

	decl = participant(t, "option name Clear Hash type button").(message.OptionDecl)
	assert.Equal(t, message.ButtonOption{Name: "Clear Hash"}, decl.Spec)

	// <empty> decodes to a present empty default
	decl = participant(t, "option name BookFile type string default <empty>").(message.OptionDecl)
	str := decl.Spec.(message.StringOption)
	require.NotNil(t, str.Default)
	assert.Equal(t, "", *str.Default)

	decl = participant(t, "option name LearningFile type filename default public.bin").(message.OptionDecl)
	file := decl.Spec.(message.FilenameOption)
	require.NotNil(t, file.Default)
	assert.Equal(t, "public.bin", *file.Default)

	decl = participant(t, "option name BookFile type string").(message.OptionDecl)
	assert.Nil(t, decl.Spec.(message.StringOption).Default)
}

func TestParticipant_InfoItemsInOrder(t *testing.T) {
	msg := participant(t, "info time 1141 depth 3 seldepth 5 nodes 135125 score cp -1521 upperbound pv 3a3b L*4h 4c4d")
	info := msg.(message.SearchInfo)
	require.Len(t, info.Items, 6)
	assert.Equal(t, message.ElapsedTime(1141*time.Millisecond), info.Items[0])
	assert.Equal(t, message.Depth(3), info.Items[1])
	assert.Equal(t, message.SelDepth(5), info.Items[2])
	assert.Equal(t, message.Nodes(135125), info.Items[3])
	assert.Equal(t, message.CentipawnScore{Value: -1521, Bound: message.BoundUpper}, info.Items[4])
	assert.Equal(t, message.PV{
		mustMove(t, "3a3b"), mustMove(t, "L*4h"), mustMove(t, "4c4d"),
	}, info.Items[5])
}

func TestParticipant_InfoScoreMate(t *testing.T) {
	info := participant(t, "info score mate 5").(message.SearchInfo)
	ms := info.Items[0].(message.MateScore)
	require.NotNil(t, ms.Plies)
	assert.Equal(t, int32(5), *ms.Plies)
	assert.Equal(t, message.BoundExact, ms.Bound)

	info = participant(t, "info score mate +").(message.SearchInfo)
	ms = info.Items[0].(message.MateScore)
	assert.Nil(t, ms.Plies)
	assert.Equal(t, message.BoundMating, ms.Bound)

	info = participant(t, "info score mate -").(message.SearchInfo)
	ms = info.Items[0].(message.MateScore)
	assert.Equal(t, message.BoundMated, ms.Bound)
}

func TestParticipant_InfoCurrLineAndMove(t *testing.T) {
	info := participant(t, "info currmove 2g2f currmovenumber 2").(message.SearchInfo)
	require.Len(t, info.Items, 2)
	assert.Equal(t, message.CurrMove{Move: mustMove(t, "2g2f")}, info.Items[0])
	assert.Equal(t, message.CurrMoveNumber(2), info.Items[1])

	info = participant(t, "info currline 2 7g7f 3c3d").(message.SearchInfo)
	cl := info.Items[0].(message.CurrLine)
	require.NotNil(t, cl.CPU)
	assert.Equal(t, uint16(2), *cl.CPU)
	assert.Len(t, cl.Line, 2)

	info = participant(t, "info refutation 8h2b+ 3a2b").(message.SearchInfo)
	assert.Equal(t, message.Refutation{
		mustMove(t, "8h2b+"), mustMove(t, "3a2b"),
	}, info.Items[0])
}

func TestParticipant_InfoString(t *testing.T) {
	info := participant(t, "info string 7g7f (70%)").(message.SearchInfo)
	assert.Equal(t, message.DisplayString("7g7f (70%)"), info.Items[0])
}

func TestDecode_RangeErrors(t *testing.T) {
	// shape passes the grammar, range fails the decode
	_, err := Director(grammar.MatchDirector("go depth 70000"))
	var derr *message.DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "go", derr.Command)
	assert.Equal(t, "depth", derr.Field)

	_, err = Participant(grammar.MatchParticipant("info hashfull 99999"))
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "hashfull", derr.Field)

	_, err = Director(grammar.MatchDirector("go btime 99999999999999999999"))
	require.ErrorAs(t, err, &derr)
}

func TestUnknownFallsThrough(t *testing.T) {
	msg, err := Director(grammar.MatchDirector("flip mode"))
	require.NoError(t, err)
	assert.Equal(t, message.Unknown{Text: "flip mode"}, msg)

	pmsg, err := Participant(grammar.MatchParticipant("usi"))
	require.NoError(t, err)
	assert.Equal(t, message.Unknown{Text: "usi"}, pmsg)
}

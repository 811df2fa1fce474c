/*
Package usikit is a bidirectional codec for the USI (Universal Shogi
Interface) text protocol spoken between shogi GUIs and engines.

It turns protocol lines into typed messages and typed messages back into
canonical wire text. The two directions are modeled as closed unions:
message.Director for GUI-to-engine commands (usi, setoption, position, go,
stop, ...) and message.Participant for engine-to-GUI commands (id, bestmove,
info, option, ...). Parsing never fails to classify: a line no command rule
matches becomes a message.Unknown carrying the verbatim text, so one garbled
line cannot derail a session.

# Parsing

ParseDirector and ParseParticipant decode exactly one terminated line:

	msg, err := usikit.ParseDirector("go btime 60000 wtime 50000\n")
	if err != nil {
		log.Fatal(err)
	}
	g := msg.(message.Go)

For multi-line buffers, DirectorStream and ParticipantStream pull one
message per terminated line:

	s := usikit.NewParticipantStream(buf)
	for {
		msg, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		// ...
	}

# Serializing

Every message serializes through String(), producing the exact canonical
wire form without a terminator:

	move, _ := shogi.ParseMove("7g7f")
	bm := message.BestMove{Result: message.MoveChoice{Move: move}}
	fmt.Println(bm) // "bestmove 7g7f"

Parsing a canonical line and serializing the result yields the same line
back.

# Errors

A recognized command whose payload fails finer decoding (bad move notation,
a number out of range) reports a *message.DecodeError. A go line mixing an
exclusive time policy with clock readings still parses; the drop is reported
as a *message.TimeControlConflictError alongside the usable message.
*/
package usikit

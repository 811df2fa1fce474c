package extract

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/aretw0/usikit/internal/grammar"
	"github.com/aretw0/usikit/pkg/message"
	"github.com/aretw0/usikit/pkg/shogi"
)

// Leaf decoding shared by both directions. The grammar already checked the
// token shapes, so failures here are range errors and strict move notation
// rejections; all of them surface as *message.DecodeError, never a panic.

const maxMillis = math.MaxInt64 / int64(time.Millisecond)

func decodeMillis(command, field, token string) (time.Duration, error) {
	ms, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, &message.DecodeError{Command: command, Field: field, Token: token, Err: err}
	}
	if ms > maxMillis {
		return 0, &message.DecodeError{
			Command: command, Field: field, Token: token,
			Err: fmt.Errorf("duration overflows: %d ms", ms),
		}
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func decodeUint16(command, field, token string) (uint16, error) {
	v, err := strconv.ParseUint(token, 10, 16)
	if err != nil {
		return 0, &message.DecodeError{Command: command, Field: field, Token: token, Err: err}
	}
	return uint16(v), nil
}

func decodeUint64(command, field, token string) (uint64, error) {
	v, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, &message.DecodeError{Command: command, Field: field, Token: token, Err: err}
	}
	return v, nil
}

func decodeInt64(command, field, token string) (int64, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, &message.DecodeError{Command: command, Field: field, Token: token, Err: err}
	}
	return v, nil
}

func decodeInt32(command, field, token string) (int32, error) {
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, &message.DecodeError{Command: command, Field: field, Token: token, Err: err}
	}
	return int32(v), nil
}

func decodeMove(command, field, token string) (shogi.Move, error) {
	m, err := shogi.ParseMove(token)
	if err != nil {
		return shogi.Move{}, &message.DecodeError{Command: command, Field: field, Token: token, Err: err}
	}
	return m, nil
}

// decodeMoveRun decodes the RuleMove children among nodes.
func decodeMoveRun(command, field string, nodes []*grammar.Node) ([]shogi.Move, error) {
	var moves []shogi.Move
	for _, n := range nodes {
		if n.Rule != grammar.RuleMove {
			continue
		}
		m, err := decodeMove(command, field, n.Text)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

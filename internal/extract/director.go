// Package extract converts matched grammar nodes into message values.
//
// It owns every defaulting and merging rule of the protocol: the bare debug
// form, the clock and limit merging of go lines, the option type dispatch
// and the <empty> default sentinel. Extraction is total over the nodes the
// grammar can produce; nodes it does not recognize fall back to the Unknown
// message rather than panicking.
package extract

import (
	"github.com/aretw0/usikit/internal/grammar"
	"github.com/aretw0/usikit/pkg/message"
)

// Director builds the GUI-to-engine message for a matched node.
//
// The error, when non-nil, is either a *message.DecodeError (the message is
// nil) or a *message.TimeControlConflictError (the message is still
// returned; see that type).
func Director(n *grammar.Node) (message.Director, error) {
	switch n.Rule {
	case grammar.RuleUsi:
		return message.Handshake{}, nil
	case grammar.RuleDebug:
		mode := n.Child(grammar.RuleDebugMode)
		return message.SetDebug{On: mode == nil || mode.Text == "on"}, nil
	case grammar.RuleIsReady:
		return message.ReadyQuery{}, nil
	case grammar.RuleSetOption:
		return extractSetOption(n), nil
	case grammar.RuleRegister:
		return extractRegister(n), nil
	case grammar.RuleNewGame:
		return message.NewGame{}, nil
	case grammar.RulePosition:
		return extractPosition(n)
	case grammar.RuleGo:
		return extractGo(n)
	case grammar.RuleStop:
		return message.Stop{}, nil
	case grammar.RulePonderHit:
		return message.PonderHit{}, nil
	case grammar.RuleGameOver:
		return extractGameOver(n), nil
	case grammar.RuleQuit:
		return message.Quit{}, nil
	}
	return message.Unknown{Text: n.Text}, nil
}

func extractSetOption(n *grammar.Node) message.Director {
	opt := message.SetOption{Name: n.ChildText(grammar.RuleOptionName)}
	if v := n.Child(grammar.RuleOptionValue); v != nil {
		value := v.Text
		opt.Value = &value
	}
	return opt
}

func extractRegister(n *grammar.Node) message.Director {
	var reg message.Register
	if n.Child(grammar.RuleLater) != nil {
		return reg
	}
	if c := n.Child(grammar.RuleRegName); c != nil {
		name := c.Text
		reg.Name = &name
	}
	if c := n.Child(grammar.RuleRegCode); c != nil {
		code := c.Text
		reg.Code = &code
	}
	return reg
}

func extractPosition(n *grammar.Node) (message.Director, error) {
	pos := message.Position{}
	if sfen := n.Child(grammar.RuleSfen); sfen != nil {
		pos.Board = message.SfenBoard(sfen.Text)
	}
	if moves := n.Child(grammar.RuleMoves); moves != nil {
		decoded, err := decodeMoveRun("position", "moves", moves.Children)
		if err != nil {
			return nil, err
		}
		pos.Moves = decoded
	}
	return pos, nil
}

func extractGameOver(n *grammar.Node) message.Director {
	switch n.ChildText(grammar.RuleOutcome) {
	case "win":
		return message.GameOver{Result: message.OutcomeWin}
	case "lose":
		return message.GameOver{Result: message.OutcomeLose}
	default:
		return message.GameOver{Result: message.OutcomeDraw}
	}
}

// extractGo merges the sub-field occurrences of one go line: clock readings
// into one Clock, depth/nodes/mate into one SearchLimits, with the last of
// any repeated sub-field winning. When an exclusive selector (ponder,
// infinite, movetime) appears alongside clock sub-fields, the selector
// becomes the policy and the clock readings are reported dropped via
// *message.TimeControlConflictError.
func extractGo(n *grammar.Node) (message.Director, error) {
	var (
		req      message.SearchRequest
		limits   message.SearchLimits
		clock    message.Clock
		selector message.TimePolicy
		clocked  []string
		haveLim  bool
	)

	for _, sub := range n.Children {
		switch sub.Rule {
		case grammar.RuleSearchMoves:
			moves, err := decodeMoveRun("go", "searchmoves", sub.Children)
			if err != nil {
				return nil, err
			}
			req.SearchMoves = moves
		case grammar.RulePonder:
			selector = message.Ponder{}
		case grammar.RuleInfinite:
			selector = message.Infinite{}
		case grammar.RuleMoveTime:
			d, err := decodeMillis("go", "movetime", sub.Text)
			if err != nil {
				return nil, err
			}
			selector = message.MoveTime{Duration: d}
		case grammar.RuleBTime:
			d, err := decodeMillis("go", "btime", sub.Text)
			if err != nil {
				return nil, err
			}
			clock.BlackTime = &d
			clocked = append(clocked, "btime")
		case grammar.RuleWTime:
			d, err := decodeMillis("go", "wtime", sub.Text)
			if err != nil {
				return nil, err
			}
			clock.WhiteTime = &d
			clocked = append(clocked, "wtime")
		case grammar.RuleBInc:
			d, err := decodeMillis("go", "binc", sub.Text)
			if err != nil {
				return nil, err
			}
			clock.BlackInc = &d
			clocked = append(clocked, "binc")
		case grammar.RuleWInc:
			d, err := decodeMillis("go", "winc", sub.Text)
			if err != nil {
				return nil, err
			}
			clock.WhiteInc = &d
			clocked = append(clocked, "winc")
		case grammar.RuleByoyomi:
			d, err := decodeMillis("go", "byoyomi", sub.Text)
			if err != nil {
				return nil, err
			}
			clock.Byoyomi = &d
			clocked = append(clocked, "byoyomi")
		case grammar.RuleMovesToGo:
			v, err := decodeUint16("go", "movestogo", sub.Text)
			if err != nil {
				return nil, err
			}
			clock.MovesToGo = &v
			clocked = append(clocked, "movestogo")
		case grammar.RuleDepth:
			v, err := decodeUint16("go", "depth", sub.Text)
			if err != nil {
				return nil, err
			}
			limits.Depth = &v
			haveLim = true
		case grammar.RuleNodes:
			v, err := decodeUint64("go", "nodes", sub.Text)
			if err != nil {
				return nil, err
			}
			limits.Nodes = &v
			haveLim = true
		case grammar.RuleMate:
			var lim message.MateLimit
			if sub.Text == "infinite" {
				lim = message.MateUnbounded()
			} else {
				d, err := decodeMillis("go", "mate", sub.Text)
				if err != nil {
					return nil, err
				}
				lim = message.MateTimeout(d)
			}
			limits.Mate = &lim
			haveLim = true
		}
	}

	if haveLim {
		req.Limits = &limits
	}

	var conflict error
	switch {
	case selector != nil && len(clocked) > 0:
		req.Time = selector
		conflict = &message.TimeControlConflictError{Line: n.Text, Dropped: clocked}
	case selector != nil:
		req.Time = selector
	case len(clocked) > 0:
		req.Time = clock
	}

	return message.Go{Request: req}, conflict
}

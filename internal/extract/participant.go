package extract

import (
	"github.com/aretw0/usikit/internal/grammar"
	"github.com/aretw0/usikit/pkg/message"
)

// Participant builds the engine-to-GUI message for a matched node. A
// non-nil error is always a *message.DecodeError and comes with a nil
// message.
func Participant(n *grammar.Node) (message.Participant, error) {
	switch n.Rule {
	case grammar.RuleID:
		return extractID(n), nil
	case grammar.RuleUsiOk:
		return message.HandshakeAck{}, nil
	case grammar.RuleReadyOk:
		return message.ReadyAck{}, nil
	case grammar.RuleBestMove:
		return extractBestMove(n)
	case grammar.RuleCheckmate:
		return extractCheckmate(n)
	case grammar.RuleCopyProtection:
		return message.CopyProtection{Status: statusCheck(n)}, nil
	case grammar.RuleRegistration:
		return message.Registration{Status: statusCheck(n)}, nil
	case grammar.RuleOption:
		return extractOption(n)
	case grammar.RuleInfo:
		return extractInfo(n)
	}
	return message.Unknown{Text: n.Text}, nil
}

func extractID(n *grammar.Node) message.Participant {
	if c := n.Child(grammar.RuleIDAuthor); c != nil {
		return message.Identify{Field: message.IdentAuthor, Value: c.Text}
	}
	return message.Identify{Field: message.IdentName, Value: n.ChildText(grammar.RuleIDName)}
}

func extractBestMove(n *grammar.Node) (message.Participant, error) {
	switch {
	case n.Child(grammar.RuleResign) != nil:
		return message.BestMove{Result: message.Resign{}}, nil
	case n.Child(grammar.RuleWin) != nil:
		return message.BestMove{Result: message.ClaimWin{}}, nil
	}
	chosen, err := decodeMove("bestmove", "move", n.ChildText(grammar.RuleMove))
	if err != nil {
		return nil, err
	}
	choice := message.MoveChoice{Move: chosen}
	if p := n.Child(grammar.RulePonderMove); p != nil {
		ponder, err := decodeMove("bestmove", "ponder", p.Text)
		if err != nil {
			return nil, err
		}
		choice.Ponder = &ponder
	}
	return message.BestMove{Result: choice}, nil
}

func extractCheckmate(n *grammar.Node) (message.Participant, error) {
	switch {
	case n.Child(grammar.RuleNoMate) != nil:
		return message.Checkmate{Result: message.NoMate{}}, nil
	case n.Child(grammar.RuleTimeout) != nil:
		return message.Checkmate{Result: message.MateTimedOut{}}, nil
	case n.Child(grammar.RuleNotImplemented) != nil:
		return message.Checkmate{Result: message.MateUnsupported{}}, nil
	}
	moves := n.Child(grammar.RuleMoves)
	if moves == nil {
		return message.Unknown{Text: n.Text}, nil
	}
	line, err := decodeMoveRun("checkmate", "moves", moves.Children)
	if err != nil {
		return nil, err
	}
	return message.Checkmate{Result: message.ForcedMate{Moves: line}}, nil
}

func statusCheck(n *grammar.Node) message.StatusCheck {
	switch n.ChildText(grammar.RuleStatus) {
	case "checking":
		return message.StatusChecking
	case "ok":
		return message.StatusOk
	default:
		return message.StatusError
	}
}

package extract

import (
	"errors"

	"github.com/aretw0/usikit/internal/grammar"
	"github.com/aretw0/usikit/pkg/message"
)

// extractInfo rebuilds an info line item by item, preserving the input
// field order.
func extractInfo(n *grammar.Node) (message.Participant, error) {
	items := make([]message.InfoItem, 0, len(n.Children))
	for _, c := range n.Children {
		item, err := extractInfoItem(c)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return message.SearchInfo{Items: items}, nil
}

func extractInfoItem(c *grammar.Node) (message.InfoItem, error) {
	switch c.Rule {
	case grammar.RuleInfoDepth:
		v, err := decodeUint16("info", "depth", c.Text)
		return message.Depth(v), err
	case grammar.RuleInfoSelDepth:
		v, err := decodeUint16("info", "seldepth", c.Text)
		return message.SelDepth(v), err
	case grammar.RuleInfoTime:
		v, err := decodeMillis("info", "time", c.Text)
		return message.ElapsedTime(v), err
	case grammar.RuleInfoNodes:
		v, err := decodeUint64("info", "nodes", c.Text)
		return message.Nodes(v), err
	case grammar.RuleInfoMultiPV:
		v, err := decodeUint16("info", "multipv", c.Text)
		return message.MultiPV(v), err
	case grammar.RuleInfoCurrMoveNum:
		v, err := decodeUint16("info", "currmovenumber", c.Text)
		return message.CurrMoveNumber(v), err
	case grammar.RuleInfoHashFull:
		v, err := decodeUint16("info", "hashfull", c.Text)
		return message.HashFull(v), err
	case grammar.RuleInfoNPS:
		v, err := decodeUint64("info", "nps", c.Text)
		return message.NPS(v), err
	case grammar.RuleInfoCPULoad:
		v, err := decodeUint16("info", "cpuload", c.Text)
		return message.CPULoad(v), err
	case grammar.RuleInfoString:
		return message.DisplayString(c.Text), nil
	case grammar.RuleInfoPV:
		moves, err := decodeMoveRun("info", "pv", c.Children)
		return message.PV(moves), err
	case grammar.RuleInfoRefutation:
		moves, err := decodeMoveRun("info", "refutation", c.Children)
		return message.Refutation(moves), err
	case grammar.RuleInfoCurrMove:
		m, err := decodeMove("info", "currmove", c.Text)
		return message.CurrMove{Move: m}, err
	case grammar.RuleInfoCurrLine:
		return extractCurrLine(c)
	case grammar.RuleInfoScoreCp:
		v, err := decodeInt32("info", "score cp", c.Text)
		if err != nil {
			return nil, err
		}
		return message.CentipawnScore{Value: v, Bound: boundOf(c)}, nil
	case grammar.RuleInfoScoreMate:
		return extractMateScore(c)
	}
	return nil, &message.DecodeError{
		Command: "info", Field: string(c.Rule), Token: c.Text,
		Err: errors.New("unrecognized field"),
	}
}

func extractCurrLine(c *grammar.Node) (message.InfoItem, error) {
	item := message.CurrLine{}
	if cpu := c.Child(grammar.RuleCPU); cpu != nil {
		v, err := decodeUint16("info", "currline", cpu.Text)
		if err != nil {
			return nil, err
		}
		item.CPU = &v
	}
	line, err := decodeMoveRun("info", "currline", c.Children)
	if err != nil {
		return nil, err
	}
	item.Line = line
	return item, nil
}

func extractMateScore(c *grammar.Node) (message.InfoItem, error) {
	switch c.Text {
	case "+":
		return message.MateScore{Bound: message.BoundMating}, nil
	case "-":
		return message.MateScore{Bound: message.BoundMated}, nil
	}
	v, err := decodeInt32("info", "score mate", c.Text)
	if err != nil {
		return nil, err
	}
	return message.MateScore{Plies: &v, Bound: boundOf(c)}, nil
}

func boundOf(c *grammar.Node) message.Bound {
	switch c.ChildText(grammar.RuleBound) {
	case "lowerbound":
		return message.BoundLower
	case "upperbound":
		return message.BoundUpper
	}
	return message.BoundExact
}

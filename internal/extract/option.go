package extract

import (
	"github.com/aretw0/usikit/internal/grammar"
	"github.com/aretw0/usikit/pkg/message"
)

// extractOption dispatches on the declared type keyword to exactly one of
// the six option shapes. The literal token <empty> in a string/filename
// default decodes to an explicit empty string, which is distinct from an
// absent default.
func extractOption(n *grammar.Node) (message.Participant, error) {
	name := n.ChildText(grammar.RuleOptionName)

	switch n.ChildText(grammar.RuleOptionType) {
	case "check":
		spec := message.CheckOption{Name: name}
		if d := n.Child(grammar.RuleDefault); d != nil {
			v := d.Text == "true"
			spec.Default = &v
		}
		return message.OptionDecl{Spec: spec}, nil

	case "spin":
		spec := message.SpinOption{Name: name}
		for _, pair := range []struct {
			rule grammar.Rule
			dst  **int64
		}{
			{grammar.RuleDefault, &spec.Default},
			{grammar.RuleMin, &spec.Min},
			{grammar.RuleMax, &spec.Max},
		} {
			c := n.Child(pair.rule)
			if c == nil {
				continue
			}
			v, err := decodeInt64("option", string(pair.rule), c.Text)
			if err != nil {
				return nil, err
			}
			*pair.dst = &v
		}
		return message.OptionDecl{Spec: spec}, nil

	case "combo":
		spec := message.ComboOption{Name: name}
		if d := n.Child(grammar.RuleDefault); d != nil {
			v := d.Text
			spec.Default = &v
		}
		for _, c := range n.Children {
			if c.Rule == grammar.RuleVar {
				spec.Choices = append(spec.Choices, c.Text)
			}
		}
		return message.OptionDecl{Spec: spec}, nil

	case "button":
		return message.OptionDecl{Spec: message.ButtonOption{Name: name}}, nil

	case "string":
		return message.OptionDecl{Spec: message.StringOption{
			Name:    name,
			Default: stringDefault(n),
		}}, nil

	case "filename":
		return message.OptionDecl{Spec: message.FilenameOption{
			Name:    name,
			Default: stringDefault(n),
		}}, nil
	}

	return message.Unknown{Text: n.Text}, nil
}

func stringDefault(n *grammar.Node) *string {
	d := n.Child(grammar.RuleDefault)
	if d == nil {
		return nil
	}
	v := d.Text
	if v == message.EmptyDefault {
		v = ""
	}
	return &v
}

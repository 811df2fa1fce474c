package message

import (
	"strconv"
	"strings"
)

// EmptyDefault is the sentinel token the wire uses for an explicitly empty
// string/filename default. It decodes to "" and an empty default encodes
// back to it; an absent default is a nil pointer instead.
const EmptyDefault = "<empty>"

// OptionSpec is the type-specific shape of an option declaration. Exactly
// one of the six shapes applies per declaration.
type OptionSpec interface {
	// OptionName is the declared option name, verbatim (may contain
	// spaces).
	OptionName() string

	wire() string
}

// CheckOption is a boolean option ("type check").
type CheckOption struct {
	Name    string
	Default *bool
}

func (o CheckOption) OptionName() string { return o.Name }

func (o CheckOption) wire() string {
	s := "name " + o.Name + " type check"
	if o.Default != nil {
		s += " default " + strconv.FormatBool(*o.Default)
	}
	return s
}

// SpinOption is an integer option with optional bounds ("type spin").
type SpinOption struct {
	Name    string
	Default *int64
	Min     *int64
	Max     *int64
}

func (o SpinOption) OptionName() string { return o.Name }

func (o SpinOption) wire() string {
	var b strings.Builder
	b.WriteString("name ")
	b.WriteString(o.Name)
	b.WriteString(" type spin")
	writeInt := func(key string, v *int64) {
		if v != nil {
			b.WriteString(" ")
			b.WriteString(key)
			b.WriteString(" ")
			b.WriteString(strconv.FormatInt(*v, 10))
		}
	}
	writeInt("default", o.Default)
	writeInt("min", o.Min)
	writeInt("max", o.Max)
	return b.String()
}

// ComboOption is a pick-one-of option ("type combo"). Choices keep their
// declared order.
type ComboOption struct {
	Name    string
	Default *string
	Choices []string
}

func (o ComboOption) OptionName() string { return o.Name }

func (o ComboOption) wire() string {
	var b strings.Builder
	b.WriteString("name ")
	b.WriteString(o.Name)
	b.WriteString(" type combo")
	if o.Default != nil {
		b.WriteString(" default ")
		b.WriteString(*o.Default)
	}
	for _, c := range o.Choices {
		b.WriteString(" var ")
		b.WriteString(c)
	}
	return b.String()
}

// ButtonOption is an action option with no value ("type button").
type ButtonOption struct {
	Name string
}

func (o ButtonOption) OptionName() string { return o.Name }

func (o ButtonOption) wire() string { return "name " + o.Name + " type button" }

// StringOption is a free-text option ("type string").
type StringOption struct {
	Name    string
	Default *string
}

func (o StringOption) OptionName() string { return o.Name }

func (o StringOption) wire() string {
	return "name " + o.Name + " type string" + stringDefault(o.Default)
}

// FilenameOption is like StringOption but hints a file browser to the GUI
// ("type filename").
type FilenameOption struct {
	Name    string
	Default *string
}

func (o FilenameOption) OptionName() string { return o.Name }

func (o FilenameOption) wire() string {
	return "name " + o.Name + " type filename" + stringDefault(o.Default)
}

func stringDefault(d *string) string {
	switch {
	case d == nil:
		return ""
	case *d == "":
		return " default " + EmptyDefault
	default:
		return " default " + *d
	}
}

package grammar

import "strings"

// SplitLine cuts the first terminated line off input. It recognizes CR, LF
// and CRLF terminators. When no terminator is present the whole input is
// returned as line with terminated false.
func SplitLine(input string) (line, rest string, terminated bool) {
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '\n':
			return input[:i], input[i+1:], true
		case '\r':
			if i+1 < len(input) && input[i+1] == '\n' {
				return input[:i], input[i+2:], true
			}
			return input[:i], input[i+1:], true
		}
	}
	return input, "", false
}

// token is one whitespace-delimited field with its byte offsets in the
// line, so multi-token spans can be taken verbatim.
type token struct {
	text  string
	start int
	end   int
}

func tokenize(line string) []token {
	var toks []token
	i := 0
	for i < len(line) {
		if line[i] == ' ' || line[i] == '\t' {
			i++
			continue
		}
		start := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		toks = append(toks, token{text: line[start:i], start: start, end: i})
	}
	return toks
}

// isDigits reports a plain ASCII digit run (the shape of durations and
// unsigned numeric sub-fields).
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isSignedInt reports an optionally signed digit run.
func isSignedInt(s string) bool {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	return isDigits(s)
}

// isMoveShaped reports whether a token has the outline of a move: a drop
// "<letter>*<square>" or a board move "<square><square>[+]". The shape is
// deliberately looser than the move codec; strict decoding happens later so
// near-miss tokens surface as decode errors instead of derailing the whole
// line classification.
func isMoveShaped(s string) bool {
	if len(s) == 4 && s[1] == '*' {
		return s[0] >= 'A' && s[0] <= 'Z' && squareShaped(s[2], s[3])
	}
	if len(s) == 5 && s[4] == '+' {
		s = s[:4]
	}
	return len(s) == 4 && squareShaped(s[0], s[1]) && squareShaped(s[2], s[3])
}

func squareShaped(file, rank byte) bool {
	return file >= '1' && file <= '9' && rank >= 'a' && rank <= 'i'
}

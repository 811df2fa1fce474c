// Package grammar classifies single protocol lines into named rules.
//
// The grammar is an ordered-choice recognizer: for a given direction the
// command rules are tried in a fixed declared order and the first rule that
// matches the entire line wins. Classification is total; a line no rule
// matches is captured by RuleUnknown instead of being rejected. The package
// is purely syntactic: it checks token shapes (digit runs, move outlines,
// keyword positions) and records verbatim spans, while numeric ranges and
// strict move decoding belong to the extractor.
//
// Multi-field commands (go, info, option) accept their optional sub-fields
// in any order; the matcher scans sub-fields until the line ends and the
// node records them in input order.
package grammar

// Rule names one grammar production.
type Rule string

// Top-level command rules.
const (
	RuleUsi            Rule = "usi"
	RuleDebug          Rule = "debug"
	RuleIsReady        Rule = "isready"
	RuleSetOption      Rule = "setoption"
	RuleRegister       Rule = "register"
	RuleNewGame        Rule = "usinewgame"
	RulePosition       Rule = "position"
	RuleGo             Rule = "go"
	RuleStop           Rule = "stop"
	RulePonderHit      Rule = "ponderhit"
	RuleGameOver       Rule = "gameover"
	RuleQuit           Rule = "quit"
	RuleID             Rule = "id"
	RuleUsiOk          Rule = "usiok"
	RuleReadyOk        Rule = "readyok"
	RuleBestMove       Rule = "bestmove"
	RuleCheckmate      Rule = "checkmate"
	RuleCopyProtection Rule = "copyprotection"
	RuleRegistration   Rule = "registration"
	RuleOption         Rule = "option"
	RuleInfo           Rule = "info"
	RuleUnknown        Rule = "unknown"
)

// Sub-rules of the multi-field commands.
const (
	RuleOptionName  Rule = "option_name"
	RuleOptionValue Rule = "option_value"
	RuleOptionType  Rule = "option_type"
	RuleDefault     Rule = "default"
	RuleMin         Rule = "min"
	RuleMax         Rule = "max"
	RuleVar         Rule = "var"

	RuleDebugMode Rule = "debug_mode"

	RuleLater   Rule = "later"
	RuleRegName Rule = "register_name"
	RuleRegCode Rule = "register_code"

	RuleStartpos Rule = "startpos"
	RuleSfen     Rule = "sfen"
	RuleMoves    Rule = "moves"
	RuleMove     Rule = "move"

	RuleSearchMoves Rule = "searchmoves"
	RulePonder      Rule = "ponder"
	RuleInfinite    Rule = "infinite"
	RuleMoveTime    Rule = "movetime"
	RuleBTime       Rule = "btime"
	RuleWTime       Rule = "wtime"
	RuleBInc        Rule = "binc"
	RuleWInc        Rule = "winc"
	RuleByoyomi     Rule = "byoyomi"
	RuleMovesToGo   Rule = "movestogo"
	RuleDepth       Rule = "depth"
	RuleNodes       Rule = "nodes"
	RuleMate        Rule = "mate"

	RuleOutcome        Rule = "outcome"
	RuleIDName         Rule = "id_name"
	RuleIDAuthor       Rule = "id_author"
	RulePonderMove     Rule = "ponder_move"
	RuleResign         Rule = "resign"
	RuleWin            Rule = "win"
	RuleNoMate         Rule = "nomate"
	RuleTimeout        Rule = "timeout"
	RuleNotImplemented Rule = "notimplemented"
	RuleStatus         Rule = "status"

	RuleInfoDepth       Rule = "info_depth"
	RuleInfoSelDepth    Rule = "info_seldepth"
	RuleInfoTime        Rule = "info_time"
	RuleInfoNodes       Rule = "info_nodes"
	RuleInfoPV          Rule = "info_pv"
	RuleInfoMultiPV     Rule = "info_multipv"
	RuleInfoScoreCp     Rule = "info_score_cp"
	RuleInfoScoreMate   Rule = "info_score_mate"
	RuleInfoCurrMove    Rule = "info_currmove"
	RuleInfoCurrMoveNum Rule = "info_currmovenumber"
	RuleInfoHashFull    Rule = "info_hashfull"
	RuleInfoNPS         Rule = "info_nps"
	RuleInfoCPULoad     Rule = "info_cpuload"
	RuleInfoString      Rule = "info_string"
	RuleInfoRefutation  Rule = "info_refutation"
	RuleInfoCurrLine    Rule = "info_currline"
	RuleCPU             Rule = "cpu"
	RuleBound           Rule = "bound"
)

// Node is one matched production. Leaf payloads (numbers, spans, move
// tokens) live in Text; structured sub-matches live in Children, in input
// order. The top-level node's Text is the whole line.
type Node struct {
	Rule     Rule
	Text     string
	Children []*Node
}

func (n *Node) add(c *Node) { n.Children = append(n.Children, c) }

// Child returns the first child matched by rule, or nil.
func (n *Node) Child(rule Rule) *Node {
	for _, c := range n.Children {
		if c.Rule == rule {
			return c
		}
	}
	return nil
}

// ChildText returns the Text of the first child matched by rule, or "".
func (n *Node) ChildText(rule Rule) string {
	if c := n.Child(rule); c != nil {
		return c.Text
	}
	return ""
}

// cursor walks the token list of one line.
type cursor struct {
	line string
	toks []token
	pos  int
}

func (c *cursor) atEnd() bool { return c.pos >= len(c.toks) }

func (c *cursor) peekIs(kw string) bool {
	return c.pos < len(c.toks) && c.toks[c.pos].text == kw
}

// keyword consumes the next token if it equals kw.
func (c *cursor) keyword(kw string) bool {
	if c.peekIs(kw) {
		c.pos++
		return true
	}
	return false
}

// next consumes and returns the next token text.
func (c *cursor) next() (string, bool) {
	if c.atEnd() {
		return "", false
	}
	t := c.toks[c.pos].text
	c.pos++
	return t, true
}

// span returns the verbatim line text covering tokens [from, to).
func (c *cursor) span(from, to int) string {
	if from >= to {
		return ""
	}
	return c.line[c.toks[from].start:c.toks[to-1].end]
}

// spanUntil consumes tokens up to the first occurrence of any stop keyword
// (or the end of the line) and returns their verbatim span.
func (c *cursor) spanUntil(stop ...string) string {
	from := c.pos
	for !c.atEnd() {
		t := c.toks[c.pos].text
		stopped := false
		for _, s := range stop {
			if t == s {
				stopped = true
				break
			}
		}
		if stopped {
			break
		}
		c.pos++
	}
	return c.span(from, c.pos)
}

type matcher func(*cursor) *Node

type ruleDef struct {
	rule  Rule
	match matcher
}

// The rule tables. Order is the declared choice priority; the first rule
// that consumes the entire line wins.
var directorRules = []ruleDef{
	{RuleUsi, matchBare("usi", RuleUsi)},
	{RuleDebug, matchDebug},
	{RuleIsReady, matchBare("isready", RuleIsReady)},
	{RuleSetOption, matchSetOption},
	{RuleRegister, matchRegister},
	{RuleNewGame, matchBare("usinewgame", RuleNewGame)},
	{RulePosition, matchPosition},
	{RuleGo, matchGo},
	{RuleStop, matchBare("stop", RuleStop)},
	{RulePonderHit, matchBare("ponderhit", RulePonderHit)},
	{RuleGameOver, matchGameOver},
	{RuleQuit, matchBare("quit", RuleQuit)},
}

var participantRules = []ruleDef{
	{RuleID, matchID},
	{RuleUsiOk, matchBare("usiok", RuleUsiOk)},
	{RuleReadyOk, matchBare("readyok", RuleReadyOk)},
	{RuleBestMove, matchBestMove},
	{RuleCheckmate, matchCheckmate},
	{RuleCopyProtection, matchStatusCmd("copyprotection", RuleCopyProtection)},
	{RuleRegistration, matchStatusCmd("registration", RuleRegistration)},
	{RuleOption, matchOption},
	{RuleInfo, matchInfo},
}

// MatchDirector classifies one GUI-to-engine line (without terminator).
func MatchDirector(line string) *Node {
	return classify(line, directorRules)
}

// MatchParticipant classifies one engine-to-GUI line (without terminator).
func MatchParticipant(line string) *Node {
	return classify(line, participantRules)
}

func classify(line string, rules []ruleDef) *Node {
	toks := tokenize(line)
	for _, def := range rules {
		c := &cursor{line: line, toks: toks}
		if n := def.match(c); n != nil && c.atEnd() {
			n.Text = line
			return n
		}
	}
	return &Node{Rule: RuleUnknown, Text: line}
}

func matchBare(kw string, rule Rule) matcher {
	return func(c *cursor) *Node {
		if !c.keyword(kw) {
			return nil
		}
		return &Node{Rule: rule}
	}
}

func matchDebug(c *cursor) *Node {
	if !c.keyword("debug") {
		return nil
	}
	n := &Node{Rule: RuleDebug}
	if c.atEnd() {
		return n
	}
	t, _ := c.next()
	if t != "on" && t != "off" {
		return nil
	}
	n.add(&Node{Rule: RuleDebugMode, Text: t})
	return n
}

func matchSetOption(c *cursor) *Node {
	if !c.keyword("setoption") || !c.keyword("name") {
		return nil
	}
	name := c.spanUntil("value")
	if name == "" {
		return nil
	}
	n := &Node{Rule: RuleSetOption}
	n.add(&Node{Rule: RuleOptionName, Text: name})
	if c.keyword("value") {
		n.add(&Node{Rule: RuleOptionValue, Text: c.span(c.pos, len(c.toks))})
		c.pos = len(c.toks)
	}
	return n
}

func matchRegister(c *cursor) *Node {
	if !c.keyword("register") {
		return nil
	}
	n := &Node{Rule: RuleRegister}
	if c.keyword("later") {
		n.add(&Node{Rule: RuleLater})
		return n
	}
	if c.keyword("name") {
		name := c.spanUntil("code")
		if name == "" {
			return nil
		}
		n.add(&Node{Rule: RuleRegName, Text: name})
	}
	if c.keyword("code") {
		code := c.span(c.pos, len(c.toks))
		if code == "" {
			return nil
		}
		c.pos = len(c.toks)
		n.add(&Node{Rule: RuleRegCode, Text: code})
	}
	if len(n.Children) == 0 {
		return nil
	}
	return n
}

func matchPosition(c *cursor) *Node {
	if !c.keyword("position") {
		return nil
	}
	n := &Node{Rule: RulePosition}
	switch {
	case c.keyword("startpos"):
		n.add(&Node{Rule: RuleStartpos})
	case c.keyword("sfen"):
		sfen := c.spanUntil("moves")
		if sfen == "" {
			return nil
		}
		n.add(&Node{Rule: RuleSfen, Text: sfen})
	default:
		return nil
	}
	if c.keyword("moves") {
		moves := matchMoveRun(c)
		if moves == nil {
			return nil
		}
		n.add(moves)
	}
	return n
}

// matchMoveRun consumes one or more move-shaped tokens.
func matchMoveRun(c *cursor) *Node {
	n := &Node{Rule: RuleMoves}
	for !c.atEnd() && isMoveShaped(c.toks[c.pos].text) {
		t, _ := c.next()
		n.add(&Node{Rule: RuleMove, Text: t})
	}
	if len(n.Children) == 0 {
		return nil
	}
	return n
}

func matchGo(c *cursor) *Node {
	if !c.keyword("go") {
		return nil
	}
	n := &Node{Rule: RuleGo}
	for !c.atEnd() {
		sub := matchGoSub(c)
		if sub == nil {
			return nil
		}
		n.add(sub)
	}
	return n
}

func matchGoSub(c *cursor) *Node {
	switch {
	case c.keyword("searchmoves"):
		moves := matchMoveRun(c)
		if moves == nil {
			return nil
		}
		return &Node{Rule: RuleSearchMoves, Children: moves.Children}
	case c.keyword("ponder"):
		return &Node{Rule: RulePonder}
	case c.keyword("infinite"):
		return &Node{Rule: RuleInfinite}
	case c.peekIs("mate"):
		c.pos++
		if c.keyword("infinite") {
			return &Node{Rule: RuleMate, Text: "infinite"}
		}
		return digitsNode(c, RuleMate)
	}
	for kw, rule := range goMillisFields {
		if c.peekIs(kw) {
			c.pos++
			return digitsNode(c, rule)
		}
	}
	return nil
}

var goMillisFields = map[string]Rule{
	"btime":     RuleBTime,
	"wtime":     RuleWTime,
	"binc":      RuleBInc,
	"winc":      RuleWInc,
	"byoyomi":   RuleByoyomi,
	"movetime":  RuleMoveTime,
	"movestogo": RuleMovesToGo,
	"depth":     RuleDepth,
	"nodes":     RuleNodes,
}

// digitsNode consumes one digit-run token into a node of the given rule.
func digitsNode(c *cursor, rule Rule) *Node {
	t, ok := c.next()
	if !ok || !isDigits(t) {
		return nil
	}
	return &Node{Rule: rule, Text: t}
}

func matchGameOver(c *cursor) *Node {
	if !c.keyword("gameover") {
		return nil
	}
	t, ok := c.next()
	if !ok || (t != "win" && t != "lose" && t != "draw") {
		return nil
	}
	n := &Node{Rule: RuleGameOver}
	n.add(&Node{Rule: RuleOutcome, Text: t})
	return n
}

func matchID(c *cursor) *Node {
	if !c.keyword("id") {
		return nil
	}
	var rule Rule
	switch {
	case c.keyword("name"):
		rule = RuleIDName
	case c.keyword("author"):
		rule = RuleIDAuthor
	default:
		return nil
	}
	text := c.span(c.pos, len(c.toks))
	if text == "" {
		return nil
	}
	c.pos = len(c.toks)
	n := &Node{Rule: RuleID}
	n.add(&Node{Rule: rule, Text: text})
	return n
}

func matchBestMove(c *cursor) *Node {
	if !c.keyword("bestmove") {
		return nil
	}
	n := &Node{Rule: RuleBestMove}
	switch {
	case c.keyword("resign"):
		n.add(&Node{Rule: RuleResign})
		return n
	case c.keyword("win"):
		n.add(&Node{Rule: RuleWin})
		return n
	}
	t, ok := c.next()
	if !ok || !isMoveShaped(t) {
		return nil
	}
	n.add(&Node{Rule: RuleMove, Text: t})
	if c.keyword("ponder") {
		p, ok := c.next()
		if !ok || !isMoveShaped(p) {
			return nil
		}
		n.add(&Node{Rule: RulePonderMove, Text: p})
	}
	return n
}

func matchCheckmate(c *cursor) *Node {
	if !c.keyword("checkmate") {
		return nil
	}
	n := &Node{Rule: RuleCheckmate}
	switch {
	case c.keyword("nomate"):
		n.add(&Node{Rule: RuleNoMate})
	case c.keyword("timeout"):
		n.add(&Node{Rule: RuleTimeout})
	case c.keyword("notimplemented"):
		n.add(&Node{Rule: RuleNotImplemented})
	default:
		moves := matchMoveRun(c)
		if moves == nil {
			return nil
		}
		n.add(moves)
	}
	return n
}

func matchStatusCmd(kw string, rule Rule) matcher {
	return func(c *cursor) *Node {
		if !c.keyword(kw) {
			return nil
		}
		t, ok := c.next()
		if !ok || (t != "checking" && t != "ok" && t != "error") {
			return nil
		}
		n := &Node{Rule: rule}
		n.add(&Node{Rule: RuleStatus, Text: t})
		return n
	}
}

func matchOption(c *cursor) *Node {
	if !c.keyword("option") || !c.keyword("name") {
		return nil
	}
	name := c.spanUntil("type")
	if name == "" || !c.keyword("type") {
		return nil
	}
	typ, ok := c.next()
	if !ok {
		return nil
	}
	n := &Node{Rule: RuleOption}
	n.add(&Node{Rule: RuleOptionName, Text: name})
	n.add(&Node{Rule: RuleOptionType, Text: typ})

	switch typ {
	case "check":
		if c.keyword("default") {
			t, ok := c.next()
			if !ok || (t != "true" && t != "false") {
				return nil
			}
			n.add(&Node{Rule: RuleDefault, Text: t})
		}
	case "spin":
		// default/min/max accepted in any order, each at most once.
		seen := map[Rule]bool{}
		for !c.atEnd() {
			var rule Rule
			switch {
			case c.keyword("default"):
				rule = RuleDefault
			case c.keyword("min"):
				rule = RuleMin
			case c.keyword("max"):
				rule = RuleMax
			default:
				return nil
			}
			if seen[rule] {
				return nil
			}
			seen[rule] = true
			t, ok := c.next()
			if !ok || !isSignedInt(t) {
				return nil
			}
			n.add(&Node{Rule: rule, Text: t})
		}
	case "combo":
		if c.keyword("default") {
			d := c.spanUntil("var")
			if d == "" {
				return nil
			}
			n.add(&Node{Rule: RuleDefault, Text: d})
		}
		for c.keyword("var") {
			v := c.spanUntil("var")
			if v == "" {
				return nil
			}
			n.add(&Node{Rule: RuleVar, Text: v})
		}
	case "button":
		// no fields
	case "string", "filename":
		if c.keyword("default") {
			d := c.span(c.pos, len(c.toks))
			if d == "" {
				return nil
			}
			c.pos = len(c.toks)
			n.add(&Node{Rule: RuleDefault, Text: d})
		}
	default:
		return nil
	}
	return n
}

func matchInfo(c *cursor) *Node {
	if !c.keyword("info") {
		return nil
	}
	n := &Node{Rule: RuleInfo}
	for !c.atEnd() {
		sub := matchInfoSub(c)
		if sub == nil {
			return nil
		}
		n.add(sub)
	}
	return n
}

var infoDigitFields = map[string]Rule{
	"depth":          RuleInfoDepth,
	"seldepth":       RuleInfoSelDepth,
	"time":           RuleInfoTime,
	"nodes":          RuleInfoNodes,
	"multipv":        RuleInfoMultiPV,
	"currmovenumber": RuleInfoCurrMoveNum,
	"hashfull":       RuleInfoHashFull,
	"nps":            RuleInfoNPS,
	"cpuload":        RuleInfoCPULoad,
}

func matchInfoSub(c *cursor) *Node {
	switch {
	case c.keyword("score"):
		return matchScore(c)
	case c.keyword("pv"):
		moves := matchMoveRun(c)
		if moves == nil {
			return nil
		}
		return &Node{Rule: RuleInfoPV, Children: moves.Children}
	case c.keyword("refutation"):
		moves := matchMoveRun(c)
		if moves == nil {
			return nil
		}
		return &Node{Rule: RuleInfoRefutation, Children: moves.Children}
	case c.keyword("currline"):
		n := &Node{Rule: RuleInfoCurrLine}
		if !c.atEnd() && isDigits(c.toks[c.pos].text) {
			t, _ := c.next()
			n.add(&Node{Rule: RuleCPU, Text: t})
		}
		moves := matchMoveRun(c)
		if moves == nil {
			return nil
		}
		n.Children = append(n.Children, moves.Children...)
		return n
	case c.keyword("currmove"):
		t, ok := c.next()
		if !ok || !isMoveShaped(t) {
			return nil
		}
		return &Node{Rule: RuleInfoCurrMove, Text: t}
	case c.keyword("string"):
		s := c.span(c.pos, len(c.toks))
		if s == "" {
			return nil
		}
		c.pos = len(c.toks)
		return &Node{Rule: RuleInfoString, Text: s}
	}
	for kw, rule := range infoDigitFields {
		if c.peekIs(kw) {
			c.pos++
			return digitsNode(c, rule)
		}
	}
	return nil
}

func matchScore(c *cursor) *Node {
	switch {
	case c.keyword("cp"):
		t, ok := c.next()
		if !ok || !isSignedInt(t) {
			return nil
		}
		n := &Node{Rule: RuleInfoScoreCp, Text: t}
		matchBound(c, n)
		return n
	case c.keyword("mate"):
		t, ok := c.next()
		if !ok || (t != "+" && t != "-" && !isSignedInt(t)) {
			return nil
		}
		n := &Node{Rule: RuleInfoScoreMate, Text: t}
		// A bare sign already decides the bound; lowerbound/upperbound
		// only follow an explicit ply count.
		if isSignedInt(t) {
			matchBound(c, n)
		}
		return n
	}
	return nil
}

func matchBound(c *cursor, n *Node) {
	if c.keyword("lowerbound") {
		n.add(&Node{Rule: RuleBound, Text: "lowerbound"})
	} else if c.keyword("upperbound") {
		n.add(&Node{Rule: RuleBound, Text: "upperbound"})
	}
}

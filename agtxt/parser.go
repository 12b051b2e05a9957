package agtxt

import "strings"

// Parse parses account-graph source text into an ordered statement list.
// Returns a *SyntaxError on malformed input; no partial result is produced.
// An empty or comment-only document yields zero statements and a nil error.
func Parse(src []byte) ([]Statement, error) {
	p := &parser{cur: newCursor(src)}
	return p.parseFile()
}

type parser struct {
	cur cursor
}

func (p *parser) parseFile() ([]Statement, error) {
	var stmts []Statement

	p.cur.skipSeparators()
	for !p.cur.atEnd() {
		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)

		// Each statement must run to a separator or to end of input.
		p.cur.skipSpace()
		if p.cur.atEnd() {
			break
		}
		if !p.cur.atSeparator() {
			return nil, p.errExpected("end of statement", p.cur.position())
		}
		p.cur.skipSeparators()
	}
	return stmts, nil
}

func (p *parser) parseStatement() (Statement, error) {
	p.cur.skipSpace()
	start := p.cur.position()

	// Macro and description-shorthand statements are unambiguous from
	// their first character.
	switch p.cur.peek() {
	case '@':
		return p.parseMacro(start)
	case '*':
		return p.parseDescriptionShorthand(start)
	}

	// The remaining kinds share a vertex-list/key prefix, so try them in
	// the grammar's declared order with backtracking. The alternative
	// that made it furthest into the statement supplies the error.
	save := p.cur
	var best error

	st, err := p.parseSetEdges(start)
	if err == nil {
		return st, nil
	}
	best = further(best, err)
	p.cur = save

	st, err = p.parseSetAttributes(start)
	if err == nil {
		return st, nil
	}
	best = further(best, err)
	p.cur = save

	st, err = p.parseSetTypes(start)
	if err == nil {
		return st, nil
	}
	best = further(best, err)
	p.cur = save

	return nil, best
}

// parseSetEdges parses: vertex_list arrow vertex_list [':' value]
func (p *parser) parseSetEdges(start Position) (Statement, error) {
	sources, err := p.parseVertexList()
	if err != nil {
		return nil, err
	}

	arrow, err := p.parseArrow()
	if err != nil {
		return nil, err
	}

	sinks, err := p.parseVertexList()
	if err != nil {
		return nil, err
	}

	stmt := &SetEdges{
		Sources: sources,
		Sinks:   sinks,
		Arrow:   arrow,
		Start:   start,
	}

	p.cur.skipSpace()
	if p.cur.peek() == ':' {
		p.cur.advance()
		desc, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		stmt.Description = desc
		stmt.HasDescription = true
	}

	return stmt, nil
}

// parseSetAttributes parses either of the symmetric attribute forms:
//
//	key '=' value ':' vertex_list
//	vertex_list ':' key '=' value
func (p *parser) parseSetAttributes(start Position) (Statement, error) {
	save := p.cur
	var best error

	// key = value : vertex_list
	st, err := p.parseKeyedAttributes(start)
	if err == nil {
		return st, nil
	}
	best = further(best, err)
	p.cur = save

	// vertex_list : key = value
	st, err = p.parseListedAttributes(start)
	if err == nil {
		return st, nil
	}
	return nil, further(best, err)
}

func (p *parser) parseKeyedAttributes(start Position) (Statement, error) {
	key, err := p.parseKey("attribute key")
	if err != nil {
		return nil, err
	}

	p.cur.skipSpace()
	if p.cur.peek() != '=' {
		return nil, p.errExpected("'='", p.cur.position())
	}
	p.cur.advance()

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	p.cur.skipSpace()
	if p.cur.peek() != ':' {
		return nil, p.errExpected("':'", p.cur.position())
	}
	p.cur.advance()

	vertices, err := p.parseVertexList()
	if err != nil {
		return nil, err
	}

	return &SetAttributes{Key: key, Value: value, Vertices: vertices, Start: start}, nil
}

func (p *parser) parseListedAttributes(start Position) (Statement, error) {
	vertices, err := p.parseVertexList()
	if err != nil {
		return nil, err
	}

	p.cur.skipSpace()
	if p.cur.peek() != ':' {
		return nil, p.errExpected("':'", p.cur.position())
	}
	p.cur.advance()

	key, err := p.parseKey("attribute key")
	if err != nil {
		return nil, err
	}

	p.cur.skipSpace()
	if p.cur.peek() != '=' {
		return nil, p.errExpected("'='", p.cur.position())
	}
	p.cur.advance()

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &SetAttributes{Key: key, Value: value, Vertices: vertices, Start: start}, nil
}

// parseSetTypes parses: key ':' vertex_list
func (p *parser) parseSetTypes(start Position) (Statement, error) {
	typ, err := p.parseKey("type name")
	if err != nil {
		return nil, err
	}

	p.cur.skipSpace()
	if p.cur.peek() != ':' {
		return nil, p.errExpected("':'", p.cur.position())
	}
	p.cur.advance()

	vertices, err := p.parseVertexList()
	if err != nil {
		return nil, err
	}

	return &SetTypes{Type: typ, Vertices: vertices, Start: start}, nil
}

// parseMacro parses: '@' symbol ':' edge_label
func (p *parser) parseMacro(start Position) (Statement, error) {
	p.cur.advance() // consume '@'

	pos := p.cur.position()
	if !isSymbolChar(p.cur.peek()) {
		return nil, p.errExpected("macro symbol", pos)
	}
	symbol := string(p.cur.advance())

	p.cur.skipSpace()
	if p.cur.peek() != ':' {
		return nil, p.errExpected("':'", p.cur.position())
	}
	p.cur.advance()

	p.cur.skipSpace()
	label := p.scanEdgeLabel()
	if label == "" {
		return nil, p.errExpected("edge label", p.cur.position())
	}

	return &Macro{Symbol: symbol, Substitution: label, Start: start}, nil
}

// parseDescriptionShorthand parses: '*' vertex_list ':' value
func (p *parser) parseDescriptionShorthand(start Position) (Statement, error) {
	p.cur.advance() // consume '*'

	vertices, err := p.parseVertexList()
	if err != nil {
		return nil, err
	}

	p.cur.skipSpace()
	if p.cur.peek() != ':' {
		return nil, p.errExpected("':'", p.cur.position())
	}
	p.cur.advance()

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &SetAttributes{Key: "description", Value: value, Vertices: vertices, Start: start}, nil
}

// parseArrow parses: ('-' | '=' | symbol) [edge_label] '>'
// Whitespace is permitted between the parts, so "= >" is a valid arrow.
func (p *parser) parseArrow() (Arrow, error) {
	p.cur.skipSpace()
	pos := p.cur.position()

	ch := p.cur.peek()
	if ch != '-' && ch != '=' && !isSymbolChar(ch) {
		return Arrow{}, p.errExpected("arrow", pos)
	}
	typ := string(p.cur.advance())

	p.cur.skipSpace()
	label := p.scanEdgeLabel()

	p.cur.skipSpace()
	if p.cur.peek() != '>' {
		return Arrow{}, p.errExpected("'>'", p.cur.position())
	}
	p.cur.advance()

	return Arrow{Type: typ, Label: label}, nil
}

// parseVertexList parses: key {',' key}
// A trailing comma not followed by a key is left unconsumed so that the
// following construct (e.g. an arrow symbol) can still match it.
func (p *parser) parseVertexList() ([]string, error) {
	first, err := p.parseKey("vertex name")
	if err != nil {
		return nil, err
	}
	list := []string{first}

	for {
		save := p.cur
		p.cur.skipSpace()
		if p.cur.peek() != ',' {
			p.cur = save
			return list, nil
		}
		p.cur.advance()

		name, err := p.parseKey("vertex name")
		if err != nil {
			p.cur = save
			return list, nil
		}
		list = append(list, name)
	}
}

// parseKey parses a vertex or attribute name: a letter followed by
// letters, digits or underscores.
func (p *parser) parseKey(what string) (string, error) {
	p.cur.skipSpace()
	pos := p.cur.position()

	if !isLetter(p.cur.peek()) {
		return "", p.errExpected(what, pos)
	}

	start := p.cur.pos
	for !p.cur.atEnd() && isKeyPart(p.cur.peek()) {
		p.cur.advance()
	}
	return string(p.cur.src[start:p.cur.pos]), nil
}

// parseValue parses a free-form value: one or more characters up to a
// colon, a statement separator or a comment. Surrounding whitespace is
// trimmed.
func (p *parser) parseValue() (string, error) {
	p.cur.skipSpace()
	pos := p.cur.position()

	start := p.cur.pos
	for !p.cur.atEnd() && isValueChar(p.cur.peek()) && !p.cur.atComment() {
		p.cur.advance()
	}

	value := strings.TrimSpace(string(p.cur.src[start:p.cur.pos]))
	if value == "" {
		return "", p.errExpected("value", pos)
	}
	return value, nil
}

// scanEdgeLabel consumes an optional edge label. Returns "" when the
// cursor does not sit at a label.
func (p *parser) scanEdgeLabel() string {
	if !isLabelStart(p.cur.peek()) {
		return ""
	}
	start := p.cur.pos
	for !p.cur.atEnd() && isLabelPart(p.cur.peek()) {
		p.cur.advance()
	}
	return string(p.cur.src[start:p.cur.pos])
}

// errExpected builds a SyntaxError at pos, quoting the remainder of the
// offending line as the "got" context.
func (p *parser) errExpected(expected string, pos Position) error {
	return &SyntaxError{
		ParseError: ParseError{Pos: pos},
		Expected:   expected,
		Got:        p.trailing(pos),
	}
}

// trailing returns the source text from pos to the end of its line,
// truncated for readability.
func (p *parser) trailing(pos Position) string {
	if pos.Offset >= len(p.cur.src) {
		return "end of input"
	}
	rest := p.cur.src[pos.Offset:]
	end := len(rest)
	for i, ch := range rest {
		if ch == '\r' || ch == '\n' {
			end = i
			break
		}
	}
	const max = 40
	if end > max {
		end = max
	}
	text := strings.TrimSpace(string(rest[:end]))
	if text == "" {
		return "end of line"
	}
	return text
}

// further picks the error whose failure point is deepest into the source.
// Ties keep the earlier alternative, matching the grammar's declared order.
func further(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if offsetOf(b) > offsetOf(a) {
		return b
	}
	return a
}

func offsetOf(err error) int {
	if se, ok := err.(*SyntaxError); ok {
		return se.Pos.Offset
	}
	if pe, ok := err.(*ParseError); ok {
		return pe.Pos.Offset
	}
	return -1
}

package agtxt

// cursor is a position-tracked view over the source bytes. It is a value
// type: the parser saves and restores whole cursors to backtrack between
// grammar alternatives.
type cursor struct {
	src  []byte
	pos  int // current byte offset
	line int // current line (1-based)
	col  int // current column (1-based)
}

func newCursor(src []byte) cursor {
	return cursor{src: src, line: 1, col: 1}
}

func (c *cursor) position() Position {
	return Position{Line: c.line, Column: c.col, Offset: c.pos}
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) peek() byte {
	if c.atEnd() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) advance() byte {
	ch := c.src[c.pos]
	c.pos++
	if ch == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return ch
}

// atComment reports whether the cursor sits at the start of an end-of-line
// comment: #, % or //.
func (c *cursor) atComment() bool {
	switch c.peek() {
	case '#', '%':
		return true
	case '/':
		return c.pos+1 < len(c.src) && c.src[c.pos+1] == '/'
	}
	return false
}

// skipComment consumes a comment up to (not including) the end of line.
func (c *cursor) skipComment() {
	for !c.atEnd() && c.peek() != '\n' && c.peek() != '\r' {
		c.advance()
	}
}

// skipSpace consumes spaces, tabs and comments. It stops at statement
// separators (newlines and semicolons) so callers can detect them.
func (c *cursor) skipSpace() {
	for !c.atEnd() {
		switch {
		case c.peek() == ' ' || c.peek() == '\t':
			c.advance()
		case c.atComment():
			c.skipComment()
		default:
			return
		}
	}
}

// atSeparator reports whether the cursor sits at a statement separator.
// Call skipSpace first; comments and blanks are not separators themselves.
func (c *cursor) atSeparator() bool {
	switch c.peek() {
	case '\r', '\n', ';':
		return true
	}
	return false
}

// skipSeparators consumes any run of whitespace, comments and statement
// separators, leaving the cursor at the start of the next statement (or at
// end of input).
func (c *cursor) skipSeparators() {
	for !c.atEnd() {
		switch {
		case c.peek() == ' ' || c.peek() == '\t' || c.atSeparator():
			c.advance()
		case c.atComment():
			c.skipComment()
		default:
			return
		}
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isKeyPart matches the tail of a vertex or attribute key name.
func isKeyPart(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

// isLabelStart and isLabelPart match edge labels: [A-Za-z\-=][A-Za-z0-9\-=]*.
func isLabelStart(ch byte) bool {
	return isLetter(ch) || ch == '-' || ch == '='
}

func isLabelPart(ch byte) bool {
	return isLabelStart(ch) || isDigit(ch)
}

// isSymbolChar matches a macro/arrow symbol: any single character that is
// not alphanumeric and not one of the arrow characters -, = or >.
// Whitespace and statement separators are excluded because the grammar
// never lets a symbol token span them.
func isSymbolChar(ch byte) bool {
	if isLetter(ch) || isDigit(ch) {
		return false
	}
	switch ch {
	case '-', '=', '>', ' ', '\t', '\r', '\n', ';', 0:
		return false
	}
	return true
}

// isValueChar matches the body of a free-form value: anything except a
// colon or a statement separator.
func isValueChar(ch byte) bool {
	switch ch {
	case ':', '\r', '\n', ';', 0:
		return false
	}
	return true
}

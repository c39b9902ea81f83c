package inspect

import (
	"bytes"
	"fmt"
	"strconv"
)

// Operation is one operator and the operands that preceded it.
type Operation struct {
	Operator string
	Operands []Object
}

// Parser parses a decoded content stream into operations.
type Parser struct {
	data  []byte
	pos   int
	stack []Object
	ops   []Operation
}

// NewParser creates a content stream parser for data.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse returns all operations in stream order.
func (p *Parser) Parse() ([]Operation, error) {
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	return p.ops, nil
}

// next reads either an operand, pushed onto the stack, or an operator, which takes the
// whole stack with it.
func (p *Parser) next() error {
	start := p.pos
	c := p.data[p.pos]

	if c == '%' {
		p.skipComment()
		return nil
	}

	if isLetter(c) || c == '\'' || c == '"' {
		if obj, ok := p.keyword(); ok {
			p.stack = append(p.stack, obj)
			return nil
		}
		return p.operator()
	}

	obj, err := p.operand()
	if err != nil {
		return fmt.Errorf("at position %d: %w", start, err)
	}
	p.stack = append(p.stack, obj)
	return nil
}

// keyword consumes true, false or null when one is next.
func (p *Parser) keyword() (Object, bool) {
	end := p.pos
	for end < len(p.data) && !isWhitespace(p.data[end]) && !isDelimiter(p.data[end]) {
		end++
	}
	var obj Object
	switch string(p.data[p.pos:end]) {
	case "true":
		obj = Bool(true)
	case "false":
		obj = Bool(false)
	case "null":
		obj = Null{}
	default:
		return nil, false
	}
	p.pos = end
	return obj, true
}

func (p *Parser) operator() error {
	start := p.pos
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if !isLetter(c) && c != '\'' && c != '"' && c != '*' && !(p.pos > start && isDigit(c)) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return fmt.Errorf("empty operator at position %d", start)
	}

	op := Operation{
		Operator: string(p.data[start:p.pos]),
		Operands: p.stack,
	}
	p.ops = append(p.ops, op)
	p.stack = nil
	return nil
}

func (p *Parser) operand() (Object, error) {
	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return nil, fmt.Errorf("unexpected end of stream")
	}

	c := p.data[p.pos]
	switch {
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return p.number()
	case c == '(':
		return p.literalString()
	case c == '<' && p.peek(1) == '<':
		return p.dict()
	case c == '<':
		return p.hexString()
	case c == '/':
		return p.name(), nil
	case c == '[':
		return p.array()
	case isLetter(c):
		if obj, ok := p.keyword(); ok {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("unexpected character %q", c)
}

func (p *Parser) number() (Object, error) {
	start := p.pos
	if c := p.data[p.pos]; c == '+' || c == '-' {
		p.pos++
	}
	isReal := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '.' && !isReal {
			isReal = true
		} else if !isDigit(c) {
			break
		}
		p.pos++
	}

	s := string(p.data[start:p.pos])
	if isReal {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real %q: %w", s, err)
		}
		return Real(v), nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return Int(v), nil
}

var escapes = map[byte]byte{
	'n': '\n', 'r': '\r', 't': '\t', 'b': '\b', 'f': '\f',
	'(': '(', ')': ')', '\\': '\\',
}

func (p *Parser) literalString() (Object, error) {
	p.pos++ // (
	var buf bytes.Buffer
	depth := 1

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		p.pos++

		switch c {
		case '\\':
			if p.pos >= len(p.data) {
				return nil, fmt.Errorf("unclosed string")
			}
			p.escape(&buf)
		case '(':
			depth++
			buf.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				return String(buf.String()), nil
			}
			buf.WriteByte(c)
		default:
			buf.WriteByte(c)
		}
	}
	return nil, fmt.Errorf("unclosed string")
}

// escape decodes the escape sequence following a backslash.
func (p *Parser) escape(buf *bytes.Buffer) {
	c := p.data[p.pos]
	p.pos++

	if b, ok := escapes[c]; ok {
		buf.WriteByte(b)
		return
	}
	switch {
	case c == '\r':
		// line continuation
		if p.pos < len(p.data) && p.data[p.pos] == '\n' {
			p.pos++
		}
	case c == '\n':
	case c >= '0' && c <= '7':
		v := int(c - '0')
		for i := 0; i < 2 && p.pos < len(p.data); i++ {
			d := p.data[p.pos]
			if d < '0' || d > '7' {
				break
			}
			v = v*8 + int(d-'0')
			p.pos++
		}
		buf.WriteByte(byte(v))
	default:
		buf.WriteByte(c)
	}
}

func (p *Parser) hexString() (Object, error) {
	p.pos++ // <
	var digits []byte
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		p.pos++
		if c == '>' {
			if len(digits)%2 == 1 {
				digits = append(digits, '0')
			}
			out := make([]byte, len(digits)/2)
			for i := range out {
				out[i] = hexValue(digits[2*i])<<4 | hexValue(digits[2*i+1])
			}
			return String(out), nil
		}
		if isWhitespace(c) {
			continue
		}
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex digit %q", c)
		}
		digits = append(digits, c)
	}
	return nil, fmt.Errorf("unclosed hex string")
}

func (p *Parser) name() Object {
	p.pos++ // /
	var buf bytes.Buffer
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isWhitespace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && p.pos+2 < len(p.data) && isHexDigit(p.data[p.pos+1]) && isHexDigit(p.data[p.pos+2]) {
			buf.WriteByte(hexValue(p.data[p.pos+1])<<4 | hexValue(p.data[p.pos+2]))
			p.pos += 3
			continue
		}
		buf.WriteByte(c)
		p.pos++
	}
	return Name(buf.String())
}

func (p *Parser) array() (Object, error) {
	p.pos++ // [
	var arr Array
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}
		obj, err := p.operand()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

func (p *Parser) dict() (Object, error) {
	p.pos += 2 // <<
	d := make(Dict)
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed dictionary")
		}
		if p.data[p.pos] == '>' && p.peek(1) == '>' {
			p.pos += 2
			return d, nil
		}
		if p.data[p.pos] != '/' {
			return nil, fmt.Errorf("dictionary key must be a name")
		}
		key := p.name().(Name)
		value, err := p.operand()
		if err != nil {
			return nil, err
		}
		d[string(key)] = value
	}
}

func (p *Parser) peek(n int) byte {
	if p.pos+n < len(p.data) {
		return p.data[p.pos+n]
	}
	return 0
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
}

func (p *Parser) skipComment() {
	for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
		p.pos++
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case isDigit(c):
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

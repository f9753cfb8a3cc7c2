package template

import (
	"fmt"
	"strings"
	"unicode"
)

// Expression is a parsed ARM template language expression such as
// [concat(parameters('prefix'), '-nic')].
type Expression interface {
	expression()
}

// StringLiteral is a quoted string, or a template value that is not an expression at all.
type StringLiteral struct {
	Value string
}

// NumberLiteral is an integer literal.
type NumberLiteral struct {
	Value string
}

// Call is a function call with optional property or index accessors applied to its result.
type Call struct {
	Name      string
	Args      []Expression
	Accessors []Accessor
}

// Accessor is either .Property or [Index].
type Accessor struct {
	Property string
	Index    Expression
}

func (StringLiteral) expression() {}
func (NumberLiteral) expression() {}
func (Call) expression()          {}

// ParseExpression parses a template string value. Values that are not wrapped in brackets, and
// values starting with "[[" (an escaped literal bracket), are returned as a StringLiteral.
func ParseExpression(s string) (Expression, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return StringLiteral{Value: s}, nil
	}

	if strings.HasPrefix(trimmed, "[[") {
		return StringLiteral{Value: trimmed[1:]}, nil
	}

	p := &parser{input: trimmed[1 : len(trimmed)-1]}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", s, err)
	}

	p.skipSpace()
	if !p.done() {
		return nil, fmt.Errorf("parsing %q: unexpected %q at offset %d", s, p.input[p.pos:], p.pos)
	}

	return expr, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) done() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for !p.done() && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		return fmt.Errorf("expected %q at offset %d", c, p.pos)
	}
	p.pos++
	return nil
}

func (p *parser) parseExpression() (Expression, error) {
	p.skipSpace()

	switch c := p.peek(); {
	case c == '\'':
		return p.parseString()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber(), nil
	case isIdentStart(c):
		return p.parseCall()
	case c == 0:
		return nil, fmt.Errorf("unexpected end of expression")
	default:
		return nil, fmt.Errorf("unexpected %q at offset %d", c, p.pos)
	}
}

func (p *parser) parseString() (Expression, error) {
	// opening quote
	p.pos++

	b := strings.Builder{}
	for !p.done() {
		c := p.input[p.pos]
		p.pos++

		if c != '\'' {
			b.WriteByte(c)
			continue
		}

		// '' is an escaped quote
		if p.peek() == '\'' {
			b.WriteByte('\'')
			p.pos++
			continue
		}

		return StringLiteral{Value: b.String()}, nil
	}

	return nil, fmt.Errorf("unterminated string literal")
}

func (p *parser) parseNumber() Expression {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for !p.done() && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}

	return NumberLiteral{Value: p.input[start:p.pos]}
}

func (p *parser) parseIdent() string {
	start := p.pos
	for !p.done() && isIdentPart(p.input[p.pos]) {
		p.pos++
	}

	return p.input[start:p.pos]
}

func (p *parser) parseCall() (Expression, error) {
	call := Call{Name: p.parseIdent()}

	if err := p.expect('('); err != nil {
		return nil, fmt.Errorf("function %s: %w", call.Name, err)
	}

	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
	} else {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)

			p.skipSpace()
			if p.peek() == ',' {
				p.pos++
				continue
			}
			if err := p.expect(')'); err != nil {
				return nil, fmt.Errorf("function %s: %w", call.Name, err)
			}
			break
		}
	}

	for {
		p.skipSpace()
		switch p.peek() {
		case '.':
			p.pos++
			p.skipSpace()
			name := p.parseIdent()
			if name == "" {
				return nil, fmt.Errorf("expected property name at offset %d", p.pos)
			}
			call.Accessors = append(call.Accessors, Accessor{Property: name})
		case '[':
			p.pos++
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expect(']'); err != nil {
				return nil, err
			}
			call.Accessors = append(call.Accessors, Accessor{Index: idx})
		default:
			return call, nil
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// ReferenceKind tells parameters('x') and variables('x') apart.
type ReferenceKind int

const (
	ParameterReference ReferenceKind = iota
	VariableReference
)

func (k ReferenceKind) String() string {
	return [...]string{"parameters", "variables"}[k]
}

// Reference is a parameters('x') or variables('x') call found in an expression.
type Reference struct {
	Kind ReferenceKind
	Name string
}

// References lists every parameter and variable reference in expr, depth first.
func References(expr Expression) []Reference {
	var refs []Reference

	var walk func(e Expression)
	walk = func(e Expression) {
		call, ok := e.(Call)
		if !ok {
			return
		}

		if len(call.Args) == 1 {
			if lit, ok := call.Args[0].(StringLiteral); ok {
				switch strings.ToLower(call.Name) {
				case "parameters":
					refs = append(refs, Reference{Kind: ParameterReference, Name: lit.Value})
				case "variables":
					refs = append(refs, Reference{Kind: VariableReference, Name: lit.Value})
				}
			}
		}

		for _, arg := range call.Args {
			walk(arg)
		}
		for _, acc := range call.Accessors {
			if acc.Index != nil {
				walk(acc.Index)
			}
		}
	}
	walk(expr)

	return refs
}

// ReferencesParameter reports whether the template string s refers to parameter name.
// Parameter names compare case-insensitively.
func ReferencesParameter(s string, name string) bool {
	expr, err := ParseExpression(s)
	if err != nil {
		return false
	}

	for _, ref := range References(expr) {
		if ref.Kind == ParameterReference && strings.EqualFold(ref.Name, name) {
			return true
		}
	}

	return false
}

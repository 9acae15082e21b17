// File: parser.go
// Title: Arithmetic Recursive Descent Evaluator
// Description: Evaluates + - * / with parentheses and unary minus. The
//              grammar only admits numbers and operators, so input can
//              never execute anything.
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Grammar:
//   expr   = term { ("+" | "-") term }
//   term   = unary { ("*" | "/") unary }
//   unary  = ("-" | "+") unary | primary
//   primary = NUMBER | "(" expr ")"

package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// MaxInputLength bounds the expression size
const MaxInputLength = 1024

// maxDepth bounds nesting of parentheses and unary signs
const maxDepth = 256

// ErrDivisionByZero is returned when a divisor evaluates to zero
var ErrDivisionByZero = errors.New("division by zero")

// ParseError reports malformed input with its byte position
type ParseError struct {
	Message  string
	Position int
	Token    Token
}

func (pe *ParseError) Error() string {
	if pe.Token.Type == TokenEOF {
		return pe.Message
	}
	return fmt.Sprintf("%s at position %d (near '%s')", pe.Message, pe.Position+1, pe.Token.Value)
}

type parser struct {
	lexer   *Lexer
	current Token
	depth   int
}

// Eval parses and evaluates expr
func Eval(expr string) (float64, error) {
	if len(expr) > MaxInputLength {
		return 0, fmt.Errorf("expression exceeds maximum length: %d > %d", len(expr), MaxInputLength)
	}

	p := &parser{lexer: NewLexer(expr)}
	p.advance()

	if p.current.Type == TokenEOF {
		return 0, errors.New("empty expression")
	}

	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.current.Type != TokenEOF {
		return 0, p.errorf("unexpected %s", describe(p.current))
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.New("result out of range")
	}
	return v, nil
}

// Format renders a result without trailing zeros, e.g. 4 or 2.5
func Format(v float64) string {
	if v == 0 {
		v = 0 // normalizes -0
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (p *parser) advance() {
	p.current = p.lexer.NextToken()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Position: p.current.Position, Token: p.current}
}

func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op := p.current.Type
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == TokenPlus {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	for p.current.Type == TokenStar || p.current.Type == TokenSlash {
		op := p.current.Type
		p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == TokenStar {
			left *= right
			continue
		}
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		left /= right
	}
	return left, nil
}

func (p *parser) parseUnary() (float64, error) {
	if p.current.Type != TokenMinus && p.current.Type != TokenPlus {
		return p.parsePrimary()
	}

	if err := p.enter(); err != nil {
		return 0, err
	}
	defer p.leave()

	negate := p.current.Type == TokenMinus
	p.advance()

	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	if negate {
		return -v, nil
	}
	return v, nil
}

func (p *parser) parsePrimary() (float64, error) {
	switch p.current.Type {
	case TokenNumber:
		v := p.current.Number
		p.advance()
		return v, nil

	case TokenLeftParen:
		if err := p.enter(); err != nil {
			return 0, err
		}
		defer p.leave()

		p.advance()
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.current.Type != TokenRightParen {
			return 0, p.errorf("expected ')'")
		}
		p.advance()
		return v, nil

	default:
		return 0, p.errorf("unexpected %s", describe(p.current))
	}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return p.errorf("expression nested too deeply")
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func describe(t Token) string {
	switch t.Type {
	case TokenEOF:
		return "end of expression"
	case TokenIllegal:
		return fmt.Sprintf("character '%s'", t.Value)
	default:
		return fmt.Sprintf("'%s'", t.Value)
	}
}

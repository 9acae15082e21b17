// File: lexer.go
// Title: Arithmetic Tokenizer
// Description: Splits calculator input into numbers, operators and
//              parentheses, keeping byte positions for error reporting.
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package calc

import (
	"fmt"
	"strconv"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLeftParen
	TokenRightParen
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenIllegal:    "ILLEGAL",
	TokenNumber:     "NUMBER",
	TokenPlus:       "PLUS",
	TokenMinus:      "MINUS",
	TokenStar:       "STAR",
	TokenSlash:      "SLASH",
	TokenLeftParen:  "LEFT_PAREN",
	TokenRightParen: "RIGHT_PAREN",
}

// String returns the name of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is one lexical unit with its byte offset in the input
type Token struct {
	Type     TokenType
	Value    string
	Number   float64
	Position int
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

// Lexer produces tokens from an expression string
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a lexer over input
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token; TokenEOF repeats at end of input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Position: l.pos}
	}

	start := l.pos
	ch := l.input[l.pos]

	if isDigit(ch) || ch == '.' {
		return l.readNumber()
	}

	l.pos++
	value := string(ch)
	switch ch {
	case '+':
		return Token{Type: TokenPlus, Value: value, Position: start}
	case '-':
		return Token{Type: TokenMinus, Value: value, Position: start}
	case '*':
		return Token{Type: TokenStar, Value: value, Position: start}
	case '/':
		return Token{Type: TokenSlash, Value: value, Position: start}
	case '(':
		return Token{Type: TokenLeftParen, Value: value, Position: start}
	case ')':
		return Token{Type: TokenRightParen, Value: value, Position: start}
	default:
		return Token{Type: TokenIllegal, Value: value, Position: start}
	}
}

func (l *Lexer) readNumber() Token {
	start := l.pos
	seenDot := false

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else if !isDigit(ch) {
			break
		}
		l.pos++
	}

	// Exponent part, e.g. 1e3 or 2.5E-2
	if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
		next := l.pos + 1
		if next < len(l.input) && (l.input[next] == '+' || l.input[next] == '-') {
			next++
		}
		if next < len(l.input) && isDigit(l.input[next]) {
			l.pos = next
			for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
				l.pos++
			}
		}
	}

	text := l.input[start:l.pos]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{Type: TokenIllegal, Value: text, Position: start}
	}
	return Token{Type: TokenNumber, Value: text, Number: n, Position: start}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

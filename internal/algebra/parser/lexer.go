// File: lexer.go
// Title: Equation Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of equation parsing.
//              Converts equation strings into streams of tokens for the
//              parser. Handles all grammar elements and provides position
//              information for error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals and identifiers
	TokenNumber // 123
	TokenIdent  // x, y, speed

	// Operators
	TokenPlus   // +
	TokenMinus  // -
	TokenStar   // *
	TokenSlash  // /
	TokenCaret  // ^
	TokenEquals // =

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenNumber:
		return "NUMBER"
	case TokenIdent:
		return "IDENT"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenCaret:
		return "CARET"
	case TokenEquals:
		return "EQUALS"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text
	Position int       // Byte position in input
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// Lexer performs lexical analysis of equation input
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, column: 0}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.position
	column := l.column

	var tok Token
	switch l.ch {
	case '+':
		tok = newToken(TokenPlus, l.ch, pos, column)
	case '-':
		tok = newToken(TokenMinus, l.ch, pos, column)
	case '*':
		tok = newToken(TokenStar, l.ch, pos, column)
	case '/':
		tok = newToken(TokenSlash, l.ch, pos, column)
	case '^':
		tok = newToken(TokenCaret, l.ch, pos, column)
	case '=':
		tok = newToken(TokenEquals, l.ch, pos, column)
	case '(':
		tok = newToken(TokenLeftParen, l.ch, pos, column)
	case ')':
		tok = newToken(TokenRightParen, l.ch, pos, column)
	case 0:
		tok = Token{Type: TokenEOF, Value: "", Position: pos, Column: column}
	default:
		if isLetter(l.ch) {
			tok.Position = pos
			tok.Column = column
			tok.Value = l.readIdentifier()
			tok.Type = TokenIdent
			return tok // Early return to avoid readChar()
		} else if isDigit(l.ch) {
			tok.Position = pos
			tok.Column = column
			tok.Value = l.readNumber()
			tok.Type = TokenNumber
			return tok // Early return to avoid readChar()
		}
		tok = newToken(TokenIllegal, l.ch, pos, column)
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}
		if tok.Type == TokenIllegal {
			return tokens, fmt.Errorf("unknown token %q at column %d", tok.Value, tok.Column)
		}
	}

	return tokens, nil
}

// readChar advances to the next character
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
	l.column++
}

// skipWhitespace skips spaces and tabs
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// readIdentifier reads a letter sequence
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a digit sequence
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func newToken(tokenType TokenType, ch byte, pos, column int) Token {
	return Token{Type: tokenType, Value: string(ch), Position: pos, Column: column}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

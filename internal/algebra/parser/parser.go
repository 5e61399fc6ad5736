// File: parser.go
// Title: Equation Parser
// Description: Implements the recursive-descent parser over the token
//              stream. Precedence from loosest to tightest: addition and
//              subtraction, multiplication and division (including implicit
//              multiplication), unary minus, power (right associative),
//              atoms. "a/b" with two bare integer literals is a rational
//              constant, not a division node; the canonical serializer
//              parenthesizes constant divisors so the distinction survives
//              the round trip.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial parser implementation

package parser

import (
	"github.com/msto63/mAT/internal/algebra/ast"
	"github.com/msto63/mAT/internal/algebra/rational"
	materror "github.com/msto63/mAT/pkg/core/error"
)

// Parser parses a token stream into an equation
type Parser struct {
	tokens []Token
	pos    int
}

// Parse converts equation text into an Equation tree.
// Errors carry the PARSE_FAILURE code.
func Parse(input string) (ast.Equation, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return ast.Equation{}, materror.Wrap(err, "failed to tokenize equation").
			WithCode(materror.CodeParseFailure).
			WithSeverity(materror.SeverityLow)
	}

	p := &Parser{tokens: tokens}

	left, err := p.parseExpression()
	if err != nil {
		return ast.Equation{}, err
	}
	if p.current().Type != TokenEquals {
		return ast.Equation{}, p.errorf("missing equals sign, found %s", p.current())
	}
	p.advance()

	right, err := p.parseExpression()
	if err != nil {
		return ast.Equation{}, err
	}
	if p.current().Type == TokenEquals {
		return ast.Equation{}, p.errorf("duplicated equals sign")
	}
	if p.current().Type != TokenEOF {
		return ast.Equation{}, p.errorf("unexpected trailing input %s", p.current())
	}

	return ast.NewEquation(left, right), nil
}

// ParseExpr converts a single expression (no equals sign) into a tree
func ParseExpr(input string) (ast.Expr, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, materror.Wrap(err, "failed to tokenize expression").
			WithCode(materror.CodeParseFailure).
			WithSeverity(materror.SeverityLow)
	}

	p := &Parser{tokens: tokens}
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.current().Type != TokenEOF {
		return nil, p.errorf("unexpected trailing input %s", p.current())
	}
	return e, nil
}

// current returns the token under examination
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

// peek returns the token after the current one
func (p *Parser) peek() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() {
	p.pos++
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return materror.Newf(format, args...).
		WithCode(materror.CodeParseFailure).
		WithSeverity(materror.SeverityLow).
		WithDetail("position", p.current().Position)
}

// parseExpression parses the additive level
func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.Op
		switch p.current().Type {
		case TokenPlus:
			op = ast.OpAdd
		case TokenMinus:
			op = ast.OpSub
		default:
			return left, nil
		}
		p.advance()

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(op, left, right)
	}
}

// parseMultiplicative parses the product level, including implicit
// multiplication when an identifier or group directly follows an operand
func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current().Type {
		case TokenStar:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = ast.NewBinary(ast.OpMul, left, right)
		case TokenSlash:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = ast.NewBinary(ast.OpDiv, left, right)
		case TokenIdent, TokenLeftParen:
			// Implicit multiplication: 4x, 2(x + 1), (x + 1)(x - 1)
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = ast.NewBinary(ast.OpMul, left, right)
		default:
			return left, nil
		}
	}
}

// parseUnary parses an optional leading minus. A minus directly in front of
// a number literal folds into a negative constant unless a power operator
// follows (-4^2 negates the power, matching written convention).
func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.current().Type != TokenMinus {
		return p.parsePower()
	}
	p.advance()

	if p.current().Type == TokenNumber && !p.caretAfterNumber() {
		c, err := p.parseNumberLiteral()
		if err != nil {
			return nil, err
		}
		return ast.NewConst(c.Val.Neg()), nil
	}

	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.NewNeg(operand), nil
}

// caretAfterNumber reports whether the number literal starting at the
// current token is followed by ^, looking past a rational "a/b" literal
func (p *Parser) caretAfterNumber() bool {
	next := 1
	if p.peek().Type == TokenSlash && p.pos+2 < len(p.tokens) && p.tokens[p.pos+2].Type == TokenNumber {
		next = 3
	}
	if p.pos+next >= len(p.tokens) {
		return false
	}
	return p.tokens[p.pos+next].Type == TokenCaret
}

// parsePower parses the right-associative power level
func (p *Parser) parsePower() (ast.Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.current().Type != TokenCaret {
		return base, nil
	}
	p.advance()

	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(ast.OpPow, base, exponent), nil
}

// parsePrimary parses atoms and parenthesized groups
func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.current().Type {
	case TokenNumber:
		return p.parseNumberLiteral()

	case TokenIdent:
		name := p.current().Value
		p.advance()
		return ast.NewVar(name), nil

	case TokenLeftParen:
		p.advance()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.current().Type != TokenRightParen {
			return nil, p.errorf("unbalanced parentheses, found %s", p.current())
		}
		p.advance()
		return e, nil

	case TokenRightParen:
		return nil, p.errorf("unbalanced parentheses, found %s", p.current())

	case TokenEOF:
		return nil, p.errorf("unexpected end of input")

	default:
		return nil, p.errorf("unexpected token %s", p.current())
	}
}

// parseNumberLiteral parses an integer literal, folding "a/b" with a second
// bare integer into an exact rational constant. A zero denominator is a
// parse error.
func (p *Parser) parseNumberLiteral() (*ast.Const, error) {
	numTok := p.current()
	p.advance()

	literal := numTok.Value
	if p.current().Type == TokenSlash && p.peek().Type == TokenNumber {
		p.advance()
		literal += "/" + p.current().Value
		p.advance()
	}

	val, err := rational.Parse(literal)
	if err != nil {
		return nil, materror.Wrap(err, "invalid rational literal").
			WithCode(materror.CodeParseFailure).
			WithSeverity(materror.SeverityLow).
			WithDetail("literal", literal).
			WithDetail("position", numTok.Position)
	}
	return ast.NewConst(val), nil
}

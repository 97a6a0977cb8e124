package chainscript

import (
	"strconv"
	"unicode/utf8"
)

type parser struct {
	l *lexer

	curToken  Token
	peekToken Token

	err error
}

func newParser(input string) *parser {
	p := &parser{l: newLexer(input)}

	p.nextToken()
	p.nextToken()

	return p
}

func (p *parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()

	if p.peekToken.Type == tokenIllegal && p.err == nil {
		ch, _ := utf8.DecodeRuneInString(p.peekToken.Literal)
		p.err = &LexError{Char: ch, Pos: p.peekToken.Pos}
	}
}

// ParseProgram consumes the whole token stream. It returns no partial
// program: the first lex or grammar mismatch aborts the parse.
func (p *parser) ParseProgram() (*Program, error) {
	program := &Program{}

	for p.curToken.Type != tokenEOF {
		if p.err != nil {
			return nil, p.err
		}
		stmt := p.parseStatement()
		if p.err != nil {
			return nil, p.err
		}
		program.Statements = append(program.Statements, stmt)
		p.nextToken()
	}

	if p.err != nil {
		return nil, p.err
	}
	return program, nil
}

func (p *parser) parseStatement() Statement {
	switch p.curToken.Type {
	case tokenLet:
		return p.parseLetStatement()
	case tokenIf:
		return p.parseIfStatement()
	case tokenWhile:
		return p.parseWhileStatement()
	case tokenIdent:
		switch p.peekToken.Type {
		case tokenAssign:
			return p.parseAssignStatement()
		case tokenLParen:
			return p.parseCallStatement()
		default:
			p.fail("= or (", p.peekToken)
			return nil
		}
	default:
		p.fail("statement", p.curToken)
		return nil
	}
}

func (p *parser) parseLetStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent) {
		return nil
	}
	name := p.curToken.Literal

	if !p.expectPeek(tokenAssign) {
		return nil
	}

	p.nextToken()
	value := p.parseExpression()
	if value == nil {
		return nil
	}

	if !p.expectPeek(tokenSemicolon) {
		return nil
	}

	return &LetStmt{Name: name, Value: value, position: pos}
}

func (p *parser) parseAssignStatement() Statement {
	pos := p.curToken.Pos
	name := p.curToken.Literal

	p.nextToken() // =
	p.nextToken()
	value := p.parseExpression()
	if value == nil {
		return nil
	}

	if !p.expectPeek(tokenSemicolon) {
		return nil
	}

	return &AssignStmt{Name: name, Value: value, position: pos}
}

func (p *parser) parseCallStatement() Statement {
	pos := p.curToken.Pos
	name := p.curToken.Literal

	p.nextToken() // (
	p.nextToken()
	arg := p.parseExpression()
	if arg == nil {
		return nil
	}

	if !p.expectPeek(tokenRParen) {
		return nil
	}
	if !p.expectPeek(tokenSemicolon) {
		return nil
	}

	return &CallStmt{Name: name, Arg: arg, position: pos}
}

func (p *parser) parseIfStatement() Statement {
	pos := p.curToken.Pos

	p.nextToken()
	condition := p.parseExpression()
	if condition == nil {
		return nil
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	consequent := p.parseBlock()

	var alternate []Statement
	if p.peekToken.Type == tokenElse {
		p.nextToken()
		if !p.expectPeek(tokenLBrace) {
			return nil
		}
		alternate = p.parseBlock()
	}

	return &IfStmt{Condition: condition, Consequent: consequent, Alternate: alternate, position: pos}
}

func (p *parser) parseWhileStatement() Statement {
	pos := p.curToken.Pos

	p.nextToken()
	condition := p.parseExpression()
	if condition == nil {
		return nil
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	body := p.parseBlock()

	return &WhileStmt{Condition: condition, Body: body, position: pos}
}

// parseBlock is entered with curToken on `{` and exits with curToken on `}`.
func (p *parser) parseBlock() []Statement {
	stmts := []Statement{}

	p.nextToken()
	for p.curToken.Type != tokenRBrace && p.curToken.Type != tokenEOF {
		if p.err != nil {
			return stmts
		}
		stmt := p.parseStatement()
		if p.err != nil {
			return stmts
		}
		stmts = append(stmts, stmt)
		p.nextToken()
	}

	if p.curToken.Type != tokenRBrace {
		p.fail("}", p.curToken)
	}
	return stmts
}

// parseExpression parses a term followed by at most one binary operator and
// a second term. The grammar forbids chained operators; a precedence climber
// here would accept programs the language rejects.
func (p *parser) parseExpression() Expression {
	left := p.parseTerm()
	if left == nil {
		return nil
	}

	switch p.peekToken.Type {
	case tokenPlus, tokenEQ, tokenLT:
		p.nextToken()
		operator := p.curToken.Type
		pos := p.curToken.Pos
		p.nextToken()
		right := p.parseTerm()
		if right == nil {
			return nil
		}
		return &BinaryExpr{Left: left, Operator: operator, Right: right, position: pos}
	default:
		return left
	}
}

func (p *parser) parseTerm() Expression {
	switch p.curToken.Type {
	case tokenInt:
		value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
		if err != nil {
			p.fail("integer literal in int64 range", p.curToken)
			return nil
		}
		return &IntegerLiteral{Value: value, position: p.curToken.Pos}
	case tokenIdent:
		return &Identifier{Name: p.curToken.Literal, position: p.curToken.Pos}
	default:
		p.fail("integer or identifier", p.curToken)
		return nil
	}
}

func (p *parser) expectPeek(tt TokenType) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.fail(string(tt), p.peekToken)
	return false
}

// fail records the first error and leaves it in place; later mismatches are
// cascades of the same failure.
func (p *parser) fail(expected string, found Token) {
	if p.err == nil {
		p.err = &ParseError{Expected: expected, Found: found}
	}
}

package chainscript

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenIdent TokenType = "IDENT"
	tokenInt   TokenType = "INT"

	tokenAssign TokenType = "="
	tokenPlus   TokenType = "+"
	tokenLT     TokenType = "<"
	tokenEQ     TokenType = "=="

	tokenSemicolon TokenType = ";"
	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBrace    TokenType = "{"
	tokenRBrace    TokenType = "}"

	tokenLet   TokenType = "LET"
	tokenIf    TokenType = "IF"
	tokenElse  TokenType = "ELSE"
	tokenWhile TokenType = "WHILE"
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a line and column in the source text.
type Position struct {
	Line   int
	Column int
}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "let":
		return tokenLet
	case "if":
		return tokenIf
	case "else":
		return tokenElse
	case "while":
		return tokenWhile
	}
	return tokenIdent
}

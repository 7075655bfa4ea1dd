package canonexpr

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenIdentifier
	TokenNumber
	TokenSymbol
)

// Token is one lexed unit. Number tokens carry their value in Value and are
// produced one digit at a time; multi-digit numerals are assembled by the
// parser.
type Token struct {
	Kind  TokenKind
	Text  string
	Value float64
}

// TokenQueue is an ordered, front-poppable token queue. The parser is its
// sole consumer and fully drains it.
type TokenQueue struct {
	tokens []Token
}

func (q *TokenQueue) Len() int {
	return len(q.tokens)
}

func (q *TokenQueue) Push(token Token) {
	q.tokens = append(q.tokens, token)
}

// Front returns the next token without consuming it.
func (q *TokenQueue) Front() (Token, bool) {
	if len(q.tokens) == 0 {
		return Token{}, false
	}
	return q.tokens[0], true
}

// Pop consumes and returns the next token.
func (q *TokenQueue) Pop() (Token, bool) {
	if len(q.tokens) == 0 {
		return Token{}, false
	}
	token := q.tokens[0]
	q.tokens = q.tokens[1:]
	return token, true
}

// Tokens returns the remaining tokens in order.
func (q *TokenQueue) Tokens() []Token {
	return q.tokens
}

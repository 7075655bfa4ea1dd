package canonexpr

import "unicode"

// Default symbol and keyword sets. Keywords are recognized only so a pending
// identifier is flushed at the right boundary; they are not evaluated.
var (
	DefaultSymbols  = []rune{'+', '-', '*', '/', '(', ')', '^', '=', '|'}
	DefaultKeywords = []string{"abs", "sqrt", "pow", "pi", "e"}
)

// Lexer converts an input string into a token queue. The symbol and keyword
// sets are immutable configuration captured at construction.
type Lexer struct {
	symbols  map[rune]struct{}
	keywords map[string]struct{}
}

// NewLexer builds a lexer over the given symbol and keyword sets. Nil slices
// select the defaults.
func NewLexer(symbols []rune, keywords []string) *Lexer {
	if symbols == nil {
		symbols = DefaultSymbols
	}
	if keywords == nil {
		keywords = DefaultKeywords
	}
	lexer := &Lexer{
		symbols:  make(map[rune]struct{}, len(symbols)),
		keywords: make(map[string]struct{}, len(keywords)),
	}
	for _, r := range symbols {
		lexer.symbols[r] = struct{}{}
	}
	for _, keyword := range keywords {
		lexer.keywords[keyword] = struct{}{}
	}
	return lexer
}

// Lex tokenizes input. Whitespace separates tokens, a symbol flushes any
// pending identifier and becomes its own token, each digit becomes an
// immediate Number token, and any other character accumulates into a pending
// identifier. A pending identifier that forms a keyword is flushed before the
// next character is taken. Lex cannot fail under this grammar; the error is
// part of the contract.
func (l *Lexer) Lex(input string) (*TokenQueue, error) {
	queue := new(TokenQueue)
	var current []rune

	flush := func() {
		if len(current) > 0 {
			queue.Push(Token{Kind: TokenIdentifier, Text: string(current)})
			current = current[:0]
		}
	}

	for _, r := range input {
		if unicode.IsSpace(r) {
			continue
		}

		if _, isSymbol := l.symbols[r]; isSymbol {
			flush()
			queue.Push(Token{Kind: TokenSymbol, Text: string(r)})
			continue
		}

		if _, isKeyword := l.keywords[string(current)]; isKeyword {
			flush()
			current = append(current, r)
			continue
		}

		if r >= '0' && r <= '9' {
			flush()
			queue.Push(Token{
				Kind:  TokenNumber,
				Text:  string(r),
				Value: float64(r - '0'),
			})
			continue
		}

		current = append(current, r)
	}
	flush()

	return queue, nil
}

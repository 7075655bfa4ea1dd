package canonexpr

// Interpreter runs the whole pipeline for one input string: lex, parse,
// accumulate, render. Each instance owns fresh state; instances are never
// shared across callers.
type Interpreter struct {
	lexer  *Lexer
	parser *Parser
}

func NewInterpreter() *Interpreter {
	return NewInterpreterWith(nil, nil)
}

// NewInterpreterWith uses custom lexer symbol and keyword sets; nil selects
// the defaults.
func NewInterpreterWith(symbols []rune, keywords []string) *Interpreter {
	return &Interpreter{
		lexer:  NewLexer(symbols, keywords),
		parser: NewParser(),
	}
}

func (i *Interpreter) Lex(input string) (*TokenQueue, error) {
	return i.lexer.Lex(input)
}

func (i *Interpreter) Parse(tokens *TokenQueue) (Node, error) {
	return i.parser.Parse(tokens)
}

// Interpret renders an AST to canonical text. A bare Number renders
// numerically, an Expression is solved, anything else is rejected. The
// rejection is structurally unreachable through Parse and kept as an
// invariant check.
func (i *Interpreter) Interpret(root Node) (string, error) {
	switch node := root.(type) {
	case Number:
		return formatFloat(float64(node)), nil
	case Expression:
		return i.solve(node.Terms)
	default:
		return "", errInvalidInput()
	}
}

// Run is the whole pipeline for one input string.
func (i *Interpreter) Run(input string) (string, error) {
	tokens, err := i.Lex(input)
	if err != nil {
		return "", err
	}
	root, err := i.Parse(tokens)
	if err != nil {
		return "", err
	}
	return i.Interpret(root)
}

func (i *Interpreter) solve(terms []Term) (string, error) {
	if len(terms) == 0 {
		return "", nil
	}
	expression, err := Accumulate(terms)
	if err != nil {
		return "", err
	}
	return Render(expression), nil
}

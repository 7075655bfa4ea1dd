package canonexpr

import "math"

// Parser builds an Expression AST from a token queue, consuming it fully.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse consumes the entire queue. An empty queue yields an Expression with
// zero terms, not an error.
func (p *Parser) Parse(tokens *TokenQueue) (Node, error) {
	var terms []Term
	for tokens.Len() > 0 {
		term, err := p.parseTerm(tokens)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return Expression{Terms: terms}, nil
}

// parseTerm reads one additive term: an optional signed numeral, optional
// variables with optional exponents, and a trailing + separator. A -
// separator is left in the queue so it folds into the next term's sign,
// making "a - b" and "a + -b" parse identically.
func (p *Parser) parseTerm(tokens *TokenQueue) (Term, error) {
	beforeConstant := tokens.Len()
	coefficient, err := parseConstant(tokens)
	if err != nil {
		return Term{}, err
	}
	afterConstant := tokens.Len()

	variables, err := parseOptionalVariables(tokens)
	if err != nil {
		return Term{}, err
	}

	if token, ok := tokens.Front(); ok && token.Kind == TokenSymbol && token.Text == "+" {
		tokens.Pop()
	}

	// A term with variables whose numeral parsed to zero is either an
	// implicit coefficient of one ("x" meaning "1x") or a true zero
	// coefficient ("0x"). The queue length before and after the constant
	// tells whether any digits were actually consumed.
	if len(variables) > 0 && float64(coefficient) == 0 {
		if beforeConstant == afterConstant {
			return Term{Coefficient: Number(1), Variables: variables}, nil
		}
		return Term{Coefficient: Number(0), Variables: variables}, nil
	}

	return Term{Coefficient: coefficient, Variables: variables}, nil
}

// parseConstant folds a run of leading signs into one by minus parity, then
// accumulates a run of single-digit Number tokens into one numeral. The
// accumulator is checked against MaxFloat64/10 before each digit.
func parseConstant(tokens *TokenQueue) (Number, error) {
	positive := parseSign(tokens)
	var accumulator float64
	for {
		token, ok := tokens.Front()
		if !ok || token.Kind != TokenNumber {
			break
		}
		if accumulator >= math.MaxFloat64/10 {
			return 0, errUnsupportedNumber(accumulator, token.Value)
		}
		accumulator = accumulator*10 + token.Value
		tokens.Pop()
	}
	if !positive {
		accumulator = -accumulator
	}
	return Number(accumulator), nil
}

func parseSign(tokens *TokenQueue) bool {
	positive := true
	for {
		token, ok := tokens.Front()
		if !ok || token.Kind != TokenSymbol {
			return positive
		}
		switch token.Text {
		case "-":
			positive = !positive
			tokens.Pop()
		case "+":
			tokens.Pop()
		default:
			return positive
		}
	}
}

// parseOptionalVariables reads one Identifier token if present. Every rune
// but the last becomes a unit-exponent variable; the last takes the optional
// ^ exponent. "xyz" is three unit-exponent variables, "xy^2" is x^1·y^2.
func parseOptionalVariables(tokens *TokenQueue) ([]Variable, error) {
	token, ok := tokens.Front()
	if !ok || token.Kind != TokenIdentifier {
		return nil, nil
	}
	tokens.Pop()

	runes := []rune(token.Text)
	if len(runes) > 1 {
		var variables []Variable
		for _, r := range runes[:len(runes)-1] {
			variables = append(variables, Variable{
				Name:     string(r),
				Exponent: Number(1),
			})
		}
		exponent, err := parseOptionalExponent(tokens)
		if err != nil {
			return nil, err
		}
		variables = append(variables, Variable{
			Name:     string(runes[len(runes)-1]),
			Exponent: exponent,
		})
		return variables, nil
	}

	exponent, err := parseOptionalExponent(tokens)
	if err != nil {
		return nil, err
	}
	return []Variable{{
		Name:     token.Text,
		Exponent: exponent,
	}}, nil
}

// parseOptionalExponent consumes a ^ and the signed numeral after it, or
// defaults to one.
func parseOptionalExponent(tokens *TokenQueue) (Node, error) {
	token, ok := tokens.Front()
	if !ok || token.Kind != TokenSymbol || token.Text != "^" {
		return Number(1), nil
	}
	tokens.Pop()
	exponent, err := parseConstant(tokens)
	if err != nil {
		return nil, err
	}
	return exponent, nil
}

package canonexpr

import "testing"

func TestLexer(t *testing.T) {
	type TokenInfo struct {
		Kind TokenKind
		Text string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "1 + 2",
			tokens: []TokenInfo{
				{TokenNumber, "1"},
				{TokenSymbol, "+"},
				{TokenNumber, "2"},
			},
		},
		{
			input: "200x",
			tokens: []TokenInfo{
				{TokenNumber, "2"},
				{TokenNumber, "0"},
				{TokenNumber, "0"},
				{TokenIdentifier, "x"},
			},
		},
		{
			input: "xy^2",
			tokens: []TokenInfo{
				{TokenIdentifier, "xy"},
				{TokenSymbol, "^"},
				{TokenNumber, "2"},
			},
		},
		{
			input: "2^-3",
			tokens: []TokenInfo{
				{TokenNumber, "2"},
				{TokenSymbol, "^"},
				{TokenSymbol, "-"},
				{TokenNumber, "3"},
			},
		},
		{
			// whitespace is skipped, it does not flush a pending identifier
			input: "x y",
			tokens: []TokenInfo{
				{TokenIdentifier, "xy"},
			},
		},
		{
			// a pending keyword is flushed before the next character
			input: "sqrt2",
			tokens: []TokenInfo{
				{TokenIdentifier, "sqrt"},
				{TokenIdentifier, "2"},
			},
		},
		{
			input: "pi+e",
			tokens: []TokenInfo{
				{TokenIdentifier, "pi"},
				{TokenSymbol, "+"},
				{TokenIdentifier, "e"},
			},
		},
		{
			input: "abs(x)",
			tokens: []TokenInfo{
				{TokenIdentifier, "abs"},
				{TokenSymbol, "("},
				{TokenIdentifier, "x"},
				{TokenSymbol, ")"},
			},
		},
		{
			input:  "   ",
			tokens: nil,
		},
	}

	lexer := NewLexer(nil, nil)
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			queue, err := lexer.Lex(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if queue.Len() != len(test.tokens) {
				t.Fatalf("expected %d tokens, got %d: %v", len(test.tokens), queue.Len(), queue.Tokens())
			}
			for i, expected := range test.tokens {
				token, _ := queue.Pop()
				if token.Kind != expected.Kind {
					t.Errorf("token %d: expected kind %v, got %v (text %q)", i, expected.Kind, token.Kind, token.Text)
				}
				if token.Text != expected.Text {
					t.Errorf("token %d: expected text %q, got %q", i, expected.Text, token.Text)
				}
			}
		})
	}
}

func TestLexerDigitValues(t *testing.T) {
	lexer := NewLexer(nil, nil)
	queue, err := lexer.Lex("907")
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{9, 0, 7}
	for i, value := range want {
		token, ok := queue.Pop()
		if !ok {
			t.Fatalf("token %d missing", i)
		}
		if token.Kind != TokenNumber || token.Value != value {
			t.Errorf("token %d: expected Number %v, got %v %v", i, value, token.Kind, token.Value)
		}
	}
}

func TestLexerCustomSymbols(t *testing.T) {
	lexer := NewLexer([]rune{'+', '#'}, []string{})
	queue, err := lexer.Lex("a#b")
	if err != nil {
		t.Fatal(err)
	}
	kinds := []TokenKind{TokenIdentifier, TokenSymbol, TokenIdentifier}
	for i, kind := range kinds {
		token, _ := queue.Pop()
		if token.Kind != kind {
			t.Errorf("token %d: expected kind %v, got %v", i, kind, token.Kind)
		}
	}
}

package canonexpr

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

func parseInput(t *testing.T, input string) Node {
	t.Helper()
	queue, err := NewLexer(nil, nil).Lex(input)
	if err != nil {
		t.Fatalf("lex %q: %v", input, err)
	}
	root, err := NewParser().Parse(queue)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	if queue.Len() != 0 {
		t.Fatalf("parse %q left %d tokens", input, queue.Len())
	}
	return root
}

func TestParser(t *testing.T) {
	tests := []struct {
		input string
		want  Node
	}{
		{
			input: "1 + 2",
			want: Expression{Terms: []Term{
				{Coefficient: Number(1)},
				{Coefficient: Number(2)},
			}},
		},
		{
			// implicit coefficient of one
			input: "x",
			want: Expression{Terms: []Term{
				{Coefficient: Number(1), Variables: []Variable{
					{Name: "x", Exponent: Number(1)},
				}},
			}},
		},
		{
			// explicit zero coefficient stays zero
			input: "0x",
			want: Expression{Terms: []Term{
				{Coefficient: Number(0), Variables: []Variable{
					{Name: "x", Exponent: Number(1)},
				}},
			}},
		},
		{
			// a bare sign consumes queue length, so this is not an
			// implicit coefficient
			input: "-x",
			want: Expression{Terms: []Term{
				{Coefficient: Number(0), Variables: []Variable{
					{Name: "x", Exponent: Number(1)},
				}},
			}},
		},
		{
			input: "xy^2",
			want: Expression{Terms: []Term{
				{Coefficient: Number(1), Variables: []Variable{
					{Name: "x", Exponent: Number(1)},
					{Name: "y", Exponent: Number(2)},
				}},
			}},
		},
		{
			input: "---1x",
			want: Expression{Terms: []Term{
				{Coefficient: Number(-1), Variables: []Variable{
					{Name: "x", Exponent: Number(1)},
				}},
			}},
		},
		{
			input: "x^-2",
			want: Expression{Terms: []Term{
				{Coefficient: Number(1), Variables: []Variable{
					{Name: "x", Exponent: Number(-2)},
				}},
			}},
		},
		{
			input: "2x - 3",
			want: Expression{Terms: []Term{
				{Coefficient: Number(2), Variables: []Variable{
					{Name: "x", Exponent: Number(1)},
				}},
				{Coefficient: Number(-3)},
			}},
		},
		{
			input: "",
			want:  Expression{},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := parseInput(t, test.input)
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("parse %q:\ngot  %#v\nwant %#v", test.input, got, test.want)
			}
		})
	}
}

func TestParserNumberOverflow(t *testing.T) {
	// one digit more than fits before the MaxFloat64/10 guard trips
	input := strconv.FormatFloat(math.MaxFloat64, 'f', -1, 64) + "0"

	queue, err := NewLexer(nil, nil).Lex(input)
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewParser().Parse(queue)
	if err == nil {
		t.Fatal("expected overflow error")
	}
	var interpErr *Error
	if !errors.As(err, &interpErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !strings.Contains(interpErr.Message, "unsupported number") {
		t.Errorf("unexpected message: %q", interpErr.Message)
	}
}

func TestParserLargeInBoundsNumber(t *testing.T) {
	got := parseInput(t, strings.Repeat("9", 300))
	expr, ok := got.(Expression)
	if !ok || len(expr.Terms) != 1 {
		t.Fatalf("expected one term, got %#v", got)
	}
	n, ok := expr.Terms[0].Coefficient.(Number)
	if !ok {
		t.Fatalf("expected Number coefficient, got %#v", expr.Terms[0].Coefficient)
	}
	if math.IsInf(float64(n), 0) || float64(n) <= 0 {
		t.Errorf("unexpected coefficient %v", float64(n))
	}
}

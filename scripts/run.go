package scripts

import (
	"context"
	"fmt"

	"github.com/canonterm/canon/canonexpr"
	"github.com/canonterm/canon/logs"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// RunScript executes a starlark file with the canonicalizer exposed as
// builtins: canon(expr), variables(expr), terms(expr).
type RunScript func(ctx context.Context, path string) error

func (Module) RunScript(
	logger logs.Logger,
	interpreter *canonexpr.Interpreter,
) RunScript {

	accumulate := func(input string) (*canonexpr.CanonicalExpression, error) {
		tokens, err := interpreter.Lex(input)
		if err != nil {
			return nil, err
		}
		root, err := interpreter.Parse(tokens)
		if err != nil {
			return nil, err
		}
		expression, ok := root.(canonexpr.Expression)
		if !ok {
			return canonexpr.NewCanonicalExpression(), nil
		}
		return canonexpr.Accumulate(expression.Terms)
	}

	globals := starlark.StringDict{

		"canon": starlarkutil.MakeFunc("canon", func(input string) (string, error) {
			return interpreter.Run(input)
		}),

		"variables": starlarkutil.MakeFunc("variables", func(input string) ([]string, error) {
			expression, err := accumulate(input)
			if err != nil {
				return nil, err
			}
			return expression.Variables(), nil
		}),

		"terms": starlarkutil.MakeFunc("terms", func(input string) (map[string]float64, error) {
			expression, err := accumulate(input)
			if err != nil {
				return nil, err
			}
			terms := make(map[string]float64)
			for _, signature := range expression.SortedSignatures() {
				coefficient, _ := expression.Term(signature)
				terms[signature.String()] = coefficient
			}
			return terms, nil
		}),
	}

	return func(ctx context.Context, path string) error {
		logger.InfoContext(ctx, "run script",
			"path", path,
		)
		defer func() {
			logger.InfoContext(ctx, "script end",
				"path", path,
			)
		}()

		thread := &starlark.Thread{
			Name: path,
			Print: func(thread *starlark.Thread, msg string) {
				fmt.Println(msg)
			},
		}
		_, err := starlark.ExecFileOptions(
			&syntax.FileOptions{
				Set:             true,
				While:           true,
				TopLevelControl: true,
			},
			thread,
			path,
			nil,
			globals,
		)
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		return nil
	}
}

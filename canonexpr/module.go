package canonexpr

import (
	"github.com/canonterm/canon/canonconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs canonconfigs.Module
}

func (Module) Interpreter(
	symbols canonconfigs.LexerSymbols,
	keywords canonconfigs.LexerKeywords,
) *Interpreter {
	return NewInterpreterWith(
		[]rune(string(symbols)),
		keywords,
	)
}

// Canonicalize rewrites one expression into its canonical form.
type Canonicalize func(input string) (string, error)

func (Module) Canonicalize(
	interpreter *Interpreter,
) Canonicalize {
	return interpreter.Run
}

package canonconfigs

import (
	"github.com/canonterm/canon/cmds"
	"github.com/canonterm/canon/configs"
	"github.com/canonterm/canon/vars"
)

// LexerSymbols is the set of single-rune operator characters the lexer
// recognizes.
type LexerSymbols string

const defaultSymbols = LexerSymbols("+-*/()^=|")

var symbolsFlag = cmds.Var[string]("-symbols")

func (Module) LexerSymbols(
	loader configs.Loader,
) LexerSymbols {
	return LexerSymbols(vars.FirstNonZero(
		*symbolsFlag,
		configs.First[string](loader, "lexer.symbols"),
		string(defaultSymbols),
	))
}

// LexerKeywords are the identifiers the lexer treats as standalone words.
type LexerKeywords []string

func defaultKeywords() LexerKeywords {
	return LexerKeywords{"abs", "sqrt", "pow", "pi", "e"}
}

func (Module) LexerKeywords(
	loader configs.Loader,
) LexerKeywords {
	if keywords := configs.First[[]string](loader, "lexer.keywords"); len(keywords) > 0 {
		return LexerKeywords(keywords)
	}
	return defaultKeywords()
}

package canonconfigs

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/canonterm/canon/configs"
)

func tempLoader(t *testing.T, content string) configs.Loader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "canon.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return configs.NewLoader([]string{path}, schema)
}

func TestLexerDefaults(t *testing.T) {
	loader := configs.NewLoader(nil, schema)
	var m Module
	if got := m.LexerSymbols(loader); got != defaultSymbols {
		t.Fatalf("got %q", got)
	}
	keywords := m.LexerKeywords(loader)
	if !slices.Equal(keywords, defaultKeywords()) {
		t.Fatalf("got %v", keywords)
	}
}

func TestLexerFromConfig(t *testing.T) {
	loader := tempLoader(t, `
lexer: {
	symbols: "+-^"
	keywords: ["sin", "cos"]
}
`)
	var m Module
	if got := m.LexerSymbols(loader); got != "+-^" {
		t.Fatalf("got %q", got)
	}
	keywords := m.LexerKeywords(loader)
	if !slices.Equal(keywords, LexerKeywords{"sin", "cos"}) {
		t.Fatalf("got %v", keywords)
	}
}

package canonconfigs

import (
	"testing"

	"github.com/canonterm/canon/configs"
)

func TestPromptDefault(t *testing.T) {
	var m Module
	if got := m.Prompt(configs.NewLoader(nil, schema)); got != "> " {
		t.Fatalf("got %q", got)
	}
}

func TestPromptFromConfig(t *testing.T) {
	loader := tempLoader(t, `repl: prompt: "canon> "`)
	var m Module
	if got := m.Prompt(loader); got != "canon> " {
		t.Fatalf("got %q", got)
	}
}

func TestHistoryFileFromConfig(t *testing.T) {
	loader := tempLoader(t, `repl: history_file: "/tmp/canon_test_history"`)
	var m Module
	if got := m.HistoryFile(loader); got != "/tmp/canon_test_history" {
		t.Fatalf("got %q", got)
	}
}

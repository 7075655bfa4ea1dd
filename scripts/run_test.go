package scripts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/canonterm/canon/modes"
	"github.com/reusee/dscope"
)

func TestRunScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check.star")
	err := os.WriteFile(path, []byte(`
got = canon("200x + 100x^2 + 300")
if got != "100x^2 + 200x + 300":
    fail(got)

names = variables("2x + 3y + 4")
if names != ["x", "y"]:
    fail(names)

coefficients = terms("2x + 3x + 4")
if coefficients["x"] != 5:
    fail(coefficients)
if coefficients[""] != 4:
    fail(coefficients)
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		runScript RunScript,
	) {
		if err := runScript(context.Background(), path); err != nil {
			t.Fatal(err)
		}
	})
}

func TestRunScriptFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.star")
	if err := os.WriteFile(path, []byte(`fail("boom")`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		runScript RunScript,
	) {
		if err := runScript(context.Background(), path); err == nil {
			t.Fatal("expected error")
		}
	})
}

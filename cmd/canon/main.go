package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/canonterm/canon/canonconfigs"
	"github.com/canonterm/canon/canonexpr"
	"github.com/canonterm/canon/cmds"
	"github.com/canonterm/canon/logs"
	"github.com/canonterm/canon/modes"
	"github.com/canonterm/canon/scripts"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	exprArg     = cmds.Var[string]("-e")
	scriptArg   = cmds.Var[string]("-script")
	interactive = cmds.Switch("-i")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		canonicalize canonexpr.Canonicalize,
		runScript scripts.RunScript,
		prompt canonconfigs.Prompt,
		historyFile canonconfigs.HistoryFile,
	) {

		if *scriptArg != "" {
			ctx, _ := newSpan(ctx, "")
			if err := runScript(ctx, *scriptArg); err != nil {
				logger.ErrorContext(ctx, "script",
					"path", *scriptArg,
					"error", wrap(err),
				)
				os.Exit(1)
			}
			return
		}

		input := *exprArg
		if stdin := getStdinContent(); len(stdin) > 0 {
			if input != "" {
				input += "\n"
			}
			input += string(stdin)
		}

		if *interactive || input == "" {
			runREPL(prompt, historyFile, canonicalize, newSpan, logger)
			return
		}

		for line := range strings.Lines(input) {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			ctx, _ := newSpan(ctx, "")
			output, err := canonicalize(line)
			if err != nil {
				logger.ErrorContext(ctx, "canonicalize",
					"input", line,
					"error", wrap(err),
				)
				os.Exit(1)
			}
			pt("%s\n", output)
		}

	})
}

func getStdinContent() []byte {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil
	}
	return content
}

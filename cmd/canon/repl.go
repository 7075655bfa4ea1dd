package main

import (
	"context"
	"fmt"
	"os"

	"github.com/canonterm/canon/canonconfigs"
	"github.com/canonterm/canon/canonexpr"
	"github.com/canonterm/canon/logs"
	"github.com/chzyer/readline"
)

func runREPL(
	prompt canonconfigs.Prompt,
	historyFile canonconfigs.HistoryFile,
	canonicalize canonexpr.Canonicalize,
	newSpan logs.NewSpan,
	logger logs.Logger,
) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      string(prompt),
		HistoryFile: string(historyFile),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line == "" {
			continue
		}
		ctx, _ := newSpan(context.Background(), "")
		output, err := canonicalize(line)
		if err != nil {
			logger.ErrorContext(ctx, "canonicalize",
				"input", line,
				"error", wrap(err),
			)
			continue
		}
		fmt.Println(output)
	}
}

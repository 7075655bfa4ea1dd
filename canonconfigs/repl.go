package canonconfigs

import (
	"os"
	"path/filepath"

	"github.com/canonterm/canon/configs"
	"github.com/canonterm/canon/vars"
)

type Prompt string

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		configs.First[string](loader, "repl.prompt"),
		"> ",
	))
}

type HistoryFile string

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if path := configs.First[string](loader, "repl.history_file"); path != "" {
		return HistoryFile(path)
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return HistoryFile(filepath.Join(cacheDir, "canon_history"))
}

package canonconfigs

import (
	"github.com/canonterm/canon/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

package scripts

import (
	"github.com/canonterm/canon/canonexpr"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Expr canonexpr.Module
}

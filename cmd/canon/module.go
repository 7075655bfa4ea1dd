package main

import (
	"github.com/canonterm/canon/canonexpr"
	"github.com/canonterm/canon/scripts"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Expr    canonexpr.Module
	Scripts scripts.Module
}

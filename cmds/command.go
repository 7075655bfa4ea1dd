package cmds

import (
	"fmt"
	"reflect"
)

// Command is a named action whose function arguments are parsed from the
// argument list that follows it.
type Command struct {
	Func        reflect.Value
	Description string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

var errorType = reflect.TypeFor[error]()

// Func wraps a Go function as a command. The function may return nothing or
// a single error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	numRets := fnValue.Type().NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnValue.Type().Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		Func: fnValue,
	}
}

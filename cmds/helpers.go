package cmds

// Var registers a flag that sets a value of type T, returning a pointer to
// the value.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	return &value
}

// Switch registers a boolean flag that takes no argument.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	return &value
}

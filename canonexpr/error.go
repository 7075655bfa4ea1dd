package canonexpr

import "fmt"

// Error is the single failure kind of the pipeline: input the interpreter
// cannot represent or evaluate. It aborts the whole call; nothing is retried
// internally.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return "canonexpr: " + e.Message
}

func errUnsupportedNumber(accumulator, next float64) *Error {
	return &Error{
		Message: fmt.Sprintf("unsupported number: %s%s",
			formatFloat(accumulator), formatFloat(next)),
	}
}

func errInvalidInput() *Error {
	return &Error{
		Message: "invalid interpretation input",
	}
}

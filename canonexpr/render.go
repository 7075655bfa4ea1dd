package canonexpr

import (
	"strconv"
	"strings"

	"github.com/canonterm/canon/floats"
)

// formatFloat renders a number the way it appears in canonical output: plain
// decimal, shortest form that round-trips, no exponent notation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Render produces the canonical text for the map. An empty map, or one whose
// every entry is zero, renders as "0". The coefficient is suppressed when it
// is tolerantly one and the signature is non-empty; exponents of tolerantly
// one render the bare variable name. Terms join with " + " with no special
// casing for negative coefficients.
func Render(expression *CanonicalExpression) string {
	signatures := expression.SortedSignatures()

	allZero := true
	for _, signature := range signatures {
		coefficient, _ := expression.Term(signature)
		if coefficient != 0 {
			allZero = false
			break
		}
	}
	if len(signatures) == 0 || allZero {
		return "0"
	}

	var sb strings.Builder
	for i, signature := range signatures {
		coefficient, _ := expression.Term(signature)
		if !floats.Hashable(coefficient).ApproxEq(1) || len(signature) == 0 {
			sb.WriteString(formatFloat(coefficient))
		}
		for _, vp := range signature {
			sb.WriteString(vp.Name)
			if !vp.Exponent.ApproxEq(1) {
				sb.WriteString("^")
				sb.WriteString(vp.Exponent.String())
			}
		}
		if i < len(signatures)-1 {
			sb.WriteString(" + ")
		}
	}
	return sb.String()
}

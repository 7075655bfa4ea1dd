package canonexpr

import (
	"sort"
	"strconv"
	"strings"

	"github.com/canonterm/canon/floats"
)

// VarPower is one (variable, exponent) entry of a monomial signature.
type VarPower struct {
	Name     string
	Exponent floats.Hashable
}

// Signature identifies a monomial: (name, exponent) pairs sorted by name
// ascending then exponent ascending. Duplicate names are not merged, so a
// term like "xxx" keeps three unit-exponent entries.
type Signature []VarPower

// key buckets the signature for map lookup. Exponents that compare ApproxEq
// produce the same key with high probability via the tolerant-float bit
// identity.
func (s Signature) key() string {
	var sb strings.Builder
	for _, vp := range s {
		sb.WriteString(vp.Name)
		sb.WriteByte(0)
		sb.WriteString(strconv.FormatUint(vp.Exponent.Bits(), 16))
		sb.WriteByte(0)
	}
	return sb.String()
}

// String renders the monomial part of the signature the same way the
// renderer does: each variable name, with ^exponent unless the exponent is
// tolerantly one. The empty signature (constants) renders as "".
func (s Signature) String() string {
	var sb strings.Builder
	for _, vp := range s {
		sb.WriteString(vp.Name)
		if !vp.Exponent.ApproxEq(1) {
			sb.WriteString("^")
			sb.WriteString(vp.Exponent.String())
		}
	}
	return sb.String()
}

// CanonicalExpression maps monomial signatures to aggregated coefficients. A
// companion set records variable names for diagnostics.
type CanonicalExpression struct {
	terms     map[string]*canonicalTerm
	variables map[string]struct{}
}

type canonicalTerm struct {
	signature   Signature
	coefficient float64
}

func NewCanonicalExpression() *CanonicalExpression {
	return &CanonicalExpression{
		terms:     make(map[string]*canonicalTerm),
		variables: make(map[string]struct{}),
	}
}

// AddTerm adds coefficient under the signature, creating the entry if
// absent. An exactly-zero coefficient never creates or touches an entry. An
// existing entry later cancelled to zero stays in the map; only rendering
// filters it out.
func (e *CanonicalExpression) AddTerm(signature Signature, coefficient float64) {
	if coefficient == 0 {
		return
	}
	if len(signature) > 0 {
		e.variables[signature[0].Name] = struct{}{}
	}
	key := signature.key()
	if term, ok := e.terms[key]; ok {
		term.coefficient += coefficient
		return
	}
	e.terms[key] = &canonicalTerm{
		signature:   signature,
		coefficient: coefficient,
	}
}

// Term returns the aggregated coefficient for the signature.
func (e *CanonicalExpression) Term(signature Signature) (float64, bool) {
	term, ok := e.terms[signature.key()]
	if !ok {
		return 0, false
	}
	return term.coefficient, true
}

// Variables returns the recorded variable names, sorted.
func (e *CanonicalExpression) Variables() []string {
	names := make([]string, 0, len(e.variables))
	for name := range e.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortedSignatures orders signatures for rendering: constants last, otherwise
// positionally by name ascending then exponent descending, with the shorter
// signature first when all compared positions are equal.
func (e *CanonicalExpression) SortedSignatures() []Signature {
	signatures := make([]Signature, 0, len(e.terms))
	for _, term := range e.terms {
		signatures = append(signatures, term.signature)
	}
	sort.SliceStable(signatures, func(i, j int) bool {
		return compareSignatures(signatures[i], signatures[j]) < 0
	})
	return signatures
}

func compareSignatures(a, b Signature) int {
	// constants (empty signatures) move to the right
	if len(a) == 0 || len(b) == 0 {
		switch {
		case len(b) < len(a):
			return -1
		case len(b) > len(a):
			return 1
		default:
			return 0
		}
	}

	for i := range min(len(a), len(b)) {
		if c := strings.Compare(a[i].Name, b[i].Name); c != 0 {
			return c
		}
		// exponent descending; NaN compares equal
		av, bv := float64(a[i].Exponent), float64(b[i].Exponent)
		if bv < av {
			return -1
		}
		if bv > av {
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Accumulate aggregates the coefficients of terms per monomial signature.
// Non-Number coefficient nodes count as zero and non-Number exponent nodes as
// exponent zero; both are defensive fallbacks the parser never produces.
func Accumulate(terms []Term) (*CanonicalExpression, error) {
	accumulator := NewCanonicalExpression()

	for _, term := range terms {
		var coefficient float64
		if n, ok := term.Coefficient.(Number); ok {
			coefficient = float64(n)
		}

		if len(term.Variables) == 0 {
			accumulator.AddTerm(nil, coefficient)
			continue
		}

		signature := make(Signature, 0, len(term.Variables))
		for _, variable := range term.Variables {
			var exponent float64
			if n, ok := variable.Exponent.(Number); ok {
				exponent = float64(n)
			}
			signature = append(signature, VarPower{
				Name:     variable.Name,
				Exponent: floats.Hashable(exponent),
			})
		}

		// the sort key is the signature identity
		sort.SliceStable(signature, func(i, j int) bool {
			if signature[i].Name != signature[j].Name {
				return signature[i].Name < signature[j].Name
			}
			return signature[i].Exponent < signature[j].Exponent
		})

		accumulator.AddTerm(signature, coefficient)
	}

	return accumulator, nil
}

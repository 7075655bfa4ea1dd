package canonexpr

// Node is an AST node. The tree is built bottom-up by the parser; each node
// is exclusively owned by its parent.
type Node interface {
	isNode()
}

// Number is a numeric literal.
type Number float64

// Variable is a named variable raised to an exponent. Exponents are always
// resolved to Number nodes at parse time.
type Variable struct {
	Name     string
	Exponent Node
}

// Term is a coefficient times an ordered product of variables. The
// coefficient is always a Number node.
type Term struct {
	Coefficient Node
	Variables   []Variable
}

// Expression is the parse root: an ordered sum of terms.
type Expression struct {
	Terms []Term
}

// Operation is reserved by the grammar; the current pipeline never produces
// it.
type Operation struct {
	Op          string
	Left, Right Node
}

// FunctionCall is reserved; function names are recognized lexically but not
// evaluated.
type FunctionCall struct {
	Name string
	Args []Node
}

// Equation is reserved; equation solving is out of scope.
type Equation struct {
	Left, Right Node
}

func (Number) isNode()       {}
func (Variable) isNode()     {}
func (Term) isNode()         {}
func (Expression) isNode()   {}
func (Operation) isNode()    {}
func (FunctionCall) isNode() {}
func (Equation) isNode()     {}

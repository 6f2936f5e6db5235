// Package cassowary implements the Cassowary incremental constraint solving
// algorithm: an algorithm for solving systems of linear equalities and
// inequalities where every constraint carries a priority, so that a
// solution can be found even when not every constraint can be satisfied
// simultaneously.
//
// It exists to back a single use case: a fresh [Solver] is built, every
// constraint for one layout is added in one pass, and variable values are
// read back once. Features that the Cassowary paper describes but that
// use case never needs — constraint removal, edit variables, suggested
// values — are intentionally absent.
package cassowary

import "sync/atomic"

type symbolKind uint8

const (
	external symbolKind = iota
	slack
	errorSym
	dummy
)

func (k symbolKind) restricted() bool { return k == slack || k == errorSym }

// Symbol is an opaque identifier for a variable tracked by a [Solver].
type Symbol uint64

var (
	symbolCount uint64
	zero        Symbol
)

// New allocates a fresh external symbol, i.e. a variable the caller can add
// constraints about and later read the value of via [Solver.Val].
func New() Symbol { return next(external) }

func next(kind symbolKind) Symbol {
	return Symbol((atomic.AddUint64(&symbolCount, 1) & 0x3fffffffffffffff) | (uint64(kind) << 62))
}

func (s Symbol) kind() symbolKind { return symbolKind(s >> 62) }
func (s Symbol) isZero() bool     { return s == zero }
func (s Symbol) restricted() bool { return !s.isZero() && s.kind().restricted() }
func (s Symbol) external() bool   { return !s.isZero() && s.kind() == external }
func (s Symbol) isDummy() bool    { return !s.isZero() && s.kind() == dummy }

// T scales the symbol by coeff, producing a [Term] suitable for use in a
// [NewConstraint] call.
func (s Symbol) T(coeff float64) Term { return Term{coeff: coeff, id: s} }

// Priority is the strength attached to a constraint. Constraints with a
// higher priority are preferred by the solver when not every constraint can
// be satisfied; see [Required] for the threshold above which a constraint
// is treated as non-negotiable.
type Priority float64

// Op is the relational operator of a [Constraint].
type Op uint8

const (
	EQ Op = iota
	GTE
	LTE
)

// Constraint is a single linear relation: expr OP 0, weighted by a priority
// supplied separately when it is added to a [Solver].
type Constraint struct {
	op   Op
	expr expr
}

// NewConstraint builds a constraint of the form (terms... + constant) op 0.
func NewConstraint(op Op, constant float64, terms ...Term) Constraint {
	return Constraint{op: op, expr: newExpr(constant, terms...)}
}

func (c Constraint) clone() Constraint {
	return Constraint{op: c.op, expr: c.expr.clone()}
}

// Term is a variable scaled by a coefficient.
type Term struct {
	coeff float64
	id    Symbol
}

type expr struct {
	constant float64
	terms    []Term
}

func newExpr(constant float64, terms ...Term) expr {
	return expr{constant: constant, terms: terms}
}

func (e expr) clone() expr {
	out := expr{constant: e.constant, terms: make([]Term, len(e.terms))}
	copy(out.terms, e.terms)

	return out
}

func (e expr) find(id Symbol) int {
	for i := range e.terms {
		if e.terms[i].id == id {
			return i
		}
	}

	return -1
}

func (e *expr) delete(idx int) {
	copy(e.terms[idx:], e.terms[idx+1:])
	e.terms = e.terms[:len(e.terms)-1]
}

func (e *expr) addSymbol(coeff float64, id Symbol) {
	idx := e.find(id)
	if idx == -1 {
		if !eqz(coeff) {
			e.terms = append(e.terms, Term{coeff: coeff, id: id})
		}

		return
	}

	e.terms[idx].coeff += coeff
	if eqz(e.terms[idx].coeff) {
		e.delete(idx)
	}
}

func (e *expr) addExpr(coeff float64, other expr) {
	e.constant += coeff * other.constant
	for i := range other.terms {
		e.addSymbol(coeff*other.terms[i].coeff, other.terms[i].id)
	}
}

func (e *expr) negate() {
	e.constant = -e.constant
	for i := range e.terms {
		e.terms[i].coeff = -e.terms[i].coeff
	}
}

func (e *expr) solveFor(id Symbol) {
	idx := e.find(id)
	if idx == -1 {
		return
	}

	coeff := -1.0 / e.terms[idx].coeff
	e.delete(idx)

	if coeff == 1.0 {
		return
	}

	e.constant *= coeff
	for i := range e.terms {
		e.terms[i].coeff *= coeff
	}
}

func (e *expr) solveForSymbols(lhs, rhs Symbol) {
	e.addSymbol(-1.0, lhs)
	e.solveFor(rhs)
}

func (e *expr) substitute(id Symbol, other expr) {
	idx := e.find(id)
	if idx == -1 {
		return
	}

	coeff := e.terms[idx].coeff
	e.delete(idx)
	e.addExpr(coeff, other)
}

// eqz treats magnitudes below this threshold as zero, which is what keeps
// the simplex tableau from accumulating terms for coefficients that have
// cancelled out except for floating-point noise.
func eqz(val float64) bool {
	if val < 0 {
		return -val < 1.0e-8
	}

	return val < 1.0e-8
}

package cassowary

import (
	"errors"
	"math"
)

// Required is the priority threshold at or above which a constraint is
// treated as non-negotiable: the solver will report [ErrUnsatisfiable]
// rather than silently relax it.
const Required Priority = 1e9

type tag struct {
	priority Priority
	marker   Symbol
	other    Symbol
}

// Solver implements the Cassowary constraint solving algorithm. It is
// single-use: build one per layout to solve, add every constraint, then
// read variable values with [Solver.Val].
type Solver struct {
	tabs map[Symbol]Constraint
	tags map[Symbol]tag

	infeasible []Symbol

	objective  expr
	artificial expr
}

// NewSolver returns an empty solver ready to accept constraints.
func NewSolver() *Solver {
	return &Solver{
		tabs: make(map[Symbol]Constraint),
		tags: make(map[Symbol]tag),
	}
}

// Val reports the solver's current value for id. A symbol the solver never
// assigned — because it dropped out of every row — reads back as zero.
func (s *Solver) Val(id Symbol) float64 {
	row, ok := s.tabs[id]
	if !ok {
		return 0
	}

	return row.expr.constant
}

// Add adds a constraint at the given priority. The returned symbol
// identifies the internal marker variable associated with the constraint
// and is rarely useful to callers; the error is non-nil only when the
// constraint set as a whole has become unsatisfiable at [Required]
// priority, or when a term references the zero Symbol.
func (s *Solver) Add(priority Priority, cell Constraint) (Symbol, error) {
	t := tag{priority: priority}

	c := cell
	c.expr.terms = make([]Term, 0, len(c.expr.terms))

	for _, term := range cell.expr.terms {
		if eqz(term.coeff) {
			continue
		}

		if term.id.isZero() {
			return zero, errBadTerm
		}

		resolved, exists := s.tabs[term.id]
		if !exists {
			c.expr.addSymbol(term.coeff, term.id)
			continue
		}

		c.expr.addExpr(term.coeff, resolved.expr)
	}

	switch c.op {
	case LTE, GTE:
		coeff := 1.0
		if c.op == GTE {
			coeff = -1.0
		}

		t.marker = next(slack)
		c.expr.addSymbol(coeff, t.marker)

		if priority < Required {
			t.other = next(errorSym)
			c.expr.addSymbol(-coeff, t.other)
			s.objective.addSymbol(float64(priority), t.other)
		}
	case EQ:
		if priority < Required {
			t.marker = next(errorSym)
			t.other = next(errorSym)

			c.expr.addSymbol(-1.0, t.marker)
			c.expr.addSymbol(1.0, t.other)

			s.objective.addSymbol(float64(priority), t.marker)
			s.objective.addSymbol(float64(priority), t.other)
		} else {
			t.marker = next(dummy)
			c.expr.addSymbol(1.0, t.marker)
		}
	}

	if c.expr.constant < 0.0 {
		c.expr.negate()
	}

	subject, err := s.findSubject(c, t)
	if err != nil {
		return zero, err
	}

	if subject.isZero() {
		if err := s.augmentArtificialVariable(c); err != nil {
			return t.marker, err
		}
	} else {
		c.expr.solveFor(subject)
		s.substitute(subject, c.expr)
		s.tabs[subject] = c
	}

	s.tags[t.marker] = t

	return t.marker, s.optimizeAgainst(&s.objective)
}

func (s *Solver) findSubject(cell Constraint, t tag) (Symbol, error) {
	for _, term := range cell.expr.terms {
		if term.id.external() {
			return term.id, nil
		}
	}

	if t.marker.restricted() {
		idx := cell.expr.find(t.marker)
		if idx != -1 && cell.expr.terms[idx].coeff < 0.0 {
			return t.marker, nil
		}
	}

	if t.other.restricted() {
		idx := cell.expr.find(t.other)
		if idx != -1 && cell.expr.terms[idx].coeff < 0.0 {
			return t.other, nil
		}
	}

	for _, term := range cell.expr.terms {
		if !term.id.isDummy() {
			return zero, nil
		}
	}

	if !eqz(cell.expr.constant) {
		return zero, ErrUnsatisfiable
	}

	return t.marker, nil
}

func (s *Solver) substitute(id Symbol, e expr) {
	for symbol := range s.tabs {
		row := s.tabs[symbol]
		row.expr.substitute(id, e)
		s.tabs[symbol] = row

		if symbol.external() || row.expr.constant >= 0.0 {
			continue
		}

		s.infeasible = append(s.infeasible, symbol)
	}

	s.objective.substitute(id, e)
	s.artificial.substitute(id, e)
}

func (s *Solver) optimizeAgainst(objective *expr) error {
	for {
		entry := zero

		for _, term := range objective.terms {
			if !term.id.isDummy() && term.coeff < 0.0 {
				entry = term.id
				break
			}
		}

		if entry.isZero() {
			return nil
		}

		ratio := math.MaxFloat64
		exit := zero

		for symbol := range s.tabs {
			if symbol.external() {
				continue
			}

			idx := s.tabs[symbol].expr.find(entry)
			if idx == -1 {
				continue
			}

			coeff := s.tabs[symbol].expr.terms[idx].coeff
			if coeff >= 0.0 {
				continue
			}

			r := -s.tabs[symbol].expr.constant / coeff
			if r < ratio {
				ratio, exit = r, symbol
			}
		}

		row := s.tabs[exit]
		delete(s.tabs, exit)

		row.expr.solveForSymbols(exit, entry)

		s.substitute(entry, row.expr)
		s.tabs[entry] = row
	}
}

func (s *Solver) augmentArtificialVariable(row Constraint) error {
	art := next(slack)

	s.tabs[art] = row.clone()
	s.artificial = row.expr.clone()

	if err := s.optimizeAgainst(&s.artificial); err != nil {
		return err
	}

	success := eqz(s.artificial.constant)
	s.artificial = newExpr(0.0)

	artificial, ok := s.tabs[art]
	if ok {
		delete(s.tabs, art)

		if len(artificial.expr.terms) == 0 {
			return nil
		}

		entry := zero

		for _, term := range artificial.expr.terms {
			if term.id.restricted() {
				entry = term.id
				break
			}
		}

		if entry.isZero() {
			return ErrUnsatisfiable
		}

		artificial.expr.solveForSymbols(art, entry)

		s.substitute(entry, artificial.expr)
		s.tabs[entry] = artificial
	}

	for symbol, row := range s.tabs {
		idx := row.expr.find(art)
		if idx == -1 {
			continue
		}

		row.expr.delete(idx)
		s.tabs[symbol] = row
	}

	if idx := s.objective.find(art); idx != -1 {
		s.objective.delete(idx)
	}

	if !success {
		return ErrUnsatisfiable
	}

	return nil
}

// ErrUnsatisfiable is returned by [Solver.Add] when a constraint at
// [Required] priority conflicts with the constraints already added.
var (
	ErrUnsatisfiable = errors.New("cassowary: constraint is unsatisfiable")
	errBadTerm       = errors.New("cassowary: term references a nil symbol")
)

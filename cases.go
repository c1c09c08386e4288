package match

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// matchCase is a condition together with the result it produces.
// Labels are for diagnostic output only.
type matchCase[TIn, TOut any] struct {
	when      func(TIn) bool
	then      func(TIn) (TOut, error)
	whenLabel string
	thenLabel string
}

// cases is the single evaluation engine behind every flavour of match.
// Matches without input use struct{} for TIn.
type cases[TIn, TOut any] struct {
	list     []matchCase[TIn, TOut]
	fallback *matchCase[TIn, TOut] // the else-case, never part of list
	err      error                 // first configuration error, reported by Err()
}

func (cs *cases[TIn, TOut]) add(op string, c matchCase[TIn, TOut]) {
	if c.when == nil || c.then == nil {
		cs.fail(op, "nil condition or result")
		return
	}
	cs.list = append(cs.list, c)
}

func (cs *cases[TIn, TOut]) setElse(op string, c matchCase[TIn, TOut]) {
	if c.then == nil {
		cs.fail(op, "nil else result")
		return
	}
	if cs.fallback != nil {
		cs.fail(op, "multiple else cases")
		return
	}
	c.when = func(TIn) bool { return true }
	c.whenLabel = "else"
	cs.fallback = &c
}

func (cs *cases[TIn, TOut]) fail(op, msg string) {
	err := &ConfigurationError{Op: op, Msg: msg}
	tracer().Errorf("%v", err)
	if cs.err == nil {
		cs.err = err
	}
}

// eval runs the cases in order and returns the result of the first one
// matching in. The else-case is consulted last and is not stored in list,
// thus repeated evaluations never accumulate synthetic cases.
func (cs *cases[TIn, TOut]) eval(in TIn, hasInput bool) (TOut, error) {
	var zero TOut
	for i, c := range cs.list {
		if c.when(in) {
			tracer().Debugf("match: case #%d (%s) matched", i+1, c.whenLabel)
			return c.then(in)
		}
	}
	if cs.fallback != nil {
		tracer().Debugf("match: none of %d cases matched, using else", len(cs.list))
		return cs.fallback.then(in)
	}
	err := &IncompletePatternMatchError{Cases: len(cs.list), HasInput: hasInput}
	if hasInput {
		err.Input = fmt.Sprintf("%v", in)
	}
	tracer().Errorf("%v", err)
	return zero, err
}

// render prints the case list as a tree, headed by title.
func (cs *cases[TIn, TOut]) render(title string) string {
	printer := treeprint.New()
	branch := printer.AddBranch(title)
	for i, c := range cs.list {
		branch.AddNode(fmt.Sprintf("#%d %s → %s", i+1, c.whenLabel, c.thenLabel))
	}
	if cs.fallback != nil {
		branch.AddNode(fmt.Sprintf("else → %s", cs.fallback.thenLabel))
	}
	if cs.err != nil {
		branch.AddNode(fmt.Sprintf("error: %s", cs.err.Error()))
	}
	return printer.String()
}

// --- Adapters --------------------------------------------------------------

const (
	predicateLabel = "predicate"
	computedLabel  = "computed"
)

func valueLabel(v any) string {
	return fmt.Sprintf("== %#v", v)
}

func literalLabel(v any) string {
	return fmt.Sprintf("%#v", v)
}

// literal produces x for any input. x is captured eagerly.
func literal[TIn, TOut any](x TOut) func(TIn) (TOut, error) {
	c := Const(x)
	return func(TIn) (TOut, error) {
		return c(), nil
	}
}

func compute[TIn, TOut any](f func(TIn) TOut) func(TIn) (TOut, error) {
	if f == nil {
		return nil
	}
	return func(in TIn) (TOut, error) {
		return f(in), nil
	}
}

func nullary[TOut any](f func() TOut) func(struct{}) (TOut, error) {
	if f == nil {
		return nil
	}
	return func(struct{}) (TOut, error) {
		return f(), nil
	}
}

func nullaryTry[TOut any](f func() (TOut, error)) func(struct{}) (TOut, error) {
	if f == nil {
		return nil
	}
	return func(struct{}) (TOut, error) {
		return f()
	}
}

func condition(p func() bool) func(struct{}) bool {
	if p == nil {
		return nil
	}
	return func(struct{}) bool {
		return p()
	}
}

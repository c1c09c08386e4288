package match

import (
	"fmt"

	"github.com/npillmayer/match/maybe"
	"github.com/npillmayer/match/result"
)

// CondMatch is a match without an input value. Conditions are functions
// without arguments, usually closures.
type CondMatch[TOut any] struct {
	cs cases[struct{}, TOut]
}

// Cond creates a match on conditions, producing results of type TOut.
func Cond[TOut any]() *CondMatch[TOut] {
	return &CondMatch[TOut]{}
}

// With appends a case: if cond() holds, the result is f().
func (m *CondMatch[TOut]) With(cond func() bool, f func() TOut) *CondMatch[TOut] {
	m.cs.add("With", matchCase[struct{}, TOut]{when: condition(cond), then: nullary(f),
		whenLabel: predicateLabel, thenLabel: computedLabel})
	return m
}

// WithResult appends a case: if cond() holds, the result is r.
func (m *CondMatch[TOut]) WithResult(cond func() bool, r TOut) *CondMatch[TOut] {
	m.cs.add("WithResult", matchCase[struct{}, TOut]{when: condition(cond), then: literal[struct{}](r),
		whenLabel: predicateLabel, thenLabel: literalLabel(r)})
	return m
}

// WithFlag appends a case with a condition which is already decided.
// flag is captured at call time and will not be re-evaluated by Do.
func (m *CondMatch[TOut]) WithFlag(flag bool, r TOut) *CondMatch[TOut] {
	m.cs.add("WithFlag", matchCase[struct{}, TOut]{when: func(struct{}) bool { return flag },
		then: literal[struct{}](r), whenLabel: fmt.Sprintf("flag=%t", flag), thenLabel: literalLabel(r)})
	return m
}

// WithTry appends a case with a result function which may fail.
func (m *CondMatch[TOut]) WithTry(cond func() bool, f func() (TOut, error)) *CondMatch[TOut] {
	m.cs.add("WithTry", matchCase[struct{}, TOut]{when: condition(cond), then: nullaryTry(f),
		whenLabel: predicateLabel, thenLabel: computedLabel})
	return m
}

// Else sets the default case.
func (m *CondMatch[TOut]) Else(f func() TOut) *CondMatch[TOut] {
	m.cs.setElse("Else", matchCase[struct{}, TOut]{then: nullary(f), thenLabel: computedLabel})
	return m
}

// ElseResult sets a constant default result.
func (m *CondMatch[TOut]) ElseResult(r TOut) *CondMatch[TOut] {
	m.cs.setElse("ElseResult", matchCase[struct{}, TOut]{then: literal[struct{}](r), thenLabel: literalLabel(r)})
	return m
}

// ElseTry sets a default case which may fail.
func (m *CondMatch[TOut]) ElseTry(f func() (TOut, error)) *CondMatch[TOut] {
	m.cs.setElse("ElseTry", matchCase[struct{}, TOut]{then: nullaryTry(f), thenLabel: computedLabel})
	return m
}

// Do evaluates the match.
func (m *CondMatch[TOut]) Do() (TOut, error) {
	return m.cs.eval(struct{}{}, false)
}

// MustDo is like Do, but panics on error.
func (m *CondMatch[TOut]) MustDo() TOut {
	r, err := m.Do()
	if err != nil {
		panic(err)
	}
	return r
}

// DoMaybe evaluates the match. Errors result in Nothing.
func (m *CondMatch[TOut]) DoMaybe() maybe.Maybe[TOut] {
	r, err := m.Do()
	return toMaybe(r, err)
}

// DoResult evaluates the match and wraps the outcome.
func (m *CondMatch[TOut]) DoResult() result.Result[TOut] {
	r, err := m.Do()
	return result.Of(r, err)
}

// ToFunc returns a function which evaluates m on every call.
func (m *CondMatch[TOut]) ToFunc() func() (TOut, error) {
	return m.Do
}

// Err returns the configuration error of m, if any.
func (m *CondMatch[TOut]) Err() error {
	return m.cs.err
}

// Len returns the number of cases, not counting the default.
func (m *CondMatch[TOut]) Len() int {
	return len(m.cs.list)
}

func (m *CondMatch[TOut]) String() string {
	var out TOut
	return m.cs.render(fmt.Sprintf("cond → %T", out))
}

package match

import (
	"fmt"

	"github.com/npillmayer/match/maybe"
	"github.com/npillmayer/match/result"
)

// --- Func ------------------------------------------------------------------

// FuncMatch is a match on an input value which is given at evaluation time.
// It is created by Func and usually converted to a function with ToFunc.
type FuncMatch[TIn, TOut any] struct {
	cs cases[TIn, TOut]
}

// Func creates a match on input values of type TIn, producing results of
// type TOut. The input is not known before Do(v) is called.
//
//    initial := match.Func[string, string]().
//        WithResult(startsWith("A"), "starts with A").
//        With(startsWith("F"), func(s string) string { return s + " starts with F" }).
//        ElseResult("unknown").
//        ToFunc()
//    initial("Fiona")  // => "Fiona starts with F", nil
//
func Func[TIn, TOut any]() *FuncMatch[TIn, TOut] {
	return &FuncMatch[TIn, TOut]{}
}

// With appends a case: if pred holds for the input, the result is f(input).
func (m *FuncMatch[TIn, TOut]) With(pred func(TIn) bool, f func(TIn) TOut) *FuncMatch[TIn, TOut] {
	m.cs.add("With", matchCase[TIn, TOut]{when: pred, then: compute(f),
		whenLabel: predicateLabel, thenLabel: computedLabel})
	return m
}

// WithResult appends a case: if pred holds for the input, the result is r.
func (m *FuncMatch[TIn, TOut]) WithResult(pred func(TIn) bool, r TOut) *FuncMatch[TIn, TOut] {
	m.cs.add("WithResult", matchCase[TIn, TOut]{when: pred, then: literal[TIn](r),
		whenLabel: predicateLabel, thenLabel: literalLabel(r)})
	return m
}

// WithValue appends a case: if the input equals v, the result is f(input).
func (m *FuncMatch[TIn, TOut]) WithValue(v TIn, f func(TIn) TOut) *FuncMatch[TIn, TOut] {
	m.cs.add("WithValue", matchCase[TIn, TOut]{when: Is(v), then: compute(f),
		whenLabel: valueLabel(v), thenLabel: computedLabel})
	return m
}

// WithValueResult appends a case: if the input equals v, the result is r.
func (m *FuncMatch[TIn, TOut]) WithValueResult(v TIn, r TOut) *FuncMatch[TIn, TOut] {
	m.cs.add("WithValueResult", matchCase[TIn, TOut]{when: Is(v), then: literal[TIn](r),
		whenLabel: valueLabel(v), thenLabel: literalLabel(r)})
	return m
}

// WithTry appends a case with a result function which may fail. An error
// returned by f is returned by the evaluation as is.
func (m *FuncMatch[TIn, TOut]) WithTry(pred func(TIn) bool, f func(TIn) (TOut, error)) *FuncMatch[TIn, TOut] {
	m.cs.add("WithTry", matchCase[TIn, TOut]{when: pred, then: f,
		whenLabel: predicateLabel, thenLabel: computedLabel})
	return m
}

// Else sets the default case. A match may have at most one default.
func (m *FuncMatch[TIn, TOut]) Else(f func(TIn) TOut) *FuncMatch[TIn, TOut] {
	m.cs.setElse("Else", matchCase[TIn, TOut]{then: compute(f), thenLabel: computedLabel})
	return m
}

// ElseResult sets a constant default result.
func (m *FuncMatch[TIn, TOut]) ElseResult(r TOut) *FuncMatch[TIn, TOut] {
	m.cs.setElse("ElseResult", matchCase[TIn, TOut]{then: literal[TIn](r), thenLabel: literalLabel(r)})
	return m
}

// ElseTry sets a default case which may fail.
func (m *FuncMatch[TIn, TOut]) ElseTry(f func(TIn) (TOut, error)) *FuncMatch[TIn, TOut] {
	m.cs.setElse("ElseTry", matchCase[TIn, TOut]{then: f, thenLabel: computedLabel})
	return m
}

// Do evaluates the match for input v.
func (m *FuncMatch[TIn, TOut]) Do(v TIn) (TOut, error) {
	return m.cs.eval(v, true)
}

// MustDo is like Do, but panics on error.
func (m *FuncMatch[TIn, TOut]) MustDo(v TIn) TOut {
	r, err := m.Do(v)
	if err != nil {
		panic(err)
	}
	return r
}

// DoMaybe evaluates the match for input v. Errors result in Nothing.
func (m *FuncMatch[TIn, TOut]) DoMaybe(v TIn) maybe.Maybe[TOut] {
	r, err := m.Do(v)
	return toMaybe(r, err)
}

// DoResult evaluates the match for input v and wraps the outcome.
func (m *FuncMatch[TIn, TOut]) DoResult(v TIn) result.Result[TOut] {
	r, err := m.Do(v)
	return result.Of(r, err)
}

// ToFunc returns a function which evaluates m on every call. Results are
// not memoized.
func (m *FuncMatch[TIn, TOut]) ToFunc() func(TIn) (TOut, error) {
	return m.Do
}

// Err returns the configuration error of m, if any.
func (m *FuncMatch[TIn, TOut]) Err() error {
	return m.cs.err
}

// Len returns the number of cases, not counting the default.
func (m *FuncMatch[TIn, TOut]) Len() int {
	return len(m.cs.list)
}

func (m *FuncMatch[TIn, TOut]) String() string {
	var in TIn
	var out TOut
	return m.cs.render(fmt.Sprintf("func(%T) %T", in, out))
}

// --- On --------------------------------------------------------------------

// ValueMatch is a match on a value captured at creation time.
type ValueMatch[TIn, TOut any] struct {
	value TIn
	cs    cases[TIn, TOut]
}

// On creates a match on value, producing results of type TOut. value is
// captured once and handed to every condition and result function.
// TIn is inferred:
//
//    greeting := match.On[string](name).
//        WithResult(match.Is("Fiona"), "It's Fiona!").
//        With(match.Is("Ben"), func(n string) string { return "Hey it's " + n }).
//        Else(func(n string) string { return "I don't know " + n }).
//        MustDo()
//
func On[TOut, TIn any](value TIn) *ValueMatch[TIn, TOut] {
	return &ValueMatch[TIn, TOut]{value: value}
}

// With appends a case: if pred holds for the value, the result is f(value).
func (m *ValueMatch[TIn, TOut]) With(pred func(TIn) bool, f func(TIn) TOut) *ValueMatch[TIn, TOut] {
	m.cs.add("With", matchCase[TIn, TOut]{when: pred, then: compute(f),
		whenLabel: predicateLabel, thenLabel: computedLabel})
	return m
}

// WithResult appends a case: if pred holds for the value, the result is r.
func (m *ValueMatch[TIn, TOut]) WithResult(pred func(TIn) bool, r TOut) *ValueMatch[TIn, TOut] {
	m.cs.add("WithResult", matchCase[TIn, TOut]{when: pred, then: literal[TIn](r),
		whenLabel: predicateLabel, thenLabel: literalLabel(r)})
	return m
}

// WithValue appends a case: if the value equals v, the result is f(value).
func (m *ValueMatch[TIn, TOut]) WithValue(v TIn, f func(TIn) TOut) *ValueMatch[TIn, TOut] {
	m.cs.add("WithValue", matchCase[TIn, TOut]{when: Is(v), then: compute(f),
		whenLabel: valueLabel(v), thenLabel: computedLabel})
	return m
}

// WithValueResult appends a case: if the value equals v, the result is r.
func (m *ValueMatch[TIn, TOut]) WithValueResult(v TIn, r TOut) *ValueMatch[TIn, TOut] {
	m.cs.add("WithValueResult", matchCase[TIn, TOut]{when: Is(v), then: literal[TIn](r),
		whenLabel: valueLabel(v), thenLabel: literalLabel(r)})
	return m
}

// WithTry appends a case with a result function which may fail.
func (m *ValueMatch[TIn, TOut]) WithTry(pred func(TIn) bool, f func(TIn) (TOut, error)) *ValueMatch[TIn, TOut] {
	m.cs.add("WithTry", matchCase[TIn, TOut]{when: pred, then: f,
		whenLabel: predicateLabel, thenLabel: computedLabel})
	return m
}

// Else sets the default case.
func (m *ValueMatch[TIn, TOut]) Else(f func(TIn) TOut) *ValueMatch[TIn, TOut] {
	m.cs.setElse("Else", matchCase[TIn, TOut]{then: compute(f), thenLabel: computedLabel})
	return m
}

// ElseResult sets a constant default result.
func (m *ValueMatch[TIn, TOut]) ElseResult(r TOut) *ValueMatch[TIn, TOut] {
	m.cs.setElse("ElseResult", matchCase[TIn, TOut]{then: literal[TIn](r), thenLabel: literalLabel(r)})
	return m
}

// ElseTry sets a default case which may fail.
func (m *ValueMatch[TIn, TOut]) ElseTry(f func(TIn) (TOut, error)) *ValueMatch[TIn, TOut] {
	m.cs.setElse("ElseTry", matchCase[TIn, TOut]{then: f, thenLabel: computedLabel})
	return m
}

// Do evaluates the match on the captured value.
func (m *ValueMatch[TIn, TOut]) Do() (TOut, error) {
	return m.cs.eval(m.value, true)
}

// MustDo is like Do, but panics on error.
func (m *ValueMatch[TIn, TOut]) MustDo() TOut {
	r, err := m.Do()
	if err != nil {
		panic(err)
	}
	return r
}

// DoMaybe evaluates the match. Errors result in Nothing.
func (m *ValueMatch[TIn, TOut]) DoMaybe() maybe.Maybe[TOut] {
	r, err := m.Do()
	return toMaybe(r, err)
}

// DoResult evaluates the match and wraps the outcome.
func (m *ValueMatch[TIn, TOut]) DoResult() result.Result[TOut] {
	r, err := m.Do()
	return result.Of(r, err)
}

// ToFunc returns a function which evaluates m on every call.
func (m *ValueMatch[TIn, TOut]) ToFunc() func() (TOut, error) {
	return m.Do
}

// Value returns the value m matches on.
func (m *ValueMatch[TIn, TOut]) Value() TIn {
	return m.value
}

// Err returns the configuration error of m, if any.
func (m *ValueMatch[TIn, TOut]) Err() error {
	return m.cs.err
}

// Len returns the number of cases, not counting the default.
func (m *ValueMatch[TIn, TOut]) Len() int {
	return len(m.cs.list)
}

func (m *ValueMatch[TIn, TOut]) String() string {
	var out TOut
	return m.cs.render(fmt.Sprintf("on %#v → %T", m.value, out))
}

// ---------------------------------------------------------------------------

func toMaybe[T any](x T, err error) maybe.Maybe[T] {
	if err != nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(x)
}

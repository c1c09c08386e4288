/*
Package result implements the result of a computation which may fail.

A Result is either Ok, carrying a value, or Err, carrying an error.
*/
package result

import (
	"github.com/npillmayer/match/maybe"
)

// Result is the outcome of a computation producing a T.
type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
	Get() (T, error)
	WithDefault(T) T
	ToMaybe() maybe.Maybe[T]
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of lifts a (value, error) return pair into a Result.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

func (r result[T]) ToMaybe() maybe.Maybe[T] {
	return maybe.Of(r.value, r.err == nil)
}

// AndThen chains a computation which may fail. Errors short-circuit.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	v, err := x.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// MapError transforms the error of x, leaving Ok values untouched.
func MapError[T any](f func(error) error, x Result[T]) Result[T] {
	if _, err := x.Get(); err != nil {
		return Err[T](f(err))
	}
	return x
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements, see package maybe.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		if v != nil {
			*v = rm.r.value
		}
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		if err != nil {
			*err = rm.r.err
		}
		return rm
	}
	return nil
}

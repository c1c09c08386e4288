/*
Package maybe implements an optional value type.

A Maybe holds either a value (Just) or nothing (Nothing). Clients match on it
with a switch statement:

   var v int
   switch m := x.Match(); m {
   case m.Just(&v):
       …
   case m.Nothing():
       …
   }
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	IsJust() bool
	Get() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, just: true}
}

// Nothing is the empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{}
}

// Of is Just(x) if ok is true, Nothing otherwise. It mirrors the comma-ok idiom:
//
//    v, ok := m[key]
//    opt := maybe.Of(v, ok)
//
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) IsJust() bool {
	return m.just
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

func (m maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may produce nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value of x, possibly changing its type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// OneOf returns the first of xs holding a value.
func OneOf[T any](xs ...Maybe[T]) Maybe[T] {
	for _, x := range xs {
		if x.IsJust() {
			return x
		}
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements. A case method returns the matcher
// itself if it fits, nil otherwise.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}

/*
Package either implements a tagged union of two types.

Either is the stand-in for a sum type

    type Either a b = Left a | Right b

and is useful wherever a computation produces values of one of two types,
e.g. a pattern match where some cases produce numbers and others text.
*/
package either

import (
	"fmt"
)

// Either holds a value of type L or a value of type R, never both.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either holding l.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right creates an Either holding r.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value, if e holds one.
func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, !e.isRight
}

// RightValue returns the right value, if e holds one.
func (e Either[L, R]) RightValue() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold collapses e to a single type.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// --- Matching --------------------------------------------------------------

func (e Either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

// Matcher is used in switch statements:
//
//    var n int
//    var s string
//    switch m := e.Match(); m {
//    case m.Left(&n):
//    case m.Right(&s):
//    }
//
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e Either[L, R]
}

func (em matcher[L, R]) Left(l *L) Matcher[L, R] {
	if em.e.isRight {
		return nil
	}
	if l != nil {
		*l = em.e.left
	}
	return em
}

func (em matcher[L, R]) Right(r *R) Matcher[L, R] {
	if !em.e.isRight {
		return nil
	}
	if r != nil {
		*r = em.e.right
	}
	return em
}

package match

import (
	"fmt"
)

// Pair is a tuple of two values. Pairs let clients match on two values at
// once:
//
//    match.On[string](match.P(x, y)).
//        WithValueResult(match.P(0, 0), "origin").
//        WithResult(match.First[int, int](match.Is(0)), "on y-axis")
//
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair (x, y).
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Matches is true if p and other are equal by value.
func (p Pair[A, B]) Matches(other Pair[A, B]) bool {
	return equal(p, other)
}

// Decompose returns the components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

// First returns a predicate on pairs, testing the left component.
func First[A, B any](pred func(A) bool) func(Pair[A, B]) bool {
	return By(func(p Pair[A, B]) A { return p.Left }, pred)
}

// Second returns a predicate on pairs, testing the right component.
func Second[A, B any](pred func(B) bool) func(Pair[A, B]) bool {
	return By(func(p Pair[A, B]) B { return p.Right }, pred)
}

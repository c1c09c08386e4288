package match

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// unexported lets cmp look into unexported struct fields.
var unexported = cmp.Exporter(func(reflect.Type) bool { return true })

// equal decides value equality, recursing into slices, maps and structs,
// including their unexported fields. Types with an Equal method use it.
func equal[T any](x, y T) bool {
	return cmp.Equal(x, y, unexported)
}

// Is returns a predicate testing for value equality with v.
// v may be of a non-comparable type like a slice or a map.
func Is[T any](v T) func(T) bool {
	return func(x T) bool {
		return equal(x, v)
	}
}

// Not negates p.
func Not[T any](p func(T) bool) func(T) bool {
	return func(x T) bool {
		return !p(x)
	}
}

// And holds if all of ps hold. Evaluation stops at the first failing predicate.
func And[T any](ps ...func(T) bool) func(T) bool {
	return func(x T) bool {
		for _, p := range ps {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

// Or holds if any of ps holds. Evaluation stops at the first predicate holding.
func Or[T any](ps ...func(T) bool) func(T) bool {
	return func(x T) bool {
		for _, p := range ps {
			if p(x) {
				return true
			}
		}
		return false
	}
}

// Any is a predicate which always holds.
func Any[T any]() func(T) bool {
	return func(T) bool {
		return true
	}
}

// By tests p on a projection of the input.
//
//    isLong := match.By(func(s string) int { return len(s) }, func(n int) bool { return n > 80 })
//
func By[T, K any](key func(T) K, p func(K) bool) func(T) bool {
	return Compose(key, p)
}

package either_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/match/either"
)

func TestEitherMatch(t *testing.T) {
	one := either.Left[int, string](1)
	two := either.Right[int]("2")
	for _, e := range []either.Either[int, string]{one, two} {
		var n int
		var s string
		count := 0
		switch m := e.Match(); m {
		case m.Left(&n):
			count = n
		case m.Right(&s):
			count = Atoi(s)
		}
		t.Logf("%v -> count = %d", e, count)
		if count == 0 {
			t.Errorf("expected count for %v to be non-zero", e)
		}
	}
}

func TestEitherAccessors(t *testing.T) {
	e := either.Right[int]("x")
	if e.IsLeft() || !e.IsRight() {
		t.Errorf("expected %v to be right", e)
	}
	if _, ok := e.LeftValue(); ok {
		t.Error("expected no left value")
	}
	if s, ok := e.RightValue(); !ok || s != "x" {
		t.Errorf("expected right value x, got %q", s)
	}
	if e.String() != "Right(x)" {
		t.Errorf("expected Right(x), got %s", e.String())
	}
}

func TestEitherFold(t *testing.T) {
	length := func(e either.Either[int, string]) int {
		return either.Fold(e, func(n int) int { return n }, func(s string) int { return len(s) })
	}
	if l := length(either.Left[int, string](5)); l != 5 {
		t.Errorf("expected 5, got %d", l)
	}
	if l := length(either.Right[int]("abc")); l != 3 {
		t.Errorf("expected 3, got %d", l)
	}
}

// ---------------------------------------------------------------------------

func Atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

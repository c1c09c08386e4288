package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/match/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, has %d", xx)
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeOf(t *testing.T) {
	m := map[string]int{"one": 1}
	v, ok := m["one"]
	if x := Of(v, ok); !x.IsJust() {
		t.Error("expected Of(1, true) to be Just(1), isn't")
	}
	v, ok = m["two"]
	if x := Of(v, ok); x.IsJust() {
		t.Error("expected Of(0, false) to be Nothing, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := Just(7).Map(double).Get(); v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, got %d", v)
	}
	s := Map(strconv.Itoa, Just(10))
	if v, ok := s.Get(); !ok || v != "10" {
		t.Errorf("expected Map(Itoa, Just 10) to return Just \"10\", got %q", v)
	}
	if Nothing[int]().Map(double).IsJust() {
		t.Error("expected Nothing.Map(…) to be Nothing")
	}
	if Map(strconv.Itoa, Nothing[int]()).IsJust() {
		t.Error("expected Map(…, Nothing) to be Nothing")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(gt0, Just(7)).IsJust() {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if AndThen(gt0, Just(-7)).IsJust() {
		t.Error("expected Just(-7) |> andThen(gt0) to be Nothing, isn't")
	}
	if AndThen(gt0, Nothing[int]()).IsJust() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}

func TestMaybeOneOf(t *testing.T) {
	x := OneOf(Nothing[int](), Just(3), Just(4))
	if v := x.WithDefault(0); v != 3 {
		t.Errorf("expected OneOf to pick Just(3), got %d", v)
	}
	if OneOf[int]().IsJust() {
		t.Error("expected OneOf() to be Nothing")
	}
}

package match

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCasesElseIsNotStored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match")
	defer teardown()
	//
	cs := cases[int, string]{}
	cs.add("With", matchCase[int, string]{when: Is(1), then: literal[int]("one")})
	cs.setElse("ElseResult", matchCase[int, string]{then: literal[int]("other")})
	for i := 0; i < 5; i++ {
		if r, err := cs.eval(2, true); err != nil || r != "other" {
			t.Fatalf("expected else-result 'other', got %q, %v", r, err)
		}
	}
	if len(cs.list) != 1 {
		t.Errorf("expected 1 stored case after repeated evaluation, have %d", len(cs.list))
	}
}

func TestCasesFirstErrorSticks(t *testing.T) {
	cs := cases[int, int]{}
	cs.setElse("Else", matchCase[int, int]{then: literal[int](0)})
	cs.setElse("ElseResult", matchCase[int, int]{then: literal[int](1)})
	cs.add("With", matchCase[int, int]{})
	cfg, ok := cs.err.(*ConfigurationError)
	if !ok {
		t.Fatalf("expected configuration error, got %#v", cs.err)
	}
	if cfg.Op != "ElseResult" {
		t.Errorf("expected first error to stick (ElseResult), got %q", cfg.Op)
	}
	if r, _ := cs.fallback.then(0); r != 0 {
		t.Errorf("expected original else-case to survive, got result %d", r)
	}
}

func TestCasesRender(t *testing.T) {
	cs := cases[string, int]{}
	cs.add("WithValueResult", matchCase[string, int]{when: Is("a"), then: literal[string](1),
		whenLabel: valueLabel("a"), thenLabel: literalLabel(1)})
	out := cs.render("test")
	t.Logf("cases =\n%s", out)
	if len(out) == 0 {
		t.Error("expected rendering of cases, got empty string")
	}
}

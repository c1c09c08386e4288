package css_test

import (
	"testing"

	"github.com/npillmayer/match"
	"github.com/npillmayer/match/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.IsKind(css.Auto()):
		t.Errorf("expected percentage not to be of kind auto")
	case m.Percentage(&p):
		t.Logf("percent = %s", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match")
	defer teardown()
	//
	patterns := css.DimenPatterns[int]{
		Just:       10,
		Auto:       0,
		Percentage: 50,
		Default:    -1,
	}
	c := []struct {
		d        css.DimenT
		expected int
	}{
		{css.JustDimen(dimen.PT * 10), 10},
		{css.Auto(), 0},
		{css.Percentage(percent.FromInt(80)), 50},
		{css.Inherit(), 0}, // zero value of patterns.Inherit
		{css.DimenT{}, -1},
	}
	for i, x := range c {
		if r := css.Classify(x.d, patterns); r != x.expected {
			t.Errorf("%d: expected %v to classify as %d, got %d", i, x.d, x.expected, r)
		}
	}
}

func TestMatchOnDimenValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match")
	defer teardown()
	//
	kind := func(d css.DimenT) string {
		return match.On[string](d).
			WithValueResult(css.Auto(), "auto").
			WithValueResult(css.JustDimen(dimen.PT), "one point").
			ElseResult("other").
			MustDo()
	}
	assert.Equal(t, "auto", kind(css.Auto()))
	assert.Equal(t, "one point", kind(css.JustDimen(dimen.PT)))
	assert.Equal(t, "other", kind(css.JustDimen(2*dimen.PT)))
	assert.Equal(t, "other", kind(css.Inherit()))
}

func TestClassifyFunc(t *testing.T) {
	double := func(du dimen.DU) dimen.DU { return 2 * du }
	def := func(css.DimenT) dimen.DU { return -1 }
	distance := css.ClassifyFunc(css.JustDimen(dimen.PT*10), double, nil, def)
	assert.Equal(t, 2*10*dimen.PT, distance)
	assert.Equal(t, dimen.DU(-1), css.ClassifyFunc(css.Auto(), double, nil, def))
}

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.css")
	defer teardown()
	//
	d, err := css.ParseDimen("12pt")
	require.NoError(t, err)
	du, ok := d.Dimen()
	require.True(t, ok)
	assert.Equal(t, 12*dimen.PT, du)
	//
	d, err = css.ParseDimen(" AUTO ")
	require.NoError(t, err)
	assert.True(t, d.IsAuto())
	//
	d, err = css.ParseDimen("80%")
	require.NoError(t, err)
	p, ok := d.Percent()
	require.True(t, ok)
	assert.Equal(t, percent.FromInt(80), p)
	//
	d, err = css.ParseDimen("1in")
	require.NoError(t, err)
	in, _ := d.Dimen()
	d, err = css.ParseDimen("72.27pt")
	require.NoError(t, err)
	pts, _ := d.Dimen()
	assert.Equal(t, pts, in)
	//
	d, err = css.ParseDimen("30000pt")
	require.NoError(t, err)
	big, _ := d.Dimen()
	assert.Equal(t, 30000*dimen.PT, big)
	//
	d, err = css.ParseDimen("0")
	require.NoError(t, err)
	assert.True(t, d.IsAbsolute())
}

func TestParseDimenErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.css")
	defer teardown()
	//
	for _, s := range []string{"", "pt", "twelve pt", "1.5%", "3em", "%",
		"40000pt", "-40000pt", "1e30pt", "nanpt", "infpt", "-infpt", "1e400in"} {
		if d, err := css.ParseDimen(s); err == nil {
			t.Errorf("expected %q not to parse, got %v", s, d)
		}
	}
}

package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/match"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Absolute CSS units, relative to printer's points (1in = 72.27pt).
var units = []struct {
	suffix string
	pt     float64
}{
	{"pt", 1.0},
	{"bp", 72.27 / 72.0},
	{"px", 72.27 / 96.0},
	{"pc", 12.0 * 72.27 / 72.0},
	{"in", 72.27},
	{"cm", 72.27 / 2.54},
	{"mm", 72.27 / 25.4},
}

// dimenParser dispatches on keywords and unit suffixes. It is set up once
// and is safe for concurrent use, as evaluation does not modify it.
var dimenParser = newDimenParser()

func newDimenParser() *match.FuncMatch[string, DimenT] {
	m := match.Func[string, DimenT]().
		WithValueResult("auto", Auto()).
		WithValueResult("inherit", Inherit()).
		WithValueResult("initial", Initial()).
		WithValueResult("0", JustDimen(0)).
		WithTry(hasSuffix("%"), parsePercentage)
	for _, u := range units {
		m.WithTry(hasSuffix(u.suffix), parseLength(u.suffix, u.pt))
	}
	return m.ElseTry(func(s string) (DimenT, error) {
		return DimenT{}, fmt.Errorf("css: cannot parse dimension %q", s)
	})
}

// ParseDimen reads a CSS dimension, e.g. "12pt", "1.5in", "80%" or "auto".
// Keywords and units are case-insensitive.
func ParseDimen(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	d, err := dimenParser.Do(s)
	if err != nil {
		tracer().Errorf("%v", err)
		return d, err
	}
	tracer().Debugf("parsed dimension %q -> %v", s, d)
	return d, nil
}

func hasSuffix(suffix string) func(string) bool {
	return match.And(
		func(s string) bool { return strings.HasSuffix(s, suffix) },
		match.By(func(s string) int { return len(s) }, func(n int) bool { return n > len(suffix) }),
	)
}

func parsePercentage(s string) (DimenT, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
	if err != nil {
		return DimenT{}, fmt.Errorf("css: illegal percentage %q: %w", s, err)
	}
	return Percentage(percent.FromInt(n)), nil
}

func parseLength(suffix string, pt float64) func(string) (DimenT, error) {
	return func(s string) (DimenT, error) {
		x, err := strconv.ParseFloat(strings.TrimSuffix(s, suffix), 64)
		if err != nil {
			return DimenT{}, fmt.Errorf("css: illegal length %q: %w", s, err)
		}
		sp := math.Round(x * pt * float64(dimen.PT))
		if math.IsNaN(sp) || sp < math.MinInt32 || sp > math.MaxInt32 {
			return DimenT{}, fmt.Errorf("css: length %q out of range", s)
		}
		return JustDimen(dimen.DU(sp)), nil
	}
}

package css

import (
	"fmt"

	"github.com/npillmayer/match"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
//
//    type DimenT
//        = Auto
//        | Inherit
//        | Initial
//        | JustDimen dimen
//        | Percentage Percent
//
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

func (d DimenT) IsNone() bool     { return d.flags == dimenNone }
func (d DimenT) IsAuto() bool     { return d.flags&kindMask == dimenAuto }
func (d DimenT) IsInherit() bool  { return d.flags&kindMask == dimenInherit }
func (d DimenT) IsInitial() bool  { return d.flags&kindMask == dimenInitial }
func (d DimenT) IsAbsolute() bool { return d.flags&kindMask == dimenAbsolute }
func (d DimenT) IsPercent() bool  { return d.flags&relativeMask == dimenPercent }

// Dimen returns the fixed value of d, if it has one.
func (d DimenT) Dimen() (dimen.DU, bool) {
	return d.d, d.IsAbsolute()
}

// Percent returns the relative value of d, if it has one.
func (d DimenT) Percent() (percent.Percent, bool) {
	return d.percent, d.IsPercent()
}

func (d DimenT) String() string {
	return Classify(d, DimenPatterns[string]{
		Auto:       "auto",
		Inherit:    "inherit",
		Initial:    "initial",
		Just:       fmt.Sprintf("%v", d.d),
		Percentage: fmt.Sprintf("%v", d.percent),
		Default:    "none",
	})
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is used in switch statements:
//
//    var du dimen.DU
//    switch m := d.Match(); m {
//    case m.Just(&du):
//    case m.IsKind(css.Auto()):
//    }
//
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags&relativeMask > 0 || d.flags&relativeMask > 0:
		if m.dimen.flags&relativeMask == d.flags&relativeMask {
			return m
		}
	case m.dimen.flags&kindMask == d.flags&kindMask:
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.IsPercent() {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Classification --------------------------------------------------------

// DimenPatterns holds a client value for every kind of dimension.
type DimenPatterns[T any] struct {
	Auto       T
	Inherit    T
	Initial    T
	Just       T
	Percentage T
	Default    T
}

// Classify selects the value of patterns matching the kind of d.
func Classify[T any](d DimenT, patterns DimenPatterns[T]) T {
	return match.On[T](d).
		WithResult(DimenT.IsAuto, patterns.Auto).
		WithResult(DimenT.IsAbsolute, patterns.Just).
		WithResult(DimenT.IsPercent, patterns.Percentage).
		WithResult(DimenT.IsInitial, patterns.Initial).
		WithResult(DimenT.IsInherit, patterns.Inherit).
		ElseResult(patterns.Default).
		MustDo()
}

// ClassifyFunc is like Classify, with values computed from the dimension.
// If just or pcnt is nil, def is used for that kind. def must not be nil.
func ClassifyFunc[T any](d DimenT, just func(dimen.DU) T, pcnt func(percent.Percent) T, def func(DimenT) T) T {
	m := match.On[T](d)
	if just != nil {
		m.With(DimenT.IsAbsolute, func(d DimenT) T { return just(d.d) })
	}
	if pcnt != nil {
		m.With(DimenT.IsPercent, func(d DimenT) T { return pcnt(d.percent) })
	}
	return m.Else(def).MustDo()
}

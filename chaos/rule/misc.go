package rule

import (
	"github.com/ratel-online/chaos/chaos/card"
)

// AttackMultiplier scales the stack flush. Multiplier cards multiply it on
// activation and divide it back on deactivation, so stacked multiplier
// cards compose and unwind cleanly.
type AttackMultiplier struct {
	base
	factor float64
}

func NewAttackMultiplier() *AttackMultiplier {
	return &AttackMultiplier{base: base{name: NameMultiplier}, factor: 1}
}

func (r *AttackMultiplier) Factor() float64 {
	return r.factor
}

func (r *AttackMultiplier) Multiply(factor float64) {
	if factor != 0 {
		r.factor *= factor
	}
}

func (r *AttackMultiplier) Divide(factor float64) {
	if factor != 0 {
		r.factor /= factor
	}
}

func (r *AttackMultiplier) Reset() {
	r.factor = 1
}

// SilentSixes toggles silent mode on every six and penalizes talking while
// it holds. Detecting speech is an external collaborator's job; the engine
// only consumes the boolean signal through Spoke.
type SilentSixes struct {
	base
	silent bool
}

func NewSilentSixes() *SilentSixes {
	return &SilentSixes{base: base{name: NameSilentSixes}}
}

func (r *SilentSixes) Silent() bool {
	return r.silent
}

func (r *SilentSixes) React(t Table, delta []card.Card, top card.Card) error {
	if number, ok := top.Number(); ok && number == 6 {
		r.silent = !r.silent
	}
	return nil
}

// Spoke applies the externally detected "player spoke" signal.
func (r *SilentSixes) Spoke(t Table, seat int) {
	if r.enabled && r.silent {
		t.ForceDraw(seat, 2)
	}
}

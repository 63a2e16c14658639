package rule

import (
	"math"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/move"
	"github.com/ratel-online/chaos/consts"
)

// Stacking defers a forced draw by playing another qualifying attack card,
// accumulating the total owed. What qualifies is driven by a mutable set of
// condition tokens: color names, type names, DrawAny or DrawSame.
type Stacking struct {
	base
	conditions map[string]bool
	count      int

	// type of the attack chain while a stack is running, nil otherwise.
	// DrawSame forbids mixing 2s and 4s within one chain.
	stackType card.Type
}

func NewStacking() *Stacking {
	return &Stacking{
		base:       base{name: NameStacking},
		conditions: map[string]bool{},
	}
}

func (s *Stacking) AddCondition(condition string) {
	s.conditions[condition] = true
}

func (s *Stacking) RemoveCondition(condition string) {
	delete(s.conditions, condition)
}

// SetConditions replaces the whole condition set.
func (s *Stacking) SetConditions(conditions ...string) {
	s.conditions = map[string]bool{}
	for _, condition := range conditions {
		s.conditions[condition] = true
	}
}

func (s *Stacking) HasCondition(condition string) bool {
	return s.conditions[condition]
}

func (s *Stacking) Count() int {
	return s.count
}

// CanStack reports whether candidate may continue a stack sitting on top.
// DrawSame demands the identical attack type, DrawAny any compatible attack
// card, and color/type tokens any matching compatible card. In duplicate
// (jump-in) context only the exact same card qualifies.
func (s *Stacking) CanStack(candidate, top card.Card, duplicate bool) bool {
	if duplicate && !candidate.Identical(top) {
		return false
	}
	for condition := range s.conditions {
		switch condition {
		case DrawSame:
			if candidate.DrawAmount() > 0 && candidate.Type() == top.Type() {
				return true
			}
		case DrawAny:
			if candidate.DrawAmount() > 0 && top.DrawAmount() > 0 && candidate.Compatible(top) {
				return true
			}
		default:
			if candidate.Compatible(top) &&
				(candidate.EffectiveColor().Name() == condition || candidate.Type().Name() == condition) {
				return true
			}
		}
	}
	return false
}

// Moves yields a single-card move for every hand card that can continue the
// stack against the current top card.
func (s *Stacking) Moves(top card.Card, hand []card.Card, duplicate bool) []move.Move {
	var moves []move.Move
	for _, candidate := range hand {
		if s.CanStack(candidate, top, duplicate) {
			moves = append(moves, move.Single(candidate))
		}
	}
	return moves
}

// React folds the newly played cards into the running stack. The first card
// that does not match any condition must have been the play that ended the
// stack; if a stack was still owed at that point the break is reported as
// IllegalStackBreak (the pending draw is enforced by the engine regardless).
func (s *Stacking) React(t Table, delta []card.Card, top card.Card) error {
	for _, played := range delta {
		if !s.folds(played) {
			if s.count > 0 {
				return consts.ErrorsIllegalStackBreak
			}
			return nil
		}
		s.count += played.DrawAmount()
		if s.stackType == nil && played.DrawAmount() > 0 {
			s.stackType = played.Type()
		}
	}
	return nil
}

// folds reports whether a played card belongs to the stack accumulation.
// Any attack card folds: the base draw penalty exists with or without
// stacking conditions, which only govern who may counter. Color and type
// tokens additionally let plain matching cards ride along.
func (s *Stacking) folds(played card.Card) bool {
	if played.DrawAmount() > 0 {
		return true
	}
	for condition := range s.conditions {
		if condition == DrawAny || condition == DrawSame {
			continue
		}
		if played.EffectiveColor().Name() == condition || played.Type().Name() == condition {
			return true
		}
	}
	return false
}

// Flush makes the seat draw the accumulated stack scaled by the attack
// multiplier, or the baseline single card when no stack is owed, and resets
// the stack. Returns the number of cards drawn.
func (s *Stacking) Flush(t Table, seat int, multiplier float64) int {
	amount := 1
	if s.count > 0 {
		amount = int(math.Round(float64(s.count) * multiplier))
	}
	t.ForceDraw(seat, amount)
	s.count = 0
	s.stackType = nil
	return amount
}

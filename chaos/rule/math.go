package rule

import (
	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/move"
)

// MathRules lets a pair of number cards stand in for the number on top:
// two cards summing to it (addition) or two cards whose difference is it
// (subtraction). Pairs are whole-or-nothing, a half-played pair means
// nothing, so every produced move is exact.
type MathRules struct {
	base
	addition      bool
	subtraction   bool
	sameColorOnly bool
}

func NewMathRules() *MathRules {
	return &MathRules{base: base{name: NameMath}}
}

func (r *MathRules) Addition() bool {
	return r.addition
}

func (r *MathRules) SetAddition(on bool) {
	r.addition = on
}

func (r *MathRules) Subtraction() bool {
	return r.subtraction
}

func (r *MathRules) SetSubtraction(on bool) {
	r.subtraction = on
}

func (r *MathRules) SetSameColorOnly(on bool) {
	r.sameColorOnly = on
}

func (r *MathRules) Moves(top card.Card, hand []card.Card, duplicate bool) []move.Move {
	if duplicate {
		return nil
	}
	target, ok := top.Number()
	if !ok {
		return nil
	}
	var moves []move.Move
	for i := 0; i < len(hand); i++ {
		a, ok := hand[i].Number()
		if !ok || !r.eligible(hand[i], top) {
			continue
		}
		for j := i + 1; j < len(hand); j++ {
			b, ok := hand[j].Number()
			if !ok || !r.eligible(hand[j], top) {
				continue
			}
			if r.addition && a+b == target {
				moves = append(moves, pairMove(hand[i], hand[j]))
			}
			if r.subtraction && abs(a-b) == target {
				if a == b {
					// zero difference degenerates to an unordered pair
					moves = append(moves, pairMove(hand[i], hand[j]))
				} else {
					smaller, larger := hand[i], hand[j]
					if a > b {
						smaller, larger = hand[j], hand[i]
					}
					// the smaller card is subtracted from the larger,
					// which must end up exposed
					moves = append(moves, move.New(
						[]card.Card{smaller}, nil, []card.Card{larger},
					).Exact())
				}
			}
		}
	}
	return moves
}

func (r *MathRules) eligible(candidate, top card.Card) bool {
	return !r.sameColorOnly || candidate.EffectiveColor() == top.EffectiveColor()
}

func pairMove(a, b card.Card) move.Move {
	return move.New(nil, []card.Card{a, b}, nil).Exact()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

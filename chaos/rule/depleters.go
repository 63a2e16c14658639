package rule

import (
	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/move"
)

// Depleters allows dumping a whole color at once when a nine is on top: all
// of the hand's cards in that color go down with a nine exposed last.
type Depleters struct {
	base
}

func NewDepleters() *Depleters {
	return &Depleters{base{name: NameDepleters}}
}

func (r *Depleters) Moves(top card.Card, hand []card.Card, duplicate bool) []move.Move {
	if number, ok := top.Number(); !ok || number != 9 {
		return nil
	}
	var moves []move.Move
	for _, group := range color.Painted {
		var nines, rest []card.Card
		for _, candidate := range hand {
			if candidate.Type().Wild() || candidate.EffectiveColor() != group {
				continue
			}
			if number, ok := candidate.Number(); ok && number == 9 {
				nines = append(nines, candidate)
			} else {
				rest = append(rest, candidate)
			}
		}
		if len(nines) == 0 {
			continue
		}
		if duplicate && !anyIdentical(nines, top) {
			continue
		}
		moves = append(moves, move.New(nil, rest, nines))
	}
	return moves
}

func anyIdentical(cards []card.Card, reference card.Card) bool {
	for _, candidate := range cards {
		if candidate.Identical(reference) {
			return true
		}
	}
	return false
}

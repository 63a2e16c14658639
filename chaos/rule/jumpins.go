package rule

import (
	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/move"
)

// JumpIns lets a card identical to the top card be played out of turn,
// seizing the turn. It only speaks up in duplicate-context checks; the turn
// hijack itself is the engine's job.
type JumpIns struct {
	base
}

func NewJumpIns() *JumpIns {
	return &JumpIns{base{name: NameJumpIns}}
}

func (r *JumpIns) Moves(top card.Card, hand []card.Card, duplicate bool) []move.Move {
	if !duplicate {
		return nil
	}
	var moves []move.Move
	for _, candidate := range hand {
		if candidate.Identical(top) {
			moves = append(moves, move.Single(candidate))
		}
	}
	return moves
}

package rule

import (
	"github.com/ratel-online/chaos/chaos/card"
)

// SlapJacks fires when the top two pile cards are numbers summing to ten.
// Slaps arriving between two turn checks are collected in arrival order; the
// check settles penalties and rearms.
type SlapJacks struct {
	base
	shouldSlap bool
	slapped    map[int]bool
	order      []int
}

func NewSlapJacks() *SlapJacks {
	return &SlapJacks{
		base:    base{name: NameSlapJacks},
		slapped: map[int]bool{},
	}
}

// ShouldSlap reports whether a slap is currently owed.
func (s *SlapJacks) ShouldSlap() bool {
	return s.shouldSlap
}

// Slap records a player slapping the pile. A slap while nothing is owed is
// penalized two cards on the spot.
func (s *SlapJacks) Slap(t Table, seat int) {
	if !s.enabled {
		return
	}
	if !s.shouldSlap {
		t.ForceDraw(seat, 2)
		return
	}
	if !s.slapped[seat] {
		s.slapped[seat] = true
		s.order = append(s.order, seat)
	}
}

// React settles the previous slap window, then rearms from the new top sum.
// Everyone who missed an owed slap draws two; if nobody missed, the last
// hand down draws two.
func (s *SlapJacks) React(t Table, delta []card.Card, top card.Card) error {
	if s.shouldSlap {
		if len(s.order) == t.NumPlayers() {
			t.ForceDraw(s.order[len(s.order)-1], 2)
		} else {
			for seat := 0; seat < t.NumPlayers(); seat++ {
				if !s.slapped[seat] {
					t.ForceDraw(seat, 2)
				}
			}
		}
	}
	sum, ok := t.TopSum()
	s.shouldSlap = ok && sum == 10
	s.slapped = map[int]bool{}
	s.order = nil
	return nil
}

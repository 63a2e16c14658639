package rule

import (
	"github.com/ratel-online/chaos/chaos/card"
)

// SwappyZero rotates every hand one seat along the turn direction whenever
// a zero lands on top.
type SwappyZero struct {
	base
}

func NewSwappyZero() *SwappyZero {
	return &SwappyZero{base{name: NameSwappyZeros}}
}

func (r *SwappyZero) React(t Table, delta []card.Card, top card.Card) error {
	if number, ok := top.Number(); !ok || number != 0 {
		return nil
	}
	CycleHands(t)
	return nil
}

// CycleHands moves each seat's hand to the next seat along the turn
// direction. All hands are collected before any is reassigned, so the
// rotation cannot overwrite a hand it still needs.
func CycleHands(t Table) {
	numPlayers := t.NumPlayers()
	hands := make([][]card.Card, numPlayers)
	for seat := 0; seat < numPlayers; seat++ {
		hands[seat] = t.HandOf(seat)
	}
	for seat := 0; seat < numPlayers; seat++ {
		t.SetHand((seat+t.Direction()+numPlayers)%numPlayers, hands[seat])
	}
}

// SwappySeven trades the player's hand with a chosen player's whenever a
// seven lands on top. The target is supplied externally.
type SwappySeven struct {
	base
}

func NewSwappySeven() *SwappySeven {
	return &SwappySeven{base{name: NameSwappySevens}}
}

func (r *SwappySeven) React(t Table, delta []card.Card, top card.Card) error {
	if number, ok := top.Number(); !ok || number != 7 {
		return nil
	}
	seat := t.CurrentSeat()
	target := t.PickSwapTarget(seat)
	if target < 0 || target >= t.NumPlayers() || target == seat {
		return nil
	}
	TradeHands(t, seat, target)
	return nil
}

// TradeHands swaps exactly two hands.
func TradeHands(t Table, a, b int) {
	handA := t.HandOf(a)
	handB := t.HandOf(b)
	t.SetHand(a, handB)
	t.SetHand(b, handA)
}

package rulecard

import (
	"strings"

	"github.com/ratel-online/chaos/consts"
)

// Slot is a stack of rule cards where only the top card is in effect.
// The shared discard slot never activates its contents: cards dropped there
// sit inert until revived.
type Slot struct {
	cards     []Card
	topActive bool
}

func NewSlot() *Slot {
	return &Slot{topActive: true}
}

func NewDiscardSlot() *Slot {
	return &Slot{topActive: false}
}

func (s *Slot) Len() int {
	return len(s.cards)
}

func (s *Slot) TopActive() bool {
	return s.topActive
}

func (s *Slot) Cards() []Card {
	return append([]Card(nil), s.cards...)
}

func (s *Slot) Top() Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[len(s.cards)-1]
}

func (s *Slot) Card(index int) Card {
	if index < 0 || index >= len(s.cards) {
		return nil
	}
	return s.cards[index]
}

// Append puts a card on top. The previous top is deactivated and the new
// card activated, unless this slot keeps its contents inert.
func (s *Slot) Append(card Card) {
	if s.topActive {
		if top := s.Top(); top != nil {
			top.SetActive(false, s)
		}
	}
	s.cards = append(s.cards, card)
	card.SetActive(s.topActive, s)
}

// Revive pulls the card at index out of this slot, wherever it sits in the
// stack, and pushes it onto the target slot, activating it there. Cards
// left beneath a removed top stay dormant.
func (s *Slot) Revive(index int, target *Slot) error {
	if index < 0 || index >= len(s.cards) {
		return consts.ErrorsRuleCardNotFound
	}
	card := s.cards[index]
	s.cards = append(s.cards[:index], s.cards[index+1:]...)
	target.Append(card)
	return nil
}

// drain empties the slot without touching activation state; the receiving
// slot's Append settles that.
func (s *Slot) drain() []Card {
	cards := s.cards
	s.cards = nil
	return cards
}

func (s *Slot) String() string {
	names := make([]string, 0, len(s.cards))
	for _, card := range s.cards {
		names = append(names, card.Name())
	}
	return "[" + strings.Join(names, " < ") + "]"
}

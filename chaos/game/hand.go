package game

import (
	"github.com/ratel-online/chaos/chaos/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	return append([]card.Card(nil), h.cards...)
}

func (h *Hand) SetCards(cards []card.Card) {
	h.cards = append(h.cards[:0:0], cards...)
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Card(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	return h.cards[index], true
}

func (h *Hand) RemoveAt(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, true
}

func (h *Hand) RemoveCard(c card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.Identical(c) {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

// CompatibleCards lists the hand cards playable in sequence after the top
// card.
func (h *Hand) CompatibleCards(top card.Card) []card.Card {
	var compatible []card.Card
	for _, candidate := range h.cards {
		if candidate.Compatible(top) {
			compatible = append(compatible, candidate)
		}
	}
	return compatible
}

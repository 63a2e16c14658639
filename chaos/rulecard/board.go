package rulecard

import (
	"math/rand"

	"github.com/ratel-online/chaos/chaos/rule"
	"github.com/ratel-online/chaos/consts"
)

// Chooser supplies the external decisions the meta-game needs.
type Chooser interface {
	// PickRuleCard picks an index into a slot of the given size when a
	// revive asks which buried card to bring back.
	PickRuleCard(size int) int
}

// Board is the game-within-the-game: the rule deck, the slots rule cards
// are played into and the shared discard slot. Rule cards migrate
// deck -> slot -> discard -> (revive) -> slot, never duplicated.
type Board struct {
	rules   *rule.Registry
	chooser Chooser
	deck    []Card
	slots   []*Slot
	discard *Slot
}

func NewBoard(rules *rule.Registry, chooser Chooser) *Board {
	b := &Board{rules: rules, chooser: chooser}
	b.build()
	return b
}

// build deals a fresh shuffled rule deck, empty starting slots and an empty
// discard.
func (b *Board) build() {
	b.deck = b.fullDeck()
	shuffleRuleCards(b.deck)
	b.slots = make([]*Slot, 0, consts.StartingSlots)
	for i := 0; i < consts.StartingSlots; i++ {
		b.slots = append(b.slots, NewSlot())
	}
	b.discard = NewDiscardSlot()
}

// fullDeck composition: 4 stacking conditions, 2 duplicate jump-ins,
// 4 extra slots, 5 slot removers, and one of everything else.
func (b *Board) fullDeck() []Card {
	cards := []Card{
		NewStackingCard(b.rules, rule.DrawSame),
		NewStackingCard(b.rules, rule.DrawAny),
		NewStackingCard(b.rules, "skip"),
		NewStackingCard(b.rules, "reverse"),
		NewBasic(b.rules, rule.NameJumpIns),
		NewBasic(b.rules, rule.NameJumpIns),
		NewBasic(b.rules, rule.NameSlapJacks),
		NewBasic(b.rules, rule.NameSwappyZeros),
		NewBasic(b.rules, rule.NameSwappySevens),
		NewBasic(b.rules, rule.NameDepleters),
		NewBasic(b.rules, rule.NameDrawToPlay),
		NewBasic(b.rules, rule.NameSilentSixes),
		NewMathCard(b.rules, true),
		NewMathCard(b.rules, false),
		NewMultiplierCard(b.rules, 2),
		NewReviveCard(b, false),
		NewReviveCard(b, true),
		NewTotalChaosCard(b),
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, NewExtraSlotCard(b))
	}
	for i := 0; i < 5; i++ {
		cards = append(cards, NewSlotRemover(b))
	}
	return cards
}

func shuffleRuleCards(cards []Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// Draw removes the top card of the rule deck, or nil once it runs dry; the
// rule deck does not refill until the board resets.
func (b *Board) Draw() Card {
	if len(b.deck) == 0 {
		return nil
	}
	card := b.deck[len(b.deck)-1]
	b.deck = b.deck[:len(b.deck)-1]
	return card
}

func (b *Board) DeckSize() int {
	return len(b.deck)
}

func (b *Board) Slots() []*Slot {
	return append([]*Slot(nil), b.slots...)
}

func (b *Board) NumSlots() int {
	return len(b.slots)
}

func (b *Board) Slot(index int) *Slot {
	if index < 0 || index >= len(b.slots) {
		return nil
	}
	return b.slots[index]
}

func (b *Board) Discard() *Slot {
	return b.discard
}

// Play puts a drawn rule card onto the slot at index, activating it there.
func (b *Board) Play(card Card, index int) error {
	slot := b.Slot(index)
	if slot == nil {
		return consts.ErrorsRuleCardNotFound
	}
	slot.Append(card)
	return nil
}

func (b *Board) AddSlot() *Slot {
	slot := NewSlot()
	b.slots = append(b.slots, slot)
	return slot
}

// DiscardSlot moves a slot's whole stack onto the discard slot and removes
// the slot from the board.
func (b *Board) DiscardSlot(slot *Slot) {
	for i, candidate := range b.slots {
		if candidate == slot {
			b.slots = append(b.slots[:i], b.slots[i+1:]...)
			break
		}
	}
	for _, card := range slot.drain() {
		b.discard.Append(card)
	}
}

// DiscardOthers discards every occupied slot except the one to keep.
func (b *Board) DiscardOthers(keep *Slot) {
	for _, slot := range b.Slots() {
		if slot != keep && slot.Len() > 0 {
			b.DiscardSlot(slot)
		}
	}
}

// Chaos finds the engaged total chaos card, slot by slot, if there is one.
func (b *Board) Chaos() *TotalChaosCard {
	for _, slot := range b.slots {
		for _, card := range slot.cards {
			if chaos, ok := card.(*TotalChaosCard); ok && chaos.Active() {
				return chaos
			}
		}
	}
	return nil
}

// Reset rebuilds the entire meta-game: rules back to defaults, a fresh
// shuffled rule deck, empty starting slots, empty discard.
func (b *Board) Reset() {
	b.rules.Reset()
	b.build()
}

package game

import (
	"math/rand"
	"sync"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
)

// Deck is the draw pile. The end of the slice is the top. Drawing past the
// last card refills with a freshly shuffled full set mid-draw, so dealing
// never fails.
type Deck struct {
	sync.Mutex
	cards []card.Card
}

func NewDeck() *Deck {
	return &Deck{cards: fullChaosSet()}
}

func (d *Deck) DrawOne() card.Card {
	return d.Draw(1)[0]
}

func (d *Deck) Draw(amount int) []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	drawn := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		if len(d.cards) == 0 {
			d.cards = fullChaosSet()
		}
		top := d.cards[len(d.cards)-1]
		d.cards = d.cards[:len(d.cards)-1]
		drawn = append(drawn, top)
	}
	return drawn
}

func (d *Deck) Size() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards)
}

// fullChaosSet builds the standard 108-equivalent chaos deck:
// 3x wild, 3x wild carrying 1-3 rule additions, 3x wild draw 4,
// and per color 2x reverse/skip/draw 2, a zero carrying 2 rule additions,
// and numbers 1-9 twice, where the second copy of 4 random numbers carries
// one rule addition.
func fullChaosSet() []card.Card {
	cards := make([]card.Card, 0, 109)
	for i := 0; i < 3; i++ {
		cards = append(cards,
			card.Of(color.Wild, card.WildType, 0),
			card.Of(color.Wild, card.WildType, 1+rand.Intn(3)),
			card.Of(color.Wild, card.WildDrawFourType, 0),
		)
	}
	for _, cardColor := range color.Painted {
		for i := 0; i < 2; i++ {
			cards = append(cards,
				card.Of(cardColor, card.ReverseType, 0),
				card.Of(cardColor, card.SkipType, 0),
				card.Of(cardColor, card.DrawTwoType, 0),
			)
		}
		cards = append(cards, card.Of(cardColor, card.NumberType(0), 2))
		ruleNumbers := map[int]bool{}
		for _, n := range rand.Perm(9)[:4] {
			ruleNumbers[n+1] = true
		}
		for number := 1; number <= 9; number++ {
			cards = append(cards, card.Of(cardColor, card.NumberType(number), 0))
			additions := 0
			if ruleNumbers[number] {
				additions = 1
			}
			cards = append(cards, card.Of(cardColor, card.NumberType(number), additions))
		}
	}
	shuffleCards(cards)
	return cards
}

func shuffleCards(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

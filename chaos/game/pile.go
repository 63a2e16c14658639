package game

import (
	"sync"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/consts"
)

// Pile is the bounded discard pile. Appending past capacity silently drops
// the oldest entries; the engine only ever inspects the most recently
// played cards. A running total of everything ever added survives the
// truncation so delta bookkeeping stays honest.
type Pile struct {
	sync.Mutex
	cards    []card.Card
	capacity int
	total    int
}

func NewPile() *Pile {
	return &Pile{
		cards:    make([]card.Card, 0, consts.DiscardCapacity),
		capacity: consts.DiscardCapacity,
	}
}

func (p *Pile) Add(cards ...card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append(p.cards, cards...)
	p.total += len(cards)
	if over := len(p.cards) - p.capacity; over > 0 {
		p.cards = append(p.cards[:0:0], p.cards[over:]...)
	}
}

func (p *Pile) Cards() []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return append([]card.Card(nil), p.cards...)
}

func (p *Pile) Size() int {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return len(p.cards)
}

// Total counts every card ever added, including dropped history.
func (p *Pile) Total() int {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return p.total
}

func (p *Pile) Top() (card.Card, bool) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

func (p *Pile) ReplaceTop(c card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) > 0 {
		p.cards[len(p.cards)-1] = c
	}
}

// LastN returns up to n most recent cards in play order.
func (p *Pile) LastN(n int) []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if n > len(p.cards) {
		n = len(p.cards)
	}
	if n <= 0 {
		return nil
	}
	return append([]card.Card(nil), p.cards[len(p.cards)-n:]...)
}

// TopSum is the sum of the top two cards when both are number cards.
func (p *Pile) TopSum() (int, bool) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) < 2 {
		return 0, false
	}
	first, ok := p.cards[len(p.cards)-1].Number()
	if !ok {
		return 0, false
	}
	second, ok := p.cards[len(p.cards)-2].Number()
	if !ok {
		return 0, false
	}
	return first + second, true
}

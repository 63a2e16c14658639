package move

import (
	"strings"

	"github.com/ratel-online/chaos/chaos/card"
)

// Move is a sandwich of cards: one of the bottom cards must be played first,
// one of the top cards must be played last and end up exposed on the pile,
// and the middle goes anywhere in between. An exact move can only be
// substituted by a play containing precisely the same card set.
type Move struct {
	bottom []card.Card
	middle []card.Card
	top    []card.Card
	exact  bool
}

func New(bottom, middle, top []card.Card) Move {
	return Move{bottom: bottom, middle: middle, top: top}
}

// Single is a one-card move with no ordering constraints.
func Single(c card.Card) Move {
	return Move{middle: []card.Card{c}}
}

// Exact marks the move as whole-or-nothing: partial substitution is not
// meaningful (math pairs).
func (m Move) Exact() Move {
	m.exact = true
	return m
}

func (m Move) IsExact() bool {
	return m.exact
}

func (m Move) Bottom() []card.Card {
	return m.bottom
}

func (m Move) Top() []card.Card {
	return m.top
}

func (m Move) Len() int {
	return len(m.bottom) + len(m.middle) + len(m.top)
}

func (m Move) Cards() []card.Card {
	cards := make([]card.Card, 0, m.Len())
	cards = append(cards, m.bottom...)
	cards = append(cards, m.middle...)
	cards = append(cards, m.top...)
	return cards
}

// FirstLayer lists the cards allowed to open the move: the bottom layer if
// one is demanded, every card otherwise.
func (m Move) FirstLayer() []card.Card {
	if len(m.bottom) > 0 {
		return m.bottom
	}
	return m.Cards()
}

func (m Move) Contains(c card.Card) bool {
	for _, candidate := range m.Cards() {
		if candidate.Identical(c) {
			return true
		}
	}
	return false
}

// Without returns the residual move after the given cards have already been
// played out of it. Played cards are consumed from the bottom layer first,
// then the middle, then the top, one occurrence each.
func (m Move) Without(played []card.Card) Move {
	bottom := append([]card.Card(nil), m.bottom...)
	middle := append([]card.Card(nil), m.middle...)
	top := append([]card.Card(nil), m.top...)
	for _, c := range played {
		var removed bool
		if bottom, removed = removeOne(bottom, c); removed {
			continue
		}
		if middle, removed = removeOne(middle, c); removed {
			continue
		}
		top, _ = removeOne(top, c)
	}
	m.bottom = bottom
	m.middle = middle
	m.top = top
	return m
}

func removeOne(cards []card.Card, c card.Card) ([]card.Card, bool) {
	for i, candidate := range cards {
		if candidate.Identical(c) {
			out := make([]card.Card, 0, len(cards)-1)
			out = append(out, cards[:i]...)
			out = append(out, cards[i+1:]...)
			return out, true
		}
	}
	return cards, false
}

// CanReplace is the single legality primitive: whether playing candidate
// satisfies reference. Candidate must be a non-empty subset of reference's
// cards, exact moves demand the full set, and the layer constraints must be
// honored (candidate's opener within reference's bottom, candidate's closer
// within reference's top, when reference demands one).
func CanReplace(candidate, reference Move) bool {
	if candidate.Len() == 0 {
		return false
	}
	if !subset(candidate.Cards(), reference.Cards()) {
		return false
	}
	if candidate.exact || reference.exact {
		if candidate.Len() != reference.Len() {
			return false
		}
	}
	if len(reference.bottom) > 0 && !subset(candidate.bottom, reference.bottom) {
		return false
	}
	if len(reference.top) > 0 && !subset(candidate.top, reference.top) {
		return false
	}
	return true
}

// subset reports whether a is a multiset subset of b, matching by card
// identity.
func subset(a, b []card.Card) bool {
	pool := append([]card.Card(nil), b...)
	for _, c := range a {
		var removed bool
		if pool, removed = removeOne(pool, c); !removed {
			return false
		}
	}
	return true
}

func (m Move) String() string {
	parts := make([]string, 0, m.Len())
	for _, c := range m.Cards() {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

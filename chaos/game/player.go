package game

import (
	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/move"
	"github.com/ratel-online/chaos/chaos/rule"
)

// Player is the external decision provider for one seat. The engine blocks
// on these calls; timeouts are the host's business.
type Player interface {
	Name() string
	PickColor(state State) color.Color
	// PickSwapTarget answers with an offset along the state's player
	// sequence; 0 or out of range declines the swap.
	PickSwapTarget(state State) int
	PickRuleCard(size int) int
	PickSlot(size int) int
	NotifyCardsDrawn(cards []card.Card)
}

// playerController pairs a Player with its hand and in-progress move
// buffer. A play is assembled card by card; legality is re-derived from the
// residual reference moves after every addition.
type playerController struct {
	player Player
	hand   *Hand
	buffer []card.Card
	legal  []move.Move
}

func newPlayerController(player Player) *playerController {
	return &playerController{
		player: player,
		hand:   NewHand(),
	}
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) AddCards(cards []card.Card) {
	c.hand.AddCards(cards)
	c.player.NotifyCardsDrawn(cards)
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) HandSize() int {
	return c.hand.Size() + len(c.buffer)
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty() && len(c.buffer) == 0
}

// updateLegalMoves rebuilds the reference move set: single compatible hand
// cards on the player's own turn, plus whatever the enabled
// move-contributing rules offer. Off-turn checks run in duplicate context.
func (c *playerController) updateLegalMoves(top card.Card, myTurn bool, rules *rule.Registry) {
	c.legal = c.legal[:0]
	hand := c.hand.Cards()
	if myTurn {
		for _, candidate := range hand {
			if candidate.Compatible(top) {
				c.legal = append(c.legal, move.Single(candidate))
			}
		}
	}
	for _, contributor := range rules.Contributors() {
		c.legal = append(c.legal, contributor.Moves(top, hand, !myTurn)...)
	}
}

// legalContinuations flags, per hand card, whether it can extend the
// buffered play. With an empty buffer a card must open some reference
// move; otherwise the reference set is reduced by what is already buffered
// and the card must still fit, with any demanded closer still reachable.
func (c *playerController) legalContinuations() []bool {
	hand := c.hand.Cards()
	result := make([]bool, len(hand))
	references := c.residualMoves()
	for i, candidate := range hand {
		for _, reference := range references {
			if len(c.buffer) == 0 {
				if containsIdentical(reference.FirstLayer(), candidate) {
					result[i] = true
					break
				}
			} else if reference.Contains(candidate) {
				result[i] = true
				break
			}
		}
	}
	return result
}

// residualMoves reduces the reference set by the buffered cards.
func (c *playerController) residualMoves() []move.Move {
	if len(c.buffer) == 0 {
		return c.legal
	}
	var residuals []move.Move
	for _, reference := range c.legal {
		if !containsIdentical(reference.FirstLayer(), c.buffer[0]) {
			continue
		}
		residual := reference.Without(c.buffer)
		if residual.Len() != reference.Len()-len(c.buffer) {
			// some buffered card is not part of this move
			continue
		}
		if residual.Len() == 0 {
			continue
		}
		if len(reference.Top()) > 0 && len(residual.Top()) == 0 {
			// the demanded closer is already buried in the buffer
			continue
		}
		residuals = append(residuals, residual)
	}
	return residuals
}

// bufferCard moves the hand card at index into the buffer if it legally
// continues the play.
func (c *playerController) bufferCard(index int) bool {
	continuations := c.legalContinuations()
	if index < 0 || index >= len(continuations) || !continuations[index] {
		return false
	}
	buffered, ok := c.hand.RemoveAt(index)
	if !ok {
		return false
	}
	c.buffer = append(c.buffer, buffered)
	return true
}

// popBuffer returns count buffered cards to the hand, all of them for -1.
func (c *playerController) popBuffer(count int) bool {
	if count == -1 {
		count = len(c.buffer)
	}
	if count > len(c.buffer) {
		return false
	}
	for i := 0; i < count; i++ {
		last := c.buffer[len(c.buffer)-1]
		c.buffer = c.buffer[:len(c.buffer)-1]
		c.hand.AddCards([]card.Card{last})
	}
	return true
}

// bufferedMove shapes the buffer as the move it claims to be: first card at
// the bottom, last card on top.
func (c *playerController) bufferedMove() move.Move {
	switch len(c.buffer) {
	case 0:
		return move.Move{}
	case 1:
		return move.Single(c.buffer[0])
	default:
		return move.New(
			c.buffer[:1],
			c.buffer[1:len(c.buffer)-1],
			c.buffer[len(c.buffer)-1:],
		)
	}
}

// moveComplete reports whether the buffer can replace some reference move
// as it stands.
func (c *playerController) moveComplete() bool {
	candidate := c.bufferedMove()
	for _, reference := range c.legal {
		if move.CanReplace(candidate, reference) {
			return true
		}
	}
	return false
}

// takeBuffer empties the buffer for playing onto the pile.
func (c *playerController) takeBuffer() []card.Card {
	taken := c.buffer
	c.buffer = nil
	return taken
}

// interrupt reacts to somebody else's play landing: the reference set was
// derived against the old top card, so it is rebuilt, and a buffer that no
// longer reduces to any legal move goes back to the hand.
func (c *playerController) interrupt(top card.Card, myTurn bool, rules *rule.Registry) {
	if len(c.buffer) == 0 {
		return
	}
	c.updateLegalMoves(top, myTurn, rules)
	if len(c.residualMoves()) > 0 || c.moveComplete() {
		return
	}
	c.popBuffer(-1)
}

func containsIdentical(cards []card.Card, candidate card.Card) bool {
	for _, c := range cards {
		if c.Identical(candidate) {
			return true
		}
	}
	return false
}

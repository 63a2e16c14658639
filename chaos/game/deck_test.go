package game_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckNeverRunsDry(t *testing.T) {
	deck := game.NewDeck()
	size := deck.Size()
	require.Greater(t, size, 0)

	// drawing past the whole set must silently reshuffle a fresh one
	cards := deck.Draw(size + 10)
	assert.Len(t, cards, size+10)
	for _, c := range cards {
		assert.NotNil(t, c.Type())
	}
}

func TestDeckComposition(t *testing.T) {
	deck := game.NewDeck()
	size := deck.Size()

	wilds, attacks, numbers := 0, 0, 0
	withAdditions := 0
	for _, c := range deck.Draw(size) {
		if c.Type().Wild() {
			wilds++
		}
		if c.DrawAmount() > 0 {
			attacks++
		}
		if _, ok := c.Number(); ok {
			numbers++
		}
		if c.RuleAdditions() > 0 {
			withAdditions++
		}
	}

	assert.Equal(t, 109, size)
	assert.Equal(t, 9, wilds, "3 wilds, 3 wilds with additions, 3 wild draw 4s")
	assert.Equal(t, 11, attacks, "8 draw 2s and 3 wild draw 4s")
	assert.Equal(t, 76, numbers, "a zero and two of 1-9 per color")
	assert.Equal(t, 23, withAdditions, "wilds, zeros and 4 second numbers per color")
}

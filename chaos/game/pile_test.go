package game_test

import (
	"fmt"
	"testing"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPileKeepsOnlyRecentCards(t *testing.T) {
	pile := game.NewPile()
	for n := 0; n < consts.DiscardCapacity+5; n++ {
		pile.Add(card.Of(color.Red, card.NumberType(n%10), 0))
	}

	assert.Equal(t, consts.DiscardCapacity, pile.Size())
	assert.Equal(t, consts.DiscardCapacity+5, pile.Total(), "the total survives truncation")

	top, ok := pile.Top()
	require.True(t, ok)
	number, _ := top.Number()
	assert.Equal(t, (consts.DiscardCapacity+4)%10, number)
}

func TestPileLastN(t *testing.T) {
	pile := game.NewPile()
	for n := 1; n <= 4; n++ {
		pile.Add(card.Of(color.Blue, card.NumberType(n), 0))
	}

	last := pile.LastN(2)
	require.Len(t, last, 2)
	number, _ := last[0].Number()
	assert.Equal(t, 3, number, "play order, oldest first")
	number, _ = last[1].Number()
	assert.Equal(t, 4, number)

	assert.Len(t, pile.LastN(99), 4)
	assert.Empty(t, pile.LastN(0))
}

func TestPileTopSum(t *testing.T) {
	scenarios := []struct {
		first       card.Card
		second      card.Card
		expectedSum int
		expectedOK  bool
	}{
		{card.Of(color.Red, card.NumberType(6), 0), card.Of(color.Blue, card.NumberType(4), 0), 10, true},
		{card.Of(color.Red, card.NumberType(2), 0), card.Of(color.Blue, card.NumberType(3), 0), 5, true},
		{card.Of(color.Red, card.SkipType, 0), card.Of(color.Blue, card.NumberType(4), 0), 0, false},
		{card.Of(color.Red, card.NumberType(6), 0), card.Of(color.Blue, card.ReverseType, 0), 0, false},
	}

	for i, scenario := range scenarios {
		t.Run(fmt.Sprintf("scenario_%d", i), func(t *testing.T) {
			pile := game.NewPile()
			pile.Add(scenario.first, scenario.second)
			sum, ok := pile.TopSum()
			assert.Equal(t, scenario.expectedOK, ok)
			assert.Equal(t, scenario.expectedSum, sum)
		})
	}
}

func TestPileReplaceTop(t *testing.T) {
	pile := game.NewPile()
	_, ok := pile.Top()
	assert.False(t, ok)

	pile.Add(card.Of(color.Wild, card.WildType, 0))
	pile.ReplaceTop(card.Of(color.Wild, card.WildType, 0).WithColor(color.Green))

	top, ok := pile.Top()
	require.True(t, ok)
	assert.Equal(t, color.Green, top.EffectiveColor())
	assert.Equal(t, 1, pile.Total(), "replacing is not adding")
}

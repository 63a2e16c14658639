package rule_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/move"
	"github.com/ratel-online/chaos/chaos/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberCard(c color.Color, n int) card.Card {
	return card.Of(c, card.NumberType(n), 0)
}

func TestMathAddition(t *testing.T) {
	math := rule.NewMathRules()
	math.SetEnabled(true)
	math.SetAddition(true)

	top := numberCard(color.Red, 7)
	three := numberCard(color.Blue, 3)
	four := numberCard(color.Green, 4)
	hand := []card.Card{three, four, numberCard(color.Yellow, 9)}

	moves := math.Moves(top, hand, false)
	require.Len(t, moves, 1)
	assert.True(t, moves[0].IsExact())
	assert.ElementsMatch(t, []card.Card{three, four}, moves[0].Cards())

	// one half of the pair cannot stand in for the whole
	assert.False(t, move.CanReplace(move.Single(three), moves[0]))
	assert.True(t, move.CanReplace(
		move.New(nil, []card.Card{four, three}, nil).Exact(), moves[0]))
}

func TestMathSubtraction(t *testing.T) {
	math := rule.NewMathRules()
	math.SetEnabled(true)
	math.SetSubtraction(true)

	top := numberCard(color.Red, 5)
	two := numberCard(color.Blue, 2)
	seven := numberCard(color.Green, 7)

	moves := math.Moves(top, []card.Card{two, seven}, false)
	require.Len(t, moves, 1)
	assert.True(t, moves[0].IsExact())
	// the larger card must end the play on top
	assert.Equal(t, []card.Card{two}, moves[0].Bottom())
	assert.Equal(t, []card.Card{seven}, moves[0].Top())
}

func TestMathIgnoresNonNumbers(t *testing.T) {
	math := rule.NewMathRules()
	math.SetEnabled(true)
	math.SetAddition(true)

	assert.Empty(t, math.Moves(card.Of(color.Red, card.SkipType, 0),
		[]card.Card{numberCard(color.Blue, 3), numberCard(color.Blue, 4)}, false))
	assert.Empty(t, math.Moves(numberCard(color.Red, 7),
		[]card.Card{card.Of(color.Wild, card.WildType, 0), numberCard(color.Blue, 4)}, false))
}

func TestMathSameColorOnly(t *testing.T) {
	math := rule.NewMathRules()
	math.SetEnabled(true)
	math.SetAddition(true)
	math.SetSameColorOnly(true)

	top := numberCard(color.Red, 7)
	moves := math.Moves(top, []card.Card{
		numberCard(color.Blue, 3), numberCard(color.Blue, 4),
		numberCard(color.Red, 3), numberCard(color.Red, 4),
	}, false)
	require.Len(t, moves, 1)
	for _, c := range moves[0].Cards() {
		assert.Equal(t, color.Red, c.EffectiveColor())
	}
}

func TestMathNeverJumpsIn(t *testing.T) {
	math := rule.NewMathRules()
	math.SetEnabled(true)
	math.SetAddition(true)

	assert.Empty(t, math.Moves(numberCard(color.Red, 7),
		[]card.Card{numberCard(color.Blue, 3), numberCard(color.Blue, 4)}, true))
}

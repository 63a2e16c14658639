package rule_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepletersMoves(t *testing.T) {
	depleters := rule.NewDepleters()
	depleters.SetEnabled(true)

	top := numberCard(color.Red, 9)
	blueNine := numberCard(color.Blue, 9)
	blueTwo := numberCard(color.Blue, 2)
	blueSkip := card.Of(color.Blue, card.SkipType, 0)
	redFive := numberCard(color.Red, 5)

	moves := depleters.Moves(top, []card.Card{blueNine, blueTwo, blueSkip, redFive}, false)
	require.Len(t, moves, 1, "red has no nine, only blue depletes")

	move := moves[0]
	assert.False(t, move.IsExact())
	assert.Equal(t, []card.Card{blueNine}, move.Top(), "a nine must end up exposed")
	assert.ElementsMatch(t, []card.Card{blueTwo, blueSkip}, move.Cards()[:2])
}

func TestDepletersNeedsNineOnTop(t *testing.T) {
	depleters := rule.NewDepleters()
	depleters.SetEnabled(true)

	hand := []card.Card{numberCard(color.Blue, 9), numberCard(color.Blue, 2)}
	assert.Empty(t, depleters.Moves(numberCard(color.Red, 8), hand, false))
	assert.Empty(t, depleters.Moves(card.Of(color.Red, card.SkipType, 0), hand, false))
}

func TestDepletersDuplicateNeedsIdenticalNine(t *testing.T) {
	depleters := rule.NewDepleters()
	depleters.SetEnabled(true)

	top := numberCard(color.Red, 9)
	assert.Empty(t, depleters.Moves(top,
		[]card.Card{numberCard(color.Blue, 9), numberCard(color.Blue, 2)}, true))
	assert.Len(t, depleters.Moves(top,
		[]card.Card{numberCard(color.Red, 9), numberCard(color.Red, 2)}, true), 1)
}

func TestJumpInsMoves(t *testing.T) {
	jumpIns := rule.NewJumpIns()
	jumpIns.SetEnabled(true)

	top := numberCard(color.Red, 4)
	twin := numberCard(color.Red, 4)
	near := numberCard(color.Red, 5)

	assert.Empty(t, jumpIns.Moves(top, []card.Card{twin}, false), "jump-ins only apply out of turn")

	moves := jumpIns.Moves(top, []card.Card{twin, near}, true)
	require.Len(t, moves, 1)
	assert.Equal(t, []card.Card{twin}, moves[0].Cards())
}

func TestRegistryDefaults(t *testing.T) {
	registry := rule.Default()

	registry.ForEach(func(r rule.Rule) {
		assert.False(t, r.Enabled(), "%s must start disabled", r.Name())
	})
	assert.Empty(t, registry.Contributors())
	assert.Empty(t, registry.Reactors())

	registry.Get(rule.NameJumpIns).SetEnabled(true)
	registry.Get(rule.NameSwappyZeros).SetEnabled(true)
	assert.Len(t, registry.Contributors(), 1)
	assert.Len(t, registry.Reactors(), 1)
}

func TestRegistryReset(t *testing.T) {
	registry := rule.Default()
	registry.EnableAll()
	registry.Math().SetAddition(true)
	registry.Multiplier().Multiply(4)
	registry.Stacking().SetConditions(rule.DrawAny)

	registry.Reset()

	registry.ForEach(func(r rule.Rule) {
		assert.False(t, r.Enabled())
	})
	assert.Equal(t, 1.0, registry.Multiplier().Factor())
	assert.False(t, registry.Math().Addition())
	assert.False(t, registry.Stacking().HasCondition(rule.DrawAny))
}

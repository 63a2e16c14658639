package rulecard_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/rule"
	"github.com/ratel-online/chaos/chaos/rulecard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pickFirst always revives the bottom-most candidate.
type pickFirst struct{}

func (pickFirst) PickRuleCard(size int) int { return 0 }

func newTestBoard() (*rulecard.Board, *rule.Registry) {
	rules := rule.Default()
	return rulecard.NewBoard(rules, pickFirst{}), rules
}

func TestBoardStartsWithEmptySlots(t *testing.T) {
	board, _ := newTestBoard()

	assert.Equal(t, 3, board.NumSlots())
	for _, slot := range board.Slots() {
		assert.Zero(t, slot.Len())
	}
	assert.Equal(t, 27, board.DeckSize())
	assert.Zero(t, board.Discard().Len())
}

func TestBoardDeckRunsDry(t *testing.T) {
	board, _ := newTestBoard()

	for i := 0; i < 27; i++ {
		require.NotNil(t, board.Draw())
	}
	assert.Nil(t, board.Draw(), "the rule deck does not refill mid-match")
}

func TestPlayActivatesOnlyTheTopCard(t *testing.T) {
	board, rules := newTestBoard()

	jumpIns := rulecard.NewBasic(rules, rule.NameJumpIns)
	slapJacks := rulecard.NewBasic(rules, rule.NameSlapJacks)
	require.NoError(t, board.Play(jumpIns, 0))
	assert.True(t, rules.Get(rule.NameJumpIns).Enabled())

	require.NoError(t, board.Play(slapJacks, 0))
	assert.False(t, rules.Get(rule.NameJumpIns).Enabled(), "covered cards turn off")
	assert.True(t, rules.Get(rule.NameSlapJacks).Enabled())
	assert.False(t, jumpIns.Active())
	assert.True(t, slapJacks.Active())
}

func TestPlayIntoBadSlot(t *testing.T) {
	board, rules := newTestBoard()
	assert.Error(t, board.Play(rulecard.NewBasic(rules, rule.NameJumpIns), 9))
}

func TestSlotRemoverDiscardsItsWholeSlot(t *testing.T) {
	board, rules := newTestBoard()

	jumpIns := rulecard.NewBasic(rules, rule.NameJumpIns)
	require.NoError(t, board.Play(jumpIns, 1))
	require.NoError(t, board.Play(rulecard.NewSlotRemover(board), 1))

	assert.Equal(t, 2, board.NumSlots())
	assert.False(t, rules.Get(rule.NameJumpIns).Enabled())
	assert.Equal(t, 2, board.Discard().Len(), "removed cards land in the discard slot")
}

func TestExtraSlotCard(t *testing.T) {
	board, _ := newTestBoard()

	require.NoError(t, board.Play(rulecard.NewExtraSlotCard(board), 0))
	assert.Equal(t, 4, board.NumSlots())
	assert.Equal(t, 1, board.Slot(0).Len(), "the spent card stays where it was played")
}

func TestReviveFromDiscard(t *testing.T) {
	board, rules := newTestBoard()

	jumpIns := rulecard.NewBasic(rules, rule.NameJumpIns)
	require.NoError(t, board.Play(jumpIns, 0))
	require.NoError(t, board.Play(rulecard.NewSlotRemover(board), 0))
	require.False(t, rules.Get(rule.NameJumpIns).Enabled())

	// revive pulls the chosen discard card onto the revive card's slot
	require.NoError(t, board.Play(rulecard.NewReviveCard(board, true), 1))
	assert.True(t, rules.Get(rule.NameJumpIns).Enabled())
	assert.Equal(t, 1, board.Discard().Len())
	assert.Equal(t, 2, board.Slot(1).Len())
}

func TestReviveFromOwnSlot(t *testing.T) {
	board, rules := newTestBoard()

	jumpIns := rulecard.NewBasic(rules, rule.NameJumpIns)
	slapJacks := rulecard.NewBasic(rules, rule.NameSlapJacks)
	require.NoError(t, board.Play(jumpIns, 0))
	require.NoError(t, board.Play(slapJacks, 0))
	require.False(t, rules.Get(rule.NameJumpIns).Enabled())

	// the buried jump-ins card comes back on top
	require.NoError(t, board.Play(rulecard.NewReviveCard(board, false), 0))
	assert.True(t, rules.Get(rule.NameJumpIns).Enabled())
	assert.False(t, rules.Get(rule.NameSlapJacks).Enabled())
	assert.Equal(t, 3, board.Slot(0).Len())
	assert.Equal(t, jumpIns.Name(), board.Slot(0).Top().Name())
}

func TestStackingCardManagesConditions(t *testing.T) {
	board, rules := newTestBoard()

	drawSame := rulecard.NewStackingCard(rules, rule.DrawSame)
	require.NoError(t, board.Play(drawSame, 0))
	assert.True(t, rules.Stacking().Enabled())
	assert.True(t, rules.Stacking().HasCondition(rule.DrawSame))

	require.NoError(t, board.Play(rulecard.NewBasic(rules, rule.NameJumpIns), 0))
	assert.False(t, rules.Stacking().HasCondition(rule.DrawSame))
}

func TestMultiplierCardUnwinds(t *testing.T) {
	board, rules := newTestBoard()

	double := rulecard.NewMultiplierCard(rules, 2)
	require.NoError(t, board.Play(double, 2))
	assert.Equal(t, 2.0, rules.Multiplier().Factor())
	assert.True(t, rules.Multiplier().Enabled())

	require.NoError(t, board.Play(rulecard.NewBasic(rules, rule.NameJumpIns), 2))
	assert.Equal(t, 1.0, rules.Multiplier().Factor())
	assert.False(t, rules.Multiplier().Enabled())
}

func TestTotalChaosLifecycle(t *testing.T) {
	board, rules := newTestBoard()

	require.NoError(t, board.Play(rulecard.NewBasic(rules, rule.NameJumpIns), 1))
	chaos := rulecard.NewTotalChaosCard(board)
	require.NoError(t, board.Play(chaos, 0))

	require.True(t, chaos.Active())
	assert.Equal(t, 3, chaos.Lives())
	rules.ForEach(func(r rule.Rule) {
		assert.True(t, r.Enabled(), "%s force-enabled under total chaos", r.Name())
	})
	assert.True(t, rules.Math().Addition())
	assert.True(t, rules.Stacking().HasCondition(rule.DrawAny))
	assert.Equal(t, 1, board.Discard().Len(), "other slots are wiped on engage")
	assert.Same(t, chaos, board.Chaos())

	chaos.StripLife()
	chaos.StripLife()
	assert.Equal(t, 1, chaos.Lives())
	assert.True(t, chaos.Active())

	chaos.StripLife()
	assert.False(t, chaos.Active())
	assert.Nil(t, board.Chaos())
	rules.ForEach(func(r rule.Rule) {
		assert.False(t, r.Enabled(), "%s off after the collapse", r.Name())
	})
	assert.Equal(t, 27, board.DeckSize(), "the board rebuilds after a collapse")
	assert.Equal(t, 3, board.NumSlots())
}

package move_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/move"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	redFive   = card.Of(color.Red, card.NumberType(5), 0)
	redNine   = card.Of(color.Red, card.NumberType(9), 0)
	blueNine  = card.Of(color.Blue, card.NumberType(9), 0)
	greenNine = card.Of(color.Green, card.NumberType(9), 0)
	blueThree = card.Of(color.Blue, card.NumberType(3), 0)
	blueFour  = card.Of(color.Blue, card.NumberType(4), 0)
)

func TestCanReplace(t *testing.T) {
	scenarios := []struct {
		description    string
		candidate      move.Move
		reference      move.Move
		expectedResult bool
	}{
		{
			description:    "single_card_replaces_itself",
			candidate:      move.Single(redFive),
			reference:      move.Single(redFive),
			expectedResult: true,
		},
		{
			description:    "empty_candidate_never_replaces",
			candidate:      move.New(nil, nil, nil),
			reference:      move.Single(redFive),
			expectedResult: false,
		},
		{
			description:    "subset_of_a_loose_move",
			candidate:      move.New(nil, []card.Card{blueNine}, []card.Card{redNine}),
			reference:      move.New(nil, []card.Card{blueNine, greenNine}, []card.Card{redNine}),
			expectedResult: true,
		},
		{
			description:    "exact_move_requires_every_card",
			candidate:      move.New(nil, []card.Card{blueThree}, nil).Exact(),
			reference:      move.New(nil, []card.Card{blueThree, blueFour}, nil).Exact(),
			expectedResult: false,
		},
		{
			description:    "exact_move_with_every_card",
			candidate:      move.New(nil, []card.Card{blueFour, blueThree}, nil).Exact(),
			reference:      move.New(nil, []card.Card{blueThree, blueFour}, nil).Exact(),
			expectedResult: true,
		},
		{
			description:    "candidate_closer_must_come_from_reference_top",
			candidate:      move.New(nil, nil, []card.Card{blueNine}),
			reference:      move.New(nil, []card.Card{blueNine}, []card.Card{redNine}),
			expectedResult: false,
		},
		{
			description:    "candidate_opener_must_come_from_reference_bottom",
			candidate:      move.New([]card.Card{blueNine}, nil, []card.Card{redNine}),
			reference:      move.New([]card.Card{greenNine}, []card.Card{blueNine}, []card.Card{redNine}),
			expectedResult: false,
		},
		{
			description:    "card_not_in_reference",
			candidate:      move.Single(redFive),
			reference:      move.Single(blueNine),
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := move.CanReplace(scenario.candidate, scenario.reference)
			assert.Equal(t, scenario.expectedResult, result)
		})
	}
}

func TestFirstLayer(t *testing.T) {
	withBottom := move.New([]card.Card{redFive}, []card.Card{blueNine}, []card.Card{redNine})
	assert.Equal(t, []card.Card{redFive}, withBottom.FirstLayer())

	noBottom := move.New(nil, []card.Card{blueNine}, []card.Card{redNine})
	assert.ElementsMatch(t, []card.Card{blueNine, redNine}, noBottom.FirstLayer())
}

func TestWithout(t *testing.T) {
	full := move.New([]card.Card{redFive}, []card.Card{blueNine, greenNine}, []card.Card{redNine})

	residual := full.Without([]card.Card{redFive, blueNine})
	require.Equal(t, 2, residual.Len())
	assert.Empty(t, residual.Bottom())
	assert.True(t, residual.Contains(greenNine))
	assert.True(t, residual.Contains(redNine))

	// a card outside the move leaves it untouched
	same := full.Without([]card.Card{blueThree})
	assert.Equal(t, full.Len(), same.Len())
}

package event_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/event"
	"github.com/stretchr/testify/require"
)

func TestCardPlayed(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.CardPlayed.AddListener(listenerOne)
	event.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerName: "Someone",
			Cards:      []card.Card{card.Of(color.Wild, card.WildType, 0)},
		},
		{
			PlayerName: "Somebody",
			Cards:      []card.Card{card.Of(color.Green, card.DrawTwoType, 0)},
			JumpIn:     true,
		},
	}

	for _, payload := range payloads {
		event.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

package event_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/event"
	"github.com/stretchr/testify/require"
)

func TestTurnEnded(t *testing.T) {
	listener := event.NewDummyListener()
	event.TurnEnded.AddListener(listener)

	payloads := []event.TurnEndedPayload{
		{
			NextPlayerName: "Someone",
			Reversed:       true,
		},
		{
			NextPlayerName: "Somebody",
			ForcedDraws:    4,
			Skipped:        true,
		},
	}

	for _, payload := range payloads {
		event.TurnEnded.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listener.ReceivedPayloads())
}

func TestStackFlushed(t *testing.T) {
	listener := event.NewDummyListener()
	event.StackFlushed.AddListener(listener)

	payload := event.StackFlushedPayload{
		PlayerName: "Someone",
		CardsDrawn: 6,
	}
	event.StackFlushed.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())
}

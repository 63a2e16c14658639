package event

import "github.com/ratel-online/chaos/chaos/card"

var CardPlayed = &cardPlayedEmitter{}

type CardPlayedPayload struct {
	PlayerName string
	Cards      []card.Card
	JumpIn     bool
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	listeners []CardPlayedListener
}

// AddListener registers the listener; re-registering is a no-op.
func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	for _, existing := range e.listeners {
		if existing == listener {
			return
		}
	}
	e.listeners = append(e.listeners, listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardPlayed(payload)
	}
}

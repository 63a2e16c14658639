package event

var TurnEnded = &turnEndedEmitter{}

type TurnEndedPayload struct {
	NextPlayerName string
	ForcedDraws    int
	Reversed       bool
	Skipped        bool
	JumpedIn       bool
}

type TurnEndedListener interface {
	OnTurnEnded(TurnEndedPayload)
}

type turnEndedEmitter struct {
	listeners []TurnEndedListener
}

func (e *turnEndedEmitter) AddListener(listener TurnEndedListener) {
	for _, existing := range e.listeners {
		if existing == listener {
			return
		}
	}
	e.listeners = append(e.listeners, listener)
}

func (e *turnEndedEmitter) Emit(payload TurnEndedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnEnded(payload)
	}
}

package event

type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnColorPicked(payload ColorPickedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnStackFlushed(payload StackFlushedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnRuleCardPlayed(payload RuleCardPlayedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnTurnEnded(payload TurnEndedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

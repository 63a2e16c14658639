package event

var StackFlushed = &stackFlushedEmitter{}

type StackFlushedPayload struct {
	PlayerName string
	CardsDrawn int
}

type StackFlushedListener interface {
	OnStackFlushed(StackFlushedPayload)
}

type stackFlushedEmitter struct {
	listeners []StackFlushedListener
}

func (e *stackFlushedEmitter) AddListener(listener StackFlushedListener) {
	for _, existing := range e.listeners {
		if existing == listener {
			return
		}
	}
	e.listeners = append(e.listeners, listener)
}

func (e *stackFlushedEmitter) Emit(payload StackFlushedPayload) {
	for _, listener := range e.listeners {
		listener.OnStackFlushed(payload)
	}
}

package event

var RuleCardPlayed = &ruleCardPlayedEmitter{}

type RuleCardPlayedPayload struct {
	PlayerName string
	RuleName   string
	Slot       int
}

type RuleCardPlayedListener interface {
	OnRuleCardPlayed(RuleCardPlayedPayload)
}

type ruleCardPlayedEmitter struct {
	listeners []RuleCardPlayedListener
}

func (e *ruleCardPlayedEmitter) AddListener(listener RuleCardPlayedListener) {
	for _, existing := range e.listeners {
		if existing == listener {
			return
		}
	}
	e.listeners = append(e.listeners, listener)
}

func (e *ruleCardPlayedEmitter) Emit(payload RuleCardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnRuleCardPlayed(payload)
	}
}

package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/rule"
)

type State struct {
	LastPlayedCard    card.Card
	PlayedCards       []card.Card
	CurrentPlayerHand []card.Card
	BufferedCards     []card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	ActiveRules       []string
	StackCount        int
	BoardSlots        []string
	RuleDeckSize      int
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	if len(s.ActiveRules) > 0 {
		lines = append(lines, fmt.Sprintf("Rules in force: %s", strings.Join(s.ActiveRules, ", ")))
	}
	if s.StackCount > 0 {
		lines = append(lines, fmt.Sprintf("Running stack: draw %d", s.StackCount))
	}
	for index, slot := range s.BoardSlots {
		lines = append(lines, fmt.Sprintf("Slot %d: %s", index+1, slot))
	}
	lines = append(lines, fmt.Sprintf("Rule deck: %d card(s) left", s.RuleDeckSize))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))
	if len(s.BufferedCards) > 0 {
		lines = append(lines, fmt.Sprintf("Your pending play: %s", s.BufferedCards))
	}

	return strings.Join(lines, "\n")
}

// ExtractState snapshots the table from the given seat's point of view.
func (g *Game) ExtractState(seat int) State {
	top, _ := g.pile.Top()
	state := State{
		LastPlayedCard:    top,
		PlayedCards:       g.pile.Cards(),
		CurrentPlayerHand: g.players[seat].Hand(),
		BufferedCards:     append([]card.Card(nil), g.players[seat].buffer...),
		PlayerHandCounts:  map[string]int{},
		StackCount:        g.rules.Stacking().Count(),
		RuleDeckSize:      g.board.DeckSize(),
	}
	current := g.cycler.Current()
	n := len(g.players)
	for offset := 0; offset < n; offset++ {
		next := (current + offset*g.cycler.Direction() + n*n) % n
		controller := g.players[next]
		state.PlayerSequence = append(state.PlayerSequence, controller.Name())
		state.PlayerHandCounts[controller.Name()] = controller.HandSize()
	}
	g.rules.ForEach(func(r rule.Rule) {
		if r.Enabled() {
			state.ActiveRules = append(state.ActiveRules, r.Name())
		}
	})
	for _, slot := range g.board.Slots() {
		state.BoardSlots = append(state.BoardSlots, slot.String())
	}
	return state
}

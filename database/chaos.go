package database

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/event"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/consts"
)

const initialRune = 'A'

type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	s.currentRune++
	return currentRune
}

type ChaosGame struct {
	Room    *Room              `json:"room"`
	Players []int64            `json:"players"`
	Seats   map[int64]int      `json:"seats"`
	States  map[int64]chan int `json:"states"`
	Game    *game.Game         `json:"game"`
}

func (cg *ChaosGame) SeatOf(playerId int64) (int, bool) {
	seat, ok := cg.Seats[playerId]
	return seat, ok
}

func (cg *ChaosGame) PlayerIDAt(seat int) int64 {
	for playerId, s := range cg.Seats {
		if s == seat {
			return playerId
		}
	}
	return 0
}

func (cg *ChaosGame) HavePlay(player *Player) bool {
	for _, id := range cg.Players {
		if id == player.ID && player.online {
			return true
		}
	}
	return false
}

func (cg *ChaosGame) NeedExit() bool {
	return cg.Room.Players <= 1
}

// PlayerSpoke feeds a chat line into the running game as a talk signal.
func (cg *ChaosGame) PlayerSpoke(playerId int64) {
	if cg == nil || cg.Game == nil {
		return
	}
	if seat, ok := cg.SeatOf(playerId); ok {
		cg.Game.Spoke(seat)
	}
}

func (cg *ChaosGame) delete() {
	if cg != nil {
		for _, state := range cg.States {
			close(state)
		}
	}
}

// ChaosPlayer answers the game's prompts over the player's connection.
type ChaosPlayer struct {
	ID   int64  `json:"id"`
	Nick string `json:"name"`
}

func NewChaosPlayer(p *Player) game.Player {
	return &ChaosPlayer{
		ID:   p.ID,
		Nick: p.Name,
	}
}

func (cp *ChaosPlayer) Name() string {
	return cp.Nick
}

func (cp *ChaosPlayer) NotifyCardsDrawn(cards []card.Card) {
	p := getPlayer(cp.ID)
	if p == nil {
		return
	}
	_ = p.WriteString(fmt.Sprintf("You drew %s!\n", cards))
}

func (cp *ChaosPlayer) PickColor(gameState game.State) color.Color {
	p := getPlayer(cp.ID)
	if p == nil {
		return color.Red
	}
	for {
		p = getPlayer(p.ID)
		_ = p.WriteString(fmt.Sprintf(
			"Select a color: %s, %s, %s or %s ? \n",
			color.Red,
			color.Yellow,
			color.Green,
			color.Blue,
		))
		colorName, err := p.AskForString(consts.PickTimeout)
		if err != nil {
			if err == consts.ErrorsTimeout {
				return color.Red
			}
			continue
		}
		chosenColor, err := color.ByName(strings.ToLower(strings.TrimSpace(colorName)))
		if err != nil || chosenColor == color.Wild {
			_ = p.WriteString(fmt.Sprintf("Unknown color '%s' \n", colorName))
			continue
		}
		return chosenColor
	}
}

func (cp *ChaosPlayer) PickSwapTarget(gameState game.State) int {
	p := getPlayer(cp.ID)
	if p == nil {
		return -1
	}
	buf := bytes.Buffer{}
	buf.WriteString("Pick a player to swap hands with: \n")
	runeSequence := runeSequence{}
	options := map[string]int{}
	// sequence starts at the chooser, offer everyone else
	for offset, name := range gameState.PlayerSequence {
		if offset == 0 {
			continue
		}
		label := string(runeSequence.next())
		options[label] = offset
		buf.WriteString(fmt.Sprintf("%s %s (%d card(s))\n", label, name, gameState.PlayerHandCounts[name]))
	}
	for {
		p = getPlayer(p.ID)
		_ = p.WriteString(buf.String())
		selectedLabel, err := p.AskForString(consts.PickTimeout)
		if err != nil {
			return -1
		}
		offset, found := options[strings.ToUpper(strings.TrimSpace(selectedLabel))]
		if !found {
			continue
		}
		return offset
	}
}

func (cp *ChaosPlayer) PickRuleCard(size int) int {
	return cp.pickIndex("Pick a buried rule card to revive (1 is the bottom)", size)
}

func (cp *ChaosPlayer) PickSlot(size int) int {
	return cp.pickIndex("Pick a slot for the new rule card", size)
}

func (cp *ChaosPlayer) pickIndex(prompt string, size int) int {
	p := getPlayer(cp.ID)
	if p == nil || size <= 0 {
		return 0
	}
	for {
		p = getPlayer(p.ID)
		_ = p.WriteString(fmt.Sprintf("%s: 1-%d \n", prompt, size))
		selected, err := p.AskForInt(consts.PickTimeout)
		if err != nil {
			return 0
		}
		if selected < 1 || selected > size {
			_ = p.WriteString(fmt.Sprintf("Out of range '%d' \n", selected))
			continue
		}
		return selected - 1
	}
}

// Every seated ChaosPlayer is subscribed to the table events, so each
// handler writes to its own connection only.

func (cp *ChaosPlayer) OnCardPlayed(payload event.CardPlayedPayload) {
	p := getPlayer(cp.ID)
	if p == nil {
		return
	}
	verb := "played"
	if payload.JumpIn {
		verb = "jumped in with"
	}
	_ = p.WriteString(fmt.Sprintf(">> %s %s %s!\n", payload.PlayerName, verb, payload.Cards))
}

func (cp *ChaosPlayer) OnColorPicked(payload event.ColorPickedPayload) {
	p := getPlayer(cp.ID)
	if p == nil {
		return
	}
	_ = p.WriteString(fmt.Sprintf(">> %s picked color %s!\n", payload.PlayerName, payload.Color))
}

func (cp *ChaosPlayer) OnStackFlushed(payload event.StackFlushedPayload) {
	p := getPlayer(cp.ID)
	if p == nil {
		return
	}
	_ = p.WriteString(fmt.Sprintf(">> %s ate the stack and drew %d card(s)!\n", payload.PlayerName, payload.CardsDrawn))
}

func (cp *ChaosPlayer) OnRuleCardPlayed(payload event.RuleCardPlayedPayload) {
	p := getPlayer(cp.ID)
	if p == nil {
		return
	}
	_ = p.WriteString(fmt.Sprintf(">> %s put '%s' into slot %d!\n", payload.PlayerName, payload.RuleName, payload.Slot+1))
}

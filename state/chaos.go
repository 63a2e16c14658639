package state

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/chaos/database"
	"github.com/ratel-online/core/log"
)

type chaosGame struct{}

var (
	statePlay    = 1
	stateWaiting = 2
)

type labelSequence struct {
	currentRune rune
}

func (s *labelSequence) next() string {
	if s.currentRune == 0 {
		s.currentRune = 'A'
	}
	currentRune := s.currentRune
	s.currentRune++
	return string(currentRune)
}

func (s *chaosGame) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsExist)
	}
	cg := room.Game
	if cg == nil {
		return consts.StateWaiting, nil
	}
	seat, ok := cg.SeatOf(player.ID)
	if !ok {
		return 0, player.WriteError(consts.ErrorsExist)
	}
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf(
		"WELCOME TO %s%s%s%s%s!!!\n",
		color.Red.Paint("C"),
		color.Yellow.Paint("H"),
		color.Green.Paint("A"),
		color.Blue.Paint("O"),
		color.Red.Paint("S"),
	))
	buf.WriteString(fmt.Sprintf("Your cards: %s\n", cg.Game.HandOf(seat)))
	_ = player.WriteString(buf.String())
	for {
		if room.State == consts.RoomStateWaiting {
			return consts.StateWaiting, nil
		}
		signal, ok := <-cg.States[player.ID]
		if !ok {
			return 0, consts.ErrorsChanClosed
		}
		switch signal {
		case statePlay:
			err := handleChaosTurn(room, player, cg)
			if err != nil {
				log.Error(err)
				return 0, err
			}
		case stateWaiting:
			return consts.StateWaiting, nil
		default:
			return 0, consts.ErrorsChanClosed
		}
	}
}

func (*chaosGame) Exit(player *database.Player) consts.StateID {
	roomId := player.RoomID
	database.LeaveRoom(roomId, player.ID)
	database.Broadcast(roomId, fmt.Sprintf("%s exited room!\n", player.Name))
	return consts.StateHome
}

// handleChaosTurn is the interactive turn of the signaled player: stage
// cards one by one, then commit, draw instead, or pass when draw-to-play
// left the turn open.
func handleChaosTurn(room *database.Room, player *database.Player, cg *database.ChaosGame) error {
	g := cg.Game
	seat, _ := cg.SeatOf(player.ID)
	if g.CurrentSeat() != seat {
		// a jump-in moved the turn while the signal was in flight
		return advance(room, cg, g.CurrentSeat())
	}
	if !cg.HavePlay(player) {
		return autoTurn(room, cg, seat)
	}
	database.Broadcast(room.ID, fmt.Sprintf("It's %s turn! \n", player.Name), player.ID)
	mustPlay := false
	for {
		gameState := g.ExtractState(seat)
		hand := g.HandOf(seat)
		legal := g.LegalContinuations(seat)
		sequence := labelSequence{}
		options := map[string]int{}
		buf := bytes.Buffer{}
		buf.WriteString(fmt.Sprintf("It's your turn, %s! \n", player.Name))
		buf.WriteString(gameState.String())
		buf.WriteString("\n")
		playable := 0
		for index, handCard := range hand {
			if !legal[index] {
				continue
			}
			label := sequence.next()
			options[label] = index
			buf.WriteString(fmt.Sprintf("%s %s \n", label, handCard))
			playable++
		}
		if playable == 0 && len(gameState.BufferedCards) == 0 {
			buf.WriteString("No playable cards. \n")
		}
		buf.WriteString("Stage a card by letter, then (p)lay, (d)raw, (u)ndo, (c)lear \n")
		_ = player.WriteString(buf.String())
		ans, err := player.AskForString(consts.PlayTimeout)
		if err != nil {
			if err != consts.ErrorsTimeout {
				return err
			}
			if mustPlay {
				ans = "pass"
			} else {
				ans = "d"
			}
		}
		ans = strings.TrimSpace(ans)
		if index, found := options[strings.ToUpper(ans)]; found {
			if err := g.BufferCard(seat, index); err != nil {
				_ = player.WriteError(err)
			}
			continue
		}
		switch strings.ToLower(ans) {
		case "p", "play":
			if len(g.ExtractState(seat).BufferedCards) == 0 {
				if mustPlay {
					result, err := g.Pass(seat)
					if err != nil {
						return err
					}
					return finishTurn(room, cg, result)
				}
				_ = player.WriteString("Nothing staged yet. \n")
				continue
			}
			result, err := g.PlayBuffered(seat)
			if err != nil {
				_ = player.WriteError(err)
				continue
			}
			return finishTurn(room, cg, result)
		case "d", "draw":
			result, err := g.DrawInstead(seat)
			if err != nil {
				_ = player.WriteError(err)
				continue
			}
			if result.MustPlay {
				mustPlay = true
				continue
			}
			return finishTurn(room, cg, result)
		case "u", "undo":
			if err := g.PopBuffer(seat, 1); err != nil {
				_ = player.WriteError(err)
			}
		case "c", "clear":
			if err := g.PopBuffer(seat, -1); err != nil {
				_ = player.WriteError(err)
			}
		case "pass":
			if !mustPlay {
				_ = player.WriteString("Have to play or draw! \n")
				continue
			}
			result, err := g.Pass(seat)
			if err != nil {
				return err
			}
			return finishTurn(room, cg, result)
		case "exit", "e":
			return consts.ErrorsExist
		default:
			if len(ans) > 0 {
				database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, ans))
			}
		}
	}
}

// autoTurn plays a bare draw for an absent player.
func autoTurn(room *database.Room, cg *database.ChaosGame, seat int) error {
	g := cg.Game
	result, err := g.DrawInstead(seat)
	if err != nil {
		return err
	}
	if result.MustPlay {
		result, err = g.Pass(seat)
		if err != nil {
			return err
		}
	}
	return finishTurn(room, cg, result)
}

// finishTurn settles everything that happens between two turns: penalty
// announcements, the win check, the slap window, and jump-in offers. A
// taken jump-in replaces the pending transition and settles again.
func finishTurn(room *database.Room, cg *database.ChaosGame, result game.TurnResult) error {
	g := cg.Game
	for {
		for _, violation := range result.Violations {
			database.Broadcast(room.ID, fmt.Sprintf("Penalty! %s\n", violation.Error()))
		}
		if winner, over := g.Winner(); over {
			return endGame(room, cg, fmt.Sprintf("%s wins! \n", g.PlayerName(winner)))
		}
		if cg.NeedExit() {
			return endGame(room, cg, "Not enough players left, game over. \n")
		}
		slapWindow(room, cg)
		if jumped, ok := jumpInWindow(room, cg); ok {
			result = jumped
			continue
		}
		return advance(room, cg, result.Next)
	}
}

// advance hands the turn to the seat, playing through absent seats.
func advance(room *database.Room, cg *database.ChaosGame, seat int) error {
	for {
		playerId := cg.PlayerIDAt(seat)
		p := database.GetPlayer(playerId)
		if p != nil && p.Online() && database.RoomPlayers(room.ID)[playerId] {
			cg.States[playerId] <- statePlay
			return nil
		}
		if cg.NeedExit() {
			return endGame(room, cg, "Not enough players left, game over. \n")
		}
		result, err := cg.Game.DrawInstead(seat)
		if err != nil {
			return err
		}
		if result.MustPlay {
			result, err = cg.Game.Pass(seat)
			if err != nil {
				return err
			}
		}
		seat = result.Next
	}
}

// slapWindow polls every present player for a slap while one is owed.
func slapWindow(room *database.Room, cg *database.ChaosGame) {
	g := cg.Game
	if !g.Rules().SlapJacks().ShouldSlap() {
		return
	}
	database.Broadcast(room.ID, "The top cards sum to ten! \n")
	for _, playerId := range cg.Players {
		p := database.GetPlayer(playerId)
		if p == nil || !p.Online() || !database.RoomPlayers(room.ID)[playerId] {
			continue
		}
		seat, ok := cg.SeatOf(playerId)
		if !ok {
			continue
		}
		_ = p.WriteString("Slap the pile? y/n \n")
		ans, err := p.AskForString(consts.InterruptTimeout)
		if err != nil {
			continue
		}
		ans = strings.ToLower(strings.TrimSpace(ans))
		if ans == "y" || ans == "slap" {
			g.Slap(seat)
			database.Broadcast(room.ID, fmt.Sprintf("%s slapped the pile! \n", p.Name), p.ID)
		}
	}
}

// jumpInWindow offers the hijack to the first player out of turn who
// holds a playable interrupt.
func jumpInWindow(room *database.Room, cg *database.ChaosGame) (game.TurnResult, bool) {
	g := cg.Game
	for _, playerId := range cg.Players {
		seat, ok := cg.SeatOf(playerId)
		if !ok || seat == g.CurrentSeat() {
			continue
		}
		p := database.GetPlayer(playerId)
		if p == nil || !p.Online() || !database.RoomPlayers(room.ID)[playerId] {
			continue
		}
		index := firstLegal(g.LegalContinuations(seat))
		if index < 0 {
			continue
		}
		hand := g.HandOf(seat)
		_ = p.WriteString(fmt.Sprintf("Jump in with %s? y/n \n", hand[index]))
		ans, err := p.AskForString(consts.InterruptTimeout)
		if err != nil || strings.ToLower(strings.TrimSpace(ans)) != "y" {
			continue
		}
		if err := g.BufferCard(seat, index); err != nil {
			continue
		}
		result, err := g.PlayBuffered(seat)
		if err != nil {
			_ = p.WriteError(err)
			continue
		}
		return result, true
	}
	return game.TurnResult{}, false
}

func firstLegal(legal []bool) int {
	for index, ok := range legal {
		if ok {
			return index
		}
	}
	return -1
}

func endGame(room *database.Room, cg *database.ChaosGame, msg string) error {
	database.Broadcast(room.ID, msg)
	room.Lock()
	room.Game = nil
	room.State = consts.RoomStateWaiting
	room.Unlock()
	for _, playerId := range cg.Players {
		cg.States[playerId] <- stateWaiting
	}
	return nil
}

// InitChaosGame seats the room players at a fresh table and signals the
// opening turn.
func InitChaosGame(room *database.Room) (*database.ChaosGame, error) {
	players := make([]int64, 0)
	chaosPlayers := make([]game.Player, 0)
	states := map[int64]chan int{}
	for playerId := range database.RoomPlayers(room.ID) {
		p := database.GetPlayer(playerId)
		if p == nil {
			continue
		}
		players = append(players, p.ID)
		chaosPlayers = append(chaosPlayers, p.ChaosPlayer())
		states[p.ID] = make(chan int, 1)
	}
	g, err := game.NewWithOptions(chaosPlayers, game.Options{
		SkipBeforeStackCheck: room.SkipBeforeStackCheck,
		EternalChaos:         room.EternalChaos,
	})
	if err != nil {
		return nil, err
	}
	seats := map[int64]int{}
	for seat := 0; seat < g.NumPlayers(); seat++ {
		seats[g.PlayerAt(seat).(*database.ChaosPlayer).ID] = seat
	}
	cg := &database.ChaosGame{
		Room:    room,
		Players: players,
		Seats:   seats,
		States:  states,
		Game:    g,
	}
	states[cg.PlayerIDAt(g.CurrentSeat())] <- statePlay
	return cg, nil
}

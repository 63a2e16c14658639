package state

import (
	"strings"

	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/chaos/database"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StateChaosGame, &chaosGame{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// State is one screen of the lobby flow. Next blocks on the player's
// input and answers with the following state; Exit answers the state to
// fall back to when the player leaves, 0 ending the session.
type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

func Root() consts.StateID {
	return consts.StateWelcome
}

// Run drives the player through the states until the session ends.
func Run(player *database.Player) {
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
		log.Infof("player %s state machine break up.\n", player)
	}()
	player.State(Root())
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			if err1, ok := err.(consts.Error); ok && err1.Exit {
				stateId = state.Exit(player)
			} else {
				log.Error(err)
				continue
			}
		}
		if stateId == 0 {
			break
		}
		player.State(stateId)
	}
}

func isExit(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "exit" || signal == "e"
}

func isLs(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "ls" || signal == "v"
}

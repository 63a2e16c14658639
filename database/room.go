package database

import (
	"sync"
	"time"

	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
)

type Room struct {
	sync.Mutex

	ID         int64      `json:"id"`
	Game       *ChaosGame `json:"game"`
	State      int        `json:"state"`
	Players    int        `json:"players"`
	Creator    int64      `json:"creator"`
	ActiveTime time.Time  `json:"activeTime"`
	Password   string     `json:"password"`
	EnableChat bool       `json:"enableChat"`

	// house-rule toggles for the next match
	EternalChaos         bool `json:"eternalChaos"`
	SkipBeforeStackCheck bool `json:"skipBeforeStackCheck"`
}

func (r *Room) Model() model.Room {
	return model.Room{
		ID:        r.ID,
		Players:   r.Players,
		State:     r.State,
		StateDesc: consts.RoomStates[r.State],
		Creator:   r.Creator,
	}
}

func (room *Room) removePlayer(player *Player) {
	if room == nil || player == nil {
		return
	}
	room.ActiveTime = time.Now()
	playerIds := RoomPlayers(room.ID)
	if _, ok := playerIds[player.ID]; ok {
		room.Players--
		player.RoomID = 0
		delete(playerIds, player.ID)
		if len(playerIds) > 0 && room.Creator == player.ID {
			for k := range playerIds {
				room.Creator = k
				break
			}
		}
	}
	if len(playerIds) == 0 {
		deleteRoom(room)
	}
}

func (room *Room) Cancel() {
	if room.ActiveTime.Add(24 * time.Hour).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", room.ID)
		deleteRoom(room)
		return
	}
	living := false
	for id := range RoomPlayers(room.ID) {
		if player := getPlayer(id); player != nil && player.online {
			living = true
			break
		}
	}
	if !living {
		log.Infof("room %d is not living, removed.\n", room.ID)
		deleteRoom(room)
	}
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for playerId := range RoomPlayers(room.ID) {
		if player := getPlayer(playerId); player != nil && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

package database

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/core/log"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
)

var roomIds int64 = 0
var players = hashmap.New()
var rooms = hashmap.New()
var roomPlayers = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			rooms.Foreach(func(e *hashmap.Entry) {
				e.Value().(*Room).Cancel()
			})
		}
	})
}

func Connected(conn *network.Conn, info *modelx.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		IP:    conn.IP(),
		Name:  info.Name,
		Score: info.Score,
	}
	player.Conn(conn)
	players.Set(player.ID, player)
	return player
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func CreateRoom(creator int64) *Room {
	room := &Room{
		ID:         atomic.AddInt64(&roomIds, 1),
		State:      consts.RoomStateWaiting,
		Creator:    creator,
		EnableChat: true,
		ActiveTime: time.Now(),
	}
	rooms.Set(room.ID, room)
	roomPlayers.Set(room.ID, map[int64]bool{})
	return room
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func GetRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func RoomPlayers(roomId int64) map[int64]bool {
	if v, ok := roomPlayers.Get(roomId); ok {
		return v.(map[int64]bool)
	}
	return nil
}

func JoinRoom(roomId, playerId int64) error {
	player := getPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := GetRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players >= consts.MaxPlayers {
		return consts.ErrorsRoomPlayersIsFull
	}
	playerIds := RoomPlayers(roomId)
	if playerIds != nil {
		playerIds[playerId] = true
		room.Players++
		room.ActiveTime = time.Now()
		player.RoomID = roomId
	}
	return nil
}

func LeaveRoom(roomId, playerId int64) {
	room := GetRoom(roomId)
	if room != nil {
		room.Lock()
		defer room.Unlock()
		room.removePlayer(getPlayer(playerId))
	}
}

func deleteRoom(room *Room) {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
		room.Game.delete()
		room.Game = nil
	}
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := GetRoom(roomId)
	if room == nil {
		return
	}
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for playerId := range RoomPlayers(roomId) {
		if player := getPlayer(playerId); player != nil && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func BroadcastChat(player *Player, msg string, exclude ...int64) {
	if room := GetRoom(player.RoomID); room != nil && !room.EnableChat {
		_ = player.WriteString("Chat here is disabled. \n")
		return
	}
	log.Infof("chat msg, player %s[%d] %s say: %s\n", player.Name, player.ID, player.IP, msg)
	Broadcast(player.RoomID, msg, exclude...)

	// chatting is a game signal too: silent sixes listens for it
	if room := GetRoom(player.RoomID); room != nil && room.Game != nil {
		room.Game.PlayerSpoke(player.ID)
	}
}

// SetRoomProps applies a "set <key> <value>" room setting from the owner.
func SetRoomProps(room *Room, key, value string) {
	on := value == "on"
	switch key {
	case consts.RoomPropsPassword:
		if value == "off" {
			room.Password = ""
		} else {
			room.Password = value
		}
	case consts.RoomPropsEternalChaos:
		room.EternalChaos = on
	case consts.RoomPropsStackSkip:
		room.SkipBeforeStackCheck = on
	}
}

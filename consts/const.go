package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateWaiting
	StateChaosGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MinPlayers = 2
	MaxPlayers = 8

	RoomStateWaiting = 1
	RoomStateRunning = 2

	// DiscardCapacity bounds the discard pile. The engine only ever inspects
	// the most recently played cards, older history is dropped.
	DiscardCapacity = 10

	StartingHandSize = 7
	StartingSlots    = 3

	PlayTimeout      = 40 * time.Second
	PickTimeout      = 20 * time.Second
	InterruptTimeout = 5 * time.Second
)

// Room properties.
const (
	RoomPropsPassword     = "pwd"
	RoomPropsEternalChaos = "ec"
	RoomPropsStackSkip    = "sp"
)

var RoomStates = map[int]string{
	RoomStateWaiting: "Waiting",
	RoomStateRunning: "Running",
}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid            = NewErr(1, true, "Room invalid. ")
	ErrorsRoomPlayersIsFull      = NewErr(1, false, "Room players is full. ")
	ErrorsRoomPassword           = NewErr(1, false, "Sorry! Password incorrect! ")
	ErrorsJoinFailForRoomRunning = NewErr(1, false, "Join fail, room is running. ")
	ErrorsGamePlayersInvalid     = NewErr(1, false, "Game players invalid. ")

	// Engine taxonomy. None of these may leave a game violating its
	// invariants; IllegalMove and RuleCardNotFound recover as no-ops,
	// IllegalStackBreak is reported and the pending draw still enforced.
	ErrorsInvalidCardSpec   = NewErr(2, false, "Invalid card spec. ")
	ErrorsIllegalMove       = NewErr(2, false, "Illegal move. ")
	ErrorsIllegalStackBreak = NewErr(2, false, "Illegal stack break. ")
	ErrorsRuleCardNotFound  = NewErr(2, false, "Rule card not found. ")
	ErrorsNotYourTurn       = NewErr(2, false, "Not your turn. ")
)

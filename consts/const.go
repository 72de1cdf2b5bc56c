package consts

import (
	"time"
)

type PhaseID int

const (
	_ PhaseID = iota
	PhaseWaiting
	PhaseDealt
	PhaseInTrick
	PhaseTrickComplete
	PhaseRoundComplete
	PhaseClosed
)

const (
	Seats = 3
	// NoTurn is the turn value before the game starts or after a round ends.
	NoTurn = -1
	// Ready is the readiness at which a table deals.
	Ready = Seats

	HandSize = 13

	// Points added to the winner of a trick.
	TrickPoints = 1
	CardPoints  = Seats

	AuthTimeout  = 3 * time.Second
	SweepTimeout = 1 * time.Minute

	// OutboxSize is how many packets a seat may fall behind before it is
	// dropped.
	OutboxSize = 64
)

// Session commands.
const (
	CommandPlay  = "play"
	CommandAgain = "again"
	CommandExit  = "exit"
)

var Phases = map[PhaseID]string{
	PhaseWaiting:       "Waiting",
	PhaseDealt:         "Dealt",
	PhaseInTrick:       "InTrick",
	PhaseTrickComplete: "TrickComplete",
	PhaseRoundComplete: "RoundComplete",
	PhaseClosed:        "Closed",
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
	ErrorsExist          = NewErr(1, true, "Exist. ")
	ErrorsChanClosed     = NewErr(1, true, "Chan closed. ")
	ErrorsAuthFail       = NewErr(1, true, "Auth fail. ")
	ErrorsInputInvalid   = NewErr(1, false, "Input invalid. ")
	ErrorsTableInvalid   = NewErr(1, true, "Table invalid. ")
	ErrorsTableFull      = NewErr(1, false, "Table seats are full. ")
	ErrorsTableClosed    = NewErr(1, true, "Table closed. ")
	ErrorsGameNotStarted = NewErr(1, false, "Game not started. ")
	ErrorsRoundRunning   = NewErr(1, false, "Round still running. ")

	ErrorsSeatInvalid      = NewErr(2, false, "Seat invalid. ")
	ErrorsTurnInvalid      = NewErr(2, false, "Turn invalid. ")
	ErrorsReadinessInvalid = NewErr(2, false, "Readiness invalid. ")
	ErrorsScoreInvalid     = NewErr(2, false, "Score invalid. ")
	ErrorsDuplicateCard    = NewErr(2, false, "Duplicate card. ")
	ErrorsCardInvalid      = NewErr(2, false, "Card invalid. ")

	ErrorsNotYourTurn     = NewErr(3, false, "Not your turn. ")
	ErrorsCardNotInHand   = NewErr(3, false, "Card not in hand. ")
	ErrorsSlotTaken       = NewErr(3, false, "Seat already played this trick. ")
	ErrorsTrickIncomplete = NewErr(3, false, "Trick incomplete. ")
	ErrorsMustFollowSuit  = NewErr(3, false, "Must follow the lead suit. ")
)

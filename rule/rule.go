package rule

import (
	"github.com/ratel-online/tricks/card"
	"github.com/ratel-online/tricks/consts"
	"github.com/ratel-online/tricks/player"
)

const noTrump = -1

// Evaluator decides which cards may be played into a trick and who wins it.
// lead is the seat that opened the trick.
type Evaluator interface {
	Playable(hand []card.Card, table player.Table, lead int, c card.Card) error
	Winner(table player.Table, lead int) int
}

// FollowSuit makes every seat follow the lead suit when it can; the highest
// card of the lead suit takes the trick.
var FollowSuit Evaluator = _rules{trump: noTrump}

// Trump is FollowSuit where any card of suit beats the lead suit.
func Trump(suit int) Evaluator {
	return _rules{trump: suit}
}

type _rules struct {
	trump int
}

func (r _rules) Playable(hand []card.Card, table player.Table, lead int, c card.Card) error {
	if !contains(hand, c) {
		return consts.ErrorsCardNotInHand
	}
	led := table[lead]
	if led == card.None {
		return nil
	}
	if c.Suit() == led.Suit() {
		return nil
	}
	for _, held := range hand {
		if held.Suit() == led.Suit() {
			return consts.ErrorsMustFollowSuit
		}
	}
	return nil
}

func (r _rules) Winner(table player.Table, lead int) int {
	winner := lead
	best := table[lead]
	for i := 1; i < consts.Seats; i++ {
		seat := (lead + i) % consts.Seats
		c := table[seat]
		if c != card.None && r.beats(c, best, table[lead].Suit()) {
			winner, best = seat, c
		}
	}
	return winner
}

func (r _rules) beats(c, best card.Card, leadSuit int) bool {
	if r.trump != noTrump {
		if c.Suit() == r.trump && best.Suit() != r.trump {
			return true
		}
		if best.Suit() == r.trump && c.Suit() != r.trump {
			return false
		}
	}
	if c.Suit() != best.Suit() {
		return c.Suit() == leadSuit
	}
	return c.Value() > best.Value()
}

func contains(hand []card.Card, c card.Card) bool {
	for _, held := range hand {
		if held == c {
			return true
		}
	}
	return false
}

package player

import (
	"fmt"

	"github.com/ratel-online/tricks/card"
	"github.com/ratel-online/tricks/consts"
)

func (s *State) SetReadiness(readiness int) error {
	if readiness < 0 || readiness > consts.Ready {
		return fmt.Errorf("%w: readiness %d", consts.ErrorsReadinessInvalid, readiness)
	}
	s.readiness = readiness
	return nil
}

// Deal replaces the hand, clears the table and hands the turn to first.
func (s *State) Deal(cards []card.Card, first int) error {
	if !validSeat(first) {
		return fmt.Errorf("%w: turn %d", consts.ErrorsTurnInvalid, first)
	}
	seen := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: %d", consts.ErrorsCardInvalid, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: %d", consts.ErrorsDuplicateCard, c)
		}
		seen[c] = true
	}
	s.hand = append(make([]card.Card, 0, len(cards)), cards...)
	s.table = EmptyTable()
	s.turn = first
	return nil
}

// ApplyCardPlayed puts c into the slot of seat. The seat must hold the turn
// and must not have played this trick. When seat is this state's own seat the
// card leaves the hand. The turn passes to the next seat.
func (s *State) ApplyCardPlayed(seat int, c card.Card) error {
	if !validSeat(seat) {
		return fmt.Errorf("%w: seat %d", consts.ErrorsSeatInvalid, seat)
	}
	if !c.Valid() {
		return fmt.Errorf("%w: %d", consts.ErrorsCardInvalid, c)
	}
	if s.turn != seat {
		return consts.ErrorsNotYourTurn
	}
	if s.table[seat] != card.None {
		return consts.ErrorsSlotTaken
	}
	if seat == s.seat {
		if !s.HasCard(int(c)) {
			return consts.ErrorsCardNotInHand
		}
		s.RemoveCard(int(c))
	}
	s.table[seat] = c
	s.turn = (seat + 1) % consts.Seats
	return nil
}

// CompleteTrick scores a full table for winner, clears the slots and gives
// the winner the lead.
func (s *State) CompleteTrick(winner int) error {
	if !validSeat(winner) {
		return fmt.Errorf("%w: seat %d", consts.ErrorsSeatInvalid, winner)
	}
	if !s.table.Full() {
		return consts.ErrorsTrickIncomplete
	}
	s.scores[winner].Tricks += consts.TrickPoints
	s.scores[winner].Cards += consts.CardPoints
	s.table = EmptyTable()
	s.turn = winner
	return nil
}

func (s *State) EndRound() {
	s.turn = consts.NoTurn
}

package player

import (
	"fmt"

	"github.com/ratel-online/tricks/card"
	"github.com/ratel-online/tricks/consts"
)

// Score of one seat.
type Score struct {
	Tricks int `json:"tricks"`
	Cards  int `json:"cards"`
}

type Scores [consts.Seats]Score

// Table holds the card each seat played in the current trick, card.None when
// the seat has not played yet.
type Table [consts.Seats]card.Card

func EmptyTable() Table {
	return Table{card.None, card.None, card.None}
}

func (t Table) Filled() int {
	n := 0
	for _, c := range t {
		if c != card.None {
			n++
		}
	}
	return n
}

func (t Table) Full() bool {
	return t.Filled() == consts.Seats
}

func (t Table) Empty() bool {
	return t.Filled() == 0
}

// Snapshot is the plain value form of a State.
type Snapshot struct {
	Seat      int
	Turn      int
	Readiness int
	Hand      []card.Card
	Table     Table
	Scores    Scores
}

func (s Snapshot) Validate() error {
	if !validSeat(s.Seat) {
		return fmt.Errorf("%w: seat %d", consts.ErrorsSeatInvalid, s.Seat)
	}
	if s.Turn != consts.NoTurn && !validSeat(s.Turn) {
		return fmt.Errorf("%w: turn %d", consts.ErrorsTurnInvalid, s.Turn)
	}
	if s.Readiness < 0 || s.Readiness > consts.Ready {
		return fmt.Errorf("%w: readiness %d", consts.ErrorsReadinessInvalid, s.Readiness)
	}
	seen := make(map[card.Card]bool, len(s.Hand))
	for _, c := range s.Hand {
		if !c.Valid() {
			return fmt.Errorf("%w: hand card %d", consts.ErrorsCardInvalid, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: %d", consts.ErrorsDuplicateCard, c)
		}
		seen[c] = true
	}
	for i, c := range s.Table {
		if c != card.None && !c.Valid() {
			return fmt.Errorf("%w: table slot %d holds %d", consts.ErrorsCardInvalid, i, c)
		}
	}
	for i, score := range s.Scores {
		if score.Tricks < 0 || score.Cards < 0 {
			return fmt.Errorf("%w: seat %d %+v", consts.ErrorsScoreInvalid, i, score)
		}
	}
	return nil
}

// State is the game state as seen by one seat. It has a single writer.
type State struct {
	seat      int
	turn      int
	readiness int
	hand      []card.Card
	table     Table
	scores    Scores
}

func New(seat int) (*State, error) {
	if !validSeat(seat) {
		return nil, fmt.Errorf("%w: seat %d", consts.ErrorsSeatInvalid, seat)
	}
	return &State{
		seat:  seat,
		turn:  consts.NoTurn,
		hand:  make([]card.Card, 0, consts.HandSize),
		table: EmptyTable(),
	}, nil
}

// FromSnapshot builds a State out of a validated snapshot.
func FromSnapshot(snapshot Snapshot) (*State, error) {
	s := &State{}
	if err := s.Restore(snapshot); err != nil {
		return nil, err
	}
	return s, nil
}

// Restore replaces every field with the snapshot, or nothing when the
// snapshot is invalid.
func (s *State) Restore(snapshot Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	s.seat = snapshot.Seat
	s.turn = snapshot.Turn
	s.readiness = snapshot.Readiness
	s.hand = append(make([]card.Card, 0, len(snapshot.Hand)), snapshot.Hand...)
	s.table = snapshot.Table
	s.scores = snapshot.Scores
	return nil
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Seat:      s.seat,
		Turn:      s.turn,
		Readiness: s.readiness,
		Hand:      s.Hand(),
		Table:     s.table,
		Scores:    s.scores,
	}
}

func (s *State) Seat() int {
	return s.seat
}

func (s *State) Turn() int {
	return s.turn
}

func (s *State) Readiness() int {
	return s.readiness
}

func (s *State) Hand() []card.Card {
	hand := make([]card.Card, len(s.hand))
	copy(hand, s.hand)
	return hand
}

func (s *State) Table() Table {
	return s.table
}

func (s *State) Scores() Scores {
	return s.scores
}

func (s *State) HasCard(id int) bool {
	for _, c := range s.hand {
		if int(c) == id {
			return true
		}
	}
	return false
}

func (s *State) HasSuit(suit int) bool {
	for _, c := range s.hand {
		if c.Suit() == suit {
			return true
		}
	}
	return false
}

// RemoveCard drops the first card with the given id, keeping the order of the
// rest. Removing a card that is not held does nothing.
func (s *State) RemoveCard(id int) {
	for i, c := range s.hand {
		if int(c) == id {
			s.hand = append(s.hand[:i], s.hand[i+1:]...)
			return
		}
	}
}

func (s *State) String() string {
	return fmt.Sprintf("Player %d", s.seat)
}

func validSeat(seat int) bool {
	return seat >= 0 && seat < consts.Seats
}

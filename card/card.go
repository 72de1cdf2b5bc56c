package card

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	Clubs = iota
	Diamonds
	Hearts
	Spades
)

const (
	// Total is the number of cards in a deck.
	Total = 52
	// PerSuit is the number of cards of every suit.
	PerSuit = 13

	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// None marks an empty table slot. It is never a valid card.
const None Card = -1

var ErrInvalidCard = errors.New("invalid card")

type InvalidCardError struct {
	ID int
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("invalid card %d, want 0..%d", e.ID, Total-1)
}

func (e *InvalidCardError) Is(target error) bool {
	return target == ErrInvalidCard
}

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

var faceNames = map[int]string{
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// Card identifies one of the 52 cards. Suit is id/13, value is id%13+2.
type Card int

func New(id int) (Card, error) {
	if id < 0 || id >= Total {
		return None, &InvalidCardError{ID: id}
	}
	return Card(id), nil
}

func (c Card) ID() int {
	return int(c)
}

func (c Card) Valid() bool {
	return c >= 0 && c < Total
}

func (c Card) Suit() int {
	return int(c) / PerSuit
}

func (c Card) SuitName() string {
	if !c.Valid() {
		return "Error"
	}
	return suitNames[c.Suit()]
}

func (c Card) Value() int {
	return int(c)%PerSuit + 2
}

func (c Card) ValueName() string {
	if name, ok := faceNames[c.Value()]; ok {
		return name
	}
	return strconv.Itoa(c.Value())
}

func (c Card) String() string {
	if !c.Valid() {
		return "-"
	}
	return c.ValueName() + " of " + c.SuitName()
}

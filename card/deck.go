package card

import (
	"math/rand"
	"sync"
)

type Deck struct {
	sync.Mutex
	cards []Card
	rand  *rand.Rand
}

// NewDeck returns a shuffled 52 card deck. A nil source falls back to the
// global one.
func NewDeck(source rand.Source) *Deck {
	deck := &Deck{}
	if source != nil {
		deck.rand = rand.New(source)
	}
	fillDeck(deck)
	return deck
}

func (d *Deck) Size() int {
	d.Lock()
	defer d.Unlock()
	return len(d.cards)
}

// Deal hands out size cards to each of players hands, one card at a time.
// The rest stays in the deck.
func (d *Deck) Deal(players, size int) [][]Card {
	d.Lock()
	defer d.Unlock()
	hands := make([][]Card, players)
	for i := range hands {
		hands[i] = make([]Card, 0, size)
	}
	for round := 0; round < size; round++ {
		for p := 0; p < players && len(d.cards) > 0; p++ {
			hands[p] = append(hands[p], d.cards[0])
			d.cards = d.cards[1:]
		}
	}
	return hands
}

func fillDeck(deck *Deck) {
	cards := make([]Card, 0, Total)
	for id := 0; id < Total; id++ {
		cards = append(cards, Card(id))
	}
	shuffle := rand.Shuffle
	if deck.rand != nil {
		shuffle = deck.rand.Shuffle
	}
	shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	deck.cards = cards
}

package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/tricks/card"
	"github.com/ratel-online/tricks/consts"
	"github.com/ratel-online/tricks/player"
)

var suitSymbols = []string{"♣", "♦", "♥", "♠"}

var (
	red   = color.New(color.FgHiRed).SprintfFunc()
	black = color.New(color.FgHiWhite).SprintfFunc()
	faint = color.New(color.Faint).SprintfFunc()
)

// Card paints c as value and suit symbol, red for diamonds and hearts.
func Card(c card.Card) string {
	if !c.Valid() {
		return faint("%s", "--")
	}
	text := c.ValueName() + suitSymbols[c.Suit()]
	if c.Suit() == card.Diamonds || c.Suit() == card.Hearts {
		return red("%s", text)
	}
	return black("%s", text)
}

func Hand(hand []card.Card) string {
	parts := make([]string, 0, len(hand))
	for _, c := range hand {
		parts = append(parts, fmt.Sprintf("%s(%d)", Card(c), c.ID()))
	}
	return strings.Join(parts, " ")
}

func Table(table player.Table) string {
	parts := make([]string, 0, consts.Seats)
	for _, c := range table {
		parts = append(parts, Card(c))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func Scores(scores player.Scores) string {
	parts := make([]string, 0, consts.Seats)
	for i, s := range scores {
		parts = append(parts, fmt.Sprintf("P%d %d/%d", i, s.Tricks, s.Cards))
	}
	return strings.Join(parts, ", ")
}

// State is the terminal view of one seat.
func State(s *player.State) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("You are player %d, %d/%d connected\n", s.Seat(), s.Readiness(), consts.Ready))
	switch {
	case s.Turn() == consts.NoTurn:
		buf.WriteString("Waiting\n")
	case s.Turn() == s.Seat():
		buf.WriteString("Your turn\n")
	default:
		buf.WriteString(fmt.Sprintf("Player %d to play\n", s.Turn()))
	}
	buf.WriteString(fmt.Sprintf("Table: %s\n", Table(s.Table())))
	buf.WriteString(fmt.Sprintf("Hand:  %s\n", Hand(s.Hand())))
	buf.WriteString(fmt.Sprintf("Score: %s\n", Scores(s.Scores())))
	return buf.String()
}

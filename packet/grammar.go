package packet

import (
	"strconv"
	"strings"

	"github.com/ratel-online/tricks/card"
	"github.com/ratel-online/tricks/consts"
	"github.com/ratel-online/tricks/player"
)

const (
	tokenSep  = " "
	groupSep  = ":"
	emptySlot = -1
)

func formatHand(hand []card.Card) string {
	tokens := make([]string, 0, len(hand))
	for _, c := range hand {
		tokens = append(tokens, strconv.Itoa(c.ID()))
	}
	return strings.Join(tokens, tokenSep)
}

// parseHand special cases "" since splitting it yields one empty token.
func parseHand(input string) ([]card.Card, error) {
	hand := make([]card.Card, 0, consts.HandSize)
	if input == "" {
		return hand, nil
	}
	seen := map[card.Card]bool{}
	for _, token := range strings.Split(input, tokenSep) {
		id, err := strconv.Atoi(token)
		if err != nil {
			return nil, formatErr(FieldHand, "non-integer token "+strconv.Quote(token), err)
		}
		c, err := card.New(id)
		if err != nil {
			return nil, formatErr(FieldHand, "card out of range", err)
		}
		if seen[c] {
			return nil, formatErr(FieldHand, "duplicate card "+token, nil)
		}
		seen[c] = true
		hand = append(hand, c)
	}
	return hand, nil
}

func formatTable(table player.Table) string {
	tokens := make([]string, 0, consts.Seats)
	for _, c := range table {
		if c == card.None {
			tokens = append(tokens, strconv.Itoa(emptySlot))
		} else {
			tokens = append(tokens, strconv.Itoa(c.ID()))
		}
	}
	return strings.Join(tokens, tokenSep)
}

func parseTable(input string) (player.Table, error) {
	table := player.EmptyTable()
	tokens := strings.Split(input, tokenSep)
	if len(tokens) != consts.Seats {
		return table, formatErr(FieldPlayedCards, "want "+strconv.Itoa(consts.Seats)+" tokens, got "+strconv.Itoa(len(tokens)), nil)
	}
	for i, token := range tokens {
		id, err := strconv.Atoi(token)
		if err != nil {
			return table, formatErr(FieldPlayedCards, "non-integer token "+strconv.Quote(token), err)
		}
		if id == emptySlot {
			continue
		}
		c, err := card.New(id)
		if err != nil {
			return table, formatErr(FieldPlayedCards, "card out of range", err)
		}
		table[i] = c
	}
	return table, nil
}

func formatScores(scores player.Scores) string {
	tricks := make([]string, 0, consts.Seats)
	cards := make([]string, 0, consts.Seats)
	for _, score := range scores {
		tricks = append(tricks, strconv.Itoa(score.Tricks))
		cards = append(cards, strconv.Itoa(score.Cards))
	}
	return strings.Join(tricks, tokenSep) + groupSep + strings.Join(cards, tokenSep)
}

func parseScores(input string) (player.Scores, error) {
	scores := player.Scores{}
	groups := strings.Split(input, groupSep)
	if len(groups) != 2 {
		return scores, formatErr(FieldScore, "want tricks"+groupSep+"cards, got "+strconv.Itoa(len(groups))+" groups", nil)
	}
	tricks, err := parseScoreGroup(groups[0])
	if err != nil {
		return scores, err
	}
	cards, err := parseScoreGroup(groups[1])
	if err != nil {
		return scores, err
	}
	for i := range scores {
		scores[i] = player.Score{Tricks: tricks[i], Cards: cards[i]}
	}
	return scores, nil
}

func parseScoreGroup(group string) ([consts.Seats]int, error) {
	values := [consts.Seats]int{}
	tokens := strings.Split(group, tokenSep)
	if len(tokens) != consts.Seats {
		return values, formatErr(FieldScore, "want "+strconv.Itoa(consts.Seats)+" values per group, got "+strconv.Itoa(len(tokens)), nil)
	}
	for i, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			return values, formatErr(FieldScore, "non-integer token "+strconv.Quote(token), err)
		}
		if v < 0 {
			return values, formatErr(FieldScore, "negative value "+token, nil)
		}
		values[i] = v
	}
	return values, nil
}

func checkRanges(snapshot player.Snapshot) error {
	if snapshot.Turn < consts.NoTurn || snapshot.Turn >= consts.Seats {
		return formatErr(FieldTurn, "out of range "+strconv.Itoa(snapshot.Turn), nil)
	}
	if snapshot.Seat < 0 || snapshot.Seat >= consts.Seats {
		return formatErr(FieldPlayerNumber, "out of range "+strconv.Itoa(snapshot.Seat), nil)
	}
	if snapshot.Readiness < 0 || snapshot.Readiness > consts.Ready {
		return formatErr(FieldServerStatus, "out of range "+strconv.Itoa(snapshot.Readiness), nil)
	}
	return nil
}

package packet_test

import (
	"errors"
	"math/rand"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/tricks/card"
	"github.com/ratel-online/tricks/packet"
	"github.com/ratel-online/tricks/player"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	s := seatZero(t)
	fields := decodeFields(t, packet.Encode(s))
	require.Equal(t, map[string]interface{}{
		"turn":         float64(0),
		"playerNumber": float64(0),
		"serverStatus": float64(3),
		"hand":         "5 18 40",
		"playedCards":  "-1 -1 -1",
		"score":        "0 0 0:0 0 0",
	}, fields)
}

func TestEndToEnd(t *testing.T) {
	s := seatZero(t)
	decoded, err := packet.Decode(packet.Encode(s))
	require.NoError(t, err)
	require.Equal(t, s.Snapshot(), decoded.Snapshot())
}

func TestEmptyHand(t *testing.T) {
	s, _ := player.New(1)
	data := packet.Encode(s)
	require.Equal(t, "", decodeFields(t, data)["hand"])

	decoded, err := packet.Decode(data)
	require.NoError(t, err)
	require.Empty(t, decoded.Hand())
	require.Equal(t, -1, decoded.Turn())
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for i := 0; i < 500; i++ {
		snapshot := randomSnapshot(r)
		s, err := player.FromSnapshot(snapshot)
		require.NoError(t, err)

		decoded, err := packet.Decode(packet.Encode(s))
		require.NoError(t, err)
		require.Equal(t, s.Snapshot(), decoded.Snapshot())
	}
}

func TestDecodeParseError(t *testing.T) {
	for _, data := range []string{"", "not json", "[1,2,3]", "null", `"hand"`, `{"turn":`, `{"turn":0,}`, `{"turn":0 "hand":""}`} {
		t.Run(data, func(t *testing.T) {
			_, err := packet.Decode([]byte(data))
			require.Error(t, err)
			require.True(t, errors.Is(err, packet.ErrParse), err.Error())
			var parseErr *packet.ParseError
			require.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestDecodeFormatError(t *testing.T) {
	cases := []struct {
		name  string
		field string
		edit  func(fields map[string]interface{})
	}{
		{"table_with_two_tokens", packet.FieldPlayedCards, set("playedCards", "-1 -1")},
		{"table_with_four_tokens", packet.FieldPlayedCards, set("playedCards", "-1 -1 -1 4")},
		{"table_with_empty_string", packet.FieldPlayedCards, set("playedCards", "")},
		{"table_with_letters", packet.FieldPlayedCards, set("playedCards", "-1 x -1")},
		{"table_card_out_of_range", packet.FieldPlayedCards, set("playedCards", "-1 52 -1")},
		{"score_without_separator", packet.FieldScore, set("score", "0 0 0 0 0 0")},
		{"score_with_three_groups", packet.FieldScore, set("score", "0 0 0:0 0 0:0")},
		{"score_with_short_group", packet.FieldScore, set("score", "0 0:0 0 0")},
		{"score_with_letters", packet.FieldScore, set("score", "0 a 0:0 0 0")},
		{"score_negative", packet.FieldScore, set("score", "0 -1 0:0 0 0")},
		{"hand_with_letters", packet.FieldHand, set("hand", "5 x 40")},
		{"hand_with_double_space", packet.FieldHand, set("hand", "5  40")},
		{"hand_with_trailing_space", packet.FieldHand, set("hand", "5 40 ")},
		{"hand_card_out_of_range", packet.FieldHand, set("hand", "5 52")},
		{"hand_duplicate", packet.FieldHand, set("hand", "5 18 5")},
		{"turn_out_of_range", packet.FieldTurn, set("turn", 3)},
		{"seat_out_of_range", packet.FieldPlayerNumber, set("playerNumber", -1)},
		{"readiness_out_of_range", packet.FieldServerStatus, set("serverStatus", 4)},
		{"turn_as_string", packet.FieldTurn, set("turn", "x")},
		{"turn_as_numeric_string", packet.FieldTurn, set("turn", "1")},
		{"turn_as_float", packet.FieldTurn, set("turn", 1.5)},
		{"turn_as_null", packet.FieldTurn, set("turn", nil)},
		{"seat_as_bool", packet.FieldPlayerNumber, set("playerNumber", true)},
		{"readiness_as_array", packet.FieldServerStatus, set("serverStatus", []int{3})},
		{"hand_as_number", packet.FieldHand, set("hand", 5)},
		{"hand_as_null", packet.FieldHand, set("hand", nil)},
		{"table_as_array", packet.FieldPlayedCards, set("playedCards", []int{-1, -1, -1})},
		{"score_as_object", packet.FieldScore, set("score", map[string]int{"tricks": 0})},
		{"missing_hand", packet.FieldHand, drop("hand")},
		{"missing_turn", packet.FieldTurn, drop("turn")},
		{"missing_score", packet.FieldScore, drop("score")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := decodeFields(t, packet.Encode(seatZero(t)))
			tc.edit(fields)
			data, err := jsoniter.Marshal(fields)
			require.NoError(t, err)

			s, err := packet.Decode(data)
			require.Nil(t, s)
			require.True(t, errors.Is(err, packet.ErrFormat), err.Error())
			var formatErr *packet.FormatError
			require.True(t, errors.As(err, &formatErr))
			require.Equal(t, tc.field, formatErr.Field)
		})
	}
}

func TestDecodeKeysMatchExactly(t *testing.T) {
	for _, tc := range []struct {
		name  string
		field string
		data  string
	}{
		{"every_key_recased", packet.FieldTurn, `{"TURN":0,"PlayerNumber":0,"serverstatus":3,"Hand":"5","playedcards":"-1 -1 -1","SCORE":"0 0 0:0 0 0"}`},
		{"one_key_recased", packet.FieldPlayedCards, `{"turn":0,"playerNumber":0,"serverStatus":3,"hand":"5","PlayedCards":"-1 -1 -1","score":"0 0 0:0 0 0"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := packet.Decode([]byte(tc.data))
			require.Nil(t, s)
			require.True(t, errors.Is(err, packet.ErrFormat), err.Error())
			var formatErr *packet.FormatError
			require.True(t, errors.As(err, &formatErr))
			require.Equal(t, tc.field, formatErr.Field)
		})
	}
}

func TestOutOfRangeCardWrapsInvalidCard(t *testing.T) {
	fields := decodeFields(t, packet.Encode(seatZero(t)))
	fields["hand"] = "99"
	data, _ := jsoniter.Marshal(fields)
	_, err := packet.Decode(data)
	require.True(t, errors.Is(err, card.ErrInvalidCard))
}

func TestApply(t *testing.T) {
	t.Run("replaces_the_state", func(t *testing.T) {
		dst, _ := player.New(0)
		src := seatZero(t)
		require.NoError(t, packet.Apply(dst, packet.Encode(src)))
		require.Equal(t, src.Snapshot(), dst.Snapshot())
	})

	t.Run("leaves_the_state_untouched_on_failure", func(t *testing.T) {
		dst := seatZero(t)
		before := dst.Snapshot()

		fields := decodeFields(t, packet.Encode(dst))
		fields["turn"] = 1
		fields["serverStatus"] = 1
		fields["score"] = "1 1 1"
		data, _ := jsoniter.Marshal(fields)

		require.Error(t, packet.Apply(dst, data))
		require.Error(t, packet.Apply(dst, []byte("garbage")))
		require.Equal(t, before, dst.Snapshot())
	})
}

func seatZero(t *testing.T) *player.State {
	s, err := player.FromSnapshot(player.Snapshot{
		Seat:      0,
		Turn:      0,
		Readiness: 3,
		Hand:      []card.Card{5, 18, 40},
		Table:     player.EmptyTable(),
	})
	require.NoError(t, err)
	return s
}

func randomSnapshot(r *rand.Rand) player.Snapshot {
	ids := r.Perm(card.Total)
	hand := make([]card.Card, 0, 13)
	for _, id := range ids[:r.Intn(14)] {
		hand = append(hand, card.Card(id))
	}
	table := player.EmptyTable()
	for i := range table {
		if r.Intn(2) == 0 {
			table[i] = card.Card(r.Intn(card.Total))
		}
	}
	scores := player.Scores{}
	for i := range scores {
		scores[i] = player.Score{Tricks: r.Intn(14), Cards: r.Intn(1000)}
	}
	return player.Snapshot{
		Seat:      r.Intn(3),
		Turn:      r.Intn(4) - 1,
		Readiness: r.Intn(4),
		Hand:      hand,
		Table:     table,
		Scores:    scores,
	}
}

func decodeFields(t *testing.T, data []byte) map[string]interface{} {
	fields := map[string]interface{}{}
	require.NoError(t, jsoniter.Unmarshal(data, &fields))
	return fields
}

func set(key string, value interface{}) func(map[string]interface{}) {
	return func(fields map[string]interface{}) {
		fields[key] = value
	}
}

func drop(key string) func(map[string]interface{}) {
	return func(fields map[string]interface{}) {
		delete(fields, key)
	}
}

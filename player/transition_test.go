package player_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/tricks/card"
	"github.com/ratel-online/tricks/consts"
	"github.com/ratel-online/tricks/player"
	"github.com/stretchr/testify/require"
)

func TestSetReadiness(t *testing.T) {
	s, _ := player.New(0)
	require.NoError(t, s.SetReadiness(3))
	require.Equal(t, 3, s.Readiness())
	require.True(t, errors.Is(s.SetReadiness(4), consts.ErrorsReadinessInvalid))
	require.True(t, errors.Is(s.SetReadiness(-1), consts.ErrorsReadinessInvalid))
	require.Equal(t, 3, s.Readiness())
}

func TestDeal(t *testing.T) {
	t.Run("rejects_duplicates", func(t *testing.T) {
		s, _ := player.New(0)
		err := s.Deal([]card.Card{1, 1}, 0)
		require.True(t, errors.Is(err, consts.ErrorsDuplicateCard))
		require.Empty(t, s.Hand())
		require.Equal(t, consts.NoTurn, s.Turn())
	})

	t.Run("rejects_an_invalid_first_seat", func(t *testing.T) {
		s, _ := player.New(0)
		require.True(t, errors.Is(s.Deal([]card.Card{1}, -1), consts.ErrorsTurnInvalid))
	})
}

func TestApplyCardPlayed(t *testing.T) {
	t.Run("own_card_leaves_the_hand", func(t *testing.T) {
		s := dealt(t, 0, 5, 18, 40)
		require.NoError(t, s.ApplyCardPlayed(0, 18))
		require.Equal(t, []card.Card{5, 40}, s.Hand())
		require.Equal(t, player.Table{18, card.None, card.None}, s.Table())
		require.Equal(t, 1, s.Turn())
	})

	t.Run("other_seat_only_fills_its_slot", func(t *testing.T) {
		s := dealt(t, 1, 5, 18, 40)
		require.NoError(t, s.Deal(s.Hand(), 0))
		require.NoError(t, s.ApplyCardPlayed(0, 30))
		require.Equal(t, []card.Card{5, 18, 40}, s.Hand())
		require.Equal(t, player.Table{30, card.None, card.None}, s.Table())
		require.Equal(t, 1, s.Turn())
	})

	t.Run("rejects_out_of_turn", func(t *testing.T) {
		s := dealt(t, 0, 5, 18, 40)
		require.Equal(t, consts.ErrorsNotYourTurn, s.ApplyCardPlayed(1, 30))
	})

	t.Run("rejects_a_card_not_held", func(t *testing.T) {
		s := dealt(t, 0, 5, 18, 40)
		require.Equal(t, consts.ErrorsCardNotInHand, s.ApplyCardPlayed(0, 6))
		require.Equal(t, player.EmptyTable(), s.Table())
		require.Equal(t, 0, s.Turn())
	})

	t.Run("rejects_a_second_card_in_one_trick", func(t *testing.T) {
		s := dealt(t, 0, 5, 18, 40)
		playTrick(t, s, 0, 5, 20, 30)
		require.NoError(t, s.CompleteTrick(1))
		require.NoError(t, s.ApplyCardPlayed(1, 21))
		require.NoError(t, s.ApplyCardPlayed(2, 31))
		require.NoError(t, s.ApplyCardPlayed(0, 18))
		require.Equal(t, 1, s.Turn())
		require.Equal(t, consts.ErrorsSlotTaken, s.ApplyCardPlayed(1, 22))
	})
}

func TestCompleteTrick(t *testing.T) {
	t.Run("scores_the_winner_and_clears_the_table", func(t *testing.T) {
		s := dealt(t, 0, 5, 18, 40)
		playTrick(t, s, 0, 5, 20, 30)
		require.NoError(t, s.CompleteTrick(2))
		require.Equal(t, player.EmptyTable(), s.Table())
		require.Equal(t, 2, s.Turn())
		require.Equal(t, player.Scores{{}, {}, {Tricks: 1, Cards: 3}}, s.Scores())
	})

	t.Run("rejects_an_incomplete_trick", func(t *testing.T) {
		s := dealt(t, 0, 5, 18, 40)
		require.NoError(t, s.ApplyCardPlayed(0, 5))
		require.Equal(t, consts.ErrorsTrickIncomplete, s.CompleteTrick(0))
		require.Equal(t, player.Scores{}, s.Scores())
	})
}

func TestEndRound(t *testing.T) {
	s := dealt(t, 0, 5)
	s.EndRound()
	require.Equal(t, consts.NoTurn, s.Turn())
}

func playTrick(t *testing.T, s *player.State, lead int, cards ...card.Card) {
	for i, c := range cards {
		require.NoError(t, s.ApplyCardPlayed((lead+i)%consts.Seats, c))
	}
}

package showdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-analyzer/pkg/deck"
	"holdem-analyzer/pkg/poker"
	"holdem-analyzer/pkg/snapshot"
)

func hole(s string) Hole {
	cards := deck.CardsFromString(s)
	return Hole{cards[0], cards[1]}
}

func holes(s ...string) []Hole {
	h := make([]Hole, len(s))
	for i, cards := range s {
		h[i] = hole(cards)
	}

	return h
}

func TestResolve_singleWinner(t *testing.T) {
	a := assert.New(t)

	board := deck.CardsFromString("2h,7d,9c,11s,13h")
	outcome, err := Resolve(board, holes("14c,14d", "13c,2s"))
	require.NoError(t, err)

	a.Equal([]int{1}, outcome.Winners)
	a.False(outcome.IsSplit())
	a.Equal(1.0, outcome.Share())
	a.Equal(poker.TwoPair, outcome.Category)
	a.Equal("Two Pair, Kings And Twos", outcome.Label())
	a.Equal("Player 2 wins!", outcome.WhoWon())
	a.Equal("13c,13h,2s,2h,11s", deck.CardsToString(outcome.Top5[:]))
	a.True(outcome.IsWinner(1))
	a.False(outcome.IsWinner(0))

	// every player's hand is reported, strongest first
	a.Len(outcome.Players, 2)
	a.Equal(1, outcome.Players[0].PlayerIndex)
	a.Equal(0, outcome.Players[1].PlayerIndex)
	a.Equal(poker.Pair, outcome.Players[1].Hand.Category)
	a.Equal([][]int{{1}, {0}}, outcome.Tiers)

	loser, ok := outcome.Result(0)
	a.True(ok)
	a.Equal("Pair, Aces", loser.Hand.Label())

	_, ok = outcome.Result(5)
	a.False(ok)
}

func TestResolve_splitPot(t *testing.T) {
	a := assert.New(t)

	// the royal flush is on the board
	board := deck.CardsFromString("14s,13s,12s,11s,10s")
	outcome, err := Resolve(board, holes("2c,3c", "4d,5d"))
	require.NoError(t, err)

	a.Equal([]int{0, 1}, outcome.Winners)
	a.True(outcome.IsSplit())
	a.Equal(0.5, outcome.Share())
	a.Equal(poker.RoyalFlush, outcome.Category)
	a.Equal("Players 1 and 2 have tied!", outcome.WhoWon())
	a.Equal([][]int{{0, 1}}, outcome.Tiers)

	// suits don't break ties
	board = deck.CardsFromString("2h,7d,9c,11s,13h")
	outcome, err = Resolve(board, holes("14c,3d", "14d,3s", "12c,12d"))
	require.NoError(t, err)
	a.Equal([]int{2}, outcome.Winners)
	a.Equal([][]int{{2}, {0, 1}}, outcome.Tiers)
}

func TestResolve_fourOfAKindKicker(t *testing.T) {
	a := assert.New(t)

	board := deck.CardsFromString("2c,2s,2h,2d,13c")

	// the board king is everyone's kicker
	outcome, err := Resolve(board, holes("3h,4h", "5s,6s", "8c,9c"))
	require.NoError(t, err)
	a.Equal([]int{0, 1, 2}, outcome.Winners)
	a.InDelta(1.0/3.0, outcome.Share(), 0.0001)
	a.Equal("Players 1, 2 and 3 have tied!", outcome.WhoWon())
	a.Equal(deck.King, outcome.Top5[4].Rank)

	// an ace in the hole out-kicks the board
	outcome, err = Resolve(board, holes("3h,4h", "5s,6s", "14h,7d", "8c,9c"))
	require.NoError(t, err)
	a.Equal([]int{2}, outcome.Winners)
	a.Equal("Player 3 wins!", outcome.WhoWon())
	a.Equal("Four Of A Kind, Twos", outcome.Label())
	a.Equal(deck.Ace, outcome.Top5[4].Rank)
	a.Equal([][]int{{2}, {0, 1, 3}}, outcome.Tiers)
}

func TestResolve_wheel(t *testing.T) {
	board := deck.CardsFromString("2h,3d,4c,9s,13h")
	outcome, err := Resolve(board, holes("14c,5d", "5s,6c"))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, outcome.Winners)
	assert.Equal(t, "Straight, Six High", outcome.Label())

	w, _ := outcome.Result(0)
	assert.Equal(t, "Straight, Five High", w.Hand.Label())
}

func TestResolve_errors(t *testing.T) {
	a := assert.New(t)

	// an incomplete board is rejected and no outcome is produced
	outcome, err := Resolve(deck.CardsFromString("2h,3d,4c,9s"), holes("14c,5d", "5s,6c"))
	a.ErrorIs(err, ErrBoardSize)
	a.Nil(outcome)

	board := deck.CardsFromString("2h,3d,4c,9s,13h")

	_, err = Resolve(board, holes("14c,5d"))
	a.ErrorIs(err, ErrPlayerCount)

	_, err = Resolve(board, holes("2c,3c", "4c,5c", "6c,7c", "8c,9c", "10c,11c", "12c,13c", "14c,2d", "4d,5d", "6d,7d"))
	a.ErrorIs(err, ErrPlayerCount)

	// the same card can't be in two places
	_, err = Resolve(board, holes("14c,5d", "5d,6c"))
	a.ErrorIs(err, poker.ErrDuplicateCard)

	_, err = Resolve(board, holes("14c,2h", "5s,6c"))
	a.ErrorIs(err, poker.ErrDuplicateCard)

	missing := holes("14c,5d", "5s,6c")
	missing[1][1] = deck.Card{}
	_, err = Resolve(board, missing)
	a.ErrorIs(err, poker.ErrMissingCard)
	a.Contains(err.Error(), "player 2 card 2")

	invalid := holes("14c,5d", "5s,6c")
	invalid[0][0] = deck.Card{Rank: 20, Suit: deck.Clubs}
	_, err = Resolve(board, invalid)
	a.ErrorIs(err, deck.ErrInvalidCard)
}

func TestResolver_limits(t *testing.T) {
	r := NewResolver()
	r.MaxPlayers = 3

	board := deck.CardsFromString("2h,3d,4c,9s,13h")
	_, err := r.Resolve(board, holes("14c,5d", "5s,6c", "7c,8c", "10d,10h"))
	assert.ErrorIs(t, err, ErrPlayerCount)

	_, err = r.Resolve(board, holes("14c,5d", "5s,6c", "7c,8c"))
	assert.NoError(t, err)
}

func TestResolver_concurrent(t *testing.T) {
	sequential := NewResolver()
	concurrent := NewResolver()
	concurrent.Concurrent = true

	for seed := int64(1); seed <= 200; seed++ {
		d := deck.New()
		d.Shuffle(seed)

		players := 2 + int(seed%7)
		hands := make([]Hole, players)
		for i := range hands {
			hands[i] = Hole{d.Cards[i*2], d.Cards[i*2+1]}
		}
		board := d.Cards[players*2 : players*2+BoardSize]

		o1, err := sequential.Resolve(board, hands)
		require.NoError(t, err)
		o2, err := concurrent.Resolve(board, hands)
		require.NoError(t, err)
		assert.Equal(t, o1, o2, "seed %d", seed)

		// no player outside of the winners beats or ties a winner
		winner := o1.WinningHand()
		for _, r := range o1.Players {
			if o1.IsWinner(r.PlayerIndex) {
				assert.Equal(t, 0, poker.Compare(winner, r.Hand))
			} else {
				assert.True(t, winner.Beats(r.Hand))
			}
		}
	}

	invalid := holes("14c,5d", "5s,6c")
	invalid[1][0] = deck.Card{}
	_, err := concurrent.Resolve(deck.CardsFromString("2h,3d,4c,9s,13h"), invalid)
	assert.ErrorIs(t, err, poker.ErrMissingCard)
}

func TestResolve_snapshot(t *testing.T) {
	board := deck.CardsFromString("2h,7d,9c,11s,13h")
	outcome, err := Resolve(board, holes("14c,14d", "13c,2s", "10h,8d"))
	require.NoError(t, err)

	snapshot.ValidateSnapshot(t, outcome, 0)
}

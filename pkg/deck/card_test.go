package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, Rank(11), Jack)
	assert.Equal(t, Rank(12), Queen)
	assert.Equal(t, Rank(13), King)
	assert.Equal(t, Rank(14), Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", Card{Rank: 2, Suit: Hearts}.String())
	assert.Equal(t, "J♣", Card{Rank: Jack, Suit: Clubs}.String())
	assert.Equal(t, "Q♢", Card{Rank: Queen, Suit: Diamonds}.String())
	assert.Equal(t, "K♠", Card{Rank: King, Suit: Spades}.String())
	assert.Equal(t, "10♠", Card{Rank: Ten, Suit: Spades}.String())
	assert.Equal(t, "A♠", Card{Rank: Ace, Suit: Spades}.String())
}

func TestRank_Names(t *testing.T) {
	a := assert.New(t)
	a.Equal("King", King.Name())
	a.Equal("Kings", King.Plural())
	a.Equal("Sixes", Six.Plural())
	a.Equal("Twos", Two.Plural())
	a.Equal("A", Ace.Symbol())
	a.Equal("10", Ten.Symbol())

	a.PanicsWithValue("unknown rank: 1", func() {
		_ = Rank(1).Name()
	})
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("14s").Equal(Card{Rank: Ace, Suit: Spades}))
	a.False(CardFromString("14s").Equal(Card{Rank: Ace, Suit: Hearts}))
	a.False(CardFromString("14s").Equal(Card{Rank: King, Suit: Spades}))
}

func TestNewCard(t *testing.T) {
	card, err := NewCard(Ace, Spades)
	assert.NoError(t, err)
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, card)

	_, err = NewCard(15, Spades)
	assert.ErrorIs(t, err, ErrInvalidCard)

	_, err = NewCard(Ace, "stars")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in     string
		expect Card
	}{
		{"14s", Card{Rank: Ace, Suit: Spades}},
		{"As", Card{Rank: Ace, Suit: Spades}},
		{"kH", Card{Rank: King, Suit: Hearts}},
		{"10d", Card{Rank: Ten, Suit: Diamonds}},
		{"Td", Card{Rank: Ten, Suit: Diamonds}},
		{"2c", Card{Rank: Two, Suit: Clubs}},
		{" 11c ", Card{Rank: Jack, Suit: Clubs}},
	}

	for _, test := range tests {
		card, err := ParseCard(test.in)
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.expect, card, test.in)
		}
	}

	for _, bad := range []string{"", "1c", "15c", "0s", "Ax", "14", "c14", "2cc"} {
		_, err := ParseCard(bad)
		assert.ErrorIs(t, err, ErrInvalidCard, bad)
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("14s,13s,2d")
	require.NoError(t, err)
	assert.Equal(t, "14s,13s,2d", CardsToString(cards))

	cards, err = ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = ParseCards("14s,,2d")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestCardFromString_panics(t *testing.T) {
	assert.Panics(t, func() {
		CardFromString("99z")
	})
}

func TestCard_Position(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, CardFromString("14c").Position())
	a.Equal(1, CardFromString("14s").Position())
	a.Equal(2, CardFromString("14h").Position())
	a.Equal(3, CardFromString("14d").Position())
	a.Equal(4, CardFromString("13c").Position())
	a.Equal(51, CardFromString("2d").Position())

	for pos := 0; pos < 52; pos++ {
		card, err := CardFromPosition(pos)
		a.NoError(err)
		a.Equal(pos, card.Position())
	}

	_, err := CardFromPosition(52)
	a.ErrorIs(err, ErrInvalidCard)
	_, err = CardFromPosition(-1)
	a.ErrorIs(err, ErrInvalidCard)
}

func TestCard_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal([]Card{CardFromString("14s"), {}, CardFromString("10d")})
	require.NoError(t, err)
	a.Equal(`["14s","","10d"]`, string(b))

	var cards []Card
	require.NoError(t, json.Unmarshal([]byte(`["As", "", "2c"]`), &cards))
	a.Equal([]Card{{Rank: Ace, Suit: Spades}, {}, {Rank: Two, Suit: Clubs}}, cards)
	a.True(cards[1].IsZero())

	err = json.Unmarshal([]byte(`["1s"]`), &cards)
	a.ErrorIs(err, ErrInvalidCard)

	_, err = json.Marshal(Card{Rank: 1, Suit: Spades})
	a.Error(err)
}

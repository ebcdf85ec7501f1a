package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed or has an out-of-range rank or suit
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
)

// Suits is every suit in deck order
var Suits = []Suit{Clubs, Spades, Hearts, Diamonds}

// Valid returns true if the suit is one of the four standard suits
func (s Suit) Valid() bool {
	return s.index() >= 0
}

func (s Suit) index() int {
	for i, suit := range Suits {
		if s == suit {
			return i
		}
	}

	return -1
}

// Symbol returns the unicode symbol of the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	default:
		panic(fmt.Sprintf("unknown suit: %s", string(s)))
	}
}

// Rank is the rank of a card. Two is the lowest and Ace is the highest.
type Rank int

// ranks
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Valid returns true if the rank is between Two and Ace
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Symbol returns the short form of the rank, i.e., "A", "10", "2"
func (r Rank) Symbol() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

var rankNames = map[Rank]string{
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

// Name returns the English name of the rank, i.e., "King"
func (r Rank) Name() string {
	name, ok := rankNames[r]
	if !ok {
		panic(fmt.Sprintf("unknown rank: %d", r))
	}

	return name
}

// Plural returns the plural English name of the rank, i.e., "Kings", "Sixes"
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}

	return r.Name() + "s"
}

// Card is an individual playing card. The zero value is an empty slot.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard returns a validated card
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidCard, rank)
	}

	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: suit %q", ErrInvalidCard, string(suit))
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// Valid returns true if both the rank and the suit are valid
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Position is the card's place in an unshuffled deck (0-51).
// The deck is ordered by rank from Ace down to Two, and then by suit.
func (c Card) Position() int {
	return int(Ace-c.Rank)*len(Suits) + c.Suit.index()
}

func (c Card) String() string {
	return c.Rank.Symbol() + c.Suit.Symbol()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// IsZero returns true if the card has not been set
func (c Card) IsZero() bool {
	return c == Card{}
}

// MarshalText encodes the card in the same format ParseCard reads, i.e., "14s".
// The zero card encodes as an empty string.
func (c Card) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return []byte{}, nil
	}

	if !c.Valid() {
		return nil, fmt.Errorf("%w: rank %d and suit %q", ErrInvalidCard, c.Rank, string(c.Suit))
	}

	return []byte(CardToString(c)), nil
}

// UnmarshalText parses the card with ParseCard. An empty string is the zero card.
func (c *Card) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*c = Card{}
		return nil
	}

	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// CardFromPosition returns the card at the position of an unshuffled deck
func CardFromPosition(pos int) (Card, error) {
	if pos < 0 || pos >= 52 {
		return Card{}, fmt.Errorf("%w: position %d", ErrInvalidCard, pos)
	}

	n := len(Suits)
	return Card{
		Rank: Ace - Rank(pos/n),
		Suit: Suits[pos%n],
	}, nil
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[tjqka])([cdhs])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 2-14 (or T, J, Q, K, A) and suit in [cdhs]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: could not parse %q", ErrInvalidCard, s)
	}

	var rank Rank
	switch strings.ToUpper(match[1]) {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		r, err := strconv.Atoi(match[1])
		if err != nil {
			return Card{}, fmt.Errorf("%w: could not parse %q: %v", ErrInvalidCard, s, err)
		}

		rank = Rank(r)
	}

	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank out of range in %q", ErrInvalidCard, s)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a comma separated list of cards, i.e., "14s,13s,2d"
func ParseCards(s string) (Hand, error) {
	if strings.TrimSpace(s) == "" {
		return Hand{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make(Hand, len(parts))
	for i, part := range parts {
		card, err := ParseCard(part)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString is like ParseCard, but it panics if the card cannot be parsed.
// Useful for fixtures and tests.
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err.Error())
	}

	return card
}

// CardsFromString is like ParseCards, but it panics if a card cannot be parsed
func CardsFromString(s string) Hand {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err.Error())
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}

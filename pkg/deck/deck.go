package deck

import (
	"errors"

	"holdem-analyzer/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
	seed  int64
	rng   rng.Generator
}

// New returns a new deck of cards ordered by position.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.Cards = Standard()
	return d
}

// NewWithout returns an unshuffled deck that excludes the provided cards
func NewWithout(exclude ...Card) *Deck {
	used := make(map[Card]bool, len(exclude))
	for _, card := range exclude {
		used[card] = true
	}

	d := New()
	cards := make([]Card, 0, len(d.Cards))
	for _, card := range d.Cards {
		if !used[card] {
			cards = append(cards, card)
		}
	}

	d.Cards = cards
	return d
}

// Standard returns the 52 cards of a standard deck, ordered by position
func Standard() []Card {
	cards := make([]Card, 0, 52)
	for rank := Ace; rank >= Two; rank-- {
		for _, suit := range Suits {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rng.Seeded(seed)
}

// Shuffle will shuffle the remaining cards.
// A seed of 0 shuffles with a cryptographically secure generator. Any other seed is reproducible.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	if seed == 0 {
		d.seed = 0
		d.rng = rng.Crypto{}
	} else {
		d.SetSeed(seed)
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

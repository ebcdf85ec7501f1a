// Package table holds the cards chosen so far for a single calculation: five
// board slots and two hole card slots per player. An empty slot holds the zero card.
package table

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-analyzer/pkg/deck"
	"holdem-analyzer/pkg/poker"
	"holdem-analyzer/pkg/poker/showdown"
)

// Table is the board and the hands of every player
type Table struct {
	Board      [showdown.BoardSize]deck.Card `json:"board"`
	Hands      []showdown.Hole               `json:"hands"`
	minPlayers int
	maxPlayers int
}

// New returns an empty table that allows the default number of players
func New(players int) (*Table, error) {
	return NewWithLimits(players, showdown.DefaultMinPlayers, showdown.DefaultMaxPlayers)
}

// NewWithLimits returns an empty table with the number of players bound to min-max
func NewWithLimits(players, min, max int) (*Table, error) {
	t := &Table{
		minPlayers: min,
		maxPlayers: max,
	}

	if _, err := t.SetPlayers(players); err != nil {
		return nil, err
	}

	return t, nil
}

// FromCards builds a table from a board and hands where the zero card marks an empty slot.
// The board may have fewer than five cards and hands fewer than two; the rest are empty.
func FromCards(board []deck.Card, hands [][]deck.Card, min, max int) (*Table, error) {
	if len(board) > showdown.BoardSize {
		return nil, UserError(fmt.Sprintf("the board has %d slots, got %d cards", showdown.BoardSize, len(board)))
	}

	t, err := NewWithLimits(len(hands), min, max)
	if err != nil {
		return nil, err
	}

	for i, card := range board {
		if card.IsZero() {
			continue
		}

		if err := t.SetBoardCard(i, card); err != nil {
			return nil, err
		}
	}

	for player, hand := range hands {
		if len(hand) > len(showdown.Hole{}) {
			return nil, UserError(fmt.Sprintf("player %d can only hold 2 cards, got %d", player+1, len(hand)))
		}

		for i, card := range hand {
			if card.IsZero() {
				continue
			}

			if err := t.SetHoleCard(player, i, card); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// SetPlayers resizes the table. Cards held by removed players are returned.
func (t *Table) SetPlayers(players int) ([]deck.Card, error) {
	if players < t.minPlayers || players > t.maxPlayers {
		return nil, playerCountError(players, t.minPlayers, t.maxPlayers)
	}

	var dropped []deck.Card
	if players < len(t.Hands) {
		for _, hole := range t.Hands[players:] {
			for _, card := range hole {
				if !card.IsZero() {
					dropped = append(dropped, card)
				}
			}
		}

		t.Hands = t.Hands[:players:players]
		return dropped, nil
	}

	for len(t.Hands) < players {
		t.Hands = append(t.Hands, showdown.Hole{})
	}

	return dropped, nil
}

// SetBoardCard places a card on the board
func (t *Table) SetBoardCard(slot int, card deck.Card) error {
	if slot < 0 || slot >= len(t.Board) {
		return ErrInvalidSlot
	}

	return t.setCard(&t.Board[slot], card)
}

// SetHoleCard places a card in a player's hand
func (t *Table) SetHoleCard(player, slot int, card deck.Card) error {
	if player < 0 || player >= len(t.Hands) || slot < 0 || slot >= len(t.Hands[player]) {
		return ErrInvalidSlot
	}

	return t.setCard(&t.Hands[player][slot], card)
}

func (t *Table) setCard(slot *deck.Card, card deck.Card) error {
	if !card.Valid() {
		return fmt.Errorf("%w: rank %d and suit %q", deck.ErrInvalidCard, card.Rank, string(card.Suit))
	}

	if *slot == card {
		return nil
	}

	if t.IsUsed(card) {
		return cardInUseError(card)
	}

	*slot = card
	return nil
}

// ClearBoardCard empties a board slot and returns the card it held
func (t *Table) ClearBoardCard(slot int) (deck.Card, error) {
	if slot < 0 || slot >= len(t.Board) {
		return deck.Card{}, ErrInvalidSlot
	}

	card := t.Board[slot]
	t.Board[slot] = deck.Card{}
	return card, nil
}

// ClearHoleCard empties a player's hole card slot and returns the card it held
func (t *Table) ClearHoleCard(player, slot int) (deck.Card, error) {
	if player < 0 || player >= len(t.Hands) || slot < 0 || slot >= len(t.Hands[player]) {
		return deck.Card{}, ErrInvalidSlot
	}

	card := t.Hands[player][slot]
	t.Hands[player][slot] = deck.Card{}
	return card, nil
}

// Reset empties every slot but keeps the number of players
func (t *Table) Reset() {
	t.Board = [showdown.BoardSize]deck.Card{}
	for i := range t.Hands {
		t.Hands[i] = showdown.Hole{}
	}
}

// UsedCards returns every card on the table, board first
func (t *Table) UsedCards() deck.Hand {
	used := make(deck.Hand, 0, len(t.Board)+len(t.Hands)*2)
	for _, card := range t.Board {
		if !card.IsZero() {
			used.AddCard(card)
		}
	}

	for _, hole := range t.Hands {
		for _, card := range hole {
			if !card.IsZero() {
				used.AddCard(card)
			}
		}
	}

	return used
}

// IsUsed returns true if the card already sits in one of the slots
func (t *Table) IsUsed(card deck.Card) bool {
	return t.UsedCards().HasCard(card)
}

// AvailableCards returns the cards that can still be chosen, in deck order
func (t *Table) AvailableCards() []deck.Card {
	return deck.NewWithout(t.UsedCards()...).Cards
}

// EmptySlots returns the number of slots that don't hold a card
func (t *Table) EmptySlots() int {
	return len(t.Board) + len(t.Hands)*2 - len(t.UsedCards())
}

// Validate returns ErrIncompleteTable unless every slot holds a card
func (t *Table) Validate() error {
	if t.EmptySlots() > 0 {
		return ErrIncompleteTable
	}

	return nil
}

// Deal fills every empty slot from a shuffled deck of the unused cards.
// A seed of 0 uses a cryptographically secure shuffle.
func (t *Table) Deal(seed int64) error {
	if seed < 0 {
		return UserError("seed cannot be negative")
	}

	d := deck.NewWithout(t.UsedCards()...)
	d.Shuffle(seed)

	draw := func(slot *deck.Card) error {
		if !slot.IsZero() {
			return nil
		}

		card, err := d.Draw()
		if err != nil {
			return err
		}

		*slot = card
		return nil
	}

	for i := range t.Hands {
		for j := range t.Hands[i] {
			if err := draw(&t.Hands[i][j]); err != nil {
				return err
			}
		}
	}

	for i := range t.Board {
		if err := draw(&t.Board[i]); err != nil {
			return err
		}
	}

	return nil
}

// PlayerSummary is a single player's hand in a calculation
type PlayerSummary struct {
	Player   int                `json:"player"`
	Winner   bool               `json:"winner"`
	Category poker.HandCategory `json:"category"`
	Label    string             `json:"label"`
	Top5     [5]deck.Card       `json:"top5"`
}

// Calculation is the result of calculating a complete table
type Calculation struct {
	ID       string             `json:"id"`
	WhoWon   string             `json:"whoWon"`
	Winners  []int              `json:"winners"`
	Share    float64            `json:"share"`
	Category poker.HandCategory `json:"category"`
	Label    string             `json:"label"`
	Top5     [5]deck.Card       `json:"top5"`
	Tiers    [][]int            `json:"tiers"`
	Players  []PlayerSummary    `json:"players"`
	Outcome  *showdown.Outcome  `json:"-"`
}

// Calculate resolves the winner(s) of a complete table.
// Player numbers in the calculation are 1-based.
func (t *Table) Calculate(r *showdown.Resolver) (*Calculation, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	outcome, err := r.Resolve(t.Board[:], t.Hands)
	if err != nil {
		return nil, err
	}

	c := &Calculation{
		ID:       uuid.New().String(),
		WhoWon:   outcome.WhoWon(),
		Winners:  make([]int, len(outcome.Winners)),
		Share:    outcome.Share(),
		Category: outcome.Category,
		Label:    outcome.Label(),
		Top5:     outcome.Top5,
		Tiers:    make([][]int, len(outcome.Tiers)),
		Players:  make([]PlayerSummary, len(outcome.Players)),
		Outcome:  outcome,
	}

	for i, w := range outcome.Winners {
		c.Winners[i] = w + 1
	}

	for i, tier := range outcome.Tiers {
		c.Tiers[i] = make([]int, len(tier))
		for j, p := range tier {
			c.Tiers[i][j] = p + 1
		}
	}

	for i, result := range outcome.Players {
		c.Players[i] = PlayerSummary{
			Player:   result.PlayerIndex + 1,
			Winner:   outcome.IsWinner(result.PlayerIndex),
			Category: result.Hand.Category,
			Label:    result.Hand.Label(),
			Top5:     result.Hand.Top5,
		}
	}

	logrus.WithFields(logrus.Fields{
		"id":     c.ID,
		"whoWon": c.WhoWon,
	}).Debug("calculated table")

	return c, nil
}

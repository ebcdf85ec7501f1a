package poker

import (
	"errors"
	"fmt"

	"holdem-analyzer/pkg/deck"
)

// CardsPerHand is the number of cards a hold'em player picks a hand from: two hole cards and a five card board
const CardsPerHand = 7

// ErrWrongCardCount is returned when Evaluate is not given exactly seven cards
var ErrWrongCardCount = errors.New("wrong number of cards")

// ErrDuplicateCard is returned when the same card appears twice
var ErrDuplicateCard = errors.New("duplicate card")

// ErrMissingCard is returned when a card slot holds the zero value
var ErrMissingCard = errors.New("missing card")

// EvaluatedHand is the best five card hand a player can make.
// Top5 is ordered most significant card first for tie-breaking.
type EvaluatedHand struct {
	Category HandCategory `json:"category"`
	Top5     [5]deck.Card `json:"top5"`
}

// Evaluate classifies the best five card hand out of exactly seven distinct cards
func Evaluate(cards []deck.Card) (EvaluatedHand, error) {
	if err := validateCards(cards); err != nil {
		return EvaluatedHand{}, err
	}

	return newHandAnalyzer(cards).evaluate(), nil
}

func validateCards(cards []deck.Card) error {
	if len(cards) != CardsPerHand {
		return fmt.Errorf("%w: expected %d, got %d", ErrWrongCardCount, CardsPerHand, len(cards))
	}

	seen := make(map[deck.Card]bool, len(cards))
	for i, card := range cards {
		if card == (deck.Card{}) {
			return fmt.Errorf("%w: card %d", ErrMissingCard, i+1)
		}

		if !card.Valid() {
			return fmt.Errorf("%w: card %d has rank %d and suit %q", deck.ErrInvalidCard, i+1, card.Rank, string(card.Suit))
		}

		if seen[card] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}

		seen[card] = true
	}

	return nil
}

// Ranks returns the rank of each card in Top5
func (e EvaluatedHand) Ranks() [5]deck.Rank {
	var ranks [5]deck.Rank
	for i, card := range e.Top5 {
		ranks[i] = card.Rank
	}

	return ranks
}

// Cards returns Top5 as a hand
func (e EvaluatedHand) Cards() deck.Hand {
	return deck.Hand(e.Top5[:]).Clone()
}

// Strength packs the category and the tie-break ranks into a single number.
// A higher strength is a better hand and equal strengths are a tie.
func (e EvaluatedHand) Strength() int {
	strength := int(HighCard-e.Category) + 1
	for _, rank := range e.Ranks() {
		strength = strength*15 + int(rank)
	}

	return strength
}

// Compare returns a positive number if a beats b, a negative number if b beats a,
// and zero if the hands are of equal strength. Suits never break a tie.
func Compare(a, b EvaluatedHand) int {
	if a.Category != b.Category {
		if a.Category.Beats(b.Category) {
			return 1
		}

		return -1
	}

	aRanks, bRanks := a.Ranks(), b.Ranks()
	for i := range aRanks {
		if aRanks[i] != bRanks[i] {
			if aRanks[i] > bRanks[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}

// Beats returns true if the hand is strictly stronger than other
func (e EvaluatedHand) Beats(other EvaluatedHand) bool {
	return Compare(e, other) > 0
}

// Label returns a description of the hand, i.e., "Full House, Kings Full Of Twos"
func (e EvaluatedHand) Label() string {
	high := e.Top5[0].Rank

	switch e.Category {
	case RoyalFlush:
		return e.Category.String()
	case StraightFlush, Flush, Straight, HighCard:
		return fmt.Sprintf("%s, %s High", e.Category, high.Name())
	case FourOfAKind, ThreeOfAKind, Pair:
		return fmt.Sprintf("%s, %s", e.Category, high.Plural())
	case FullHouse:
		return fmt.Sprintf("%s, %s Full Of %s", e.Category, high.Plural(), e.Top5[3].Rank.Plural())
	case TwoPair:
		return fmt.Sprintf("%s, %s And %s", e.Category, high.Plural(), e.Top5[2].Rank.Plural())
	default:
		panic(fmt.Sprintf("unknown hand: %d", e.Category))
	}
}

func (e EvaluatedHand) String() string {
	return fmt.Sprintf("%s (%s)", e.Label(), deck.CardsToString(e.Top5[:]))
}

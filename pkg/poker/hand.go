package poker

import "fmt"

// HandCategory is a poker hand category, i.e., royal flush.
// A lower value is a stronger hand.
type HandCategory int

// Constants for hand categories, strongest first
const (
	RoyalFlush HandCategory = iota + 1
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard
)

// Categories lists every category from strongest to weakest
var Categories = []HandCategory{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	Pair,
	HighCard,
}

// Valid returns true if the category is one of the ten known categories
func (h HandCategory) Valid() bool {
	return h >= RoyalFlush && h <= HighCard
}

// Beats returns true if h is a stronger category than other
func (h HandCategory) Beats(other HandCategory) bool {
	return h < other
}

// String returns the string representation of a hand category
func (h HandCategory) String() string {
	switch h {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four Of A Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three Of A Kind"
	case TwoPair:
		return "Two Pair"
	case Pair:
		return "Pair"
	case HighCard:
		return "High Card"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

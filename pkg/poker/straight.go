package poker

import "holdem-analyzer/pkg/deck"

// wheel is the ace-low straight in tie-break order, the five plays high
var wheel = []deck.Rank{deck.Five, deck.Four, deck.Three, deck.Two, deck.Ace}

// used to keep track of the straight progress
type straightTracker struct {
	streak deck.Hand
}

func (s *straightTracker) resetWithCard(card deck.Card) {
	s.streak = deck.Hand{card}
}

// add feeds the next card to the tracker. Cards must be fed sorted by rank, high to low.
// Returns true as soon as the streak holds a full straight.
func (s *straightTracker) add(card deck.Card) bool {
	lastCard, ok := s.streak.LastCard()
	if !ok {
		s.resetWithCard(card)
		return false
	}

	switch lastCard.Rank - card.Rank {
	case 0:
		// same rank, the card already in the streak keeps its spot
	case 1:
		s.streak.AddCard(card)
	default:
		s.resetWithCard(card)
	}

	return len(s.streak) >= handSize
}

// findStraight returns the highest straight that can be made from cards sorted high to low.
// The ace only plays low through the explicit wheel check.
func findStraight(cards deck.Hand) (deck.Hand, bool) {
	st := straightTracker{}
	for _, card := range cards {
		if st.add(card) {
			return st.streak.Clone(), true
		}
	}

	return findWheel(cards)
}

func findWheel(cards deck.Hand) (deck.Hand, bool) {
	straight := make(deck.Hand, 0, handSize)
	for _, rank := range wheel {
		found := false
		for _, card := range cards {
			if card.Rank == rank {
				straight.AddCard(card)
				found = true
				break
			}
		}

		if !found {
			return nil, false
		}
	}

	return straight, true
}

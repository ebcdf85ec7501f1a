package poker

import (
	"sort"

	"holdem-analyzer/pkg/deck"
)

const handSize = 5

// handAnalyzer classifies a set of cards. The cards are sorted once, high to low,
// and grouped by rank and by suit; every detector reads from those groups.
type handAnalyzer struct {
	cards deck.Hand
	ranks [deck.Ace + 1]deck.Hand
	suits map[deck.Suit]deck.Hand
}

func newHandAnalyzer(cards []deck.Card) *handAnalyzer {
	// clone to prevent modifying original
	sorted := deck.Hand(cards).Clone()
	sort.Sort(sorted)

	h := &handAnalyzer{
		cards: sorted,
		suits: make(map[deck.Suit]deck.Hand, len(deck.Suits)),
	}

	for _, card := range sorted {
		h.ranks[card.Rank] = append(h.ranks[card.Rank], card)
		h.suits[card.Suit] = append(h.suits[card.Suit], card)
	}

	return h
}

// evaluate tries each category from strongest to weakest and stops at the first match
func (h *handAnalyzer) evaluate() EvaluatedHand {
	var category HandCategory
	var top5 deck.Hand
	var ok bool

	if top5, ok = h.getRoyalFlush(); ok {
		category = RoyalFlush
	} else if top5, ok = h.getStraightFlush(); ok {
		category = StraightFlush
	} else if top5, ok = h.getFourOfAKind(); ok {
		category = FourOfAKind
	} else if top5, ok = h.getFullHouse(); ok {
		category = FullHouse
	} else if top5, ok = h.getFlush(); ok {
		category = Flush
	} else if top5, ok = h.getStraight(); ok {
		category = Straight
	} else if top5, ok = h.getThreeOfAKind(); ok {
		category = ThreeOfAKind
	} else if top5, ok = h.getTwoPair(); ok {
		category = TwoPair
	} else if top5, ok = h.getPair(); ok {
		category = Pair
	} else {
		top5 = h.getHighCard()
		category = HighCard
	}

	e := EvaluatedHand{Category: category}
	copy(e.Top5[:], top5)
	return e
}

// groups returns every rank holding at least n cards, highest rank first
func (h *handAnalyzer) groups(n int, exclude ...deck.Rank) []deck.Rank {
	var ranks []deck.Rank
	for rank := deck.Ace; rank >= deck.Two; rank-- {
		if len(h.ranks[rank]) >= n && !containsRank(exclude, rank) {
			ranks = append(ranks, rank)
		}
	}

	return ranks
}

// kickers returns the n highest cards that aren't one of the excluded ranks
func (h *handAnalyzer) kickers(n int, exclude ...deck.Rank) deck.Hand {
	kickers := make(deck.Hand, 0, n)
	for _, card := range h.cards {
		if len(kickers) == n {
			break
		}

		if !containsRank(exclude, card.Rank) {
			kickers.AddCard(card)
		}
	}

	return kickers
}

func containsRank(ranks []deck.Rank, rank deck.Rank) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}

	return false
}

// flushCards returns every card of the flush suit, high to low
func (h *handAnalyzer) flushCards() (deck.Hand, bool) {
	var best deck.Hand
	for _, suit := range deck.Suits {
		cards := h.suits[suit]
		if len(cards) < handSize {
			continue
		}

		// more than one flush suit is only possible with 10+ cards
		if best == nil || higherRanks(cards[:handSize], best[:handSize]) {
			best = cards
		}
	}

	return best, best != nil
}

func higherRanks(a, b deck.Hand) bool {
	for i := range a {
		if a[i].Rank != b[i].Rank {
			return a[i].Rank > b[i].Rank
		}
	}

	return false
}

// getRoyalFlush returns the royal flush, if possible
func (h *handAnalyzer) getRoyalFlush() (deck.Hand, bool) {
	sf, ok := h.getStraightFlush()
	if !ok || sf[0].Rank != deck.Ace {
		return nil, false
	}

	return sf, true
}

// getStraightFlush returns the best straight flush, if possible
func (h *handAnalyzer) getStraightFlush() (deck.Hand, bool) {
	var best deck.Hand
	for _, suit := range deck.Suits {
		cards := h.suits[suit]
		if len(cards) < handSize {
			continue
		}

		if sf, ok := findStraight(cards); ok && (best == nil || sf[0].Rank > best[0].Rank) {
			best = sf
		}
	}

	return best, best != nil
}

// getFourOfAKind returns the quads and the highest remaining card, if possible
func (h *handAnalyzer) getFourOfAKind() (deck.Hand, bool) {
	quads := h.groups(4)
	if len(quads) == 0 {
		return nil, false
	}

	top5 := h.ranks[quads[0]][:4].Clone()
	return append(top5, h.kickers(1, quads[0])...), true
}

// getFullHouse returns the best trips followed by the best pair, if possible.
// A second set of trips can supply the pair.
func (h *handAnalyzer) getFullHouse() (deck.Hand, bool) {
	trips := h.groups(3)
	if len(trips) == 0 {
		return nil, false
	}

	pairs := h.groups(2, trips[0])
	if len(pairs) == 0 {
		return nil, false
	}

	top5 := h.ranks[trips[0]][:3].Clone()
	return append(top5, h.ranks[pairs[0]][:2]...), true
}

// getFlush returns the five highest cards of the flush suit, if possible
func (h *handAnalyzer) getFlush() (deck.Hand, bool) {
	cards, ok := h.flushCards()
	if !ok {
		return nil, false
	}

	return cards[:handSize].Clone(), true
}

// getStraight returns the best straight, if possible
func (h *handAnalyzer) getStraight() (deck.Hand, bool) {
	return findStraight(h.cards)
}

// getThreeOfAKind returns the best trips and the two highest remaining cards, if possible
func (h *handAnalyzer) getThreeOfAKind() (deck.Hand, bool) {
	trips := h.groups(3)
	if len(trips) == 0 {
		return nil, false
	}

	top5 := h.ranks[trips[0]][:3].Clone()
	return append(top5, h.kickers(2, trips[0])...), true
}

// getTwoPair returns the two best pairs and the highest remaining card, if possible
func (h *handAnalyzer) getTwoPair() (deck.Hand, bool) {
	pairs := h.groups(2)
	if len(pairs) < 2 {
		return nil, false
	}

	top5 := h.ranks[pairs[0]][:2].Clone()
	top5 = append(top5, h.ranks[pairs[1]][:2]...)
	return append(top5, h.kickers(1, pairs[0], pairs[1])...), true
}

// getPair returns the best pair and the three highest remaining cards, if possible
func (h *handAnalyzer) getPair() (deck.Hand, bool) {
	pairs := h.groups(2)
	if len(pairs) == 0 {
		return nil, false
	}

	top5 := h.ranks[pairs[0]][:2].Clone()
	return append(top5, h.kickers(3, pairs[0])...), true
}

// getHighCard returns the five highest cards
func (h *handAnalyzer) getHighCard() deck.Hand {
	return h.cards[:handSize].Clone()
}

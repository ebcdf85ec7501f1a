package showdown

import (
	"sort"
)

type tier struct {
	strength int
	results  []PlayerResult
}

// winManager groups players into tiers of equal hand strength
type winManager map[int]*tier

func newWinManager() winManager {
	return make(winManager)
}

func (w winManager) addResult(r PlayerResult) {
	strength := r.Hand.Strength()
	t, ok := w[strength]
	if !ok {
		t = &tier{
			strength: strength,
			results:  make([]PlayerResult, 0, 1),
		}
	}

	t.results = append(t.results, r)
	w[strength] = t
}

// getSortedTiers returns the tiers from the strongest hand to the weakest.
// Within a tier, players keep the order they were added in.
func (w winManager) getSortedTiers() [][]PlayerResult {
	tiers := make([]*tier, 0, len(w))
	for _, tier := range w {
		tiers = append(tiers, tier)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	tieredResults := make([][]PlayerResult, len(tiers))
	for i, t := range tiers {
		tieredResults[i] = t.results
	}

	return tieredResults
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

package showdown

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-analyzer/pkg/deck"
	"holdem-analyzer/pkg/poker"
)

func TestWinManager(t *testing.T) {
	a := assert.New(t)

	result := func(id int, cards string) PlayerResult {
		hand, err := poker.Evaluate(deck.CardsFromString(cards))
		if err != nil {
			t.Fatal(err)
		}

		return PlayerResult{PlayerIndex: id, Hand: hand}
	}

	wm := newWinManager()
	wm.addResult(result(0, "2c,3d,7h,9s,11c,13d,5h"))
	wm.addResult(result(1, "2d,2h,7h,9s,11c,13d,5h"))
	wm.addResult(result(2, "14d,14h,7h,9s,11c,13d,5h"))
	wm.addResult(result(3, "2s,2c,7h,9s,11c,13d,5h"))
	wm.addResult(result(4, "14s,14c,7h,9s,11c,13d,5h"))

	a.Equal("2-4|1-3|0", tiersToString(wm.getSortedTiers()))
}

func tiersToString(tiers [][]PlayerResult) string {
	s := make([]string, len(tiers))
	for i, results := range tiers {
		ids := make([]string, len(results))
		for j, r := range results {
			ids[j] = strconv.Itoa(r.PlayerIndex)
		}

		s[i] = strings.Join(ids, "-")
	}

	return strings.Join(s, "|")
}

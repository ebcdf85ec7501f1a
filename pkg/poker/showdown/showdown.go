// Package showdown compares every player's best hand against the board and
// decides who wins the pot, including split pots.
package showdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"holdem-analyzer/pkg/deck"
	"holdem-analyzer/pkg/poker"
)

// BoardSize is the number of community cards
const BoardSize = 5

// player limits
const (
	DefaultMinPlayers = 2
	DefaultMaxPlayers = 8
)

// ErrBoardSize is returned when the board doesn't hold exactly five cards
var ErrBoardSize = errors.New("board must have exactly five cards")

// ErrPlayerCount is returned when the number of players is outside of the allowed range
var ErrPlayerCount = errors.New("invalid number of players")

// Hole is a player's two private cards
type Hole [2]deck.Card

// PlayerResult is the best hand of a single player
type PlayerResult struct {
	PlayerIndex int                 `json:"playerIndex"`
	Hand        poker.EvaluatedHand `json:"hand"`
}

// Outcome is the result of a showdown. Winners holds more than one
// player index when the pot is split.
type Outcome struct {
	Winners  []int              `json:"winners"`
	Category poker.HandCategory `json:"category"`
	Top5     [5]deck.Card       `json:"top5"`
	Players  []PlayerResult     `json:"players"`
	Tiers    [][]int            `json:"tiers"`
}

// Resolver evaluates every player's hand and ranks them
type Resolver struct {
	// Concurrent evaluates each player's hand in its own goroutine
	Concurrent bool
	MinPlayers int
	MaxPlayers int
}

// NewResolver returns a sequential resolver that allows 2-8 players
func NewResolver() *Resolver {
	return &Resolver{
		MinPlayers: DefaultMinPlayers,
		MaxPlayers: DefaultMaxPlayers,
	}
}

// Resolve determines the winner(s) with the default resolver
func Resolve(board []deck.Card, hands []Hole) (*Outcome, error) {
	return NewResolver().Resolve(board, hands)
}

// Resolve evaluates each player's seven cards and returns the winning player(s).
// Either a complete outcome or an error is returned, never a partial result.
func (r *Resolver) Resolve(board []deck.Card, hands []Hole) (*Outcome, error) {
	if err := r.validate(board, hands); err != nil {
		return nil, err
	}

	results, err := r.evaluateAll(board, hands)
	if err != nil {
		return nil, err
	}

	wm := newWinManager()
	for _, result := range results {
		wm.addResult(result)
	}

	tiers := wm.getSortedTiers()
	outcome := &Outcome{
		Category: tiers[0][0].Hand.Category,
		Top5:     tiers[0][0].Hand.Top5,
		Players:  make([]PlayerResult, 0, len(results)),
		Tiers:    make([][]int, len(tiers)),
	}

	for i, tier := range tiers {
		ids := make([]int, len(tier))
		for j, result := range tier {
			ids[j] = result.PlayerIndex
			outcome.Players = append(outcome.Players, result)
		}

		outcome.Tiers[i] = ids
	}

	outcome.Winners = outcome.Tiers[0]

	logrus.WithFields(logrus.Fields{
		"players": len(hands),
		"winners": outcome.Winners,
		"hand":    outcome.Label(),
	}).Debug("resolved showdown")

	return outcome, nil
}

func (r *Resolver) validate(board []deck.Card, hands []Hole) error {
	if len(board) != BoardSize {
		return fmt.Errorf("%w: got %d", ErrBoardSize, len(board))
	}

	if len(hands) < r.MinPlayers || len(hands) > r.MaxPlayers {
		return fmt.Errorf("%w: %d, must be %d-%d", ErrPlayerCount, len(hands), r.MinPlayers, r.MaxPlayers)
	}

	// a card can only be dealt once across the whole table
	seen := make(map[deck.Card]bool, BoardSize+len(hands)*2)
	check := func(card deck.Card, where string) error {
		if card == (deck.Card{}) {
			return fmt.Errorf("%w: %s", poker.ErrMissingCard, where)
		}

		if !card.Valid() {
			return fmt.Errorf("%w: %s", deck.ErrInvalidCard, where)
		}

		if seen[card] {
			return fmt.Errorf("%w: %s (%s)", poker.ErrDuplicateCard, card, where)
		}

		seen[card] = true
		return nil
	}

	for i, card := range board {
		if err := check(card, fmt.Sprintf("board card %d", i+1)); err != nil {
			return err
		}
	}

	for i, hole := range hands {
		for j, card := range hole {
			if err := check(card, fmt.Sprintf("player %d card %d", i+1, j+1)); err != nil {
				return err
			}
		}
	}

	return nil
}

func sevenCards(board []deck.Card, hole Hole) []deck.Card {
	cards := make([]deck.Card, 0, poker.CardsPerHand)
	cards = append(cards, hole[0], hole[1])
	return append(cards, board...)
}

func (r *Resolver) evaluateAll(board []deck.Card, hands []Hole) ([]PlayerResult, error) {
	results := make([]PlayerResult, len(hands))

	if !r.Concurrent {
		for i, hole := range hands {
			hand, err := poker.Evaluate(sevenCards(board, hole))
			if err != nil {
				return nil, fmt.Errorf("player %d: %w", i+1, err)
			}

			results[i] = PlayerResult{PlayerIndex: i, Hand: hand}
		}

		return results, nil
	}

	// each goroutine owns a single slot of results
	var g errgroup.Group
	for i, hole := range hands {
		i, hole := i, hole
		g.Go(func() error {
			hand, err := poker.Evaluate(sevenCards(board, hole))
			if err != nil {
				return fmt.Errorf("player %d: %w", i+1, err)
			}

			results[i] = PlayerResult{PlayerIndex: i, Hand: hand}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// IsSplit returns true if more than one player shares the pot
func (o *Outcome) IsSplit() bool {
	return len(o.Winners) > 1
}

// Share is the fraction of the pot each winner receives
func (o *Outcome) Share() float64 {
	return 1 / float64(len(o.Winners))
}

// IsWinner returns true if the player won or split the pot
func (o *Outcome) IsWinner(playerIndex int) bool {
	for _, w := range o.Winners {
		if w == playerIndex {
			return true
		}
	}

	return false
}

// Result returns the evaluated hand of the player
func (o *Outcome) Result(playerIndex int) (PlayerResult, bool) {
	for _, r := range o.Players {
		if r.PlayerIndex == playerIndex {
			return r, true
		}
	}

	return PlayerResult{}, false
}

// WinningHand returns the winning hand. In a split pot every winner holds an equal hand.
func (o *Outcome) WinningHand() poker.EvaluatedHand {
	return poker.EvaluatedHand{Category: o.Category, Top5: o.Top5}
}

// Label describes the winning hand, i.e., "Full House, Kings Full Of Twos"
func (o *Outcome) Label() string {
	return o.WinningHand().Label()
}

// WhoWon announces the winner(s) with 1-based player numbers, i.e., "Player 2 wins!"
func (o *Outcome) WhoWon() string {
	if !o.IsSplit() {
		return fmt.Sprintf("Player %d wins!", o.Winners[0]+1)
	}

	players := make([]string, len(o.Winners))
	for i, w := range o.Winners {
		players[i] = fmt.Sprintf("%d", w+1)
	}

	last := len(players) - 1
	return fmt.Sprintf("Players %s and %s have tied!", strings.Join(players[:last], ", "), players[last])
}

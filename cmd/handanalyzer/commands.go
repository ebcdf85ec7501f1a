package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"holdem-analyzer/pkg/deck"
	"holdem-analyzer/pkg/poker"
	"holdem-analyzer/pkg/poker/showdown"
	"holdem-analyzer/pkg/table"
)

// CalcCmd resolves a table given on the command line
type CalcCmd struct {
	Board string   `short:"b" required:"" help:"Community cards, comma separated (e.g., '14s,13s,12s,11s,10s')"`
	Hand  []string `short:"p" required:"" sep:"none" help:"Hole cards of one player (e.g., '2h,2d'), repeat for every player"`
	JSON  bool     `help:"Print the calculation as JSON"`
}

// Run calculates the table
func (c *CalcCmd) Run(out io.Writer) error {
	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	hands := make([][]deck.Card, len(c.Hand))
	for i, h := range c.Hand {
		hand, err := deck.ParseCards(h)
		if err != nil {
			return fmt.Errorf("player %d: %w", i+1, err)
		}

		hands[i] = hand
	}

	tbl, err := table.FromCards(board, hands, showdown.DefaultMinPlayers, showdown.DefaultMaxPlayers)
	if err != nil {
		return err
	}

	return calculate(out, tbl, c.JSON)
}

// EvalCmd evaluates seven cards
type EvalCmd struct {
	Cards []string `arg:"" help:"Seven cards (e.g., 14s 13s 12s 11s 10s 2h 2d)"`
}

// Run evaluates the cards
func (e *EvalCmd) Run(out io.Writer) error {
	cards, err := deck.ParseCards(strings.Join(e.Cards, ","))
	if err != nil {
		return err
	}

	hand, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, renderHand(hand))
	return err
}

// DealCmd deals a random table
type DealCmd struct {
	Players int   `short:"n" default:"4" help:"Number of players"`
	Seed    int64 `help:"Shuffle seed for a reproducible deal, 0 is random"`
	JSON    bool  `help:"Print the calculation as JSON"`
}

// Run deals and calculates the table
func (d *DealCmd) Run(out io.Writer) error {
	tbl, err := table.New(d.Players)
	if err != nil {
		return err
	}

	if err := tbl.Deal(d.Seed); err != nil {
		return err
	}

	return calculate(out, tbl, d.JSON)
}

func calculate(out io.Writer, tbl *table.Table, asJSON bool) error {
	r := showdown.NewResolver()
	r.Concurrent = true

	calc, err := tbl.Calculate(r)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(calc)
	}

	_, err = fmt.Fprintln(out, renderCalculation(tbl, calc))
	return err
}

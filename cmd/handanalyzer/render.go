package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"holdem-analyzer/pkg/deck"
	"holdem-analyzer/pkg/poker"
	"holdem-analyzer/pkg/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func renderCards(cards []deck.Card) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return cardStyle.Render(strings.Join(s, " "))
}

func renderHand(hand poker.EvaluatedHand) string {
	return fmt.Sprintf("%s  %s", categoryStyle.Render(hand.Label()), renderCards(hand.Top5[:]))
}

func renderCalculation(tbl *table.Table, calc *table.Calculation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", headerStyle.Render("Board:"), renderCards(tbl.Board[:]))

	for _, p := range calc.Players {
		style := loseStyle
		marker := " "
		if p.Winner {
			style = winStyle
			marker = "*"
		}

		hole := tbl.Hands[p.Player-1]
		fmt.Fprintf(&b, "%s %s  %s  %s  %s\n",
			marker,
			style.Render(fmt.Sprintf("Player %d", p.Player)),
			renderCards(hole[:]),
			categoryStyle.Render(p.Label),
			renderCards(p.Top5[:]),
		)
	}

	b.WriteString("\n")
	b.WriteString(winStyle.Render(calc.WhoWon))
	if len(calc.Winners) > 1 {
		fmt.Fprintf(&b, " (%.1f%% each)", calc.Share*100)
	}

	return b.String()
}

package mux

import (
	"net/http"

	"holdem-analyzer/pkg/deck"
	"holdem-analyzer/pkg/poker"
	"holdem-analyzer/pkg/poker/showdown"
	"holdem-analyzer/pkg/table"
)

type deckCard struct {
	Card     deck.Card `json:"card"`
	Rank     deck.Rank `json:"rank"`
	Suit     deck.Suit `json:"suit"`
	Position int       `json:"position"`
	Label    string    `json:"label"`
}

func (m *Mux) getDeck() http.HandlerFunc {
	cards := deck.Standard()
	payload := make([]deckCard, len(cards))
	for i, card := range cards {
		payload[i] = deckCard{
			Card:     card,
			Rank:     card.Rank,
			Suit:     card.Suit,
			Position: card.Position(),
			Label:    card.String(),
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}

type evaluatePayload struct {
	Cards []deck.Card `json:"cards"`
}

type evaluateResponse struct {
	Category     poker.HandCategory `json:"category"`
	CategoryName string             `json:"categoryName"`
	Label        string             `json:"label"`
	Top5         [5]deck.Card       `json:"top5"`
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload evaluatePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		hand, err := poker.Evaluate(payload.Cards)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, evaluateResponse{
			Category:     hand.Category,
			CategoryName: hand.Category.String(),
			Label:        hand.Label(),
			Top5:         hand.Top5,
		})
	}
}

type tablePayload struct {
	Board []deck.Card   `json:"board"`
	Hands [][]deck.Card `json:"hands"`
	Seed  int64         `json:"seed,omitempty"`
}

func (m *Mux) tableFromPayload(payload tablePayload) (*table.Table, error) {
	return table.FromCards(payload.Board, payload.Hands, m.resolver.MinPlayers, m.resolver.MaxPlayers)
}

func (m *Mux) postCalculate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload tablePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		tbl, err := m.tableFromPayload(payload)
		if err != nil {
			writeError(w, err)
			return
		}

		calc, err := tbl.Calculate(m.resolver)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, calc)
	}
}

type dealResponse struct {
	Board       [showdown.BoardSize]deck.Card `json:"board"`
	Hands       []showdown.Hole               `json:"hands"`
	Calculation *table.Calculation            `json:"calculation"`
}

func (m *Mux) postDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload tablePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		tbl, err := m.tableFromPayload(payload)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := tbl.Deal(payload.Seed); err != nil {
			writeError(w, err)
			return
		}

		calc, err := tbl.Calculate(m.resolver)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, dealResponse{
			Board:       tbl.Board,
			Hands:       tbl.Hands,
			Calculation: calc,
		})
	}
}

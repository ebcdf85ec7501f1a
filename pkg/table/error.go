package table

import (
	"fmt"

	"holdem-analyzer/pkg/deck"
)

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrIncompleteTable is returned when a calculation is requested before every slot holds a card
const ErrIncompleteTable = UserError("make sure all card slots are filled")

// ErrInvalidSlot is returned when a slot does not exist on the table
const ErrInvalidSlot = UserError("invalid card slot")

func cardInUseError(card deck.Card) error {
	return UserError(fmt.Sprintf("%s is already in use", card))
}

func playerCountError(players, min, max int) error {
	return UserError(fmt.Sprintf("a table needs %d to %d players, got %d", min, max, players))
}

package deck

import (
	"errors"
	"fmt"
)

// MoneyCard is a single money card. Cards of equal denomination are interchangeable.
type MoneyCard struct {
	value int
}

// Denominations lists every face value printed on a money card
var Denominations = []int{0, 10, 50, 100, 200, 500}

var ErrInvalidDenomination = errors.New("invalid money denomination")

// NewMoneyCard constructs a money card
func NewMoneyCard(value int) (MoneyCard, error) {
	for _, d := range Denominations {
		if d == value {
			return MoneyCard{value: value}, nil
		}
	}
	return MoneyCard{}, fmt.Errorf("%w: %d", ErrInvalidDenomination, value)
}

// MustMoneyCard is like NewMoneyCard but panics on an invalid denomination.
func MustMoneyCard(value int) MoneyCard {
	c, err := NewMoneyCard(value)
	if err != nil {
		panic(err)
	}
	return c
}

// MoneyCards builds one card per value given
func MoneyCards(values ...int) []MoneyCard {
	cards := make([]MoneyCard, 0, len(values))
	for _, v := range values {
		cards = append(cards, MustMoneyCard(v))
	}
	return cards
}

func (c MoneyCard) Amount() int {
	return c.value
}

func (c MoneyCard) String() string {
	return fmt.Sprintf("%d", c.value)
}

// Sum adds up the face value of the cards
func Sum(cards []MoneyCard) int {
	total := 0
	for _, c := range cards {
		total += c.value
	}
	return total
}

package deck

import (
	"testing"

	utils "github.com/minaorangina/kuhhandel/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalCard(t *testing.T) {
	cases := []struct {
		kind   Kind
		name   string
		points int
	}{
		{Rooster, "Rooster", 10},
		{Goose, "Goose", 40},
		{Cat, "Cat", 90},
		{Dog, "Dog", 160},
		{Sheep, "Sheep", 250},
		{Goat, "Goat", 350},
		{Donkey, "Donkey", 500},
		{Pig, "Pig", 650},
		{Cow, "Cow", 800},
		{Horse, "Horse", 1000},
	}

	for _, c := range cases {
		card, err := NewAnimalCard(c.kind)
		require.NoError(t, err)

		if card.Name() != c.name {
			utils.TableFailureMessage(t, c.name, card.Name(), c.name)
		}
		if card.QuartetValue() != c.points {
			utils.TableFailureMessage(t, c.name, card.QuartetValue(), c.points)
		}
	}

	t.Run("cards of the same kind are equal", func(t *testing.T) {
		a, _ := NewAnimalCard(Cow)
		b, _ := NewAnimalCard(Cow)
		utils.AssertEqual(t, a, b)
	})

	t.Run("out of range kind", func(t *testing.T) {
		_, err := NewAnimalCard(Kind(NumKinds))
		utils.AssertErrorIs(t, err, ErrUnknownKind)
		_, err = NewAnimalCard(Kind(-1))
		utils.AssertErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("parse kind by name", func(t *testing.T) {
		k, err := ParseKind("Donkey")
		require.NoError(t, err)
		utils.AssertEqual(t, k, Donkey)

		_, err = ParseKind("Llama")
		utils.AssertErrorIs(t, err, ErrUnknownKind)
	})
}

func TestMoneyCard(t *testing.T) {
	for _, d := range Denominations {
		c, err := NewMoneyCard(d)
		require.NoError(t, err)
		utils.AssertEqual(t, c.Amount(), d)
	}

	for _, bad := range []int{-10, 5, 20, 1000} {
		_, err := NewMoneyCard(bad)
		utils.AssertErrorIs(t, err, ErrInvalidDenomination)
	}

	assert.Panics(t, func() { MustMoneyCard(15) })
	utils.AssertEqual(t, Sum(MoneyCards(0, 0, 10, 10, 10, 10, 50)), 90)
}

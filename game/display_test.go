package game

import (
	"strings"
	"testing"

	"github.com/minaorangina/kuhhandel/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameString(t *testing.T) {
	g := newTestGame(t, threePlayers())
	text := g.String()

	assert.True(t, strings.HasPrefix(text, "=== Kuhhandel Game ==="))
	assert.Contains(t, text, "Phase: TURN_START")
	assert.Contains(t, text, "Turn: Player 0 (Alice)")
	assert.Contains(t, text, "Deck: 40 cards remaining")
	assert.Contains(t, text, "  [1] Bob: (none)")

	cow, _ := deck.NewAnimalCard(deck.Cow)
	horse, _ := deck.NewAnimalCard(deck.Horse)
	bob, ok := g.Player(1)
	require.True(t, ok)
	bob.AddAnimal(cow)
	bob.AddAnimal(horse)

	assert.Contains(t, g.String(), "  [1] Bob: Cow, Horse")
}

func TestPublicView(t *testing.T) {
	g := newTestGame(t, threePlayers())
	g.DealStartingMoney()

	view := g.PublicView()
	assert.Len(t, view, 3)
	for i, p := range view {
		assert.Equal(t, g.Players()[i].Name(), p.Name)
		assert.Equal(t, 7, p.MoneyCards)
		assert.Empty(t, p.Animals)
	}
}

package game

import (
	"fmt"
	"strings"
)

// String returns a human-readable summary of the game. It is not a stable format.
func (g *Game) String() string {
	current := g.players[g.turn]

	lines := []string{
		"=== Kuhhandel Game ===",
		fmt.Sprintf("Phase: %s", g.Phase()),
		fmt.Sprintf("Turn: Player %d (%s)", g.turn, current.Name()),
		fmt.Sprintf("Deck: %d cards remaining", g.DeckRemaining()),
		"",
		"--- Player Inventories ---",
	}

	for i, p := range g.PublicView() {
		lines = append(lines, fmt.Sprintf("  [%d] %s: %s", i, p.Name, animalList(p)))
	}

	return strings.Join(lines, "\n")
}

func animalList(p PublicPlayer) string {
	if len(p.Animals) == 0 {
		return "(none)"
	}

	names := make([]string, 0, len(p.Animals))
	for _, a := range p.Animals {
		names = append(names, a.Name())
	}
	return strings.Join(names, ", ")
}

package deck

import (
	"testing"

	utils "github.com/minaorangina/kuhhandel/internal"
	"github.com/stretchr/testify/assert"
)

var fullDeckCount = 40

func countKinds(cards []AnimalCard) map[Kind]int {
	counts := map[Kind]int{}
	for _, c := range cards {
		counts[c.Kind()]++
	}
	return counts
}

func drawAll(d *Deck) []AnimalCard {
	drawn := []AnimalCard{}
	for {
		c, ok := d.Draw()
		if !ok {
			return drawn
		}
		drawn = append(drawn, c)
	}
}

func TestDeck(t *testing.T) {
	t.Run("new deck has four of every animal", func(t *testing.T) {
		d := New()
		utils.AssertEqual(t, d.Remaining(), fullDeckCount)

		counts := countKinds(d)
		utils.AssertEqual(t, len(counts), NumKinds)
		for kind, n := range counts {
			assert.Equal(t, CardsPerKind, n, kind.String())
		}
	})

	t.Run("draws every card then reports empty", func(t *testing.T) {
		d := New()
		d.Shuffle(NewRand(7))

		drawn := drawAll(&d)
		utils.AssertEqual(t, len(drawn), fullDeckCount)
		utils.AssertEqual(t, d.Remaining(), 0)
		utils.AssertDeepEqual(t, countKinds(drawn), countKinds(New()))

		for i := 0; i < 3; i++ {
			_, ok := d.Draw()
			assert.False(t, ok)
		}
	})

	t.Run("draw takes from the top", func(t *testing.T) {
		d := New()
		top := d[len(d)-1]

		c, ok := d.Draw()
		utils.AssertTrue(t, ok)
		utils.AssertEqual(t, c, top)
		utils.AssertEqual(t, d.Remaining(), fullDeckCount-1)
	})

	t.Run("shuffle keeps the same cards in a different order", func(t *testing.T) {
		unshuffled, shuffled := New(), New()
		shuffled.Shuffle(NewRand(42))

		assert.NotEqual(t, []AnimalCard(unshuffled), []AnimalCard(shuffled))
		assert.ElementsMatch(t, []AnimalCard(unshuffled), []AnimalCard(shuffled))
	})

	t.Run("same seed gives the same order", func(t *testing.T) {
		a, b := New(), New()
		a.Shuffle(NewRand(99))
		b.Shuffle(NewRand(99))

		utils.AssertDeepEqual(t, a, b)
	})
}

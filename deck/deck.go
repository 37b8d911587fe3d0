package deck

import (
	"math/rand"
	"time"
)

// CardsPerKind is how many copies of each animal are in a full deck
const CardsPerKind = 4

// Deck represents the animal draw pile. The top of the deck is the end of the slice.
type Deck []AnimalCard

// New creates a full, unshuffled deck
func New() Deck {
	cards := make([]AnimalCard, 0, NumKinds*CardsPerKind)
	for _, kind := range Kinds() {
		for i := 0; i < CardsPerKind; i++ {
			cards = append(cards, newAnimalCard(kind))
		}
	}
	return cards
}

// NewRand returns a random source seeded from the clock, or from seed when non-zero
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle shuffles the deck in place
func (d *Deck) Shuffle(rng *rand.Rand) {
	cards := *d
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Draw removes the top card. ok is false once the deck is empty.
func (d *Deck) Draw() (card AnimalCard, ok bool) {
	n := len(*d)
	if n == 0 {
		return AnimalCard{}, false
	}
	card = (*d)[n-1]
	*d = (*d)[:n-1]
	return card, true
}

// Remaining returns the number of cards left to draw
func (d Deck) Remaining() int {
	return len(d)
}

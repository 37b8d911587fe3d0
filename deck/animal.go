package deck

import (
	"errors"
	"fmt"
)

// Kind represents an animal on a card
type Kind int

const (
	Rooster Kind = iota
	Goose
	Cat
	Dog
	Sheep
	Goat
	Donkey
	Pig
	Cow
	Horse
)

// NumKinds is the number of different animals in the game
const NumKinds = 10

var kindNames = []string{"Rooster", "Goose", "Cat", "Dog", "Sheep", "Goat", "Donkey", "Pig", "Cow", "Horse"}

// points awarded for a full set of four
var quartetValues = []int{10, 40, 90, 160, 250, 350, 500, 650, 800, 1000}

var ErrUnknownKind = errors.New("unknown animal kind")

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// QuartetValue returns the points a full set of this animal is worth
func (k Kind) QuartetValue() int {
	return quartetValues[k]
}

func (k Kind) valid() bool {
	return k >= Rooster && k <= Horse
}

// Kinds returns every animal kind, cheapest first
func Kinds() []Kind {
	kinds := make([]Kind, 0, NumKinds)
	for k := Rooster; k <= Horse; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind looks up an animal by its display name
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// AnimalCard is a single animal card. Two cards of the same kind are equal.
type AnimalCard struct {
	kind Kind
}

// NewAnimalCard constructs an animal card
func NewAnimalCard(kind Kind) (AnimalCard, error) {
	if !kind.valid() {
		return AnimalCard{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return AnimalCard{kind: kind}, nil
}

func newAnimalCard(kind Kind) AnimalCard {
	c, err := NewAnimalCard(kind)
	if err != nil {
		panic(err)
	}
	return c
}

func (c AnimalCard) Kind() Kind {
	return c.kind
}

func (c AnimalCard) Name() string {
	return c.kind.String()
}

func (c AnimalCard) QuartetValue() int {
	return c.kind.QuartetValue()
}

func (c AnimalCard) String() string {
	return fmt.Sprintf("%s (%dpts)", c.Name(), c.QuartetValue())
}

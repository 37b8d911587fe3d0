package players

import (
	"errors"
	"fmt"

	"github.com/minaorangina/kuhhandel/deck"
	uuid "github.com/satori/go.uuid"
)

var ErrCardNotHeld = errors.New("money card not held")

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player holds a player's public animals and private money hand.
// A Player is not safe for concurrent use.
type Player struct {
	id      string
	name    string
	animals []deck.AnimalCard
	money   []deck.MoneyCard
}

// NewPlayer constructs a new player with empty collections
func NewPlayer(id, name string) *Player {
	if id == "" {
		id = NewID()
	}
	return &Player{
		id:      id,
		name:    name,
		animals: []deck.AnimalCard{},
		money:   []deck.MoneyCard{},
	}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

// Animals returns a copy of the player's animals, in the order they were won
func (p *Player) Animals() []deck.AnimalCard {
	animals := make([]deck.AnimalCard, len(p.animals))
	copy(animals, p.animals)
	return animals
}

// Money returns a copy of the player's hidden money hand.
// It must only ever be shown to the player who owns it.
func (p *Player) Money() []deck.MoneyCard {
	money := make([]deck.MoneyCard, len(p.money))
	copy(money, p.money)
	return money
}

// AddMoney puts cards into the player's hand
func (p *Player) AddMoney(cards ...deck.MoneyCard) {
	p.money = append(p.money, cards...)
}

// RemoveMoney takes cards out of the player's hand. If any card is not
// held, nothing is removed.
func (p *Player) RemoveMoney(cards ...deck.MoneyCard) error {
	remaining := p.Money()
	for _, c := range cards {
		idx := indexOfMoney(remaining, c)
		if idx < 0 {
			return fmt.Errorf("%w: %s does not hold %s", ErrCardNotHeld, p.name, c)
		}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	p.money = remaining
	return nil
}

// AddAnimal adds a won card to the player's public inventory
func (p *Player) AddAnimal(card deck.AnimalCard) {
	p.animals = append(p.animals, card)
}

// HasAnimal reports whether the player owns at least one card of kind
func (p *Player) HasAnimal(kind deck.Kind) bool {
	return p.CountAnimal(kind) > 0
}

// CountAnimal returns how many cards of kind the player owns
func (p *Player) CountAnimal(kind deck.Kind) int {
	n := 0
	for _, c := range p.animals {
		if c.Kind() == kind {
			n++
		}
	}
	return n
}

// TotalMoney returns the sum of the player's money cards
func (p *Player) TotalMoney() int {
	return deck.Sum(p.money)
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%d animals, %d money cards)", p.name, len(p.animals), len(p.money))
}

func indexOfMoney(cards []deck.MoneyCard, target deck.MoneyCard) int {
	for i, c := range cards {
		if c == target {
			return i
		}
	}
	return -1
}

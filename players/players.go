package players

import "fmt"

// Players represents the roster of a game, in seating order
type Players []*Player

// NewPlayers returns a set of Players
func NewPlayers(p ...*Player) Players {
	return Players(p)
}

// FromNames creates a player with a fresh ID for each name
func FromNames(names ...string) Players {
	ps := make(Players, 0, len(names))
	for _, n := range names {
		ps = append(ps, NewPlayer(NewID(), n))
	}
	return ps
}

// Find finds a player by id, returning its seat index
func (ps Players) Find(id string) (*Player, int, bool) {
	for i, p := range ps {
		if p.ID() == id {
			return p, i, true
		}
	}
	return nil, -1, false
}

// Names returns the players' names in seating order
func (ps Players) Names() []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.Name())
	}
	return names
}

// Validate checks that every player has a name and a unique ID
func (ps Players) Validate() error {
	seen := map[string]bool{}
	for i, p := range ps {
		if p == nil {
			return fmt.Errorf("player %d is nil", i)
		}
		if p.Name() == "" {
			return fmt.Errorf("player %d has no name", i)
		}
		if seen[p.ID()] {
			return fmt.Errorf("player %d has duplicate id %s", i, p.ID())
		}
		seen[p.ID()] = true
	}
	return nil
}

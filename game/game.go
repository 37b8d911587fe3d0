package game

import (
	"fmt"
	"math/rand"

	"github.com/minaorangina/kuhhandel/deck"
	"github.com/minaorangina/kuhhandel/players"
)

const (
	minPlayers = 3
	maxPlayers = 5
)

// every player starts with these seven cards, 90 in total
var startingMoney = []int{0, 0, 10, 10, 10, 10, 50}

// Game is a single match: the deck, the roster, whose turn it is and the
// current auction. A Game is not safe for concurrent use.
type Game struct {
	deck    deck.Deck
	players players.Players
	turn    int
	state   turnState
}

// Opts configures a new Game
type Opts struct {
	// Rand shuffles the deck. A clock-seeded source is used when nil.
	Rand *rand.Rand
	// Deck replaces the shuffled full deck, e.g. to stack it in tests.
	Deck deck.Deck
}

// New constructs a game for 3 to 5 players
func New(ps players.Players, opts Opts) (*Game, error) {
	if len(ps) < minPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPlayers, len(ps))
	}
	if len(ps) > maxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyPlayers, len(ps))
	}
	if err := ps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlayers, err)
	}

	d := opts.Deck
	if d == nil {
		rng := opts.Rand
		if rng == nil {
			rng = deck.NewRand(0)
		}
		d = deck.New()
		d.Shuffle(rng)
	}

	roster := make(players.Players, len(ps))
	copy(roster, ps)

	return &Game{
		deck:    d,
		players: roster,
		state:   turnStart{},
	}, nil
}

// DealStartingMoney gives every player their starting money. Calling it more
// than once deals again.
func (g *Game) DealStartingMoney() {
	for _, p := range g.players {
		p.AddMoney(deck.MoneyCards(startingMoney...)...)
	}
}

// DrawForAuction draws the top card and opens an auction on it, with the turn
// player as auctioneer.
func (g *Game) DrawForAuction() (deck.AnimalCard, error) {
	if p := g.state.phase(); p != TurnStart {
		return deck.AnimalCard{}, fmt.Errorf("%w: cannot draw during %s", ErrWrongPhase, p)
	}

	card, ok := g.deck.Draw()
	if !ok {
		return deck.AnimalCard{}, ErrDeckEmpty
	}

	g.state = bidding{openAuction(card, g.turn, len(g.players))}
	return card, nil
}

// ProcessBid registers a bid from an active bidder
func (g *Game) ProcessBid(playerIdx, amount int) error {
	a, err := g.biddingAuction()
	if err != nil {
		return err
	}

	return a.bid(playerIdx, amount)
}

// PassAuction drops a player out of the auction. When one bidder is left,
// they win the auction.
func (g *Game) PassAuction(playerIdx int) error {
	a, err := g.biddingAuction()
	if err != nil {
		return err
	}

	resolved, err := a.pass(playerIdx)
	if err != nil {
		return err
	}
	if resolved {
		g.state = won{a}
	}
	return nil
}

// EndTurn closes a won auction and passes the turn to the next player.
// Settling the auction has to happen before this is called.
func (g *Game) EndTurn() error {
	if p := g.state.phase(); p != AuctionWon {
		return fmt.Errorf("%w: cannot end turn during %s", ErrWrongPhase, p)
	}

	g.turn = (g.turn + 1) % len(g.players)
	g.state = turnStart{}
	return nil
}

func (g *Game) biddingAuction() (*auction, error) {
	if p := g.state.phase(); p != AuctionBidding {
		return nil, fmt.Errorf("%w: phase is %s", ErrNoAuction, p)
	}
	return g.state.current(), nil
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.state.phase()
}

// Auction returns a copy of the current auction, if there is one
func (g *Game) Auction() (AuctionSnapshot, bool) {
	a := g.state.current()
	if a == nil {
		return AuctionSnapshot{}, false
	}
	return a.snapshot(), true
}

// CurrentTurn returns the index of the player whose turn it is
func (g *Game) CurrentTurn() int {
	return g.turn
}

// DeckRemaining returns the number of cards left to auction
func (g *Game) DeckRemaining() int {
	return g.deck.Remaining()
}

// Players returns the roster in seating order
func (g *Game) Players() players.Players {
	ps := make(players.Players, len(g.players))
	copy(ps, g.players)
	return ps
}

// Player returns the player at idx
func (g *Game) Player(idx int) (*players.Player, bool) {
	if idx < 0 || idx >= len(g.players) {
		return nil, false
	}
	return g.players[idx], true
}

// PublicPlayer is what every player may know about another player
type PublicPlayer struct {
	Name       string
	Animals    []deck.AnimalCard
	MoneyCards int
}

// PublicView returns the public information about every player. Money card
// values are left out since a player's hand is private.
func (g *Game) PublicView() []PublicPlayer {
	view := make([]PublicPlayer, 0, len(g.players))
	for _, p := range g.players {
		view = append(view, PublicPlayer{
			Name:       p.Name(),
			Animals:    p.Animals(),
			MoneyCards: len(p.Money()),
		})
	}
	return view
}

package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/minaorangina/kuhhandel/deck"
	"github.com/minaorangina/kuhhandel/game"
	"github.com/minaorangina/kuhhandel/players"
	"github.com/minaorangina/kuhhandel/protocol"
	uuid "github.com/satori/go.uuid"
)

// PlayState represents whether the match is being played
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Over
)

func (ps PlayState) String() string {
	switch ps {
	case Idle:
		return "idle"
	case InProgress:
		return "inProgress"
	case Over:
		return "over"
	}
	return ""
}

var (
	ErrNotStarted     = errors.New("game has not started")
	ErrAlreadyStarted = errors.New("game has already started")
	ErrGameOver       = errors.New("game is already over")
	ErrUnknownCommand = errors.New("unknown command")
)

// NewID constructs a game ID
func NewID() string {
	return uuid.NewV4().String()
}

// GameEngineOpts configures a GameEngine
type GameEngineOpts struct {
	GameID  string
	Players players.Players
	Rand    *rand.Rand
	Deck    deck.Deck
	Logger  *slog.Logger

	// SkipStartingMoney starts the game with every hand empty
	SkipStartingMoney bool
}

// GameEngine runs one match. It serialises every call on the game, deals the
// starting money, settles won auctions and moves the turn on.
type GameEngine struct {
	mu        sync.Mutex
	id        string
	game      *game.Game
	playState PlayState
	log       *slog.Logger
	noDeal    bool
}

// Outcome describes what a command did
type Outcome struct {
	Command    protocol.Command
	Card       deck.AnimalCard
	Won        bool
	Settlement *Settlement
	Summary    string
}

// New constructs a GameEngine around a new game
func New(opts GameEngineOpts) (*GameEngine, error) {
	id := opts.GameID
	if id == "" {
		id = NewID()
	}

	g, err := game.New(opts.Players, game.Opts{Rand: opts.Rand, Deck: opts.Deck})
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &GameEngine{
		id:     id,
		game:   g,
		log:    logger.With(slog.String("game_id", id)),
		noDeal: opts.SkipStartingMoney,
	}, nil
}

func (ge *GameEngine) ID() string {
	return ge.id
}

func (ge *GameEngine) PlayState() PlayState {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.playState
}

// Start deals the starting money. It can only be called once.
func (ge *GameEngine) Start() error {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	if ge.playState != Idle {
		return ErrAlreadyStarted
	}

	if !ge.noDeal {
		ge.game.DealStartingMoney()
	}
	ge.playState = InProgress
	ge.log.Info("game started",
		slog.Any("players", ge.game.Players().Names()),
		slog.Int("deck", ge.game.DeckRemaining()))
	return nil
}

// Handle applies a single command to the game
func (ge *GameEngine) Handle(cmd protocol.Command) (Outcome, error) {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	out, err := ge.handle(cmd)
	if err != nil {
		ge.report(cmd, err)
	}
	return out, err
}

func (ge *GameEngine) handle(cmd protocol.Command) (Outcome, error) {
	out := Outcome{Command: cmd}

	if cmd.Cmd == protocol.Show {
		out.Summary = ge.game.String()
		return out, nil
	}
	if cmd.Cmd == protocol.Quit {
		return out, nil
	}

	switch ge.playState {
	case Idle:
		return out, ErrNotStarted
	case Over:
		return out, ErrGameOver
	}

	switch cmd.Cmd {
	case protocol.Draw:
		card, err := ge.game.DrawForAuction()
		if err != nil {
			return out, err
		}
		out.Card = card
		ge.log.Info("auction opened",
			slog.String("card", card.Name()),
			slog.Int("auctioneer", ge.game.CurrentTurn()))

	case protocol.Bid:
		if err := ge.game.ProcessBid(cmd.Player, cmd.Amount); err != nil {
			return out, err
		}
		ge.log.Debug("bid accepted", slog.Int("player", cmd.Player), slog.Int("amount", cmd.Amount))

	case protocol.Pass:
		if err := ge.game.PassAuction(cmd.Player); err != nil {
			return out, err
		}
		ge.log.Debug("player passed", slog.Int("player", cmd.Player))

		if ge.game.Phase() == game.AuctionWon {
			out.Won = true
			s, _ := ge.game.Auction()
			ge.log.Info("auction won",
				slog.String("card", s.Card.Name()),
				slog.Int("player", s.HighestBidder),
				slog.Int("amount", s.HighestBid))
		}

	case protocol.Settle:
		s, err := ge.settle()
		if err != nil {
			return out, err
		}
		out.Settlement = &s

	default:
		return out, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Cmd)
	}

	return out, nil
}

func (ge *GameEngine) report(cmd protocol.Command, err error) {
	attrs := []any{slog.String("cmd", cmd.Cmd.String()), slog.Any("error", err)}
	if cmd.NeedsPlayer() {
		attrs = append(attrs, slog.Int("player", cmd.Player))
	}

	if game.IsRejection(err) {
		ge.log.Warn("action rejected", attrs...)
		return
	}
	ge.log.Error("command failed", attrs...)
}

// Draw opens an auction on the top card of the deck
func (ge *GameEngine) Draw() (deck.AnimalCard, error) {
	out, err := ge.Handle(protocol.Command{Cmd: protocol.Draw})
	return out.Card, err
}

// Bid places a bid for a player
func (ge *GameEngine) Bid(player, amount int) error {
	_, err := ge.Handle(protocol.Command{Cmd: protocol.Bid, Player: player, Amount: amount})
	return err
}

// Pass drops a player out of the auction, reporting whether the auction is now won
func (ge *GameEngine) Pass(player int) (bool, error) {
	out, err := ge.Handle(protocol.Command{Cmd: protocol.Pass, Player: player})
	return out.Won, err
}

// Settle pays for a won auction and ends the turn
func (ge *GameEngine) Settle() (Settlement, error) {
	out, err := ge.Handle(protocol.Command{Cmd: protocol.Settle})
	if err != nil {
		return Settlement{}, err
	}
	return *out.Settlement, nil
}

func (ge *GameEngine) Phase() game.Phase {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.Phase()
}

func (ge *GameEngine) Auction() (game.AuctionSnapshot, bool) {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.Auction()
}

func (ge *GameEngine) CurrentTurn() int {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.CurrentTurn()
}

func (ge *GameEngine) DeckRemaining() int {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.DeckRemaining()
}

// Players returns the roster. The players must not be modified while the
// engine is in use.
func (ge *GameEngine) Players() players.Players {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.Players()
}

func (ge *GameEngine) Summary() string {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.String()
}

func (ge *GameEngine) GameOver() bool {
	return ge.PlayState() == Over
}

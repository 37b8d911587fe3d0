package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/kuhhandel/engine"
	"github.com/minaorangina/kuhhandel/players"
)

var (
	ErrUnknownGameID          = errors.New("unknown game ID")
	ErrFnUnknownPendingGameID = func(gameID string) error {
		return fmt.Errorf("%w: pending game with id \"%s\" does not exist", ErrUnknownGameID, gameID)
	}
	ErrGameAlreadyExists = errors.New("game already exists")
	ErrLobbyFull         = errors.New("game is full")
)

// maximum seats at a table
const maxSeats = 5

type GameStore interface {
	FindGame(gameID string) *engine.GameEngine
	FindActiveGame(gameID string) *engine.GameEngine
	FindPendingPlayer(gameID, playerID string) *players.Player
	NewPendingGame() string
	AddPendingPlayer(gameID, name string) (string, error)
	StartGame(gameID string, opts engine.GameEngineOpts) (*engine.GameEngine, error)
	AddGame(ge *engine.GameEngine) error
	RemoveGame(gameID string)
}

// InMemoryGameStore maps game id to game engine. Games waiting for players
// are kept separately until they start.
type InMemoryGameStore struct {
	mu             sync.RWMutex
	Games          map[string]*engine.GameEngine
	PendingPlayers map[string]players.Players
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games:          map[string]*engine.GameEngine{},
		PendingPlayers: map[string]players.Players{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) *engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Games[gameID]
}

// FindActiveGame finds a game that is currently being played
func (s *InMemoryGameStore) FindActiveGame(gameID string) *engine.GameEngine {
	ge := s.FindGame(gameID)
	if ge == nil || ge.PlayState() != engine.InProgress {
		return nil
	}
	return ge
}

func (s *InMemoryGameStore) FindPendingPlayer(gameID, playerID string) *players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending, ok := s.PendingPlayers[gameID]
	if !ok {
		return nil
	}

	p, _, ok := pending.Find(playerID)
	if !ok {
		return nil
	}
	return p
}

// NewPendingGame opens a game for players to join and returns its ID
func (s *InMemoryGameStore) NewPendingGame() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	gameID := engine.NewID()
	s.PendingPlayers[gameID] = players.Players{}
	return gameID
}

// AddPendingPlayer seats a player at a game that has not started yet,
// returning the new player's ID.
func (s *InMemoryGameStore) AddPendingPlayer(gameID, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.PendingPlayers[gameID]
	if !ok {
		return "", ErrFnUnknownPendingGameID(gameID)
	}
	if len(pending) >= maxSeats {
		return "", ErrLobbyFull
	}

	p := players.NewPlayer(players.NewID(), name)
	s.PendingPlayers[gameID] = append(pending, p)
	return p.ID(), nil
}

// StartGame builds an engine from the seated players and starts it.
// opts.GameID and opts.Players are overwritten.
func (s *InMemoryGameStore) StartGame(gameID string, opts engine.GameEngineOpts) (*engine.GameEngine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.PendingPlayers[gameID]
	if !ok {
		return nil, ErrFnUnknownPendingGameID(gameID)
	}

	opts.GameID = gameID
	opts.Players = pending
	ge, err := engine.New(opts)
	if err != nil {
		return nil, err
	}
	if err := ge.Start(); err != nil {
		return nil, err
	}

	delete(s.PendingPlayers, gameID)
	s.Games[gameID] = ge
	return ge, nil
}

// AddGame stores an engine that was built elsewhere
func (s *InMemoryGameStore) AddGame(ge *engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[ge.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrGameAlreadyExists, ge.ID())
	}

	s.Games[ge.ID()] = ge
	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.Games, gameID)
	delete(s.PendingPlayers, gameID)
}

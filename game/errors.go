package game

import (
	"errors"

	"github.com/minaorangina/kuhhandel/players"
)

// Structural errors: the caller sequenced the game incorrectly.
var (
	ErrTooFewPlayers  = errors.New("minimum of 3 players required")
	ErrTooManyPlayers = errors.New("maximum of 5 players allowed")
	ErrInvalidPlayers = errors.New("invalid players")
	ErrWrongPhase     = errors.New("operation not allowed in current phase")
	ErrNoAuction      = errors.New("no active auction")
	ErrDeckEmpty      = errors.New("deck is empty")
)

// Rejections: an illegal action by a player. The game state is unchanged.
var (
	ErrIneligibleBidder = errors.New("player is not an active bidder")
	ErrInvalidAmount    = errors.New("bid must be a positive multiple of 10")
	ErrBidTooLow        = errors.New("bid must be higher than the current bid")
)

var rejections = []error{
	ErrIneligibleBidder,
	ErrInvalidAmount,
	ErrBidTooLow,
	players.ErrCardNotHeld,
}

// IsRejection reports whether err is a player's illegal action rather than a
// sequencing error. Rejected actions can be retried; anything else should stop
// the orchestrator.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

package game

// Phase represents what the game is waiting for
type Phase int

const (
	TurnStart Phase = iota
	AuctionBidding
	AuctionWon
)

var phaseNames = []string{"TURN_START", "AUCTION_BIDDING", "AUCTION_WON"}

func (p Phase) String() string {
	if p < TurnStart || p > AuctionWon {
		return "UNKNOWN"
	}
	return phaseNames[p]
}

// turnState pairs the phase with the auction it owns. Only the three
// implementations below exist, so an auction is present exactly when the
// phase is AuctionBidding or AuctionWon.
type turnState interface {
	phase() Phase
	current() *auction
}

type turnStart struct{}

func (turnStart) phase() Phase { return TurnStart }
func (turnStart) current() *auction { return nil }

type bidding struct{ a *auction }

func (bidding) phase() Phase { return AuctionBidding }
func (s bidding) current() *auction { return s.a }

type won struct{ a *auction }

func (won) phase() Phase { return AuctionWon }
func (s won) current() *auction { return s.a }

package game

import (
	"fmt"

	"github.com/minaorangina/kuhhandel/deck"
)

const (
	// NoBidder is the highest bidder of an auction nobody has bid in yet
	NoBidder = -1
	// BidIncrement is the smallest unit a bid can be made in
	BidIncrement = 10
)

type auction struct {
	card          deck.AnimalCard
	auctioneer    int
	highestBid    int
	highestBidder int
	activeBidders []int
}

// AuctionSnapshot is a read-only copy of the current auction
type AuctionSnapshot struct {
	Card          deck.AnimalCard
	Auctioneer    int
	HighestBid    int
	HighestBidder int
	ActiveBidders []int
}

// HasBidder reports whether the auction has a leader
func (s AuctionSnapshot) HasBidder() bool {
	return s.HighestBidder != NoBidder
}

func openAuction(card deck.AnimalCard, auctioneer, playerCount int) *auction {
	bidders := make([]int, 0, playerCount-1)
	for i := 0; i < playerCount; i++ {
		if i != auctioneer {
			bidders = append(bidders, i)
		}
	}

	return &auction{
		card:          card,
		auctioneer:    auctioneer,
		highestBidder: NoBidder,
		activeBidders: bidders,
	}
}

func (a *auction) bidderIdx(player int) int {
	for i, b := range a.activeBidders {
		if b == player {
			return i
		}
	}
	return -1
}

func (a *auction) bid(player, amount int) error {
	if a.bidderIdx(player) < 0 {
		return fmt.Errorf("%w: player %d", ErrIneligibleBidder, player)
	}
	if amount <= 0 || amount%BidIncrement != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	if amount <= a.highestBid {
		return fmt.Errorf("%w: got %d, current bid is %d", ErrBidTooLow, amount, a.highestBid)
	}

	a.highestBid = amount
	a.highestBidder = player
	return nil
}

// pass drops the player from the auction and reports whether the auction has
// been won. The last bidder standing wins, whether or not they ever bid.
func (a *auction) pass(player int) (bool, error) {
	idx := a.bidderIdx(player)
	if idx < 0 {
		return false, fmt.Errorf("%w: player %d", ErrIneligibleBidder, player)
	}

	a.activeBidders = append(a.activeBidders[:idx], a.activeBidders[idx+1:]...)

	if len(a.activeBidders) == 1 {
		a.highestBidder = a.activeBidders[0]
		return true, nil
	}
	return false, nil
}

func (a *auction) snapshot() AuctionSnapshot {
	bidders := make([]int, len(a.activeBidders))
	copy(bidders, a.activeBidders)

	return AuctionSnapshot{
		Card:          a.card,
		Auctioneer:    a.auctioneer,
		HighestBid:    a.highestBid,
		HighestBidder: a.highestBidder,
		ActiveBidders: bidders,
	}
}

package engine

import (
	"bytes"
	"testing"

	"github.com/minaorangina/kuhhandel/deck"
	"github.com/minaorangina/kuhhandel/game"
	utils "github.com/minaorangina/kuhhandel/internal"
	"github.com/minaorangina/kuhhandel/players"
	"github.com/minaorangina/kuhhandel/protocol"
	"github.com/stretchr/testify/assert"
)

func TestSendText(t *testing.T) {
	var buf bytes.Buffer
	SendText(&buf, "Hello %s", "Alice")
	utils.AssertEqual(t, buf.String(), "Hello Alice")
}

func TestDescribe(t *testing.T) {
	SetColour(false)
	ps := players.FromNames("Alice", "Bob", "Carol")
	cow, _ := deck.NewAnimalCard(deck.Cow)

	t.Run("auction", func(t *testing.T) {
		text := DescribeAuction(game.AuctionSnapshot{
			Card:          cow,
			Auctioneer:    0,
			HighestBid:    30,
			HighestBidder: 2,
			ActiveBidders: []int{1, 2},
		}, ps)

		assert.Contains(t, text, "Auction: Cow (800pts)")
		assert.Contains(t, text, "Auctioneer: Alice")
		assert.Contains(t, text, "Highest bid: 30 by Carol")
		assert.Contains(t, text, "Still bidding: [1] Bob, [2] Carol")
	})

	t.Run("auction without bids", func(t *testing.T) {
		text := DescribeAuction(game.AuctionSnapshot{Card: cow, HighestBidder: game.NoBidder, ActiveBidders: []int{1, 2}}, ps)
		assert.Contains(t, text, "Highest bid: none")
	})

	t.Run("outcomes", func(t *testing.T) {
		won := DescribeOutcome(Outcome{Command: protocol.Command{Cmd: protocol.Pass, Player: 1}, Won: true}, ps)
		assert.Contains(t, won, "Bob passes")
		assert.Contains(t, won, "The auction is won!")

		bid := DescribeOutcome(Outcome{Command: protocol.Command{Cmd: protocol.Bid, Player: 2, Amount: 40}}, ps)
		utils.AssertEqual(t, bid, "Carol bids 40")
	})

	t.Run("settlements", func(t *testing.T) {
		paid := Settlement{Card: cow, Auctioneer: 0, Bidder: 1, Receiver: 1, Bid: 60, Payment: deck.MoneyCards(10, 50)}
		utils.AssertEqual(t, DescribeSettlement(paid, ps), "Bob pays Alice with 2 cards for the Cow")

		free := Settlement{Card: cow, Auctioneer: 0, Bidder: 2, Receiver: 2}
		utils.AssertEqual(t, DescribeSettlement(free, ps), "Carol takes the Cow for free")

		broke := Settlement{Card: cow, Auctioneer: 0, Bidder: 1, Receiver: 0, Bid: 500, Err: ErrInsufficientFunds}
		utils.AssertEqual(t, DescribeSettlement(broke, ps), "Bob cannot pay 500: Alice keeps the Cow")
	})

	t.Run("rejections", func(t *testing.T) {
		assert.Contains(t, DescribeRejection(game.ErrBidTooLow), "Not allowed:")
		assert.Contains(t, DescribeRejection(game.ErrDeckEmpty), "Error:")
	})

	t.Run("hand", func(t *testing.T) {
		p := players.NewPlayer("", "Alice")
		p.AddMoney(deck.MoneyCards(10, 50)...)
		utils.AssertEqual(t, DescribeHand(p), "Alice, your money: 10 50 (total 60)")
	})
}

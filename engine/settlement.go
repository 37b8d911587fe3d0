package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/minaorangina/kuhhandel/deck"
	"github.com/minaorangina/kuhhandel/game"
)

var ErrInsufficientFunds = errors.New("cannot cover the bid")

// Settlement records how a won auction was paid for
type Settlement struct {
	Card       deck.AnimalCard
	Auctioneer int

	// Bidder won the auction; Receiver ended up with the card. They differ
	// when the bidder could not pay.
	Bidder   int
	Receiver int
	Bid      int
	Payment  []deck.MoneyCard
	Err      error
}

// Paid returns the total handed to the auctioneer
func (s Settlement) Paid() int {
	return deck.Sum(s.Payment)
}

// ChoosePayment picks the cards from hand that cover amount with the least
// overpayment, using as few cards as possible. Cards are returned in hand order.
func ChoosePayment(hand []deck.MoneyCard, amount int) ([]deck.MoneyCard, error) {
	if amount <= 0 {
		return []deck.MoneyCard{}, nil
	}
	if total := deck.Sum(hand); total < amount {
		return nil, fmt.Errorf("%w: holds %d, needs %d", ErrInsufficientFunds, total, amount)
	}

	// fewest cards reaching each total
	best := map[int][]int{0: {}}
	for i, c := range hand {
		if c.Amount() == 0 {
			continue
		}

		prev := make(map[int][]int, len(best))
		sums := make([]int, 0, len(best))
		for s, idxs := range best {
			prev[s] = idxs
			sums = append(sums, s)
		}
		sort.Ints(sums)

		for _, s := range sums {
			next := s + c.Amount()
			candidate := append(append([]int{}, prev[s]...), i)
			if cur, ok := best[next]; !ok || len(candidate) < len(cur) {
				best[next] = candidate
			}
		}
	}

	chosen := -1
	for s := range best {
		if s >= amount && (chosen < 0 || s < chosen) {
			chosen = s
		}
	}

	payment := make([]deck.MoneyCard, 0, len(best[chosen]))
	for _, i := range best[chosen] {
		payment = append(payment, hand[i])
	}
	return payment, nil
}

// settle transfers the card and money for a won auction, then ends the turn.
// A bidder who cannot pay gets nothing, and the auctioneer keeps the card.
func (ge *GameEngine) settle() (Settlement, error) {
	if p := ge.game.Phase(); p != game.AuctionWon {
		return Settlement{}, fmt.Errorf("%w: cannot settle during %s", game.ErrWrongPhase, p)
	}

	a, _ := ge.game.Auction()
	bidder, _ := ge.game.Player(a.HighestBidder)
	auctioneer, _ := ge.game.Player(a.Auctioneer)

	s := Settlement{
		Card:       a.Card,
		Auctioneer: a.Auctioneer,
		Bidder:     a.HighestBidder,
		Receiver:   a.HighestBidder,
		Bid:        a.HighestBid,
	}

	payment, err := ChoosePayment(bidder.Money(), a.HighestBid)
	if err != nil {
		s.Receiver = a.Auctioneer
		s.Err = err
		auctioneer.AddAnimal(a.Card)
		ge.log.Warn("bidder could not pay",
			slog.Int("player", a.HighestBidder),
			slog.Int("amount", a.HighestBid),
			slog.Int("holds", bidder.TotalMoney()))
	} else {
		if err := bidder.RemoveMoney(payment...); err != nil {
			return Settlement{}, err
		}
		auctioneer.AddMoney(payment...)
		bidder.AddAnimal(a.Card)
		s.Payment = payment
	}

	if err := ge.game.EndTurn(); err != nil {
		return Settlement{}, err
	}

	ge.log.Info("auction settled",
		slog.String("card", a.Card.Name()),
		slog.Int("player", s.Receiver),
		slog.Int("amount", s.Paid()),
		slog.Int("next_turn", ge.game.CurrentTurn()))

	if ge.game.DeckRemaining() == 0 {
		ge.playState = Over
		ge.log.Info("game over")
	}

	return s, nil
}

package engine

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/minaorangina/kuhhandel/game"
	"github.com/minaorangina/kuhhandel/players"
	"github.com/minaorangina/kuhhandel/protocol"
)

var (
	bannerText = color.New(color.FgHiCyan, color.Bold).SprintfFunc()
	cardText   = color.New(color.FgHiYellow).SprintfFunc()
	winText    = color.New(color.FgHiGreen).SprintfFunc()
	rejectText = color.New(color.FgHiRed).SprintfFunc()
)

// Stdout is a terminal writer that understands colour codes on every platform
var Stdout io.Writer = color.Output

const helpText = `Commands:
  draw                 draw a card and open an auction
  bid <player> <amt>   bid a multiple of 10
  pass <player>        drop out of the auction
  settle               pay for a won auction and end the turn
  show                 show the table
  quit                 leave the game
`

// SetColour turns coloured output on or off
func SetColour(enabled bool) {
	color.NoColor = !enabled
}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// HelpText lists the commands the terminal accepts
func HelpText() string {
	return helpText
}

// DescribeAuction shows the state of an auction to every player
func DescribeAuction(a game.AuctionSnapshot, ps players.Players) string {
	lines := []string{
		bannerText("Auction: %s", cardText(a.Card.String())),
		fmt.Sprintf("Auctioneer: %s", nameOf(ps, a.Auctioneer)),
	}

	if a.HasBidder() {
		lines = append(lines, fmt.Sprintf("Highest bid: %d by %s", a.HighestBid, nameOf(ps, a.HighestBidder)))
	} else {
		lines = append(lines, "Highest bid: none")
	}

	bidders := make([]string, 0, len(a.ActiveBidders))
	for _, b := range a.ActiveBidders {
		bidders = append(bidders, fmt.Sprintf("[%d] %s", b, nameOf(ps, b)))
	}
	lines = append(lines, fmt.Sprintf("Still bidding: %s", strings.Join(bidders, ", ")))

	return strings.Join(lines, "\n")
}

// DescribeOutcome turns the result of a command into a line for the table
func DescribeOutcome(out Outcome, ps players.Players) string {
	switch out.Command.Cmd {
	case protocol.Draw:
		return fmt.Sprintf("Drew %s", cardText(out.Card.String()))

	case protocol.Bid:
		return fmt.Sprintf("%s bids %d", nameOf(ps, out.Command.Player), out.Command.Amount)

	case protocol.Pass:
		text := fmt.Sprintf("%s passes", nameOf(ps, out.Command.Player))
		if out.Won {
			text += "\n" + winText("The auction is won! Settle to pay and end the turn.")
		}
		return text

	case protocol.Settle:
		return DescribeSettlement(*out.Settlement, ps)

	case protocol.Show:
		return out.Summary
	}
	return ""
}

// DescribeSettlement explains who got the card and what they paid
func DescribeSettlement(s Settlement, ps players.Players) string {
	if s.Err != nil {
		return rejectText("%s cannot pay %d: %s keeps the %s",
			nameOf(ps, s.Bidder), s.Bid, nameOf(ps, s.Auctioneer), s.Card.Name())
	}
	if len(s.Payment) == 0 {
		return winText("%s takes the %s for free", nameOf(ps, s.Receiver), s.Card.Name())
	}
	return winText("%s pays %s with %d cards for the %s",
		nameOf(ps, s.Receiver), nameOf(ps, s.Auctioneer), len(s.Payment), s.Card.Name())
}

// DescribeRejection tells a player why their action was refused
func DescribeRejection(err error) string {
	if game.IsRejection(err) || errors.Is(err, protocol.ErrBadArguments) ||
		errors.Is(err, protocol.ErrUnknownCommand) {
		return rejectText("Not allowed: %s", err)
	}
	return rejectText("Error: %s", err)
}

// DescribeHand shows a player their own money. It must only be sent to that player.
func DescribeHand(p *players.Player) string {
	values := []string{}
	for _, c := range p.Money() {
		values = append(values, c.String())
	}
	return fmt.Sprintf("%s, your money: %s (total %d)", p.Name(), strings.Join(values, " "), p.TotalMoney())
}

func nameOf(ps players.Players, idx int) string {
	if idx < 0 || idx >= len(ps) {
		return fmt.Sprintf("player %d", idx)
	}
	return ps[idx].Name()
}

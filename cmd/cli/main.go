package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/minaorangina/kuhhandel/config"
	"github.com/minaorangina/kuhhandel/deck"
	"github.com/minaorangina/kuhhandel/engine"
	"github.com/minaorangina/kuhhandel/game"
	"github.com/minaorangina/kuhhandel/protocol"
	"github.com/minaorangina/kuhhandel/script"
	"github.com/minaorangina/kuhhandel/store"
)

func main() {
	scriptPath := flag.String("script", "", "replay a TOML match script instead of reading commands")
	seed := flag.Int64("seed", 0, "shuffle seed (overrides KUHHANDEL_SEED)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	engine.SetColour(cfg.Colour)

	names, deal := cfg.Players, true
	if *seed == 0 {
		*seed = cfg.Seed
	}

	var s *script.Script
	if *scriptPath != "" {
		s, err = script.Load(*scriptPath)
		if err != nil {
			logger.Error("Failed to load script", slog.String("path", *scriptPath), slog.Any("error", err))
			os.Exit(1)
		}
		if len(s.Players) > 0 {
			names = s.Players
		}
		if *seed == 0 {
			*seed = s.Seed
		}
		deal = s.Deal
	}

	var games store.GameStore = store.NewInMemoryGameStore()
	gameID := games.NewPendingGame()
	for _, name := range names {
		if _, err := games.AddPendingPlayer(gameID, name); err != nil {
			logger.Error("Could not seat player", slog.String("name", name), slog.Any("error", err))
			os.Exit(1)
		}
	}

	ge, err := games.StartGame(gameID, engine.GameEngineOpts{
		Rand:              deck.NewRand(*seed),
		Logger:            logger,
		SkipStartingMoney: !deal,
	})
	if err != nil {
		logger.Error("Could not start game", slog.Any("error", err))
		os.Exit(1)
	}
	defer games.RemoveGame(gameID)

	if s != nil {
		err = replay(engine.Stdout, ge, s)
	} else {
		err = play(os.Stdin, engine.Stdout, ge)
	}
	if err != nil {
		logger.Error("Game stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func replay(out io.Writer, ge *engine.GameEngine, s *script.Script) error {
	results, err := s.Run(ge)
	for _, r := range results {
		engine.SendText(out, "%d> %s\n", r.Step, r.Outcome.Command)
		if r.Err != nil {
			engine.SendText(out, "%s\n", engine.DescribeRejection(r.Err))
			continue
		}
		engine.SendText(out, "%s\n", engine.DescribeOutcome(r.Outcome, ge.Players()))
	}
	engine.SendText(out, "\n%s\n", ge.Summary())
	return err
}

func play(in io.Reader, out io.Writer, ge *engine.GameEngine) error {
	ps := ge.Players()
	engine.SendText(out, "%s\n%s\n", ge.Summary(), engine.HelpText())
	for _, p := range ps {
		// a shared terminal has no private channel, so hands are only shown here
		engine.SendText(out, "%s\n", engine.DescribeHand(p))
	}

	scanner := bufio.NewScanner(in)
	for !ge.GameOver() {
		engine.SendText(out, "\n%s> ", ps[ge.CurrentTurn()].Name())
		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, err := protocol.Parse(scanner.Text())
		if err != nil {
			if !errors.Is(err, protocol.ErrEmptyCommand) {
				engine.SendText(out, "%s\n%s", engine.DescribeRejection(err), engine.HelpText())
			}
			continue
		}
		if cmd.Cmd == protocol.Quit {
			return nil
		}

		outcome, err := ge.Handle(cmd)
		if err != nil {
			if game.IsRejection(err) {
				engine.SendText(out, "%s\n", engine.DescribeRejection(err))
				continue
			}
			return fmt.Errorf("%s: %w", cmd, err)
		}

		engine.SendText(out, "%s\n", engine.DescribeOutcome(outcome, ps))
		if a, ok := ge.Auction(); ok && ge.Phase() == game.AuctionBidding {
			engine.SendText(out, "%s\n", engine.DescribeAuction(a, ps))
		}
	}

	engine.SendText(out, "\nNo cards left to auction.\n%s\n", ge.Summary())
	return nil
}

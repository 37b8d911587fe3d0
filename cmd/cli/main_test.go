package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/minaorangina/kuhhandel/deck"
	"github.com/minaorangina/kuhhandel/engine"
	"github.com/minaorangina/kuhhandel/game"
	"github.com/minaorangina/kuhhandel/players"
	"github.com/minaorangina/kuhhandel/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T, kinds ...deck.Kind) *engine.GameEngine {
	t.Helper()

	d := deck.Deck{}
	for _, k := range kinds {
		c, _ := deck.NewAnimalCard(k)
		d = append(d, c)
	}

	ge, err := engine.New(engine.GameEngineOpts{
		Players: players.FromNames("Alice", "Bob", "Carol"),
		Deck:    d,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.NoError(t, ge.Start())
	return ge
}

func TestPlay(t *testing.T) {
	engine.SetColour(false)

	t.Run("plays until the deck runs out", func(t *testing.T) {
		ge := testEngine(t, deck.Pig)
		in := strings.NewReader("draw\nbid 1 20\nbid 2 25\n\nbid 2 30\nwhatever\npass 1\nsettle\n")
		var out bytes.Buffer

		require.NoError(t, play(in, &out, ge))

		text := out.String()
		assert.Contains(t, text, "Drew Pig (650pts)")
		assert.Contains(t, text, "Not allowed:")
		assert.Contains(t, text, "Carol pays Alice with 3 cards for the Pig")
		assert.Contains(t, text, "No cards left to auction.")
		assert.Contains(t, text, "  [2] Carol: Pig")
		assert.True(t, ge.GameOver())
	})

	t.Run("stops on quit", func(t *testing.T) {
		ge := testEngine(t, deck.Pig, deck.Cat)
		var out bytes.Buffer

		require.NoError(t, play(strings.NewReader("draw\nquit\n"), &out, ge))
		assert.Equal(t, game.AuctionBidding, ge.Phase())
	})

	t.Run("stops on a sequencing error", func(t *testing.T) {
		ge := testEngine(t, deck.Pig, deck.Cat)
		var out bytes.Buffer

		err := play(strings.NewReader("draw\ndraw\n"), &out, ge)
		assert.ErrorIs(t, err, game.ErrWrongPhase)
	})
}

func TestReplay(t *testing.T) {
	engine.SetColour(false)
	ge := testEngine(t, deck.Pig)
	s := &script.Script{Steps: []script.Step{
		{Action: "draw"},
		{Action: "bid", Player: 0, Amount: 10},
		{Action: "pass", Player: 2},
		{Action: "settle"},
	}}
	var out bytes.Buffer

	require.NoError(t, replay(&out, ge, s))
	text := out.String()
	assert.Contains(t, text, "2> bid 0 10")
	assert.Contains(t, text, "Not allowed:")
	assert.Contains(t, text, "Bob takes the Pig for free")
}

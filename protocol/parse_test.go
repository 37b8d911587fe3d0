package protocol

import (
	"testing"

	utils "github.com/minaorangina/kuhhandel/internal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	shouldSucceed := []struct {
		line string
		want Command
	}{
		{"draw", Command{Cmd: Draw}},
		{"  DRAW ", Command{Cmd: Draw}},
		{"bid 1 30", Command{Cmd: Bid, Player: 1, Amount: 30}},
		{"bid 2 15", Command{Cmd: Bid, Player: 2, Amount: 15}},
		{"pass 2", Command{Cmd: Pass, Player: 2}},
		{"settle", Command{Cmd: Settle}},
		{"show", Command{Cmd: Show}},
		{"quit", Command{Cmd: Quit}},
	}

	for _, c := range shouldSucceed {
		got, err := Parse(c.line)
		utils.AssertNoError(t, err)
		if got != c.want {
			utils.TableFailureMessage(t, c.line, got, c.want)
		}
	}

	shouldError := []struct {
		line string
		err  error
	}{
		{"", ErrEmptyCommand},
		{"   ", ErrEmptyCommand},
		{"null", ErrUnknownCommand},
		{"trade 1 2", ErrUnknownCommand},
		{"bid 1", ErrBadArguments},
		{"bid one 10", ErrBadArguments},
		{"pass", ErrBadArguments},
		{"draw 1", ErrBadArguments},
	}

	for _, c := range shouldError {
		_, err := Parse(c.line)
		utils.AssertErrorIs(t, err, c.err)
	}
}

func TestCommandString(t *testing.T) {
	for _, line := range []string{"draw", "bid 1 30", "pass 0", "settle"} {
		cmd, err := Parse(line)
		utils.AssertNoError(t, err)
		assert.Equal(t, line, cmd.String())
	}
	assert.Equal(t, "unknown", Cmd(99).String())
}

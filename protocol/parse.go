package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

// Parse reads a command such as "bid 1 30" or "pass 2"
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	cmd, ok := ParseCmd(fields[0])
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	args, err := atois(fields[1:])
	if err != nil {
		return Command{}, err
	}

	switch cmd {
	case Bid:
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: usage: bid <player> <amount>", ErrBadArguments)
		}
		return Command{Cmd: Bid, Player: args[0], Amount: args[1]}, nil

	case Pass:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: usage: pass <player>", ErrBadArguments)
		}
		return Command{Cmd: Pass, Player: args[0]}, nil

	default:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrBadArguments, cmd)
		}
		return Command{Cmd: cmd}, nil
	}
}

func atois(fields []string) ([]int, error) {
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrBadArguments, f)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// String formats the command the way Parse reads it
func (c Command) String() string {
	switch c.Cmd {
	case Bid:
		return fmt.Sprintf("%s %d %d", c.Cmd, c.Player, c.Amount)
	case Pass:
		return fmt.Sprintf("%s %d", c.Cmd, c.Player)
	default:
		return c.Cmd.String()
	}
}

package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/minaorangina/kuhhandel/engine"
	"github.com/minaorangina/kuhhandel/game"
	"github.com/minaorangina/kuhhandel/protocol"
	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidStep = errors.New("invalid step")

// Script is a match written down in advance, to be replayed through an engine
type Script struct {
	Seed    int64    `toml:"seed"`
	Players []string `toml:"players"`
	Deal    bool     `toml:"deal"`
	Steps   []Step   `toml:"steps"`
}

// Step is a single command in a script
type Step struct {
	Action string `toml:"action"`
	Player int    `toml:"player"`
	Amount int    `toml:"amount"`
}

// Load reads a script from a TOML file
func Load(path string) (*Script, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads a script from TOML
func Decode(r io.Reader) (*Script, error) {
	var s Script
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	for i, step := range s.Steps {
		if _, err := step.Command(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Command converts the step to a protocol command
func (s Step) Command() (protocol.Command, error) {
	cmd, ok := protocol.ParseCmd(s.Action)
	if !ok {
		return protocol.Command{}, fmt.Errorf("%w: unknown action %q", ErrInvalidStep, s.Action)
	}
	return protocol.Command{Cmd: cmd, Player: s.Player, Amount: s.Amount}, nil
}

// Result is what happened to one step
type Result struct {
	Step    int
	Outcome engine.Outcome
	Err     error
}

// Run replays the script's steps through ge. Rejected actions are recorded
// and the replay carries on; any other error stops it. Replay also stops at a
// quit step.
func (s *Script) Run(ge *engine.GameEngine) ([]Result, error) {
	results := make([]Result, 0, len(s.Steps))

	for i, step := range s.Steps {
		cmd, err := step.Command()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		out, err := ge.Handle(cmd)
		results = append(results, Result{Step: i + 1, Outcome: out, Err: err})

		if err != nil && !game.IsRejection(err) {
			return results, fmt.Errorf("step %d (%s): %w", i+1, cmd, err)
		}
		if cmd.Cmd == protocol.Quit {
			break
		}
	}

	return results, nil
}

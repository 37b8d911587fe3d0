package protocol

// Cmd represents a command sent to a game by its orchestrator
type Cmd int

const (
	Null Cmd = iota
	Draw
	Bid
	Pass
	Settle
	Show
	Quit
)

var cmdNames = []string{
	"null",
	"draw",
	"bid",
	"pass",
	"settle",
	"show",
	"quit",
}

func (c Cmd) String() string {
	if c < Null || int(c) >= len(cmdNames) {
		return "unknown"
	}
	return cmdNames[c]
}

// ParseCmd looks up a command by name
func ParseCmd(name string) (Cmd, bool) {
	for i, n := range cmdNames {
		if i > 0 && n == name {
			return Cmd(i), true
		}
	}
	return Null, false
}

// Command is a single action requested of the game.
// Player and Amount are only meaningful for Bid and Pass.
type Command struct {
	Cmd    Cmd
	Player int
	Amount int
}

func (c Command) NeedsPlayer() bool {
	return c.Cmd == Bid || c.Cmd == Pass
}

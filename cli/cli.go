// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the skirmish combat engine.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nathoo/skirmish/engine"
	"github.com/nathoo/skirmish/types"
)

// errQuit signals that the player left via /quit.
var errQuit = errors.New("quit")

// CLI handles terminal interaction with the player.
type CLI struct {
	Session   *engine.Session
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)

	scanner *bufio.Scanner
}

// New creates a CLI wired to the given session.
func New(sess *engine.Session) *CLI {
	return &CLI{
		Session: sess,
		In:      os.Stdin,
		Out:     os.Stdout,
	}
}

// Run starts the combat loop. It shows the opening status, then loops:
// prompt → selection → round → output, until the fight is decided, the
// player quits, or input runs out. Every way out is a quiet return, so the
// process exits 0.
func (c *CLI) Run() {
	c.printLines(c.Session.StatusLines())

	err := c.Session.Run(c, func(result types.Result) {
		c.printResult(result)
		if c.Trace {
			c.printTrace(result)
		}
	})
	if err != nil && !errors.Is(err, errQuit) {
		// Input closed mid-fight; finish the dangling prompt line.
		c.printLine("")
	}
}

// SelectTarget shows the round menu and prompts until the player enters a
// target number or leaves. Blank lines, comments, and meta-commands are
// handled here without consuming the round. Implements
// engine.TargetSelector.
func (c *CLI) SelectTarget(options []types.TargetOption) (int, error) {
	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.In)
	}

	c.printLine("")
	c.printLine("Your Turn!")
	c.printLine("Choose your target:")
	for _, opt := range options {
		c.printLine(fmt.Sprintf("%d. %s (HP: %d/%d)", opt.Index+1, opt.Name, opt.Health, opt.MaxHealth))
	}

	for {
		c.print("Select target number: ")
		if !c.scanner.Scan() {
			return 0, io.EOF
		}
		input := strings.TrimSpace(c.scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return 0, errQuit
			}
			continue
		}

		n, err := strconv.Atoi(input)
		if err != nil {
			c.printLine("Invalid input. Please enter a number.")
			continue
		}
		return n - 1, nil
	}
}

// handleMeta dispatches meta-commands. Returns true if the player quit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/status":
		c.cmdStatus()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /status       — Show combatant health and session info",
		"  /trace        — Toggle debug trace output",
		"  /quit         — Exit the fight",
		"  /help         — Show this help",
		"",
		"Combat:",
		"  Enter the number of an enemy to attack it.",
		"  Your hits have a 10% chance to crit for 1.5x damage,",
		"  and a 20% chance to poison the target (5 damage per",
		"  round for 3 rounds, ignores defense).",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdStatus() {
	c.printLines(c.Session.StatusLines())
	c.printSystem(fmt.Sprintf("Round: %d", c.Session.Round))
	c.printSystem(fmt.Sprintf("Outcome: %s", c.Session.Outcome()))
	c.printSystem(fmt.Sprintf("Seed: %d (draws: %d)", c.Session.RNG.Seed(), c.Session.RNG.Draws()))
}

func (c *CLI) printTrace(result types.Result) {
	if len(result.Events) == 0 {
		return
	}
	c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
	for _, e := range result.Events {
		c.printSystem(fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

// Skirmish is a deterministic turn-based combat simulator for the terminal.
// Usage: skirmish [--version] [--plain] [--script <file>] [--trace] [--seed <n>]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nathoo/skirmish/cli"
	"github.com/nathoo/skirmish/engine"
	"github.com/nathoo/skirmish/engine/roster"
	"github.com/nathoo/skirmish/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	trace := false
	seed := time.Now().UnixNano()
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("skirmish %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires a number\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid seed: %v\n", err)
				os.Exit(1)
			}
			seed = n
		default:
			fmt.Fprintf(os.Stderr, "Usage: skirmish [--version] [--plain] [--script <file>] [--trace] [--seed <n>]\n")
			os.Exit(1)
		}
	}

	sess := engine.NewSession(roster.Default(), engine.NewRNG(seed))

	// Script mode: open file, force plain, echo input.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		printBanner()
		c := cli.New(sess)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		printBanner()
		c := cli.New(sess)
		c.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(sess); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Printf("Skirmish %s\n", version)
	fmt.Println("A goblin and an orc block your path. Fight!")
	fmt.Println()
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

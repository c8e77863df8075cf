package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nathoo/skirmish/engine"
	"github.com/nathoo/skirmish/engine/roster"
)

// flatSource feeds the same value for every draw, so a whole fight can run
// with crits and poison forced on (0.0) or off (0.99).
type flatSource struct{ v float64 }

func (f flatSource) Float64() float64 { return f.v }

// testRoster returns the stock matchup with fixed IDs for CLI testing.
func testRoster() *roster.Roster {
	hero := &roster.Character{ID: "hero", Name: "Hero", Health: 50, MaxHealth: 100, Attack: 15, Defense: 10, Speed: 12}
	goblin := &roster.Character{ID: "goblin", Name: "Goblin", Health: 30, MaxHealth: 30, Attack: 8, Defense: 5, Speed: 10}
	orc := &roster.Character{ID: "orc", Name: "Orc", Health: 50, MaxHealth: 50, Attack: 12, Defense: 8, Speed: 8}
	return roster.New(hero, goblin, orc)
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	sess := engine.NewSession(testRoster(), engine.NewRNGFrom(flatSource{0.99}))
	var out bytes.Buffer
	c := &CLI{
		Session: sess,
		In:      strings.NewReader(input),
		Out:     &out,
	}
	return c, &out
}

func TestCLI_OpeningStatus(t *testing.T) {
	c, out := newTestCLI(t, "/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "--- Current Status ---") {
		t.Error("expected status header before the first prompt")
	}
	if !strings.Contains(output, "Hero HP: 50/100") {
		t.Error("expected hero health in opening status")
	}
	if !strings.Contains(output, "Goblin HP: 30/30") {
		t.Error("expected goblin health in opening status")
	}
	if !strings.Contains(output, "Orc HP: 50/50") {
		t.Error("expected orc health in opening status")
	}
	if !strings.Contains(output, "Goodbye.") {
		t.Error("expected goodbye message after /quit")
	}
}

func TestCLI_TargetMenu(t *testing.T) {
	c, out := newTestCLI(t, "/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Your Turn!") {
		t.Error("expected turn banner")
	}
	if !strings.Contains(output, "Choose your target:") {
		t.Error("expected target prompt")
	}
	if !strings.Contains(output, "1. Goblin (HP: 30/30)") {
		t.Error("expected goblin menu entry")
	}
	if !strings.Contains(output, "2. Orc (HP: 50/50)") {
		t.Error("expected orc menu entry")
	}
}

func TestCLI_FightToVictory(t *testing.T) {
	// Without crits: 3 hits of 10 fell the goblin, 8 hits of 7 fell the orc.
	c, out := newTestCLI(t, strings.Repeat("1\n", 3)+strings.Repeat("2\n", 8))
	c.Run()

	output := out.String()
	if !strings.Contains(output, "You attacked Goblin for 10 damage.") {
		t.Error("expected goblin hit line")
	}
	if !strings.Contains(output, "You attacked Orc for 7 damage.") {
		t.Error("expected orc hit line")
	}
	if !strings.Contains(output, "Victory! All enemies defeated!") {
		t.Error("expected victory banner")
	}
	if !strings.Contains(output, "Goblin HP: DEAD") {
		t.Error("expected dead goblin in final status")
	}
	if !strings.Contains(output, "Orc HP: DEAD") {
		t.Error("expected dead orc in final status")
	}
	if got := c.Session.Outcome(); got != engine.Victory {
		t.Errorf("expected Victory outcome, got %v", got)
	}
}

func TestCLI_MenuKeepsNumbersWhenEnemyFalls(t *testing.T) {
	// After the goblin dies the orc keeps its original menu number.
	c, out := newTestCLI(t, strings.Repeat("1\n", 3)+"/quit\n")
	c.Run()

	output := out.String()
	if strings.Contains(output, "1. Orc") {
		t.Error("orc should not take over the goblin's menu number")
	}
	if !strings.Contains(output, "2. Orc") {
		t.Error("expected orc to keep menu number 2")
	}
}

func TestCLI_CritAndPoisonAnnounced(t *testing.T) {
	sess := engine.NewSession(testRoster(), engine.NewRNGFrom(flatSource{0.0}))
	var out bytes.Buffer
	c := &CLI{Session: sess, In: strings.NewReader("1\n/quit\n"), Out: &out}
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Critical hit!") {
		t.Error("expected crit announcement")
	}
	// 15 attack crits to 22, minus 5 defense.
	if !strings.Contains(output, "You attacked Goblin for 17 damage.") {
		t.Error("expected crit damage line")
	}
	if !strings.Contains(output, "Goblin is poisoned!") {
		t.Error("expected poison announcement")
	}
	if !strings.Contains(output, "Goblin takes 5 poison damage!") {
		t.Error("expected poison tick line")
	}
	if !strings.Contains(output, "(poisoned, 2 turns)") {
		t.Error("expected poison annotation in status block")
	}
}

func TestCLI_InvalidNumberInput(t *testing.T) {
	c, out := newTestCLI(t, "abc\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Invalid input. Please enter a number.") {
		t.Error("expected invalid input message")
	}
	if c.Session.Round != 0 {
		t.Errorf("bad input should not advance the round, got round %d", c.Session.Round)
	}
}

func TestCLI_OutOfRangeTarget(t *testing.T) {
	c, out := newTestCLI(t, "5\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Invalid target.") {
		t.Error("expected rejection for out-of-range target")
	}
	if c.Session.Round != 0 {
		t.Errorf("rejected target should not advance the round, got round %d", c.Session.Round)
	}
}

func TestCLI_DeadTargetRejected(t *testing.T) {
	c, out := newTestCLI(t, strings.Repeat("1\n", 3)+"1\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Goblin is already defeated.") {
		t.Error("expected rejection for dead target")
	}
	if c.Session.Round != 3 {
		t.Errorf("expected 3 completed rounds, got %d", c.Session.Round)
	}
}

func TestCLI_HelpCommand(t *testing.T) {
	c, out := newTestCLI(t, "/help\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "/status") {
		t.Error("expected /status in help output")
	}
	if !strings.Contains(output, "/trace") {
		t.Error("expected /trace in help output")
	}
	if !strings.Contains(output, "/quit") {
		t.Error("expected /quit in help output")
	}
	if !strings.Contains(output, "poison") {
		t.Error("expected combat notes in help output")
	}
}

func TestCLI_StatusCommand(t *testing.T) {
	c, out := newTestCLI(t, "/status\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Round: 0") {
		t.Error("expected round count in status output")
	}
	if !strings.Contains(output, "Outcome: InProgress") {
		t.Error("expected outcome in status output")
	}
	if !strings.Contains(output, "Seed: 0") {
		t.Error("expected seed in status output")
	}
}

func TestCLI_TraceToggle(t *testing.T) {
	c, out := newTestCLI(t, "/trace\n1\n/trace\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Trace output enabled") {
		t.Error("expected trace enabled message")
	}
	if !strings.Contains(output, "Trace output disabled") {
		t.Error("expected trace disabled message")
	}
	if !strings.Contains(output, "[trace]") {
		t.Error("expected trace lines for the traced round")
	}
}

func TestCLI_UnknownMetaCommand(t *testing.T) {
	c, out := newTestCLI(t, "/bogus\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Unknown command") {
		t.Error("expected unknown command message")
	}
}

func TestCLI_QuitLeavesFightUndecided(t *testing.T) {
	c, _ := newTestCLI(t, "/quit\n")
	c.Run()

	if c.Session.Round != 0 {
		t.Errorf("expected no rounds played, got %d", c.Session.Round)
	}
	if got := c.Session.Outcome(); got != engine.InProgress {
		t.Errorf("expected InProgress after quitting, got %v", got)
	}
}

func TestCLI_InputRunsOutMidFight(t *testing.T) {
	c, out := newTestCLI(t, "1\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "You attacked Goblin for 10 damage.") {
		t.Error("expected the played round in output")
	}
	if c.Session.Round != 1 {
		t.Errorf("expected 1 completed round, got %d", c.Session.Round)
	}
}

func TestCLI_EmptyAndCommentLinesSkipped(t *testing.T) {
	c, out := newTestCLI(t, "\n\n# aim for the goblin\n1\n/quit\n")
	c.Run()

	output := out.String()
	if got := strings.Count(output, "You attacked"); got != 1 {
		t.Errorf("expected exactly 1 attack, got %d", got)
	}
	if strings.Contains(output, "Invalid input") {
		t.Error("blank and comment lines should be silently skipped")
	}
}

func TestCLI_EchoInput(t *testing.T) {
	c, out := newTestCLI(t, "1\n/quit\n")
	c.EchoInput = true
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Select target number: 1\n") {
		t.Error("expected input echoed after the prompt")
	}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleCrit = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	stylePoison = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135"))

	styleEnemyTurn = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	styleVictory = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	styleDefeat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindCrit
	kindPoison
	kindEnemyTurn
	kindVictory
	kindDefeat
	kindStatus
	kindSystem
	kindError
	kindTrace
)

// classifyLine determines what kind of output line this is. Status lines
// win over poison lines, so a poisoned combatant's health line stays in the
// status color.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case line == "Critical hit!":
		return kindCrit
	case strings.HasPrefix(line, "Victory!"):
		return kindVictory
	case strings.HasPrefix(line, "Defeat!"):
		return kindDefeat
	case strings.HasPrefix(line, "Enemy Turn:"):
		return kindEnemyTurn
	case strings.HasPrefix(line, "---"), strings.Contains(line, " HP:"):
		return kindStatus
	case strings.Contains(line, "poison"):
		return kindPoison
	case strings.HasPrefix(line, "Invalid"),
		strings.HasSuffix(line, "is already defeated."):
		return kindError
	default:
		return kindNarrative
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}

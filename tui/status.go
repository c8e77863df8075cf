package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/skirmish/engine/roster"
	"github.com/nathoo/skirmish/engine/status"
)

// hpString renders a combatant's health for the status bar.
// "28/100", "28/100 PSN" while poisoned, "DEAD" at zero.
func hpString(c *roster.Character) string {
	if !c.IsAlive() {
		return "DEAD"
	}
	s := fmt.Sprintf("%d/%d", c.Health, c.MaxHealth)
	if c.HasStatus(status.Poison) {
		s += " PSN"
	}
	return s
}

// renderStatusBar produces a full-width inverted status line showing the
// player's health, the round count, and every enemy's health.
func (m Model) renderStatusBar() string {
	r := m.session.Roster

	left := fmt.Sprintf(" %s %s | Round %d", r.Player.Name, hpString(r.Player), m.session.Round)

	parts := make([]string, 0, len(r.Enemies))
	for _, e := range r.Enemies {
		parts = append(parts, fmt.Sprintf("%s %s", e.Name, hpString(e)))
	}
	right := strings.Join(parts, " | ") + " "

	// Show every enemy if the list fits, otherwise just the alive count.
	if lipgloss.Width(left)+lipgloss.Width(right)+2 >= m.width {
		right = fmt.Sprintf("Enemies: %d/%d ", r.AliveEnemyCount(), len(r.Enemies))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

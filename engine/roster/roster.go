// Package roster manages the combatants of a single fight: the player, the
// fixed enemy line-up, and the speed-ordered view of who acts when.
package roster

import (
	"sort"

	"github.com/nathoo/skirmish/engine/status"
)

// Character is one combatant's mutable state. A character is never removed
// from its roster; death just means Health reached 0.
type Character struct {
	ID        string // unique per spawn
	Name      string
	Health    int
	MaxHealth int
	Attack    int
	Defense   int
	Speed     int
	Statuses  status.Set
}

// IsAlive reports whether the character can still act and be targeted.
func (c *Character) IsAlive() bool {
	return c.Health > 0
}

// TakeDamage applies an incoming hit. Defense reduces it flat, but every hit
// deals at least 1 so high defense can't stall a fight. Health never drops
// below 0. Returns the effective damage after defense.
func (c *Character) TakeDamage(incoming int) int {
	dealt := incoming - c.Defense
	if dealt < 1 {
		dealt = 1
	}
	c.Health -= dealt
	if c.Health < 0 {
		c.Health = 0
	}
	return dealt
}

// ApplyStatus afflicts the character. Re-applying an active effect resets
// its countdown.
func (c *Character) ApplyStatus(k status.Kind, turns int) {
	c.Statuses.Apply(k, turns)
}

// HasStatus reports whether the effect is active on this character.
func (c *Character) HasStatus(k status.Kind) bool {
	return c.Statuses.Active(k)
}

// StatusTurns returns the rounds remaining for the effect, 0 when inactive.
func (c *Character) StatusTurns(k status.Kind) int {
	return c.Statuses.Turns(k)
}

// TickStatuses resolves the character's end-of-round effects. Tick damage
// bypasses defense entirely; health is still clamped at 0.
func (c *Character) TickStatuses() []status.Tick {
	ticks := c.Statuses.Tick()
	for _, tk := range ticks {
		c.Health -= tk.Damage
		if c.Health < 0 {
			c.Health = 0
		}
	}
	return ticks
}

// Roster is the fixed set of combatants in one fight. The enemy slice never
// grows or shrinks once the fight starts.
type Roster struct {
	Player  *Character
	Enemies []*Character
}

// New builds a roster from a player and its opposition.
func New(player *Character, enemies ...*Character) *Roster {
	return &Roster{Player: player, Enemies: enemies}
}

// All returns every combatant in roster order: the player first, then the
// enemies in their fixed slots. This order breaks speed ties.
func (r *Roster) All() []*Character {
	all := make([]*Character, 0, len(r.Enemies)+1)
	all = append(all, r.Player)
	all = append(all, r.Enemies...)
	return all
}

// TurnOrder returns the living combatants sorted by descending speed.
// Equal speeds keep roster order. Recomputed every round, so characters who
// died last round drop out here.
func (r *Roster) TurnOrder() []*Character {
	var order []*Character
	for _, c := range r.All() {
		if c.IsAlive() {
			order = append(order, c)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Speed > order[j].Speed
	})
	return order
}

// EnemyAt returns the enemy in the given roster slot, or nil if the index
// is out of range.
func (r *Roster) EnemyAt(i int) *Character {
	if i < 0 || i >= len(r.Enemies) {
		return nil
	}
	return r.Enemies[i]
}

// AliveEnemyCount returns how many enemies are still standing.
func (r *Roster) AliveEnemyCount() int {
	n := 0
	for _, e := range r.Enemies {
		if e.IsAlive() {
			n++
		}
	}
	return n
}

// AllEnemiesDown reports whether every enemy is dead.
func (r *Roster) AllEnemiesDown() bool {
	return r.AliveEnemyCount() == 0
}

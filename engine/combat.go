package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/skirmish/engine/roster"
	"github.com/nathoo/skirmish/engine/status"
	"github.com/nathoo/skirmish/types"
)

// Combat tuning. Criticals and poison are player-only mechanics; enemies
// land flat hits.
const (
	// CritChance is the probability that a player blow is a critical.
	CritChance = 0.10
	// PoisonChance is the probability that a player blow poisons its target.
	PoisonChance = 0.20
)

// StrikeDamage computes the base damage of a player blow. A critical
// multiplies the base by 1.5, floored, before the target's defense comes
// off. Consumes one uniform draw.
func StrikeDamage(attack int, rng *RNG) (base int, critical bool) {
	base = attack
	if rng.Chance(CritChance) {
		base = base * 3 / 2 // x1.5, floored
		critical = true
	}
	return base, critical
}

// playerAttack resolves the player's blow against the chosen enemy plus the
// independent poison roll. Two uniform draws are consumed on every attack,
// crit first, then poison, so scripted draw sequences line up round after
// round. Poison only sticks when the target survives the hit.
func (s *Session) playerAttack(target *roster.Character, result *types.Result) {
	player := s.Roster.Player

	base, critical := StrikeDamage(player.Attack, s.RNG)
	if critical {
		result.Output = append(result.Output, "Critical hit!")
	}
	dealt := target.TakeDamage(base)
	result.Output = append(result.Output, fmt.Sprintf("You attacked %s for %d damage.", target.Name, dealt))
	result.Events = append(result.Events, types.Event{
		Type: "attack",
		Data: map[string]any{
			"attacker":    player.Name,
			"attacker_id": player.ID,
			"target":      target.Name,
			"target_id":   target.ID,
			"damage":      dealt,
			"critical":    critical,
		},
	})

	poisoned := s.RNG.Chance(PoisonChance)
	if !target.IsAlive() {
		result.Events = append(result.Events, deathEvent(target))
		return
	}
	if poisoned {
		target.ApplyStatus(status.Poison, status.PoisonTurns)
		result.Output = append(result.Output, fmt.Sprintf("%s is poisoned!", target.Name))
		result.Events = append(result.Events, types.Event{
			Type: "poison_applied",
			Data: map[string]any{
				"target":    target.Name,
				"target_id": target.ID,
				"turns":     status.PoisonTurns,
			},
		})
	}
}

// enemyAttack resolves one enemy's blow against the player. Enemies have no
// critical mechanic: the hit is their flat attack against the player's
// defense. Defeat latches the moment the player's health reaches 0.
func (s *Session) enemyAttack(enemy *roster.Character, result *types.Result) {
	player := s.Roster.Player

	result.Output = append(result.Output, fmt.Sprintf("Enemy Turn: %s", enemy.Name))
	dealt := player.TakeDamage(enemy.Attack)
	result.Output = append(result.Output, fmt.Sprintf("%s attacks you for %d damage.", enemy.Name, dealt))
	result.Events = append(result.Events, types.Event{
		Type: "attack",
		Data: map[string]any{
			"attacker":    enemy.Name,
			"attacker_id": enemy.ID,
			"target":      player.Name,
			"target_id":   player.ID,
			"damage":      dealt,
			"critical":    false,
		},
	})

	if !player.IsAlive() {
		result.Events = append(result.Events, deathEvent(player))
		s.outcome = Defeat
	}
}

// poisonPhase ticks every living afflicted combatant at the end of the
// round, the player first, then enemies in roster order. Tick damage
// bypasses defense. A lethal tick on the player latches Defeat; a lethal
// tick on the last enemy does not award Victory once Defeat is latched.
func (s *Session) poisonPhase(result *types.Result) {
	for _, c := range s.Roster.All() {
		if !c.IsAlive() {
			continue
		}
		for _, tk := range c.TickStatuses() {
			result.Output = append(result.Output, tickLine(c.Name, tk))
			result.Events = append(result.Events, types.Event{
				Type: "poison_tick",
				Data: map[string]any{
					"target":    c.Name,
					"target_id": c.ID,
					"status":    tk.Kind.String(),
					"damage":    tk.Damage,
				},
			})
			if tk.Expired {
				result.Output = append(result.Output, expiredLine(c.Name, tk.Kind))
				result.Events = append(result.Events, types.Event{
					Type: "status_expired",
					Data: map[string]any{
						"target":    c.Name,
						"target_id": c.ID,
						"status":    tk.Kind.String(),
					},
				})
			}
		}
		if !c.IsAlive() {
			result.Events = append(result.Events, deathEvent(c))
			if c == s.Roster.Player && s.outcome == InProgress {
				s.outcome = Defeat
			}
		}
	}
}

// tickLine renders one end-of-round damage tick.
func tickLine(name string, tk status.Tick) string {
	return fmt.Sprintf("%s takes %d %s damage!", name, tk.Damage, strings.ToLower(tk.Kind.String()))
}

// expiredLine renders an effect wearing off.
func expiredLine(name string, k status.Kind) string {
	switch k {
	case status.Poison:
		return fmt.Sprintf("%s is no longer poisoned.", name)
	default:
		return fmt.Sprintf("%s's %s wears off.", name, strings.ToLower(k.String()))
	}
}

// deathEvent records a combatant crossing to 0 health. Emitted at most once
// per combatant: the dead are skipped by every later action.
func deathEvent(c *roster.Character) types.Event {
	return types.Event{
		Type: "death",
		Data: map[string]any{"name": c.Name, "id": c.ID},
	}
}

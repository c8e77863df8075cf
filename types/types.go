// Package types defines the shared data structures for the Skirmish engine.
// This package contains only type definitions — no logic, no methods.
package types

// Event is emitted by the engine as a round resolves. Data keys depend on
// the event type (combatant IDs, damage amounts, round numbers).
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of resolving a single combat round.
type Result struct {
	Events []Event
	Output []string
}

// TargetOption is one selectable enemy presented to the player.
// Index is the enemy's fixed position in the roster (0-based); front ends
// display it 1-based. Dead enemies are never offered, so indices may be
// sparse once the fight thins out.
type TargetOption struct {
	Index     int
	Name      string
	Health    int
	MaxHealth int
}

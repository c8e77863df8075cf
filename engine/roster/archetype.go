package roster

import (
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Archetype is a combatant template. Spawning copies the stats into a fresh
// Character, so one archetype can field any number of instances.
type Archetype struct {
	ID        string // lowercase identifier; the display name derives from it
	Health    int
	MaxHealth int
	Attack    int
	Defense   int
	Speed     int
}

// The stock combatants. The hero starts the fight wounded at half health.
var (
	Hero   = Archetype{ID: "hero", Health: 50, MaxHealth: 100, Attack: 15, Defense: 10, Speed: 12}
	Goblin = Archetype{ID: "goblin", Health: 30, MaxHealth: 30, Attack: 8, Defense: 5, Speed: 10}
	Orc    = Archetype{ID: "orc", Health: 50, MaxHealth: 50, Attack: 12, Defense: 8, Speed: 8}
)

// Spawn creates a combatant from the template with its own identity.
func (a Archetype) Spawn() *Character {
	return &Character{
		ID:        uuid.New().String(),
		Name:      cases.Title(language.English).String(a.ID),
		Health:    a.Health,
		MaxHealth: a.MaxHealth,
		Attack:    a.Attack,
		Defense:   a.Defense,
		Speed:     a.Speed,
	}
}

// Default returns the stock matchup: the hero against a goblin and an orc.
func Default() *Roster {
	return New(Hero.Spawn(), Goblin.Spawn(), Orc.Spawn())
}

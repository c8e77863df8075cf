// Package status implements timed status effects with a per-round countdown.
// Effects are tracked per combatant and resolved once at the end of each
// round, after all turns.
package status

// Kind identifies a status effect.
type Kind uint8

const (
	// Poison deals fixed damage at the end of every round, ignoring the
	// victim's defense.
	Poison Kind = iota
)

// PoisonTurns is the countdown set by every poison application.
const PoisonTurns = 3

const poisonTickDamage = 5

func (k Kind) String() string {
	switch k {
	case Poison:
		return "Poison"
	default:
		return "Unknown"
	}
}

// TickDamage returns the damage one end-of-round tick of this effect deals.
func (k Kind) TickDamage() int {
	switch k {
	case Poison:
		return poisonTickDamage
	default:
		return 0
	}
}

// Tick reports one end-of-round effect resolution.
type Tick struct {
	Kind    Kind
	Damage  int
	Expired bool // the effect wore off with this tick
}

// Set tracks the active effects on one combatant: each Kind maps to the
// number of rounds it has left. The zero value is ready to use.
type Set struct {
	remaining map[Kind]int
}

// Apply afflicts the combatant for the given number of rounds. Re-applying
// an active effect resets its countdown; effects never stack.
func (s *Set) Apply(k Kind, turns int) {
	if turns <= 0 {
		return
	}
	if s.remaining == nil {
		s.remaining = map[Kind]int{}
	}
	s.remaining[k] = turns
}

// Active reports whether the effect is currently in force.
func (s *Set) Active(k Kind) bool {
	return s.remaining[k] > 0
}

// Turns returns the rounds remaining for the effect, 0 when inactive.
func (s *Set) Turns(k Kind) int {
	return s.remaining[k]
}

// Tick decrements every active effect by one round and reports the damage
// each dealt. Results come back in ascending Kind order so logs are stable.
func (s *Set) Tick() []Tick {
	if len(s.remaining) == 0 {
		return nil
	}
	var ticks []Tick
	for k := Kind(0); int(k) < len(kindOrder); k++ {
		left, ok := s.remaining[k]
		if !ok || left <= 0 {
			continue
		}
		left--
		tick := Tick{Kind: k, Damage: k.TickDamage(), Expired: left == 0}
		if left == 0 {
			delete(s.remaining, k)
		} else {
			s.remaining[k] = left
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

// kindOrder pins the number of defined kinds for the ordered Tick sweep.
var kindOrder = [...]Kind{Poison}

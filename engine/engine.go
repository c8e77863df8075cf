// Package engine provides the Step() orchestrator that resolves one combat
// round at a time: turn order, the player's strike, enemy retaliation, the
// poison phase, and the outcome check.
package engine

import (
	"errors"
	"fmt"

	"github.com/nathoo/skirmish/engine/roster"
	"github.com/nathoo/skirmish/engine/status"
	"github.com/nathoo/skirmish/types"
)

// Outcome is the state of a combat session.
type Outcome int

const (
	InProgress Outcome = iota
	Victory
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "Victory"
	case Defeat:
		return "Defeat"
	default:
		return "InProgress"
	}
}

// ErrRetry is returned by a TargetSelector that wants to be asked again,
// after reporting bad input to the player itself. The round does not
// advance.
var ErrRetry = errors.New("retry selection")

// ErrCombatOver is returned by Step once the session has reached Victory or
// Defeat.
var ErrCombatOver = errors.New("combat is over")

// InvalidTargetError rejects a selection that is out of range or points at
// a defeated enemy. Error() is printable as game output.
type InvalidTargetError struct {
	Index int    // the rejected roster index
	Name  string // set when the slot holds a defeated enemy
}

func (e *InvalidTargetError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s is already defeated.", e.Name)
	}
	return "Invalid target."
}

// TargetSelector supplies the player's target each round. SelectTarget may
// return ErrRetry to be prompted again; any other error ends the run.
type TargetSelector interface {
	SelectTarget(options []types.TargetOption) (int, error)
}

// Session owns one fight from the first round to its outcome: the roster,
// the random source, and the round counter. Sessions share nothing, so any
// number can run independently.
type Session struct {
	Roster *roster.Roster
	RNG    *RNG
	Round  int // completed rounds

	outcome Outcome
}

// NewSession creates a session over the given roster and random source.
func NewSession(r *roster.Roster, rng *RNG) *Session {
	return &Session{Roster: r, RNG: rng}
}

// Outcome reports the session state: InProgress until a full round ends
// with every enemy down (Victory), or the player's health reaches 0
// (Defeat, latched the moment it happens).
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Over reports whether the fight has been decided.
func (s *Session) Over() bool {
	return s.outcome != InProgress
}

// TargetOptions lists the living enemies the player may strike this round.
// Option indices are roster slots, so they stay stable as enemies fall.
func (s *Session) TargetOptions() []types.TargetOption {
	var options []types.TargetOption
	for i, e := range s.Roster.Enemies {
		if !e.IsAlive() {
			continue
		}
		options = append(options, types.TargetOption{
			Index:     i,
			Name:      e.Name,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
		})
	}
	return options
}

// Step resolves one full round against the enemy in the given roster slot:
// every living combatant acts in descending speed order, the poison phase
// ticks, and the status block closes the result. A slot that is out of
// range or holds a dead enemy returns *InvalidTargetError and the round
// does not advance; nothing is consumed, not even a random draw.
func (s *Session) Step(target int) (types.Result, error) {
	if s.Over() {
		return types.Result{}, ErrCombatOver
	}

	enemy := s.Roster.EnemyAt(target)
	if enemy == nil {
		return types.Result{}, &InvalidTargetError{Index: target}
	}
	if !enemy.IsAlive() {
		return types.Result{}, &InvalidTargetError{Index: target, Name: enemy.Name}
	}

	s.Round++
	var result types.Result
	result.Events = append(result.Events, types.Event{
		Type: "round",
		Data: map[string]any{"round": s.Round},
	})

	// Turns in speed order. A latched Defeat stops the round on the spot:
	// a dead player neither acts nor gets acted upon.
	for _, c := range s.Roster.TurnOrder() {
		if s.outcome != InProgress {
			break
		}
		if c == s.Roster.Player {
			s.playerAttack(enemy, &result)
			continue
		}
		if c.IsAlive() {
			s.enemyAttack(c, &result)
		}
	}

	s.poisonPhase(&result)

	result.Output = append(result.Output, s.StatusLines()...)

	// Victory is evaluated only at the end of a round, and never once
	// Defeat has latched.
	if s.outcome == InProgress && s.Roster.AllEnemiesDown() {
		s.outcome = Victory
	}
	switch s.outcome {
	case Victory:
		result.Output = append(result.Output, "Victory! All enemies defeated!")
		result.Events = append(result.Events, s.endEvent())
	case Defeat:
		result.Output = append(result.Output, "Defeat! You were defeated in combat.")
		result.Events = append(result.Events, s.endEvent())
	}

	return result, nil
}

// Run drives the session to completion over a TargetSelector, emitting each
// round's result. Invalid selections re-prompt without advancing the round;
// the rejection reaches the player through emit. Returns nil once the fight
// is decided, or the selector's error when input ends first.
func (s *Session) Run(sel TargetSelector, emit func(types.Result)) error {
	if emit == nil {
		emit = func(types.Result) {}
	}
	for !s.Over() {
		idx, err := sel.SelectTarget(s.TargetOptions())
		if errors.Is(err, ErrRetry) {
			continue
		}
		if err != nil {
			return err
		}
		result, err := s.Step(idx)
		var invalid *InvalidTargetError
		if errors.As(err, &invalid) {
			emit(types.Result{Output: []string{invalid.Error()}})
			continue
		}
		if err != nil {
			return err
		}
		emit(result)
	}
	return nil
}

// StatusLines renders the status block: every combatant's health, dead or
// alive, plus any running affliction.
func (s *Session) StatusLines() []string {
	lines := []string{"--- Current Status ---"}
	for _, c := range s.Roster.All() {
		if !c.IsAlive() {
			lines = append(lines, fmt.Sprintf("%s HP: DEAD", c.Name))
			continue
		}
		line := fmt.Sprintf("%s HP: %d/%d", c.Name, c.Health, c.MaxHealth)
		if turns := c.StatusTurns(status.Poison); turns > 0 {
			line += fmt.Sprintf(" (poisoned, %d turns)", turns)
		}
		lines = append(lines, line)
	}
	return lines
}

func (s *Session) endEvent() types.Event {
	return types.Event{
		Type: "combat_end",
		Data: map[string]any{"outcome": s.outcome.String(), "rounds": s.Round},
	}
}

package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Turn scheduling for the Action phase: round-robin seat order, a budget of
// MaxActionsPerTurn non-pass actions per turn, and pass-out semantics that
// end the phase once every seat has passed.

// beginActionPhase enters Action and hands the turn to the first unpassed
// seat with a fresh budget.
func (g *Game) beginActionPhase() {
	g.enterPhase(PhaseAction)
	g.ActiveIdx = 0
	g.ActionsTaken = 0
}

// HasPassed reports whether the seat has passed this generation.
func (g *Game) HasPassed(id PlayerID) bool { return g.Passed[id] }

func (g *Game) allPassed() bool {
	return len(g.Passed) == len(g.Players)
}

// nextUnpassed finds the next seat after idx that has not passed, wrapping.
// Returns -1 when everyone has passed.
func (g *Game) nextUnpassed(idx int) int {
	n := len(g.Players)
	for step := 1; step <= n; step++ {
		cand := (idx + step) % n
		if !g.Passed[g.Players[cand].ID] {
			return cand
		}
	}
	return -1
}

// advanceTurn hands the turn to the next unpassed seat with a fresh budget.
func (g *Game) advanceTurn() {
	next := g.nextUnpassed(g.ActiveIdx)
	if next == -1 {
		g.endActionPhase()
		return
	}
	g.ActiveIdx = next
	g.ActionsTaken = 0
}

// pass marks the active seat passed and advances. When the last seat passes
// the Action phase ends.
func (g *Game) pass() {
	id := g.Players[g.ActiveIdx].ID
	g.Passed[id] = true
	g.log.WithFields(logrus.Fields{
		"game":   g.ID,
		"player": id,
	}).Debug("player passed")
	g.advanceTurn()
}

// endActionPhase is the only Action to Production edge. The passed set
// clears so the next generation starts clean.
func (g *Game) endActionPhase() {
	g.Passed = make(map[PlayerID]bool)
	g.ActionsTaken = 0
	g.enterPhase(PhaseProduction)
}

// EndTurn voluntarily yields the turn after at least one action, without
// passing for the generation.
func (g *Game) EndTurn(id PlayerID) error {
	if g.Phase == PhaseEnd {
		return ErrGameOver
	}
	if g.Phase != PhaseAction {
		return fmt.Errorf("%w: end turn in %s", ErrPhaseMismatch, g.Phase)
	}
	active := g.ActivePlayer()
	if active == nil || active.ID != id {
		return fmt.Errorf("%w: %s is not the active player", ErrPhaseMismatch, id)
	}
	if g.ActionsTaken == 0 {
		return fmt.Errorf("%w: end turn requires at least one action (pass instead)", ErrPhaseMismatch)
	}
	g.advanceTurn()
	return nil
}

package engine

import (
	"errors"
	"testing"
)

// TestActionBudgetExceeded verifies the third non-pass action is rejected.
func TestActionBudgetExceeded(t *testing.T) {
	g := newTestGame(t, 1, DefaultConfig())
	enterActionPhase(g)
	g.ActionsTaken = MaxActionsPerTurn
	g.Players[0].Resources.Add(Megacredits, 100)

	err := g.ExecuteAction("player-1", Action{Type: ActionStandardProject, Project: PowerPlant})
	if !errors.Is(err, ErrActionBudgetExceeded) {
		t.Errorf("third action = %v, want ErrActionBudgetExceeded", err)
	}
}

// TestPassAlwaysAccepted verifies pass ignores the exhausted budget.
func TestPassAlwaysAccepted(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	enterActionPhase(g)
	g.ActionsTaken = MaxActionsPerTurn

	if err := g.ExecuteAction("player-1", PassAction()); err != nil {
		t.Fatalf("pass with exhausted budget: %v", err)
	}
	if !g.HasPassed("player-1") {
		t.Error("player-1 not marked passed")
	}
	if g.ActivePlayer().ID != "player-2" {
		t.Errorf("active = %s, want player-2", g.ActivePlayer().ID)
	}
	if g.ActionsTaken != 0 {
		t.Errorf("budget not reset: ActionsTaken = %d", g.ActionsTaken)
	}
}

// TestAllPassedEndsActionPhase verifies the only Action to Production edge.
func TestAllPassedEndsActionPhase(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	enterActionPhase(g)

	if err := g.ExecuteAction("player-1", PassAction()); err != nil {
		t.Fatalf("pass: %v", err)
	}
	if g.Phase != PhaseAction {
		t.Fatalf("phase = %s after one pass, want action", g.Phase)
	}
	if err := g.ExecuteAction("player-2", PassAction()); err != nil {
		t.Fatalf("pass: %v", err)
	}
	if g.Phase != PhaseProduction {
		t.Errorf("phase = %s, want production", g.Phase)
	}
	if len(g.Passed) != 0 {
		t.Errorf("passed set not cleared: %d entries", len(g.Passed))
	}
}

// TestPassSkipsPassedSeats verifies turn order wraps over passed players.
func TestPassSkipsPassedSeats(t *testing.T) {
	g := newTestGame(t, 3, DefaultConfig())
	enterActionPhase(g)
	g.Players[1].Resources.Add(Plants, PlantsPerGreenery)

	if err := g.ExecuteAction("player-1", PassAction()); err != nil {
		t.Fatalf("pass: %v", err)
	}
	if err := g.ExecuteAction("player-2", Action{Type: ActionConvertPlants}); err != nil {
		t.Fatalf("convert plants: %v", err)
	}
	if err := g.ExecuteAction("player-2", PassAction()); err != nil {
		t.Fatalf("pass: %v", err)
	}
	if g.ActivePlayer().ID != "player-3" {
		t.Errorf("active = %s, want player-3", g.ActivePlayer().ID)
	}
	if err := g.ExecuteAction("player-3", PassAction()); err != nil {
		t.Fatalf("pass: %v", err)
	}
	if g.Phase != PhaseProduction {
		t.Errorf("phase = %s, want production", g.Phase)
	}
}

// TestAutoAdvanceAfterSecondAction verifies the turn yields on a full
// budget.
func TestAutoAdvanceAfterSecondAction(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	enterActionPhase(g)
	g.Players[0].Resources.Add(Plants, 2*PlantsPerGreenery)

	for i := 0; i < MaxActionsPerTurn; i++ {
		if err := g.ExecuteAction("player-1", Action{Type: ActionConvertPlants}); err != nil {
			t.Fatalf("convert plants %d: %v", i, err)
		}
	}
	if g.ActivePlayer().ID != "player-2" {
		t.Errorf("active = %s, want player-2 after full budget", g.ActivePlayer().ID)
	}
	if g.ActionsTaken != 0 {
		t.Errorf("budget not reset: %d", g.ActionsTaken)
	}
}

// TestWrongActor verifies off-turn actions are rejected.
func TestWrongActor(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	enterActionPhase(g)

	if err := g.ExecuteAction("player-2", PassAction()); !errors.Is(err, ErrPhaseMismatch) {
		t.Errorf("off-turn pass = %v, want ErrPhaseMismatch", err)
	}
}

// TestEndTurn verifies the voluntary yield rules.
func TestEndTurn(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	enterActionPhase(g)
	g.Players[0].Resources.Add(Plants, PlantsPerGreenery)

	if err := g.EndTurn("player-1"); !errors.Is(err, ErrPhaseMismatch) {
		t.Errorf("end turn with no actions = %v, want ErrPhaseMismatch", err)
	}
	if err := g.ExecuteAction("player-1", Action{Type: ActionConvertPlants}); err != nil {
		t.Fatalf("convert plants: %v", err)
	}
	if err := g.EndTurn("player-1"); err != nil {
		t.Fatalf("end turn: %v", err)
	}
	if g.ActivePlayer().ID != "player-2" {
		t.Errorf("active = %s, want player-2", g.ActivePlayer().ID)
	}
	if err := g.EndTurn("player-1"); !errors.Is(err, ErrPhaseMismatch) {
		t.Errorf("off-turn end turn = %v, want ErrPhaseMismatch", err)
	}
}

// TestStalledQueueBlocksActions verifies the pre-dispatch drain surfaces a
// stall without consuming the action.
func TestStalledQueueBlocksActions(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	enterActionPhase(g)
	p := g.Players[0]
	p.Resources.Add(Plants, PlantsPerGreenery)
	g.Defer(CollectCostEffect(p.ID, 50))

	err := g.ExecuteAction(p.ID, Action{Type: ActionConvertPlants})
	if !errors.Is(err, ErrAwaitingInput) {
		t.Fatalf("action over stalled queue = %v, want ErrAwaitingInput", err)
	}
	if g.ActionsTaken != 0 {
		t.Errorf("stalled dispatch consumed budget: %d", g.ActionsTaken)
	}
	if p.Resources.Plants != PlantsPerGreenery {
		t.Error("action applied despite stall")
	}

	p.Resources.Add(Megacredits, 50)
	if err := g.ExecuteAction(p.ID, Action{Type: ActionConvertPlants}); err != nil {
		t.Fatalf("action after funding: %v", err)
	}
	if p.Resources.Plants != 0 {
		t.Errorf("plants = %d, want 0", p.Resources.Plants)
	}
}

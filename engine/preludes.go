package engine

import "fmt"

// Preludes phase: each seat plays its selected preludes in seat order, then
// the Action phase opens. Prelude card content resolves outside the engine;
// hosts defer the card's effects right after a successful play.

// startPreludes enters the Preludes phase with the first seat active.
func (g *Game) startPreludes() {
	g.enterPhase(PhasePreludes)
	g.ActiveIdx = 0
	g.advancePreludeTurn()
}

// PlayPrelude plays one of the active player's selected preludes.
func (g *Game) PlayPrelude(id PlayerID, card CardID) error {
	if g.Phase == PhaseEnd {
		return ErrGameOver
	}
	if g.Phase != PhasePreludes {
		return fmt.Errorf("%w: prelude play in %s", ErrPhaseMismatch, g.Phase)
	}
	active := g.ActivePlayer()
	if active == nil || active.ID != id {
		return fmt.Errorf("%w: %s is not the active player", ErrPhaseMismatch, id)
	}
	var ok bool
	active.SelectedPreludes, ok = removeCard(active.SelectedPreludes, card)
	if !ok {
		return fmt.Errorf("%w: prelude %s not selected by %s", ErrNotFound, card, id)
	}
	active.PlayedPreludes = append(active.PlayedPreludes, card)
	g.advancePreludeTurn()
	return nil
}

// advancePreludeTurn keeps the turn on the first seat (from the active one
// onward) with preludes left, or opens the Action phase when none remain.
func (g *Game) advancePreludeTurn() {
	n := len(g.Players)
	for step := 0; step < n; step++ {
		idx := (g.ActiveIdx + step) % n
		if len(g.Players[idx].SelectedPreludes) > 0 {
			g.ActiveIdx = idx
			return
		}
	}
	g.beginActionPhase()
}

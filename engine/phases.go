package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Inter-phase processing: production, the solar phase, and the
// intergeneration hand-off into the next generation's draft or research.

// ProcessProduction applies the production step to every seat and advances
// to Solar (Venus enabled) or Intergeneration.
func (g *Game) ProcessProduction() error {
	if g.Phase == PhaseEnd {
		return ErrGameOver
	}
	if g.Phase != PhaseProduction {
		return fmt.Errorf("%w: production in %s", ErrPhaseMismatch, g.Phase)
	}

	for _, p := range g.Players {
		// Leftover energy converts to heat before income.
		p.Resources.Heat += p.Resources.Energy
		p.Resources.Energy = 0

		income := int64(p.TerraformRating) + int64(p.Production.Megacredits)
		if income > 0 {
			p.Resources.Megacredits += uint32(income)
		}
		p.Resources.Steel += p.Production.Steel
		p.Resources.Titanium += p.Production.Titanium
		p.Resources.Plants += p.Production.Plants
		p.Resources.Energy += p.Production.Energy
		p.Resources.Heat += p.Production.Heat
	}

	if g.Config.VenusNext {
		g.WGTDone = false
		g.enterPhase(PhaseSolar)
	} else {
		g.enterPhase(PhaseIntergeneration)
	}
	return nil
}

// WorldGovernmentTerraform raises one parameter a single step during Solar,
// once per generation, without crediting any terraform rating.
func (g *Game) WorldGovernmentTerraform(param GlobalParameter) error {
	if g.Phase == PhaseEnd {
		return ErrGameOver
	}
	if g.Phase != PhaseSolar {
		return fmt.Errorf("%w: world government terraforming in %s", ErrPhaseMismatch, g.Phase)
	}
	if g.WGTDone {
		return fmt.Errorf("%w: world government terraforming this generation", ErrAlreadyClaimed)
	}
	if !g.Params.CanIncrease(param) {
		return fmt.Errorf("%w: %s already at maximum", ErrInsufficientResource, param)
	}
	g.Params.Increase(param, 1)
	g.WGTDone = true
	return nil
}

// CompleteSolarPhase runs the Mars-only end check (Venus deliberately
// ignored) and advances to Intergeneration.
func (g *Game) CompleteSolarPhase() error {
	if g.Phase == PhaseEnd {
		return ErrGameOver
	}
	if g.Phase != PhaseSolar {
		return fmt.Errorf("%w: solar completion in %s", ErrPhaseMismatch, g.Phase)
	}
	if g.checkGameEnd(false) {
		return nil
	}
	g.enterPhase(PhaseIntergeneration)
	return nil
}

// ProcessIntergeneration runs the end checks around the generation
// increment, resets per-generation state, and opens the next generation's
// drafting or research.
func (g *Game) ProcessIntergeneration() error {
	if g.Phase == PhaseEnd {
		return ErrGameOver
	}
	if g.Phase != PhaseIntergeneration {
		return fmt.Errorf("%w: intergeneration in %s", ErrPhaseMismatch, g.Phase)
	}

	if g.checkGameEnd(g.Config.VenusNext) {
		return nil
	}
	g.Generation++
	if g.checkGameEnd(g.Config.VenusNext) {
		return nil
	}

	for _, p := range g.Players {
		p.ResearchDone = false
	}
	g.log.WithFields(logrus.Fields{
		"game":       g.ID,
		"generation": g.Generation,
	}).Info("generation advanced")

	if g.Config.DraftVariant && len(g.Players) > 1 {
		g.startDraft(DraftStandard)
		return nil
	}
	g.enterPhase(PhaseResearch)
	g.startResearch()
	return nil
}

// Advance runs the current phase's processing step when the phase advances
// without player input. Phases driven by player operations return
// ErrPhaseMismatch.
func (g *Game) Advance() error {
	switch g.Phase {
	case PhaseProduction:
		return g.ProcessProduction()
	case PhaseSolar:
		return g.CompleteSolarPhase()
	case PhaseIntergeneration:
		return g.ProcessIntergeneration()
	case PhaseEnd:
		return ErrGameOver
	}
	return fmt.Errorf("%w: %s advances through player operations", ErrPhaseMismatch, g.Phase)
}

// checkGameEnd evaluates the win conditions and, when met, moves the session
// to End. Multiplayer ends when every enabled parameter saturates; solo also
// ends when the player's terraform rating reaches SoloTerraformWin.
func (g *Game) checkGameEnd(includeVenus bool) bool {
	won := g.Params.Terraformed(includeVenus)
	if !won && g.Solo() {
		won = g.Players[0].TerraformRating >= SoloTerraformWin
	}
	if !won {
		return false
	}
	g.enterPhase(PhaseEnd)
	g.log.WithFields(logrus.Fields{
		"game":       g.ID,
		"generation": g.Generation,
		"params":     g.Params.String(),
	}).Info("game ended")
	return true
}

package engine

import (
	"errors"
	"testing"
)

// TestProductionIncome verifies energy decay, rating income and production
// payouts.
func TestProductionIncome(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	g.Phase = PhaseProduction
	p := g.Players[0]
	p.Resources.Energy = 4
	p.Resources.Heat = 1
	p.Production.Megacredits = 3
	p.Production.Heat = 2
	p.Production.Energy = 1
	p.Production.Plants = 2

	if err := g.ProcessProduction(); err != nil {
		t.Fatalf("ProcessProduction: %v", err)
	}
	if p.Resources.Heat != 7 { // 1 + 4 converted + 2 produced
		t.Errorf("heat = %d, want 7", p.Resources.Heat)
	}
	if p.Resources.Energy != 1 {
		t.Errorf("energy = %d, want 1", p.Resources.Energy)
	}
	if p.Resources.Megacredits != 23 { // rating 20 + production 3
		t.Errorf("megacredits = %d, want 23", p.Resources.Megacredits)
	}
	if p.Resources.Plants != 2 {
		t.Errorf("plants = %d, want 2", p.Resources.Plants)
	}
}

// TestNegativeMCProduction verifies negative production nets against rating.
func TestNegativeMCProduction(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	g.Phase = PhaseProduction
	p := g.Players[0]
	p.Production.Megacredits = -5

	if err := g.ProcessProduction(); err != nil {
		t.Fatalf("ProcessProduction: %v", err)
	}
	if p.Resources.Megacredits != 15 {
		t.Errorf("megacredits = %d, want 15", p.Resources.Megacredits)
	}
}

// TestProductionTransition verifies the Venus-dependent next phase.
func TestProductionTransition(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	g.Phase = PhaseProduction
	if err := g.ProcessProduction(); err != nil {
		t.Fatalf("ProcessProduction: %v", err)
	}
	if g.Phase != PhaseIntergeneration {
		t.Errorf("phase = %s, want intergeneration", g.Phase)
	}

	cfg := DefaultConfig()
	cfg.VenusNext = true
	g2 := newTestGame(t, 2, cfg)
	g2.Phase = PhaseProduction
	if err := g2.ProcessProduction(); err != nil {
		t.Fatalf("ProcessProduction: %v", err)
	}
	if g2.Phase != PhaseSolar {
		t.Errorf("phase = %s, want solar", g2.Phase)
	}
}

// TestWorldGovernmentTerraform verifies the once-per-generation raise with
// no rating credit.
func TestWorldGovernmentTerraform(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VenusNext = true
	g := newTestGame(t, 2, cfg)
	g.Phase = PhaseSolar

	if err := g.WorldGovernmentTerraform(ParamVenus); err != nil {
		t.Fatalf("WorldGovernmentTerraform: %v", err)
	}
	if got := g.Params.Get(ParamVenus); got != 2 {
		t.Errorf("venus = %d, want 2", got)
	}
	for _, p := range g.Players {
		if p.TerraformRating != StartingTerraformRating {
			t.Errorf("player %s rating = %d, want unchanged", p.ID, p.TerraformRating)
		}
	}
	if err := g.WorldGovernmentTerraform(ParamOxygen); !errors.Is(err, ErrAlreadyClaimed) {
		t.Errorf("second raise = %v, want ErrAlreadyClaimed", err)
	}
}

// TestSolarMarsOnlyCheck verifies the solar end check ignores Venus.
func TestSolarMarsOnlyCheck(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VenusNext = true
	g := newTestGame(t, 2, cfg)
	g.Phase = PhaseSolar
	g.Params.Increase(ParamOceans, 9)
	g.Params.Increase(ParamOxygen, 14)
	g.Params.Increase(ParamTemperature, 19)
	// Venus stays at 0.

	if err := g.CompleteSolarPhase(); err != nil {
		t.Fatalf("CompleteSolarPhase: %v", err)
	}
	if g.Phase != PhaseEnd {
		t.Errorf("phase = %s, want end (Venus ignored in solar check)", g.Phase)
	}
}

// TestSolarAdvancesWhenUnfinished verifies Solar to Intergeneration.
func TestSolarAdvancesWhenUnfinished(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VenusNext = true
	g := newTestGame(t, 2, cfg)
	g.Phase = PhaseSolar

	if err := g.CompleteSolarPhase(); err != nil {
		t.Fatalf("CompleteSolarPhase: %v", err)
	}
	if g.Phase != PhaseIntergeneration {
		t.Errorf("phase = %s, want intergeneration", g.Phase)
	}
}

// TestIntergenerationAdvancesGeneration verifies the increment and the next
// phase without drafting.
func TestIntergenerationAdvancesGeneration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DraftVariant = false
	g := newTestGame(t, 2, cfg)
	g.Phase = PhaseIntergeneration
	g.Players[0].ResearchDone = true

	if err := g.ProcessIntergeneration(); err != nil {
		t.Fatalf("ProcessIntergeneration: %v", err)
	}
	if g.Generation != 2 {
		t.Errorf("generation = %d, want 2", g.Generation)
	}
	if g.Phase != PhaseResearch {
		t.Errorf("phase = %s, want research", g.Phase)
	}
	for _, p := range g.Players {
		if p.ResearchDone {
			t.Errorf("player %s ResearchDone not reset", p.ID)
		}
		if len(p.Drafted) != ResearchProjectOffer {
			t.Errorf("player %s offer = %d cards, want %d", p.ID, len(p.Drafted), ResearchProjectOffer)
		}
	}
}

// TestIntergenerationDraftVariant verifies the hand-off into drafting.
func TestIntergenerationDraftVariant(t *testing.T) {
	g := newTestGame(t, 3, DefaultConfig())
	g.Phase = PhaseIntergeneration

	if err := g.ProcessIntergeneration(); err != nil {
		t.Fatalf("ProcessIntergeneration: %v", err)
	}
	if g.Phase != PhaseDrafting {
		t.Errorf("phase = %s, want drafting", g.Phase)
	}
	if g.Generation != 2 {
		t.Errorf("generation = %d, want 2", g.Generation)
	}
	for _, p := range g.Players {
		if len(p.DraftHand) != ResearchProjectOffer {
			t.Errorf("player %s draft hand = %d, want %d", p.ID, len(p.DraftHand), ResearchProjectOffer)
		}
	}
}

// TestWinBeforeGenerationIncrement verifies the pre-increment end check.
func TestWinBeforeGenerationIncrement(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	g.Phase = PhaseIntergeneration
	g.Params.Increase(ParamOceans, 9)
	g.Params.Increase(ParamOxygen, 14)
	g.Params.Increase(ParamTemperature, 19)

	if err := g.ProcessIntergeneration(); err != nil {
		t.Fatalf("ProcessIntergeneration: %v", err)
	}
	if g.Phase != PhaseEnd {
		t.Errorf("phase = %s, want end", g.Phase)
	}
	if g.Generation != 1 {
		t.Errorf("generation = %d, want 1 (ended before increment)", g.Generation)
	}
}

// TestVenusBlocksMultiplayerWin verifies the intergeneration check includes
// an enabled Venus track.
func TestVenusBlocksMultiplayerWin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VenusNext = true
	cfg.DraftVariant = false
	g := newTestGame(t, 2, cfg)
	g.Phase = PhaseIntergeneration
	g.Params.Increase(ParamOceans, 9)
	g.Params.Increase(ParamOxygen, 14)
	g.Params.Increase(ParamTemperature, 19)

	if err := g.ProcessIntergeneration(); err != nil {
		t.Fatalf("ProcessIntergeneration: %v", err)
	}
	if g.Phase == PhaseEnd {
		t.Error("ended with Venus enabled but unfinished")
	}
	if g.Generation != 2 {
		t.Errorf("generation = %d, want 2", g.Generation)
	}
}

// TestSoloTerraformRatingWin verifies the solo rating threshold.
func TestSoloTerraformRatingWin(t *testing.T) {
	g := newTestGame(t, 1, DefaultConfig())
	g.Phase = PhaseIntergeneration
	g.Players[0].TerraformRating = SoloTerraformWin

	if err := g.ProcessIntergeneration(); err != nil {
		t.Fatalf("ProcessIntergeneration: %v", err)
	}
	if g.Phase != PhaseEnd {
		t.Errorf("phase = %s, want end at rating %d", g.Phase, SoloTerraformWin)
	}
}

// TestTerminalRejectsOperations verifies the End phase is absorbing.
func TestTerminalRejectsOperations(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	g.Phase = PhaseEnd

	if err := g.ProcessProduction(); !errors.Is(err, ErrGameOver) {
		t.Errorf("ProcessProduction = %v, want ErrGameOver", err)
	}
	if err := g.ExecuteAction("player-1", PassAction()); !errors.Is(err, ErrGameOver) {
		t.Errorf("ExecuteAction = %v, want ErrGameOver", err)
	}
	if err := g.ProcessIntergeneration(); !errors.Is(err, ErrGameOver) {
		t.Errorf("ProcessIntergeneration = %v, want ErrGameOver", err)
	}
	if !g.IsTerminal() {
		t.Error("IsTerminal() = false in End phase")
	}
}

// TestAdvanceDispatch verifies the generic advance runs the current phase's
// processing step and refuses input-driven phases.
func TestAdvanceDispatch(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())
	g.Phase = PhaseProduction
	if err := g.Advance(); err != nil {
		t.Fatalf("Advance in production: %v", err)
	}
	if g.Phase != PhaseIntergeneration {
		t.Errorf("phase = %s, want intergeneration", g.Phase)
	}
	if err := g.Advance(); err != nil {
		t.Fatalf("Advance in intergeneration: %v", err)
	}
	if g.Generation != 2 {
		t.Errorf("generation = %d, want 2", g.Generation)
	}

	g.Phase = PhaseAction
	if err := g.Advance(); !errors.Is(err, ErrPhaseMismatch) {
		t.Errorf("Advance in action = %v, want ErrPhaseMismatch", err)
	}
	g.Phase = PhaseEnd
	if err := g.Advance(); !errors.Is(err, ErrGameOver) {
		t.Errorf("Advance in end = %v, want ErrGameOver", err)
	}
}

// TestPhaseMismatchEdges verifies processing operations outside their phase.
func TestPhaseMismatchEdges(t *testing.T) {
	g := newTestGame(t, 2, DefaultConfig())

	if err := g.ProcessProduction(); !errors.Is(err, ErrPhaseMismatch) {
		t.Errorf("production in %s = %v, want ErrPhaseMismatch", g.Phase, err)
	}
	if err := g.CompleteSolarPhase(); !errors.Is(err, ErrPhaseMismatch) {
		t.Errorf("solar completion in %s = %v, want ErrPhaseMismatch", g.Phase, err)
	}
	if err := g.ProcessIntergeneration(); !errors.Is(err, ErrPhaseMismatch) {
		t.Errorf("intergeneration in %s = %v, want ErrPhaseMismatch", g.Phase, err)
	}
	if err := g.WorldGovernmentTerraform(ParamVenus); !errors.Is(err, ErrPhaseMismatch) {
		t.Errorf("wgt in %s = %v, want ErrPhaseMismatch", g.Phase, err)
	}
}

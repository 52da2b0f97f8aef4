package agent

import (
	"testing"

	"github.com/ruinedsnowyday/reinforcing-mars/engine"
)

func newTestGame(t *testing.T) *engine.Game {
	t.Helper()
	g, err := engine.NewGame(42, []string{"Ada", "Blaise"}, engine.DefaultConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// TestObservationDim verifies the fixed layout size.
func TestObservationDim(t *testing.T) {
	g := newTestGame(t)
	obs, err := Observation(g, "player-1")
	if err != nil {
		t.Fatalf("Observation: %v", err)
	}
	if len(obs) != InputDim {
		t.Errorf("len(obs) = %d, want %d", len(obs), InputDim)
	}
}

// TestEncodeWrongSize verifies the buffer-size guard.
func TestEncodeWrongSize(t *testing.T) {
	g := newTestGame(t)
	if err := Encode(g, "player-1", make([]float32, InputDim-1)); err == nil {
		t.Error("Encode accepted a short buffer")
	}
	if err := Encode(g, "player-9", make([]float32, InputDim)); err == nil {
		t.Error("Encode accepted an unknown viewpoint")
	}
}

// TestEncodeDeterministic verifies equal states encode identically.
func TestEncodeDeterministic(t *testing.T) {
	g1 := newTestGame(t)
	g2 := newTestGame(t)

	o1, err := Observation(g1, "player-1")
	if err != nil {
		t.Fatalf("Observation: %v", err)
	}
	o2, err := Observation(g2, "player-1")
	if err != nil {
		t.Fatalf("Observation: %v", err)
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Errorf("obs[%d] = %v vs %v", i, o1[i], o2[i])
		}
	}
}

// TestViewpointSeatFirst verifies the viewpoint encodes in the first seat
// block.
func TestViewpointSeatFirst(t *testing.T) {
	g := newTestGame(t)
	p2, err := g.PlayerByID("player-2")
	if err != nil {
		t.Fatalf("PlayerByID: %v", err)
	}
	p2.Resources.Add(engine.Megacredits, 50)

	obs, err := Observation(g, "player-2")
	if err != nil {
		t.Fatalf("Observation: %v", err)
	}
	seatBase := phaseDim + 1 + paramDim
	if got := obs[seatBase]; got != 0.5 {
		t.Errorf("viewpoint M€ slot = %v, want 0.5", got)
	}
}

// TestPhaseOneHot verifies the phase block.
func TestPhaseOneHot(t *testing.T) {
	g := newTestGame(t)
	obs, err := Observation(g, "player-1")
	if err != nil {
		t.Fatalf("Observation: %v", err)
	}
	if obs[int(engine.PhaseInitialDrafting)] != 1 {
		t.Error("initial drafting slot not set")
	}
	sum := float32(0)
	for i := 0; i < phaseDim; i++ {
		sum += obs[i]
	}
	if sum != 1 {
		t.Errorf("phase one-hot sums to %v, want 1", sum)
	}
}

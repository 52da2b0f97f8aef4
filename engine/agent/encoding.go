// Package agent encodes game state into fixed-size tensors for policy
// training. The encoding is a pure function of the session and viewpoint:
// identical states encode to identical vectors.
package agent

import (
	"fmt"

	"github.com/ruinedsnowyday/reinforcing-mars/engine"
)

// Encoding layout, all float32:
//
//	phase one-hot            9
//	generation / genScale    1
//	global parameters        4  (each scaled to [0,1])
//	per seat                 15 (resources 6, production 6, rating, hand, passed)
const (
	phaseDim = 9
	paramDim = 4
	seatDim  = 15
	MaxSeats = engine.MaxPlayers
	InputDim = phaseDim + 1 + paramDim + seatDim*MaxSeats

	// genScale normalizes the generation counter; games rarely pass 20.
	genScale = 20.0

	// resourceScale and productionScale keep typical magnitudes near [0,1].
	resourceScale   = 100.0
	productionScale = 20.0
	ratingScale     = float32(engine.SoloTerraformWin)
	handScale       = 20.0
)

// Encode writes the observation for the given viewpoint into out, which must
// hold exactly InputDim values. The viewpoint seat encodes first; the rest
// follow in seat order, so the vector is viewpoint-relative.
func Encode(g *engine.Game, viewpoint engine.PlayerID, out []float32) error {
	if len(out) != InputDim {
		return fmt.Errorf("out has %d values, want %d", len(out), InputDim)
	}
	if _, err := g.PlayerByID(viewpoint); err != nil {
		return err
	}
	for i := range out {
		out[i] = 0
	}

	out[int(g.Phase)] = 1
	out[phaseDim] = float32(g.Generation) / genScale

	base := phaseDim + 1
	out[base+0] = paramFrac(g, engine.ParamOceans)
	out[base+1] = paramFrac(g, engine.ParamOxygen)
	out[base+2] = paramFrac(g, engine.ParamTemperature)
	out[base+3] = paramFrac(g, engine.ParamVenus)

	seat := base + paramDim
	encodeSeat(g, viewpoint, out[seat:seat+seatDim])
	seat += seatDim
	for _, p := range g.Players {
		if p.ID == viewpoint {
			continue
		}
		encodeSeat(g, p.ID, out[seat:seat+seatDim])
		seat += seatDim
	}
	return nil
}

// Observation allocates and fills a fresh observation vector.
func Observation(g *engine.Game, viewpoint engine.PlayerID) ([]float32, error) {
	out := make([]float32, InputDim)
	if err := Encode(g, viewpoint, out); err != nil {
		return nil, err
	}
	return out, nil
}

func paramFrac(g *engine.Game, p engine.GlobalParameter) float32 {
	cur := g.Params.Get(p)
	max := g.Params.Max(p)
	span := max - minValue(p)
	if span == 0 {
		return 0
	}
	return float32(cur-minValue(p)) / float32(span)
}

func minValue(p engine.GlobalParameter) int {
	if p == engine.ParamTemperature {
		return -30
	}
	return 0
}

func encodeSeat(g *engine.Game, id engine.PlayerID, out []float32) {
	p, err := g.PlayerByID(id)
	if err != nil {
		return
	}
	out[0] = float32(p.Resources.Megacredits) / resourceScale
	out[1] = float32(p.Resources.Steel) / resourceScale
	out[2] = float32(p.Resources.Titanium) / resourceScale
	out[3] = float32(p.Resources.Plants) / resourceScale
	out[4] = float32(p.Resources.Energy) / resourceScale
	out[5] = float32(p.Resources.Heat) / resourceScale
	out[6] = float32(p.Production.Megacredits) / productionScale
	out[7] = float32(p.Production.Steel) / productionScale
	out[8] = float32(p.Production.Titanium) / productionScale
	out[9] = float32(p.Production.Plants) / productionScale
	out[10] = float32(p.Production.Energy) / productionScale
	out[11] = float32(p.Production.Heat) / productionScale
	out[12] = float32(p.TerraformRating) / ratingScale
	out[13] = float32(len(p.Hand)) / handScale
	if g.HasPassed(id) {
		out[14] = 1
	}
}

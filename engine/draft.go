package engine

import "fmt"

// Draft rotation. Hands circulate around the table one pick at a time; when
// only one card would remain per hand the leftovers hand off wholesale and
// the round is over.

// DraftState tracks the in-flight draft.
type DraftState struct {
	Active bool      `json:"active"`
	Kind   DraftKind `json:"kind"`
	Round  uint8     `json:"round"`

	// InitialIteration counts the initial-draft sequence: two project
	// iterations, then an optional prelude iteration. Zero outside the
	// initial draft.
	InitialIteration uint8 `json:"initial_iteration"`
}

// startDraft deals round 1 of a draft of the given kind.
func (g *Game) startDraft(kind DraftKind) {
	g.Draft.Kind = kind
	g.Draft.Active = true
	g.Draft.Round = 1

	switch kind {
	case DraftInitial:
		if g.Draft.InitialIteration == 0 {
			g.Draft.InitialIteration = 1
		}
		g.Phase = PhaseInitialDrafting
	case DraftPrelude:
		g.Phase = PhaseInitialDrafting
	default:
		g.enterPhase(PhaseDrafting)
	}

	count := ResearchProjectOffer
	switch kind {
	case DraftInitial:
		count = InitialDraftHand
	case DraftPrelude:
		count = PreludesDealt
	}
	for _, p := range g.Players {
		if kind == DraftPrelude {
			p.DraftHand = g.drawPreludes(count)
		} else {
			p.DraftHand = g.drawProjects(count)
		}
		p.NeedsToDraft = true
	}
}

// draftRotation returns +1 when hands move toward the higher seat index and
// -1 when they move toward the lower one.
func (g *Game) draftRotation() int {
	switch g.Draft.Kind {
	case DraftInitial:
		if g.Draft.InitialIteration == 2 {
			return -1
		}
		return 1
	case DraftPrelude:
		return 1
	default:
		// Standard drafting alternates by generation parity.
		if g.Generation%2 == 1 {
			return -1
		}
		return 1
	}
}

// SelectDraftCard takes exactly one card from the player's current draft
// hand. Once every seat has picked, hands rotate or the round completes.
func (g *Game) SelectDraftCard(id PlayerID, card CardID) error {
	if g.Phase == PhaseEnd {
		return ErrGameOver
	}
	if !g.Draft.Active || (g.Phase != PhaseInitialDrafting && g.Phase != PhaseDrafting) {
		return fmt.Errorf("%w: draft selection in %s", ErrPhaseMismatch, g.Phase)
	}
	p, err := g.PlayerByID(id)
	if err != nil {
		return err
	}
	if !p.NeedsToDraft {
		return fmt.Errorf("%w: %s already selected this round", ErrInvalidSelectionCount, id)
	}
	var ok bool
	p.DraftHand, ok = removeCard(p.DraftHand, card)
	if !ok {
		return fmt.Errorf("%w: card %s not in draft hand", ErrNotFound, card)
	}
	if g.Draft.Kind == DraftPrelude {
		p.DealtPreludes = append(p.DealtPreludes, card)
	} else {
		p.Drafted = append(p.Drafted, card)
	}
	p.NeedsToDraft = false

	for _, other := range g.Players {
		if other.NeedsToDraft {
			return nil
		}
	}
	g.endDraftRound()
	return nil
}

// endDraftRound rotates hands for another pick or hands off the leftovers
// and closes the iteration.
func (g *Game) endDraftRound() {
	rotateAgain := false
	for _, p := range g.Players {
		if len(p.DraftHand) > 1 {
			rotateAgain = true
			break
		}
	}

	dir := g.draftRotation()
	if rotateAgain {
		g.Draft.Round++
		g.rotateDraftHands(dir)
		for _, p := range g.Players {
			p.NeedsToDraft = true
		}
		return
	}

	// Terminal hand-off: each seat keeps the entire remaining hand of its
	// trailing-edge neighbor, then hands clear.
	n := len(g.Players)
	hands := make([][]CardID, n)
	for i, p := range g.Players {
		hands[i] = p.DraftHand
	}
	for i, p := range g.Players {
		trailing := (i - dir + n) % n
		if g.Draft.Kind == DraftPrelude {
			p.DealtPreludes = append(p.DealtPreludes, hands[trailing]...)
		} else {
			p.Drafted = append(p.Drafted, hands[trailing]...)
		}
		p.DraftHand = nil
	}

	g.endDraftIteration()
}

// rotateDraftHands moves every hand one seat in the given direction.
func (g *Game) rotateDraftHands(dir int) {
	n := len(g.Players)
	hands := make([][]CardID, n)
	for i, p := range g.Players {
		hands[i] = p.DraftHand
	}
	for i, p := range g.Players {
		p.DraftHand = hands[(i-dir+n)%n]
	}
}

// endDraftIteration advances the initial-draft sequence or closes the draft
// into research.
func (g *Game) endDraftIteration() {
	switch g.Draft.Kind {
	case DraftInitial:
		switch g.Draft.InitialIteration {
		case 1:
			g.Draft.InitialIteration = 2
			g.startDraft(DraftInitial)
		case 2:
			if g.Config.PreludeExpansion {
				g.Draft.InitialIteration = 3
				g.startDraft(DraftPrelude)
			} else {
				g.finishInitialDraft()
			}
		}
	case DraftPrelude:
		g.finishInitialDraft()
	default:
		g.Draft.Active = false
		g.enterPhase(PhaseResearch)
		g.startResearch()
	}
}

// finishInitialDraft funnels drafted projects into hands and opens research.
func (g *Game) finishInitialDraft() {
	for _, p := range g.Players {
		p.Hand = append(p.Hand, p.Drafted...)
		p.Drafted = nil
	}
	g.Draft.Active = false
	g.Draft.InitialIteration = 0
	g.enterPhase(PhaseResearch)
	g.startResearch()
}

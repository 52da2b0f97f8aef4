package engine

import "fmt"

// Research phase: corporation and prelude selection in generation 1, then
// buying project cards at CardBuyCost apiece every generation.

// startResearch deals the research offers for the current generation.
func (g *Game) startResearch() {
	if g.Generation == 1 {
		for _, p := range g.Players {
			p.DealtCorporations = g.drawCorporations(CorporationsDealt)
			if g.Config.PreludeExpansion && len(p.DealtPreludes) == 0 {
				p.DealtPreludes = g.drawPreludes(PreludesDealt)
			}
			// Without the initial draft the generation-1 project offer is
			// dealt straight into hand.
			if len(p.Hand) == 0 {
				p.Hand = g.drawProjects(InitialProjectOffer)
			}
		}
		return
	}
	// Generation 2+: the offer sits in the drafted list, dealt here when the
	// draft variant did not populate it.
	for _, p := range g.Players {
		if len(p.Drafted) == 0 {
			p.Drafted = g.drawProjects(ResearchProjectOffer)
		}
	}
}

// SelectCorporation picks one of the dealt corporations and grants its
// starting megacredits. Generation 1 only, once per player.
func (g *Game) SelectCorporation(id PlayerID, corp CardID) error {
	if g.Phase == PhaseEnd {
		return ErrGameOver
	}
	if g.Phase != PhaseResearch || g.Generation != 1 {
		return fmt.Errorf("%w: corporation selection in %s, generation %d", ErrPhaseMismatch, g.Phase, g.Generation)
	}
	p, err := g.PlayerByID(id)
	if err != nil {
		return err
	}
	if p.Corporation != "" {
		return fmt.Errorf("%w: corporation %s", ErrAlreadyClaimed, p.Corporation)
	}
	if !containsCard(p.DealtCorporations, corp) {
		return fmt.Errorf("%w: corporation %s not dealt to %s", ErrNotFound, corp, id)
	}

	p.Corporation = corp
	p.DealtCorporations = nil
	p.Resources.Add(Megacredits, CorporationStartingMC)
	g.maybeCompleteResearch()
	return nil
}

// SelectPreludes keeps exactly PreludesPerPlayer of the dealt preludes.
func (g *Game) SelectPreludes(id PlayerID, cards []CardID) error {
	if g.Phase == PhaseEnd {
		return ErrGameOver
	}
	if g.Phase != PhaseResearch || g.Generation != 1 || !g.Config.PreludeExpansion {
		return fmt.Errorf("%w: prelude selection in %s, generation %d", ErrPhaseMismatch, g.Phase, g.Generation)
	}
	p, err := g.PlayerByID(id)
	if err != nil {
		return err
	}
	if len(p.SelectedPreludes) > 0 {
		return fmt.Errorf("%w: preludes", ErrAlreadyClaimed)
	}
	if len(cards) != PreludesPerPlayer {
		return fmt.Errorf("%w: need %d preludes, got %d", ErrInvalidSelectionCount, PreludesPerPlayer, len(cards))
	}
	for _, c := range cards {
		if !containsCard(p.DealtPreludes, c) {
			return fmt.Errorf("%w: prelude %s not dealt to %s", ErrNotFound, c, id)
		}
	}
	if cards[0] == cards[1] {
		return fmt.Errorf("%w: duplicate prelude %s", ErrInvalidSelectionCount, cards[0])
	}

	p.SelectedPreludes = append([]CardID(nil), cards...)
	p.DealtPreludes = nil
	g.maybeCompleteResearch()
	return nil
}

// BuyProjectCards buys up to MaxResearchBuy cards from the player's current
// offer at CardBuyCost megacredits each; the rest of the offer discards. In
// generation 1 the offer is the hand itself, later it is the drafted list.
func (g *Game) BuyProjectCards(id PlayerID, cards []CardID) error {
	if g.Phase == PhaseEnd {
		return ErrGameOver
	}
	if g.Phase != PhaseResearch {
		return fmt.Errorf("%w: project buy in %s", ErrPhaseMismatch, g.Phase)
	}
	p, err := g.PlayerByID(id)
	if err != nil {
		return err
	}
	if p.ResearchDone {
		return fmt.Errorf("%w: research buy", ErrAlreadyClaimed)
	}
	if len(cards) > MaxResearchBuy {
		return fmt.Errorf("%w: at most %d cards, got %d", ErrInvalidSelectionCount, MaxResearchBuy, len(cards))
	}

	offer := p.Drafted
	if g.Generation == 1 {
		offer = p.Hand
	}
	seen := make(map[CardID]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s", ErrInvalidSelectionCount, c)
		}
		seen[c] = true
		if !containsCard(offer, c) {
			return fmt.Errorf("%w: card %s not in research offer", ErrNotFound, c)
		}
	}
	cost := uint32(len(cards)) * CardBuyCost
	if !p.Resources.Has(Megacredits, cost) {
		return fmt.Errorf("%w: buying %d cards costs %d M€, have %d",
			ErrInsufficientResource, len(cards), cost, p.Resources.Megacredits)
	}

	p.Resources.Sub(Megacredits, cost)
	for _, c := range offer {
		if !seen[c] {
			g.DiscardPile = append(g.DiscardPile, c)
		}
	}
	kept := append([]CardID(nil), cards...)
	if g.Generation == 1 {
		p.Hand = kept
	} else {
		p.Drafted = nil
		p.Hand = append(p.Hand, kept...)
	}
	p.ResearchDone = true
	g.maybeCompleteResearch()
	return nil
}

// researchComplete reports whether the player has finished every selection
// the current research phase asks of them.
func (g *Game) researchComplete(p *Player) bool {
	if !p.ResearchDone {
		return false
	}
	if g.Generation != 1 {
		return true
	}
	if p.Corporation == "" {
		return false
	}
	if g.Config.PreludeExpansion && len(p.SelectedPreludes) != PreludesPerPlayer {
		return false
	}
	return true
}

// maybeCompleteResearch advances once every seat is done: to Preludes in
// generation 1 with the expansion, otherwise straight to Action.
func (g *Game) maybeCompleteResearch() {
	for _, p := range g.Players {
		if !g.researchComplete(p) {
			return
		}
	}
	if g.Generation == 1 && g.Config.PreludeExpansion {
		g.startPreludes()
		return
	}
	g.beginActionPhase()
}

package engine

// LegalActions enumerates the actions the given player could dispatch right
// now, megacredit payments assumed. Card plays are omitted because card
// costs live in the host's registry; sell patents is enumerated with the
// whole hand. Outside the player's Action-phase turn the list is empty.
func (g *Game) LegalActions(id PlayerID) []Action {
	if g.Phase != PhaseAction || g.AwaitingInput {
		return nil
	}
	active := g.ActivePlayer()
	if active == nil || active.ID != id {
		return nil
	}

	actions := []Action{PassAction()}
	if g.ActionsTaken >= MaxActionsPerTurn {
		return actions
	}

	for _, sp := range []StandardProject{PowerPlant, Asteroid, Aquifer, Greenery, City} {
		a := Action{Type: ActionStandardProject, Project: sp}
		if g.CanExecute(id, a) == nil {
			actions = append(actions, a)
		}
	}
	if len(active.Hand) > 0 {
		a := Action{Type: ActionStandardProject, Project: SellPatents, Cards: append([]CardID(nil), active.Hand...)}
		if g.CanExecute(id, a) == nil {
			actions = append(actions, a)
		}
	}
	for _, t := range []ActionType{ActionConvertPlants, ActionConvertHeat} {
		a := Action{Type: t}
		if g.CanExecute(id, a) == nil {
			actions = append(actions, a)
		}
	}
	for _, m := range g.Milestones {
		a := Action{Type: ActionClaimMilestone, Milestone: m}
		if g.CanExecute(id, a) == nil {
			actions = append(actions, a)
		}
	}
	for _, aw := range g.Awards {
		a := Action{Type: ActionFundAward, Award: aw}
		if g.CanExecute(id, a) == nil {
			actions = append(actions, a)
		}
	}
	return actions
}

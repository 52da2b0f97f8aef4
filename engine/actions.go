package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ActionType enumerates everything a player can do on their turn.
type ActionType uint8

const (
	ActionPass ActionType = iota
	ActionPlayCard
	ActionStandardProject
	ActionConvertPlants
	ActionConvertHeat
	ActionClaimMilestone
	ActionFundAward
)

var actionTypeNames = [...]string{
	"pass",
	"play_card",
	"standard_project",
	"convert_plants",
	"convert_heat",
	"claim_milestone",
	"fund_award",
}

func (t ActionType) String() string {
	if int(t) < len(actionTypeNames) {
		return actionTypeNames[t]
	}
	return "unknown"
}

// StandardProject enumerates the rulebook standard projects.
type StandardProject uint8

const (
	SellPatents StandardProject = iota
	PowerPlant
	Asteroid
	Aquifer
	Greenery
	City
)

var standardProjectNames = [...]string{"sell_patents", "power_plant", "asteroid", "aquifer", "greenery", "city"}

func (s StandardProject) String() string {
	if int(s) < len(standardProjectNames) {
		return standardProjectNames[s]
	}
	return "unknown"
}

// Cost returns the standard project's price in megacredits. Sell patents is
// free and instead pays 1 M€ per discarded card.
func (s StandardProject) Cost() uint32 {
	switch s {
	case PowerPlant:
		return 11
	case Asteroid:
		return 14
	case Aquifer:
		return 18
	case Greenery:
		return 23
	case City:
		return 25
	default:
		return 0
	}
}

// Action is one turn action request. Which fields matter depends on Type;
// the zero Payment means "pay the cost in megacredits".
type Action struct {
	Type ActionType `json:"type"`

	// Play card.
	Card     CardID  `json:"card,omitempty"`
	Cost     uint32  `json:"cost,omitempty"` // card cost declared by the host's registry
	Building bool    `json:"building,omitempty"`
	Space    bool    `json:"space,omitempty"`
	Payment  Payment `json:"payment,omitempty"`

	// Standard project.
	Project StandardProject `json:"project,omitempty"`
	Cards   []CardID        `json:"cards,omitempty"` // sell patents discard selection

	Milestone MilestoneID `json:"milestone,omitempty"`
	Award     AwardID     `json:"award,omitempty"`
}

// PassAction returns the pass request.
func PassAction() Action { return Action{Type: ActionPass} }

// ExecuteAction is the single Action-phase entry point. It drains deferred
// effects to quiescence first, enforces the actor and the action budget,
// validates, applies, and drains whatever the action deferred. An
// ErrAwaitingInput return before validation leaves the action unconsumed.
func (g *Game) ExecuteAction(id PlayerID, a Action) error {
	if g.Phase == PhaseEnd {
		return ErrGameOver
	}
	if g.Phase != PhaseAction {
		return fmt.Errorf("%w: action in %s", ErrPhaseMismatch, g.Phase)
	}
	if err := g.drainDeferred(); err != nil {
		return err
	}
	active := g.ActivePlayer()
	if active == nil || active.ID != id {
		return fmt.Errorf("%w: %s is not the active player", ErrPhaseMismatch, id)
	}

	if a.Type == ActionPass {
		g.pass()
		return nil
	}
	if g.ActionsTaken >= MaxActionsPerTurn {
		return fmt.Errorf("%w: %d actions already taken", ErrActionBudgetExceeded, g.ActionsTaken)
	}
	if err := g.CanExecute(id, a); err != nil {
		return err
	}

	g.apply(active, a)
	g.ActionsTaken++
	g.log.WithFields(logrus.Fields{
		"game":   g.ID,
		"player": id,
		"action": a.Type.String(),
	}).Debug("action applied")

	if err := g.drainDeferred(); err != nil {
		return err
	}
	if g.Phase == PhaseAction && g.ActionsTaken >= MaxActionsPerTurn {
		g.advanceTurn()
	}
	return nil
}

// CanExecute validates an action without mutating anything. It returns the
// same verdict however many times it is called on the same state.
func (g *Game) CanExecute(id PlayerID, a Action) error {
	p, err := g.PlayerByID(id)
	if err != nil {
		return err
	}

	switch a.Type {
	case ActionPass:
		return nil

	case ActionPlayCard:
		if !p.HasCard(a.Card) {
			return fmt.Errorf("%w: card %s not in hand", ErrNotFound, a.Card)
		}
		return validatePayment(p, g.effectivePayment(a), a.Cost, a.Building, a.Space)

	case ActionStandardProject:
		return g.canExecuteStandardProject(p, a)

	case ActionConvertPlants:
		if !p.Resources.Has(Plants, PlantsPerGreenery) {
			return fmt.Errorf("%w: greenery needs %d plants, have %d", ErrInsufficientResource, PlantsPerGreenery, p.Resources.Plants)
		}
		return nil

	case ActionConvertHeat:
		if !p.Resources.Has(Heat, HeatPerTemperature) {
			return fmt.Errorf("%w: temperature needs %d heat, have %d", ErrInsufficientResource, HeatPerTemperature, p.Resources.Heat)
		}
		if !g.Params.CanIncrease(ParamTemperature) {
			return fmt.Errorf("%w: temperature already at maximum", ErrInsufficientResource)
		}
		return nil

	case ActionClaimMilestone:
		return g.canClaimMilestone(p, a.Milestone)

	case ActionFundAward:
		return g.canFundAward(p, a.Award)
	}

	return fmt.Errorf("%w: action type %d", ErrNotFound, a.Type)
}

// effectivePayment defaults a zero payment to megacredits for the cost.
func (g *Game) effectivePayment(a Action) Payment {
	if a.Payment.IsZero() && a.Cost > 0 {
		return MCPayment(a.Cost)
	}
	return a.Payment
}

func (g *Game) canExecuteStandardProject(p *Player, a Action) error {
	switch a.Project {
	case SellPatents:
		if len(a.Cards) == 0 {
			return fmt.Errorf("%w: sell patents needs at least one card", ErrInvalidSelectionCount)
		}
		for _, c := range a.Cards {
			if !p.HasCard(c) {
				return fmt.Errorf("%w: card %s not in hand", ErrNotFound, c)
			}
		}
		return nil
	case Aquifer:
		if !g.Params.CanIncrease(ParamOceans) {
			return fmt.Errorf("%w: oceans already at maximum", ErrInsufficientResource)
		}
	case Asteroid:
		if !g.Params.CanIncrease(ParamTemperature) {
			return fmt.Errorf("%w: temperature already at maximum", ErrInsufficientResource)
		}
	}
	pay := a.Payment
	if pay.IsZero() {
		pay = MCPayment(a.Project.Cost())
	}
	return validatePayment(p, pay, a.Project.Cost(), false, false)
}

// apply mutates state for an already-validated action.
func (g *Game) apply(p *Player, a Action) {
	switch a.Type {
	case ActionPlayCard:
		applyPayment(p, g.effectivePayment(a))
		p.removeCardFromHand(a.Card)
		p.Played = append(p.Played, a.Card)

	case ActionStandardProject:
		g.applyStandardProject(p, a)

	case ActionConvertPlants:
		p.Resources.Sub(Plants, PlantsPerGreenery)
		applied := g.Params.Increase(ParamOxygen, 1)
		p.TerraformRating += uint32(applied)

	case ActionConvertHeat:
		p.Resources.Sub(Heat, HeatPerTemperature)
		applied := g.Params.Increase(ParamTemperature, 1)
		p.TerraformRating += uint32(applied)

	case ActionClaimMilestone:
		g.claimMilestone(p, a.Milestone)

	case ActionFundAward:
		g.fundAward(p, a.Award)
	}
}

func (g *Game) applyStandardProject(p *Player, a Action) {
	if a.Project == SellPatents {
		for _, c := range a.Cards {
			p.removeCardFromHand(c)
			g.DiscardPile = append(g.DiscardPile, c)
		}
		p.Resources.Add(Megacredits, uint32(len(a.Cards)))
		return
	}

	pay := a.Payment
	if pay.IsZero() {
		pay = MCPayment(a.Project.Cost())
	}
	applyPayment(p, pay)

	switch a.Project {
	case PowerPlant:
		p.Production.Add(Energy, 1)
	case Asteroid:
		applied := g.Params.Increase(ParamTemperature, 1)
		p.TerraformRating += uint32(applied)
	case Aquifer:
		g.Defer(PlaceOceanEffect(p.ID))
	case Greenery:
		applied := g.Params.Increase(ParamOxygen, 1)
		p.TerraformRating += uint32(applied)
	case City:
		p.Production.Add(Megacredits, 1)
	}
}

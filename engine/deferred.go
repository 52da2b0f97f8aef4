package engine

import "fmt"

// Priority orders deferred effects. Lower runs first; ties resolve by
// insertion order.
type Priority uint8

const (
	PriorityCost         Priority = 0
	PriorityDrawCards    Priority = 10
	PriorityPlaceOcean   Priority = 20
	PriorityDefault      Priority = 50
	PriorityGainResource Priority = 60
	PriorityLoseResource Priority = 70
	PriorityDiscardCards Priority = 80
	PriorityBackOfLine   Priority = 100
)

// EffectKind discriminates the closed set of deferred effect variants. The
// interpreter in runEffect is the only place that gives them meaning, which
// keeps the queue plain, inspectable data.
type EffectKind uint8

const (
	EffectNone EffectKind = iota
	EffectGainResource
	EffectLoseResource
	EffectGainProduction
	EffectDrawCards
	EffectDiscardCards
	EffectPlaceOcean
	EffectRaiseTemperature
	EffectRaiseOxygen
	EffectRaiseVenus
	EffectCollectCost
)

var effectKindNames = [...]string{
	"none",
	"gain_resource",
	"lose_resource",
	"gain_production",
	"draw_cards",
	"discard_cards",
	"place_ocean",
	"raise_temperature",
	"raise_oxygen",
	"raise_venus",
	"collect_cost",
}

func (k EffectKind) String() string {
	if int(k) < len(effectKindNames) {
		return effectKindNames[k]
	}
	return "unknown"
}

// Effect is one deferred consequence waiting to resolve. Which fields matter
// depends on Kind; unused fields stay zero. Effects carry no behavior, so
// the queue serializes with the rest of the session.
type Effect struct {
	Kind     EffectKind `json:"kind"`
	Priority Priority   `json:"priority"`
	Player   PlayerID   `json:"player"`

	Resource Resource `json:"resource,omitempty"` // gain/lose resource or production
	Amount   int32    `json:"amount,omitempty"`   // resource delta or cost in M€
	Count    int      `json:"count,omitempty"`    // cards to draw or discard
	Steps    int      `json:"steps,omitempty"`    // parameter steps to raise

	// Cards is the chosen discard selection. Empty on a discard effect means
	// the decision is still owed; the host fills it via ProvideCards.
	Cards []CardID `json:"cards,omitempty"`
}

// Effect constructors pin the conventional priority for each kind. Callers
// may still override Priority before deferring.

// GainResourceEffect credits a player with n of a resource.
func GainResourceEffect(player PlayerID, res Resource, n uint32) Effect {
	return Effect{Kind: EffectGainResource, Priority: PriorityGainResource, Player: player, Resource: res, Amount: int32(n)}
}

// LoseResourceEffect removes up to n of a resource from a player.
func LoseResourceEffect(player PlayerID, res Resource, n uint32) Effect {
	return Effect{Kind: EffectLoseResource, Priority: PriorityLoseResource, Player: player, Resource: res, Amount: int32(n)}
}

// GainProductionEffect adjusts a production track by delta.
func GainProductionEffect(player PlayerID, res Resource, delta int32) Effect {
	return Effect{Kind: EffectGainProduction, Priority: PriorityGainResource, Player: player, Resource: res, Amount: delta}
}

// DrawCardsEffect draws n project cards into the player's hand.
func DrawCardsEffect(player PlayerID, n int) Effect {
	return Effect{Kind: EffectDrawCards, Priority: PriorityDrawCards, Player: player, Count: n}
}

// DiscardCardsEffect requires the player to discard n cards of their choice.
func DiscardCardsEffect(player PlayerID, n int) Effect {
	return Effect{Kind: EffectDiscardCards, Priority: PriorityDiscardCards, Player: player, Count: n}
}

// PlaceOceanEffect places one ocean, crediting the player a rating step.
func PlaceOceanEffect(player PlayerID) Effect {
	return Effect{Kind: EffectPlaceOcean, Priority: PriorityPlaceOcean, Player: player, Steps: 1}
}

// RaiseParameterEffect raises a non-ocean parameter, crediting rating for
// the steps applied.
func RaiseParameterEffect(player PlayerID, p GlobalParameter, steps int) Effect {
	kind := EffectRaiseTemperature
	switch p {
	case ParamOxygen:
		kind = EffectRaiseOxygen
	case ParamVenus:
		kind = EffectRaiseVenus
	case ParamOceans:
		return PlaceOceanEffect(player)
	}
	return Effect{Kind: kind, Priority: PriorityDefault, Player: player, Steps: steps}
}

// CollectCostEffect charges the player amount megacredits, stalling if they
// cannot pay yet.
func CollectCostEffect(player PlayerID, amount uint32) Effect {
	return Effect{Kind: EffectCollectCost, Priority: PriorityCost, Player: player, Amount: int32(amount)}
}

// QueuedEffect is an effect plus its insertion sequence number, which breaks
// priority ties first-in-first-out and survives front reinsertion.
type QueuedEffect struct {
	Effect Effect `json:"effect"`
	Seq    uint64 `json:"seq"`
}

// EffectQueue holds pending effects sorted by (priority, insertion order).
type EffectQueue struct {
	Entries []QueuedEffect `json:"entries"`
	NextSeq uint64         `json:"next_seq"`
}

// Len returns the number of pending effects.
func (q *EffectQueue) Len() int { return len(q.Entries) }

// Peek returns a copy of the front entry.
func (q *EffectQueue) Peek() (QueuedEffect, bool) {
	if len(q.Entries) == 0 {
		return QueuedEffect{}, false
	}
	return q.Entries[0], true
}

// Push inserts the effect behind every entry of equal or lower priority.
func (q *EffectQueue) Push(e Effect) {
	entry := QueuedEffect{Effect: e, Seq: q.NextSeq}
	q.NextSeq++
	i := len(q.Entries)
	for ; i > 0; i-- {
		if q.Entries[i-1].Effect.Priority <= e.Priority {
			break
		}
	}
	q.Entries = append(q.Entries, QueuedEffect{})
	copy(q.Entries[i+1:], q.Entries[i:])
	q.Entries[i] = entry
}

func (q *EffectQueue) popFront() QueuedEffect {
	e := q.Entries[0]
	q.Entries = q.Entries[1:]
	return e
}

// pushFront reinserts an entry at the head, keeping its original sequence so
// a stalled effect stays ahead of everything it already outranked.
func (q *EffectQueue) pushFront(e QueuedEffect) {
	q.Entries = append([]QueuedEffect{e}, q.Entries...)
}

// effectOutcome is the interpreter's verdict for one execution.
type effectOutcome uint8

const (
	outcomeCompleted effectOutcome = iota
	outcomeNeedsInput
	outcomeRemove
)

// Defer enqueues an effect for resolution before the next action dispatch.
func (g *Game) Defer(e Effect) {
	g.Deferred.Push(e)
}

// PendingEffect returns a copy of the effect the engine is stalled on.
func (g *Game) PendingEffect() (Effect, bool) {
	if !g.AwaitingInput {
		return Effect{}, false
	}
	entry, ok := g.Deferred.Peek()
	return entry.Effect, ok
}

// Stalled reports whether the engine is waiting on host input.
func (g *Game) Stalled() bool { return g.AwaitingInput }

// ProvideCards supplies the card selection a stalled discard effect is
// waiting for, then resumes draining.
func (g *Game) ProvideCards(cards []CardID) error {
	if !g.AwaitingInput || g.Deferred.Len() == 0 {
		return fmt.Errorf("%w: no effect awaiting a card selection", ErrNotFound)
	}
	front := &g.Deferred.Entries[0].Effect
	if front.Kind != EffectDiscardCards {
		return fmt.Errorf("%w: pending effect %s takes no card selection", ErrNotFound, front.Kind)
	}
	if len(cards) != front.Count {
		return fmt.Errorf("%w: need %d cards, got %d", ErrInvalidSelectionCount, front.Count, len(cards))
	}
	front.Cards = append([]CardID(nil), cards...)
	return g.ResolveDeferred()
}

// ResolveDeferred drains the queue to quiescence. It returns ErrAwaitingInput
// when the front effect still needs a decision; any other effect error is
// logged, the effect discarded, and draining continues.
func (g *Game) ResolveDeferred() error {
	return g.drainDeferred()
}

func (g *Game) drainDeferred() error {
	for g.Deferred.Len() > 0 {
		entry := g.Deferred.popFront()
		outcome, err := g.runEffect(&entry.Effect)
		if err != nil {
			g.log.WithField("effect", entry.Effect.Kind.String()).WithError(err).Warn("deferred effect failed, discarding")
			continue
		}
		if outcome == outcomeNeedsInput {
			g.Deferred.pushFront(entry)
			g.AwaitingInput = true
			return fmt.Errorf("%w: %s for %s", ErrAwaitingInput, entry.Effect.Kind, entry.Effect.Player)
		}
	}
	g.AwaitingInput = false
	return nil
}

// runEffect executes one effect exactly once. It is the single interpreter
// for every EffectKind.
func (g *Game) runEffect(e *Effect) (effectOutcome, error) {
	pl, err := g.PlayerByID(e.Player)
	if err != nil {
		return outcomeRemove, err
	}

	switch e.Kind {
	case EffectGainResource:
		if e.Amount < 0 {
			return outcomeRemove, fmt.Errorf("negative gain %d", e.Amount)
		}
		pl.Resources.Add(e.Resource, uint32(e.Amount))
		return outcomeCompleted, nil

	case EffectLoseResource:
		// Mandatory losses take what exists; Sub saturates.
		pl.Resources.Sub(e.Resource, uint32(e.Amount))
		return outcomeCompleted, nil

	case EffectGainProduction:
		pl.Production.Add(e.Resource, e.Amount)
		return outcomeCompleted, nil

	case EffectDrawCards:
		pl.Hand = append(pl.Hand, g.drawProjects(e.Count)...)
		return outcomeCompleted, nil

	case EffectDiscardCards:
		if e.Count > len(pl.Hand) {
			e.Count = len(pl.Hand)
		}
		if e.Count == 0 {
			return outcomeRemove, nil
		}
		if len(e.Cards) != e.Count {
			return outcomeNeedsInput, nil
		}
		for _, c := range e.Cards {
			if !pl.HasCard(c) {
				return outcomeRemove, fmt.Errorf("discard selection %s not in hand", c)
			}
		}
		for _, c := range e.Cards {
			pl.removeCardFromHand(c)
			g.DiscardPile = append(g.DiscardPile, c)
		}
		return outcomeCompleted, nil

	case EffectPlaceOcean:
		if g.Params.AtMax(ParamOceans) {
			return outcomeRemove, nil
		}
		applied := g.Params.Increase(ParamOceans, 1)
		pl.TerraformRating += uint32(applied)
		return outcomeCompleted, nil

	case EffectRaiseTemperature:
		applied := g.Params.Increase(ParamTemperature, e.Steps)
		pl.TerraformRating += uint32(applied)
		return outcomeCompleted, nil

	case EffectRaiseOxygen:
		applied := g.Params.Increase(ParamOxygen, e.Steps)
		pl.TerraformRating += uint32(applied)
		return outcomeCompleted, nil

	case EffectRaiseVenus:
		applied := g.Params.Increase(ParamVenus, e.Steps)
		pl.TerraformRating += uint32(applied)
		return outcomeCompleted, nil

	case EffectCollectCost:
		amount := uint32(e.Amount)
		if !pl.Resources.Has(Megacredits, amount) {
			return outcomeNeedsInput, nil
		}
		pl.Resources.Sub(Megacredits, amount)
		return outcomeCompleted, nil
	}

	return outcomeRemove, fmt.Errorf("unknown effect kind %d", e.Kind)
}

// Package engine implements a deterministic Terraforming Mars game core:
// phase state machine, turn scheduling, deferred effect resolution, draft
// rotation and the global parameter track. The engine performs no I/O and
// holds no global state; every session is an independent Game value driven
// through exported operations by a host loop.
package engine

// PlayerID identifies a seat within a single game.
type PlayerID string

// CardID identifies a card. Card content lives outside the engine; the core
// only moves identifiers between zones.
type CardID string

// MilestoneID identifies a claimable milestone.
type MilestoneID string

// AwardID identifies a fundable award.
type AwardID string

// Phase enumerates the game's phases.
type Phase uint8

const (
	PhaseInitialDrafting Phase = iota
	PhaseDrafting
	PhaseResearch
	PhasePreludes
	PhaseAction
	PhaseProduction
	PhaseSolar
	PhaseIntergeneration
	PhaseEnd
)

var phaseNames = [...]string{
	"initial_drafting",
	"drafting",
	"research",
	"preludes",
	"action",
	"production",
	"solar",
	"intergeneration",
	"end",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Resource enumerates the six player resource tracks.
type Resource uint8

const (
	Megacredits Resource = iota
	Steel
	Titanium
	Plants
	Energy
	Heat
)

var resourceNames = [...]string{"megacredits", "steel", "titanium", "plants", "energy", "heat"}

func (r Resource) String() string {
	if int(r) < len(resourceNames) {
		return resourceNames[r]
	}
	return "unknown"
}

// GlobalParameter enumerates the terraforming tracks.
type GlobalParameter uint8

const (
	ParamOceans GlobalParameter = iota
	ParamOxygen
	ParamTemperature
	ParamVenus
)

var paramNames = [...]string{"oceans", "oxygen", "temperature", "venus"}

func (p GlobalParameter) String() string {
	if int(p) < len(paramNames) {
		return paramNames[p]
	}
	return "unknown"
}

// DraftKind distinguishes the three drafting modes.
type DraftKind uint8

const (
	DraftInitial DraftKind = iota
	DraftStandard
	DraftPrelude
)

// Game-wide constants.
const (
	// MaxPlayers is the largest supported seat count.
	MaxPlayers = 5

	// StartingTerraformRating is every player's initial rating.
	StartingTerraformRating = 20

	// SoloTerraformWin ends a solo game when a player's rating reaches it.
	SoloTerraformWin = 63

	// CorporationStartingMC is granted on corporation selection.
	CorporationStartingMC = 42

	// CardBuyCost is the megacredit price per project card bought in research.
	CardBuyCost = 3

	// MaxResearchBuy caps how many project cards one research buy may take.
	MaxResearchBuy = 10

	// MaxActionsPerTurn is the non-pass action budget per turn.
	MaxActionsPerTurn = 2

	// PreludesPerPlayer is how many preludes each player keeps and plays.
	PreludesPerPlayer = 2

	// PreludesDealt is how many prelude cards are offered to each player.
	PreludesDealt = 4

	// CorporationsDealt is how many corporations are offered to each player.
	CorporationsDealt = 2

	// InitialProjectOffer is the generation-1 project offer without drafting.
	InitialProjectOffer = 10

	// ResearchProjectOffer is the per-generation project offer.
	ResearchProjectOffer = 4

	// InitialDraftHand is the cards dealt per initial-draft iteration.
	InitialDraftHand = 5

	// PlantsPerGreenery is the plant cost of the greenery conversion.
	PlantsPerGreenery = 8

	// HeatPerTemperature is the heat cost of the temperature conversion.
	HeatPerTemperature = 8
)

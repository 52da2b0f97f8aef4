package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Game is one session's complete state. Every field except the logger is
// plain data, so sessions snapshot, restore and replay deterministically.
// Nothing here touches the outside world; a host drives the session through
// the exported operations and the engine reports back through errors and the
// ErrAwaitingInput control signal.
type Game struct {
	ID   uuid.UUID `json:"id"`
	Seed uint64    `json:"seed"`
	RNG  uint64    `json:"rng"`

	Config     Config `json:"config"`
	Phase      Phase  `json:"phase"`
	Generation uint32 `json:"generation"`

	Players []*Player `json:"players"`

	// Turn scheduling.
	ActiveIdx    int               `json:"active_idx"`
	Passed       map[PlayerID]bool `json:"passed"`
	ActionsTaken uint8             `json:"actions_taken"`

	Params   GlobalParameters `json:"params"`
	Deferred EffectQueue      `json:"deferred"`
	Draft    DraftState       `json:"draft"`

	// AwaitingInput is set while the front of the deferred queue needs a
	// host decision. No action dispatch proceeds until it clears.
	AwaitingInput bool `json:"awaiting_input"`

	// Decks and discard, identifiers only.
	ProjectDeck     []CardID `json:"project_deck"`
	CorporationDeck []CardID `json:"corporation_deck"`
	PreludeDeck     []CardID `json:"prelude_deck"`
	DiscardPile     []CardID `json:"discard_pile"`

	Milestones []MilestoneID `json:"milestones"`
	Awards     []AwardID     `json:"awards"`
	Claimed    []Claim       `json:"claimed"`
	Funded     []Funding     `json:"funded"`

	// WGTDone marks that this generation's world government terraforming
	// has been used.
	WGTDone bool `json:"wgt_done"`

	log logrus.FieldLogger
}

// Claim records a claimed milestone.
type Claim struct {
	Milestone MilestoneID `json:"milestone"`
	Player    PlayerID    `json:"player"`
}

// Funding records a funded award.
type Funding struct {
	Award  AwardID  `json:"award"`
	Player PlayerID `json:"player"`
}

// NewGame builds a session for the named players. Seed 0 is corrected to 1.
// Decks are shuffled immediately, in a fixed order, so equal seeds yield
// equal sessions.
func NewGame(seed uint64, names []string, cfg Config) (*Game, error) {
	if len(names) == 0 || len(names) > MaxPlayers {
		return nil, fmt.Errorf("player count %d outside 1..%d", len(names), MaxPlayers)
	}
	if seed == 0 {
		seed = 1
	}

	g := &Game{
		ID:         uuid.New(),
		Seed:       seed,
		RNG:        seed,
		Config:     cfg,
		Phase:      PhaseInitialDrafting,
		Generation: 1,
		Passed:     make(map[PlayerID]bool),
		Milestones: defaultMilestones(),
		Awards:     defaultAwards(),
		log:        logrus.StandardLogger(),
	}

	for i, name := range names {
		g.Players = append(g.Players, newPlayer(PlayerID(fmt.Sprintf("player-%d", i+1)), name))
	}

	g.ProjectDeck = deckOrSynth(cfg.ProjectCards, "project", defaultProjectDeckSize)
	g.CorporationDeck = deckOrSynth(cfg.CorporationCards, "corporation", defaultCorporationDeckSize)
	g.PreludeDeck = deckOrSynth(cfg.PreludeCards, "prelude", defaultPreludeDeckSize)

	// Shuffle order is part of the deterministic contract.
	g.shuffleCards(g.ProjectDeck)
	g.shuffleCards(g.CorporationDeck)
	g.shuffleCards(g.PreludeDeck)

	return g, nil
}

func deckOrSynth(custom []CardID, prefix string, n int) []CardID {
	if len(custom) > 0 {
		return append([]CardID(nil), custom...)
	}
	deck := make([]CardID, n)
	for i := range deck {
		deck[i] = CardID(fmt.Sprintf("%s-%03d", prefix, i+1))
	}
	return deck
}

// SetLogger replaces the session logger. Nil restores the default.
func (g *Game) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	g.log = l
}

// Start kicks off generation 1: the initial draft when that variant is on
// (and the table has more than one seat), otherwise research directly.
func (g *Game) Start() error {
	if g.Phase != PhaseInitialDrafting {
		return fmt.Errorf("%w: start in %s", ErrPhaseMismatch, g.Phase)
	}
	if g.Config.InitialDraftVariant && len(g.Players) > 1 {
		g.startDraft(DraftInitial)
		return nil
	}
	g.enterPhase(PhaseResearch)
	g.startResearch()
	return nil
}

// Solo reports whether this is a single-player session.
func (g *Game) Solo() bool { return len(g.Players) == 1 }

// IsTerminal reports whether the session has ended.
func (g *Game) IsTerminal() bool { return g.Phase == PhaseEnd }

// PlayerByID resolves a seat.
func (g *Game) PlayerByID(id PlayerID) (*Player, error) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: player %s", ErrNotFound, id)
}

func (g *Game) seatIndex(id PlayerID) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ActivePlayer returns the seat whose turn it is, or nil outside turn-taking
// phases.
func (g *Game) ActivePlayer() *Player {
	if g.ActiveIdx < 0 || g.ActiveIdx >= len(g.Players) {
		return nil
	}
	return g.Players[g.ActiveIdx]
}

// enterPhase performs the bare transition bookkeeping shared by all edges.
func (g *Game) enterPhase(next Phase) {
	g.log.WithFields(logrus.Fields{
		"game":       g.ID,
		"from":       g.Phase.String(),
		"to":         next.String(),
		"generation": g.Generation,
	}).Debug("phase transition")
	g.Phase = next
}

// drawProjects draws up to n project cards, reshuffling the discard pile in
// when the deck runs dry.
func (g *Game) drawProjects(n int) []CardID {
	var out []CardID
	for n > 0 {
		if len(g.ProjectDeck) == 0 {
			if len(g.DiscardPile) == 0 {
				break
			}
			g.ProjectDeck = g.DiscardPile
			g.DiscardPile = nil
			g.shuffleCards(g.ProjectDeck)
		}
		out = append(out, g.ProjectDeck[0])
		g.ProjectDeck = g.ProjectDeck[1:]
		n--
	}
	return out
}

func (g *Game) drawCorporations(n int) []CardID {
	if n > len(g.CorporationDeck) {
		n = len(g.CorporationDeck)
	}
	out := g.CorporationDeck[:n]
	g.CorporationDeck = g.CorporationDeck[n:]
	return append([]CardID(nil), out...)
}

func (g *Game) drawPreludes(n int) []CardID {
	if n > len(g.PreludeDeck) {
		n = len(g.PreludeDeck)
	}
	out := g.PreludeDeck[:n]
	g.PreludeDeck = g.PreludeDeck[n:]
	return append([]CardID(nil), out...)
}

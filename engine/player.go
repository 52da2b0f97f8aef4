package engine

// Resources holds a player's stock of each resource. Amounts never go
// negative; subtraction saturates at zero, so callers validate affordability
// before deducting.
type Resources struct {
	Megacredits uint32 `json:"megacredits"`
	Steel       uint32 `json:"steel"`
	Titanium    uint32 `json:"titanium"`
	Plants      uint32 `json:"plants"`
	Energy      uint32 `json:"energy"`
	Heat        uint32 `json:"heat"`
}

// Get returns the stock of one resource.
func (r *Resources) Get(res Resource) uint32 {
	switch res {
	case Megacredits:
		return r.Megacredits
	case Steel:
		return r.Steel
	case Titanium:
		return r.Titanium
	case Plants:
		return r.Plants
	case Energy:
		return r.Energy
	case Heat:
		return r.Heat
	}
	return 0
}

// Add increases the stock of one resource.
func (r *Resources) Add(res Resource, n uint32) {
	switch res {
	case Megacredits:
		r.Megacredits += n
	case Steel:
		r.Steel += n
	case Titanium:
		r.Titanium += n
	case Plants:
		r.Plants += n
	case Energy:
		r.Energy += n
	case Heat:
		r.Heat += n
	}
}

// Sub decreases the stock of one resource, saturating at zero.
func (r *Resources) Sub(res Resource, n uint32) {
	have := r.Get(res)
	if n > have {
		n = have
	}
	switch res {
	case Megacredits:
		r.Megacredits -= n
	case Steel:
		r.Steel -= n
	case Titanium:
		r.Titanium -= n
	case Plants:
		r.Plants -= n
	case Energy:
		r.Energy -= n
	case Heat:
		r.Heat -= n
	}
}

// Has reports whether at least n of the resource is in stock.
func (r *Resources) Has(res Resource, n uint32) bool {
	return r.Get(res) >= n
}

// Production holds per-generation income. Megacredit production may be
// negative; the other tracks clamp at zero.
type Production struct {
	Megacredits int32  `json:"megacredits"`
	Steel       uint32 `json:"steel"`
	Titanium    uint32 `json:"titanium"`
	Plants      uint32 `json:"plants"`
	Energy      uint32 `json:"energy"`
	Heat        uint32 `json:"heat"`
}

// Add adjusts one production track by delta. Non-megacredit tracks clamp at
// zero instead of going negative.
func (p *Production) Add(res Resource, delta int32) {
	if res == Megacredits {
		p.Megacredits += delta
		return
	}
	adjust := func(v uint32) uint32 {
		n := int64(v) + int64(delta)
		if n < 0 {
			n = 0
		}
		return uint32(n)
	}
	switch res {
	case Steel:
		p.Steel = adjust(p.Steel)
	case Titanium:
		p.Titanium = adjust(p.Titanium)
	case Plants:
		p.Plants = adjust(p.Plants)
	case Energy:
		p.Energy = adjust(p.Energy)
	case Heat:
		p.Heat = adjust(p.Heat)
	}
}

// Player is one seat's full state. All fields are plain data so the struct
// snapshots and restores losslessly.
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`

	Resources       Resources  `json:"resources"`
	Production      Production `json:"production"`
	TerraformRating uint32     `json:"terraform_rating"`

	Hand   []CardID `json:"hand"`
	Played []CardID `json:"played"`

	// Draft zones.
	DraftHand    []CardID `json:"draft_hand"`
	Drafted      []CardID `json:"drafted"`
	NeedsToDraft bool     `json:"needs_to_draft"`

	// Generation-1 research offers and selections.
	DealtCorporations []CardID `json:"dealt_corporations"`
	DealtPreludes     []CardID `json:"dealt_preludes"`
	Corporation       CardID   `json:"corporation"`
	SelectedPreludes  []CardID `json:"selected_preludes"`
	PlayedPreludes    []CardID `json:"played_preludes"`

	// ResearchDone marks that this player's project buy for the current
	// research phase has happened.
	ResearchDone bool `json:"research_done"`
}

func newPlayer(id PlayerID, name string) *Player {
	return &Player{
		ID:              id,
		Name:            name,
		TerraformRating: StartingTerraformRating,
	}
}

// HasCard reports whether the card is in hand.
func (p *Player) HasCard(card CardID) bool {
	return containsCard(p.Hand, card)
}

// removeCardFromHand removes one copy of card from hand, reporting success.
func (p *Player) removeCardFromHand(card CardID) bool {
	var ok bool
	p.Hand, ok = removeCard(p.Hand, card)
	return ok
}

func containsCard(cards []CardID, card CardID) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

// removeCard removes the first occurrence of card, preserving order.
func removeCard(cards []CardID, card CardID) ([]CardID, bool) {
	for i, c := range cards {
		if c == card {
			return append(cards[:i], cards[i+1:]...), true
		}
	}
	return cards, false
}

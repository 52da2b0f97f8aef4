package engine

import "fmt"

// Milestones and awards. Both are first-come claims with hard caps and
// idempotency guards; the engine tracks who claimed what, scoring-side
// interpretation is external.

const (
	// MilestoneCost is the flat claim price.
	MilestoneCost = 8

	// MaxClaimedMilestones caps claims per game.
	MaxClaimedMilestones = 3

	// MaxFundedAwards caps fundings per game.
	MaxFundedAwards = 3
)

// awardCosts escalate with each award already funded.
var awardCosts = [MaxFundedAwards]uint32{8, 14, 20}

func defaultMilestones() []MilestoneID {
	return []MilestoneID{"terraformer", "mayor", "gardener", "builder", "planner"}
}

func defaultAwards() []AwardID {
	return []AwardID{"landlord", "banker", "scientist", "thermalist", "miner"}
}

// MilestoneClaimed returns the claimant, if any.
func (g *Game) MilestoneClaimed(m MilestoneID) (PlayerID, bool) {
	for _, c := range g.Claimed {
		if c.Milestone == m {
			return c.Player, true
		}
	}
	return "", false
}

// AwardFunded returns the funder, if any.
func (g *Game) AwardFunded(a AwardID) (PlayerID, bool) {
	for _, f := range g.Funded {
		if f.Award == a {
			return f.Player, true
		}
	}
	return "", false
}

// NextAwardCost returns the price of the next award funding, or false when
// all funding slots are taken.
func (g *Game) NextAwardCost() (uint32, bool) {
	if len(g.Funded) >= MaxFundedAwards {
		return 0, false
	}
	return awardCosts[len(g.Funded)], true
}

func (g *Game) milestoneExists(m MilestoneID) bool {
	for _, id := range g.Milestones {
		if id == m {
			return true
		}
	}
	return false
}

func (g *Game) awardExists(a AwardID) bool {
	for _, id := range g.Awards {
		if id == a {
			return true
		}
	}
	return false
}

// canClaimMilestone validates without mutating.
func (g *Game) canClaimMilestone(p *Player, m MilestoneID) error {
	if !g.milestoneExists(m) {
		return fmt.Errorf("%w: milestone %s", ErrNotFound, m)
	}
	if claimant, ok := g.MilestoneClaimed(m); ok {
		return fmt.Errorf("%w: milestone %s by %s", ErrAlreadyClaimed, m, claimant)
	}
	if len(g.Claimed) >= MaxClaimedMilestones {
		return fmt.Errorf("%w: all %d milestone slots", ErrAlreadyClaimed, MaxClaimedMilestones)
	}
	if !p.Resources.Has(Megacredits, MilestoneCost) {
		return fmt.Errorf("%w: milestone costs %d M€, have %d", ErrInsufficientResource, MilestoneCost, p.Resources.Megacredits)
	}
	return nil
}

func (g *Game) claimMilestone(p *Player, m MilestoneID) {
	p.Resources.Sub(Megacredits, MilestoneCost)
	g.Claimed = append(g.Claimed, Claim{Milestone: m, Player: p.ID})
}

// canFundAward validates without mutating.
func (g *Game) canFundAward(p *Player, a AwardID) error {
	if !g.awardExists(a) {
		return fmt.Errorf("%w: award %s", ErrNotFound, a)
	}
	if funder, ok := g.AwardFunded(a); ok {
		return fmt.Errorf("%w: award %s by %s", ErrAlreadyFunded, a, funder)
	}
	cost, ok := g.NextAwardCost()
	if !ok {
		return fmt.Errorf("%w: all %d award slots", ErrAlreadyFunded, MaxFundedAwards)
	}
	if !p.Resources.Has(Megacredits, cost) {
		return fmt.Errorf("%w: award costs %d M€, have %d", ErrInsufficientResource, cost, p.Resources.Megacredits)
	}
	return nil
}

func (g *Game) fundAward(p *Player, a AwardID) {
	cost, _ := g.NextAwardCost()
	p.Resources.Sub(Megacredits, cost)
	g.Funded = append(g.Funded, Funding{Award: a, Player: p.ID})
}

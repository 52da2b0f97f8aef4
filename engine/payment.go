package engine

import "fmt"

// Resource-to-megacredit conversion rates.
const (
	SteelValue    = 2 // per steel, building tags only
	TitaniumValue = 3 // per titanium, space tags only
	HeatValue     = 1
	PlantValue    = 3 // per plant, building tags only
)

// Payment describes how a cost is covered: an amount per spendable resource
// plus reserve floors the player refuses to dip below. Steel, titanium and
// plants only convert for the matching card tags.
type Payment struct {
	Megacredits uint32 `json:"megacredits"`
	Steel       uint32 `json:"steel"`
	Titanium    uint32 `json:"titanium"`
	Heat        uint32 `json:"heat"`
	Plants      uint32 `json:"plants"`

	Reserve Reserve `json:"reserve"`
}

// Reserve is the minimum stock of each resource a payment must leave behind.
type Reserve struct {
	Megacredits uint32 `json:"megacredits"`
	Steel       uint32 `json:"steel"`
	Titanium    uint32 `json:"titanium"`
	Heat        uint32 `json:"heat"`
	Plants      uint32 `json:"plants"`
}

// MCPayment returns a payment of megacredits only.
func MCPayment(amount uint32) Payment {
	return Payment{Megacredits: amount}
}

// IsZero reports whether the payment spends nothing.
func (p Payment) IsZero() bool {
	return p.Megacredits == 0 && p.Steel == 0 && p.Titanium == 0 && p.Heat == 0 && p.Plants == 0
}

// Value returns the megacredit worth of the payment for a card with the
// given tags. Non-convertible resources contribute nothing.
func (p Payment) Value(building, space bool) uint32 {
	total := p.Megacredits + p.Heat*HeatValue
	if building {
		total += p.Steel*SteelValue + p.Plants*PlantValue
	}
	if space {
		total += p.Titanium * TitaniumValue
	}
	return total
}

// validatePayment checks that the player can spend the payment without
// breaking its reserves and that the payment covers cost. Nothing is
// deducted.
func validatePayment(pl *Player, pay Payment, cost uint32, building, space bool) error {
	type spend struct {
		res     Resource
		amount  uint32
		reserve uint32
	}
	for _, s := range []spend{
		{Megacredits, pay.Megacredits, pay.Reserve.Megacredits},
		{Steel, pay.Steel, pay.Reserve.Steel},
		{Titanium, pay.Titanium, pay.Reserve.Titanium},
		{Heat, pay.Heat, pay.Reserve.Heat},
		{Plants, pay.Plants, pay.Reserve.Plants},
	} {
		if s.amount == 0 {
			continue
		}
		have := pl.Resources.Get(s.res)
		if have < s.reserve || have-s.reserve < s.amount {
			return fmt.Errorf("%w: %s spend %d exceeds %d available above reserve %d",
				ErrInsufficientResource, s.res, s.amount, have, s.reserve)
		}
	}
	if got := pay.Value(building, space); got < cost {
		return fmt.Errorf("%w: payment worth %d M€ does not cover cost %d", ErrInsufficientResource, got, cost)
	}
	return nil
}

// applyPayment deducts an already-validated payment.
func applyPayment(pl *Player, pay Payment) {
	pl.Resources.Sub(Megacredits, pay.Megacredits)
	pl.Resources.Sub(Steel, pay.Steel)
	pl.Resources.Sub(Titanium, pay.Titanium)
	pl.Resources.Sub(Heat, pay.Heat)
	pl.Resources.Sub(Plants, pay.Plants)
}

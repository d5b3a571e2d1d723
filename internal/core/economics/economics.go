// Package economics turns outcome tallies into reach, revenue and profit.
package economics

import (
	"math"
	"slices"

	"campaign-sim/internal/core/channel"
	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/market"
)

const (
	// DampeningFactor scales raw channel reach down to plausible real-world
	// penetration. It is an empirically tuned constant, not a derived one.
	DampeningFactor = 0.1
	// OrganicPenetrationFloor is the penetration of a campaign with no spend.
	OrganicPenetrationFloor = 0.0005
	// PaidPenetrationFloor is the minimum penetration once any spend is
	// entered.
	PaidPenetrationFloor = 0.001
)

// Pricing is the per-unit price and cost of the advertised product.
type Pricing struct {
	SalesPrice float64
	UnitCost   float64
}

// PricingOf extracts pricing from a product.
func PricingOf(p domain.Product) Pricing {
	return Pricing{SalesPrice: p.SalesPrice, UnitCost: p.UnitCost}
}

// PenetrationFloor is the smallest realized penetration for s. A strategy
// is paid when it bills anything, flat fees included.
func PenetrationFloor(cat *channel.Catalog, s domain.Strategy) float64 {
	if cat.StrategyCost(s) > 0 {
		return PaidPenetrationFloor
	}
	return OrganicPenetrationFloor
}

// Penetration returns the raw aggregate reach of s on d and the realized
// penetration after dampening and flooring.
func Penetration(cat *channel.Catalog, s domain.Strategy, d domain.Demographic) (aggregate, realized float64) {
	aggregate = cat.AggregateReach(s, d)
	realized = math.Max(PenetrationFloor(cat, s), aggregate*DampeningFactor)
	return aggregate, realized
}

// AllocatedCost splits the strategy cost evenly across the demographics it
// targets. Demographics it does not target carry no cost.
func AllocatedCost(cat *channel.Catalog, s domain.Strategy, demographicID string) float64 {
	targeted := s.TargetedDemographics()
	if len(targeted) == 0 || !slices.Contains(targeted, demographicID) {
		return 0
	}
	return cat.StrategyCost(s) / float64(len(targeted))
}

// Derive computes the economics of one demographic from its tally. The
// demographic's cached size is used when valid.
func Derive(cat *channel.Catalog, t domain.Tally, d domain.Demographic, p Pricing, s domain.Strategy) domain.Economics {
	aggregate, realized := Penetration(cat, s, d)
	boosts := cat.Blend(s, d)

	reached := int64(math.Floor(float64(market.ResolveSize(d)) * realized))
	probability := clamp01(t.ConversionRate() * boosts.Conversion)
	purchases := int64(math.Floor(float64(reached) * probability))
	cost := AllocatedCost(cat, s, d.ID)

	return domain.Economics{
		AggregateReach:  aggregate,
		Penetration:     realized,
		PeopleReached:   reached,
		ConversionBoost: boosts.Conversion,
		EngagementBoost: boosts.Engagement,
		Purchases:       purchases,
		Revenue:         nonNegative(float64(purchases) * p.SalesPrice),
		Cost:            nonNegative(cost),
		Profit:          nonNegative(float64(purchases)*(p.SalesPrice-p.UnitCost) - cost),
	}
}

// Totals sums segment figures.
func Totals(segments []domain.SegmentResult) domain.RunTotals {
	var tot domain.RunTotals
	for _, seg := range segments {
		tot.Trials += seg.Tally.Trials
		tot.Conversions += seg.Tally.FollowAndBuy
		tot.PeopleReached += seg.Economics.PeopleReached
		tot.Purchases += seg.Economics.Purchases
		tot.Revenue += seg.Economics.Revenue
		tot.Cost += seg.Economics.Cost
		tot.Profit += seg.Economics.Profit
	}
	return tot
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

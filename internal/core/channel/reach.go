package channel

import (
	"math"
	"slices"

	"campaign-sim/internal/core/domain"
)

const (
	// OverlapDiscount removes audience counted twice across channels.
	OverlapDiscount = 0.15
	// MaxAggregateReach caps the combined reach of a strategy.
	MaxAggregateReach = 0.95
	// OffTargetAffinity scales reach on a channel not aimed at the segment.
	OffTargetAffinity = 0.5
)

// Boosts are spend-weighted multipliers applied to simulated rates.
type Boosts struct {
	Conversion float64 `json:"conversion_boost"`
	Engagement float64 `json:"engagement_boost"`
}

// Neutral leaves rates unchanged.
var Neutral = Boosts{Conversion: 1, Engagement: 1}

// Affinity is 1 when the channel targets everyone or the demographic's
// age band, OffTargetAffinity otherwise.
func Affinity(ch domain.Channel, d domain.Demographic) float64 {
	if slices.Contains(ch.TargetDemographics, domain.TargetAll) || slices.Contains(ch.TargetDemographics, d.AgeBand) {
		return 1
	}
	return OffTargetAffinity
}

// Reach returns the fraction of the demographic reached by spend on ch.
// The curve saturates towards MaxReach: each extra unit buys less reach.
func Reach(ch domain.Channel, spend float64, d domain.Demographic) float64 {
	if spend <= 0 || ch.MaxReach <= 0 || ch.ScalingEfficiency <= 0 {
		return 0
	}
	ratio := math.Inf(1)
	if ch.MinimumSpend > 0 {
		ratio = spend / ch.MinimumSpend
	}
	r := ch.MaxReach * (1 - math.Exp(-ratio*ch.ScalingEfficiency)) * Affinity(ch, d)
	return math.Min(math.Max(r, 0), ch.MaxReach)
}

// eligible yields the known channels whose allocation targets d.
func (c *Catalog) eligible(s domain.Strategy, d domain.Demographic, fn func(domain.Channel, domain.Allocation)) {
	for _, a := range s.Allocations {
		if !a.Targets(d.ID) {
			continue
		}
		ch, ok := c.byID[a.ChannelID]
		if !ok {
			continue
		}
		fn(ch, a)
	}
}

// AggregateReach combines per-channel reach for d, discounting overlap and
// capping at MaxAggregateReach. Unknown channels are skipped. Reach is
// bought with the billed amount, so a flat fee reaches even at zero spend.
func (c *Catalog) AggregateReach(s domain.Strategy, d domain.Demographic) float64 {
	var sum float64
	c.eligible(s, d, func(ch domain.Channel, a domain.Allocation) {
		sum += Reach(ch, AllocationCost(ch, a), d)
	})
	return math.Min(sum*(1-OverlapDiscount), MaxAggregateReach)
}

// Blend returns the cost-weighted conversion and engagement multipliers
// of the channels targeting d. With nothing billed it returns Neutral.
func (c *Catalog) Blend(s domain.Strategy, d domain.Demographic) Boosts {
	var weight, conv, eng float64
	c.eligible(s, d, func(ch domain.Channel, a domain.Allocation) {
		billed := AllocationCost(ch, a)
		if billed <= 0 {
			return
		}
		weight += billed
		conv += billed * ch.ConversionMultiplier
		eng += billed * ch.EngagementMultiplier
	})
	if weight == 0 {
		return Neutral
	}
	return Boosts{Conversion: conv / weight, Engagement: eng / weight}
}

// AllocationCost is what an allocation bills: the fixed fee for flat-fee
// channels, the entered spend otherwise.
func AllocationCost(ch domain.Channel, a domain.Allocation) float64 {
	if !ch.IsMetered() {
		return ch.BaseCost
	}
	return math.Max(a.Spend, 0)
}

// StrategyCost sums AllocationCost over the known channels of s.
func (c *Catalog) StrategyCost(s domain.Strategy) float64 {
	var total float64
	for _, a := range s.Allocations {
		if ch, ok := c.byID[a.ChannelID]; ok {
			total += AllocationCost(ch, a)
		}
	}
	return total
}

// UnknownChannels lists allocation channel IDs missing from the catalog.
func (c *Catalog) UnknownChannels(s domain.Strategy) []string {
	var ids []string
	for _, a := range s.Allocations {
		if _, ok := c.byID[a.ChannelID]; !ok && !slices.Contains(ids, a.ChannelID) {
			ids = append(ids, a.ChannelID)
		}
	}
	return ids
}

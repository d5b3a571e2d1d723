package domain

// Allocation assigns spend on one channel to a set of demographics.
type Allocation struct {
	ChannelID      string   `json:"channel_id"`
	Spend          float64  `json:"spend"`
	DemographicIDs []string `json:"demographic_ids"`
}

// Targets reports whether the allocation names the given demographic.
func (a Allocation) Targets(demographicID string) bool {
	for _, id := range a.DemographicIDs {
		if id == demographicID {
			return true
		}
	}
	return false
}

// Strategy is an ordered spend plan across channels. An empty strategy is
// an organic, zero-budget campaign.
type Strategy struct {
	Allocations  []Allocation `json:"allocations"`
	TotalBudget  float64      `json:"total_budget"`
	DurationDays int          `json:"duration_days"`
}

// TotalSpend sums the entered spend of every allocation.
func (s Strategy) TotalSpend() float64 {
	var total float64
	for _, a := range s.Allocations {
		total += a.Spend
	}
	return total
}

// TargetedDemographics returns the distinct demographic IDs named by any
// allocation, in first-seen order.
func (s Strategy) TargetedDemographics() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, a := range s.Allocations {
		for _, id := range a.DemographicIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// Clone returns a deep copy of s.
func (s Strategy) Clone() Strategy {
	out := s
	out.Allocations = make([]Allocation, len(s.Allocations))
	for i, a := range s.Allocations {
		a.DemographicIDs = append([]string(nil), a.DemographicIDs...)
		out.Allocations[i] = a
	}
	return out
}

package domain

// CostModel describes how a channel charges for spend.
type CostModel string

const (
	CostPerClick       CostModel = "cpc"
	CostPerMille       CostModel = "cpm"
	CostFlatFee        CostModel = "flat"
	CostPercentOfSpend CostModel = "percentage"
)

// TargetAll marks a channel that is effective for every demographic.
const TargetAll = "all"

// Channel is a statically defined marketing medium. Channels are loaded
// once from the embedded catalog and never mutated.
type Channel struct {
	ID                   string    `json:"id" yaml:"id"`
	Name                 string    `json:"name" yaml:"name"`
	CostModel            CostModel `json:"cost_model" yaml:"cost_model"`
	BaseCost             float64   `json:"base_cost" yaml:"base_cost"`
	MaxReach             float64   `json:"max_reach" yaml:"max_reach"`
	TargetingPrecision   float64   `json:"targeting_precision" yaml:"targeting_precision"`
	ConversionMultiplier float64   `json:"conversion_multiplier" yaml:"conversion_multiplier"`
	EngagementMultiplier float64   `json:"engagement_multiplier" yaml:"engagement_multiplier"`
	TargetDemographics   []string  `json:"target_demographics" yaml:"target_demographics"`
	MinimumSpend         float64   `json:"minimum_spend" yaml:"minimum_spend"`
	ScalingEfficiency    float64   `json:"scaling_efficiency" yaml:"scaling_efficiency"`
}

// IsMetered reports whether the channel bills the entered spend rather than
// a fixed fee.
func (c Channel) IsMetered() bool {
	return c.CostModel != CostFlatFee
}

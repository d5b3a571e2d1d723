package domain

import "time"

// Economics holds the money figures derived for one segment. All values
// are derived from a tally, pricing and strategy; none is set directly.
type Economics struct {
	AggregateReach  float64 `json:"aggregate_reach"`
	Penetration     float64 `json:"penetration"`
	PeopleReached   int64   `json:"people_reached"`
	ConversionBoost float64 `json:"conversion_boost"`
	EngagementBoost float64 `json:"engagement_boost"`
	Purchases       int64   `json:"purchases"`
	Revenue         float64 `json:"revenue"`
	Cost            float64 `json:"cost"`
	Profit          float64 `json:"profit"`
}

// SegmentResult is the outcome of simulating one demographic. Demographic
// is a snapshot taken when the run was built, including its frozen size.
type SegmentResult struct {
	Demographic Demographic `json:"demographic"`
	Tally       Tally       `json:"tally"`
	Economics   Economics   `json:"economics"`
}

// RunTotals sums segment figures across a run.
type RunTotals struct {
	Trials        int     `json:"trials"`
	Conversions   int     `json:"conversions"`
	PeopleReached int64   `json:"people_reached"`
	Purchases     int64   `json:"purchases"`
	Revenue       float64 `json:"revenue"`
	Cost          float64 `json:"cost"`
	Profit        float64 `json:"profit"`
}

// CampaignRun is a completed, immutable simulation of one campaign variant.
type CampaignRun struct {
	ID               string          `json:"id"`
	Variant          string          `json:"variant"`
	Product          Product         `json:"product"`
	Tagline          string          `json:"tagline"`
	Strategy         Strategy        `json:"strategy"`
	TrialsPerSegment int             `json:"trials_per_segment"`
	Segments         []SegmentResult `json:"segments"`
	Totals           RunTotals       `json:"totals"`
	CreatedAt        time.Time       `json:"created_at"`
}

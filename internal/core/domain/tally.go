package domain

// TallyKey identifies the segment a tally belongs to.
type TallyKey struct {
	DemographicID string `json:"demographic_id"`
	Variant       string `json:"variant"`
}

// Tally counts trial outcomes for one segment. The four counters always sum
// to Trials; values are produced by tally.Fold and never edited afterwards.
type Tally struct {
	Key           TallyKey `json:"key"`
	Trials        int      `json:"trials"`
	Ignore        int      `json:"ignore"`
	FollowLink    int      `json:"follow_link"`
	FollowAndBuy  int      `json:"follow_and_buy"`
	FollowAndSave int      `json:"follow_and_save"`
	// Degraded counts trials recorded as ignore because their sub-batch
	// could not be completed by the oracle.
	Degraded int `json:"degraded"`
}

// Count returns the counter for a single outcome.
func (t Tally) Count(o Outcome) int {
	switch o {
	case OutcomeFollowLink:
		return t.FollowLink
	case OutcomeFollowAndBuy:
		return t.FollowAndBuy
	case OutcomeFollowAndSave:
		return t.FollowAndSave
	default:
		return t.Ignore
	}
}

// Sum adds the four outcome counters.
func (t Tally) Sum() int {
	return t.Ignore + t.FollowLink + t.FollowAndBuy + t.FollowAndSave
}

// ConversionRate is the share of trials that ended in a purchase. Zero
// trials yield zero.
func (t Tally) ConversionRate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.FollowAndBuy) / float64(t.Trials)
}

// EngagementRate is the share of trials that followed the link in any way.
func (t Tally) EngagementRate() float64 {
	if t.Trials == 0 {
		return 0
	}
	return float64(t.FollowLink+t.FollowAndBuy+t.FollowAndSave) / float64(t.Trials)
}

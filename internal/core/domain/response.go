package domain

import "strings"

// Outcome is the reaction of one simulated person to a campaign.
type Outcome string

const (
	OutcomeIgnore        Outcome = "ignore"
	OutcomeFollowLink    Outcome = "followLink"
	OutcomeFollowAndBuy  Outcome = "followAndBuy"
	OutcomeFollowAndSave Outcome = "followAndSave"
)

// Outcomes lists every outcome in reporting order.
var Outcomes = []Outcome{OutcomeIgnore, OutcomeFollowLink, OutcomeFollowAndBuy, OutcomeFollowAndSave}

// ParseOutcome maps an oracle label to an Outcome. Matching ignores case,
// spaces, dashes and underscores. Unknown labels become OutcomeIgnore.
func ParseOutcome(label string) Outcome {
	norm := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(label))
	switch norm {
	case "followlink", "click":
		return OutcomeFollowLink
	case "followandbuy", "buy", "purchase":
		return OutcomeFollowAndBuy
	case "followandsave", "save":
		return OutcomeFollowAndSave
	default:
		return OutcomeIgnore
	}
}

// Response is one trial answer produced by the response oracle.
type Response struct {
	Outcome   Outcome `json:"outcome"`
	Rationale string  `json:"rationale,omitempty"`
}

// Product is the item being advertised. SalesPrice should exceed UnitCost
// for profit figures to be meaningful; that is left to callers.
type Product struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SalesPrice  float64 `json:"sales_price"`
	UnitCost    float64 `json:"unit_cost"`
}

package domain

// Age bands recognised by the market sizing tables.
const (
	AgeBand18to24 = "18-24"
	AgeBand25to34 = "25-34"
	AgeBand35to44 = "35-44"
	AgeBand45to54 = "45-54"
	AgeBand55to64 = "55-64"
	AgeBand65Plus = "65+"
)

// Demographic describes a target audience segment. EstimatedSize is the
// cached population count; zero means it has not been estimated yet. Once
// a demographic is attached to a campaign run its size is frozen in the
// run's snapshot.
type Demographic struct {
	ID            string   `json:"id"`
	AgeBand       string   `json:"age_band"`
	Gender        string   `json:"gender"`
	Interests     []string `json:"interests"`
	Category      string   `json:"category"`
	Description   string   `json:"description,omitempty"`
	EstimatedSize int64    `json:"estimated_size,omitempty"`
}

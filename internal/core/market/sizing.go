// Package market estimates how many people a demographic segment contains.
package market

import (
	_ "embed"
	"math"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"campaign-sim/internal/core/domain"
)

const (
	// interestNarrowing is the share of the market removed per declared
	// interest.
	interestNarrowing = 0.08
	// minInterestFactor keeps heavily narrowed segments at 10% of baseline.
	minInterestFactor = 0.1
)

//go:embed tables.yaml
var tablesYAML []byte

type tables struct {
	DefaultBaseline       int64                       `yaml:"default_baseline"`
	MinimumSize           int64                       `yaml:"minimum_size"`
	NeutralCategoryFactor float64                     `yaml:"neutral_category_factor"`
	Baselines             map[string]map[string]int64 `yaml:"baselines"`
	CategoryFactors       map[string]float64          `yaml:"category_factors"`
}

var loadTables = sync.OnceValue(func() tables {
	var t tables
	if err := yaml.Unmarshal(tablesYAML, &t); err != nil {
		panic("market: malformed embedded tables: " + err.Error())
	}
	return t
})

// MinimumSize is the smallest population any demographic is sized at.
func MinimumSize() int64 {
	return loadTables().MinimumSize
}

// BaseSize returns the baseline population for an age band and gender.
// Unknown combinations fall back to the default baseline.
func BaseSize(ageBand, gender string) int64 {
	t := loadTables()
	if byGender, ok := t.Baselines[strings.TrimSpace(ageBand)]; ok {
		if n, ok := byGender[strings.ToLower(strings.TrimSpace(gender))]; ok {
			return n
		}
	}
	return t.DefaultBaseline
}

// InterestFactor narrows the addressable market by 8% per interest,
// never below 10% of baseline.
func InterestFactor(interestCount int) float64 {
	return math.Max(minInterestFactor, 1-interestNarrowing*float64(interestCount))
}

// CategoryFactor returns the affluence multiplier for a category.
// Unrecognised categories get the neutral factor.
func CategoryFactor(category string) float64 {
	t := loadTables()
	if f, ok := t.CategoryFactors[strings.ToLower(strings.TrimSpace(category))]; ok {
		return f
	}
	return t.NeutralCategoryFactor
}

// EstimateSize converts a demographic descriptor into a population count.
// It is pure and deterministic, and never returns less than MinimumSize.
func EstimateSize(d domain.Demographic) int64 {
	base := float64(BaseSize(d.AgeBand, d.Gender))
	size := int64(math.Floor(base * InterestFactor(len(d.Interests)) * CategoryFactor(d.Category)))
	return max(size, MinimumSize())
}

// ResolveSize returns the demographic's cached size when it is valid and
// estimates it otherwise.
func ResolveSize(d domain.Demographic) int64 {
	if d.EstimatedSize >= MinimumSize() {
		return d.EstimatedSize
	}
	return EstimateSize(d)
}

// WithSize returns a copy of d carrying its resolved size.
func WithSize(d domain.Demographic) domain.Demographic {
	d.EstimatedSize = ResolveSize(d)
	d.Interests = append([]string(nil), d.Interests...)
	return d
}

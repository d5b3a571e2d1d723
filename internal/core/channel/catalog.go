// Package channel models marketing channel reach, cost and blended
// effectiveness for a spend strategy.
package channel

import (
	_ "embed"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"campaign-sim/internal/core/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is an immutable set of channel definitions keyed by ID.
type Catalog struct {
	order []string
	byID  map[string]domain.Channel
}

// NewCatalog builds a catalog from definitions. Later duplicates of an ID
// replace earlier ones.
func NewCatalog(defs []domain.Channel) *Catalog {
	c := &Catalog{byID: make(map[string]domain.Channel, len(defs))}
	for _, d := range defs {
		if _, ok := c.byID[d.ID]; !ok {
			c.order = append(c.order, d.ID)
		}
		d.TargetDemographics = slices.Clone(d.TargetDemographics)
		c.byID[d.ID] = d
	}
	return c
}

// Default returns the catalog embedded in the binary. It is parsed once.
var Default = sync.OnceValue(func() *Catalog {
	var defs []domain.Channel
	if err := yaml.Unmarshal(catalogYAML, &defs); err != nil {
		panic("channel: malformed embedded catalog: " + err.Error())
	}
	return NewCatalog(defs)
})

// Lookup returns the channel with the given ID.
func (c *Catalog) Lookup(id string) (domain.Channel, bool) {
	ch, ok := c.byID[id]
	if ok {
		ch.TargetDemographics = slices.Clone(ch.TargetDemographics)
	}
	return ch, ok
}

// Channels returns every definition in catalog order.
func (c *Catalog) Channels() []domain.Channel {
	out := make([]domain.Channel, 0, len(c.order))
	for _, id := range c.order {
		ch, _ := c.Lookup(id)
		out = append(out, ch)
	}
	return out
}

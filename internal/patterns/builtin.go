package patterns

import (
	"fmt"

	"github.com/roach88/patternlab/internal/catalog"
)

// Builtin assembles the sealed catalog of bundled demonstrations.
//
// A registration error indicates a content bug (duplicate or malformed
// key) and is fatal to startup by design.
func Builtin() (*catalog.Catalog, error) {
	cat := catalog.New()

	groups := [][]catalog.Entry{
		creationalEntries(),
		structuralEntries(),
		behavioralEntries(),
		caseStudyEntries(),
	}
	for _, group := range groups {
		for _, e := range group {
			if err := cat.Register(e); err != nil {
				return nil, fmt.Errorf("registering builtin %s: %w", e.Key, err)
			}
		}
	}

	cat.Seal()
	return cat, nil
}

// pair builds the base and improved entries for one pattern.
func pair(category catalog.Category, name, baseTitle, improvedTitle string, base, improved catalog.RunFunc) []catalog.Entry {
	return []catalog.Entry{
		{
			Key:   catalog.Key{Category: category, Name: name, Variant: catalog.VariantBase},
			Title: baseTitle,
			Run:   base,
		},
		{
			Key:   catalog.Key{Category: category, Name: name, Variant: catalog.VariantImproved},
			Title: improvedTitle,
			Run:   improved,
		},
	}
}

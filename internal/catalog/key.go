package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category places a pattern in the GoF taxonomy.
type Category string

const (
	// CategoryCreational covers object-creation patterns (singleton, builder, ...).
	CategoryCreational Category = "creational"

	// CategoryStructural covers composition patterns (adapter, decorator, ...).
	CategoryStructural Category = "structural"

	// CategoryBehavioral covers interaction patterns (observer, strategy, ...).
	CategoryBehavioral Category = "behavioral"

	// CategoryCaseStudy covers worked examples combining several patterns.
	CategoryCaseStudy Category = "casestudy"

	// CategoryAdditional covers non-canonical extras.
	CategoryAdditional Category = "additional"
)

// Categories lists all valid categories in lexicographic order.
// This is the same order List uses, so enumeration output is stable.
var Categories = []Category{
	CategoryAdditional,
	CategoryBehavioral,
	CategoryCaseStudy,
	CategoryCreational,
	CategoryStructural,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Variant distinguishes the naive form of an example from the pattern-applied form.
type Variant string

const (
	// VariantBase is the naive/problem form of an example.
	VariantBase Variant = "base"

	// VariantImproved is the form that applies the pattern properly.
	VariantImproved Variant = "improved"
)

// Variants lists both variants in lexicographic order.
var Variants = []Variant{VariantBase, VariantImproved}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantBase || v == VariantImproved
}

// Key uniquely identifies one registered demonstration.
type Key struct {
	Category Category `json:"category" yaml:"category"`
	Name     string   `json:"name" yaml:"name"`
	Variant  Variant  `json:"variant" yaml:"variant"`
}

// NormalizeName canonicalizes a pattern name for keying.
//
// Names are NFC-normalized, trimmed, and lower-cased so that lookups with
// visually identical but differently composed Unicode input resolve to the
// same entry. The same normalization is applied at registration and at
// lookup, so callers never need to pre-normalize.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(name)))
}

// NewKey builds a canonical Key from raw tokens.
//
// Returns an *Error with ErrCodeInvalidKey if the category or variant is
// unknown or the name is empty after normalization.
func NewKey(category, name, variant string) (Key, error) {
	k := Key{
		Category: Category(strings.ToLower(strings.TrimSpace(category))),
		Name:     NormalizeName(name),
		Variant:  Variant(strings.ToLower(strings.TrimSpace(variant))),
	}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

// Validate checks that all three components of the key are well-formed.
func (k Key) Validate() error {
	if !k.Category.Valid() {
		return newInvalidKeyError(k, fmt.Sprintf("unknown category %q", k.Category))
	}
	if k.Name == "" {
		return newInvalidKeyError(k, "name must not be empty")
	}
	if k.Name != NormalizeName(k.Name) {
		return newInvalidKeyError(k, fmt.Sprintf("name %q is not in canonical form", k.Name))
	}
	if !k.Variant.Valid() {
		return newInvalidKeyError(k, fmt.Sprintf("unknown variant %q (want base or improved)", k.Variant))
	}
	return nil
}

// Sibling returns the key of the paired variant (base ↔ improved).
func (k Key) Sibling() Key {
	sibling := k
	if k.Variant == VariantBase {
		sibling.Variant = VariantImproved
	} else {
		sibling.Variant = VariantBase
	}
	return sibling
}

// String renders the key as "category/name/variant".
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Category, k.Name, k.Variant)
}

// Less orders keys lexicographically by category, then name, then variant.
func (k Key) Less(other Key) bool {
	if k.Category != other.Category {
		return k.Category < other.Category
	}
	if k.Name != other.Name {
		return k.Name < other.Name
	}
	return k.Variant < other.Variant
}

package reconcile

import "inventory-sync/core/printify"

// ChangeKind classifies the stock transition required for a single variant.
type ChangeKind string

const (
	// ChangeOutOfStock marks an enabled variant that disappeared from the
	// live catalog and must be disabled.
	ChangeOutOfStock ChangeKind = "out_of_stock"
	// ChangeRestocked marks a disabled variant that reappeared in the
	// live catalog and must be re-enabled.
	ChangeRestocked ChangeKind = "restocked"
)

// VariantChange records one variant whose classification changed.
type VariantChange struct {
	// VariantID is the provider-specific variant identifier.
	VariantID int `json:"variant_id"`

	// Title is the variant display title.
	Title string `json:"title"`

	// Kind is the required transition.
	Kind ChangeKind `json:"kind"`
}

// Plan is the per-product outcome of stock classification.
// It carries the full recomputed variant list so a disable/restore update
// can be applied as-is, plus the flags driving the failover decision.
type Plan struct {
	// ProductID identifies the classified product.
	ProductID string `json:"product_id"`

	// Changes lists the variants whose classification changed.
	Changes []VariantChange `json:"changes"`

	// Updates is the complete variant list with recomputed enabled flags.
	// Prices and identifiers are unchanged from the store side.
	Updates []printify.VariantUpdate `json:"updates"`

	// RequiresUpdate indicates at least one variant changed classification.
	RequiresUpdate bool `json:"requires_update"`

	// NeedsFailover indicates at least one variant went newly out of stock,
	// warranting a provider failover attempt before disabling.
	NeedsFailover bool `json:"needs_failover"`
}

// CountKind returns the number of changes of the given kind.
func (p *Plan) CountKind(kind ChangeKind) int {
	n := 0
	for _, c := range p.Changes {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// FailoverResult is a successful provider match: a new provider together
// with the product's complete variant list remapped onto that provider's
// catalog identifiers. Partial remappings are never produced.
type FailoverResult struct {
	// PrintProviderID is the matched alternative provider.
	PrintProviderID int `json:"print_provider_id"`

	// ProviderTitle is the matched provider's display name.
	ProviderTitle string `json:"provider_title"`

	// Variants is the fully remapped variant list. Prices and enabled
	// flags carry over from the store side; only identifiers change.
	Variants []printify.VariantUpdate `json:"variants"`
}

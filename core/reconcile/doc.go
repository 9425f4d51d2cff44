// Package reconcile contains the stock reconciliation decision engine.
//
// It compares a product's published variants against the current provider's
// live catalog, classifies each variant's required transition, and decides
// between three outcomes per product: no change, a disable/restore variant
// list, or a full provider switch.
//
// # Architecture
//
// The package consists of two cooperating parts:
//
//  1. Engine: pure classification and payload construction. Classify
//     computes per-variant transitions from a live snapshot; BuildPayload
//     applies the precedence rules (a successful failover supersedes the
//     disable list; restock-only changes never attempt failover).
//
//  2. Matcher: the provider failover search. ProviderMatcher walks the
//     blueprint's other providers in catalog order and accepts the first
//     candidate whose catalog can fulfill every store variant by option
//     set. Matching is all-or-nothing; partial remappings are never
//     returned.
//
// # Option Set Identity
//
// Variant identifiers are provider-specific and not portable, so the same
// logical variant is matched across providers by its full option mapping.
// OptionKey normalizes the mapping into a sorted composite key, making the
// comparison independent of option ordering. Empty option maps never match.
//
// # Usage
//
//	matcher := reconcile.NewMatcher(client, logger)
//	payload, plan := reconcile.Reconcile(ctx, product, snapshot, matcher)
//	if payload == nil {
//	    // product already in sync
//	}
package reconcile

package reconcile

import (
	"context"

	"inventory-sync/core/printify"
)

// Matcher searches for an alternative provider able to fulfill every one
// of the product's variants. A nil result means no viable failover, which
// is an expected outcome rather than an error.
type Matcher interface {
	FindAlternativeProvider(ctx context.Context, blueprintID, currentProviderID int, variants []printify.Variant) *FailoverResult
}

// Classify compares each store variant's enabled flag against the live
// snapshot's available identifier set and computes the required transitions.
//
// An enabled variant absent from the snapshot is newly out of stock and
// flags the product for a failover attempt. A disabled variant present in
// the snapshot is restocked. Everything else keeps its current state.
func Classify(product printify.Product, snapshot *printify.CatalogSnapshot) Plan {
	available := snapshot.AvailableIDs()

	plan := Plan{
		ProductID: product.ID,
		Updates:   make([]printify.VariantUpdate, 0, len(product.Variants)),
	}

	for _, variant := range product.Variants {
		_, inStock := available[variant.ID]
		enabled := variant.IsEnabled

		switch {
		case variant.IsEnabled && !inStock:
			enabled = false
			plan.RequiresUpdate = true
			plan.NeedsFailover = true
			plan.Changes = append(plan.Changes, VariantChange{
				VariantID: variant.ID,
				Title:     variant.Title,
				Kind:      ChangeOutOfStock,
			})
		case !variant.IsEnabled && inStock:
			enabled = true
			plan.RequiresUpdate = true
			plan.Changes = append(plan.Changes, VariantChange{
				VariantID: variant.ID,
				Title:     variant.Title,
				Kind:      ChangeRestocked,
			})
		}

		plan.Updates = append(plan.Updates, printify.VariantUpdate{
			ID:        variant.ID,
			Price:     variant.Price,
			IsEnabled: enabled,
		})
	}

	return plan
}

// BuildPayload turns a plan and an optional failover result into the
// outbound update payload. A successful failover supersedes the
// disable/restore list: the whole variant list is replaced by the matched
// set. It returns nil when the plan requires no update.
func BuildPayload(plan Plan, failover *FailoverResult) *printify.UpdatePayload {
	if !plan.RequiresUpdate {
		return nil
	}

	if plan.NeedsFailover && failover != nil {
		return &printify.UpdatePayload{
			PrintProviderID: failover.PrintProviderID,
			Variants:        failover.Variants,
		}
	}

	return &printify.UpdatePayload{Variants: plan.Updates}
}

// Reconcile runs the full decision path for one product: classify every
// variant against the live snapshot, invoke the matcher when at least one
// variant went newly out of stock, and apply the precedence rules.
//
// The returned payload is nil when the product is already in sync; the
// plan is always returned for reporting. Failover is never attempted for
// restock-only changes.
func Reconcile(ctx context.Context, product printify.Product, snapshot *printify.CatalogSnapshot, matcher Matcher) (*printify.UpdatePayload, Plan) {
	plan := Classify(product, snapshot)
	if !plan.RequiresUpdate {
		return nil, plan
	}

	var failover *FailoverResult
	if plan.NeedsFailover && matcher != nil {
		failover = matcher.FindAlternativeProvider(ctx, product.BlueprintID, product.PrintProviderID, product.Variants)
	}

	return BuildPayload(plan, failover), plan
}

package inventory

import (
	"context"
	"fmt"

	"inventory-sync/core/printify"
	"inventory-sync/core/reconcile"
)

// ProbeResult describes what a sync pass would decide for one product,
// without applying anything.
type ProbeResult struct {
	// ProductID identifies the probed product.
	ProductID string `json:"product_id"`

	// Title is the product display title.
	Title string `json:"title"`

	// Plan is the stock classification against the live catalog.
	Plan reconcile.Plan `json:"plan"`

	// Failover is the provider match that would be applied, if any.
	Failover *reconcile.FailoverResult `json:"failover,omitempty"`

	// Payload is the update that a real pass would dispatch; nil when the
	// product is already in sync.
	Payload *printify.UpdatePayload `json:"payload,omitempty"`
}

// Probe reconciles a single product against its provider's live catalog
// and reports the decision without dispatching an update.
func (s *Service) Probe(ctx context.Context, productID string) (*ProbeResult, error) {
	products, err := s.client.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list store products: %w", err)
	}

	var product *printify.Product
	for i := range products {
		if products[i].ID == productID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return nil, fmt.Errorf("product %s not found in store", productID)
	}

	snapshot, err := s.client.GetBlueprintVariants(ctx, product.BlueprintID, product.PrintProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch live catalog: %w", err)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("live catalog unavailable for provider %d", product.PrintProviderID)
	}

	result := &ProbeResult{ProductID: product.ID, Title: product.Title}
	result.Plan = reconcile.Classify(*product, snapshot)

	if result.Plan.NeedsFailover {
		result.Failover = s.matcher.FindAlternativeProvider(ctx, product.BlueprintID, product.PrintProviderID, product.Variants)
	}
	result.Payload = reconcile.BuildPayload(result.Plan, result.Failover)

	return result, nil
}

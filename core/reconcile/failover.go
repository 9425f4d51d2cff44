package reconcile

import (
	"context"

	"inventory-sync/core/printify"

	"go.uber.org/zap"
)

// CatalogSource is the subset of the upstream client the matcher consumes:
// blueprint provider lists and per-provider variant catalogs.
type CatalogSource interface {
	GetBlueprint(ctx context.Context, blueprintID int) (*printify.Blueprint, error)
	GetBlueprintVariants(ctx context.Context, blueprintID, providerID int) (*printify.CatalogSnapshot, error)
}

// ProviderMatcher implements Matcher against a live catalog source.
// It performs no caching: every search fetches fresh provider catalogs.
type ProviderMatcher struct {
	source CatalogSource
	logger *zap.Logger
}

// NewMatcher creates a matcher over the given catalog source.
func NewMatcher(source CatalogSource, logger *zap.Logger) *ProviderMatcher {
	return &ProviderMatcher{source: source, logger: logger}
}

// FindAlternativeProvider searches the blueprint's other providers, in the
// order given by the blueprint data, for the first one whose catalog can
// fulfill every store variant by option set. The search is first-fit and
// all-or-nothing: a candidate missing even one variant is fully rejected.
//
// It returns nil when the blueprint is unavailable or no candidate
// satisfies all variants. Unavailable candidate catalogs are skipped.
func (m *ProviderMatcher) FindAlternativeProvider(ctx context.Context, blueprintID, currentProviderID int, variants []printify.Variant) *FailoverResult {
	blueprint, err := m.source.GetBlueprint(ctx, blueprintID)
	if err != nil || blueprint == nil {
		m.logger.Warn("Could not fetch blueprint provider list",
			zap.Int("blueprint_id", blueprintID),
			zap.Error(err),
		)
		return nil
	}

	for _, provider := range blueprint.Providers {
		if provider.ID == currentProviderID {
			continue
		}
		if provider.ID <= 0 {
			// A non-positive id would make the switch payload
			// indistinguishable from a plain variant update.
			m.logger.Warn("Skipping provider with invalid id",
				zap.Int("blueprint_id", blueprintID),
				zap.Int("provider_id", provider.ID),
			)
			continue
		}

		l := m.logger.With(
			zap.Int("blueprint_id", blueprintID),
			zap.Int("provider_id", provider.ID),
			zap.String("provider", provider.Title),
		)
		l.Debug("Evaluating alternative provider")

		snapshot, err := m.source.GetBlueprintVariants(ctx, blueprintID, provider.ID)
		if err != nil || snapshot == nil || len(snapshot.Variants) == 0 {
			l.Debug("Skipping provider without variant data", zap.Error(err))
			continue
		}

		remapped, ok := remapVariants(variants, snapshot)
		if !ok {
			continue
		}

		l.Info("Found compatible alternative provider")
		return &FailoverResult{
			PrintProviderID: provider.ID,
			ProviderTitle:   provider.Title,
			Variants:        remapped,
		}
	}

	m.logger.Info("No suitable alternative provider found",
		zap.Int("blueprint_id", blueprintID),
	)
	return nil
}

// remapVariants maps every store variant onto the candidate catalog by
// normalized option key. It aborts on the first variant without a match.
func remapVariants(variants []printify.Variant, snapshot *printify.CatalogSnapshot) ([]printify.VariantUpdate, bool) {
	index := make(map[OptionKey]printify.CatalogVariant, len(snapshot.Variants))
	for _, cv := range snapshot.Variants {
		key := NewOptionKey(cv.Options)
		if key.IsZero() {
			continue
		}
		index[key] = cv
	}

	remapped := make([]printify.VariantUpdate, 0, len(variants))
	for _, variant := range variants {
		key := NewOptionKey(variant.Options)
		if key.IsZero() {
			return nil, false
		}

		match, found := index[key]
		if !found {
			return nil, false
		}

		remapped = append(remapped, printify.VariantUpdate{
			ID:        match.ID,
			Price:     variant.Price,
			IsEnabled: variant.IsEnabled,
		})
	}

	return remapped, true
}

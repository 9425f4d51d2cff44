package reconcile_test

import (
	"context"
	"fmt"
	"testing"

	"inventory-sync/core/printify"
	"inventory-sync/core/printify/mocks"
	"inventory-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func storeVariants() []printify.Variant {
	return []printify.Variant{
		{ID: 1, Price: 1999, IsEnabled: true, Options: map[string]string{"size": "S", "color": "Black"}},
		{ID: 2, Price: 2199, IsEnabled: false, Options: map[string]string{"size": "L", "color": "Black"}},
	}
}

func catalog(blueprintID, providerID int, variants ...printify.CatalogVariant) *printify.CatalogSnapshot {
	return &printify.CatalogSnapshot{
		BlueprintID:     blueprintID,
		PrintProviderID: providerID,
		Variants:        variants,
	}
}

// TestFindAlternativeProvider_FullMatch covers the happy path: one
// alternative provider whose catalog fulfills every store variant.
func TestFindAlternativeProvider_FullMatch(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetBlueprint", mock.Anything, 5).Return(&printify.Blueprint{
		ID: 5,
		Providers: []printify.Provider{
			{ID: 10, Title: "Current"},
			{ID: 29, Title: "Alternative"},
		},
	}, nil)
	client.On("GetBlueprintVariants", mock.Anything, 5, 29).Return(catalog(5, 29,
		// Option insertion order intentionally differs from the store side.
		printify.CatalogVariant{ID: 901, Options: map[string]string{"color": "Black", "size": "S"}},
		printify.CatalogVariant{ID: 902, Options: map[string]string{"color": "Black", "size": "L"}},
	), nil)

	matcher := reconcile.NewMatcher(client, zap.NewNop())
	result := matcher.FindAlternativeProvider(context.Background(), 5, 10, storeVariants())

	assert.NotNil(t, result)
	assert.Equal(t, 29, result.PrintProviderID)
	assert.Equal(t, "Alternative", result.ProviderTitle)

	// All-or-nothing: the remapped list covers every store variant, with
	// price and enabled state carried over and only the id replaced.
	assert.Equal(t, []printify.VariantUpdate{
		{ID: 901, Price: 1999, IsEnabled: true},
		{ID: 902, Price: 2199, IsEnabled: false},
	}, result.Variants)
}

// TestFindAlternativeProvider_FirstFit verifies that of two fully capable
// candidates the one earlier in the blueprint's provider list wins.
func TestFindAlternativeProvider_FirstFit(t *testing.T) {
	variants := []printify.Variant{
		{ID: 1, Price: 1500, IsEnabled: true, Options: map[string]string{"size": "S"}},
	}

	client := new(mocks.Client)
	client.On("GetBlueprint", mock.Anything, 5).Return(&printify.Blueprint{
		ID: 5,
		Providers: []printify.Provider{
			{ID: 20, Title: "First"},
			{ID: 30, Title: "Second"},
		},
	}, nil)
	client.On("GetBlueprintVariants", mock.Anything, 5, 20).Return(catalog(5, 20,
		printify.CatalogVariant{ID: 201, Options: map[string]string{"size": "S"}},
	), nil)

	matcher := reconcile.NewMatcher(client, zap.NewNop())
	result := matcher.FindAlternativeProvider(context.Background(), 5, 10, variants)

	assert.NotNil(t, result)
	assert.Equal(t, 20, result.PrintProviderID)
	// First-fit short-circuits: the second candidate is never probed.
	client.AssertNotCalled(t, "GetBlueprintVariants", mock.Anything, 5, 30)
}

// TestFindAlternativeProvider_AllOrNothing verifies a candidate missing one
// variant is fully rejected and the search moves on.
func TestFindAlternativeProvider_AllOrNothing(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetBlueprint", mock.Anything, 5).Return(&printify.Blueprint{
		ID: 5,
		Providers: []printify.Provider{
			{ID: 20, Title: "Partial"},
			{ID: 30, Title: "Complete"},
		},
	}, nil)
	// First candidate only covers one of the two option sets.
	client.On("GetBlueprintVariants", mock.Anything, 5, 20).Return(catalog(5, 20,
		printify.CatalogVariant{ID: 201, Options: map[string]string{"size": "S", "color": "Black"}},
	), nil)
	client.On("GetBlueprintVariants", mock.Anything, 5, 30).Return(catalog(5, 30,
		printify.CatalogVariant{ID: 301, Options: map[string]string{"size": "S", "color": "Black"}},
		printify.CatalogVariant{ID: 302, Options: map[string]string{"size": "L", "color": "Black"}},
	), nil)

	matcher := reconcile.NewMatcher(client, zap.NewNop())
	result := matcher.FindAlternativeProvider(context.Background(), 5, 10, storeVariants())

	assert.NotNil(t, result)
	assert.Equal(t, 30, result.PrintProviderID)
	assert.Len(t, result.Variants, len(storeVariants()))
}

// TestFindAlternativeProvider_SkipsCurrentProvider verifies the current
// provider is never considered a candidate.
func TestFindAlternativeProvider_SkipsCurrentProvider(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetBlueprint", mock.Anything, 5).Return(&printify.Blueprint{
		ID:        5,
		Providers: []printify.Provider{{ID: 10, Title: "Current"}},
	}, nil)

	matcher := reconcile.NewMatcher(client, zap.NewNop())
	result := matcher.FindAlternativeProvider(context.Background(), 5, 10, storeVariants())

	assert.Nil(t, result)
	client.AssertNotCalled(t, "GetBlueprintVariants", mock.Anything, mock.Anything, mock.Anything)
}

// TestFindAlternativeProvider_BlueprintUnavailable covers both an absent
// blueprint and a fetch error; both yield a clean failure.
func TestFindAlternativeProvider_BlueprintUnavailable(t *testing.T) {
	tests := []struct {
		name string
		bp   *printify.Blueprint
		err  error
	}{
		{"absent", nil, nil},
		{"fetch error", nil, fmt.Errorf("upstream down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			client.On("GetBlueprint", mock.Anything, 5).Return(tt.bp, tt.err)

			matcher := reconcile.NewMatcher(client, zap.NewNop())
			result := matcher.FindAlternativeProvider(context.Background(), 5, 10, storeVariants())

			assert.Nil(t, result)
		})
	}
}

// TestFindAlternativeProvider_SkipsUnavailableCatalogs verifies candidates
// with missing, failing, or empty catalogs are skipped, not fatal.
func TestFindAlternativeProvider_SkipsUnavailableCatalogs(t *testing.T) {
	variants := []printify.Variant{
		{ID: 1, Price: 1500, IsEnabled: true, Options: map[string]string{"size": "S"}},
	}

	client := new(mocks.Client)
	client.On("GetBlueprint", mock.Anything, 5).Return(&printify.Blueprint{
		ID: 5,
		Providers: []printify.Provider{
			{ID: 20, Title: "Absent"},
			{ID: 30, Title: "Failing"},
			{ID: 40, Title: "Empty"},
			{ID: 50, Title: "Good"},
		},
	}, nil)
	client.On("GetBlueprintVariants", mock.Anything, 5, 20).Return(nil, nil)
	client.On("GetBlueprintVariants", mock.Anything, 5, 30).Return(nil, fmt.Errorf("timeout"))
	client.On("GetBlueprintVariants", mock.Anything, 5, 40).Return(catalog(5, 40), nil)
	client.On("GetBlueprintVariants", mock.Anything, 5, 50).Return(catalog(5, 50,
		printify.CatalogVariant{ID: 501, Options: map[string]string{"size": "S"}},
	), nil)

	matcher := reconcile.NewMatcher(client, zap.NewNop())
	result := matcher.FindAlternativeProvider(context.Background(), 5, 10, variants)

	assert.NotNil(t, result)
	assert.Equal(t, 50, result.PrintProviderID)
}

// TestFindAlternativeProvider_SeparatorValuesDoNotCrossMatch verifies a
// candidate variant whose single option value embeds the key separator
// characters is never mistaken for a two-option store variant.
func TestFindAlternativeProvider_SeparatorValuesDoNotCrossMatch(t *testing.T) {
	variants := []printify.Variant{
		{ID: 1, Price: 1500, IsEnabled: true, Options: map[string]string{"color": "Red", "size": "M"}},
	}

	client := new(mocks.Client)
	client.On("GetBlueprint", mock.Anything, 5).Return(&printify.Blueprint{
		ID:        5,
		Providers: []printify.Provider{{ID: 20, Title: "Candidate"}},
	}, nil)
	client.On("GetBlueprintVariants", mock.Anything, 5, 20).Return(catalog(5, 20,
		printify.CatalogVariant{ID: 201, Options: map[string]string{"color": "Red|size=M"}},
	), nil)

	matcher := reconcile.NewMatcher(client, zap.NewNop())
	result := matcher.FindAlternativeProvider(context.Background(), 5, 10, variants)

	assert.Nil(t, result)
}

// TestFindAlternativeProvider_SkipsInvalidProviderIDs verifies a blueprint
// entry with a non-positive provider id is never selected, even when its
// catalog would match.
func TestFindAlternativeProvider_SkipsInvalidProviderIDs(t *testing.T) {
	variants := []printify.Variant{
		{ID: 1, Price: 1500, IsEnabled: true, Options: map[string]string{"size": "S"}},
	}

	client := new(mocks.Client)
	client.On("GetBlueprint", mock.Anything, 5).Return(&printify.Blueprint{
		ID: 5,
		Providers: []printify.Provider{
			{ID: 0, Title: "Malformed"},
			{ID: 50, Title: "Good"},
		},
	}, nil)
	client.On("GetBlueprintVariants", mock.Anything, 5, 50).Return(catalog(5, 50,
		printify.CatalogVariant{ID: 501, Options: map[string]string{"size": "S"}},
	), nil)

	matcher := reconcile.NewMatcher(client, zap.NewNop())
	result := matcher.FindAlternativeProvider(context.Background(), 5, 10, variants)

	assert.NotNil(t, result)
	assert.Equal(t, 50, result.PrintProviderID)
	client.AssertNotCalled(t, "GetBlueprintVariants", mock.Anything, 5, 0)
}

// TestFindAlternativeProvider_EmptyOptionsNeverMatch verifies a store
// variant with an empty option map rejects every candidate, even one whose
// catalog also carries an empty-option entry.
func TestFindAlternativeProvider_EmptyOptionsNeverMatch(t *testing.T) {
	variants := []printify.Variant{
		{ID: 1, Price: 1500, IsEnabled: true, Options: map[string]string{}},
	}

	client := new(mocks.Client)
	client.On("GetBlueprint", mock.Anything, 5).Return(&printify.Blueprint{
		ID:        5,
		Providers: []printify.Provider{{ID: 20, Title: "Candidate"}},
	}, nil)
	client.On("GetBlueprintVariants", mock.Anything, 5, 20).Return(catalog(5, 20,
		printify.CatalogVariant{ID: 201, Options: map[string]string{}},
	), nil)

	matcher := reconcile.NewMatcher(client, zap.NewNop())
	result := matcher.FindAlternativeProvider(context.Background(), 5, 10, variants)

	assert.Nil(t, result)
}

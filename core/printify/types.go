package printify

// Variant is one purchasable option combination of a store product.
// The ID is scoped to the product's current print provider catalog.
type Variant struct {
	// ID is the provider-specific variant identifier.
	ID int `json:"id"`

	// Title is the display title, e.g. "Black / L".
	Title string `json:"title"`

	// Price is the retail price in cents.
	Price int `json:"price"`

	// IsEnabled indicates whether the variant is currently purchasable.
	IsEnabled bool `json:"is_enabled"`

	// Options maps option category to value, e.g. {"color": "Black", "size": "L"}.
	// This mapping is the variant's logical identity across providers.
	Options map[string]string `json:"options"`
}

// Product is a published store product with its current variants.
type Product struct {
	// ID is the store product identifier.
	ID string `json:"id"`

	// Title is the product display title.
	Title string `json:"title"`

	// BlueprintID identifies the catalog blueprint (product type).
	BlueprintID int `json:"blueprint_id"`

	// PrintProviderID is the currently assigned print provider.
	PrintProviderID int `json:"print_provider_id"`

	// Variants is the ordered list of store variants.
	Variants []Variant `json:"variants"`
}

// Provider describes a print provider able to fulfill a blueprint.
type Provider struct {
	// ID is the print provider identifier.
	ID int `json:"id"`

	// Title is the provider display name.
	Title string `json:"title"`
}

// Blueprint is a catalog entry describing a product type and the
// providers eligible to fulfill it, in catalog order.
type Blueprint struct {
	// ID is the blueprint identifier.
	ID int `json:"id"`

	// Providers is the ordered list of eligible print providers.
	Providers []Provider `json:"print_providers"`
}

// CatalogVariant is one orderable variant in a provider's live catalog.
type CatalogVariant struct {
	// ID is the provider-specific variant identifier.
	ID int `json:"id"`

	// Title is the catalog display title.
	Title string `json:"title"`

	// Options maps option category to value.
	Options map[string]string `json:"options"`
}

// CatalogSnapshot is the currently orderable variant set for one
// (blueprint, provider) pair. It is fetched fresh per check and never cached.
type CatalogSnapshot struct {
	// BlueprintID identifies the blueprint the snapshot belongs to.
	BlueprintID int `json:"blueprint_id"`

	// PrintProviderID identifies the provider the snapshot belongs to.
	PrintProviderID int `json:"print_provider_id"`

	// Variants is the orderable variant set.
	Variants []CatalogVariant `json:"variants"`
}

// AvailableIDs returns the set of orderable variant identifiers.
func (s *CatalogSnapshot) AvailableIDs() map[int]struct{} {
	ids := make(map[int]struct{}, len(s.Variants))
	for _, v := range s.Variants {
		ids[v.ID] = struct{}{}
	}
	return ids
}

// VariantUpdate is one variant entry of an outbound product update.
// Price and enabled state always carry over from the store side.
type VariantUpdate struct {
	// ID is the variant identifier, possibly from a new provider's catalog.
	ID int `json:"id"`

	// Price is the unchanged retail price in cents.
	Price int `json:"price"`

	// IsEnabled is the target enabled state.
	IsEnabled bool `json:"is_enabled"`
}

// UpdatePayload is the outbound product change. It is a tagged union:
// a plain enable/disable list, or a provider switch carrying a fully
// remapped variant list when PrintProviderID is set.
type UpdatePayload struct {
	// PrintProviderID is the new provider for a provider switch.
	// Zero means the current provider is kept.
	PrintProviderID int `json:"print_provider_id,omitempty"`

	// Variants is the complete variant list to apply.
	Variants []VariantUpdate `json:"variants"`
}

// IsProviderSwitch reports whether the payload switches the product
// to a different print provider.
func (p *UpdatePayload) IsProviderSwitch() bool {
	return p.PrintProviderID != 0
}

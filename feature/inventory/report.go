package inventory

import "time"

// Outcome classifies what a sync pass did with one product.
type Outcome string

const (
	// OutcomeInSync means no variant changed classification.
	OutcomeInSync Outcome = "in_sync"
	// OutcomeUpdated means a disable/restore variant list was applied.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSwitched means the product was migrated to another provider.
	OutcomeSwitched Outcome = "provider_switched"
	// OutcomeSkipped means the live catalog could not be fetched.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the outbound update was rejected.
	OutcomeFailed Outcome = "failed"
)

// ProductOutcome records the sync decision for a single product.
type ProductOutcome struct {
	// ProductID identifies the product.
	ProductID string `json:"product_id"`

	// Title is the product display title.
	Title string `json:"title"`

	// Outcome is what the pass did with the product.
	Outcome Outcome `json:"outcome"`

	// OutOfStock is the number of variants newly out of stock.
	OutOfStock int `json:"out_of_stock,omitempty"`

	// Restocked is the number of variants back in stock.
	Restocked int `json:"restocked,omitempty"`

	// NewProviderID is set when the product switched provider.
	NewProviderID int `json:"new_provider_id,omitempty"`

	// Error describes the failure for failed or skipped products.
	Error string `json:"error,omitempty"`
}

// RunSummary provides aggregate counts for a sync pass.
type RunSummary struct {
	// Checked is the number of products processed.
	Checked int `json:"checked"`

	// InSync counts products needing no change.
	InSync int `json:"in_sync"`

	// Updated counts products with an applied disable/restore list.
	Updated int `json:"updated"`

	// Switched counts products migrated to another provider.
	Switched int `json:"switched"`

	// Skipped counts products whose live catalog was unavailable.
	Skipped int `json:"skipped"`

	// Failed counts products whose update was rejected.
	Failed int `json:"failed"`
}

// RunReport is the full record of one sync pass.
type RunReport struct {
	// RunID uniquely identifies the pass.
	RunID string `json:"run_id"`

	// DryRun indicates no updates were dispatched.
	DryRun bool `json:"dry_run"`

	// StartedAt is when the pass began.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the pass completed.
	FinishedAt time.Time `json:"finished_at"`

	// Products lists the per-product outcomes.
	Products []ProductOutcome `json:"products"`

	// Summary provides aggregate counts.
	Summary RunSummary `json:"summary"`
}

package cmd

import (
	"context"
	"fmt"

	"inventory-sync/core/config"
	"inventory-sync/core/logger"
	"inventory-sync/core/printify"
	"inventory-sync/core/reports"
	"inventory-sync/core/storage"
	"inventory-sync/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	dryRunSync   bool
	intervalSync int
)

// syncCmd runs a single inventory reconciliation pass.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one inventory reconciliation pass",
	Long: `Reconcile every published product against its provider's live catalog.

Out-of-stock variants are disabled, restocked variants re-enabled, and a
product whose variant went out of stock is first offered to an alternative
provider able to fulfill all of its variants.

Examples:
  # Run a pass
  inventory-sync sync

  # Plan only, dispatch nothing
  inventory-sync sync --dry-run

  # Slow down to one product every 3 seconds
  inventory-sync sync --interval 3`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Plan changes without dispatching updates")
	syncCmd.Flags().IntVar(&intervalSync, "interval", -1, "Seconds to pause between products (overrides SYNC_INTERVAL_SECONDS)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if intervalSync >= 0 {
		cfg.Sync.IntervalSeconds = intervalSync
	}

	// Connect to the upstream API
	client, err := printify.NewClient(cfg.Printify)
	if err != nil {
		return fmt.Errorf("failed to create printify client: %w", err)
	}

	svc := inventory.NewService(client, buildArchiver(cfg, l), cfg.Sync, l)

	report, err := svc.Run(ctx, dryRunSync)
	if err != nil {
		return fmt.Errorf("sync pass failed: %w", err)
	}

	printRunReport(l, report)
	return nil
}

// buildArchiver wires the optional report archive. A missing bucket or a
// failing storage connection disables archiving instead of blocking the pass.
func buildArchiver(cfg *config.Config, l *zap.Logger) *reports.Archiver {
	if cfg.Storage.Bucket == "" {
		return nil
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		l.Warn("Report storage unavailable, archiving disabled", zap.Error(err))
		return nil
	}
	return reports.NewArchiver(store, cfg.Storage.Bucket, cfg.Sync.ReportPrefix, l)
}

// printRunReport prints a formatted run summary using the logger.
func printRunReport(l *zap.Logger, report *inventory.RunReport) {
	s := report.Summary

	l.Info("Sync pass report",
		zap.String("run_id", report.RunID),
		zap.Bool("dry_run", report.DryRun),
		zap.Int("checked", s.Checked),
		zap.Int("in_sync", s.InSync),
		zap.Int("updated", s.Updated),
		zap.Int("switched", s.Switched),
		zap.Int("skipped", s.Skipped),
		zap.Int("failed", s.Failed),
	)

	for _, p := range report.Products {
		if p.Outcome == inventory.OutcomeInSync {
			continue
		}
		l.Info("Product outcome",
			zap.String("product_id", p.ProductID),
			zap.String("product", p.Title),
			zap.String("outcome", string(p.Outcome)),
			zap.Int("out_of_stock", p.OutOfStock),
			zap.Int("restocked", p.Restocked),
		)
	}
}

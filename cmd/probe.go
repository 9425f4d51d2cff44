package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"inventory-sync/core/config"
	"inventory-sync/core/logger"
	"inventory-sync/core/printify"
	"inventory-sync/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// probeCmd reports the sync decision for one product without applying it.
var probeCmd = &cobra.Command{
	Use:   "probe <product-id>",
	Short: "Show what a sync pass would do for one product",
	Long: `Reconcile a single product against its provider's live catalog and print
the resulting decision (classification, failover match, payload) without
dispatching any update.

Examples:
  inventory-sync probe 64f1c2ab9d8e7f0001a2b3c4`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	RootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
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

	// Connect to the upstream API
	client, err := printify.NewClient(cfg.Printify)
	if err != nil {
		return fmt.Errorf("failed to create printify client: %w", err)
	}

	svc := inventory.NewService(client, nil, cfg.Sync, l)

	result, err := svc.Probe(ctx, args[0])
	if err != nil {
		return err
	}

	l.Info("Probe result",
		zap.String("product_id", result.ProductID),
		zap.String("product", result.Title),
		zap.Bool("requires_update", result.Plan.RequiresUpdate),
		zap.Bool("needs_failover", result.Plan.NeedsFailover),
	)

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode probe result: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

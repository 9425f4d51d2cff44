package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"inventory-sync/core/logger"
	"inventory-sync/core/printify"
	"inventory-sync/core/reconcile"
	"inventory-sync/core/reports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service runs inventory sync passes over the shop's products.
type Service struct {
	client   printify.Client
	matcher  reconcile.Matcher
	archiver *reports.Archiver
	pacer    *Pacer
	logger   *zap.Logger

	mu         sync.Mutex
	running    bool
	lastReport *RunReport
}

// ErrRunInProgress is returned when a sync pass is already running.
var ErrRunInProgress = fmt.Errorf("a sync pass is already in progress")

// NewService creates a new inventory sync service.
func NewService(client printify.Client, archiver *reports.Archiver, cfg Config, l *zap.Logger) *Service {
	return &Service{
		client:   client,
		matcher:  reconcile.NewMatcher(client, l),
		archiver: archiver,
		pacer:    NewPacer(time.Duration(cfg.IntervalSeconds) * time.Second),
		logger:   l,
	}
}

// Run executes one sync pass: list products, reconcile each against its
// provider's live catalog, and dispatch the resulting updates. Products
// are processed sequentially with a pause between them; per-product
// failures never abort the pass. In dry-run mode no update is dispatched.
func (s *Service) Run(ctx context.Context, dryRun bool) (*RunReport, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, ErrRunInProgress
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	report := &RunReport{
		RunID:     uuid.NewString(),
		DryRun:    dryRun,
		StartedAt: time.Now().UTC(),
	}
	l := logger.WithRunID(s.logger, report.RunID)
	l.Info("Starting inventory sync pass", zap.Bool("dry_run", dryRun))

	products, err := s.client.GetProducts(ctx)
	if err != nil {
		// Total inability to list products is the only early stop,
		// and it ends the run cleanly with an empty report.
		l.Warn("Could not retrieve store products", zap.Error(err))
		return s.finalize(ctx, l, report), nil
	}
	l.Info("Retrieved store products", zap.Int("count", len(products)))

	for i, product := range products {
		if i > 0 {
			s.pacer.Pause()
		}
		outcome := s.syncProduct(ctx, l, product, dryRun)
		report.Products = append(report.Products, outcome)
	}

	return s.finalize(ctx, l, report), nil
}

// LastReport returns the report of the most recent pass, or nil if no
// pass has run yet.
func (s *Service) LastReport() *RunReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReport
}

// syncProduct reconciles a single product and dispatches its update.
func (s *Service) syncProduct(ctx context.Context, l *zap.Logger, product printify.Product, dryRun bool) ProductOutcome {
	outcome := ProductOutcome{ProductID: product.ID, Title: product.Title}
	pl := l.With(zap.String("product_id", product.ID), zap.String("product", product.Title))

	snapshot, err := s.client.GetBlueprintVariants(ctx, product.BlueprintID, product.PrintProviderID)
	if err != nil || snapshot == nil {
		pl.Warn("Could not fetch live catalog for current provider",
			zap.Int("provider_id", product.PrintProviderID),
			zap.Error(err),
		)
		outcome.Outcome = OutcomeSkipped
		outcome.Error = "live catalog unavailable"
		return outcome
	}

	payload, plan := reconcile.Reconcile(ctx, product, snapshot, s.matcher)
	outcome.OutOfStock = plan.CountKind(reconcile.ChangeOutOfStock)
	outcome.Restocked = plan.CountKind(reconcile.ChangeRestocked)

	if payload == nil {
		pl.Debug("Stock levels already in sync")
		outcome.Outcome = OutcomeInSync
		return outcome
	}

	if payload.IsProviderSwitch() {
		outcome.Outcome = OutcomeSwitched
		outcome.NewProviderID = payload.PrintProviderID
		pl.Info("Switching product to alternative provider",
			zap.Int("new_provider_id", payload.PrintProviderID),
		)
	} else {
		outcome.Outcome = OutcomeUpdated
		pl.Info("Applying stock state changes",
			zap.Int("out_of_stock", outcome.OutOfStock),
			zap.Int("restocked", outcome.Restocked),
		)
	}

	if dryRun {
		pl.Info("Dry-run mode: update not dispatched")
		return outcome
	}

	if err := s.client.UpdateProduct(ctx, product.ID, *payload); err != nil {
		pl.Error("Product update rejected", zap.Error(err))
		outcome.Outcome = OutcomeFailed
		outcome.Error = err.Error()
	}
	return outcome
}

// finalize stamps the report, records it as the latest, and archives it.
func (s *Service) finalize(ctx context.Context, l *zap.Logger, report *RunReport) *RunReport {
	report.FinishedAt = time.Now().UTC()
	report.Summary = summarize(report.Products)

	l.Info("Inventory sync pass finished",
		zap.Int("checked", report.Summary.Checked),
		zap.Int("in_sync", report.Summary.InSync),
		zap.Int("updated", report.Summary.Updated),
		zap.Int("switched", report.Summary.Switched),
		zap.Int("skipped", report.Summary.Skipped),
		zap.Int("failed", report.Summary.Failed),
	)

	s.mu.Lock()
	s.lastReport = report
	s.mu.Unlock()

	if s.archiver.Enabled() {
		if _, err := s.archiver.Archive(ctx, report.RunID, report.StartedAt, report); err != nil {
			l.Warn("Failed to archive run report", zap.Error(err))
		}
	}
	return report
}

// summarize aggregates per-product outcomes into run counters.
func summarize(products []ProductOutcome) RunSummary {
	summary := RunSummary{Checked: len(products)}
	for _, p := range products {
		switch p.Outcome {
		case OutcomeInSync:
			summary.InSync++
		case OutcomeUpdated:
			summary.Updated++
		case OutcomeSwitched:
			summary.Switched++
		case OutcomeSkipped:
			summary.Skipped++
		case OutcomeFailed:
			summary.Failed++
		}
	}
	return summary
}

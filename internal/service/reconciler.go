package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/ledger"
)

const reconcileBatch = 100

type paymentConfirmer interface {
	ConfirmPayment(ctx context.Context, c Confirmation) (ConfirmationResult, error)
}

// Reconciler repairs what request handling leaves behind: ledger records that
// could not be verified when they were written and payments the provider never
// confirmed.
type Reconciler struct {
	payments      PaymentRepository
	certs         CertificateRepository
	confirmer     paymentConfirmer
	ledger        ledger.Gateway
	pendingExpiry time.Duration
	cron          *cron.Cron
	now           func() time.Time
}

type ReconcileReport struct {
	Verified int
	Expired  int
}

func NewReconciler(
	payments PaymentRepository,
	certs CertificateRepository,
	confirmer paymentConfirmer,
	gateway ledger.Gateway,
	pendingExpiry time.Duration,
) *Reconciler {
	return &Reconciler{
		payments:      payments,
		certs:         certs,
		confirmer:     confirmer,
		ledger:        gateway,
		pendingExpiry: pendingExpiry,
		now:           time.Now,
	}
}

// Start schedules RunOnce with a standard five field cron spec. An empty spec
// leaves the reconciler off.
func (r *Reconciler) Start(spec, location string) error {
	if spec == "" {
		zap.L().Info("reconciler disabled")
		return nil
	}

	loc, err := time.LoadLocation(location)
	if err != nil {
		return fmt.Errorf("time.LoadLocation -> %w", err)
	}

	c := cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err = c.AddFunc(spec, func() {
		report := r.RunOnce(context.Background())
		zap.L().Info("reconciliation done",
			zap.Int("verified", report.Verified),
			zap.Int("expired", report.Expired),
		)
	}); err != nil {
		return fmt.Errorf("c.AddFunc -> %w", err)
	}

	c.Start()
	r.cron = c
	zap.L().Info("reconciler started", zap.String("schedule", spec), zap.String("location", loc.String()))

	return nil
}

// Stop unschedules the job and waits for a running pass to finish or ctx to end.
func (r *Reconciler) Stop(ctx context.Context) {
	if r.cron == nil {
		return
	}

	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (r *Reconciler) RunOnce(ctx context.Context) ReconcileReport {
	return ReconcileReport{
		Verified: r.verifyRecords(ctx),
		Expired:  r.expirePending(ctx),
	}
}

func (r *Reconciler) verifyRecords(ctx context.Context) int {
	records, err := r.certs.ListUnverifiedRecords(ctx, reconcileBatch)
	if err != nil {
		zap.L().Warn("listing unverified records", zap.Error(err))
		return 0
	}

	verified := 0
	for _, record := range records {
		ref := record.TransactionHash
		if record.TokenID != "" {
			ref = record.TokenID
		}

		ok, err := r.ledger.Verify(ctx, ref)
		if err != nil {
			if errors.Is(err, ErrLedgerUnavailable) {
				zap.L().Warn("ledger unavailable, verification postponed", zap.Error(err))
				break
			}
			zap.L().Warn("verifying record", zap.Uint("record_id", record.ID), zap.Error(err))
			continue
		}
		if !ok {
			continue
		}

		if err = r.certs.MarkRecordVerified(ctx, record.ID); err != nil {
			zap.L().Warn("marking record verified", zap.Uint("record_id", record.ID), zap.Error(err))
			continue
		}
		verified++
	}

	return verified
}

func (r *Reconciler) expirePending(ctx context.Context) int {
	if r.pendingExpiry <= 0 {
		return 0
	}

	stale, err := r.payments.ListPendingBefore(ctx, r.now().UTC().Add(-r.pendingExpiry), reconcileBatch)
	if err != nil {
		zap.L().Warn("listing stale payments", zap.Error(err))
		return 0
	}

	expired := 0
	for _, tx := range stale {
		result, err := r.confirmer.ConfirmPayment(ctx, Confirmation{
			TransactionID: tx.TransactionID,
			Status:        domain.PaymentFailed,
		})
		if err != nil {
			// A provider confirmation may have landed meanwhile.
			if !errors.Is(err, ErrConflict) {
				zap.L().Warn("expiring payment", zap.String("transaction_id", tx.TransactionID), zap.Error(err))
			}
			continue
		}
		if result.Changed {
			expired++
		}
	}

	return expired
}

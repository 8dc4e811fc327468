package service

import (
	"context"
	"time"

	"github.com/profutur/profutur-api/internal/ledger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	db     Pinger
	ledger ledger.Gateway
	now    func() time.Time
}

func NewHealthService(db Pinger, gateway ledger.Gateway) *HealthService {
	return &HealthService{
		db:     db,
		ledger: gateway,
		now:    time.Now,
	}
}

type HealthReport struct {
	Status    string        `json:"status"`
	Database  string        `json:"database"`
	Ledger    ledger.Status `json:"ledger"`
	Timestamp time.Time     `json:"timestamp"`
}

// Check reports the database connectivity. The service is healthy as long as
// the database answers; the ledger status is informational.
func (s *HealthService) Check(ctx context.Context) HealthReport {
	report := HealthReport{
		Status:    "ok",
		Database:  "connected",
		Ledger:    s.ledger.Status(),
		Timestamp: s.now(),
	}

	if err := s.db.Ping(ctx); err != nil {
		report.Status = "degraded"
		report.Database = "disconnected"
	}

	return report
}

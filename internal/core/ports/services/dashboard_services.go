package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// DashboardSvc assembles the finance dashboard from the three source modules.
type DashboardSvc interface {
	// BuildDashboard fetches finance, sales and inventory data, merges the
	// sources into the unified transaction list, computes summary stats and
	// reconciles account balances. A source fetch failure degrades to a
	// warning; an accounts fetch failure fails the build.
	BuildDashboard(ctx context.Context) (*domain.Dashboard, error)
}

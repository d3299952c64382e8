// Package observability holds the Prometheus collectors shared across the
// application. Collectors are registered on the default registry via
// promauto and exposed through /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "erp_http_requests_total",
	Help: "Total HTTP requests handled, by method, route and status code.",
}, []string{"method", "route", "status"})

// HTTPRequestDuration observes request latency by route.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "erp_http_request_duration_seconds",
	Help:    "HTTP request latency in seconds, by route.",
	Buckets: prometheus.DefBuckets,
}, []string{"route"})

// DashboardRefreshTotal counts full dashboard aggregation runs.
var DashboardRefreshTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "erp_dashboard_refresh_total",
	Help: "Total finance dashboard aggregation runs.",
})

// DashboardSourceFailures counts per-source fetch failures during
// dashboard aggregation.
var DashboardSourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "erp_dashboard_source_failures_total",
	Help: "Dashboard source fetch failures, by source.",
}, []string{"source"})

// UnmatchedTransactionsTotal counts completed transactions skipped during
// balance reconciliation because they matched no account.
var UnmatchedTransactionsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "erp_reconcile_unmatched_transactions_total",
	Help: "Completed transactions that matched no account during reconciliation.",
})

// BudgetAlertNotificationsTotal counts created budget alert notifications
// by severity.
var BudgetAlertNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "erp_budget_alert_notifications_total",
	Help: "Budget alert notifications created, by severity.",
}, []string{"severity"})

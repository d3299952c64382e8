package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, name, period_type, start_date, end_date, created_at, created_by, last_updated_at, last_updated_by`

func scanBudget(row pgx.Row) (domain.Budget, error) {
	var b domain.Budget
	err := row.Scan(
		&b.BudgetID,
		&b.Name,
		&b.PeriodType,
		&b.StartDate,
		&b.EndDate,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.LastUpdatedAt,
		&b.LastUpdatedBy,
	)
	return b, err
}

func insertBudgetCategories(ctx context.Context, tx pgx.Tx, budgetID string, categories []domain.BudgetCategory) error {
	query := `
		INSERT INTO budget_categories (budget_id, category_name, budgeted, kind)
		VALUES ($1, $2, $3, $4);
	`
	for _, cat := range categories {
		if _, err := tx.Exec(ctx, query, budgetID, cat.CategoryName, cat.Budgeted, cat.Kind); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: category %q appears twice in budget", apperrors.ErrDuplicate, cat.CategoryName)
			}
			return fmt.Errorf("failed to save budget category %q: %w", cat.CategoryName, err)
		}
	}
	return nil
}

// SaveBudget inserts a budget and its category lines atomically.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		INSERT INTO budgets (budget_id, name, period_type, start_date, end_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		budget.BudgetID,
		budget.Name,
		budget.PeriodType,
		budget.StartDate,
		budget.EndDate,
		budget.CreatedAt,
		budget.CreatedBy,
		budget.LastUpdatedAt,
		budget.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget named %q already exists", apperrors.ErrDuplicate, budget.Name)
		}
		return fmt.Errorf("failed to save budget %s: %w", budget.BudgetID, err)
	}

	if err := insertBudgetCategories(ctx, tx, budget.BudgetID, budget.Categories); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindBudgetByID retrieves a budget with its category lines.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`

	budget, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
		}
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}

	budget.Categories, err = r.loadCategories(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *PgxBudgetRepository) loadCategories(ctx context.Context, budgetID string) ([]domain.BudgetCategory, error) {
	query := `
		SELECT category_name, budgeted, kind
		FROM budget_categories
		WHERE budget_id = $1
		ORDER BY category_name;
	`
	rows, err := r.Pool.Query(ctx, query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories of budget %s: %w", budgetID, err)
	}
	defer rows.Close()

	var categories []domain.BudgetCategory
	for rows.Next() {
		var cat domain.BudgetCategory
		if err := rows.Scan(&cat.CategoryName, &cat.Budgeted, &cat.Kind); err != nil {
			return nil, fmt.Errorf("failed to scan budget category row: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget category rows: %w", err)
	}
	return categories, nil
}

// ListBudgets retrieves all budgets, newest window first. Category lines
// are loaded in a second query and stitched in.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets ORDER BY start_date DESC, name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}
	rows.Close()

	for i := range budgets {
		budgets[i].Categories, err = r.loadCategories(ctx, budgets[i].BudgetID)
		if err != nil {
			return nil, err
		}
	}
	return budgets, nil
}

// UpdateBudget rewrites a budget's details and replaces its category lines.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		UPDATE budgets
		SET name = $2, period_type = $3, start_date = $4, end_date = $5, last_updated_at = $6, last_updated_by = $7
		WHERE budget_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		budget.BudgetID,
		budget.Name,
		budget.PeriodType,
		budget.StartDate,
		budget.EndDate,
		budget.LastUpdatedAt,
		budget.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget named %q already exists", apperrors.ErrDuplicate, budget.Name)
		}
		return fmt.Errorf("failed to update budget %s: %w", budget.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budget.BudgetID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM budget_categories WHERE budget_id = $1;`, budget.BudgetID); err != nil {
		return fmt.Errorf("failed to replace categories of budget %s: %w", budget.BudgetID, err)
	}
	if err := insertBudgetCategories(ctx, tx, budget.BudgetID, budget.Categories); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteBudget removes a budget. Category lines and notifications cascade.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
	}
	return nil
}

// SaveAlertNotification persists a triggered budget alert.
func (r *PgxBudgetRepository) SaveAlertNotification(ctx context.Context, notification domain.AlertNotification) error {
	query := `
		INSERT INTO budget_alert_notifications (notification_id, budget_id, category_name, percent_used, severity, message, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		notification.NotificationID,
		notification.BudgetID,
		notification.CategoryName,
		notification.PercentUsed,
		notification.Severity,
		notification.Message,
		notification.CreatedAt,
		notification.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation
			return fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, notification.BudgetID)
		}
		return fmt.Errorf("failed to save alert notification %s: %w", notification.NotificationID, err)
	}
	return nil
}

// ListAlertNotifications retrieves a budget's persisted alerts, newest first.
func (r *PgxBudgetRepository) ListAlertNotifications(ctx context.Context, budgetID string) ([]domain.AlertNotification, error) {
	query := `
		SELECT notification_id, budget_id, category_name, percent_used, severity, message, created_at, created_by
		FROM budget_alert_notifications
		WHERE budget_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alert notifications for budget %s: %w", budgetID, err)
	}
	defer rows.Close()

	var notifications []domain.AlertNotification
	for rows.Next() {
		var n domain.AlertNotification
		var categoryName sql.NullString
		if err := rows.Scan(&n.NotificationID, &n.BudgetID, &categoryName, &n.PercentUsed, &n.Severity, &n.Message, &n.CreatedAt, &n.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan alert notification row: %w", err)
		}
		n.CategoryName = categoryName.String
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert notification rows: %w", err)
	}
	return notifications, nil
}

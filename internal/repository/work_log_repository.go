package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

// ============================================
// Work Log Models
// ============================================

// WorkLog is a dated, hour-denominated record of work performed by one
// user against one project and one category.
type WorkLog struct {
	ID         string
	UserID     string
	LogDate    time.Time
	Hours      decimal.Decimal
	ProjectID  string
	CategoryID string
	Details    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WorkLogView denormalizes user/project/category names for display and
// export. The repository owns the join.
type WorkLogView struct {
	WorkLog
	UserName     string
	UserEmail    string
	ProjectName  string
	CategoryName string
}

// Stat is one aggregated dashboard row
type Stat struct {
	Key        string
	TotalHours decimal.Decimal
	Count      int
}

// ============================================
// Work Log Repository Interface
// ============================================

// WorkLogRepository executes a Filter against storage. List, ListAll and
// Aggregate share one WHERE-clause builder, so the interactive listing,
// the CSV export and the dashboard see identical row sets for identical
// filters.
type WorkLogRepository interface {
	List(ctx context.Context, f *query.Filter) ([]*WorkLogView, int, error)
	ListAll(ctx context.Context, f *query.Filter) ([]*WorkLogView, error)
	Aggregate(ctx context.Context, f *query.Filter, groupBy string) ([]*Stat, error)

	Create(ctx context.Context, entry *WorkLog) error
	FindByID(ctx context.Context, id string) (*WorkLog, error)
	Update(ctx context.Context, entry *WorkLog) error
	Delete(ctx context.Context, id string) error
}

// ============================================
// PostgreSQL Work Log Repository Implementation
// ============================================

type pgWorkLogRepository struct {
	pool *pgxpool.Pool
}

// NewPgWorkLogRepository creates a new PostgreSQL work log repository
func NewPgWorkLogRepository(pool *pgxpool.Pool) WorkLogRepository {
	return &pgWorkLogRepository{pool: pool}
}

// workLogWhere renders the filter into a WHERE clause. Every read path
// goes through this one function.
func workLogWhere(f *query.Filter) (string, []any) {
	var conds []string
	var args []any
	arg := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if f.UserIDs != nil {
		conds = append(conds, fmt.Sprintf("w.user_id = ANY($%d::uuid[])", arg(f.UserIDs)))
	}
	if f.StartDate != nil {
		conds = append(conds, fmt.Sprintf("w.log_date >= $%d", arg(*f.StartDate)))
	}
	if f.EndDate != nil {
		conds = append(conds, fmt.Sprintf("w.log_date <= $%d", arg(*f.EndDate)))
	}
	if len(f.ProjectIDs) > 0 {
		conds = append(conds, fmt.Sprintf("w.project_id = ANY($%d::uuid[])", arg(f.ProjectIDs)))
	}
	if len(f.CategoryIDs) > 0 {
		conds = append(conds, fmt.Sprintf("w.category_id = ANY($%d::uuid[])", arg(f.CategoryIDs)))
	}
	if f.SearchText != "" {
		conds = append(conds, fmt.Sprintf("w.details ILIKE '%%' || $%d || '%%'", arg(f.SearchText)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

const workLogSelect = `
	SELECT w.id, w.user_id, w.log_date, w.hours::text, w.project_id, w.category_id,
	       w.details, w.created_at, w.updated_at,
	       u.name, u.email, p.name, c.name
	FROM work_logs w
	INNER JOIN users u ON u.id = w.user_id
	INNER JOIN projects p ON p.id = w.project_id
	INNER JOIN categories c ON c.id = w.category_id
`

func (r *pgWorkLogRepository) List(ctx context.Context, f *query.Filter) ([]*WorkLogView, int, error) {
	where, args := workLogWhere(f)

	countQuery := `SELECT COUNT(*) FROM work_logs w` + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery := workLogSelect + where +
		fmt.Sprintf(" ORDER BY w.log_date DESC, w.created_at DESC LIMIT $%d OFFSET $%d",
			len(args)+1, len(args)+2)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	views, err := scanWorkLogViews(rows)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (r *pgWorkLogRepository) ListAll(ctx context.Context, f *query.Filter) ([]*WorkLogView, error) {
	where, args := workLogWhere(f)
	listQuery := workLogSelect + where + " ORDER BY w.log_date ASC, w.created_at ASC"

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkLogViews(rows)
}

func (r *pgWorkLogRepository) Aggregate(ctx context.Context, f *query.Filter, groupBy string) ([]*Stat, error) {
	where, args := workLogWhere(f)

	var aggQuery string
	switch groupBy {
	case types.GroupByDay:
		aggQuery = `
			SELECT to_char(w.log_date, 'YYYY-MM-DD'), COALESCE(SUM(w.hours), 0)::text, COUNT(*)
			FROM work_logs w` + where + `
			GROUP BY w.log_date
			ORDER BY w.log_date
		`
	default: // types.GroupByProject
		aggQuery = `
			SELECT p.name, COALESCE(SUM(w.hours), 0)::text, COUNT(*)
			FROM work_logs w
			INNER JOIN projects p ON p.id = w.project_id` + where + `
			GROUP BY p.name
			ORDER BY SUM(w.hours) DESC
		`
	}

	rows, err := r.pool.Query(ctx, aggQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*Stat
	for rows.Next() {
		stat := &Stat{}
		var hours string
		if err := rows.Scan(&stat.Key, &hours, &stat.Count); err != nil {
			return nil, err
		}
		stat.TotalHours, err = decimal.NewFromString(hours)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

func (r *pgWorkLogRepository) Create(ctx context.Context, entry *WorkLog) error {
	query := `
		INSERT INTO work_logs (user_id, log_date, hours, project_id, category_id, details)
		VALUES ($1, $2, $3::numeric, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		entry.UserID, entry.LogDate, entry.Hours.String(),
		entry.ProjectID, entry.CategoryID, entry.Details,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

func (r *pgWorkLogRepository) FindByID(ctx context.Context, id string) (*WorkLog, error) {
	query := `
		SELECT id, user_id, log_date, hours::text, project_id, category_id, details, created_at, updated_at
		FROM work_logs WHERE id = $1
	`
	entry := &WorkLog{}
	var hours string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.UserID, &entry.LogDate, &hours,
		&entry.ProjectID, &entry.CategoryID, &entry.Details,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	entry.Hours, err = decimal.NewFromString(hours)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *pgWorkLogRepository) Update(ctx context.Context, entry *WorkLog) error {
	query := `
		UPDATE work_logs SET user_id = $2, log_date = $3, hours = $4::numeric,
			project_id = $5, category_id = $6, details = $7, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.UserID, entry.LogDate, entry.Hours.String(),
		entry.ProjectID, entry.CategoryID, entry.Details,
	)
	return err
}

func (r *pgWorkLogRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM work_logs WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func scanWorkLogViews(rows pgx.Rows) ([]*WorkLogView, error) {
	var views []*WorkLogView
	for rows.Next() {
		view := &WorkLogView{}
		var hours string
		if err := rows.Scan(
			&view.ID, &view.UserID, &view.LogDate, &hours,
			&view.ProjectID, &view.CategoryID, &view.Details,
			&view.CreatedAt, &view.UpdatedAt,
			&view.UserName, &view.UserEmail, &view.ProjectName, &view.CategoryName,
		); err != nil {
			return nil, err
		}
		var err error
		view.Hours, err = decimal.NewFromString(hours)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

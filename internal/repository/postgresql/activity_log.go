package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pim-intern/attendance-backend/internal/domain/activitylog"
	"github.com/pim-intern/attendance-backend/internal/pkg/database"
)

type activityLogRepository struct {
	db *database.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *database.DB) activitylog.Repository {
	return &activityLogRepository{db: db}
}

// Create implements activitylog.Repository.
func (r *activityLogRepository) Create(ctx context.Context, log activitylog.ActivityLog) error {
	q := GetQuerier(ctx, r.db)

	if log.ID == "" {
		log.ID = uuid.New().String()
	}

	query := `
		INSERT INTO activity_logs (id, user_id, action, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, log.ID, log.UserID, string(log.Action), log.Description, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}

	return nil
}

func actionStrings(actions []activitylog.Action) []string {
	result := make([]string, 0, len(actions))
	for _, a := range actions {
		result = append(result, string(a))
	}
	return result
}

// List implements activitylog.Repository.
func (r *activityLogRepository) List(ctx context.Context, filter activitylog.ListFilter) ([]activitylog.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	conditions := []string{}
	args := []interface{}{}
	argIdx := 1

	if filter.Role != nil && *filter.Role != "" {
		conditions = append(conditions, fmt.Sprintf("u.role = $%d", argIdx))
		args = append(args, *filter.Role)
		argIdx++
	}

	if actions := filter.Actions(); len(actions) > 0 {
		conditions = append(conditions, fmt.Sprintf("l.action = ANY($%d)", argIdx))
		args = append(args, actionStrings(actions))
		argIdx++
	}

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(l.description ILIKE $%d OR l.action ILIKE $%d OR u.name ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT l.id, l.user_id, l.action, l.description, l.created_at, u.name, u.role
		FROM activity_logs l
		LEFT JOIN users u ON u.id = l.user_id
		%s
		ORDER BY l.created_at DESC
		LIMIT $%d
	`, where, argIdx)
	args = append(args, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	logs := []activitylog.ActivityLog{}
	for rows.Next() {
		var l activitylog.ActivityLog
		var action string
		if err := rows.Scan(&l.ID, &l.UserID, &action, &l.Description, &l.CreatedAt, &l.UserName, &l.UserRole); err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		l.Action = activitylog.Action(action)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity logs: %w", err)
	}

	return logs, nil
}

// Count implements activitylog.Repository.
func (r *activityLogRepository) Count(ctx context.Context, filter activitylog.CountFilter) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT COUNT(*) FROM activity_logs WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if len(filter.Actions) > 0 {
		query += fmt.Sprintf(" AND action = ANY($%d)", argIdx)
		args = append(args, actionStrings(filter.Actions))
		argIdx++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", argIdx)
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.Until != nil {
		query += fmt.Sprintf(" AND created_at < $%d", argIdx)
		args = append(args, *filter.Until)
	}

	var total int64
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count activity logs: %w", err)
	}
	return total, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pim-intern/attendance-backend/internal/domain/attendance"
	"github.com/pim-intern/attendance-backend/internal/domain/user"
	"github.com/pim-intern/attendance-backend/internal/pkg/database"
)

const attendanceUniqueConstraint = "attendances_user_id_date_key"

const attendanceColumns = `
	id, user_id, date, check_in, check_out, location,
	latitude, longitude, distance, duration, status,
	created_at, updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var status string
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Location,
		&att.Latitude, &att.Longitude, &att.Distance, &att.Duration, &status,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	att.Status = attendance.Status(status)
	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		  AND date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No attendance for that day
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// GetOpenByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetOpenByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		  AND date = $2
		  AND check_in IS NOT NULL
		  AND check_out IS NULL
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open attendance: %w", err)
	}

	return &att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if newAttendance.ID == "" {
		newAttendance.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendances (
			id, user_id, date, check_in, check_out, location,
			latitude, longitude, distance, duration, status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.UserID,
		newAttendance.Date,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.Location,
		newAttendance.Latitude,
		newAttendance.Longitude,
		newAttendance.Distance,
		newAttendance.Duration,
		string(newAttendance.Status),
		newAttendance.CreatedAt,
		newAttendance.UpdatedAt,
	))
	if err != nil {
		switch {
		case database.IsUniqueViolation(err, attendanceUniqueConstraint):
			return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", attendance.ErrRecordConflict)
		case database.IsForeignKeyViolation(err):
			return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", user.ErrUserNotFound)
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// RecordCheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) RecordCheckIn(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	// check_in IS NULL guards against a concurrent check-in on the same row
	query := `
		UPDATE attendances SET
			check_in = $2,
			location = $3,
			latitude = $4,
			longitude = $5,
			distance = $6,
			status = $7,
			updated_at = $8
		WHERE id = $1
		  AND check_in IS NULL
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query,
		att.ID,
		att.CheckIn,
		att.Location,
		att.Latitude,
		att.Longitude,
		att.Distance,
		string(att.Status),
		att.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, fmt.Errorf("failed to record check-in: %w", attendance.ErrRecordConflict)
		}
		return attendance.Attendance{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	return updated, nil
}

// RecordCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) RecordCheckOut(ctx context.Context, id string, checkOut time.Time, durationMinutes int) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			check_out = $2,
			duration = $3,
			updated_at = $2
		WHERE id = $1
		  AND check_in IS NOT NULL
		  AND check_out IS NULL
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query, id, checkOut, durationMinutes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, fmt.Errorf("failed to record check-out: %w", attendance.ErrRecordConflict)
		}
		return attendance.Attendance{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	return updated, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	attendances := make([]attendance.Attendance, 0, limit)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}

// CountByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByUser(ctx context.Context, userID string, statuses []attendance.Status, since *time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	statusArgs := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusArgs = append(statusArgs, string(s))
	}

	query := `SELECT COUNT(*) FROM attendances WHERE user_id = $1 AND status = ANY($2)`
	args := []interface{}{userID, statusArgs}
	if since != nil {
		query += ` AND date >= $3`
		args = append(args, *since)
	}

	var total int64
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	return total, nil
}

// ProvisionDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) ProvisionDay(ctx context.Context, date time.Time, status attendance.Status, now time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (id, user_id, date, status, created_at, updated_at)
		SELECT gen_random_uuid(), u.id, $1, $2, $3, $3
		FROM users u
		WHERE u.role = $4
		  AND u.status = $5
		ON CONFLICT (user_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, date, string(status), now, string(user.RoleIntern), string(user.StatusActive))
	if err != nil {
		return 0, fmt.Errorf("failed to provision attendances: %w", err)
	}

	return tag.RowsAffected(), nil
}

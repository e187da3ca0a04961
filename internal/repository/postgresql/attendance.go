package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
// The unique index on (employee_id, date) is the authoritative guard; a
// violation from a concurrent mark maps to ErrAlreadyMarked.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, date, status, created_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID, newAttendance.Date, newAttendance.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendances WHERE employee_id = $1 AND date = $2)`,
		employeeID, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}

// List implements attendance.AttendanceRepository.
// The employee name join runs against the already-paginated subquery so
// skipped rows never pay the join cost.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Date != nil {
		baseWhere += fmt.Sprintf(" AND date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM attendances WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 50
	}
	offset := (filter.Page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at,
			COALESCE(e.full_name, 'Unknown') AS employee_name
		FROM (
			SELECT id, employee_id, date, status, created_at
			FROM attendances
			WHERE %s
			ORDER BY date DESC, created_at DESC
			LIMIT $%d OFFSET $%d
		) a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		ORDER BY a.date DESC, a.created_at DESC
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		attendances = append(attendances, att)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
// No join here; the caller already looked the employee up once and stamps
// the name on every record.
func (a *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	var total int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE employee_id = $1`, employeeID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances for employee %s: %w", employeeID, err)
	}

	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendances
		WHERE employee_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt); err != nil {
			return nil, 0, err
		}
		attendances = append(attendances, att)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// DeleteByEmployeeID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, a.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendances WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete attendances for employee %s: %w", employeeID, err)
	}

	return nil
}

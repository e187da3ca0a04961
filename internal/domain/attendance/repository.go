package attendance

import (
	"context"
	"time"
)

// ListFilter narrows the attendance listing. Nil fields are ignored.
type ListFilter struct {
	EmployeeID *string
	Date       *time.Time
	Page       int
	Limit      int
}

type AttendanceRepository interface {
	// Create persists a new attendance record and returns the stored row
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)

	// ExistsByEmployeeAndDate reports whether attendance is already marked
	// for the employee on the given date
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// List returns one page of attendance records matching the filter,
	// sorted by date descending, each joined with the owning employee's
	// name ("Unknown" when the employee no longer exists), plus the total
	// matching count
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)

	// ListByEmployee returns one page of a single employee's records,
	// date descending, without the name join, plus the total count
	ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Attendance, int64, error)

	// Delete removes a record by primary key; ErrAttendanceNotFound when
	// no row matches
	Delete(ctx context.Context, id string) error

	// DeleteByEmployeeID removes every record for an employee (cascade on
	// employee delete)
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

package attendance

import (
	"context"

	"github.com/hrms-lite/hrms-backend-go/internal/pkg/pagination"
)

// AttendanceService defines business logic for the attendance ledger
type AttendanceService interface {
	// Mark records attendance for an employee on a date; at most one
	// record per (employee_id, date) pair
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// List returns attendance records with optional employee_id/date
	// filters, newest date first, each carrying the employee's name
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, pagination.Meta, error)

	// ListByEmployee returns one employee's records, newest date first
	ListByEmployee(ctx context.Context, employeeID string, params pagination.Params) ([]AttendanceResponse, pagination.Meta, error)

	// Delete removes a single attendance record by its id
	Delete(ctx context.Context, id string) error
}

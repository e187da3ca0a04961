package employee

import (
	"context"

	"github.com/hrms-lite/hrms-backend-go/internal/pkg/pagination"
)

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// Create registers a new employee after normalization and uniqueness checks
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// List returns employees ordered by creation time, newest first
	List(ctx context.Context, params pagination.Params) ([]EmployeeResponse, pagination.Meta, error)

	// Get retrieves a single employee by employee_id (case-insensitive)
	Get(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// Delete removes an employee and all of its attendance records
	Delete(ctx context.Context, employeeID string) error
}

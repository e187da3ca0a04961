package employee

import "context"

type EmployeeRepository interface {
	// Create persists a new employee and returns the stored row.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByEmployeeID retrieves an employee by its business identifier.
	// The identifier is expected to be normalized (uppercased) already.
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns one page of employees ordered by created_at descending,
	// together with the total record count.
	List(ctx context.Context, limit, offset int) ([]Employee, int64, error)

	// Delete removes the employee row. The attendance cascade is a separate
	// repository call; the service runs both inside one transaction.
	Delete(ctx context.Context, employeeID string) error
}

package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/pagination"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	order     []string
	sequence  int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if _, ok := r.employees[newEmployee.EmployeeID]; ok {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}
	for _, existing := range r.employees {
		if existing.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	r.sequence++
	newEmployee.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", r.sequence)
	newEmployee.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.sequence) * time.Minute)
	r.employees[newEmployee.EmployeeID] = newEmployee
	r.order = append(r.order, newEmployee.EmployeeID)
	return newEmployee, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := r.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) ExistsByEmployeeID(_ context.Context, employeeID string) (bool, error) {
	_, ok := r.employees[employeeID]
	return ok, nil
}

func (r *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, emp := range r.employees {
		if emp.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, limit, offset int) ([]employee.Employee, int64, error) {
	// newest first
	var all []employee.Employee
	for i := len(r.order) - 1; i >= 0; i-- {
		all = append(all, r.employees[r.order[i]])
	}

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, employeeID string) error {
	if _, ok := r.employees[employeeID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, employeeID)
	for idx, id := range r.order {
		if id == employeeID {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.records = append(r.records, a)
	return a, nil
}

func (r *fakeAttendanceRepo) ExistsByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	return r.records, int64(len(r.records)), nil
}

func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, _, _ int) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	for idx, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:idx], r.records[idx+1:]...)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) DeleteByEmployeeID(_ context.Context, employeeID string) error {
	var kept []attendance.Attendance
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

func newTestService() (employee.EmployeeService, *fakeEmployeeRepo, *fakeAttendanceRepo) {
	employeeRepo := newFakeEmployeeRepo()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewEmployeeService(nil, employeeRepo, attendanceRepo)
	return svc, employeeRepo, attendanceRepo
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeID: "e001",
		FullName:   "Jane Doe",
		Email:      "jane@x.com",
		Department: "Eng",
	}
}

func TestEmployeeService_Create_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	req := employee.CreateEmployeeRequest{
		EmployeeID: "  e001  ",
		FullName:   "  Jane Doe ",
		Email:      "jane@x.com",
		Department: " Eng ",
	}

	created, err := svc.Create(ctx, req)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "E001", created.EmployeeID)
	assert.Equal(t, "Jane Doe", created.FullName)
	assert.Equal(t, "jane@x.com", created.Email)
	assert.Equal(t, "Eng", created.Department)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestEmployeeService_Create_DuplicateEmployeeID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo, _ := newTestService()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// Same identifier in different case must still conflict
	dup := validCreateRequest()
	dup.EmployeeID = "E001"
	dup.Email = "other@x.com"

	_, err = svc.Create(ctx, dup)

	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
	assert.Len(t, employeeRepo.employees, 1)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo, _ := newTestService()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.EmployeeID = "E002"

	_, err = svc.Create(ctx, dup)

	assert.ErrorIs(t, err, employee.ErrEmailExists)
	assert.Len(t, employeeRepo.employees, 1)
}

func TestEmployeeService_Create_ValidationErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo, _ := newTestService()

	req := employee.CreateEmployeeRequest{
		EmployeeID: "   ",
		FullName:   "",
		Email:      "not-an-email",
		Department: "",
	}

	_, err := svc.Create(ctx, req)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "employee_id")
	assert.Contains(t, details, "full_name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "department")
	assert.Empty(t, employeeRepo.employees)
}

func TestEmployeeService_List_Pagination(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	for i := 1; i <= 3; i++ {
		req := validCreateRequest()
		req.EmployeeID = fmt.Sprintf("E%03d", i)
		req.Email = fmt.Sprintf("user%d@x.com", i)
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	results, meta, err := svc.List(ctx, pagination.Params{Page: 1, Limit: 2})

	require.NoError(t, err)
	require.Len(t, results, 2)
	// newest first
	assert.Equal(t, "E003", results[0].EmployeeID)
	assert.Equal(t, "E002", results[1].EmployeeID)
	assert.Equal(t, int64(3), meta.Total)
	assert.Equal(t, 2, meta.TotalPages)

	// a page past the end is empty but keeps accurate metadata
	results, meta, err = svc.List(ctx, pagination.Params{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, int64(3), meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, 5, meta.Page)
}

func TestEmployeeService_Get(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// lookup is case-insensitive
	found, err := svc.Get(ctx, "e001")
	require.NoError(t, err)
	assert.Equal(t, "E001", found.EmployeeID)
	assert.Equal(t, "Jane Doe", found.FullName)

	_, err = svc.Get(ctx, "E999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	err := svc.Delete(ctx, "E404")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete_CascadesAttendance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo, attendanceRepo := newTestService()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	other := validCreateRequest()
	other.EmployeeID = "E002"
	other.Email = "john@x.com"
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	attendanceRepo.records = []attendance.Attendance{
		{ID: "a1", EmployeeID: "E001", Date: date, Status: attendance.StatusPresent},
		{ID: "a2", EmployeeID: "E001", Date: date.AddDate(0, 0, 1), Status: attendance.StatusAbsent},
		{ID: "a3", EmployeeID: "E002", Date: date, Status: attendance.StatusPresent},
	}

	err = svc.Delete(ctx, "e001")

	require.NoError(t, err)
	assert.NotContains(t, employeeRepo.employees, "E001")
	require.Len(t, attendanceRepo.records, 1)
	assert.Equal(t, "E002", attendanceRepo.records[0].EmployeeID)
}

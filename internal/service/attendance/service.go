package attendance

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/pagination"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Mark implements attendance.AttendanceService.
// The employee lookup doubles as the existence check and supplies the name
// for the response, so no second query is needed after the insert.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := req.ParsedDate()

	marked, err := a.attendanceRepo.ExistsByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if marked {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyMarked
	}

	created, err := a.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	return mapAttendanceToResponse(created), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, pagination.Meta, error) {
	if filter.EmployeeID != nil {
		normalized := strings.ToUpper(strings.TrimSpace(*filter.EmployeeID))
		filter.EmployeeID = &normalized
	}

	attendances, total, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	params := pagination.Params{Page: filter.Page, Limit: filter.Limit}
	return responses, pagination.NewMeta(total, params), nil
}

// ListByEmployee implements attendance.AttendanceService.
// One employee lookup serves both the existence check and the name stamped
// on every record of the page.
func (a *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, params pagination.Params) ([]attendance.AttendanceResponse, pagination.Meta, error) {
	normalized := strings.ToUpper(strings.TrimSpace(employeeID))

	emp, err := a.employeeRepo.GetByEmployeeID(ctx, normalized)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	attendances, total, err := a.attendanceRepo.ListByEmployee(ctx, normalized, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("failed to list attendances for employee %s: %w", normalized, err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		att.EmployeeName = &emp.FullName
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return responses, pagination.NewMeta(total, params), nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return validator.ValidationErrors{{
			Field:   "id",
			Message: "invalid attendance ID format",
		}}
	}

	return a.attendanceRepo.Delete(ctx, id)
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	employeeName := "Unknown"
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: employeeName,
		Date:         att.Date.Format("2006-01-02"),
		Status:       string(att.Status),
		CreatedAt:    att.CreatedAt,
	}
}

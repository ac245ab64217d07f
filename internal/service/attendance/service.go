package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/skellio/hr-backend-go/internal/domain/attendance"
	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	logger         *slog.Logger
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		logger:         logger,
	}
}

// Mark implements attendance.AttendanceService.
// One record per employee per calendar date.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, companyID string, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if emp.CompanyID != companyID {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}
	if emp.Status != employee.StatusActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	exists, err := s.attendanceRepo.ExistsByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyMarked
	}

	checkIn, _ := validator.IsValidDateTime(req.CheckIn)
	var checkOut *time.Time
	if req.CheckOut != nil && *req.CheckOut != "" {
		t, _ := validator.IsValidDateTime(*req.CheckOut)
		checkOut = &t
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     attendance.Status(req.Status),
		Notes:      req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return created.ToResponse(), nil
}

// ListByCompanyAndDate implements attendance.AttendanceService.
// An empty date defaults to today.
func (s *AttendanceServiceImpl) ListByCompanyAndDate(ctx context.Context, companyID, date string) ([]attendance.AttendanceResponse, error) {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return nil, validator.ValidationErrors{
				{Field: "date", Message: "date must be YYYY-MM-DD"},
			}
		}
		day = parsed
	}

	records, err := s.attendanceRepo.ListByCompanyAndDate(ctx, companyID, day)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, records[i].ToResponse())
	}
	return responses, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.CompanyID != companyID {
		return nil, employee.ErrEmployeeNotFound
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, records[i].ToResponse())
	}
	return responses, nil
}

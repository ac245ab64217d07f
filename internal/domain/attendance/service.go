package attendance

import "context"

type AttendanceService interface {
	Mark(ctx context.Context, companyID string, req MarkAttendanceRequest) (AttendanceResponse, error)
	ListByCompanyAndDate(ctx context.Context, companyID, date string) ([]AttendanceResponse, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]AttendanceResponse, error)
}

package employee

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/skellio/hr-backend-go/internal/domain/billing"
	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/pkg/identity"
)

// defaultEmployeePassword seeds accounts that were provisioned without
// an explicit password; the first-login flow forces a change.
const defaultEmployeePassword = "Welcome123!"

// IdentityClient is the slice of the identity provider client the
// employee service depends on.
type IdentityClient interface {
	SignUp(ctx context.Context, email, password string) (identity.Identity, error)
	DeleteUser(ctx context.Context, uid string) error
}

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	gate         billing.Service
	identities   IdentityClient
	logger       *slog.Logger

	// companyLocks serializes the gate check and the insert per
	// company, so two concurrent creates cannot both pass the gate at
	// the same count.
	mu           sync.Mutex
	companyLocks map[string]*sync.Mutex
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	gate billing.Service,
	identities IdentityClient,
	logger *slog.Logger,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		gate:         gate,
		identities:   identities,
		logger:       logger,
		companyLocks: make(map[string]*sync.Mutex),
	}
}

func (s *EmployeeServiceImpl) lockCompany(companyID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.companyLocks[companyID]
	if !ok {
		lock = &sync.Mutex{}
		s.companyLocks[companyID] = lock
	}
	return lock
}

// Create implements employee.EmployeeService.
// The subscription gate runs inside the per-company lock and before
// any write; a denial leaves no record behind.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	lock := s.lockCompany(req.CompanyID)
	lock.Lock()
	defer lock.Unlock()

	if status == employee.StatusActive {
		count, err := s.employeeRepo.CountActiveByCompanyID(ctx, req.CompanyID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to count active employees: %w", err)
		}
		if _, err := s.gate.Evaluate(ctx, req.CompanyID, count+1); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	exists, err := s.employeeRepo.ExistsByCode(ctx, req.CompanyID, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	dateOfJoining, _ := time.Parse("2006-01-02", req.DateOfJoining)
	var dateOfBirth *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		d, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		dateOfBirth = &d
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		CompanyID:     req.CompanyID,
		EmployeeCode:  req.EmployeeCode,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Department:    req.Department,
		Position:      req.Position,
		DateOfJoining: dateOfJoining,
		DateOfBirth:   dateOfBirth,
		Address:       req.Address,
		Salary:        req.Salary,
		Status:        status,
		Emergency: employee.EmergencyContact{
			Name:         req.EmergencyContactName,
			Relationship: req.EmergencyContactRelationship,
			Phone:        req.EmergencyContactPhone,
		},
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.logger.InfoContext(ctx, "employee created",
		slog.String("employee_id", created.ID),
		slog.String("company_id", created.CompanyID),
		slog.String("status", string(created.Status)),
	)

	return created.ToResponse(), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if found.CompanyID != companyID {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return found.ToResponse(), nil
}

// ListByCompany implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByCompany(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, employees[i].ToResponse())
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
// Reactivating an inactive employee re-runs the subscription gate,
// since it raises the active count the same way a create does.
func (s *EmployeeServiceImpl) Update(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	lock := s.lockCompany(companyID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if existing.CompanyID != companyID {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	if req.Status != nil && employee.Status(*req.Status) == employee.StatusActive && existing.Status != employee.StatusActive {
		count, err := s.employeeRepo.CountActiveByCompanyID(ctx, companyID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to count active employees: %w", err)
		}
		if _, err := s.gate.Evaluate(ctx, companyID, count+1); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if req.FirstName != nil {
		existing.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		existing.LastName = *req.LastName
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.Department != nil {
		existing.Department = *req.Department
	}
	if req.Position != nil {
		existing.Position = *req.Position
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		d, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		existing.DateOfBirth = &d
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.Salary != nil {
		existing.Salary = *req.Salary
	}
	if req.Status != nil {
		existing.Status = employee.Status(*req.Status)
	}

	updated, err := s.employeeRepo.Update(ctx, existing)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return updated.ToResponse(), nil
}

// SetupAccount implements employee.EmployeeService.
// The provider account is created first; if linking the uid locally
// fails the provider account is deleted again so the employee can be
// re-provisioned later.
func (s *EmployeeServiceImpl) SetupAccount(ctx context.Context, companyID string, req employee.SetupAccountRequest) (employee.EmployeeResponse, string, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, "", err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, "", err
	}
	if existing.CompanyID != companyID {
		return employee.EmployeeResponse{}, "", employee.ErrEmployeeNotFound
	}
	if existing.ExternalUID != nil && *existing.ExternalUID != "" {
		return employee.EmployeeResponse{}, "", employee.ErrAccountLinked
	}

	password := defaultEmployeePassword
	if req.Password != nil && *req.Password != "" {
		password = *req.Password
	}

	ident, err := s.identities.SignUp(ctx, req.Email, password)
	if err != nil {
		return employee.EmployeeResponse{}, "", fmt.Errorf("failed to provision identity account: %w", err)
	}

	if err := s.employeeRepo.LinkIdentity(ctx, existing.ID, ident.UID, ident.Email); err != nil {
		if delErr := s.identities.DeleteUser(ctx, ident.UID); delErr != nil {
			s.logger.ErrorContext(ctx, "failed to roll back identity account",
				slog.String("employee_id", existing.ID),
				slog.String("external_uid", ident.UID),
				slog.Any("error", delErr),
			)
		}
		return employee.EmployeeResponse{}, "", fmt.Errorf("failed to link identity account: %w", err)
	}

	linked, err := s.employeeRepo.GetByID(ctx, existing.ID)
	if err != nil {
		return employee.EmployeeResponse{}, "", err
	}

	s.logger.InfoContext(ctx, "employee account provisioned",
		slog.String("employee_id", linked.ID),
		slog.String("external_uid", ident.UID),
	)

	return linked.ToResponse(), password, nil
}

// Delete implements employee.EmployeeService.
// The identity account is removed best-effort after the record.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, companyID, id string) error {
	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.CompanyID != companyID {
		return employee.ErrEmployeeNotFound
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.ExternalUID != nil && *existing.ExternalUID != "" {
		if err := s.identities.DeleteUser(ctx, *existing.ExternalUID); err != nil {
			s.logger.WarnContext(ctx, "failed to delete identity account for removed employee",
				slog.String("employee_id", id),
				slog.String("external_uid", *existing.ExternalUID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

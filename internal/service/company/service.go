package company

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/skellio/hr-backend-go/internal/domain/company"
	"github.com/skellio/hr-backend-go/internal/repository/postgresql"
)

type CompanyServiceImpl struct {
	db          postgresql.TxBeginner
	companyRepo company.CompanyRepository
	logger      *slog.Logger
}

func NewCompanyService(db postgresql.TxBeginner, companyRepo company.CompanyRepository, logger *slog.Logger) *CompanyServiceImpl {
	return &CompanyServiceImpl{db: db, companyRepo: companyRepo, logger: logger}
}

// Create implements company.CompanyService.
// New companies always start on the free tier.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.Company, error) {
	if err := req.Validate(); err != nil {
		return company.Company{}, err
	}

	created, err := s.companyRepo.Create(ctx, company.Company{
		Name:               req.Name,
		Industry:           req.Industry,
		Size:               req.Size,
		Address:            req.Address,
		Phone:              req.Phone,
		Email:              req.Email,
		Website:            req.Website,
		SubscriptionStatus: company.SubscriptionStatusFree,
		SubscriptionPlan:   company.SubscriptionPlanFree,
	})
	if err != nil {
		return company.Company{}, err
	}

	s.logger.InfoContext(ctx, "company registered",
		slog.String("company_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}

// CreateOrGet implements company.CompanyService.
// The name lookup and the insert run in one transaction so a concurrent
// registration of the same name cannot slip between them.
func (s *CompanyServiceImpl) CreateOrGet(ctx context.Context, req company.CreateCompanyRequest) (company.Company, bool, error) {
	if err := req.Validate(); err != nil {
		return company.Company{}, false, err
	}

	var (
		result  company.Company
		created bool
	)
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.companyRepo.GetByName(txCtx, req.Name)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, company.ErrCompanyNotFound) {
			return err
		}

		result, err = s.companyRepo.Create(txCtx, company.Company{
			Name:               req.Name,
			Industry:           req.Industry,
			Size:               req.Size,
			Address:            req.Address,
			Phone:              req.Phone,
			Email:              req.Email,
			Website:            req.Website,
			SubscriptionStatus: company.SubscriptionStatusFree,
			SubscriptionPlan:   company.SubscriptionPlanFree,
		})
		if err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		// A racing registration can still win the unique index; serve
		// its row instead of failing.
		if errors.Is(err, company.ErrCompanyNameExists) {
			existing, getErr := s.companyRepo.GetByName(ctx, req.Name)
			if getErr != nil {
				return company.Company{}, false, getErr
			}
			return existing, false, nil
		}
		return company.Company{}, false, err
	}

	if created {
		s.logger.InfoContext(ctx, "company registered",
			slog.String("company_id", result.ID),
			slog.String("name", result.Name),
		)
	}
	return result, created, nil
}

// GetByID implements company.CompanyService.
func (s *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.CompanyResponse, error) {
	found, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return found.ToResponse(), nil
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]company.CompanyResponse, 0, len(companies))
	for i := range companies {
		responses = append(responses, companies[i].ToResponse())
	}
	return responses, nil
}

// Update implements company.CompanyService.
// Billing fields are not reachable from here; only the payment webhook
// mutates them.
func (s *CompanyServiceImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	existing, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Industry != nil {
		existing.Industry = *req.Industry
	}
	if req.Size != nil {
		existing.Size = *req.Size
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.Email != nil {
		existing.Email = req.Email
	}
	if req.Website != nil {
		existing.Website = req.Website
	}

	updated, err := s.companyRepo.Update(ctx, existing)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return updated.ToResponse(), nil
}

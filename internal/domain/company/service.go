package company

import "context"

type CompanyService interface {
	Create(ctx context.Context, req CreateCompanyRequest) (Company, error)
	// CreateOrGet returns the existing company with the same name
	// instead of failing, so registration retries are idempotent.
	CreateOrGet(ctx context.Context, req CreateCompanyRequest) (c Company, created bool, err error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	List(ctx context.Context) ([]CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
}

package repository

import (
	"context"

	"github.com/station-microservice/internal/domain"
)

type CompanyRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.CompanyRow, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.CompanyRow, error)
}

package postgres

import (
	"context"

	"github.com/lib/pq"
	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
)

const companyColumns = `
	c.company_cd, c.rr_cd,
	c.company_name, c.company_name_k, c.company_name_h, c.company_name_r, c.company_name_en,
	c.company_url, c.company_type`

type companyRepository struct {
	store
}

func NewCompanyRepository(db *DB) repository.CompanyRepository {
	return &companyRepository{store: newStore(db, 0)}
}

func (r *companyRepository) FindByID(ctx context.Context, id int64) (*domain.CompanyRow, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies c
		WHERE c.company_cd = $1
		  AND c.e_status = 0
	`

	var row domain.CompanyRow
	found, err := r.getRow(ctx, "company.FindByID", &row, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

func (r *companyRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.CompanyRow, error) {
	if len(ids) == 0 {
		return []*domain.CompanyRow{}, nil
	}

	query := `
		SELECT ` + companyColumns + `
		FROM companies c
		WHERE c.company_cd = ANY($1)
		  AND c.e_status = 0
		ORDER BY c.company_cd
	`

	var rows []*domain.CompanyRow
	if err := r.selectRows(ctx, "company.GetByIDs", &rows, query, pq.Array(ids)); err != nil {
		return nil, err
	}
	return rows, nil
}

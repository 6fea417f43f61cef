package usecase

import (
	"context"
	"fmt"

	"github.com/station-microservice/internal/assembler"
	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
	"github.com/station-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type LineUseCase struct {
	lineRepo repository.LineRepository
	loader   *graphLoader
	cache    *ResponseCache
	logger   *zap.Logger
}

func NewLineUseCase(
	repos Repositories,
	cache *ResponseCache,
	logger *zap.Logger,
) *LineUseCase {
	return &LineUseCase{
		lineRepo: repos.Lines,
		loader:   &graphLoader{repos: repos, logger: logger},
		cache:    cache,
		logger:   logger,
	}
}

// GetLineByID возвращает линию с компанией или nil
func (uc *LineUseCase) GetLineByID(ctx context.Context, id int64) (*domain.Line, error) {
	if id <= 0 {
		return nil, errors.ErrInvalidID
	}

	return cached(ctx, uc.cache, fmt.Sprintf("line:id:%d", id), func(ctx context.Context) (*domain.Line, error) {
		row, err := uc.lineRepo.FindByID(ctx, id)
		if err != nil {
			uc.logger.Error("Failed to get line", zap.Int64("line_id", id), zap.Error(err))
			return nil, err
		}
		if row == nil {
			return nil, nil
		}

		lines, err := uc.withCompanies(ctx, []*domain.LineRow{row})
		if err != nil {
			return nil, err
		}
		return lines[0], nil
	})
}

// GetLinesByStationGroupID возвращает линии, обслуживающие группу станций
func (uc *LineUseCase) GetLinesByStationGroupID(ctx context.Context, groupID int64) ([]*domain.Line, error) {
	if groupID <= 0 {
		return nil, errors.ErrInvalidID
	}

	return cached(ctx, uc.cache, fmt.Sprintf("lines:group:%d", groupID), func(ctx context.Context) ([]*domain.Line, error) {
		rows, err := uc.lineRepo.GetByStationGroupID(ctx, groupID)
		if err != nil {
			uc.logger.Error("Failed to get lines by station group", zap.Int64("group_id", groupID), zap.Error(err))
			return nil, err
		}
		return uc.withCompanies(ctx, rows)
	})
}

// GetLinesByCompanyID возвращает линии компании
func (uc *LineUseCase) GetLinesByCompanyID(ctx context.Context, companyID int64) ([]*domain.Line, error) {
	if companyID <= 0 {
		return nil, errors.ErrInvalidID
	}

	return cached(ctx, uc.cache, fmt.Sprintf("lines:company:%d", companyID), func(ctx context.Context) ([]*domain.Line, error) {
		rows, err := uc.lineRepo.GetByCompanyID(ctx, companyID)
		if err != nil {
			uc.logger.Error("Failed to get lines by company", zap.Int64("company_id", companyID), zap.Error(err))
			return nil, err
		}
		return uc.withCompanies(ctx, rows)
	})
}

func (uc *LineUseCase) withCompanies(ctx context.Context, rows []*domain.LineRow) ([]*domain.Line, error) {
	companyIDs := uniqueIDs(rows, func(r *domain.LineRow) int64 { return r.CompanyID })
	companies, err := uc.loader.companies(ctx, newRequestScope(), companyIDs)
	if err != nil {
		uc.logger.Error("Failed to get companies", zap.Int64s("company_ids", companyIDs), zap.Error(err))
		return nil, err
	}

	lines := make([]*domain.Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, assembler.Line(row, companies[row.CompanyID]))
	}
	return lines, nil
}

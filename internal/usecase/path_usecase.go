package usecase

import (
	"context"

	"github.com/station-microservice/internal/assembler"
	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
	"github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/validator"
	"github.com/station-microservice/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type PathUseCase struct {
	lineRepo    repository.LineRepository
	stationRepo repository.StationRepository
	loader      *graphLoader
	logger      *zap.Logger
}

func NewPathUseCase(repos Repositories, logger *zap.Logger) *PathUseCase {
	return &PathUseCase{
		lineRepo:    repos.Lines,
		stationRepo: repos.Stations,
		loader:      &graphLoader{repos: repos, logger: logger},
		logger:      logger,
	}
}

// FindPath возвращает маршруты между двумя группами станций по каждой
// общей для них линии
func (uc *PathUseCase) FindPath(ctx context.Context, fromGroupID, toGroupID int64) ([]domain.FoundPath, error) {
	if err := validator.ValidateRequest(dto.PathRequest{From: fromGroupID, To: toGroupID}, errors.ErrInvalidID); err != nil {
		return nil, err
	}

	lineRows, err := uc.lineRepo.GetBySrcAndDstGroupID(ctx, fromGroupID, toGroupID)
	if err != nil {
		uc.logger.Error("Failed to get shared lines",
			zap.Int64("from", fromGroupID),
			zap.Int64("to", toGroupID),
			zap.Error(err))
		return nil, err
	}
	if len(lineRows) == 0 {
		return []domain.FoundPath{}, nil
	}

	scope := newRequestScope()
	companyIDs := uniqueIDs(lineRows, func(r *domain.LineRow) int64 { return r.CompanyID })
	companies, err := uc.loader.companies(ctx, scope, companyIDs)
	if err != nil {
		return nil, err
	}

	// результаты собираются по индексу линии, порядок линий сохраняется
	paths := make([]*domain.FoundPath, len(lineRows))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, lineRow := range lineRows {
		eg.Go(func() error {
			sequence, err := uc.stationRepo.GetByLineID(egCtx, lineRow.ID)
			if err != nil {
				return err
			}

			sliced, bound, ok := slicePath(sequence, fromGroupID, toGroupID)
			if !ok {
				uc.logger.Debug("Endpoint group missing on line",
					zap.Int64("line_id", lineRow.ID),
					zap.Int64("from", fromGroupID),
					zap.Int64("to", toGroupID))
				return nil
			}

			for j, s := range sliced {
				r := *s
				r.CurrentLine = lineRow
				sliced[j] = &r
			}

			stations, err := uc.loader.stations(egCtx, scope, sliced, stationOptions{})
			if err != nil {
				return err
			}

			paths[i] = &domain.FoundPath{
				Line:     assembler.Line(lineRow, companies[lineRow.CompanyID]),
				Stations: stations,
				Bound:    bound,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		uc.logger.Error("Failed to build paths", zap.Error(err))
		return nil, err
	}

	result := make([]domain.FoundPath, 0, len(paths))
	for _, p := range paths {
		if p != nil {
			result = append(result, *p)
		}
	}
	return result, nil
}

// slicePath вырезает из последовательности станций линии участок между
// двумя группами. Если индекс начала больше индекса конца - направление
// INBOUND и участок разворачивается, иначе OUTBOUND. ok=false, если одной
// из групп нет на линии.
func slicePath(sequence []*domain.StationRow, fromGroupID, toGroupID int64) ([]*domain.StationRow, domain.BoundDirection, bool) {
	fromIdx, toIdx := -1, -1
	for i, s := range sequence {
		if fromIdx < 0 && s.GroupID == fromGroupID {
			fromIdx = i
		}
		if toIdx < 0 && s.GroupID == toGroupID {
			toIdx = i
		}
	}
	if fromIdx < 0 || toIdx < 0 {
		return nil, "", false
	}

	if fromIdx > toIdx {
		sliced := make([]*domain.StationRow, 0, fromIdx-toIdx+1)
		for i := fromIdx; i >= toIdx; i-- {
			sliced = append(sliced, sequence[i])
		}
		return sliced, domain.BoundInbound, true
	}

	sliced := make([]*domain.StationRow, toIdx-fromIdx+1)
	copy(sliced, sequence[fromIdx:toIdx+1])
	return sliced, domain.BoundOutbound, true
}

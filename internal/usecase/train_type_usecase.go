package usecase

import (
	"context"
	"fmt"

	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
	"github.com/station-microservice/internal/naming"
	"github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/validator"
	"github.com/station-microservice/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TrainTypeUseCase struct {
	trainTypeRepo repository.TrainTypeRepository
	stationRepo   repository.StationRepository
	loader        *graphLoader
	cache         *ResponseCache
	logger        *zap.Logger
}

func NewTrainTypeUseCase(
	repos Repositories,
	composer *naming.Composer,
	cache *ResponseCache,
	logger *zap.Logger,
) *TrainTypeUseCase {
	return &TrainTypeUseCase{
		trainTypeRepo: repos.TrainTypes,
		stationRepo:   repos.Stations,
		loader:        &graphLoader{repos: repos, composer: composer, logger: logger},
		cache:         cache,
		logger:        logger,
	}
}

// GetTrainTypesByStationID возвращает виды поездов станции с составными названиями
func (uc *TrainTypeUseCase) GetTrainTypesByStationID(ctx context.Context, stationID int64) ([]*domain.TrainType, error) {
	if stationID <= 0 {
		return nil, errors.ErrInvalidID
	}

	return cached(ctx, uc.cache, fmt.Sprintf("train_types:station:%d", stationID), func(ctx context.Context) ([]*domain.TrainType, error) {
		rows, err := uc.trainTypeRepo.GetByStationIDs(ctx, []int64{stationID})
		if err != nil {
			uc.logger.Error("Failed to get train types", zap.Int64("station_id", stationID), zap.Error(err))
			return nil, err
		}

		scope := newRequestScope()
		lineGroupIDs := uniqueIDs(rows, func(r *domain.TrainTypeRow) int64 { return r.LineGroupID })
		through, err := uc.loader.throughLines(ctx, scope, lineGroupIDs)
		if err != nil {
			return nil, err
		}
		companies, err := uc.throughCompanies(ctx, scope, through)
		if err != nil {
			return nil, err
		}

		result := make([]*domain.TrainType, 0, len(rows))
		for _, row := range rows {
			result = append(result, uc.loader.trainType(row, through[row.LineGroupID], companies))
		}
		return result, nil
	})
}

// GetTrainTypeByLineGroupID возвращает вид поезда группы линий со станциями
// (и станциями пересадки на их линиях) или nil.
// excludePass отбрасывает станции, которые поезд проходит без остановки.
func (uc *TrainTypeUseCase) GetTrainTypeByLineGroupID(ctx context.Context, lineGroupID int64, excludePass bool) (*domain.TrainType, error) {
	req := dto.TrainTypeRequest{LineGroupID: lineGroupID, ExcludePass: excludePass}
	if err := validator.ValidateRequest(req, errors.ErrInvalidID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("train_type:line_group:%d:exclude_pass:%t", lineGroupID, excludePass)
	return cached(ctx, uc.cache, key, func(ctx context.Context) (*domain.TrainType, error) {
		var (
			row         *domain.TrainTypeRow
			stationRows []*domain.StationRow
		)

		eg, egCtx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			var err error
			row, err = uc.trainTypeRepo.FindByLineGroupID(egCtx, lineGroupID)
			return err
		})
		eg.Go(func() error {
			var err error
			stationRows, err = uc.stationRepo.GetByLineGroupID(egCtx, lineGroupID, excludePass)
			return err
		})
		if err := eg.Wait(); err != nil {
			uc.logger.Error("Failed to get train type", zap.Int64("line_group_id", lineGroupID), zap.Error(err))
			return nil, err
		}
		if row == nil {
			return nil, nil
		}

		scope := newRequestScope()
		stations, err := uc.loader.stations(ctx, scope, stationRows, stationOptions{transfers: true})
		if err != nil {
			return nil, err
		}

		through, err := uc.loader.throughLines(ctx, scope, []int64{lineGroupID})
		if err != nil {
			return nil, err
		}
		companies, err := uc.throughCompanies(ctx, scope, through)
		if err != nil {
			return nil, err
		}

		tt := uc.loader.trainType(row, through[lineGroupID], companies)
		tt.Stations = stations

		uc.logger.Debug("Train type assembled",
			zap.Int64("line_group_id", lineGroupID),
			zap.Int("stations", len(stations)),
			zap.Int("lines", len(tt.Lines)))

		return tt, nil
	})
}

func (uc *TrainTypeUseCase) throughCompanies(ctx context.Context, scope *requestScope, through map[int64][]*domain.TrainTypeWithLineRow) ([]*domain.CompanyRow, error) {
	var ids []int64
	for _, tts := range through {
		for _, tt := range tts {
			ids = append(ids, tt.CompanyID)
		}
	}

	companies, err := uc.loader.companies(ctx, scope, ids)
	if err != nil {
		return nil, err
	}
	return companyValues(companies), nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
	"github.com/station-microservice/internal/naming"
	"github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/utils"
	"github.com/station-microservice/internal/pkg/validator"
	"github.com/station-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

type StationUseCase struct {
	stationRepo repository.StationRepository
	loader      *graphLoader
	cache       *ResponseCache
	logger      *zap.Logger
}

func NewStationUseCase(
	repos Repositories,
	composer *naming.Composer,
	cache *ResponseCache,
	logger *zap.Logger,
) *StationUseCase {
	return &StationUseCase{
		stationRepo: repos.Stations,
		loader:      &graphLoader{repos: repos, composer: composer, logger: logger},
		cache:       cache,
		logger:      logger,
	}
}

var fullStation = stationOptions{trainTypes: true}

// GetStationByID возвращает станцию или nil, если её нет
func (uc *StationUseCase) GetStationByID(ctx context.Context, id int64) (*domain.Station, error) {
	if id <= 0 {
		return nil, errors.ErrInvalidID
	}

	return cached(ctx, uc.cache, fmt.Sprintf("station:id:%d", id), func(ctx context.Context) (*domain.Station, error) {
		row, err := uc.stationRepo.FindByID(ctx, id)
		if err != nil {
			uc.logger.Error("Failed to get station", zap.Int64("station_id", id), zap.Error(err))
			return nil, err
		}
		return uc.single(ctx, row)
	})
}

// GetStationsByIDs возвращает найденные станции в порядке ids
func (uc *StationUseCase) GetStationsByIDs(ctx context.Context, ids []int64) ([]*domain.Station, error) {
	if err := validator.ValidateRequest(dto.IDsRequest{IDs: ids}, errors.ErrInvalidID); err != nil {
		return nil, err
	}

	rows, err := uc.stationRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("Failed to get stations by ids", zap.Int("count", len(ids)), zap.Error(err))
		return nil, err
	}
	return uc.loader.stations(ctx, newRequestScope(), rows, fullStation)
}

// GetStationByGroupID возвращает одну станцию группы или nil
func (uc *StationUseCase) GetStationByGroupID(ctx context.Context, groupID int64) (*domain.Station, error) {
	if groupID <= 0 {
		return nil, errors.ErrInvalidID
	}

	return cached(ctx, uc.cache, fmt.Sprintf("station:group:%d", groupID), func(ctx context.Context) (*domain.Station, error) {
		row, err := uc.stationRepo.FindByGroupID(ctx, groupID)
		if err != nil {
			uc.logger.Error("Failed to get station by group", zap.Int64("group_id", groupID), zap.Error(err))
			return nil, err
		}
		return uc.single(ctx, row)
	})
}

// GetStationsByGroupID возвращает все станции группы (по одной на линию)
func (uc *StationUseCase) GetStationsByGroupID(ctx context.Context, groupID int64) ([]*domain.Station, error) {
	if groupID <= 0 {
		return nil, errors.ErrInvalidID
	}

	return cached(ctx, uc.cache, fmt.Sprintf("stations:group:%d", groupID), func(ctx context.Context) ([]*domain.Station, error) {
		rows, err := uc.stationRepo.GetByGroupIDs(ctx, []int64{groupID})
		if err != nil {
			uc.logger.Error("Failed to get stations by group", zap.Int64("group_id", groupID), zap.Error(err))
			return nil, err
		}
		return uc.loader.stations(ctx, newRequestScope(), rows, fullStation)
	})
}

// GetStationsByCoordinates возвращает ближайшие станции, по одной на группу
func (uc *StationUseCase) GetStationsByCoordinates(ctx context.Context, req dto.CoordinatesRequest) ([]*domain.Station, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if err := validator.ValidateRequest(req, errors.ErrInvalidLimit); err != nil {
		return nil, err
	}
	if req.Limit == 0 {
		req.Limit = dto.DefaultCoordinatesLimit
	}

	rows, err := uc.stationRepo.GetByCoordinates(ctx, req.Lat, req.Lon, req.Limit)
	if err != nil {
		uc.logger.Error("Failed to get nearby stations",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.Int("limit", req.Limit),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Debug("Nearby stations found",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon),
		zap.Int("count", len(rows)))

	return uc.loader.stations(ctx, newRequestScope(), rows, fullStation)
}

// GetStationsByLineID возвращает станции линии в порядке следования
func (uc *StationUseCase) GetStationsByLineID(ctx context.Context, lineID int64) ([]*domain.Station, error) {
	if lineID <= 0 {
		return nil, errors.ErrInvalidID
	}

	return cached(ctx, uc.cache, fmt.Sprintf("stations:line:%d", lineID), func(ctx context.Context) ([]*domain.Station, error) {
		rows, err := uc.stationRepo.GetByLineID(ctx, lineID)
		if err != nil {
			uc.logger.Error("Failed to get stations by line", zap.Int64("line_id", lineID), zap.Error(err))
			return nil, err
		}
		return uc.loader.stations(ctx, newRequestScope(), rows, fullStation)
	})
}

// GetStationsByName ищет станции по подстроке названия
func (uc *StationUseCase) GetStationsByName(ctx context.Context, req dto.NameRequest) ([]*domain.Station, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.ValidateRequest(req, errors.ErrInvalidName); err != nil {
		return nil, err
	}
	if req.Limit == 0 {
		req.Limit = dto.DefaultNameLimit
	}

	rows, err := uc.stationRepo.GetByName(ctx, req.Name, req.Limit)
	if err != nil {
		uc.logger.Error("Failed to search stations", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return uc.loader.stations(ctx, newRequestScope(), rows, fullStation)
}

// GetRandomStation возвращает случайную станцию; ответ не кешируется
func (uc *StationUseCase) GetRandomStation(ctx context.Context) (*domain.Station, error) {
	row, err := uc.stationRepo.FindRandom(ctx)
	if err != nil {
		uc.logger.Error("Failed to get random station", zap.Error(err))
		return nil, err
	}
	return uc.single(ctx, row)
}

func (uc *StationUseCase) single(ctx context.Context, row *domain.StationRow) (*domain.Station, error) {
	if row == nil {
		return nil, nil
	}
	stations, err := uc.loader.stations(ctx, newRequestScope(), []*domain.StationRow{row}, fullStation)
	if err != nil {
		return nil, err
	}
	return stations[0], nil
}

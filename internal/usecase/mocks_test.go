package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/station-microservice/internal/domain"
)

// MockStationRepository is a mock of StationRepository
type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) FindByID(ctx context.Context, id int64) (*domain.StationRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StationRow), args.Error(1)
}

func (m *MockStationRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.StationRow, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StationRow), args.Error(1)
}

func (m *MockStationRepository) FindByGroupID(ctx context.Context, groupID int64) (*domain.StationRow, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StationRow), args.Error(1)
}

func (m *MockStationRepository) GetByGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.StationRow, error) {
	args := m.Called(ctx, groupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StationRow), args.Error(1)
}

func (m *MockStationRepository) GetByLineID(ctx context.Context, lineID int64) ([]*domain.StationRow, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StationRow), args.Error(1)
}

func (m *MockStationRepository) GetByName(ctx context.Context, name string, limit int) ([]*domain.StationRow, error) {
	args := m.Called(ctx, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StationRow), args.Error(1)
}

func (m *MockStationRepository) GetByCoordinates(ctx context.Context, lat, lon float64, limit int) ([]*domain.StationRow, error) {
	args := m.Called(ctx, lat, lon, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StationRow), args.Error(1)
}

func (m *MockStationRepository) FindRandom(ctx context.Context) (*domain.StationRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StationRow), args.Error(1)
}

func (m *MockStationRepository) GetByLineGroupID(ctx context.Context, lineGroupID int64, excludePass bool) ([]*domain.StationRow, error) {
	args := m.Called(ctx, lineGroupID, excludePass)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StationRow), args.Error(1)
}

// MockLineRepository is a mock of LineRepository
type MockLineRepository struct {
	mock.Mock
}

func (m *MockLineRepository) FindByID(ctx context.Context, id int64) (*domain.LineRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineRow), args.Error(1)
}

func (m *MockLineRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.LineRow, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LineRow), args.Error(1)
}

func (m *MockLineRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]*domain.LineRow, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LineRow), args.Error(1)
}

func (m *MockLineRepository) GetByStationGroupID(ctx context.Context, groupID int64) ([]*domain.LineRow, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LineRow), args.Error(1)
}

func (m *MockLineRepository) GetByStationGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.LineRow, error) {
	args := m.Called(ctx, groupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LineRow), args.Error(1)
}

func (m *MockLineRepository) GetBySrcAndDstGroupID(ctx context.Context, srcGroupID, dstGroupID int64) ([]*domain.LineRow, error) {
	args := m.Called(ctx, srcGroupID, dstGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LineRow), args.Error(1)
}

// MockCompanyRepository is a mock of CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id int64) (*domain.CompanyRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyRow), args.Error(1)
}

func (m *MockCompanyRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.CompanyRow, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CompanyRow), args.Error(1)
}

// MockTrainTypeRepository is a mock of TrainTypeRepository
type MockTrainTypeRepository struct {
	mock.Mock
}

func (m *MockTrainTypeRepository) GetByStationIDs(ctx context.Context, stationIDs []int64) ([]*domain.TrainTypeRow, error) {
	args := m.Called(ctx, stationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TrainTypeRow), args.Error(1)
}

func (m *MockTrainTypeRepository) FindByLineGroupID(ctx context.Context, lineGroupID int64) (*domain.TrainTypeRow, error) {
	args := m.Called(ctx, lineGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainTypeRow), args.Error(1)
}

func (m *MockTrainTypeRepository) GetWithLinesByLineGroupIDs(ctx context.Context, lineGroupIDs []int64) ([]*domain.TrainTypeWithLineRow, error) {
	args := m.Called(ctx, lineGroupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TrainTypeWithLineRow), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

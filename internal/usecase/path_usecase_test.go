package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/station-microservice/internal/domain"
	apperrors "github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/usecase"
)

// lineSequence - станции 1..n с группами 101..100+n
func lineSequence(lineID int64, n int) []*domain.StationRow {
	rows := make([]*domain.StationRow, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, &domain.StationRow{
			ID:      int64(i),
			GroupID: int64(100 + i),
			LineID:  lineID,
		})
	}
	return rows
}

func stationIDs(stations []*domain.Station) []int64 {
	ids := make([]int64, 0, len(stations))
	for _, s := range stations {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestPathUseCase_FindPath(t *testing.T) {
	tests := []struct {
		name     string
		from, to int64
		bound    domain.BoundDirection
		expected []int64
	}{
		{name: "inbound reverses the slice", from: 106, to: 103, bound: domain.BoundInbound, expected: []int64{6, 5, 4, 3}},
		{name: "outbound keeps line order", from: 102, to: 104, bound: domain.BoundOutbound, expected: []int64{2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newMockRepos()
			uc := usecase.NewPathUseCase(repos.repositories(), zap.NewNop())

			repos.lines.On("GetBySrcAndDstGroupID", mock.Anything, tt.from, tt.to).
				Return([]*domain.LineRow{yamanoteLine(0)}, nil)
			repos.companies.On("GetByIDs", mock.Anything, []int64{2}).Return(companyRows()[:1], nil)
			repos.stations.On("GetByLineID", mock.Anything, yamanoteLineID).Return(lineSequence(yamanoteLineID, 6), nil)
			repos.lines.On("GetByStationGroupIDs", mock.Anything, mock.Anything).Return([]*domain.LineRow{}, nil)

			paths, err := uc.FindPath(context.Background(), tt.from, tt.to)

			require.NoError(t, err)
			require.Len(t, paths, 1)
			assert.Equal(t, tt.bound, paths[0].Bound)
			assert.Equal(t, tt.expected, stationIDs(paths[0].Stations))
			assert.Equal(t, int64(2), paths[0].Line.Company.ID)
			for _, s := range paths[0].Stations {
				require.NotNil(t, s.CurrentLine)
				assert.Equal(t, yamanoteLineID, s.CurrentLine.ID)
			}
		})
	}
}

func TestPathUseCase_FindPath_SkipsLineWithoutEndpoint(t *testing.T) {
	repos := newMockRepos()
	uc := usecase.NewPathUseCase(repos.repositories(), zap.NewNop())

	repos.lines.On("GetBySrcAndDstGroupID", mock.Anything, int64(101), int64(103)).
		Return([]*domain.LineRow{yamanoteLine(0), toyokoLine(0)}, nil)
	repos.companies.On("GetByIDs", mock.Anything, []int64{2, 26}).Return(companyRows(), nil)
	repos.stations.On("GetByLineID", mock.Anything, yamanoteLineID).Return(lineSequence(yamanoteLineID, 4), nil)
	repos.stations.On("GetByLineID", mock.Anything, toyokoLineID).Return(lineSequence(toyokoLineID, 2), nil)
	repos.lines.On("GetByStationGroupIDs", mock.Anything, mock.Anything).Return([]*domain.LineRow{}, nil)

	paths, err := uc.FindPath(context.Background(), 101, 103)

	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, yamanoteLineID, paths[0].Line.ID)
}

func TestPathUseCase_FindPath_NoSharedLines(t *testing.T) {
	repos := newMockRepos()
	uc := usecase.NewPathUseCase(repos.repositories(), zap.NewNop())

	repos.lines.On("GetBySrcAndDstGroupID", mock.Anything, int64(101), int64(999)).Return([]*domain.LineRow{}, nil)

	paths, err := uc.FindPath(context.Background(), 101, 999)

	require.NoError(t, err)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
	repos.stations.AssertNotCalled(t, "GetByLineID", mock.Anything, mock.Anything)
}

func TestPathUseCase_FindPath_InvalidInput(t *testing.T) {
	repos := newMockRepos()
	uc := usecase.NewPathUseCase(repos.repositories(), zap.NewNop())

	_, err := uc.FindPath(context.Background(), 0, 103)

	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	repos.lines.AssertNotCalled(t, "GetBySrcAndDstGroupID", mock.Anything, mock.Anything, mock.Anything)
}

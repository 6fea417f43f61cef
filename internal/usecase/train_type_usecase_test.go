package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/naming"
	apperrors "github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/usecase"
)

func newTrainTypeUseCase(repos *mockRepos) *usecase.TrainTypeUseCase {
	return usecase.NewTrainTypeUseCase(repos.repositories(), naming.NewComposer([]int64{1, 2, 3, 4, 5, 6}), nil, zap.NewNop())
}

func TestTrainTypeUseCase_GetTrainTypesByStationID(t *testing.T) {
	repos := newMockRepos()
	uc := newTrainTypeUseCase(repos)

	repos.trainTypes.On("GetByStationIDs", mock.Anything, []int64{2600101}).
		Return([]*domain.TrainTypeRow{{
			ID: 10, StationID: 2600101, TypeID: 101, LineGroupID: 500,
			Name: "急行", NameR: "Express", LineID: toyokoLineID,
		}}, nil)
	repos.trainTypes.On("GetWithLinesByLineGroupIDs", mock.Anything, []int64{500}).
		Return(expressThrough(500), nil)
	repos.companies.On("GetByIDs", mock.Anything, []int64{18, 26}).Return(companyRows()[1:], nil)

	trainTypes, err := uc.GetTrainTypesByStationID(context.Background(), 2600101)

	require.NoError(t, err)
	require.Len(t, trainTypes, 1)
	tt := trainTypes[0]
	assert.Equal(t, "急行(副都心線直通)", tt.Name)
	assert.Equal(t, "Express(Fukutoshin Line Through)", tt.NameR)
	assert.Equal(t, domain.TrainDirectionBoth, tt.Direction)

	require.Len(t, tt.Lines, 2)
	assert.Equal(t, fukutoshinLineID, tt.Lines[0].ID)
	assert.Equal(t, "Tokyo Metro", tt.Lines[0].Company.NameR)

	require.Len(t, tt.AllTrainTypes, 2)
	assert.Equal(t, toyokoLineID, tt.AllTrainTypes[1].Line.ID)
	repos.companies.AssertExpectations(t)
}

func TestTrainTypeUseCase_GetTrainTypesByStationID_Empty(t *testing.T) {
	repos := newMockRepos()
	uc := newTrainTypeUseCase(repos)

	repos.trainTypes.On("GetByStationIDs", mock.Anything, []int64{1}).Return([]*domain.TrainTypeRow{}, nil)

	trainTypes, err := uc.GetTrainTypesByStationID(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, trainTypes)
	repos.trainTypes.AssertNotCalled(t, "GetWithLinesByLineGroupIDs", mock.Anything, mock.Anything)
}

func TestTrainTypeUseCase_GetTrainTypeByLineGroupID(t *testing.T) {
	const (
		lineGroupID       int64 = 500
		nextGroupID       int64 = 2600102
		shibuyaToyokoID   int64 = 2600101
		shibuyaFukutoshin int64 = 2801001
	)

	repos := newMockRepos()
	uc := newTrainTypeUseCase(repos)

	shibuyaToyoko := &domain.StationRow{ID: shibuyaToyokoID, GroupID: shibuyaGroupID, Name: "渋谷", LineID: toyokoLineID}
	daikanyama := &domain.StationRow{ID: nextGroupID, GroupID: nextGroupID, Name: "代官山", LineID: toyokoLineID}
	shibuyaMetro := &domain.StationRow{ID: shibuyaFukutoshin, GroupID: shibuyaGroupID, Name: "渋谷", LineID: fukutoshinLineID}

	repos.trainTypes.On("FindByLineGroupID", mock.Anything, lineGroupID).
		Return(&domain.TrainTypeRow{
			ID: 10, TypeID: 101, LineGroupID: lineGroupID,
			Name: "急行", NameR: "Express", LineID: toyokoLineID,
		}, nil)
	repos.stations.On("GetByLineGroupID", mock.Anything, lineGroupID, true).
		Return([]*domain.StationRow{shibuyaToyoko, daikanyama}, nil)
	repos.lines.On("GetByStationGroupIDs", mock.Anything, []int64{shibuyaGroupID, nextGroupID}).
		Return([]*domain.LineRow{toyokoLine(shibuyaGroupID), fukutoshinLine(shibuyaGroupID), toyokoLine(nextGroupID)}, nil)
	repos.stations.On("GetByGroupIDs", mock.Anything, []int64{shibuyaGroupID, nextGroupID}).
		Return([]*domain.StationRow{shibuyaToyoko, shibuyaMetro, daikanyama}, nil)
	repos.companies.On("GetByIDs", mock.Anything, mock.Anything).Return(companyRows(), nil)
	repos.trainTypes.On("GetWithLinesByLineGroupIDs", mock.Anything, []int64{lineGroupID}).
		Return(expressThrough(lineGroupID), nil)

	tt, err := uc.GetTrainTypeByLineGroupID(context.Background(), lineGroupID, true)

	require.NoError(t, err)
	require.NotNil(t, tt)
	assert.Equal(t, "急行(副都心線直通)", tt.Name)
	require.Len(t, tt.Stations, 2)

	shibuya := tt.Stations[0]
	require.Len(t, shibuya.Lines, 2)
	require.NotNil(t, shibuya.Lines[0].TransferStation)
	assert.Equal(t, shibuyaToyokoID, shibuya.Lines[0].TransferStation.ID)
	require.NotNil(t, shibuya.Lines[1].TransferStation)
	assert.Equal(t, shibuyaFukutoshin, shibuya.Lines[1].TransferStation.ID)

	// станция пересадки не содержит собственных пересадок
	for _, l := range shibuya.Lines[1].TransferStation.Lines {
		assert.Nil(t, l.TransferStation)
	}

	assert.Len(t, tt.Stations[1].Lines, 1)
	assert.Len(t, tt.Lines, 2)
	assert.Len(t, tt.AllTrainTypes, 2)
	repos.trainTypes.AssertNumberOfCalls(t, "GetWithLinesByLineGroupIDs", 1)
}

func TestTrainTypeUseCase_GetTrainTypeByLineGroupID_NotFound(t *testing.T) {
	repos := newMockRepos()
	uc := newTrainTypeUseCase(repos)

	repos.trainTypes.On("FindByLineGroupID", mock.Anything, int64(404)).Return(nil, nil)
	repos.stations.On("GetByLineGroupID", mock.Anything, int64(404), false).Return([]*domain.StationRow{}, nil)

	tt, err := uc.GetTrainTypeByLineGroupID(context.Background(), 404, false)

	assert.NoError(t, err)
	assert.Nil(t, tt)
	repos.trainTypes.AssertNotCalled(t, "GetWithLinesByLineGroupIDs", mock.Anything, mock.Anything)
}

func TestTrainTypeUseCase_InvalidID(t *testing.T) {
	repos := newMockRepos()
	uc := newTrainTypeUseCase(repos)

	_, err := uc.GetTrainTypeByLineGroupID(context.Background(), -1, false)
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)

	_, err = uc.GetTrainTypesByStationID(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)

	repos.trainTypes.AssertNotCalled(t, "FindByLineGroupID", mock.Anything, mock.Anything)
	repos.trainTypes.AssertNotCalled(t, "GetByStationIDs", mock.Anything, mock.Anything)
}

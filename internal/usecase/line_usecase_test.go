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

func TestLineUseCase_GetLineByID(t *testing.T) {
	repos := newMockRepos()
	uc := usecase.NewLineUseCase(repos.repositories(), nil, zap.NewNop())

	row := yamanoteLine(shibuyaGroupID)
	row.StationGroupID = nil
	repos.lines.On("FindByID", mock.Anything, yamanoteLineID).Return(row, nil)
	repos.companies.On("GetByIDs", mock.Anything, []int64{2}).Return(companyRows()[:1], nil)

	line, err := uc.GetLineByID(context.Background(), yamanoteLineID)

	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, "JR山手線", line.Name)
	require.NotNil(t, line.Company)
	assert.Equal(t, int64(2), line.Company.ID)
	assert.Equal(t, []domain.LineSymbol{{LineSymbol: "JY", LineSymbolColor: "#80C241"}}, line.LineSymbols)
}

func TestLineUseCase_GetLineByID_NotFound(t *testing.T) {
	repos := newMockRepos()
	uc := usecase.NewLineUseCase(repos.repositories(), nil, zap.NewNop())

	repos.lines.On("FindByID", mock.Anything, int64(1)).Return(nil, nil)

	line, err := uc.GetLineByID(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, line)
	repos.companies.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestLineUseCase_GetLinesByStationGroupID(t *testing.T) {
	repos := newMockRepos()
	uc := usecase.NewLineUseCase(repos.repositories(), nil, zap.NewNop())

	repos.lines.On("GetByStationGroupID", mock.Anything, shibuyaGroupID).
		Return([]*domain.LineRow{yamanoteLine(shibuyaGroupID), toyokoLine(shibuyaGroupID), fukutoshinLine(shibuyaGroupID)}, nil)
	repos.companies.On("GetByIDs", mock.Anything, []int64{2, 26, 18}).Return(companyRows(), nil)

	lines, err := uc.GetLinesByStationGroupID(context.Background(), shibuyaGroupID)

	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, []int64{yamanoteLineID, toyokoLineID, fukutoshinLineID}, []int64{lines[0].ID, lines[1].ID, lines[2].ID})
	assert.Equal(t, "Tokyu", lines[1].Company.NameR)
}

func TestLineUseCase_GetLinesByCompanyID(t *testing.T) {
	t.Run("company without lines", func(t *testing.T) {
		repos := newMockRepos()
		uc := usecase.NewLineUseCase(repos.repositories(), nil, zap.NewNop())

		repos.lines.On("GetByCompanyID", mock.Anything, int64(99)).Return([]*domain.LineRow{}, nil)

		lines, err := uc.GetLinesByCompanyID(context.Background(), 99)

		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("invalid id", func(t *testing.T) {
		repos := newMockRepos()
		uc := usecase.NewLineUseCase(repos.repositories(), nil, zap.NewNop())

		_, err := uc.GetLinesByCompanyID(context.Background(), 0)

		assert.ErrorIs(t, err, apperrors.ErrInvalidID)
		repos.lines.AssertNotCalled(t, "GetByCompanyID", mock.Anything, mock.Anything)
	})
}

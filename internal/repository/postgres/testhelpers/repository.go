package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/station-microservice/internal/domain/repository"
	"github.com/station-microservice/internal/repository/postgres"
	"go.uber.org/zap"
)

// ExcludedLineID - служебная линия в фикстурах
const ExcludedLineID int64 = 11328

// Repositories - набор репозиториев поверх тестовой базы
type Repositories struct {
	Stations   repository.StationRepository
	Lines      repository.LineRepository
	Companies  repository.CompanyRepository
	TrainTypes repository.TrainTypeRepository
}

// NewRepositoriesForTest creates all repositories with test database and logger
func NewRepositoriesForTest(db *sqlx.DB, logger *zap.Logger) Repositories {
	pgDB := postgres.NewDBForTest(db, logger)
	return Repositories{
		Stations:   postgres.NewStationRepository(pgDB, ExcludedLineID),
		Lines:      postgres.NewLineRepository(pgDB, ExcludedLineID),
		Companies:  postgres.NewCompanyRepository(pgDB),
		TrainTypes: postgres.NewTrainTypeRepository(pgDB, ExcludedLineID),
	}
}

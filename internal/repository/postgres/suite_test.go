package postgres_test

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/station-microservice/internal/repository/postgres/testhelpers"
)

// repositorySuite - общая подготовка базы для интеграционных тестов репозиториев
type repositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repos  testhelpers.Repositories
	ctx    context.Context
}

// SetupSuite runs once before all tests in the suite
func (s *repositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	// Apply migrations (skip if tables already exist)
	_ = testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")

	err := s.testDB.Cleanup(context.Background())
	s.Require().NoError(err, "Failed to cleanup test database")

	err = testhelpers.LoadFixtures(s.testDB.DB.DB, "testdata/fixtures", []string{"stations.sql"})
	s.Require().NoError(err, "Failed to load fixtures")

	s.repos = testhelpers.NewRepositoriesForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests in the suite
func (s *repositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *repositorySuite) SetupTest() {
	s.ctx = context.Background()
}

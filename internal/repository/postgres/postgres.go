package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	stderrors "errors"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/station-microservice/internal/config"
	"github.com/station-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type DB struct {
	*sqlx.DB
	logger       *zap.Logger
	queryTimeout time.Duration
}

func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
		zap.Duration("query_timeout", cfg.QueryTimeout),
	)

	return &DB{DB: db, logger: logger, queryTimeout: cfg.QueryTimeout}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing PostgreSQL connection")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// NewDBForTest creates a DB instance for testing with provided database and logger
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:           sqlxDB,
		logger:       logger,
		queryTimeout: 10 * time.Second,
	}
}

// store - общая часть всех репозиториев: пул, логгер, таймаут запроса
// и служебная линия, исключаемая из выборок
type store struct {
	db             *sqlx.DB
	logger         *zap.Logger
	queryTimeout   time.Duration
	excludedLineID int64
}

func newStore(db *DB, excludedLineID int64) store {
	return store{
		db:             db.DB,
		logger:         db.logger,
		queryTimeout:   db.queryTimeout,
		excludedLineID: excludedLineID,
	}
}

func (s store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// selectRows выполняет запрос и сканирует все строки в dest
func (s store) selectRows(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.SelectContext(ctx, dest, query, args...); err != nil {
		s.logger.Error("Query failed", zap.String("op", op), zap.Error(err))
		return classifyError(err)
	}
	return nil
}

// getRow сканирует одну строку; found=false, если строки нет
func (s store) getRow(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.db.GetContext(ctx, dest, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		s.logger.Error("Query failed", zap.String("op", op), zap.Error(err))
		return false, classifyError(err)
	}
	return true, nil
}

// classifyError разделяет недоступность хранилища и прочие ошибки драйвера
func classifyError(err error) error {
	if stderrors.Is(err, context.Canceled) {
		return err
	}
	if isConnectivityError(err) {
		return errors.ErrStoreUnavailable.Wrap(err)
	}
	return errors.ErrDatabaseError.Wrap(err)
}

func isConnectivityError(err error) bool {
	if stderrors.Is(err, driver.ErrBadConn) ||
		stderrors.Is(err, sql.ErrConnDone) ||
		stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if stderrors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return true
	}

	return pgconn.Timeout(err)
}

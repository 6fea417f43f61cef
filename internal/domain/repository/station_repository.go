package repository

import (
	"context"

	"github.com/station-microservice/internal/domain"
)

// StationRepository определяет выборки строк станций.
// Отсутствие строки - это nil без ошибки, а не ErrNotFound.
type StationRepository interface {
	// FindByID возвращает станцию по station_cd
	FindByID(ctx context.Context, id int64) (*domain.StationRow, error)

	// GetByIDs возвращает станции по списку station_cd в порядке списка
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.StationRow, error)

	// FindByGroupID возвращает одну станцию группы
	FindByGroupID(ctx context.Context, groupID int64) (*domain.StationRow, error)

	// GetByGroupIDs возвращает все станции перечисленных групп
	GetByGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.StationRow, error)

	// GetByLineID возвращает станции линии в порядке следования
	GetByLineID(ctx context.Context, lineID int64) ([]*domain.StationRow, error)

	// GetByName ищет станции по подстроке в любом из названий
	GetByName(ctx context.Context, name string, limit int) ([]*domain.StationRow, error)

	// GetByCoordinates возвращает ближайшие станции, по одной на группу
	GetByCoordinates(ctx context.Context, lat, lon float64, limit int) ([]*domain.StationRow, error)

	// FindRandom возвращает случайную станцию
	FindRandom(ctx context.Context) (*domain.StationRow, error)

	// GetByLineGroupID возвращает станции вида поезда в порядке членства.
	// excludePass отбрасывает станции, которые поезд проходит без остановки.
	GetByLineGroupID(ctx context.Context, lineGroupID int64, excludePass bool) ([]*domain.StationRow, error)
}

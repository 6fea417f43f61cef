package repository

import (
	"context"

	"github.com/station-microservice/internal/domain"
)

// TrainTypeRepository определяет выборки видов поездов
type TrainTypeRepository interface {
	// GetByStationIDs возвращает членства станций в видах поездов
	GetByStationIDs(ctx context.Context, stationIDs []int64) ([]*domain.TrainTypeRow, error)

	// FindByLineGroupID возвращает первое членство группы линий
	FindByLineGroupID(ctx context.Context, lineGroupID int64) (*domain.TrainTypeRow, error)

	// GetWithLinesByLineGroupIDs возвращает виды поездов на каждой линии
	// сквозного сообщения вместе с линией и компанией
	GetWithLinesByLineGroupIDs(ctx context.Context, lineGroupIDs []int64) ([]*domain.TrainTypeWithLineRow, error)
}

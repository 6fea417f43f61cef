package repository

import (
	"context"

	"github.com/station-microservice/internal/domain"
)

// LineRepository определяет выборки строк линий
type LineRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.LineRow, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.LineRow, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]*domain.LineRow, error)

	// GetByStationGroupID возвращает линии, обслуживающие группу станций
	GetByStationGroupID(ctx context.Context, groupID int64) ([]*domain.LineRow, error)

	// GetByStationGroupIDs - то же для нескольких групп; каждая строка
	// помечена группой (StationGroupID), к которой относится
	GetByStationGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.LineRow, error)

	// GetBySrcAndDstGroupID возвращает линии, общие для двух групп станций
	GetBySrcAndDstGroupID(ctx context.Context, srcGroupID, dstGroupID int64) ([]*domain.LineRow, error)
}

package postgres

import (
	"context"

	"github.com/lib/pq"
	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
)

const lineColumns = `
	l.line_cd, l.company_cd,
	l.line_name, l.line_name_k, l.line_name_h, l.line_name_r, l.line_name_zh, l.line_name_ko,
	l.line_color_c, l.line_color_t,
	l.line_symbol_primary, l.line_symbol_secondary, l.line_symbol_extra,
	l.line_symbol_primary_color, l.line_symbol_secondary_color, l.line_symbol_extra_color,
	l.line_type, l.lon, l.lat, l.zoom, l.e_sort`

type lineRepository struct {
	store
}

func NewLineRepository(db *DB, excludedLineID int64) repository.LineRepository {
	return &lineRepository{store: newStore(db, excludedLineID)}
}

func (r *lineRepository) FindByID(ctx context.Context, id int64) (*domain.LineRow, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM lines l
		WHERE l.line_cd = $1
		  AND l.e_status = 0
		  AND l.line_cd <> $2
	`

	var row domain.LineRow
	found, err := r.getRow(ctx, "line.FindByID", &row, query, id, r.excludedLineID)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

func (r *lineRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.LineRow, error) {
	if len(ids) == 0 {
		return []*domain.LineRow{}, nil
	}

	query := `
		SELECT ` + lineColumns + `
		FROM lines l
		WHERE l.line_cd = ANY($1)
		  AND l.e_status = 0
		  AND l.line_cd <> $2
		ORDER BY l.e_sort, l.line_cd
	`

	var rows []*domain.LineRow
	if err := r.selectRows(ctx, "line.GetByIDs", &rows, query, pq.Array(ids), r.excludedLineID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *lineRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]*domain.LineRow, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM lines l
		WHERE l.company_cd = $1
		  AND l.e_status = 0
		  AND l.line_cd <> $2
		ORDER BY l.e_sort, l.line_cd
	`

	var rows []*domain.LineRow
	if err := r.selectRows(ctx, "line.GetByCompanyID", &rows, query, companyID, r.excludedLineID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *lineRepository) GetByStationGroupID(ctx context.Context, groupID int64) ([]*domain.LineRow, error) {
	return r.GetByStationGroupIDs(ctx, []int64{groupID})
}

func (r *lineRepository) GetByStationGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.LineRow, error) {
	if len(groupIDs) == 0 {
		return []*domain.LineRow{}, nil
	}

	query := `
		SELECT DISTINCT ON (s.station_g_cd, l.line_cd) ` + lineColumns + `, s.station_g_cd
		FROM stations s
		JOIN lines l ON l.line_cd = s.line_cd
		WHERE s.station_g_cd = ANY($1)
		  AND s.e_status = 0
		  AND l.e_status = 0
		  AND l.line_cd <> $2
		ORDER BY s.station_g_cd, l.line_cd
	`

	var rows []*domain.LineRow
	if err := r.selectRows(ctx, "line.GetByStationGroupIDs", &rows, query, pq.Array(groupIDs), r.excludedLineID); err != nil {
		return nil, err
	}
	sortLineRows(rows)
	return rows, nil
}

func (r *lineRepository) GetBySrcAndDstGroupID(ctx context.Context, srcGroupID, dstGroupID int64) ([]*domain.LineRow, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM lines l
		WHERE l.e_status = 0
		  AND l.line_cd <> $3
		  AND EXISTS (
		      SELECT 1 FROM stations s
		      WHERE s.line_cd = l.line_cd AND s.station_g_cd = $1 AND s.e_status = 0
		  )
		  AND EXISTS (
		      SELECT 1 FROM stations s
		      WHERE s.line_cd = l.line_cd AND s.station_g_cd = $2 AND s.e_status = 0
		  )
		ORDER BY l.e_sort, l.line_cd
	`

	var rows []*domain.LineRow
	if err := r.selectRows(ctx, "line.GetBySrcAndDstGroupID", &rows, query, srcGroupID, dstGroupID, r.excludedLineID); err != nil {
		return nil, err
	}
	return rows, nil
}

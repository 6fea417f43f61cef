package postgres

import (
	"context"

	"github.com/lib/pq"
	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
)

const typeColumns = `
	t.type_cd, t.type_name, t.type_name_k, t.type_name_r, t.type_name_zh, t.type_name_ko,
	t.color, t.direction`

type trainTypeRepository struct {
	store
}

func NewTrainTypeRepository(db *DB, excludedLineID int64) repository.TrainTypeRepository {
	return &trainTypeRepository{store: newStore(db, excludedLineID)}
}

func (r *trainTypeRepository) GetByStationIDs(ctx context.Context, stationIDs []int64) ([]*domain.TrainTypeRow, error) {
	if len(stationIDs) == 0 {
		return []*domain.TrainTypeRow{}, nil
	}

	query := `
		SELECT sst.id, sst.station_cd, sst.line_group_cd, sst.pass, s.line_cd, ` + typeColumns + `
		FROM station_station_types sst
		JOIN stations s ON s.station_cd = sst.station_cd
		JOIN types t ON t.type_cd = sst.type_cd
		WHERE sst.station_cd = ANY($1)
		  AND s.e_status = 0
		  AND s.line_cd <> $2
		ORDER BY sst.station_cd, sst.id
	`

	var rows []*domain.TrainTypeRow
	if err := r.selectRows(ctx, "trainType.GetByStationIDs", &rows, query, pq.Array(stationIDs), r.excludedLineID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *trainTypeRepository) FindByLineGroupID(ctx context.Context, lineGroupID int64) (*domain.TrainTypeRow, error) {
	query := `
		SELECT sst.id, sst.station_cd, sst.line_group_cd, sst.pass, s.line_cd, ` + typeColumns + `
		FROM station_station_types sst
		JOIN stations s ON s.station_cd = sst.station_cd
		JOIN types t ON t.type_cd = sst.type_cd
		WHERE sst.line_group_cd = $1
		  AND s.e_status = 0
		  AND s.line_cd <> $2
		ORDER BY sst.id
		LIMIT 1
	`

	var row domain.TrainTypeRow
	found, err := r.getRow(ctx, "trainType.FindByLineGroupID", &row, query, lineGroupID, r.excludedLineID)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

func (r *trainTypeRepository) GetWithLinesByLineGroupIDs(ctx context.Context, lineGroupIDs []int64) ([]*domain.TrainTypeWithLineRow, error) {
	if len(lineGroupIDs) == 0 {
		return []*domain.TrainTypeWithLineRow{}, nil
	}

	// одна строка на вид поезда в пределах линии, в порядке первого членства
	query := `
		WITH members AS (
			SELECT sst.line_group_cd, s.line_cd, sst.type_cd, MIN(sst.id) AS id
			FROM station_station_types sst
			JOIN stations s ON s.station_cd = sst.station_cd
			WHERE sst.line_group_cd = ANY($1)
			  AND s.e_status = 0
			  AND s.line_cd <> $2
			GROUP BY sst.line_group_cd, s.line_cd, sst.type_cd
		)
		SELECT m.id, m.line_group_cd, ` + typeColumns + `,
			c.company_name, c.company_name_r, c.company_name_en,
			` + lineColumns + `
		FROM members m
		JOIN station_station_types sst ON sst.id = m.id
		JOIN types t ON t.type_cd = sst.type_cd
		JOIN lines l ON l.line_cd = m.line_cd
		JOIN companies c ON c.company_cd = l.company_cd
		WHERE l.e_status = 0
		ORDER BY m.line_group_cd, m.id
	`

	var rows []*domain.TrainTypeWithLineRow
	if err := r.selectRows(ctx, "trainType.GetWithLinesByLineGroupIDs", &rows, query, pq.Array(lineGroupIDs), r.excludedLineID); err != nil {
		return nil, err
	}
	return rows, nil
}

package postgres

import (
	"context"
	"strings"

	"github.com/lib/pq"
	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
)

const stationColumns = `
	s.station_cd, s.station_g_cd,
	s.station_name, s.station_name_k, s.station_name_r, s.station_name_zh, s.station_name_ko,
	s.primary_station_number, s.secondary_station_number, s.extra_station_number,
	s.three_letter_code, s.line_cd, s.pref_cd, s.post, s.address,
	s.lon, s.lat, s.open_ymd, s.close_ymd, s.e_sort`

type stationRepository struct {
	store
}

func NewStationRepository(db *DB, excludedLineID int64) repository.StationRepository {
	return &stationRepository{store: newStore(db, excludedLineID)}
}

func (r *stationRepository) FindByID(ctx context.Context, id int64) (*domain.StationRow, error) {
	query := `
		SELECT ` + stationColumns + `
		FROM stations s
		WHERE s.station_cd = $1
		  AND s.e_status = 0
		  AND s.line_cd <> $2
	`

	var row domain.StationRow
	found, err := r.getRow(ctx, "station.FindByID", &row, query, id, r.excludedLineID)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

func (r *stationRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.StationRow, error) {
	if len(ids) == 0 {
		return []*domain.StationRow{}, nil
	}

	// порядок результата совпадает с порядком ids
	query := `
		SELECT ` + stationColumns + `
		FROM stations s
		JOIN unnest($1::bigint[]) WITH ORDINALITY AS ids(station_cd, ord)
		  ON ids.station_cd = s.station_cd
		WHERE s.e_status = 0
		  AND s.line_cd <> $2
		ORDER BY ids.ord
	`

	var rows []*domain.StationRow
	if err := r.selectRows(ctx, "station.GetByIDs", &rows, query, pq.Array(ids), r.excludedLineID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *stationRepository) FindByGroupID(ctx context.Context, groupID int64) (*domain.StationRow, error) {
	query := `
		SELECT ` + stationColumns + `
		FROM stations s
		WHERE s.station_g_cd = $1
		  AND s.e_status = 0
		  AND s.line_cd <> $2
		ORDER BY s.e_sort, s.station_cd
		LIMIT 1
	`

	var row domain.StationRow
	found, err := r.getRow(ctx, "station.FindByGroupID", &row, query, groupID, r.excludedLineID)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

func (r *stationRepository) GetByGroupIDs(ctx context.Context, groupIDs []int64) ([]*domain.StationRow, error) {
	if len(groupIDs) == 0 {
		return []*domain.StationRow{}, nil
	}

	query := `
		SELECT ` + stationColumns + `
		FROM stations s
		WHERE s.station_g_cd = ANY($1)
		  AND s.e_status = 0
		  AND s.line_cd <> $2
		ORDER BY s.station_g_cd, s.e_sort, s.station_cd
	`

	var rows []*domain.StationRow
	if err := r.selectRows(ctx, "station.GetByGroupIDs", &rows, query, pq.Array(groupIDs), r.excludedLineID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *stationRepository) GetByLineID(ctx context.Context, lineID int64) ([]*domain.StationRow, error) {
	query := `
		SELECT ` + stationColumns + `
		FROM stations s
		WHERE s.line_cd = $1
		  AND s.e_status = 0
		  AND s.line_cd <> $2
		ORDER BY s.e_sort, s.station_cd
	`

	var rows []*domain.StationRow
	if err := r.selectRows(ctx, "station.GetByLineID", &rows, query, lineID, r.excludedLineID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *stationRepository) GetByName(ctx context.Context, name string, limit int) ([]*domain.StationRow, error) {
	query := `
		SELECT ` + stationColumns + `
		FROM stations s
		WHERE (
		       s.station_name ILIKE $1
		    OR s.station_name_k ILIKE $1
		    OR s.station_name_r ILIKE $1
		    OR s.station_name_zh ILIKE $1
		    OR s.station_name_ko ILIKE $1
		  )
		  AND s.e_status = 0
		  AND s.line_cd <> $2
		ORDER BY s.e_sort, s.station_cd
		LIMIT $3
	`

	pattern := "%" + escapeLike(name) + "%"

	var rows []*domain.StationRow
	if err := r.selectRows(ctx, "station.GetByName", &rows, query, pattern, r.excludedLineID, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *stationRepository) GetByCoordinates(ctx context.Context, lat, lon float64, limit int) ([]*domain.StationRow, error) {
	// сферический закон косинусов; LEAST/GREATEST держат аргумент acos в [-1, 1]
	query := `
		WITH measured AS (
			SELECT ` + stationColumns + `,
				6371 * acos(GREATEST(-1, LEAST(1,
					cos(radians($1)) * cos(radians(s.lat)) * cos(radians(s.lon) - radians($2))
					+ sin(radians($1)) * sin(radians(s.lat))
				))) AS distance
			FROM stations s
			WHERE s.e_status = 0
			  AND s.line_cd <> $3
		),
		representatives AS (
			SELECT DISTINCT ON (station_g_cd) *
			FROM measured
			ORDER BY station_g_cd, distance, e_sort, station_cd
		)
		SELECT *
		FROM representatives
		ORDER BY distance, station_cd
		LIMIT $4
	`

	var rows []*domain.StationRow
	if err := r.selectRows(ctx, "station.GetByCoordinates", &rows, query, lat, lon, r.excludedLineID, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *stationRepository) FindRandom(ctx context.Context) (*domain.StationRow, error) {
	query := `
		SELECT ` + stationColumns + `
		FROM stations s
		WHERE s.e_status = 0
		  AND s.line_cd <> $1
		ORDER BY random()
		LIMIT 1
	`

	var row domain.StationRow
	found, err := r.getRow(ctx, "station.FindRandom", &row, query, r.excludedLineID)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

func (r *stationRepository) GetByLineGroupID(ctx context.Context, lineGroupID int64, excludePass bool) ([]*domain.StationRow, error) {
	query := `
		SELECT ` + stationColumns + `, sst.pass
		FROM station_station_types sst
		JOIN stations s ON s.station_cd = sst.station_cd
		WHERE sst.line_group_cd = $1
		  AND s.e_status = 0
		  AND s.line_cd <> $2
		  AND (NOT $3 OR sst.pass <> 1)
		ORDER BY sst.id
	`

	var rows []*domain.StationRow
	if err := r.selectRows(ctx, "station.GetByLineGroupID", &rows, query, lineGroupID, r.excludedLineID, excludePass); err != nil {
		return nil, err
	}
	return rows, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

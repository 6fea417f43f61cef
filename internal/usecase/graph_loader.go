package usecase

import (
	"context"

	"github.com/station-microservice/internal/assembler"
	"github.com/station-microservice/internal/domain"
	"github.com/station-microservice/internal/domain/repository"
	"github.com/station-microservice/internal/naming"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Repositories - хранилища, из которых собирается граф ответа
type Repositories struct {
	Stations   repository.StationRepository
	Lines      repository.LineRepository
	Companies  repository.CompanyRepository
	TrainTypes repository.TrainTypeRepository
}

// graphLoader загружает зависимые строки и собирает из них станции.
// Этапы идут последовательно, запросы внутри этапа - параллельно.
type graphLoader struct {
	repos    Repositories
	composer *naming.Composer
	logger   *zap.Logger
}

type stationOptions struct {
	// trainTypes - загрузить виды поездов, останавливающихся на станции
	trainTypes bool
	// transfers - указать для каждой линии станцию пересадки из той же группы
	transfers bool
}

func (g *graphLoader) linesByGroup(ctx context.Context, scope *requestScope, groupIDs []int64) (map[int64][]*domain.LineRow, error) {
	return scope.groupLines.loadMany(ctx, groupIDs, func(ctx context.Context, missing []int64) (map[int64][]*domain.LineRow, error) {
		rows, err := g.repos.Lines.GetByStationGroupIDs(ctx, missing)
		if err != nil {
			return nil, err
		}

		result := make(map[int64][]*domain.LineRow, len(missing))
		for _, id := range missing {
			result[id] = []*domain.LineRow{}
		}
		for _, row := range rows {
			if row.StationGroupID == nil {
				continue
			}
			result[*row.StationGroupID] = append(result[*row.StationGroupID], row)
		}
		return result, nil
	})
}

func (g *graphLoader) companies(ctx context.Context, scope *requestScope, ids []int64) (map[int64]*domain.CompanyRow, error) {
	return scope.companies.loadMany(ctx, ids, func(ctx context.Context, missing []int64) (map[int64]*domain.CompanyRow, error) {
		rows, err := g.repos.Companies.GetByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}

		result := make(map[int64]*domain.CompanyRow, len(rows))
		for _, row := range rows {
			result[row.ID] = row
		}
		return result, nil
	})
}

func (g *graphLoader) throughLines(ctx context.Context, scope *requestScope, lineGroupIDs []int64) (map[int64][]*domain.TrainTypeWithLineRow, error) {
	return scope.throughLines.loadMany(ctx, lineGroupIDs, func(ctx context.Context, missing []int64) (map[int64][]*domain.TrainTypeWithLineRow, error) {
		rows, err := g.repos.TrainTypes.GetWithLinesByLineGroupIDs(ctx, missing)
		if err != nil {
			return nil, err
		}

		result := make(map[int64][]*domain.TrainTypeWithLineRow, len(missing))
		for _, id := range missing {
			result[id] = []*domain.TrainTypeWithLineRow{}
		}
		for _, row := range rows {
			result[row.LineGroupID] = append(result[row.LineGroupID], row)
		}
		return result, nil
	})
}

// stations собирает станции из первичных строк:
// линии групп и виды поездов -> компании и линии сквозного сообщения -> сборка
func (g *graphLoader) stations(ctx context.Context, scope *requestScope, rows []*domain.StationRow, opts stationOptions) ([]*domain.Station, error) {
	if len(rows) == 0 {
		return []*domain.Station{}, nil
	}

	groupIDs := uniqueIDs(rows, func(r *domain.StationRow) int64 { return r.GroupID })
	stationIDs := uniqueIDs(rows, func(r *domain.StationRow) int64 { return r.ID })

	var (
		groupLines   map[int64][]*domain.LineRow
		trainTypes   []*domain.TrainTypeRow
		groupMembers []*domain.StationRow
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		groupLines, err = g.linesByGroup(egCtx, scope, groupIDs)
		return err
	})
	if opts.trainTypes {
		eg.Go(func() error {
			var err error
			trainTypes, err = g.repos.TrainTypes.GetByStationIDs(egCtx, stationIDs)
			return err
		})
	}
	if opts.transfers {
		eg.Go(func() error {
			var err error
			groupMembers, err = g.repos.Stations.GetByGroupIDs(egCtx, groupIDs)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	lineCompanyIDs := make([]int64, 0)
	for _, lines := range groupLines {
		for _, l := range lines {
			lineCompanyIDs = append(lineCompanyIDs, l.CompanyID)
		}
	}
	lineGroupIDs := uniqueIDs(trainTypes, func(r *domain.TrainTypeRow) int64 { return r.LineGroupID })

	var through map[int64][]*domain.TrainTypeWithLineRow

	eg, egCtx = errgroup.WithContext(ctx)
	eg.Go(func() error {
		_, err := g.companies(egCtx, scope, lineCompanyIDs)
		return err
	})
	eg.Go(func() error {
		var err error
		through, err = g.throughLines(egCtx, scope, lineGroupIDs)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// компании линий сквозного сообщения; уже загруженные берутся из кеша запроса
	companyIDs := lineCompanyIDs
	for _, tts := range through {
		for _, tt := range tts {
			companyIDs = append(companyIDs, tt.CompanyID)
		}
	}
	companyMap, err := g.companies(ctx, scope, companyIDs)
	if err != nil {
		return nil, err
	}
	companies := companyValues(companyMap)

	result := make([]*domain.Station, 0, len(rows))
	for _, row := range rows {
		r := *row
		r.Lines = groupLineValues(groupLines[row.GroupID], groupMembers, opts.transfers)

		var stationTrainTypes []*domain.TrainType
		for _, tt := range trainTypes {
			if tt.StationID == row.ID {
				stationTrainTypes = append(stationTrainTypes, g.trainType(tt, through[tt.LineGroupID], companies))
			}
		}

		result = append(result, assembler.Station(&r, companies, stationTrainTypes))
	}

	return result, nil
}

// trainType собирает вид поезда с составным названием, линиями
// сквозного сообщения и полным списком AllTrainTypes
func (g *graphLoader) trainType(row *domain.TrainTypeRow, through []*domain.TrainTypeWithLineRow, companies []*domain.CompanyRow) *domain.TrainType {
	tt := assembler.TrainType(row, nil, throughServiceLines(through, companies))
	tt.Name, tt.NameR = g.composer.Compose(row, through)
	tt.AllTrainTypes = assembler.TrainTypeMinimums(through, companies)
	return tt
}

// throughServiceLines - линии сквозного сообщения без повторов, в порядке следования
func throughServiceLines(through []*domain.TrainTypeWithLineRow, companies []*domain.CompanyRow) []*domain.Line {
	lines := make([]*domain.Line, 0, len(through))
	seen := make(map[int64]struct{}, len(through))
	for _, row := range through {
		if _, ok := seen[row.LineRow.ID]; ok {
			continue
		}
		seen[row.LineRow.ID] = struct{}{}

		lineRow := row.LineRow
		lines = append(lines, assembler.Line(&lineRow, assembler.FindCompany(companies, lineRow.CompanyID)))
	}
	return lines
}

// groupLineValues копирует линии группы; при withTransfers каждой линии
// назначается станция той же группы на этой линии (без собственных пересадок)
func groupLineValues(lines []*domain.LineRow, members []*domain.StationRow, withTransfers bool) []domain.LineRow {
	result := make([]domain.LineRow, 0, len(lines))
	for _, l := range lines {
		lr := *l
		lr.TransferStation = nil

		if withTransfers && l.StationGroupID != nil {
			for _, m := range members {
				if m.GroupID != *l.StationGroupID || m.LineID != l.ID {
					continue
				}
				transfer := *m
				transfer.Lines = groupLineValues(lines, nil, false)
				lr.TransferStation = &transfer
				break
			}
		}

		result = append(result, lr)
	}
	return result
}

func uniqueIDs[T any](items []T, id func(T) int64) []int64 {
	result := make([]int64, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		v := id(item)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

func companyValues(m map[int64]*domain.CompanyRow) []*domain.CompanyRow {
	result := make([]*domain.CompanyRow, 0, len(m))
	for _, c := range m {
		result = append(result, c)
	}
	return result
}

package assembler

import "github.com/station-microservice/internal/domain"

// TrainType собирает вид поезда с его станциями и линиями.
// Названия берутся из строки как есть; составное название и AllTrainTypes
// заполняет вызывающий код.
func TrainType(row *domain.TrainTypeRow, stations []*domain.Station, lines []*domain.Line) *domain.TrainType {
	if row == nil {
		return nil
	}
	if stations == nil {
		stations = []*domain.Station{}
	}
	if lines == nil {
		lines = []*domain.Line{}
	}

	// ID - код вида поезда, а не строка членства
	return &domain.TrainType{
		ID:            row.TypeID,
		TypeID:        row.TypeID,
		GroupID:       row.LineGroupID,
		Name:          row.Name,
		NameK:         row.NameK,
		NameR:         row.NameR,
		NameZh:        row.NameZh,
		NameKo:        row.NameKo,
		Color:         row.Color,
		Direction:     domain.TrainDirectionFromCode(row.Direction),
		Stations:      stations,
		Lines:         lines,
		AllTrainTypes: []domain.TrainTypeMinimum{},
	}
}

// TrainTypeMinimum - вид поезда на одной линии сквозного сообщения вместе с линией
func TrainTypeMinimum(row *domain.TrainTypeWithLineRow, company *domain.CompanyRow) domain.TrainTypeMinimum {
	if row == nil {
		return domain.TrainTypeMinimum{}
	}
	return domain.TrainTypeMinimum{
		ID:      row.TypeID,
		TypeID:  row.TypeID,
		GroupID: row.LineGroupID,
		Name:    row.TypeName,
		NameK:   row.TypeNameK,
		NameR:   row.TypeNameR,
		NameZh:  row.TypeNameZh,
		NameKo:  row.TypeNameKo,
		Color:   row.Color,
		Line:    assembleLine(&row.LineRow, company, depthTransfer),
	}
}

// TrainTypeMinimums преобразует весь список сквозного сообщения без фильтрации
func TrainTypeMinimums(rows []*domain.TrainTypeWithLineRow, companies []*domain.CompanyRow) []domain.TrainTypeMinimum {
	result := make([]domain.TrainTypeMinimum, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		result = append(result, TrainTypeMinimum(row, FindCompany(companies, row.CompanyID)))
	}
	return result
}

package assembler

import (
	"fmt"

	"github.com/station-microservice/internal/domain"
)

// Station собирает станцию: условие остановки, номера станции по текущей
// линии, текущую линию и все линии группы с компаниями.
func Station(row *domain.StationRow, companies []*domain.CompanyRow, trainTypes []*domain.TrainType) *domain.Station {
	return assembleStation(row, companies, trainTypes, depthTop)
}

func assembleStation(row *domain.StationRow, companies []*domain.CompanyRow, trainTypes []*domain.TrainType, depth int) *domain.Station {
	if row == nil {
		return nil
	}

	currentRow := currentLineRow(row)

	station := &domain.Station{
		ID:              row.ID,
		GroupID:         row.GroupID,
		Name:            row.Name,
		NameK:           row.NameK,
		NameR:           row.NameR,
		NameZh:          row.NameZh,
		NameKo:          row.NameKo,
		ThreeLetterCode: row.ThreeLetterCode,
		Latitude:        row.Lat,
		Longitude:       row.Lon,
		Address:         row.Address,
		PostalCode:      row.PostalCode,
		PrefID:          row.PrefID,
		OpenYmd:         row.OpenYmd,
		Distance:        row.Distance,
		Pass:            row.Pass == 1,
		StopCondition:   domain.StopConditionFromPass(row.Pass),
		StationNumbers:  StationNumbers(row, currentRow),
		Lines:           make([]*domain.Line, 0, len(row.Lines)),
		TrainTypes:      trainTypes,
	}
	if station.TrainTypes == nil {
		station.TrainTypes = []*domain.TrainType{}
	}

	if currentRow != nil {
		station.CurrentLine = assembleLine(currentRow, FindCompany(companies, currentRow.CompanyID), depth)
	}
	for i := range row.Lines {
		l := &row.Lines[i]
		station.Lines = append(station.Lines, assembleLine(l, FindCompany(companies, l.CompanyID), depth))
	}

	return station
}

// currentLineRow - линия, к которой относится строка станции: явно заданная
// CurrentLine либо линия из Lines с тем же line_cd
func currentLineRow(row *domain.StationRow) *domain.LineRow {
	if row.CurrentLine != nil {
		return row.CurrentLine
	}
	for i := range row.Lines {
		if row.Lines[i].ID == row.LineID {
			return &row.Lines[i]
		}
	}
	return nil
}

// StationNumbers строит номера станции из трёх слотов. Слот попадает
// в результат, только если у него есть и номер, и символ линии.
// Без текущей линии список пуст.
func StationNumbers(row *domain.StationRow, current *domain.LineRow) []domain.StationNumber {
	numbers := make([]domain.StationNumber, 0, 3)
	if row == nil || current == nil {
		return numbers
	}

	raw := [3]string{row.PrimaryStationNumber, row.SecondaryStationNumber, row.ExtraStationNumber}
	for i, slot := range symbolSlots(current) {
		if raw[i] == "" || slot.glyph == "" {
			continue
		}
		numbers = append(numbers, domain.StationNumber{
			LineSymbol:      slot.glyph,
			LineSymbolColor: slot.color,
			StationNumber:   composeStationNumber(slot.glyph, raw[i]),
		})
	}
	return numbers
}

// composeStationNumber - "{символ}-{номер}"; "0-1" (Саппоро) пишется как "01"
func composeStationNumber(glyph, number string) string {
	composed := fmt.Sprintf("%s-%s", glyph, number)
	if composed == "0-1" {
		return "01"
	}
	return composed
}

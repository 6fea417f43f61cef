// Package assembler собирает вложенный граф ответа из плоских строк хранилища.
// Все функции чистые: nil на входе даёт nil на выходе, паники нет ни для одной
// формы строки.
package assembler

import "github.com/station-microservice/internal/domain"

// Глубина вложенности: линия верхнего уровня может нести станцию пересадки,
// линии этой станции - уже нет.
const (
	depthTop = iota
	depthTransfer
)

// Company преобразует строку компании
func Company(row *domain.CompanyRow) *domain.Company {
	if row == nil {
		return nil
	}
	return &domain.Company{
		ID:          row.ID,
		RailroadID:  row.RailroadID,
		Name:        row.Name,
		NameK:       row.NameK,
		NameH:       row.NameH,
		NameR:       row.NameR,
		NameEn:      row.NameEn,
		URL:         row.URL,
		CompanyType: row.CompanyType,
	}
}

// Line преобразует строку линии; company встраивается, только если передана
func Line(row *domain.LineRow, company *domain.CompanyRow) *domain.Line {
	return assembleLine(row, company, depthTop)
}

func assembleLine(row *domain.LineRow, company *domain.CompanyRow, depth int) *domain.Line {
	if row == nil {
		return nil
	}

	line := &domain.Line{
		ID:          row.ID,
		CompanyID:   row.CompanyID,
		Name:        row.Name,
		NameK:       row.NameK,
		NameH:       row.NameH,
		NameR:       row.NameR,
		NameZh:      row.NameZh,
		NameKo:      row.NameKo,
		ColorC:      row.ColorC,
		ColorT:      row.ColorT,
		LineSymbols: LineSymbols(row),
		LineType:    row.LineType,
		Latitude:    row.Lat,
		Longitude:   row.Lon,
		Zoom:        row.Zoom,
		Company:     Company(company),
	}

	if depth == depthTop && row.TransferStation != nil {
		line.TransferStation = assembleStation(row.TransferStation, nil, nil, depthTransfer)
	}

	return line
}

// LineSymbols возвращает символы линии; слоты с пустым символом пропускаются
func LineSymbols(row *domain.LineRow) []domain.LineSymbol {
	symbols := make([]domain.LineSymbol, 0, 3)
	for _, slot := range symbolSlots(row) {
		if slot.glyph == "" {
			continue
		}
		symbols = append(symbols, domain.LineSymbol{
			LineSymbol:      slot.glyph,
			LineSymbolColor: slot.color,
		})
	}
	return symbols
}

type symbolSlot struct {
	glyph string
	color string
}

// symbolSlots - три слота символов (primary, secondary, extra) с цветом,
// который при отсутствии собственного берётся из цвета линии
func symbolSlots(row *domain.LineRow) [3]symbolSlot {
	return [3]symbolSlot{
		{row.SymbolPrimary, colorOr(row.SymbolPrimaryColor, row.ColorC)},
		{row.SymbolSecondary, colorOr(row.SymbolSecondaryColor, row.ColorC)},
		{row.SymbolExtra, colorOr(row.SymbolExtraColor, row.ColorC)},
	}
}

func colorOr(color, fallback string) string {
	if color == "" {
		return fallback
	}
	return color
}

// FindCompany ищет компанию по company_cd
func FindCompany(companies []*domain.CompanyRow, id int64) *domain.CompanyRow {
	for _, c := range companies {
		if c != nil && c.ID == id {
			return c
		}
	}
	return nil
}

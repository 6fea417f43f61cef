// Package naming составляет отображаемые названия видов поездов сквозного
// сообщения (напр. "急行(東急東横線急行/副都心線急行)").
package naming

import (
	"regexp"
	"strings"

	"github.com/station-microservice/internal/domain"
)

// Composer составляет названия; набор компаний национальной сети
// приходит из конфигурации
type Composer struct {
	nationalRail map[int64]struct{}
}

func NewComposer(nationalRailCompanyIDs []int64) *Composer {
	set := make(map[int64]struct{}, len(nationalRailCompanyIDs))
	for _, id := range nationalRailCompanyIDs {
		set[id] = struct{}{}
	}
	return &Composer{nationalRail: set}
}

// segment - часть составного названия в двух локалях
type segment struct {
	name  string
	nameR string
}

// Compose возвращает название (name) и латинское название (nameR) вида
// поезда base с учётом всех линий его группы сквозного сообщения.
func (c *Composer) Compose(base *domain.TrainTypeRow, all []*domain.TrainTypeWithLineRow) (string, string) {
	if base == nil {
		return "", ""
	}

	others := make([]*domain.TrainTypeWithLineRow, 0, len(all))
	for _, tt := range all {
		if tt != nil && tt.LineRow.ID != base.LineID {
			others = append(others, tt)
		}
	}
	if len(others) == 0 {
		return base.Name, base.NameR
	}

	switch base.Direction {
	case domain.DirectionCodeBoth:
		return c.composeThrough(base, others)
	case domain.DirectionCodeInbound:
		return base.Name + "(上り)", base.NameR + "(Inbound)"
	case domain.DirectionCodeOutbound:
		return base.Name + "(下り)", base.NameR + "(Outbound)"
	default:
		return base.Name, base.NameR
	}
}

func (c *Composer) composeThrough(base *domain.TrainTypeRow, others []*domain.TrainTypeWithLineRow) (string, string) {
	allNational := c.isAllNationalRail(others)

	var segments []segment
	if isEveryTrainTypeSame(others) && !allNational {
		segments = lineSegments(others)
		name, nameR := join(segments)
		return base.Name + "(" + name + "直通)", base.NameR + "(" + nameR + " Through)"
	}

	allSameCompany := isAllSameCompany(others)
	for i, tt := range others {
		if i > 0 && others[i-1].CompanyID == tt.CompanyID {
			continue
		}

		nextSameCompany := i+1 < len(others) && others[i+1].CompanyID == tt.CompanyID
		if nextSameCompany && !allSameCompany && !allNational {
			segments = append(segments, segment{
				name:  StripParens(tt.CompanyName) + "線" + StripParens(tt.TypeName),
				nameR: StripParens(companyNameR(tt)) + " Line " + StripParens(tt.TypeNameR),
			})
			continue
		}

		segments = append(segments, segment{
			name:  StripParens(tt.LineRow.Name) + StripParens(tt.TypeName),
			nameR: StripParens(tt.LineRow.NameR) + " " + StripParens(tt.TypeNameR),
		})
	}

	name, nameR := join(segments)
	return base.Name + "(" + name + ")", base.NameR + "(" + nameR + ")"
}

// lineSegments - названия линий без скобок; соседние повторы схлопываются
func lineSegments(others []*domain.TrainTypeWithLineRow) []segment {
	segments := make([]segment, 0, len(others))
	for _, tt := range others {
		s := segment{
			name:  StripParens(tt.LineRow.Name),
			nameR: StripParens(tt.LineRow.NameR),
		}
		if n := len(segments); n > 0 && segments[n-1].name == s.name {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

func join(segments []segment) (string, string) {
	names := make([]string, len(segments))
	namesR := make([]string, len(segments))
	for i, s := range segments {
		names[i] = s.name
		namesR[i] = s.nameR
	}
	return strings.Join(names, "/"), strings.Join(namesR, "/")
}

func isEveryTrainTypeSame(others []*domain.TrainTypeWithLineRow) bool {
	for i := 1; i < len(others); i++ {
		if others[i].TypeID != others[i-1].TypeID {
			return false
		}
	}
	return true
}

func isAllSameCompany(others []*domain.TrainTypeWithLineRow) bool {
	for i := 1; i < len(others); i++ {
		if others[i].CompanyID != others[i-1].CompanyID {
			return false
		}
	}
	return true
}

func (c *Composer) isAllNationalRail(others []*domain.TrainTypeWithLineRow) bool {
	for _, tt := range others {
		if _, ok := c.nationalRail[tt.CompanyID]; !ok {
			return false
		}
	}
	return true
}

// companyNameR - английское название компании, иначе латинское
func companyNameR(tt *domain.TrainTypeWithLineRow) string {
	if tt.CompanyNameEn != "" {
		return tt.CompanyNameEn
	}
	return tt.CompanyNameR
}

var parensPattern = regexp.MustCompile(`\s*(\([^()]*\)|（[^（）]*）)`)

// StripParens удаляет фрагменты в круглых скобках, включая полноширинные
func StripParens(s string) string {
	return strings.TrimSpace(parensPattern.ReplaceAllString(s, ""))
}

package postgres

import (
	"sort"

	"github.com/station-microservice/internal/domain"
)

// sortLineRows упорядочивает линии внутри каждой группы станций по e_sort.
// DISTINCT ON требует сортировки по ключу, поэтому порядок выдачи
// восстанавливается после выборки.
func sortLineRows(rows []*domain.LineRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		gi, gj := groupOf(rows[i]), groupOf(rows[j])
		if gi != gj {
			return gi < gj
		}
		if rows[i].Sort != rows[j].Sort {
			return rows[i].Sort < rows[j].Sort
		}
		return rows[i].ID < rows[j].ID
	})
}

func groupOf(row *domain.LineRow) int64 {
	if row.StationGroupID == nil {
		return 0
	}
	return *row.StationGroupID
}

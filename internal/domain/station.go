package domain

// StopCondition - условие остановки вида поезда на станции
type StopCondition string

const (
	StopConditionAll         StopCondition = "ALL"
	StopConditionNot         StopCondition = "NOT"
	StopConditionPartial     StopCondition = "PARTIAL"
	StopConditionWeekday     StopCondition = "WEEKDAY"
	StopConditionHoliday     StopCondition = "HOLIDAY"
	StopConditionPartialStop StopCondition = "PARTIAL_STOP"
)

// StopConditionFromPass переводит числовой код pass в условие остановки.
// Неизвестные коды считаются остановкой всех поездов.
func StopConditionFromPass(pass int) StopCondition {
	switch pass {
	case 0:
		return StopConditionAll
	case 1:
		return StopConditionNot
	case 2:
		return StopConditionPartial
	case 3:
		return StopConditionWeekday
	case 4:
		return StopConditionHoliday
	case 5:
		return StopConditionPartialStop
	default:
		return StopConditionAll
	}
}

// StationNumber - номер станции в нумерации линии (например, "JY-01")
type StationNumber struct {
	LineSymbol      string `json:"line_symbol"`
	LineSymbolColor string `json:"line_symbol_color"`
	StationNumber   string `json:"station_number"`
}

type Station struct {
	ID              int64           `json:"id"`
	GroupID         int64           `json:"group_id"`
	Name            string          `json:"name"`
	NameK           string          `json:"name_k"`
	NameR           string          `json:"name_r"`
	NameZh          string          `json:"name_zh"`
	NameKo          string          `json:"name_ko"`
	ThreeLetterCode string          `json:"three_letter_code,omitempty"`
	Latitude        float64         `json:"latitude"`
	Longitude       float64         `json:"longitude"`
	Address         string          `json:"address"`
	PostalCode      string          `json:"postal_code"`
	PrefID          int             `json:"pref_id"`
	OpenYmd         string          `json:"open_ymd"`
	Distance        *float64        `json:"distance,omitempty"` // km
	Pass            bool            `json:"pass"`
	StopCondition   StopCondition   `json:"stop_condition"`
	StationNumbers  []StationNumber `json:"station_numbers"`
	CurrentLine     *Line           `json:"current_line,omitempty"`
	Lines           []*Line         `json:"lines"`
	TrainTypes      []*TrainType    `json:"train_types"`
}

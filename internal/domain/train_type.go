package domain

// TrainDirection - направление, в котором действует вид поезда
type TrainDirection string

const (
	TrainDirectionBoth     TrainDirection = "BOTH"
	TrainDirectionInbound  TrainDirection = "INBOUND"
	TrainDirectionOutbound TrainDirection = "OUTBOUND"
)

// Коды направления в station_station_types / types
const (
	DirectionCodeBoth     = 0
	DirectionCodeInbound  = 1
	DirectionCodeOutbound = 2
)

// TrainDirectionFromCode переводит код направления в перечисление.
func TrainDirectionFromCode(code int) TrainDirection {
	switch code {
	case DirectionCodeInbound:
		return TrainDirectionInbound
	case DirectionCodeOutbound:
		return TrainDirectionOutbound
	default:
		return TrainDirectionBoth
	}
}

// TrainType - вид поезда в рамках группы линий сквозного сообщения
type TrainType struct {
	ID            int64              `json:"id"`
	TypeID        int64              `json:"type_id"`
	GroupID       int64              `json:"group_id"`
	Name          string             `json:"name"`
	NameK         string             `json:"name_k"`
	NameR         string             `json:"name_r"`
	NameZh        string             `json:"name_zh"`
	NameKo        string             `json:"name_ko"`
	Color         string             `json:"color"`
	Direction     TrainDirection     `json:"direction"`
	Stations      []*Station         `json:"stations"`
	Lines         []*Line            `json:"lines"`
	AllTrainTypes []TrainTypeMinimum `json:"all_train_types"`
}

// TrainTypeMinimum - вид поезда на отдельной линии сквозного сообщения
type TrainTypeMinimum struct {
	ID      int64  `json:"id"`
	TypeID  int64  `json:"type_id"`
	GroupID int64  `json:"group_id"`
	Name    string `json:"name"`
	NameK   string `json:"name_k"`
	NameR   string `json:"name_r"`
	NameZh  string `json:"name_zh"`
	NameKo  string `json:"name_ko"`
	Color   string `json:"color"`
	Line    *Line  `json:"line"`
}

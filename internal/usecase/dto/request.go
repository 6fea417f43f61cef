package dto

// CoordinatesRequest - запрос ближайших станций
type CoordinatesRequest struct {
	Lat   float64 `json:"lat" query:"lat" validate:"min=-90,max=90"`
	Lon   float64 `json:"lon" query:"lon" validate:"min=-180,max=180"`
	Limit int     `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
}

// NameRequest - поиск станций по названию на любом языке
type NameRequest struct {
	Name  string `json:"name" query:"name" validate:"required,min=1,max=100"`
	Limit int    `json:"limit" query:"limit" validate:"omitempty,min=1,max=200"`
}

// IDsRequest - пакетный запрос по списку идентификаторов
type IDsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,max=100,dive,gt=0"`
}

// TrainTypeRequest - вид поезда по группе линий
type TrainTypeRequest struct {
	LineGroupID int64 `json:"line_group_id" validate:"gt=0"`
	ExcludePass bool  `json:"exclude_pass" query:"exclude_pass"`
}

// PathRequest - маршрут между двумя группами станций
type PathRequest struct {
	From int64 `json:"from" query:"from" validate:"gt=0"`
	To   int64 `json:"to" query:"to" validate:"gt=0"`
}

const (
	DefaultCoordinatesLimit = 1
	DefaultNameLimit        = 50
)

package domain

// Строки хранилища. Поля соответствуют колонкам таблиц один к одному,
// вложенные строки (db:"-") заполняет слой оркестрации, а не SQL.

// StationRow - строка таблицы stations
type StationRow struct {
	ID                     int64    `db:"station_cd"`
	GroupID                int64    `db:"station_g_cd"`
	Name                   string   `db:"station_name"`
	NameK                  string   `db:"station_name_k"`
	NameR                  string   `db:"station_name_r"`
	NameZh                 string   `db:"station_name_zh"`
	NameKo                 string   `db:"station_name_ko"`
	PrimaryStationNumber   string   `db:"primary_station_number"`
	SecondaryStationNumber string   `db:"secondary_station_number"`
	ExtraStationNumber     string   `db:"extra_station_number"`
	ThreeLetterCode        string   `db:"three_letter_code"`
	LineID                 int64    `db:"line_cd"`
	PrefID                 int      `db:"pref_cd"`
	PostalCode             string   `db:"post"`
	Address                string   `db:"address"`
	Lon                    float64  `db:"lon"`
	Lat                    float64  `db:"lat"`
	OpenYmd                string   `db:"open_ymd"`
	CloseYmd               string   `db:"close_ymd"`
	Sort                   int      `db:"e_sort"`
	Pass                   int      `db:"pass"`     // только для выборок через station_station_types
	Distance               *float64 `db:"distance"` // только для выборок по координатам

	CurrentLine *LineRow  `db:"-"`
	Lines       []LineRow `db:"-"`
}

// LineRow - строка таблицы lines
type LineRow struct {
	ID                       int64   `db:"line_cd"`
	CompanyID                int64   `db:"company_cd"`
	Name                     string  `db:"line_name"`
	NameK                    string  `db:"line_name_k"`
	NameH                    string  `db:"line_name_h"`
	NameR                    string  `db:"line_name_r"`
	NameZh                   string  `db:"line_name_zh"`
	NameKo                   string  `db:"line_name_ko"`
	ColorC                   string  `db:"line_color_c"`
	ColorT                   string  `db:"line_color_t"`
	SymbolPrimary            string  `db:"line_symbol_primary"`
	SymbolSecondary          string  `db:"line_symbol_secondary"`
	SymbolExtra              string  `db:"line_symbol_extra"`
	SymbolPrimaryColor       string  `db:"line_symbol_primary_color"`
	SymbolSecondaryColor     string  `db:"line_symbol_secondary_color"`
	SymbolExtraColor         string  `db:"line_symbol_extra_color"`
	LineType                 int     `db:"line_type"`
	Lon                      float64 `db:"lon"`
	Lat                      float64 `db:"lat"`
	Zoom                     int     `db:"zoom"`
	Sort                     int     `db:"e_sort"`
	StationGroupID           *int64  `db:"station_g_cd"` // заполняется выборками по группе станций

	TransferStation *StationRow `db:"-"`
}

// CompanyRow - строка таблицы companies
type CompanyRow struct {
	ID          int64  `db:"company_cd"`
	RailroadID  int64  `db:"rr_cd"`
	Name        string `db:"company_name"`
	NameK       string `db:"company_name_k"`
	NameH       string `db:"company_name_h"`
	NameR       string `db:"company_name_r"`
	NameEn      string `db:"company_name_en"`
	URL         string `db:"company_url"`
	CompanyType int    `db:"company_type"`
}

// TrainTypeRow - строка station_station_types, объединённая со справочником types
// и линией станции, к которой относится членство.
type TrainTypeRow struct {
	ID          int64  `db:"id"`
	StationID   int64  `db:"station_cd"`
	TypeID      int64  `db:"type_cd"`
	LineGroupID int64  `db:"line_group_cd"`
	Pass        int    `db:"pass"`
	Name        string `db:"type_name"`
	NameK       string `db:"type_name_k"`
	NameR       string `db:"type_name_r"`
	NameZh      string `db:"type_name_zh"`
	NameKo      string `db:"type_name_ko"`
	Color       string `db:"color"`
	Direction   int    `db:"direction"`
	LineID      int64  `db:"line_cd"`
}

// TrainTypeWithLineRow - вид поезда на одной из линий сквозного сообщения
// вместе с линией и названием компании-оператора.
type TrainTypeWithLineRow struct {
	ID            int64  `db:"id"`
	TypeID        int64  `db:"type_cd"`
	LineGroupID   int64  `db:"line_group_cd"`
	TypeName      string `db:"type_name"`
	TypeNameK     string `db:"type_name_k"`
	TypeNameR     string `db:"type_name_r"`
	TypeNameZh    string `db:"type_name_zh"`
	TypeNameKo    string `db:"type_name_ko"`
	Color         string `db:"color"`
	Direction     int    `db:"direction"`
	CompanyName   string `db:"company_name"`
	CompanyNameR  string `db:"company_name_r"`
	CompanyNameEn string `db:"company_name_en"`
	LineRow
}

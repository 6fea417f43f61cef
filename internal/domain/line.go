package domain

// LineSymbol - символ линии с цветом
type LineSymbol struct {
	LineSymbol      string `json:"line_symbol"`
	LineSymbolColor string `json:"line_symbol_color"`
}

type Line struct {
	ID          int64        `json:"id"`
	CompanyID   int64        `json:"company_id"`
	Name        string       `json:"name"`
	NameK       string       `json:"name_k"`
	NameH       string       `json:"name_h"`
	NameR       string       `json:"name_r"`
	NameZh      string       `json:"name_zh"`
	NameKo      string       `json:"name_ko"`
	ColorC      string       `json:"line_color_c"`
	ColorT      string       `json:"line_color_t"`
	LineSymbols []LineSymbol `json:"line_symbols"`
	LineType    int          `json:"line_type"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Zoom        int          `json:"zoom"`
	Company     *Company     `json:"company,omitempty"`

	// TransferStation - станция пересадки на эту линию. Её собственные линии
	// никогда не содержат следующей станции пересадки.
	TransferStation *Station `json:"transfer_station,omitempty"`
}

type Company struct {
	ID          int64  `json:"id"`
	RailroadID  int64  `json:"railroad_id"`
	Name        string `json:"name"`
	NameK       string `json:"name_k"`
	NameH       string `json:"name_h"`
	NameR       string `json:"name_r"`
	NameEn      string `json:"name_en"`
	URL         string `json:"url"`
	CompanyType int    `json:"company_type"`
}

package usecase_test

import (
	"github.com/station-microservice/internal/domain"
)

const (
	shibuyaGroupID int64 = 1130205

	yamanoteLineID   int64 = 11302
	toyokoLineID     int64 = 26001
	fukutoshinLineID int64 = 28010
)

func groupRef(id int64) *int64 {
	return &id
}

func yamanoteLine(groupID int64) *domain.LineRow {
	return &domain.LineRow{
		ID:                 yamanoteLineID,
		CompanyID:          2,
		Name:               "JR山手線",
		NameR:              "JR Yamanote Line",
		ColorC:             "#80C241",
		SymbolPrimary:      "JY",
		SymbolPrimaryColor: "#80C241",
		StationGroupID:     groupRef(groupID),
	}
}

func toyokoLine(groupID int64) *domain.LineRow {
	return &domain.LineRow{
		ID:                 toyokoLineID,
		CompanyID:          26,
		Name:               "東急東横線",
		NameR:              "Tokyu Toyoko Line",
		ColorC:             "#DA0442",
		SymbolPrimary:      "TY",
		SymbolPrimaryColor: "#DA0442",
		StationGroupID:     groupRef(groupID),
	}
}

func fukutoshinLine(groupID int64) *domain.LineRow {
	return &domain.LineRow{
		ID:                 fukutoshinLineID,
		CompanyID:          18,
		Name:               "東京メトロ副都心線",
		NameR:              "Tokyo Metro Fukutoshin Line",
		ColorC:             "#9C5E31",
		SymbolPrimary:      "F",
		SymbolPrimaryColor: "#9C5E31",
		StationGroupID:     groupRef(groupID),
	}
}

func companyRows() []*domain.CompanyRow {
	return []*domain.CompanyRow{
		{ID: 2, Name: "JR東日本", NameR: "JR East", NameEn: "East Japan Railway Company"},
		{ID: 18, Name: "東京メトロ", NameR: "Tokyo Metro", NameEn: "Tokyo Metro"},
		{ID: 26, Name: "東急電鉄", NameR: "Tokyu", NameEn: "Tokyu Corporation"},
	}
}

func shibuyaOnYamanote() *domain.StationRow {
	return &domain.StationRow{
		ID:                   shibuyaGroupID,
		GroupID:              shibuyaGroupID,
		Name:                 "渋谷",
		NameR:                "Shibuya",
		PrimaryStationNumber: "20",
		LineID:               yamanoteLineID,
		Lat:                  35.658871,
		Lon:                  139.701238,
	}
}

func expressThrough(lineGroupID int64) []*domain.TrainTypeWithLineRow {
	return []*domain.TrainTypeWithLineRow{
		{
			ID: 1, TypeID: 101, LineGroupID: lineGroupID,
			TypeName: "急行", TypeNameR: "Express",
			CompanyName: "東京メトロ", CompanyNameR: "Tokyo Metro",
			LineRow: domain.LineRow{ID: fukutoshinLineID, CompanyID: 18, Name: "副都心線", NameR: "Fukutoshin Line"},
		},
		{
			ID: 2, TypeID: 101, LineGroupID: lineGroupID,
			TypeName: "急行", TypeNameR: "Express",
			CompanyName: "東急電鉄", CompanyNameR: "Tokyu",
			LineRow: domain.LineRow{ID: toyokoLineID, CompanyID: 26, Name: "東横線", NameR: "Toyoko Line"},
		},
	}
}

type mockRepos struct {
	stations   *MockStationRepository
	lines      *MockLineRepository
	companies  *MockCompanyRepository
	trainTypes *MockTrainTypeRepository
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		stations:   new(MockStationRepository),
		lines:      new(MockLineRepository),
		companies:  new(MockCompanyRepository),
		trainTypes: new(MockTrainTypeRepository),
	}
}

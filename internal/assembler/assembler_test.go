package assembler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/station-microservice/internal/assembler"
	"github.com/station-microservice/internal/domain"
)

func yamanoteRow() domain.LineRow {
	return domain.LineRow{
		ID:                 11302,
		CompanyID:          2,
		Name:               "JR山手線",
		NameR:              "Yamanote Line",
		ColorC:             "#80C241",
		ColorT:             "#FFFFFF",
		SymbolPrimary:      "JY",
		SymbolSecondary:    "",
		SymbolExtra:        "Y",
		SymbolExtraColor:   "#123456",
		SymbolPrimaryColor: "",
		LineType:           2,
		Lat:                35.68,
		Lon:                139.76,
		Zoom:               12,
	}
}

func jrEast() *domain.CompanyRow {
	return &domain.CompanyRow{ID: 2, RailroadID: 11, Name: "JR東日本", NameEn: "JR East"}
}

func TestLine(t *testing.T) {
	t.Run("nil row", func(t *testing.T) {
		assert.Nil(t, assembler.Line(nil, nil))
	})

	t.Run("symbols skip empty glyphs and fall back to line color", func(t *testing.T) {
		row := yamanoteRow()
		line := assembler.Line(&row, nil)

		require.NotNil(t, line)
		assert.Equal(t, []domain.LineSymbol{
			{LineSymbol: "JY", LineSymbolColor: "#80C241"},
			{LineSymbol: "Y", LineSymbolColor: "#123456"},
		}, line.LineSymbols)
		assert.Nil(t, line.Company)
	})

	t.Run("company embedded when given", func(t *testing.T) {
		row := yamanoteRow()
		line := assembler.Line(&row, jrEast())

		require.NotNil(t, line.Company)
		assert.Equal(t, "JR East", line.Company.NameEn)
	})

	t.Run("identity fields preserved", func(t *testing.T) {
		row := yamanoteRow()
		line := assembler.Line(&row, jrEast())

		assert.Equal(t, row.ID, line.ID)
		assert.Equal(t, row.CompanyID, line.CompanyID)
		assert.Equal(t, int64(11302), row.ID)
	})

	t.Run("no symbols at all", func(t *testing.T) {
		row := domain.LineRow{ID: 1, ColorC: "#000000"}
		line := assembler.Line(&row, nil)

		assert.NotNil(t, line.LineSymbols)
		assert.Empty(t, line.LineSymbols)
	})

	t.Run("transfer station is one level deep", func(t *testing.T) {
		nested := yamanoteRow()
		nested.TransferStation = &domain.StationRow{ID: 999, LineID: nested.ID}

		transfer := &domain.StationRow{
			ID:     1130205,
			LineID: 11302,
			Lines:  []domain.LineRow{nested},
		}
		row := yamanoteRow()
		row.TransferStation = transfer

		line := assembler.Line(&row, nil)

		require.NotNil(t, line.TransferStation)
		assert.Equal(t, int64(1130205), line.TransferStation.ID)
		require.Len(t, line.TransferStation.Lines, 1)
		assert.Nil(t, line.TransferStation.Lines[0].TransferStation)
		require.NotNil(t, line.TransferStation.CurrentLine)
		assert.Nil(t, line.TransferStation.CurrentLine.TransferStation)
	})
}

func TestStation_StopCondition(t *testing.T) {
	tests := []struct {
		pass     int
		expected domain.StopCondition
	}{
		{0, domain.StopConditionAll},
		{1, domain.StopConditionNot},
		{2, domain.StopConditionPartial},
		{3, domain.StopConditionWeekday},
		{4, domain.StopConditionHoliday},
		{5, domain.StopConditionPartialStop},
		{6, domain.StopConditionAll},
		{-1, domain.StopConditionAll},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			station := assembler.Station(&domain.StationRow{ID: 1, Pass: tt.pass}, nil, nil)
			assert.Equal(t, tt.expected, station.StopCondition)
			assert.Equal(t, tt.pass == 1, station.Pass)
		})
	}
}

func TestStation_Numbers(t *testing.T) {
	t.Run("numbers use current line symbols", func(t *testing.T) {
		line := yamanoteRow()
		row := &domain.StationRow{
			ID:                     1130205,
			LineID:                 11302,
			PrimaryStationNumber:   "20",
			SecondaryStationNumber: "99",
			ExtraStationNumber:     "05",
			Lines:                  []domain.LineRow{line},
		}

		station := assembler.Station(row, nil, nil)

		// второй слот без символа пропущен
		assert.Equal(t, []domain.StationNumber{
			{LineSymbol: "JY", LineSymbolColor: "#80C241", StationNumber: "JY-20"},
			{LineSymbol: "Y", LineSymbolColor: "#123456", StationNumber: "Y-05"},
		}, station.StationNumbers)
	})

	t.Run("0-1 becomes 01", func(t *testing.T) {
		line := domain.LineRow{ID: 1, SymbolPrimary: "0", ColorC: "#000000"}
		row := &domain.StationRow{ID: 1, LineID: 1, PrimaryStationNumber: "1", Lines: []domain.LineRow{line}}

		station := assembler.Station(row, nil, nil)

		require.Len(t, station.StationNumbers, 1)
		assert.Equal(t, "01", station.StationNumbers[0].StationNumber)
	})

	t.Run("other pairs compose unchanged", func(t *testing.T) {
		line := domain.LineRow{ID: 1, SymbolPrimary: "0", ColorC: "#000000"}
		row := &domain.StationRow{ID: 1, LineID: 1, PrimaryStationNumber: "10", Lines: []domain.LineRow{line}}

		station := assembler.Station(row, nil, nil)

		require.Len(t, station.StationNumbers, 1)
		assert.Equal(t, "0-10", station.StationNumbers[0].StationNumber)
	})

	t.Run("empty number skipped", func(t *testing.T) {
		line := yamanoteRow()
		row := &domain.StationRow{ID: 1, LineID: 11302, Lines: []domain.LineRow{line}}

		station := assembler.Station(row, nil, nil)

		assert.Empty(t, station.StationNumbers)
	})

	t.Run("missing current line degrades to empty numbers", func(t *testing.T) {
		other := yamanoteRow()
		other.ID = 26001
		row := &domain.StationRow{
			ID:                   1,
			LineID:               11302,
			PrimaryStationNumber: "20",
			Lines:                []domain.LineRow{other},
		}

		station := assembler.Station(row, nil, nil)

		assert.NotNil(t, station.StationNumbers)
		assert.Empty(t, station.StationNumbers)
		assert.Nil(t, station.CurrentLine)
		assert.Len(t, station.Lines, 1)
	})
}

func TestStation_Lines(t *testing.T) {
	yamanote := yamanoteRow()
	toyoko := domain.LineRow{ID: 26001, CompanyID: 26, Name: "東急東横線", ColorC: "#DA0442", SymbolPrimary: "TY"}
	tokyu := &domain.CompanyRow{ID: 26, Name: "東急電鉄", NameEn: "Tokyu"}

	row := &domain.StationRow{
		ID:      1130205,
		GroupID: 1130205,
		LineID:  11302,
		Lines:   []domain.LineRow{yamanote, toyoko},
	}

	station := assembler.Station(row, []*domain.CompanyRow{tokyu, jrEast()}, nil)

	require.NotNil(t, station.CurrentLine)
	assert.Equal(t, int64(11302), station.CurrentLine.ID)
	assert.Equal(t, "JR East", station.CurrentLine.Company.NameEn)
	require.Len(t, station.Lines, 2)
	assert.Equal(t, "JR East", station.Lines[0].Company.NameEn)
	assert.Equal(t, "Tokyu", station.Lines[1].Company.NameEn)
	assert.NotNil(t, station.TrainTypes)
}

func TestStation_ExplicitCurrentLine(t *testing.T) {
	current := yamanoteRow()
	row := &domain.StationRow{ID: 1, LineID: 26001, CurrentLine: &current}

	station := assembler.Station(row, nil, nil)

	require.NotNil(t, station.CurrentLine)
	assert.Equal(t, int64(11302), station.CurrentLine.ID)
	assert.Empty(t, station.Lines)
}

func TestStation_Nil(t *testing.T) {
	assert.Nil(t, assembler.Station(nil, nil, nil))
}

func TestTrainType(t *testing.T) {
	assert.Nil(t, assembler.TrainType(nil, nil, nil))

	row := &domain.TrainTypeRow{ID: 3, TypeID: 101, LineGroupID: 500, Name: "急行", NameR: "Express", Direction: 2}
	tt := assembler.TrainType(row, nil, nil)

	require.NotNil(t, tt)
	assert.Equal(t, int64(101), tt.ID)
	assert.Equal(t, int64(101), tt.TypeID)
	assert.Equal(t, int64(500), tt.GroupID)
	assert.Equal(t, domain.TrainDirectionOutbound, tt.Direction)
	assert.NotNil(t, tt.Stations)
	assert.NotNil(t, tt.Lines)
	assert.NotNil(t, tt.AllTrainTypes)
}

func TestTrainTypeMinimums(t *testing.T) {
	line := yamanoteRow()
	rows := []*domain.TrainTypeWithLineRow{
		{ID: 1, TypeID: 100, LineGroupID: 600, TypeName: "各駅停車", LineRow: line},
		nil,
	}

	result := assembler.TrainTypeMinimums(rows, []*domain.CompanyRow{jrEast()})

	require.Len(t, result, 1)
	assert.Equal(t, int64(100), result[0].ID)
	assert.Equal(t, "各駅停車", result[0].Name)
	require.NotNil(t, result[0].Line)
	assert.Equal(t, int64(11302), result[0].Line.ID)
	assert.Equal(t, "JR East", result[0].Line.Company.NameEn)
}

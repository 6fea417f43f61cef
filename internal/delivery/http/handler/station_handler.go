package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/utils"
	"github.com/station-microservice/internal/usecase"
	"github.com/station-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// StationHandler - обработчик запросов станций
type StationHandler struct {
	stationUC *usecase.StationUseCase
	logger    *zap.Logger
}

// NewStationHandler - создание нового StationHandler
func NewStationHandler(stationUC *usecase.StationUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		logger:    logger,
	}
}

// GetStation godoc
// @Summary Станция по идентификатору
// @Description Возвращает станцию с текущей линией, всеми линиями группы и видами поездов
// @Tags Stations
// @Produce json
// @Param id path int true "station_cd"
// @Success 200 {object} utils.SuccessResponse{data=domain.Station}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/stations/{id} [get]
func (h *StationHandler) GetStation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.stationUC.GetStationByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	if station == nil {
		return utils.SendError(c, errors.ErrNotFound)
	}

	return utils.SendSuccess(c, station, nil)
}

// GetStations godoc
// @Summary Станции по списку идентификаторов
// @Tags Stations
// @Produce json
// @Param ids query string true "station_cd через запятую (до 100)"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Station}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/stations [get]
func (h *StationHandler) GetStations(c *fiber.Ctx) error {
	ids, err := queryIDs(c, "ids")
	if err != nil {
		return utils.SendError(c, err)
	}

	stations, err := h.stationUC.GetStationsByIDs(c.Context(), ids)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stations, &utils.Meta{Total: len(stations)})
}

// GetNearbyStations godoc
// @Summary Ближайшие станции
// @Description Станции по возрастанию расстояния от точки, по одной на группу
// @Tags Stations
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param limit query int false "Количество станций" default(1)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Station}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/stations/nearby [get]
func (h *StationHandler) GetNearbyStations(c *fiber.Ctx) error {
	lat, okLat := queryFloat(c, "lat")
	lon, okLon := queryFloat(c, "lon")
	if !okLat || !okLon {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	req := dto.CoordinatesRequest{
		Lat:   lat,
		Lon:   lon,
		Limit: c.QueryInt("limit", dto.DefaultCoordinatesLimit),
	}

	stations, err := h.stationUC.GetStationsByCoordinates(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stations, &utils.Meta{
		Total: len(stations),
		Limit: req.Limit,
	})
}

// SearchStations godoc
// @Summary Поиск станций по названию
// @Description Ищет по подстроке названия на японском, кане, латинице, китайском и корейском
// @Tags Stations
// @Produce json
// @Param name query string true "Часть названия"
// @Param limit query int false "Максимальное количество" default(50)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Station}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/stations/search [get]
func (h *StationHandler) SearchStations(c *fiber.Ctx) error {
	req := dto.NameRequest{
		Name:  c.Query("name"),
		Limit: c.QueryInt("limit", dto.DefaultNameLimit),
	}

	stations, err := h.stationUC.GetStationsByName(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stations, &utils.Meta{
		Total: len(stations),
		Limit: req.Limit,
	})
}

// GetRandomStation godoc
// @Summary Случайная станция
// @Tags Stations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Station}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stations/random [get]
func (h *StationHandler) GetRandomStation(c *fiber.Ctx) error {
	station, err := h.stationUC.GetRandomStation(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	if station == nil {
		return utils.SendError(c, errors.ErrNotFound)
	}

	return utils.SendSuccess(c, station, nil)
}

// GetStationByGroup godoc
// @Summary Станция группы
// @Description Одна станция из группы пересадочного узла
// @Tags Stations
// @Produce json
// @Param id path int true "station_g_cd"
// @Success 200 {object} utils.SuccessResponse{data=domain.Station}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/station-groups/{id}/station [get]
func (h *StationHandler) GetStationByGroup(c *fiber.Ctx) error {
	groupID, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.stationUC.GetStationByGroupID(c.Context(), groupID)
	if err != nil {
		return utils.SendError(c, err)
	}
	if station == nil {
		return utils.SendError(c, errors.ErrNotFound)
	}

	return utils.SendSuccess(c, station, nil)
}

// GetStationsByGroup godoc
// @Summary Все станции группы
// @Tags Stations
// @Produce json
// @Param id path int true "station_g_cd"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Station}
// @Router /api/v1/station-groups/{id}/stations [get]
func (h *StationHandler) GetStationsByGroup(c *fiber.Ctx) error {
	groupID, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	stations, err := h.stationUC.GetStationsByGroupID(c.Context(), groupID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stations, &utils.Meta{Total: len(stations)})
}

// GetStationsByLine godoc
// @Summary Станции линии
// @Description Станции в порядке следования по линии
// @Tags Stations
// @Produce json
// @Param id path int true "line_cd"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Station}
// @Router /api/v1/lines/{id}/stations [get]
func (h *StationHandler) GetStationsByLine(c *fiber.Ctx) error {
	lineID, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	stations, err := h.stationUC.GetStationsByLineID(c.Context(), lineID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stations, &utils.Meta{Total: len(stations)})
}

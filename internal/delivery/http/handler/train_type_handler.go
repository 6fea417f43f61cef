package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/utils"
	"github.com/station-microservice/internal/usecase"
	"go.uber.org/zap"
)

// TrainTypeHandler - обработчик запросов видов поездов
type TrainTypeHandler struct {
	trainTypeUC *usecase.TrainTypeUseCase
	logger      *zap.Logger
}

// NewTrainTypeHandler - создание нового TrainTypeHandler
func NewTrainTypeHandler(trainTypeUC *usecase.TrainTypeUseCase, logger *zap.Logger) *TrainTypeHandler {
	return &TrainTypeHandler{
		trainTypeUC: trainTypeUC,
		logger:      logger,
	}
}

// GetTrainTypesByStation godoc
// @Summary Виды поездов, останавливающихся на станции
// @Description Названия составляются с учётом линий сквозного сообщения
// @Tags TrainTypes
// @Produce json
// @Param id path int true "station_cd"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TrainType}
// @Router /api/v1/stations/{id}/train-types [get]
func (h *TrainTypeHandler) GetTrainTypesByStation(c *fiber.Ctx) error {
	stationID, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	trainTypes, err := h.trainTypeUC.GetTrainTypesByStationID(c.Context(), stationID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trainTypes, &utils.Meta{Total: len(trainTypes)})
}

// GetTrainType godoc
// @Summary Вид поезда группы линий
// @Description Вид поезда со станциями следования, станциями пересадки и линиями сквозного сообщения
// @Tags TrainTypes
// @Produce json
// @Param line_group_id path int true "line_group_cd"
// @Param exclude_pass query bool false "Исключить станции, которые поезд проходит без остановки"
// @Success 200 {object} utils.SuccessResponse{data=domain.TrainType}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/train-types/{line_group_id} [get]
func (h *TrainTypeHandler) GetTrainType(c *fiber.Ctx) error {
	lineGroupID, err := paramID(c, "line_group_id")
	if err != nil {
		return utils.SendError(c, err)
	}
	excludePass := c.QueryBool("exclude_pass", false)

	trainType, err := h.trainTypeUC.GetTrainTypeByLineGroupID(c.Context(), lineGroupID, excludePass)
	if err != nil {
		return utils.SendError(c, err)
	}
	if trainType == nil {
		return utils.SendError(c, errors.ErrNotFound)
	}

	h.logger.Debug("Train type served",
		zap.Int64("line_group_id", lineGroupID),
		zap.Bool("exclude_pass", excludePass))

	return utils.SendSuccess(c, trainType, nil)
}

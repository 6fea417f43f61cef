package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/utils"
	"github.com/station-microservice/internal/usecase"
	"go.uber.org/zap"
)

// LineHandler - обработчик запросов линий
type LineHandler struct {
	lineUC *usecase.LineUseCase
	logger *zap.Logger
}

// NewLineHandler - создание нового LineHandler
func NewLineHandler(lineUC *usecase.LineUseCase, logger *zap.Logger) *LineHandler {
	return &LineHandler{
		lineUC: lineUC,
		logger: logger,
	}
}

// GetLine godoc
// @Summary Линия по идентификатору
// @Tags Lines
// @Produce json
// @Param id path int true "line_cd"
// @Success 200 {object} utils.SuccessResponse{data=domain.Line}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/lines/{id} [get]
func (h *LineHandler) GetLine(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	line, err := h.lineUC.GetLineByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	if line == nil {
		return utils.SendError(c, errors.ErrNotFound)
	}

	return utils.SendSuccess(c, line, nil)
}

// GetLinesByGroup godoc
// @Summary Линии группы станций
// @Tags Lines
// @Produce json
// @Param id path int true "station_g_cd"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Line}
// @Router /api/v1/station-groups/{id}/lines [get]
func (h *LineHandler) GetLinesByGroup(c *fiber.Ctx) error {
	groupID, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	lines, err := h.lineUC.GetLinesByStationGroupID(c.Context(), groupID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, lines, &utils.Meta{Total: len(lines)})
}

// GetLinesByCompany godoc
// @Summary Линии компании
// @Tags Lines
// @Produce json
// @Param id path int true "company_cd"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Line}
// @Router /api/v1/companies/{id}/lines [get]
func (h *LineHandler) GetLinesByCompany(c *fiber.Ctx) error {
	companyID, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	lines, err := h.lineUC.GetLinesByCompanyID(c.Context(), companyID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, lines, &utils.Meta{Total: len(lines)})
}

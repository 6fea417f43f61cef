package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/station-microservice/internal/pkg/utils"
	"github.com/station-microservice/internal/usecase"
	"go.uber.org/zap"
)

// PathHandler - обработчик поиска маршрутов
type PathHandler struct {
	pathUC *usecase.PathUseCase
	logger *zap.Logger
}

// NewPathHandler - создание нового PathHandler
func NewPathHandler(pathUC *usecase.PathUseCase, logger *zap.Logger) *PathHandler {
	return &PathHandler{
		pathUC: pathUC,
		logger: logger,
	}
}

// FindPath godoc
// @Summary Маршрут между группами станций
// @Description Для каждой общей линии возвращает участок между станциями и направление (INBOUND/OUTBOUND)
// @Tags Path
// @Produce json
// @Param from query int true "station_g_cd начальной станции"
// @Param to query int true "station_g_cd конечной станции"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.FoundPath}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/path [get]
func (h *PathHandler) FindPath(c *fiber.Ctx) error {
	from, err := queryID(c, "from")
	if err != nil {
		return utils.SendError(c, err)
	}
	to, err := queryID(c, "to")
	if err != nil {
		return utils.SendError(c, err)
	}

	paths, err := h.pathUC.FindPath(c.Context(), from, to)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, paths, &utils.Meta{Total: len(paths)})
}

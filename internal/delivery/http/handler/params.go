package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/station-microservice/internal/pkg/errors"
)

// paramID - положительный int64 из параметра пути
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidID.WithDetails(map[string]interface{}{name: c.Params(name)})
	}
	return id, nil
}

// queryID - int64 из query-параметра; проверку диапазона делает use case
func queryID(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Query(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidID.WithDetails(map[string]interface{}{name: raw})
	}
	return id, nil
}

// queryIDs разбирает список вида "1,2,3"
func queryIDs(c *fiber.Ctx, name string) ([]int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, errors.ErrInvalidID.WithDetails(map[string]interface{}{name: "required"})
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, errors.ErrInvalidID.WithDetails(map[string]interface{}{name: p})
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// queryFloat - число из query-параметра; пустое значение считается ошибкой
func queryFloat(c *fiber.Ctx, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

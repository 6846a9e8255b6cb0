package handlers

import (
	"errors"

	"dealfinder/internal/apperr"
	"dealfinder/internal/log"
	"dealfinder/internal/services"

	"github.com/gofiber/fiber/v2"
)

const compareNotFoundMessage = "One or both products not found."

type CompareHandler struct {
	Comparison *services.ComparisonService
}

func (h *CompareHandler) Compare(c *fiber.Ctx) error {
	d1, d2 := c.Query("device1"), c.Query("device2")

	res, err := h.Comparison.Compare(d1, d2)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn(c, "compare.notfound", map[string]any{"device1": d1, "device2": d2})
		return apperr.NewNotFound(compareNotFoundMessage, err)
	}
	if err != nil {
		return apperr.NewInternal(err)
	}
	log.Info(c, "compare.ok", map[string]any{"product1": res.Product1.Name, "product2": res.Product2.Name})
	return c.JSON(res)
}

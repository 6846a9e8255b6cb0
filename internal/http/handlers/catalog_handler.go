package handlers

import (
	"dealfinder/internal/services"

	"github.com/gofiber/fiber/v2"
)

const livenessMessage = "dealfinder backend running"

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Names(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.ListNames())
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.ListCategories())
}

func (h *CatalogHandler) Root(c *fiber.Ctx) error {
	return c.SendString(livenessMessage)
}

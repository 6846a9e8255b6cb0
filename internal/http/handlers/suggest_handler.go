package handlers

import (
	"strings"

	"dealfinder/internal/log"
	"dealfinder/internal/services"
	"dealfinder/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SuggestHandler struct {
	Suggestions *services.SuggestionService
}

// Suggest never fails on bad input: an unknown type yields no results and
// a malformed budget means no limit.
func (h *SuggestHandler) Suggest(c *fiber.Ctx) error {
	q := validate.Query(c.Query("query"))

	category := c.Query("type")
	if category != "" {
		if _, ok := validate.Category(category); !ok {
			log.Warn(c, "validation.fail", map[string]any{"field": "type", "value": category})
		}
	}

	rawBudget := c.Query("budget")
	budget, ok := validate.Budget(rawBudget)
	if !ok && strings.TrimSpace(rawBudget) != "" {
		log.Warn(c, "validation.fail", map[string]any{"field": "budget", "value": rawBudget})
	}

	results := h.Suggestions.Suggest(services.SuggestQuery{Text: q, Category: category, Budget: budget})
	log.Info(c, "suggest.ok", map[string]any{"query": q, "type": category, "budget": budget, "count": len(results)})
	return c.JSON(results)
}

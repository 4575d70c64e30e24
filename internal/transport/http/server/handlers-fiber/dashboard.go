package handlers_fiber

import (
	"net/http"

	"projectflow/internal/mapper"
	api "projectflow/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns the landing counters.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	dash, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIDashboard(dash))
}

// GetUsers lists the roster with task counters.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	items, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Users []api.UserItem `json:"users"`
	}{Users: mapper.ToOAPIUserItems(items)})
}

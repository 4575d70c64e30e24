package handlers_fiber

import (
	"net/http"

	"projectflow/internal/mapper"
	api "projectflow/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostAuthLogin opens a session for the user with the given email.
func (h *Handler) PostAuthLogin(c *fiber.Ctx) error {
	var body api.PostAuthLoginJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	session, ok := h.uc.Login(c.Context(), body.Email, body.Password)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(errorResponse(api.INVALIDCREDENTIALS, "Invalid credentials"))
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPISession(session))
}

// PostAuthLogout clears the session.
func (h *Handler) PostAuthLogout(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(mapper.ToOAPISession(h.uc.Logout(c.Context())))
}

// PostAuthSwitch impersonates another roster user.
func (h *Handler) PostAuthSwitch(c *fiber.Ctx) error {
	var body api.PostAuthSwitchJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	session, ok := h.uc.SwitchUser(c.Context(), body.UserId)
	return c.Status(http.StatusOK).JSON(api.SwitchUserResponse{
		Session:  mapper.ToOAPISession(session),
		Switched: ok,
	})
}

// GetAuthSession returns the current session.
func (h *Handler) GetAuthSession(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(mapper.ToOAPISession(h.uc.Session(c.Context())))
}

// GetAuthPermissions returns the action flags of the current user.
func (h *Handler) GetAuthPermissions(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIPermissions(h.uc.Permissions(c.Context())))
}

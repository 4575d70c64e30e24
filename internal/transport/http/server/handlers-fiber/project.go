package handlers_fiber

import (
	"net/http"

	"projectflow/internal/mapper"
	api "projectflow/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetProjects lists projects with progress.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	items, err := h.uc.ListProjects(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Projects []api.ProjectItem `json:"projects"`
	}{Projects: mapper.ToOAPIProjectItems(items)})
}

// PostProjects creates a project.
func (h *Handler) PostProjects(c *fiber.Ctx) error {
	var body api.PostProjectsJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	project, err := h.uc.CreateProject(c.Context(), mapper.FromOAPICreateProject(body))
	if err != nil {
		h.log.Infow("create project rejected", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToOAPIProject(*project)})
}

// GetProjectsAvailable lists projects the current user may file tasks under.
func (h *Handler) GetProjectsAvailable(c *fiber.Ctx) error {
	projects, err := h.uc.AvailableProjects(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Projects []api.Project `json:"projects"`
	}{Projects: mapper.ToOAPIProjects(projects)})
}

// PatchProjectsId applies a partial update. Unknown ids answer 204.
func (h *Handler) PatchProjectsId(c *fiber.Ctx, id string) error {
	var body api.PatchProjectsIdJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	project, err := h.uc.UpdateProject(c.Context(), id, mapper.FromOAPIUpdateProject(body))
	if err != nil {
		return writeError(c, err)
	}
	if project == nil {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToOAPIProject(*project)})
}

// DeleteProjectsId removes a project and its tasks.
func (h *Handler) DeleteProjectsId(c *fiber.Ctx, id string) error {
	if err := h.uc.DeleteProject(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetProjectsIdAssignableUsers lists users a task in the project may be assigned to.
func (h *Handler) GetProjectsIdAssignableUsers(c *fiber.Ctx, id string) error {
	users, err := h.uc.AssignableUsers(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Users []api.User `json:"users"`
	}{Users: mapper.ToOAPIUsers(users)})
}

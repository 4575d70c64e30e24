package handlers_fiber

import (
	"net/http"

	"projectflow/internal/entities"
	"projectflow/internal/mapper"
	api "projectflow/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetTasks lists the visible tasks narrowed by search and view.
func (h *Handler) GetTasks(c *fiber.Ctx, params api.GetTasksParams) error {
	items, err := h.uc.ListTasks(c.Context(), taskFilter(params))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Tasks []api.TaskItem `json:"tasks"`
	}{Tasks: mapper.ToOAPITaskItems(items)})
}

// GetTasksBoard groups the visible tasks by status.
func (h *Handler) GetTasksBoard(c *fiber.Ctx, params api.GetTasksParams) error {
	board, err := h.uc.TaskBoard(c.Context(), taskFilter(params))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITaskBoard(board))
}

// PostTasks creates a task.
func (h *Handler) PostTasks(c *fiber.Ctx) error {
	var body api.PostTasksJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	task, err := h.uc.CreateTask(c.Context(), mapper.FromOAPICreateTask(body))
	if err != nil {
		h.log.Infow("create task rejected", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Task api.Task `json:"task"`
	}{Task: mapper.ToOAPITask(*task)})
}

// PatchTasksId applies a partial update. Unknown ids answer 204.
func (h *Handler) PatchTasksId(c *fiber.Ctx, id string) error {
	var body api.PatchTasksIdJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	task, err := h.uc.UpdateTask(c.Context(), id, mapper.FromOAPIUpdateTask(body))
	if err != nil {
		return writeError(c, err)
	}
	if task == nil {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Task api.Task `json:"task"`
	}{Task: mapper.ToOAPITask(*task)})
}

// DeleteTasksId removes a task.
func (h *Handler) DeleteTasksId(c *fiber.Ctx, id string) error {
	if err := h.uc.DeleteTask(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func taskFilter(params api.GetTasksParams) entities.TaskFilter {
	var f entities.TaskFilter
	if params.Search != nil {
		f.Search = *params.Search
	}
	if params.View != nil {
		f.View = entities.TaskView(*params.View)
	}
	return f
}

package oapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /auth/login)
	PostAuthLogin(c *fiber.Ctx) error
	// (POST /auth/logout)
	PostAuthLogout(c *fiber.Ctx) error
	// (POST /auth/switch)
	PostAuthSwitch(c *fiber.Ctx) error
	// (GET /auth/session)
	GetAuthSession(c *fiber.Ctx) error
	// (GET /auth/permissions)
	GetAuthPermissions(c *fiber.Ctx) error
	// (GET /projects)
	GetProjects(c *fiber.Ctx) error
	// (POST /projects)
	PostProjects(c *fiber.Ctx) error
	// (GET /projects/available)
	GetProjectsAvailable(c *fiber.Ctx) error
	// (PATCH /projects/{id})
	PatchProjectsId(c *fiber.Ctx, id string) error
	// (DELETE /projects/{id})
	DeleteProjectsId(c *fiber.Ctx, id string) error
	// (GET /projects/{id}/assignable-users)
	GetProjectsIdAssignableUsers(c *fiber.Ctx, id string) error
	// (GET /tasks)
	GetTasks(c *fiber.Ctx, params GetTasksParams) error
	// (POST /tasks)
	PostTasks(c *fiber.Ctx) error
	// (GET /tasks/board)
	GetTasksBoard(c *fiber.Ctx, params GetTasksParams) error
	// (PATCH /tasks/{id})
	PatchTasksId(c *fiber.Ctx, id string) error
	// (DELETE /tasks/{id})
	DeleteTasksId(c *fiber.Ctx, id string) error
	// (GET /dashboard)
	GetDashboard(c *fiber.Ctx) error
	// (GET /users)
	GetUsers(c *fiber.Ctx) error
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// MiddlewareFunc is a fiber handler run before every operation.
type MiddlewareFunc fiber.Handler

func (siw *ServerInterfaceWrapper) PostAuthLogin(c *fiber.Ctx) error {
	return siw.Handler.PostAuthLogin(c)
}

func (siw *ServerInterfaceWrapper) PostAuthLogout(c *fiber.Ctx) error {
	return siw.Handler.PostAuthLogout(c)
}

func (siw *ServerInterfaceWrapper) PostAuthSwitch(c *fiber.Ctx) error {
	return siw.Handler.PostAuthSwitch(c)
}

func (siw *ServerInterfaceWrapper) GetAuthSession(c *fiber.Ctx) error {
	return siw.Handler.GetAuthSession(c)
}

func (siw *ServerInterfaceWrapper) GetAuthPermissions(c *fiber.Ctx) error {
	return siw.Handler.GetAuthPermissions(c)
}

func (siw *ServerInterfaceWrapper) GetProjects(c *fiber.Ctx) error {
	return siw.Handler.GetProjects(c)
}

func (siw *ServerInterfaceWrapper) PostProjects(c *fiber.Ctx) error {
	return siw.Handler.PostProjects(c)
}

func (siw *ServerInterfaceWrapper) GetProjectsAvailable(c *fiber.Ctx) error {
	return siw.Handler.GetProjectsAvailable(c)
}

func (siw *ServerInterfaceWrapper) PatchProjectsId(c *fiber.Ctx) error {
	return siw.Handler.PatchProjectsId(c, c.Params("id"))
}

func (siw *ServerInterfaceWrapper) DeleteProjectsId(c *fiber.Ctx) error {
	return siw.Handler.DeleteProjectsId(c, c.Params("id"))
}

func (siw *ServerInterfaceWrapper) GetProjectsIdAssignableUsers(c *fiber.Ctx) error {
	return siw.Handler.GetProjectsIdAssignableUsers(c, c.Params("id"))
}

func (siw *ServerInterfaceWrapper) GetTasks(c *fiber.Ctx) error {
	return siw.Handler.GetTasks(c, taskParams(c))
}

func (siw *ServerInterfaceWrapper) PostTasks(c *fiber.Ctx) error {
	return siw.Handler.PostTasks(c)
}

func (siw *ServerInterfaceWrapper) GetTasksBoard(c *fiber.Ctx) error {
	return siw.Handler.GetTasksBoard(c, taskParams(c))
}

func (siw *ServerInterfaceWrapper) PatchTasksId(c *fiber.Ctx) error {
	return siw.Handler.PatchTasksId(c, c.Params("id"))
}

func (siw *ServerInterfaceWrapper) DeleteTasksId(c *fiber.Ctx) error {
	return siw.Handler.DeleteTasksId(c, c.Params("id"))
}

func (siw *ServerInterfaceWrapper) GetDashboard(c *fiber.Ctx) error {
	return siw.Handler.GetDashboard(c)
}

func (siw *ServerInterfaceWrapper) GetUsers(c *fiber.Ctx) error {
	return siw.Handler.GetUsers(c)
}

func taskParams(c *fiber.Ctx) GetTasksParams {
	var params GetTasksParams
	if v := c.Query("search"); v != "" {
		params.Search = &v
	}
	if v := c.Query("view"); v != "" {
		params.View = &v
	}
	return params
}

// FiberServerOptions provides options for the Fiber server.
type FiberServerOptions struct {
	BaseURL     string
	Middlewares []MiddlewareFunc
}

// RegisterHandlers mounts every API route on router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{})
}

// RegisterHandlersWithOptions mounts every API route under options.BaseURL.
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	for _, m := range options.Middlewares {
		router.Use(fiber.Handler(m))
	}

	base := strings.TrimSuffix(options.BaseURL, "/")

	router.Post(base+"/auth/login", wrapper.PostAuthLogin)
	router.Post(base+"/auth/logout", wrapper.PostAuthLogout)
	router.Post(base+"/auth/switch", wrapper.PostAuthSwitch)
	router.Get(base+"/auth/session", wrapper.GetAuthSession)
	router.Get(base+"/auth/permissions", wrapper.GetAuthPermissions)

	router.Get(base+"/projects", wrapper.GetProjects)
	router.Post(base+"/projects", wrapper.PostProjects)
	router.Get(base+"/projects/available", wrapper.GetProjectsAvailable)
	router.Patch(base+"/projects/:id", wrapper.PatchProjectsId)
	router.Delete(base+"/projects/:id", wrapper.DeleteProjectsId)
	router.Get(base+"/projects/:id/assignable-users", wrapper.GetProjectsIdAssignableUsers)

	router.Get(base+"/tasks", wrapper.GetTasks)
	router.Post(base+"/tasks", wrapper.PostTasks)
	router.Get(base+"/tasks/board", wrapper.GetTasksBoard)
	router.Patch(base+"/tasks/:id", wrapper.PatchTasksId)
	router.Delete(base+"/tasks/:id", wrapper.DeleteTasksId)

	router.Get(base+"/dashboard", wrapper.GetDashboard)
	router.Get(base+"/users", wrapper.GetUsers)
}

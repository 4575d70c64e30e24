// Package oapi provides the HTTP transport models and route registration.
package oapi

import (
	"encoding/json"
	"time"
)

const (
	// DateFormat is the wire layout of calendar dates.
	DateFormat = "2006-01-02"
)

// Defines values for ErrorResponseErrorCode.
const (
	FORBIDDEN          ErrorResponseErrorCode = "FORBIDDEN"
	INTERNAL           ErrorResponseErrorCode = "INTERNAL"
	INVALIDARGUMENT    ErrorResponseErrorCode = "INVALID_ARGUMENT"
	INVALIDCREDENTIALS ErrorResponseErrorCode = "INVALID_CREDENTIALS"
	NOTFOUND           ErrorResponseErrorCode = "NOT_FOUND"
	UNAUTHENTICATED    ErrorResponseErrorCode = "UNAUTHENTICATED"
)

// Defines values for Role.
const (
	Admin     Role = "admin"
	Developer Role = "developer"
	Manager   Role = "manager"
)

// Defines values for ProjectStatus.
const (
	Active    ProjectStatus = "active"
	Completed ProjectStatus = "completed"
	OnHold    ProjectStatus = "on-hold"
	Planning  ProjectStatus = "planning"
)

// Defines values for TaskStatus.
const (
	Done       TaskStatus = "done"
	InProgress TaskStatus = "in-progress"
	Todo       TaskStatus = "todo"
)

// Defines values for TaskPriority.
const (
	High   TaskPriority = "high"
	Low    TaskPriority = "low"
	Medium TaskPriority = "medium"
)

// Date is a calendar date encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(DateFormat))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(DateFormat, s)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// ErrorResponseErrorCode defines model for ErrorResponse.Error.Code.
type ErrorResponseErrorCode string

// Role defines model for User.Role.
type Role string

// User defines model for User.
type User struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserTaskStats defines model for UserTaskStats.
type UserTaskStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// UserItem defines model for UserItem.
type UserItem struct {
	User  User          `json:"user"`
	Stats UserTaskStats `json:"stats"`
}

// AuthSession defines model for AuthSession.
type AuthSession struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}

// Permissions defines model for Permissions.
type Permissions struct {
	CanCreateProject bool     `json:"canCreateProject"`
	CanCreateTask    bool     `json:"canCreateTask"`
	CanManageUsers   bool     `json:"canManageUsers"`
	Views            []string `json:"views"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SwitchUserRequest defines model for SwitchUserRequest.
type SwitchUserRequest struct {
	UserId string `json:"userId"`
}

// SwitchUserResponse defines model for SwitchUserResponse.
type SwitchUserResponse struct {
	Session  AuthSession `json:"session"`
	Switched bool        `json:"switched"`
}

// ProjectStatus defines model for Project.Status.
type ProjectStatus string

// Project defines model for Project.
type Project struct {
	Id          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	StartDate   Date          `json:"startDate"`
	EndDate     Date          `json:"endDate"`
	ManagerId   string        `json:"managerId"`
	TeamMembers []string      `json:"teamMembers"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ProjectItem defines model for ProjectItem.
type ProjectItem struct {
	Project    Project `json:"project"`
	TotalTasks int     `json:"totalTasks"`
	DoneTasks  int     `json:"doneTasks"`
	Progress   int     `json:"progress"`
	CanEdit    bool    `json:"canEdit"`
}

// ProjectProgress defines model for ProjectProgress.
type ProjectProgress struct {
	Project    Project `json:"project"`
	TotalTasks int     `json:"totalTasks"`
	DoneTasks  int     `json:"doneTasks"`
	Progress   int     `json:"progress"`
}

// CreateProjectRequest defines model for CreateProjectRequest.
type CreateProjectRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      *ProjectStatus `json:"status,omitempty"`
	StartDate   Date           `json:"startDate"`
	EndDate     Date           `json:"endDate"`
	ManagerId   string         `json:"managerId"`
	TeamMembers []string       `json:"teamMembers"`
}

// UpdateProjectRequest defines model for UpdateProjectRequest.
type UpdateProjectRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
	StartDate   *Date          `json:"startDate,omitempty"`
	EndDate     *Date          `json:"endDate,omitempty"`
	ManagerId   *string        `json:"managerId,omitempty"`
	TeamMembers *[]string      `json:"teamMembers,omitempty"`
}

// TaskStatus defines model for Task.Status.
type TaskStatus string

// TaskPriority defines model for Task.Priority.
type TaskPriority string

// Comment defines model for Comment.
type Comment struct {
	Id        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorId  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Task defines model for Task.
type Task struct {
	Id          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	ProjectId   string       `json:"projectId"`
	AssigneeId  *string      `json:"assigneeId"`
	CreatedById string       `json:"createdById"`
	DueDate     Date         `json:"dueDate"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Comments    []Comment    `json:"comments"`
}

// TaskItem defines model for TaskItem.
type TaskItem struct {
	Task    Task `json:"task"`
	CanEdit bool `json:"canEdit"`
}

// TaskColumn defines model for TaskColumn.
type TaskColumn struct {
	Status TaskStatus `json:"status"`
	Tasks  []Task     `json:"tasks"`
}

// TaskBoard defines model for TaskBoard.
type TaskBoard struct {
	Columns []TaskColumn `json:"columns"`
}

// CreateTaskRequest defines model for CreateTaskRequest.
// An empty AssigneeId leaves the task unassigned.
type CreateTaskRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      *TaskStatus   `json:"status,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	ProjectId   string        `json:"projectId"`
	AssigneeId  *string       `json:"assigneeId,omitempty"`
	DueDate     Date          `json:"dueDate"`
}

// UpdateTaskRequest defines model for UpdateTaskRequest.
// An empty AssigneeId unassigns the task.
type UpdateTaskRequest struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	ProjectId   *string       `json:"projectId,omitempty"`
	AssigneeId  *string       `json:"assigneeId,omitempty"`
	DueDate     *Date         `json:"dueDate,omitempty"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	ActiveProjects int               `json:"activeProjects"`
	TotalTasks     int               `json:"totalTasks"`
	CompletedTasks int               `json:"completedTasks"`
	OverdueTasks   int               `json:"overdueTasks"`
	CompletionRate int               `json:"completionRate"`
	TotalUsers     int               `json:"totalUsers"`
	MyTasks        int               `json:"myTasks"`
	MyActiveTasks  int               `json:"myActiveTasks"`
	RecentProjects []ProjectProgress `json:"recentProjects"`
	RecentTasks    []Task            `json:"recentTasks"`
}

// GetTasksParams defines parameters for GetTasks and GetTasksBoard.
type GetTasksParams struct {
	Search *string `form:"search,omitempty" json:"search,omitempty"`
	View   *string `form:"view,omitempty" json:"view,omitempty"`
}

// PostAuthLoginJSONRequestBody defines body for PostAuthLogin for application/json ContentType.
type PostAuthLoginJSONRequestBody = LoginRequest

// PostAuthSwitchJSONRequestBody defines body for PostAuthSwitch for application/json ContentType.
type PostAuthSwitchJSONRequestBody = SwitchUserRequest

// PostProjectsJSONRequestBody defines body for PostProjects for application/json ContentType.
type PostProjectsJSONRequestBody = CreateProjectRequest

// PatchProjectsIdJSONRequestBody defines body for PatchProjectsId for application/json ContentType.
type PatchProjectsIdJSONRequestBody = UpdateProjectRequest

// PostTasksJSONRequestBody defines body for PostTasks for application/json ContentType.
type PostTasksJSONRequestBody = CreateTaskRequest

// PatchTasksIdJSONRequestBody defines body for PatchTasksId for application/json ContentType.
type PatchTasksIdJSONRequestBody = UpdateTaskRequest

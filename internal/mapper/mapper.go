// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"projectflow/internal/entities"
	oapi "projectflow/internal/oapi"
)

// ToOAPIUser maps entities.User to transport model.
func ToOAPIUser(u entities.User) oapi.User {
	res := oapi.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      oapi.Role(u.Role),
		CreatedAt: u.CreatedAt,
	}
	if u.Avatar != "" {
		avatar := u.Avatar
		res.Avatar = &avatar
	}
	return res
}

// ToOAPIUsers maps a slice of users.
func ToOAPIUsers(list []entities.User) []oapi.User {
	res := make([]oapi.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToOAPIUser(u))
	}
	return res
}

// ToOAPIUserItems maps user listing rows.
func ToOAPIUserItems(list []entities.UserItem) []oapi.UserItem {
	res := make([]oapi.UserItem, 0, len(list))
	for _, it := range list {
		res = append(res, oapi.UserItem{
			User: ToOAPIUser(it.User),
			Stats: oapi.UserTaskStats{
				Total:     it.Stats.Total,
				Active:    it.Stats.Active,
				Completed: it.Stats.Completed,
			},
		})
	}
	return res
}

// ToOAPISession maps entities.AuthSession to transport model.
func ToOAPISession(s entities.AuthSession) oapi.AuthSession {
	res := oapi.AuthSession{IsAuthenticated: s.IsAuthenticated}
	if s.User != nil {
		u := ToOAPIUser(*s.User)
		res.User = &u
	}
	return res
}

// ToOAPIPermissions maps entities.Permissions to transport model.
func ToOAPIPermissions(p entities.Permissions) oapi.Permissions {
	views := p.Views
	if views == nil {
		views = []string{}
	}
	return oapi.Permissions{
		CanCreateProject: p.CanCreateProject,
		CanCreateTask:    p.CanCreateTask,
		CanManageUsers:   p.CanManageUsers,
		Views:            views,
	}
}

// ToOAPIProject maps entities.Project to transport model.
func ToOAPIProject(p entities.Project) oapi.Project {
	members := p.TeamMembers
	if members == nil {
		members = []string{}
	}
	return oapi.Project{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      oapi.ProjectStatus(p.Status),
		StartDate:   oapi.Date{Time: p.StartDate},
		EndDate:     oapi.Date{Time: p.EndDate},
		ManagerId:   p.ManagerID,
		TeamMembers: members,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToOAPIProjects maps a slice of projects.
func ToOAPIProjects(list []entities.Project) []oapi.Project {
	res := make([]oapi.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToOAPIProject(p))
	}
	return res
}

// ToOAPIProjectProgress maps a project with its completion.
func ToOAPIProjectProgress(p entities.ProjectProgress) oapi.ProjectProgress {
	return oapi.ProjectProgress{
		Project:    ToOAPIProject(p.Project),
		TotalTasks: p.TotalTasks,
		DoneTasks:  p.DoneTasks,
		Progress:   p.Progress,
	}
}

// ToOAPIProjectItems maps project listing rows.
func ToOAPIProjectItems(list []entities.ProjectItem) []oapi.ProjectItem {
	res := make([]oapi.ProjectItem, 0, len(list))
	for _, it := range list {
		res = append(res, oapi.ProjectItem{
			Project:    ToOAPIProject(it.Project),
			TotalTasks: it.TotalTasks,
			DoneTasks:  it.DoneTasks,
			Progress:   it.Progress,
			CanEdit:    it.CanEdit,
		})
	}
	return res
}

// FromOAPICreateProject builds an entities.Project from the create form.
func FromOAPICreateProject(src oapi.CreateProjectRequest) entities.Project {
	p := entities.Project{
		Name:        src.Name,
		Description: src.Description,
		StartDate:   src.StartDate.Time,
		EndDate:     src.EndDate.Time,
		ManagerID:   src.ManagerId,
		TeamMembers: src.TeamMembers,
	}
	if src.Status != nil {
		p.Status = entities.ProjectStatus(*src.Status)
	}
	return p
}

// FromOAPIUpdateProject builds a partial project update.
func FromOAPIUpdateProject(src oapi.UpdateProjectRequest) entities.ProjectPatch {
	patch := entities.ProjectPatch{
		Name:        src.Name,
		Description: src.Description,
		ManagerID:   src.ManagerId,
		TeamMembers: src.TeamMembers,
	}
	if src.Status != nil {
		s := entities.ProjectStatus(*src.Status)
		patch.Status = &s
	}
	if src.StartDate != nil {
		patch.StartDate = &src.StartDate.Time
	}
	if src.EndDate != nil {
		patch.EndDate = &src.EndDate.Time
	}
	return patch
}

// ToOAPITask maps entities.Task to transport model.
func ToOAPITask(t entities.Task) oapi.Task {
	comments := make([]oapi.Comment, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, oapi.Comment{
			Id:        c.ID,
			Content:   c.Content,
			AuthorId:  c.AuthorID,
			CreatedAt: c.CreatedAt,
		})
	}

	res := oapi.Task{
		Id:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      oapi.TaskStatus(t.Status),
		Priority:    oapi.TaskPriority(t.Priority),
		ProjectId:   t.ProjectID,
		CreatedById: t.CreatedByID,
		DueDate:     oapi.Date{Time: t.DueDate},
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Comments:    comments,
	}
	if t.AssigneeID != "" {
		assignee := t.AssigneeID
		res.AssigneeId = &assignee
	}
	return res
}

// ToOAPITasks maps a slice of tasks.
func ToOAPITasks(list []entities.Task) []oapi.Task {
	res := make([]oapi.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToOAPITask(t))
	}
	return res
}

// ToOAPITaskItems maps task listing rows.
func ToOAPITaskItems(list []entities.TaskItem) []oapi.TaskItem {
	res := make([]oapi.TaskItem, 0, len(list))
	for _, it := range list {
		res = append(res, oapi.TaskItem{Task: ToOAPITask(it.Task), CanEdit: it.CanEdit})
	}
	return res
}

// ToOAPITaskBoard maps the kanban grouping.
func ToOAPITaskBoard(b entities.TaskBoard) oapi.TaskBoard {
	cols := make([]oapi.TaskColumn, 0, len(b.Columns))
	for _, col := range b.Columns {
		cols = append(cols, oapi.TaskColumn{
			Status: oapi.TaskStatus(col.Status),
			Tasks:  ToOAPITasks(col.Tasks),
		})
	}
	return oapi.TaskBoard{Columns: cols}
}

// FromOAPICreateTask builds an entities.Task from the create form.
func FromOAPICreateTask(src oapi.CreateTaskRequest) entities.Task {
	t := entities.Task{
		Title:       src.Title,
		Description: src.Description,
		ProjectID:   src.ProjectId,
		DueDate:     src.DueDate.Time,
	}
	if src.Status != nil {
		t.Status = entities.TaskStatus(*src.Status)
	}
	if src.Priority != nil {
		t.Priority = entities.TaskPriority(*src.Priority)
	}
	if src.AssigneeId != nil {
		t.AssigneeID = *src.AssigneeId
	}
	return t
}

// FromOAPIUpdateTask builds a partial task update.
func FromOAPIUpdateTask(src oapi.UpdateTaskRequest) entities.TaskPatch {
	patch := entities.TaskPatch{
		Title:       src.Title,
		Description: src.Description,
		ProjectID:   src.ProjectId,
		AssigneeID:  src.AssigneeId,
	}
	if src.Status != nil {
		s := entities.TaskStatus(*src.Status)
		patch.Status = &s
	}
	if src.Priority != nil {
		p := entities.TaskPriority(*src.Priority)
		patch.Priority = &p
	}
	if src.DueDate != nil {
		patch.DueDate = &src.DueDate.Time
	}
	return patch
}

// ToOAPIDashboard maps the landing counters.
func ToOAPIDashboard(d entities.Dashboard) oapi.Dashboard {
	recent := make([]oapi.ProjectProgress, 0, len(d.RecentProjects))
	for _, p := range d.RecentProjects {
		recent = append(recent, ToOAPIProjectProgress(p))
	}
	return oapi.Dashboard{
		ActiveProjects: d.ActiveProjects,
		TotalTasks:     d.TotalTasks,
		CompletedTasks: d.CompletedTasks,
		OverdueTasks:   d.OverdueTasks,
		CompletionRate: d.CompletionRate,
		TotalUsers:     d.TotalUsers,
		MyTasks:        d.MyTasks,
		MyActiveTasks:  d.MyActiveTasks,
		RecentProjects: recent,
		RecentTasks:    ToOAPITasks(d.RecentTasks),
	}
}

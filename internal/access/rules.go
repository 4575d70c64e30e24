// Package access decides what a session user may see and do.
//
// Every function is pure. A nil user stands for "no session": all
// permissions are denied and all visibility sets are empty.
package access

import "projectflow/internal/entities"

// Navigation view identifiers.
const (
	ViewDashboard = "dashboard"
	ViewProjects  = "projects"
	ViewTasks     = "tasks"
	ViewUsers     = "users"
	ViewSettings  = "settings"
)

// roleIn reports whether role is one of allowed.
func roleIn(role entities.Role, allowed ...entities.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// ProjectRule decides edit rights given the role and whether the user manages the project.
func ProjectRule(role entities.Role, manages bool) bool {
	switch role {
	case entities.RoleAdmin:
		return true
	case entities.RoleManager:
		return manages
	default:
		return false
	}
}

// TaskRule decides edit rights given the role and whether the user is the assignee.
func TaskRule(role entities.Role, assigned bool) bool {
	return roleIn(role, entities.RoleAdmin, entities.RoleManager) || assigned
}

// VisibilityRule decides task visibility given the role and the user's relation to the task.
func VisibilityRule(role entities.Role, assignedOrCreator bool) bool {
	if role == entities.RoleDeveloper {
		return assignedOrCreator
	}
	return role.Valid()
}

// CanCreateProject reports whether u may create projects.
func CanCreateProject(u *entities.User) bool {
	return u != nil && roleIn(u.Role, entities.RoleAdmin, entities.RoleManager)
}

// CanEditProject reports whether u may edit or delete p.
func CanEditProject(u *entities.User, p entities.Project) bool {
	if u == nil {
		return false
	}
	return ProjectRule(u.Role, p.ManagerID == u.ID)
}

// CanCreateTask reports whether u may create tasks.
func CanCreateTask(u *entities.User) bool {
	return u != nil && roleIn(u.Role, entities.RoleAdmin, entities.RoleManager)
}

// CanEditTask reports whether u may edit, delete or move t.
func CanEditTask(u *entities.User, t entities.Task) bool {
	if u == nil {
		return false
	}
	return TaskRule(u.Role, t.AssigneeID != "" && t.AssigneeID == u.ID)
}

// CanManageUsers reports whether u may administer users.
func CanManageUsers(u *entities.User) bool {
	return u != nil && u.Role == entities.RoleAdmin
}

// CanViewUsers reports whether the user directory is available to u.
func CanViewUsers(u *entities.User) bool {
	return u != nil && roleIn(u.Role, entities.RoleAdmin, entities.RoleManager)
}

// CanViewTask reports whether t is visible to u.
func CanViewTask(u *entities.User, t entities.Task) bool {
	if u == nil {
		return false
	}
	related := (t.AssigneeID != "" && t.AssigneeID == u.ID) || t.CreatedByID == u.ID
	return VisibilityRule(u.Role, related)
}

// Views lists the navigation entries open to u.
func Views(u *entities.User) []string {
	if u == nil {
		return []string{}
	}
	views := []string{ViewDashboard, ViewProjects, ViewTasks}
	if CanViewUsers(u) {
		views = append(views, ViewUsers)
	}
	return append(views, ViewSettings)
}

// Permissions bundles the session-wide flags for u.
func Permissions(u *entities.User) entities.Permissions {
	return entities.Permissions{
		CanCreateProject: CanCreateProject(u),
		CanCreateTask:    CanCreateTask(u),
		CanManageUsers:   CanManageUsers(u),
		Views:            Views(u),
	}
}

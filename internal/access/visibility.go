package access

import "projectflow/internal/entities"

// VisibleTasks returns the tasks u may see, preserving order.
func VisibleTasks(u *entities.User, tasks []entities.Task) []entities.Task {
	res := make([]entities.Task, 0, len(tasks))
	if u == nil {
		return res
	}
	for _, t := range tasks {
		if CanViewTask(u, t) {
			res = append(res, t)
		}
	}
	return res
}

// AssignableUsers returns the users that may be assigned tasks of p:
// its team members plus its manager, in roster order.
func AssignableUsers(p entities.Project, users []entities.User) []entities.User {
	res := make([]entities.User, 0, len(p.TeamMembers)+1)
	for _, u := range users {
		if p.HasMember(u.ID) || p.ManagerID == u.ID {
			res = append(res, u)
		}
	}
	return res
}

// AvailableProjects returns the projects u may file new tasks under.
func AvailableProjects(u *entities.User, projects []entities.Project) []entities.Project {
	res := make([]entities.Project, 0, len(projects))
	if u == nil {
		return res
	}
	for _, p := range projects {
		var ok bool
		switch u.Role {
		case entities.RoleAdmin:
			ok = true
		case entities.RoleManager:
			ok = p.ManagerID == u.ID
		case entities.RoleDeveloper:
			ok = p.HasMember(u.ID)
		}
		if ok {
			res = append(res, p)
		}
	}
	return res
}

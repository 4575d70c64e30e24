// Package aggregate computes dashboard counters by scanning task and project lists.
// Nothing is cached; callers recompute on every read.
package aggregate

import (
	"strings"
	"time"

	"projectflow/internal/entities"
)

const (
	recentProjectsLimit = 3
	recentTasksLimit    = 5
)

// Percent returns round(100*part/total), or 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	// half-up rounding in integer arithmetic
	return (200*part + total) / (2 * total)
}

// ActiveProjectCount counts projects in the active status.
func ActiveProjectCount(projects []entities.Project) int {
	n := 0
	for _, p := range projects {
		if p.Status == entities.ProjectActive {
			n++
		}
	}
	return n
}

// DoneCount counts tasks in the done status.
func DoneCount(tasks []entities.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Status == entities.TaskDone {
			n++
		}
	}
	return n
}

// CompletionRate is the share of done tasks in percent.
func CompletionRate(tasks []entities.Task) int {
	return Percent(DoneCount(tasks), len(tasks))
}

// OverdueCount counts tasks that are not done and due strictly before now.
func OverdueCount(tasks []entities.Task, now time.Time) int {
	n := 0
	for _, t := range tasks {
		if t.IsOverdue(now) {
			n++
		}
	}
	return n
}

// ProjectProgress computes completion of the tasks belonging to p.
func ProjectProgress(p entities.Project, tasks []entities.Task) entities.ProjectProgress {
	res := entities.ProjectProgress{Project: p}
	for _, t := range tasks {
		if t.ProjectID != p.ID {
			continue
		}
		res.TotalTasks++
		if t.Status == entities.TaskDone {
			res.DoneTasks++
		}
	}
	res.Progress = Percent(res.DoneTasks, res.TotalTasks)
	return res
}

// UserTaskStats counts tasks assigned to userID.
func UserTaskStats(userID string, tasks []entities.Task) entities.UserTaskStats {
	res := entities.UserTaskStats{UserID: userID}
	if userID == "" {
		return res
	}
	for _, t := range tasks {
		if t.AssigneeID != userID {
			continue
		}
		res.Total++
		if t.Status == entities.TaskDone {
			res.Completed++
		} else {
			res.Active++
		}
	}
	return res
}

// Dashboard builds the landing view counters for u over the full collections.
func Dashboard(u *entities.User, users []entities.User, projects []entities.Project, tasks []entities.Task, now time.Time) entities.Dashboard {
	done := DoneCount(tasks)
	res := entities.Dashboard{
		ActiveProjects: ActiveProjectCount(projects),
		TotalTasks:     len(tasks),
		CompletedTasks: done,
		OverdueTasks:   OverdueCount(tasks, now),
		CompletionRate: Percent(done, len(tasks)),
		TotalUsers:     len(users),
		RecentProjects: make([]entities.ProjectProgress, 0, recentProjectsLimit),
		RecentTasks:    make([]entities.Task, 0, recentTasksLimit),
	}

	if u != nil {
		mine := UserTaskStats(u.ID, tasks)
		res.MyTasks = mine.Total
		res.MyActiveTasks = mine.Active
	}

	for i, p := range projects {
		if i == recentProjectsLimit {
			break
		}
		res.RecentProjects = append(res.RecentProjects, ProjectProgress(p, tasks))
	}
	for i, t := range tasks {
		if i == recentTasksLimit {
			break
		}
		res.RecentTasks = append(res.RecentTasks, t)
	}
	return res
}

// Board groups tasks into status columns in board order.
func Board(tasks []entities.Task) entities.TaskBoard {
	board := entities.TaskBoard{Columns: make([]entities.TaskColumn, 0, len(entities.TaskStatuses))}
	for _, status := range entities.TaskStatuses {
		col := entities.TaskColumn{Status: status, Tasks: []entities.Task{}}
		for _, t := range tasks {
			if t.Status == status {
				col.Tasks = append(col.Tasks, t)
			}
		}
		board.Columns = append(board.Columns, col)
	}
	return board
}

// FilterTasks applies a search term and a preset view for userID.
func FilterTasks(tasks []entities.Task, filter entities.TaskFilter, userID string, now time.Time) []entities.Task {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	res := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
			continue
		}
		if !matchView(t, filter.View, userID, now) {
			continue
		}
		res = append(res, t)
	}
	return res
}

func matchView(t entities.Task, view entities.TaskView, userID string, now time.Time) bool {
	switch view {
	case entities.ViewMyTasks:
		return userID != "" && t.AssigneeID == userID
	case entities.ViewTodo:
		return t.Status == entities.TaskTodo
	case entities.ViewInProgress:
		return t.Status == entities.TaskInProgress
	case entities.ViewDone:
		return t.Status == entities.TaskDone
	case entities.ViewOverdue:
		return t.IsOverdue(now)
	default:
		return true
	}
}

// Package entities contains core business entities.
package entities

// ProjectProgress is a project together with its task completion.
type ProjectProgress struct {
	Project    Project
	TotalTasks int
	DoneTasks  int
	Progress   int
}

// UserTaskStats counts tasks assigned to a user.
type UserTaskStats struct {
	UserID    string
	Total     int
	Active    int
	Completed int
}

// Dashboard aggregates the counters shown on the landing view.
type Dashboard struct {
	ActiveProjects int
	TotalTasks     int
	CompletedTasks int
	OverdueTasks   int
	CompletionRate int
	TotalUsers     int
	MyTasks        int
	MyActiveTasks  int
	RecentProjects []ProjectProgress
	RecentTasks    []Task
}

// TaskBoard groups tasks by status in board order.
type TaskBoard struct {
	Columns []TaskColumn
}

// TaskColumn is one status column of a board.
type TaskColumn struct {
	Status TaskStatus
	Tasks  []Task
}

// TaskView names a preset task list filter.
type TaskView string

const (
	ViewAll        TaskView = "all"
	ViewMyTasks    TaskView = "my-tasks"
	ViewTodo       TaskView = "todo"
	ViewInProgress TaskView = "in-progress"
	ViewDone       TaskView = "done"
	ViewOverdue    TaskView = "overdue"
)

// Valid reports whether v is a known view; empty means all.
func (v TaskView) Valid() bool {
	switch v {
	case "", ViewAll, ViewMyTasks, ViewTodo, ViewInProgress, ViewDone, ViewOverdue:
		return true
	}
	return false
}

// TaskFilter narrows a task listing after role visibility.
type TaskFilter struct {
	Search string
	View   TaskView
}

// Permissions bundles the session-wide action flags.
type Permissions struct {
	CanCreateProject bool
	CanCreateTask    bool
	CanManageUsers   bool
	Views            []string
}

// ProjectItem is a project listing row with its edit flag.
type ProjectItem struct {
	ProjectProgress
	CanEdit bool
}

// TaskItem is a task listing row with its edit flag.
type TaskItem struct {
	Task    Task
	CanEdit bool
}

// UserItem is a user listing row with task statistics.
type UserItem struct {
	User  User
	Stats UserTaskStats
}

package aggregate

import (
	"math"
	"testing"
	"time"

	"projectflow/internal/entities"
	"projectflow/internal/seed"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func tasksWithStatuses(statuses ...entities.TaskStatus) []entities.Task {
	tasks := make([]entities.Task, 0, len(statuses))
	for i, s := range statuses {
		tasks = append(tasks, entities.Task{ID: string(rune('a' + i)), Status: s})
	}
	return tasks
}

func TestPercentMatchesRounding(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for part := 0; part <= total; part++ {
			want := int(math.Round(100 * float64(part) / float64(total)))
			require.Equal(t, want, Percent(part, total), "%d/%d", part, total)
		}
	}
	require.Equal(t, 0, Percent(0, 0))
}

func TestCompletionRate(t *testing.T) {
	require.Equal(t, 0, CompletionRate(nil))
	require.Equal(t, 100, CompletionRate(tasksWithStatuses(entities.TaskDone, entities.TaskDone)))
	require.Equal(t, 33, CompletionRate(tasksWithStatuses(entities.TaskDone, entities.TaskTodo, entities.TaskInProgress)))
	require.Equal(t, 67, CompletionRate(tasksWithStatuses(entities.TaskDone, entities.TaskDone, entities.TaskTodo)))
	require.Equal(t, 0, CompletionRate(tasksWithStatuses(entities.TaskTodo)))
}

func TestOverdueCount(t *testing.T) {
	tasks := []entities.Task{
		{ID: "1", Status: entities.TaskTodo, DueDate: now.Add(-time.Hour)},
		{ID: "2", Status: entities.TaskDone, DueDate: now.Add(-time.Hour)},
		{ID: "3", Status: entities.TaskInProgress, DueDate: now.Add(time.Hour)},
		{ID: "4", Status: entities.TaskInProgress, DueDate: now},
	}
	require.Equal(t, 1, OverdueCount(tasks, now))
}

func TestProjectProgressSeed(t *testing.T) {
	ds := seed.MustLoad(now)

	p1 := ProjectProgress(ds.Projects[0], ds.Tasks)
	require.Equal(t, 3, p1.TotalTasks)
	require.Equal(t, 1, p1.DoneTasks)
	require.Equal(t, 33, p1.Progress)

	empty := ProjectProgress(entities.Project{ID: "none"}, ds.Tasks)
	require.Zero(t, empty.TotalTasks)
	require.Zero(t, empty.Progress)
}

func TestUserTaskStats(t *testing.T) {
	ds := seed.MustLoad(now)

	alex := UserTaskStats("3", ds.Tasks)
	require.Equal(t, entities.UserTaskStats{UserID: "3", Total: 3, Active: 2, Completed: 1}, alex)

	require.Equal(t, entities.UserTaskStats{UserID: "1"}, UserTaskStats("1", ds.Tasks))
}

func TestDashboardSeed(t *testing.T) {
	ds := seed.MustLoad(now)
	alex := ds.Users[2]

	d := Dashboard(&alex, ds.Users, ds.Projects, ds.Tasks, now)
	require.Equal(t, 1, d.ActiveProjects)
	require.Equal(t, 4, d.TotalTasks)
	require.Equal(t, 1, d.CompletedTasks)
	require.Equal(t, 3, d.OverdueTasks)
	require.Equal(t, 25, d.CompletionRate)
	require.Equal(t, 4, d.TotalUsers)
	require.Equal(t, 3, d.MyTasks)
	require.Equal(t, 2, d.MyActiveTasks)
	require.Len(t, d.RecentProjects, 2)
	require.Len(t, d.RecentTasks, 4)

	anon := Dashboard(nil, ds.Users, ds.Projects, ds.Tasks, now)
	require.Zero(t, anon.MyTasks)
}

func TestBoard(t *testing.T) {
	ds := seed.MustLoad(now)
	board := Board(ds.Tasks)

	require.Len(t, board.Columns, 3)
	require.Equal(t, entities.TaskTodo, board.Columns[0].Status)
	require.Len(t, board.Columns[0].Tasks, 2)
	require.Len(t, board.Columns[1].Tasks, 1)
	require.Len(t, board.Columns[2].Tasks, 1)
}

func TestFilterTasks(t *testing.T) {
	ds := seed.MustLoad(now)

	ids := func(tasks []entities.Task) []string {
		res := make([]string, 0, len(tasks))
		for _, t := range tasks {
			res = append(res, t.ID)
		}
		return res
	}

	require.Equal(t, []string{"2"}, ids(FilterTasks(ds.Tasks, entities.TaskFilter{Search: "AUTH"}, "3", now)))
	require.Equal(t, []string{"1", "2", "4"}, ids(FilterTasks(ds.Tasks, entities.TaskFilter{View: entities.ViewMyTasks}, "3", now)))
	require.Equal(t, []string{"3", "4"}, ids(FilterTasks(ds.Tasks, entities.TaskFilter{View: entities.ViewTodo}, "3", now)))
	require.Equal(t, []string{"1"}, ids(FilterTasks(ds.Tasks, entities.TaskFilter{View: entities.ViewDone}, "3", now)))
	require.Equal(t, []string{"2", "3", "4"}, ids(FilterTasks(ds.Tasks, entities.TaskFilter{View: entities.ViewOverdue}, "3", now)))
	require.Len(t, FilterTasks(ds.Tasks, entities.TaskFilter{}, "", now), 4)
	require.Empty(t, FilterTasks(ds.Tasks, entities.TaskFilter{View: entities.ViewMyTasks}, "", now))
}

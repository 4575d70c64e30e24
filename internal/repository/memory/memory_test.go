package memory

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"projectflow/internal/entities"
	"projectflow/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *Store {
	t.Helper()

	var seq atomic.Int64
	s := New(zap.NewNop().Sugar(),
		WithClock(func() time.Time { return fixedNow }),
		WithIDs(func() string { return "n" + strconv.FormatInt(seq.Add(1), 10) }),
	)
	require.NoError(t, s.OnStart(context.Background()))
	t.Cleanup(func() { _ = s.OnStop(context.Background()) })
	return s
}

func TestSeededCollections(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	u, err := s.GetUser(ctx, "3")
	require.NoError(t, err)
	require.Equal(t, "Alex Rivera", u.Name)

	_, err = s.GetUser(ctx, "99")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	p, err := s.CreateProject(ctx, entities.Project{
		ID:        "ignored",
		Name:      "Data Platform",
		Status:    entities.ProjectPlanning,
		ManagerID: "2",
	})
	require.NoError(t, err)
	require.Equal(t, "n1", p.ID)
	require.Equal(t, fixedNow, p.CreatedAt)
	require.Equal(t, fixedNow, p.UpdatedAt)
	require.NotNil(t, p.TeamMembers)

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.Equal(t, "n1", projects[2].ID)
}

func TestUpdateProjectMergesFields(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	name := "Storefront"
	members := []string{"3"}
	p, err := s.UpdateProject(ctx, "1", entities.ProjectPatch{Name: &name, TeamMembers: &members})
	require.NoError(t, err)
	require.Equal(t, "Storefront", p.Name)
	require.Equal(t, []string{"3"}, p.TeamMembers)
	require.Equal(t, entities.ProjectActive, p.Status)
	require.Equal(t, fixedNow, p.UpdatedAt)

	members[0] = "4"
	got, err := s.GetProject(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, []string{"3"}, got.TeamMembers)

	_, err = s.UpdateProject(ctx, "missing", entities.ProjectPatch{Name: &name})
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
}

func TestDeleteProjectCascades(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.DeleteProject(ctx, "1"))

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "2", projects[0].ID)

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "4", tasks[0].ID)
	require.Equal(t, "2", tasks[0].ProjectID)

	require.ErrorIs(t, s.DeleteProject(ctx, "1"), entities.ErrProjectNotFound)
}

func TestTaskLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	created, err := s.CreateTask(ctx, entities.Task{
		Title:       "Write docs",
		Status:      entities.TaskTodo,
		Priority:    entities.PriorityLow,
		ProjectID:   "2",
		CreatedByID: "2",
		DueDate:     fixedNow.Add(48 * time.Hour),
		Comments:    []entities.Comment{{ID: "c"}},
	})
	require.NoError(t, err)
	require.Equal(t, "n1", created.ID)
	require.Empty(t, created.Comments)
	require.NotNil(t, created.Comments)

	status := entities.TaskDone
	updated, err := s.UpdateTask(ctx, "2", entities.TaskPatch{Status: &status})
	require.NoError(t, err)
	require.Equal(t, entities.TaskDone, updated.Status)
	require.Equal(t, "Design user authentication", updated.Title)
	require.Equal(t, fixedNow, updated.UpdatedAt)

	_, err = s.UpdateTask(ctx, "missing", entities.TaskPatch{Status: &status})
	require.ErrorIs(t, err, entities.ErrTaskNotFound)

	require.NoError(t, s.DeleteTask(ctx, created.ID))
	_, err = s.GetTask(ctx, created.ID)
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
	require.ErrorIs(t, s.DeleteTask(ctx, created.ID), entities.ErrTaskNotFound)
}

func TestReadsDoNotAlias(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	projects[0].TeamMembers[0] = "x"
	projects[0].Name = "x"

	p, err := s.GetProject(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "2", p.TeamMembers[0])
	require.Equal(t, "E-commerce Platform", p.Name)
}

func TestConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	s := New(zap.NewNop().Sugar())
	require.NoError(t, s.OnStart(ctx))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_, err := s.CreateTask(ctx, entities.Task{Title: "t", ProjectID: "1", Status: entities.TaskTodo})
				assert.NoError(t, err)
				_, err = s.ListTasks(ctx)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 4+8*25)

	ids := make(map[string]struct{}, len(tasks))
	for _, task := range tasks {
		ids[task.ID] = struct{}{}
	}
	require.Len(t, ids, len(tasks))
}

func TestWithDatasetReplacesSeed(t *testing.T) {
	ctx := context.Background()
	ds := seed.Dataset{
		Users: []entities.User{{ID: "u1", Name: "Solo", Email: "solo@company.com", Role: entities.RoleManager}},
		Projects: []entities.Project{
			{ID: "p1", Name: "Only", Status: entities.ProjectActive, ManagerID: "u1", TeamMembers: []string{"u1"}},
		},
	}

	s := New(zap.NewNop().Sugar(), WithDataset(ds))
	require.NoError(t, s.OnStart(ctx))
	t.Cleanup(func() { _ = s.OnStop(ctx) })

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)

	ds.Projects[0].TeamMembers[0] = "changed"
	p, err := s.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, []string{"u1"}, p.TeamMembers)
}

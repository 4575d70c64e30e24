package access

import (
	"testing"
	"time"

	"projectflow/internal/entities"
	"projectflow/internal/seed"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func dataset(t *testing.T) seed.Dataset {
	t.Helper()
	ds, err := seed.Load(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return ds
}

func userByID(t *testing.T, ds seed.Dataset, id string) *entities.User {
	t.Helper()
	for i := range ds.Users {
		if ds.Users[i].ID == id {
			u := ds.Users[i]
			return &u
		}
	}
	t.Fatalf("user %s not in dataset", id)
	return nil
}

func taskIDs(tasks []entities.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func projectIDs(projects []entities.Project) []string {
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestVisibleTasksDeveloperScope(t *testing.T) {
	ds := dataset(t)

	got := taskIDs(VisibleTasks(userByID(t, ds, "3"), ds.Tasks))
	if diff := cmp.Diff([]string{"1", "2", "4"}, got); diff != "" {
		t.Fatalf("visible tasks mismatch (-want +got):\n%s", diff)
	}

	got = taskIDs(VisibleTasks(userByID(t, ds, "4"), ds.Tasks))
	if diff := cmp.Diff([]string{"3"}, got); diff != "" {
		t.Fatalf("visible tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleTasksDeveloperNeverSeesUnrelated(t *testing.T) {
	ds := dataset(t)
	for _, u := range ds.Users {
		if u.Role != entities.RoleDeveloper {
			continue
		}
		u := u
		for _, task := range VisibleTasks(&u, ds.Tasks) {
			require.True(t, task.AssigneeID == u.ID || task.CreatedByID == u.ID, "task %s leaked to %s", task.ID, u.ID)
		}
	}
}

func TestVisibleTasksCreatorCanSee(t *testing.T) {
	dev := &entities.User{ID: "9", Role: entities.RoleDeveloper}
	tasks := []entities.Task{
		{ID: "a", CreatedByID: "9", AssigneeID: "1"},
		{ID: "b", CreatedByID: "1"},
	}
	require.Equal(t, []string{"a"}, taskIDs(VisibleTasks(dev, tasks)))
}

func TestVisibleTasksManagersAndAdminsSeeAll(t *testing.T) {
	ds := dataset(t)
	require.Len(t, VisibleTasks(userByID(t, ds, "1"), ds.Tasks), 4)
	require.Len(t, VisibleTasks(userByID(t, ds, "2"), ds.Tasks), 4)
}

func TestNilUserDegenerates(t *testing.T) {
	ds := dataset(t)

	require.Empty(t, VisibleTasks(nil, ds.Tasks))
	require.Empty(t, AvailableProjects(nil, ds.Projects))
	require.False(t, CanCreateProject(nil))
	require.False(t, CanEditProject(nil, ds.Projects[0]))
	require.False(t, CanCreateTask(nil))
	require.False(t, CanEditTask(nil, ds.Tasks[0]))
	require.False(t, CanManageUsers(nil))
	require.False(t, CanViewTask(nil, ds.Tasks[0]))

	perms := Permissions(nil)
	require.False(t, perms.CanCreateProject)
	require.False(t, perms.CanCreateTask)
	require.Empty(t, perms.Views)
}

func TestCanEditProject(t *testing.T) {
	admin := &entities.User{ID: "1", Role: entities.RoleAdmin}
	manager := &entities.User{ID: "2", Role: entities.RoleManager}
	otherManager := &entities.User{ID: "5", Role: entities.RoleManager}
	dev := &entities.User{ID: "3", Role: entities.RoleDeveloper}
	p := entities.Project{ID: "p", ManagerID: "2", TeamMembers: []string{"3"}}

	require.True(t, CanEditProject(admin, p))
	require.True(t, CanEditProject(manager, p))
	require.False(t, CanEditProject(otherManager, p))
	require.False(t, CanEditProject(dev, p))
}

func TestCanEditTask(t *testing.T) {
	task := entities.Task{ID: "t", AssigneeID: "3", CreatedByID: "2"}

	tests := []struct {
		name string
		user *entities.User
		want bool
	}{
		{name: "admin", user: &entities.User{ID: "1", Role: entities.RoleAdmin}, want: true},
		{name: "manager", user: &entities.User{ID: "7", Role: entities.RoleManager}, want: true},
		{name: "assignee", user: &entities.User{ID: "3", Role: entities.RoleDeveloper}, want: true},
		{name: "creator developer", user: &entities.User{ID: "2", Role: entities.RoleDeveloper}, want: false},
		{name: "other developer", user: &entities.User{ID: "4", Role: entities.RoleDeveloper}, want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CanEditTask(tt.user, task))
		})
	}

	unassigned := entities.Task{ID: "u"}
	require.False(t, CanEditTask(&entities.User{ID: "", Role: entities.RoleDeveloper}, unassigned))
}

func TestCreatePermissions(t *testing.T) {
	for role, want := range map[entities.Role]bool{
		entities.RoleAdmin:     true,
		entities.RoleManager:   true,
		entities.RoleDeveloper: false,
	} {
		u := &entities.User{ID: "x", Role: role}
		require.Equal(t, want, CanCreateTask(u), role)
		require.Equal(t, want, CanCreateProject(u), role)
	}
}

func TestAssignableUsers(t *testing.T) {
	ds := dataset(t)

	var ids []string
	for _, u := range AssignableUsers(ds.Projects[1], ds.Users) {
		ids = append(ids, u.ID)
	}
	require.Equal(t, []string{"2", "3"}, ids)

	ids = nil
	for _, u := range AssignableUsers(ds.Projects[0], ds.Users) {
		ids = append(ids, u.ID)
	}
	require.Equal(t, []string{"2", "3", "4"}, ids)
}

func TestAvailableProjects(t *testing.T) {
	ds := dataset(t)

	require.Equal(t, []string{"1", "2"}, projectIDs(AvailableProjects(userByID(t, ds, "1"), ds.Projects)))
	require.Equal(t, []string{"1", "2"}, projectIDs(AvailableProjects(userByID(t, ds, "2"), ds.Projects)))
	require.Equal(t, []string{"1", "2"}, projectIDs(AvailableProjects(userByID(t, ds, "3"), ds.Projects)))
	require.Equal(t, []string{"1"}, projectIDs(AvailableProjects(userByID(t, ds, "4"), ds.Projects)))

	other := &entities.User{ID: "8", Role: entities.RoleManager}
	require.Empty(t, AvailableProjects(other, ds.Projects))
}

func TestViews(t *testing.T) {
	require.Equal(t,
		[]string{ViewDashboard, ViewProjects, ViewTasks, ViewUsers, ViewSettings},
		Views(&entities.User{Role: entities.RoleManager}),
	)
	require.Equal(t,
		[]string{ViewDashboard, ViewProjects, ViewTasks, ViewSettings},
		Views(&entities.User{Role: entities.RoleDeveloper}),
	)
}

func TestRoleRules(t *testing.T) {
	require.True(t, ProjectRule(entities.RoleAdmin, false))
	require.False(t, ProjectRule(entities.RoleManager, false))
	require.True(t, ProjectRule(entities.RoleManager, true))
	require.False(t, ProjectRule(entities.RoleDeveloper, true))

	require.True(t, TaskRule(entities.RoleDeveloper, true))
	require.False(t, TaskRule(entities.RoleDeveloper, false))

	require.False(t, VisibilityRule(entities.RoleDeveloper, false))
	require.True(t, VisibilityRule(entities.RoleManager, false))
	require.False(t, VisibilityRule(entities.Role("guest"), true))
}

package seed

import (
	"testing"
	"time"

	"projectflow/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestLoadDataset(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ds, err := Load(now)
	require.NoError(t, err)

	require.Len(t, ds.Users, 4)
	require.Len(t, ds.Projects, 2)
	require.Len(t, ds.Tasks, 4)

	require.Equal(t, entities.RoleAdmin, ds.Users[0].Role)
	require.Equal(t, "alex@company.com", ds.Users[2].Email)
	require.Equal(t, now, ds.Users[0].CreatedAt)

	require.Equal(t, []string{"2", "3", "4"}, ds.Projects[0].TeamMembers)
	require.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), ds.Projects[0].EndDate)
	require.Equal(t, now, ds.Projects[0].UpdatedAt)

	require.Equal(t, "4", ds.Tasks[2].AssigneeID)
	require.Equal(t, entities.TaskInProgress, ds.Tasks[1].Status)
	require.NotNil(t, ds.Tasks[0].Comments)
}

func TestParseRejectsUnknownRole(t *testing.T) {
	doc := []byte("users:\n  - id: \"9\"\n    name: X\n    email: x@y\n    role: owner\n")
	_, err := Parse(doc, time.Now())
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

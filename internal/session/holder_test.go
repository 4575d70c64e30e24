package session

import (
	"sync"
	"testing"
	"time"

	"projectflow/internal/entities"
	"projectflow/internal/seed"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newHolder(t *testing.T, defaultUserID string) (*Holder, []entities.User) {
	t.Helper()
	ds, err := seed.Load(time.Now())
	require.NoError(t, err)
	return New(zap.NewNop().Sugar(), ds.Users, defaultUserID), ds.Users
}

func TestDefaultSessionIsAdmin(t *testing.T) {
	h, _ := newHolder(t, "")

	s := h.Current()
	require.True(t, s.IsAuthenticated)
	require.NotNil(t, s.User)
	require.Equal(t, entities.RoleAdmin, s.User.Role)
	require.Equal(t, "1", s.User.ID)
}

func TestDefaultSessionConfigured(t *testing.T) {
	h, _ := newHolder(t, "3")
	require.Equal(t, "3", h.User().ID)

	h, _ = newHolder(t, "404")
	require.Equal(t, "1", h.User().ID)
}

func TestLoginEveryUser(t *testing.T) {
	h, users := newHolder(t, "")

	for _, u := range users {
		require.True(t, h.Login(u.Email, "anything"))
		s := h.Current()
		require.True(t, s.IsAuthenticated)
		require.Equal(t, u.ID, s.User.ID)
	}
}

func TestLoginUnknownEmailKeepsSession(t *testing.T) {
	h, _ := newHolder(t, "")
	require.True(t, h.SwitchUser("2"))

	require.False(t, h.Login("nonexistent@x", "secret"))
	s := h.Current()
	require.True(t, s.IsAuthenticated)
	require.Equal(t, "2", s.User.ID)

	h.Logout()
	require.False(t, h.Login("nonexistent@x", ""))
	require.False(t, h.Current().IsAuthenticated)
}

func TestLogout(t *testing.T) {
	h, _ := newHolder(t, "")

	h.Logout()
	s := h.Current()
	require.False(t, s.IsAuthenticated)
	require.Nil(t, s.User)
	require.Nil(t, h.User())
}

func TestSwitchUser(t *testing.T) {
	h, _ := newHolder(t, "")

	require.True(t, h.SwitchUser("3"))
	require.Equal(t, "3", h.User().ID)
	require.True(t, h.Current().IsAuthenticated)

	require.False(t, h.SwitchUser("99"))
	require.Equal(t, "3", h.User().ID)
}

func TestCurrentReturnsCopy(t *testing.T) {
	h, _ := newHolder(t, "")

	s := h.Current()
	s.User.Name = "changed"
	require.NotEqual(t, "changed", h.Current().User.Name)
}

func TestConcurrentTransitions(t *testing.T) {
	h, users := newHolder(t, "")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				u := users[(i+j)%len(users)]
				switch j % 3 {
				case 0:
					h.Login(u.Email, "")
				case 1:
					h.SwitchUser(u.ID)
				default:
					_ = h.Current()
				}
			}
		}(i)
	}
	wg.Wait()

	require.True(t, h.Current().IsAuthenticated)
}

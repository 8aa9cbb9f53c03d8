package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/lalith-99/chatbook/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.now = t
}

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDirectory(t *testing.T) (*Directory, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: epoch}
	return NewDirectory(zaptest.NewLogger(t), WithClock(clock.Now)), clock
}

// register is a helper that registers each name with a contact derived from it.
func register(t *testing.T, d *Directory, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := d.RegisterUser(name, "+1-"+name)
		require.NoError(t, err)
	}
}

func TestDirectory_RegisterUser(t *testing.T) {
	t.Run("should register users with distinct names and contacts", func(t *testing.T) {
		req := require.New(t)
		d, _ := newTestDirectory(t)

		alex, err := d.RegisterUser("Alex", "9000000001")
		req.NoError(err)
		req.Equal("Alex", alex.Name)
		req.Equal("9000000001", alex.Contact)

		_, err = d.RegisterUser("Bob", "9000000002")
		req.NoError(err)

		got, err := d.GetUser("Bob")
		req.NoError(err)
		req.Equal("9000000002", got.Contact)
	})

	t.Run("should reject a contact that is already registered", func(t *testing.T) {
		req := require.New(t)
		d, _ := newTestDirectory(t)

		_, err := d.RegisterUser("Alex", "9000000001")
		req.NoError(err)

		_, err = d.RegisterUser("Bob", "9000000001")
		req.ErrorIs(err, repository.ErrDuplicateContact)

		_, err = d.GetUser("Bob")
		req.ErrorIs(err, repository.ErrUserNotRegistered)
	})

	t.Run("should reject a name that is already registered", func(t *testing.T) {
		req := require.New(t)
		d, _ := newTestDirectory(t)

		_, err := d.RegisterUser("Alex", "9000000001")
		req.NoError(err)

		_, err = d.RegisterUser("Alex", "9000000002")
		req.ErrorIs(err, repository.ErrDuplicateName)

		got, err := d.GetUser("Alex")
		req.NoError(err)
		req.Equal("9000000001", got.Contact, "first registration must not be overwritten")
	})

	t.Run("should report the contact collision first", func(t *testing.T) {
		req := require.New(t)
		d, _ := newTestDirectory(t)

		_, err := d.RegisterUser("Alex", "9000000001")
		req.NoError(err)

		_, err = d.RegisterUser("Alex", "9000000001")
		req.ErrorIs(err, repository.ErrDuplicateContact)
	})

	t.Run("should reject empty fields", func(t *testing.T) {
		req := require.New(t)
		d, _ := newTestDirectory(t)

		_, err := d.RegisterUser("", "9000000001")
		req.ErrorIs(err, repository.ErrInvalidArgument)
		_, err = d.RegisterUser("Alex", "")
		req.ErrorIs(err, repository.ErrInvalidArgument)
	})
}

func TestDirectory_ConcurrentCreateMessage(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDirectory(t)

	const workers, perWorker = 8, 50
	ids := make(chan int64, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- d.CreateMessage("hi")
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		req.False(seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	req.Len(seen, workers*perWorker)
	for id := int64(1); id <= workers*perWorker; id++ {
		req.True(seen[id], "missing id %d", id)
	}
}

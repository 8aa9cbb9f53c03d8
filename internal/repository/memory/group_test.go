package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lalith-99/chatbook/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestDirectory_CreateGroup(t *testing.T) {
	t.Run("personal chat is named after the second member", func(t *testing.T) {
		req := require.New(t)
		d, _ := newTestDirectory(t)
		register(t, d, "Dan", "Evan")

		g, err := d.CreateGroup([]string{"Dan", "Evan"})
		req.NoError(err)
		req.Equal("Evan", g.Name)
		req.Equal("Dan", g.Admin)
		req.Equal(2, g.Size)
		req.True(g.IsPersonalChat())
		req.Equal([]string{"Dan", "Evan"}, g.Members)
		req.Equal(epoch, g.CreatedAt)
	})

	t.Run("named groups are numbered and personal chats don't advance the counter", func(t *testing.T) {
		req := require.New(t)
		d, _ := newTestDirectory(t)
		register(t, d, "Alex", "Bob", "Charlie", "Dan", "Evan", "Felix", "Graham", "Hugh")

		first, err := d.CreateGroup([]string{"Alex", "Bob", "Charlie"})
		req.NoError(err)
		second, err := d.CreateGroup([]string{"Dan", "Evan"})
		req.NoError(err)
		third, err := d.CreateGroup([]string{"Felix", "Graham", "Hugh"})
		req.NoError(err)

		req.Equal("Group 1", first.Name)
		req.Equal("Evan", second.Name)
		req.Equal("Group 2", third.Name)
		req.Equal("Alex", first.Admin)
		req.Equal("Felix", third.Admin)
	})

	t.Run("should reject fewer than two members without touching the counter", func(t *testing.T) {
		req := require.New(t)
		d, _ := newTestDirectory(t)
		register(t, d, "Alex", "Bob", "Charlie")

		_, err := d.CreateGroup([]string{"Alex"})
		req.ErrorIs(err, repository.ErrTooFewMembers)
		_, err = d.CreateGroup(nil)
		req.ErrorIs(err, repository.ErrTooFewMembers)

		g, err := d.CreateGroup([]string{"Alex", "Bob", "Charlie"})
		req.NoError(err)
		req.Equal("Group 1", g.Name)
	})

	t.Run("should reject unregistered members without touching the counter", func(t *testing.T) {
		req := require.New(t)
		d, _ := newTestDirectory(t)
		register(t, d, "Alex", "Bob", "Charlie")

		_, err := d.CreateGroup([]string{"Alex", "Bob", "Zoe"})
		req.ErrorIs(err, repository.ErrUserNotRegistered)
		req.Empty(d.ListGroups())

		g, err := d.CreateGroup([]string{"Alex", "Bob", "Charlie"})
		req.NoError(err)
		req.Equal("Group 1", g.Name)
	})

	t.Run("returned group is a snapshot", func(t *testing.T) {
		req := require.New(t)
		d, _ := newTestDirectory(t)
		register(t, d, "Alex", "Bob")

		members := []string{"Alex", "Bob"}
		g, err := d.CreateGroup(members)
		req.NoError(err)

		members[1] = "Mallory"
		g.Members[0] = "Mallory"

		stored, err := d.GetGroup(g.ID)
		req.NoError(err)
		req.Equal([]string{"Alex", "Bob"}, stored.Members)
	})
}

func TestDirectory_GetGroup(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDirectory(t)

	_, err := d.GetGroup(uuid.New())
	req.ErrorIs(err, repository.ErrGroupNotFound)
}

func TestDirectory_ListGroups(t *testing.T) {
	req := require.New(t)
	d, _ := newTestDirectory(t)
	register(t, d, "Alex", "Bob", "Charlie")

	req.NotNil(d.ListGroups())
	req.Empty(d.ListGroups())

	g1, err := d.CreateGroup([]string{"Alex", "Bob", "Charlie"})
	req.NoError(err)
	g2, err := d.CreateGroup([]string{"Bob", "Charlie"})
	req.NoError(err)

	groups := d.ListGroups()
	req.Len(groups, 2)
	req.Equal(g1.ID, groups[0].ID)
	req.Equal(g2.ID, groups[1].ID)
}

func TestDirectory_ChangeAdmin(t *testing.T) {
	setup := func(t *testing.T) (*Directory, uuid.UUID) {
		d, _ := newTestDirectory(t)
		register(t, d, "Alex", "Bob", "Charlie", "Dan")
		g, err := d.CreateGroup([]string{"Alex", "Bob", "Charlie"})
		require.NoError(t, err)
		return d, g.ID
	}

	t.Run("should transfer admin rights", func(t *testing.T) {
		req := require.New(t)
		d, id := setup(t)

		req.NoError(d.ChangeAdmin("Alex", "Bob", id))

		g, err := d.GetGroup(id)
		req.NoError(err)
		req.Equal("Bob", g.Admin)
		req.Contains(g.Members, "Alex", "former admin stays a member")
	})

	t.Run("former admin can no longer transfer rights", func(t *testing.T) {
		req := require.New(t)
		d, id := setup(t)

		req.NoError(d.ChangeAdmin("Alex", "Bob", id))
		req.ErrorIs(d.ChangeAdmin("Alex", "Charlie", id), repository.ErrNotAuthorized)
		req.NoError(d.ChangeAdmin("Bob", "Charlie", id))
	})

	t.Run("should reject an unknown group", func(t *testing.T) {
		req := require.New(t)
		d, _ := setup(t)

		req.ErrorIs(d.ChangeAdmin("Alex", "Bob", uuid.New()), repository.ErrGroupNotFound)
	})

	t.Run("should reject a non-admin approver", func(t *testing.T) {
		req := require.New(t)
		d, id := setup(t)

		req.ErrorIs(d.ChangeAdmin("Bob", "Charlie", id), repository.ErrNotAuthorized)
	})

	t.Run("should reject a target outside the group", func(t *testing.T) {
		req := require.New(t)
		d, id := setup(t)

		req.ErrorIs(d.ChangeAdmin("Alex", "Dan", id), repository.ErrNotAParticipant)

		g, err := d.GetGroup(id)
		req.NoError(err)
		req.Equal("Alex", g.Admin)
	})

	t.Run("authorization is checked before participation", func(t *testing.T) {
		req := require.New(t)
		d, id := setup(t)

		req.ErrorIs(d.ChangeAdmin("Bob", "Dan", id), repository.ErrNotAuthorized)
	})
}

package memory

import (
	"fmt"

	"github.com/lalith-99/chatbook/internal/models"
	"github.com/lalith-99/chatbook/internal/repository"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

func (d *Directory) RegisterUser(name, contact string) (models.User, error) {
	if name == "" || contact == "" {
		return models.User{}, fmt.Errorf("register user: name and contact are required: %w", repository.ErrInvalidArgument)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Contact is checked first: a request that collides on both reports
	// the contact collision.
	if _, taken := d.contacts[contact]; taken {
		return models.User{}, fmt.Errorf("register user %q: %w", name, repository.ErrDuplicateContact)
	}
	if _, taken := d.users[name]; taken {
		return models.User{}, fmt.Errorf("register user %q: %w", name, repository.ErrDuplicateName)
	}

	user := models.User{Name: name, Contact: contact}
	d.users[name] = user
	d.contacts[contact] = name

	d.logger.Debug("user registered", zap.String("user", name))
	return user, nil
}

func (d *Directory) GetUser(name string) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.users[name]
	if !ok {
		return models.User{}, fmt.Errorf("get user %q: %w", name, repository.ErrUserNotRegistered)
	}
	return user, nil
}

// RemoveUser takes a non-admin user out of their group and purges every
// message they sent.
//
// The purge is directory-wide: the user's messages leave every group's
// message list, the sender map and the message registry. The user is
// unregistered once no group lists them any more, which frees the contact.
//
// The result adds three different counters on purpose:
//
//	members left in the group + messages left in the group + sent messages left overall
func (d *Directory) RemoveUser(name string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	group, found := d.findGroupOf(name)
	if !found {
		return 0, fmt.Errorf("remove user %q: %w", name, repository.ErrUserNotFound)
	}
	if group.admin == name {
		return 0, fmt.Errorf("remove user %q: %w", name, repository.ErrCannotRemoveAdmin)
	}

	group.members = lo.Without(group.members, name)

	sentByUser := func(id int64, _ int) bool {
		return d.senders[id] == name
	}
	for _, id := range d.groupOrder {
		g := d.groups[id]
		g.messages = lo.Reject(g.messages, sentByUser)
	}

	purged := 0
	for id, sender := range d.senders {
		if sender != name {
			continue
		}
		delete(d.senders, id)
		delete(d.messages, id)
		purged++
	}

	if _, stillMember := d.findGroupOf(name); !stillMember {
		if user, ok := d.users[name]; ok {
			delete(d.contacts, user.Contact)
			delete(d.users, name)
		}
	}

	d.logger.Info("user removed",
		zap.String("user", name),
		zap.Stringer("group_id", group.id),
		zap.Int("messages_purged", purged),
	)

	return len(group.members) + len(group.messages) + len(d.senders), nil
}

// findGroupOf scans groups oldest first and returns the first one listing name.
// Callers must hold mu.
func (d *Directory) findGroupOf(name string) (*groupRecord, bool) {
	for _, id := range d.groupOrder {
		g := d.groups[id]
		if lo.Contains(g.members, name) {
			return g, true
		}
	}
	return nil, false
}

package memory

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lalith-99/chatbook/internal/models"
	"github.com/lalith-99/chatbook/internal/repository"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// CreateGroup creates a group. members[0] is the admin.
//
// Naming:
//   - 2 members: a personal chat named after members[1]. The group counter
//     is left alone.
//   - 3+ members: the counter goes up by one and the group is "Group N".
//
// The counter never goes down, even if groups are emptied later.
func (d *Directory) CreateGroup(members []string) (models.Group, error) {
	if len(members) < 2 {
		return models.Group{}, fmt.Errorf("create group with %d members: %w", len(members), repository.ErrTooFewMembers)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	unknown := lo.Reject(members, func(name string, _ int) bool {
		_, ok := d.users[name]
		return ok
	})
	if len(unknown) > 0 {
		return models.Group{}, fmt.Errorf("create group: %q: %w", unknown[0], repository.ErrUserNotRegistered)
	}

	var name string
	if len(members) == 2 {
		name = members[1]
	} else {
		d.groupCount++
		name = fmt.Sprintf("Group %d", d.groupCount)
	}

	g := &groupRecord{
		id:        d.newID(),
		name:      name,
		size:      len(members),
		members:   append([]string(nil), members...),
		admin:     members[0],
		messages:  make([]int64, 0),
		createdAt: d.now(),
	}
	d.groups[g.id] = g
	d.groupOrder = append(d.groupOrder, g.id)

	d.logger.Info("group created",
		zap.Stringer("group_id", g.id),
		zap.String("name", g.name),
		zap.String("admin", g.admin),
		zap.Int("size", g.size),
	)
	return g.snapshot(), nil
}

func (d *Directory) GetGroup(id uuid.UUID) (models.Group, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	g, ok := d.groups[id]
	if !ok {
		return models.Group{}, fmt.Errorf("get group %s: %w", id, repository.ErrGroupNotFound)
	}
	return g.snapshot(), nil
}

func (d *Directory) ListGroups() []models.Group {
	d.mu.Lock()
	defer d.mu.Unlock()

	groups := make([]models.Group, 0, len(d.groupOrder))
	for _, id := range d.groupOrder {
		groups = append(groups, d.groups[id].snapshot())
	}
	return groups
}

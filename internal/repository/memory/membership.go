package memory

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lalith-99/chatbook/internal/repository"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ChangeAdmin moves admin rights from approver to target in one step.
// The old admin stays in the group as a regular member.
//
// Checks run in this order: group exists, approver is the admin,
// target is a member.
func (d *Directory) ChangeAdmin(approver, target string, groupID uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	g, ok := d.groups[groupID]
	if !ok {
		return fmt.Errorf("change admin of %s: %w", groupID, repository.ErrGroupNotFound)
	}
	if g.admin != approver {
		return fmt.Errorf("change admin of %s by %q: %w", groupID, approver, repository.ErrNotAuthorized)
	}
	if !lo.Contains(g.members, target) {
		return fmt.Errorf("change admin of %s to %q: %w", groupID, target, repository.ErrNotAParticipant)
	}

	g.admin = target

	d.logger.Info("admin changed",
		zap.Stringer("group_id", groupID),
		zap.String("from", approver),
		zap.String("to", target),
	)
	return nil
}

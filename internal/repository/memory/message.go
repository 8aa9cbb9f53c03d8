package memory

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lalith-99/chatbook/internal/models"
	"github.com/lalith-99/chatbook/internal/repository"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// CreateMessage stores content with the current timestamp. The i-th
// created message gets ID i. The message belongs to no group and has no
// sender until SendMessage.
func (d *Directory) CreateMessage(content string) int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastMessageID++
	msg := models.Message{
		ID:        d.lastMessageID,
		Content:   content,
		CreatedAt: d.now(),
	}
	d.messages[msg.ID] = msg

	d.logger.Debug("message created", zap.Int64("message_id", msg.ID))
	return msg.ID
}

func (d *Directory) GetMessage(id int64) (models.Message, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	msg, ok := d.messages[id]
	if !ok {
		return models.Message{}, fmt.Errorf("get message %d: %w", id, repository.ErrMessageNotFound)
	}
	msg.Sender = d.senders[id]
	return msg, nil
}

// SendMessage appends a message to a group and records its sender.
// Returns the group's message count after the append.
func (d *Directory) SendMessage(messageID int64, sender string, groupID uuid.UUID) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	g, ok := d.groups[groupID]
	if !ok {
		return 0, fmt.Errorf("send message %d to %s: %w", messageID, groupID, repository.ErrGroupNotFound)
	}
	if !lo.Contains(g.members, sender) {
		return 0, fmt.Errorf("send message %d as %q: %w", messageID, sender, repository.ErrNotAMember)
	}
	if _, ok := d.messages[messageID]; !ok {
		return 0, fmt.Errorf("send message %d: %w", messageID, repository.ErrMessageNotFound)
	}
	if prev, sent := d.senders[messageID]; sent {
		return 0, fmt.Errorf("send message %d (sent by %q): %w", messageID, prev, repository.ErrAlreadySent)
	}

	g.messages = append(g.messages, messageID)
	d.senders[messageID] = sender

	d.logger.Debug("message sent",
		zap.Int64("message_id", messageID),
		zap.String("sender", sender),
		zap.Stringer("group_id", groupID),
	)
	return len(g.messages), nil
}

func (d *Directory) GroupMessages(groupID uuid.UUID) ([]models.Message, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	g, ok := d.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("group messages of %s: %w", groupID, repository.ErrGroupNotFound)
	}

	return lo.Map(g.messages, func(id int64, _ int) models.Message {
		msg := d.messages[id]
		msg.Sender = d.senders[id]
		return msg
	}), nil
}

// FindMessage looks at every sent message whose timestamp is strictly
// between start and end, sorts them oldest first, and returns the content
// of the k-th one.
//
// Messages that were created but never sent don't count. Despite the
// "k-th latest" wording callers use for this query, position 1 is the
// earliest match.
func (d *Directory) FindMessage(start, end time.Time, k int) (string, error) {
	if k < 1 {
		return "", fmt.Errorf("find message: k=%d: %w", k, repository.ErrInvalidArgument)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	matches := make([]models.Message, 0)
	for id := range d.senders {
		msg := d.messages[id]
		if msg.CreatedAt.After(start) && msg.CreatedAt.Before(end) {
			matches = append(matches, msg)
		}
	}

	if len(matches) < k {
		return "", fmt.Errorf("find message: %d matches, k=%d: %w", len(matches), k, repository.ErrInsufficientMessages)
	}

	// senders is a map, so ties on the timestamp fall back to creation order.
	slices.SortFunc(matches, func(a, b models.Message) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return matches[k-1].Content, nil
}

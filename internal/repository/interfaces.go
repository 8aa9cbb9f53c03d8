//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_directory.go -package=mocks
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/lalith-99/chatbook/internal/models"
)

// Why no context.Context on these methods?
//
//   - The directory lives in memory. Nothing here blocks on the network
//     or a disk, so there is nothing to cancel.
//   - Every call completes (or fails) synchronously under one lock.
//     If a persistent implementation shows up later, ctx goes back in.

// Why do users travel as names and not as *models.User?
//
//   - The name is the registry key. Passing the key keeps the caller from
//     handing in a User value the directory never saw.

// UserRepository handles user registration.
type UserRepository interface {
	// RegisterUser stores a new user keyed by name.
	// Fails with ErrDuplicateContact if the contact is already taken,
	// then with ErrDuplicateName if the name is.
	RegisterUser(name, contact string) (models.User, error)

	// GetUser returns a registered user. ErrUserNotRegistered if unknown.
	GetUser(name string) (models.User, error)

	// RemoveUser removes a non-admin user from their group and purges
	// everything they sent. Returns the updated member count of the group,
	// plus the group's updated message count, plus the number of sent
	// messages left in the whole directory.
	RemoveUser(name string) (int, error)
}

// GroupRepository handles groups, membership and admin rights.
type GroupRepository interface {
	// CreateGroup creates a group from at least two registered users.
	// The first member becomes the admin.
	CreateGroup(members []string) (models.Group, error)

	// GetGroup returns a snapshot of one group. ErrGroupNotFound if unknown.
	GetGroup(id uuid.UUID) (models.Group, error)

	// ListGroups returns snapshots of every group, oldest first.
	// Returns empty slice (not nil) so JSON serializes to [] not null.
	ListGroups() []models.Group

	// ChangeAdmin hands admin rights from approver to target.
	ChangeAdmin(approver, target string, groupID uuid.UUID) error
}

// MessageRepository handles message creation, sending and lookup.
type MessageRepository interface {
	// CreateMessage stores content and returns its sequential ID.
	CreateMessage(content string) int64

	// GetMessage returns one message. ErrMessageNotFound if unknown.
	GetMessage(id int64) (models.Message, error)

	// SendMessage posts an existing message to a group on behalf of sender
	// and returns the group's message count after the append.
	SendMessage(messageID int64, sender string, groupID uuid.UUID) (int, error)

	// GroupMessages returns the messages of one group in send order.
	GroupMessages(groupID uuid.UUID) ([]models.Message, error)

	// FindMessage returns the content of the k-th earliest sent message
	// whose timestamp lies strictly between start and end.
	FindMessage(start, end time.Time, k int) (string, error)
}

// Directory is the whole store: users, groups and messages behind one lock.
type Directory interface {
	UserRepository
	GroupRepository
	MessageRepository
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered person.
//
// Name is the registry key: every operation refers to a user by name.
// Contact is the phone number and is unique across the whole directory.
//
// Users are immutable once registered. The only way one disappears is
// through RemoveUser.
type User struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Group is a conversation between two or more users.
//
// Two flavors come out of CreateGroup:
//   - personal chat: exactly 2 members, named after the non-admin member.
//   - named group: 3+ members, named "Group N" from a counter that only
//     named groups advance.
//
// Why uuid.UUID for the ID?
//   - Group names are not unique (two personal chats with "Bob" are both
//     called "Bob"), so the name can't be the handle.
//   - A UUID is an opaque handle callers can pass around without caring
//     about how the directory stores groups internally.
//
// Group values handed out by the directory are snapshots. Mutating Members
// on a returned Group has no effect on the directory.
type Group struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Size         int       `json:"size"`
	Members      []string  `json:"members"`
	Admin        string    `json:"admin"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsPersonalChat reports whether the group was created with exactly two members.
func (g Group) IsPersonalChat() bool {
	return g.Size == 2
}

// Message is a piece of content created ahead of being sent.
//
// Why int64 for ID (not UUID)?
//   - The i-th created message has ID i. Callers rely on that ordering.
//
// Sender is empty until the message is sent to a group. Creating and
// sending are two separate steps.
type Message struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsSent reports whether the message has a sender recorded.
func (m Message) IsSent() bool {
	return m.Sender != ""
}

package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lalith-99/chatbook/internal/models"
	"github.com/lalith-99/chatbook/internal/repository"
	"go.uber.org/zap"
)

var _ repository.Directory = (*Directory)(nil)

// groupRecord is the directory's own view of a group. Only snapshots of it
// (models.Group) ever leave the package.
type groupRecord struct {
	id        uuid.UUID
	name      string
	size      int
	members   []string
	admin     string
	messages  []int64
	createdAt time.Time
}

func (g *groupRecord) snapshot() models.Group {
	members := make([]string, len(g.members))
	copy(members, g.members)
	return models.Group{
		ID:           g.id,
		Name:         g.name,
		Size:         g.size,
		Members:      members,
		Admin:        g.admin,
		MessageCount: len(g.messages),
		CreatedAt:    g.createdAt,
	}
}

// Directory is an in-memory store for users, groups and messages.
//
// Every exported method takes mu for its whole duration. Operations read
// and write several maps at once (membership, message lists, senders,
// counters), and RemoveUser acts on the result of a scan, so there is no
// finer-grained split that keeps those views consistent.
type Directory struct {
	mu     sync.Mutex
	logger *zap.Logger
	now    func() time.Time
	newID  func() uuid.UUID

	users    map[string]models.User
	contacts map[string]string // contact -> user name

	groups     map[uuid.UUID]*groupRecord
	groupOrder []uuid.UUID
	groupCount int

	messages      map[int64]models.Message
	senders       map[int64]string // message ID -> sender name, only for sent messages
	lastMessageID int64
}

// Option configures a Directory.
type Option func(*Directory)

// WithClock replaces time.Now as the source of message and group timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) {
		d.now = now
	}
}

// WithIDGenerator replaces uuid.New as the source of group handles.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(d *Directory) {
		d.newID = newID
	}
}

func NewDirectory(logger *zap.Logger, opts ...Option) *Directory {
	d := &Directory{
		logger:   logger,
		now:      time.Now,
		newID:    uuid.New,
		users:    make(map[string]models.User),
		contacts: make(map[string]string),
		groups:   make(map[uuid.UUID]*groupRecord),
		messages: make(map[int64]models.Message),
		senders:  make(map[int64]string),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

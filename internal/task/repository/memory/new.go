package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-board/internal/task/repository"
	"task-board/pkg/log"
)

const (
	DefaultMaxSessions = 1000
	DefaultSessionTTL  = 2 * time.Hour
)

// Config bounds how many session boards are kept and for how long an idle
// board survives.
type Config struct {
	MaxSessions int
	SessionTTL  time.Duration
}

type implRepository struct {
	l log.Logger

	mu     sync.Mutex // serialises board creation
	boards *expirable.LRU[string, *board]
}

// New creates an in-memory Repository. Boards are dropped when evicted or
// idle for longer than cfg.SessionTTL.
func New(l log.Logger, cfg Config) repository.Repository {
	if l == nil {
		panic("task/repository/memory: logger is required")
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	r := &implRepository{l: l}
	r.boards = expirable.NewLRU[string, *board](cfg.MaxSessions, r.onEvict, cfg.SessionTTL)
	return r
}

func (r *implRepository) onEvict(sessionID string, b *board) {
	r.l.Debugf(context.Background(), "%s: session %s dropped with %d tasks", r.dsn("onEvict"), sessionID, b.len())
}

// board returns the session's board, creating it on first use. Every access
// re-adds the board so the TTL counts idle time.
func (r *implRepository) board(sessionID string) (*board, error) {
	if sessionID == "" {
		return nil, repository.ErrSessionRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.boards.Get(sessionID)
	if !ok {
		b = &board{}
	}
	r.boards.Add(sessionID, b)
	return b, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}

package memory

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"project-monitor/internal/dashboard/repository"
	"project-monitor/pkg/log"
)

type implRepository struct {
	cache *cache.Cache
	ttl   time.Duration
	l     log.Logger
}

// New creates an in-memory session store. Sessions expire ttl after their last
// access; expired entries are purged every cleanupInterval.
func New(ttl, cleanupInterval time.Duration, l log.Logger) repository.Repository {
	if ttl <= 0 {
		panic("dashboard/repository/memory: ttl must be positive")
	}
	return &implRepository{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
		l:     l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dashboard/repository/memory.%s", method)
}

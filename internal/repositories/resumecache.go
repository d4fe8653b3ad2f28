package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// ErrResumeNotCached is returned when no resume context exists for a key,
// typically because analysis was never run or the entry expired.
var ErrResumeNotCached = errors.New("resume context not found")

// ResumeCache stores resume text between the analysis call and later
// interview-evaluation calls. Entries expire so distinct upload names cannot
// grow the store without bound. Per-key semantics are last-writer-wins.
type ResumeCache interface {
	Set(ctx context.Context, key, resumeText string) error
	Get(ctx context.Context, key string) (string, error)
}

type resumeECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

// NewResumeECache wraps an ecache backend (Redis in production) under a
// dedicated namespace.
func NewResumeECache(c ecache.Cache, expiration time.Duration) ResumeCache {
	return &resumeECache{
		cache: &ecache.NamespaceCache{
			C:         c,
			Namespace: "resume:",
		},
		expiration: expiration,
	}
}

func (c *resumeECache) Set(ctx context.Context, key, resumeText string) error {
	if err := c.cache.Set(ctx, key, resumeText, c.expiration); err != nil {
		return errors.Wrap(err, "failed to cache resume context")
	}
	return nil
}

func (c *resumeECache) Get(ctx context.Context, key string) (string, error) {
	val := c.cache.Get(ctx, key)
	if val.KeyNotFound() {
		return "", ErrResumeNotCached
	}
	if val.Err != nil {
		return "", errors.Wrap(val.Err, "failed to read resume context")
	}

	text, err := val.String()
	if err != nil {
		return "", errors.Wrap(err, "unexpected resume context value")
	}
	return text, nil
}

type memoryCacheEntry struct {
	text      string
	expiresAt time.Time
}

// MemoryResumeCache is the in-process fallback used when Redis is not
// configured. A janitor goroutine evicts expired entries.
type MemoryResumeCache struct {
	mu      sync.RWMutex
	entries map[string]memoryCacheEntry
	ttl     time.Duration
	stop    chan struct{}
}

func NewMemoryResumeCache(ttl time.Duration) *MemoryResumeCache {
	c := &MemoryResumeCache{
		entries: make(map[string]memoryCacheEntry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}

	go c.janitor()

	return c
}

func (c *MemoryResumeCache) Set(_ context.Context, key, resumeText string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryCacheEntry{
		text:      resumeText,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

func (c *MemoryResumeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return "", ErrResumeNotCached
	}
	return entry.text, nil
}

// Close stops the janitor goroutine.
func (c *MemoryResumeCache) Close() {
	close(c.stop)
}

func (c *MemoryResumeCache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, entry := range c.entries {
				if now.After(entry.expiresAt) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

//go:generate go tool mockgen -source=knowledge_cache.go -destination=knowledge_cache_mock_test.go -package=knowledgecache
package knowledgecache

import (
	"context"
	"sync"
	"time"

	"github.com/aicruise/cruise-bot/internal/services/knowledgerepo"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// Store is the subset of the knowledge repository the cache sits in front of.
type Store interface {
	Insert(ctx context.Context, question, answer string) error
	ListAll(ctx context.Context) ([]*knowledgerepo.Entry, error)
	FindMatch(ctx context.Context, fragment string) (*knowledgerepo.Entry, error)
	Update(ctx context.Context, question, answer string) (int64, error)
	Delete(ctx context.Context, question string) (int64, error)
	Ping(ctx context.Context) error
}

// KnowledgeCache memoizes FindMatch results, including misses, and forgets
// everything whenever the knowledge base is written through it.
type KnowledgeCache struct {
	Store
	cache  *cache.Cache
	logger *zerolog.Logger

	// mu guards generation, which counts flushes. A lookup that started
	// before a flush must not store its result after it.
	mu         sync.Mutex
	generation uint64
}

// New wraps store with a lookup cache. A ttl of zero disables caching and returns store unchanged.
func New(store Store, ttl time.Duration, logger *zerolog.Logger) Store {
	if ttl <= 0 {
		return store
	}
	return &KnowledgeCache{
		Store:  store,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// FindMatch returns the cached lookup result for fragment or asks the store.
func (k *KnowledgeCache) FindMatch(ctx context.Context, fragment string) (*knowledgerepo.Entry, error) {
	if cached, found := k.cache.Get(fragment); found {
		entry, _ := cached.(*knowledgerepo.Entry)
		if entry == nil {
			return nil, knowledgerepo.NoMatchError
		}
		copied := *entry
		return &copied, nil
	}

	started := k.currentGeneration()
	entry, err := k.Store.FindMatch(ctx, fragment)
	if err != nil {
		if knowledgerepo.IsNoMatchError(err) {
			k.store(fragment, nil, started)
		}
		return nil, err
	}
	copied := *entry
	k.store(fragment, &copied, started)
	return entry, nil
}

func (k *KnowledgeCache) currentGeneration() uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.generation
}

// store caches a lookup result unless the cache was flushed since started.
func (k *KnowledgeCache) store(fragment string, entry *knowledgerepo.Entry, started uint64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.generation != started {
		return
	}
	k.cache.Set(fragment, entry, cache.DefaultExpiration)
}

func (k *KnowledgeCache) Insert(ctx context.Context, question, answer string) error {
	if err := k.Store.Insert(ctx, question, answer); err != nil {
		return err
	}
	k.flush()
	return nil
}

func (k *KnowledgeCache) Update(ctx context.Context, question, answer string) (int64, error) {
	n, err := k.Store.Update(ctx, question, answer)
	if err != nil {
		return 0, err
	}
	k.flush()
	return n, nil
}

func (k *KnowledgeCache) Delete(ctx context.Context, question string) (int64, error) {
	n, err := k.Store.Delete(ctx, question)
	if err != nil {
		return 0, err
	}
	k.flush()
	return n, nil
}

func (k *KnowledgeCache) flush() {
	k.mu.Lock()
	k.generation++
	count := k.cache.ItemCount()
	k.cache.Flush()
	k.mu.Unlock()
	k.logger.Debug().Int("dropped_entries", count).Msg("Knowledge cache flushed")
}

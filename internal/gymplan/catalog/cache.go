package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/gymplan/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

type store interface {
	ListAll(ctx context.Context, userID int) ([]Exercise, error)
	ListByMuscleGroup(ctx context.Context, userID int, group MuscleGroup) ([]Exercise, error)
	ListBasic(ctx context.Context) ([]Exercise, error)
	AddCustom(ctx context.Context, userID int, exercise Exercise) (*Exercise, error)
	BasicSeedExists(ctx context.Context) (bool, error)
	SeedBasic(ctx context.Context) (int, error)
}

// CachedStore keeps catalog reads in an in-process freecache. Entries are
// per user, since every user sees the global catalog plus their own entries.
type CachedStore struct {
	store          store
	cache          *freecache.Cache
	ttlSeconds     int
	metricsManager *metrics.Manager
}

func NewCachedStore(store store, sizeMB, ttlSeconds int, metricsManager *metrics.Manager) *CachedStore {
	return &CachedStore{
		store:          store,
		cache:          freecache.NewCache(sizeMB * 1024 * 1024),
		ttlSeconds:     ttlSeconds,
		metricsManager: metricsManager,
	}
}

func (c *CachedStore) ListAll(ctx context.Context, userID int) ([]Exercise, error) {
	return c.cached(allKey(userID), func() ([]Exercise, error) {
		return c.store.ListAll(ctx, userID)
	})
}

func (c *CachedStore) ListByMuscleGroup(ctx context.Context, userID int, group MuscleGroup) ([]Exercise, error) {
	return c.cached(groupKey(userID, group), func() ([]Exercise, error) {
		return c.store.ListByMuscleGroup(ctx, userID, group)
	})
}

func (c *CachedStore) ListBasic(ctx context.Context) ([]Exercise, error) {
	return c.cached(basicKey, func() ([]Exercise, error) {
		return c.store.ListBasic(ctx)
	})
}

func (c *CachedStore) AddCustom(ctx context.Context, userID int, exercise Exercise) (*Exercise, error) {
	added, err := c.store.AddCustom(ctx, userID, exercise)
	if err != nil {
		return nil, err
	}

	c.cache.Del(allKey(userID))
	for _, g := range AllMuscleGroups {
		c.cache.Del(groupKey(userID, g))
	}

	return added, nil
}

func (c *CachedStore) BasicSeedExists(ctx context.Context) (bool, error) {
	return c.store.BasicSeedExists(ctx)
}

func (c *CachedStore) SeedBasic(ctx context.Context) (int, error) {
	inserted, err := c.store.SeedBasic(ctx)
	if inserted > 0 {
		c.cache.Clear()
	}
	return inserted, err
}

func (c *CachedStore) cached(key []byte, load func() ([]Exercise, error)) ([]Exercise, error) {
	if raw, err := c.cache.Get(key); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal(raw, &exercises); err == nil {
			c.metricsManager.CatalogCacheHit()
			return exercises, nil
		}
		log.Warnf("catalog cache: corrupt entry for %s, reloading", key)
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("catalog cache get %s: %s", key, err)
	}

	c.metricsManager.CatalogCacheMiss()
	exercises, err := load()
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("catalog cache: marshal %s: %s", key, err)
		return exercises, nil
	}
	if err := c.cache.Set(key, raw, c.ttlSeconds); err != nil {
		log.Warnf("catalog cache set %s: %s", key, err)
	}

	return exercises, nil
}

var basicKey = []byte("catalog:basic")

func allKey(userID int) []byte {
	return []byte(fmt.Sprintf("catalog:all:%d", userID))
}

func groupKey(userID int, group MuscleGroup) []byte {
	return []byte(fmt.Sprintf("catalog:group:%d:%s", userID, group))
}

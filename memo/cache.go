package memo

import (
	"container/list"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// entry is what the order list holds. The key is kept alongside the value
// because eviction starts from list nodes, not from the map.
type entry[V any] struct {
	key      string
	value    V
	lifetime timespan.TimeSpan
}

// expiredAt reports whether the entry has outlived its TTL at now.
// An entry is still live at exactly createdAt+ttl.
func (e *entry[V]) expiredAt(now time.Time) bool {
	return now.After(e.lifetime.End())
}

// Stats counts what the cache has done since construction or the last Clear.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}

// Cache is a bounded memoization cache with TTL expiry and
// insertion-order eviction.
type Cache[V any] struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	logger     *zap.Logger
	hashKeys   bool

	store map[string]*list.Element
	order *list.List // Front = oldest insertion, Back = newest

	stats Stats
}

// New constructs an empty cache. Unset Config fields take their defaults;
// options are applied after the config.
func New[V any](cfg Config, opts ...Option) *Cache[V] {
	s := settings{
		Config: NewConfig(cfg.TTL, cfg.MaxEntries),
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return &Cache[V]{
		ttl:        s.TTL,
		maxEntries: s.MaxEntries,
		now:        s.now,
		logger:     s.logger,
		hashKeys:   s.hashKeys,
		store:      make(map[string]*list.Element),
		order:      list.New(),
	}
}

// TTL returns the configured time-to-live.
func (c *Cache[V]) TTL() time.Duration { return c.ttl }

// MaxEntries returns the configured capacity.
func (c *Cache[V]) MaxEntries() int { return c.maxEntries }

// Get returns the value stored under key.
//
// An entry older than the TTL is removed on the spot and reported absent.
// Nothing else sweeps expired entries except PurgeExpired.
func (c *Cache[V]) Get(key any) (V, bool) {
	var zero V
	k := c.deriveKey(key)

	el, ok := c.store[k]
	if !ok {
		c.stats.Misses++
		return zero, false
	}

	e := el.Value.(*entry[V])
	if e.expiredAt(c.now()) {
		c.deleteElement(el)
		c.stats.Misses++
		c.stats.Expirations++
		c.logger.Debug("cache entry expired on read", zap.String("key", k))
		return zero, false
	}

	c.stats.Hits++
	return e.value, true
}

// Set stores value under key with a fresh timestamp.
//
// When the cache is full and key is new, the oldest-inserted entry is evicted
// first. Overwriting an existing key moves it to the newest position, so a
// refreshed entry is never evicted ahead of entries inserted after it.
func (c *Cache[V]) Set(key any, value V) {
	k := c.deriveKey(key)
	now := c.now()
	lifetime := timespan.BetweenTimes(now, now.Add(c.ttl))

	if el, ok := c.store[k]; ok {
		e := el.Value.(*entry[V])
		e.value = value
		e.lifetime = lifetime
		c.order.MoveToBack(el)
		return
	}

	if len(c.store) >= c.maxEntries {
		c.evictOldest()
	}

	c.store[k] = c.order.PushBack(&entry[V]{
		key:      k,
		value:    value,
		lifetime: lifetime,
	})
}

// Remove deletes key and reports whether it was present.
func (c *Cache[V]) Remove(key any) bool {
	el, ok := c.store[c.deriveKey(key)]
	if !ok {
		return false
	}
	c.deleteElement(el)
	return true
}

// Clear drops every entry and resets the stats.
func (c *Cache[V]) Clear() {
	c.store = make(map[string]*list.Element)
	c.order.Init()
	c.stats = Stats{}
}

// Size returns the number of stored entries, expired ones included.
func (c *Cache[V]) Size() int {
	return len(c.store)
}

// PurgeExpired removes every entry older than the TTL and returns how many
// were removed. It is O(n) and only runs when called.
func (c *Cache[V]) PurgeExpired() int {
	now := c.now()
	removed := 0
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if el.Value.(*entry[V]).expiredAt(now) {
			c.deleteElement(el)
			removed++
		}
		el = next
	}
	if removed > 0 {
		c.stats.Expirations += uint64(removed)
		c.logger.Debug("purged expired cache entries", zap.Int("count", removed))
	}
	return removed
}

// Keys returns the stored keys from oldest to newest insertion.
func (c *Cache[V]) Keys() []string {
	out := make([]string, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*entry[V]).key)
	}
	return out
}

// Stats returns a snapshot of the hit, miss, eviction and expiry counters.
func (c *Cache[V]) Stats() Stats {
	return c.stats
}

func (c *Cache[V]) evictOldest() {
	el := c.order.Front()
	if el == nil {
		return
	}
	c.deleteElement(el)
	c.stats.Evictions++
	c.logger.Debug("evicted oldest cache entry",
		zap.String("key", el.Value.(*entry[V]).key),
		zap.Int("max_entries", c.maxEntries),
	)
}

func (c *Cache[V]) deleteElement(el *list.Element) {
	delete(c.store, el.Value.(*entry[V]).key)
	c.order.Remove(el)
}

func (c *Cache[V]) deriveKey(key any) string {
	k := MustDeriveKey(key)
	if c.hashKeys {
		return strconv.FormatUint(xxhash.Sum64String(k), 16)
	}
	return k
}

package markup

import (
	"container/list"
	"sync"
)

// Width and clip lookups repeat across whole-screen redraws, so both are
// memoized. The cache is capped: long sessions churn through cell values
// and an unbounded map would grow without limit.
const cacheSize = 65536

type cachePair[K comparable, V any] struct {
	key K
	val V
}

// lruCache is a mutex-guarded bounded cache with least-recently-used
// eviction. Values are pure functions of their keys, so a racing fill is
// idempotent and the lock is only held for map and list surgery.
type lruCache[K comparable, V any] struct {
	mu    sync.Mutex
	cap   int
	order *list.List
	items map[K]*list.Element
}

func newLRUCache[K comparable, V any](capacity int) *lruCache[K, V] {
	return &lruCache[K, V]{
		cap:   capacity,
		order: list.New(),
		items: make(map[K]*list.Element, capacity),
	}
}

func (c *lruCache[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(cachePair[K, V]).val, true
}

func (c *lruCache[K, V]) put(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value = cachePair[K, V]{key: key, val: val}
		c.order.MoveToFront(el)
		return
	}
	c.items[key] = c.order.PushFront(cachePair[K, V]{key: key, val: val})
	for c.order.Len() > c.cap {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(cachePair[K, V]).key)
	}
}

func (c *lruCache[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

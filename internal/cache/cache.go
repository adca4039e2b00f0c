// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package cache implements the bounded, TTL-based tenant cache that
// the registry reads through. The cache is process-local and carries
// no cross-process invalidation; staleness is bounded by the TTL.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/fleetforge/runner-control/internal/types"
)

const (
	DefaultTTL      = 60 * time.Second
	DefaultCapacity = 1000
)

type entry struct {
	tenantID  int64
	record    *types.TenantRecord
	expiresAt time.Time
}

// TenantCache is a bounded cache keyed by tenant id. When a new key is
// inserted at capacity, the oldest-inserted entry is evicted; setting
// an existing key (expired or not) refreshes it in place and never
// evicts another entry.
type TenantCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int

	entries map[int64]*list.Element
	// order tracks insertion order, front is oldest.
	order *list.List

	now func() time.Time
}

func New(ttl time.Duration, capacity int) *TenantCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &TenantCache{
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[int64]*list.Element, capacity),
		order:    list.New(),
		now:      time.Now,
	}
}

// Get returns the cached record for id, or false on a miss. An expired
// entry is a miss; it is left in place for the subsequent Set to
// refresh.
func (c *TenantCache) Get(id int64) (*types.TenantRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[id]
	if !ok {
		return nil, false
	}

	e := el.Value.(*entry)
	if c.now().After(e.expiresAt) {
		return nil, false
	}

	return e.record, true
}

// Set stores the record for id with a fresh TTL. Refreshing an
// existing key moves it to the back of the insertion order.
func (c *TenantCache) Set(id int64, record *types.TenantRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)

	if el, ok := c.entries[id]; ok {
		e := el.Value.(*entry)
		e.record = record
		e.expiresAt = expiresAt
		c.order.MoveToBack(el)
		return
	}

	if c.order.Len() >= c.capacity {
		c.evictOldest()
	}

	c.entries[id] = c.order.PushBack(&entry{
		tenantID:  id,
		record:    record,
		expiresAt: expiresAt,
	})
}

// Remove drops the entry for id if present. Used when the store
// reports the record gone, so negative results are never cached.
func (c *TenantCache) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[id]; ok {
		c.order.Remove(el)
		delete(c.entries, id)
	}
}

// Clear drops every entry.
func (c *TenantCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[int64]*list.Element, c.capacity)
	c.order.Init()
}

func (c *TenantCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

// evictOldest removes the front (oldest-inserted) entry. Callers hold
// the lock.
func (c *TenantCache) evictOldest() {
	el := c.order.Front()
	if el == nil {
		return
	}

	c.order.Remove(el)
	delete(c.entries, el.Value.(*entry).tenantID)
}

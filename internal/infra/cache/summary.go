package cache

import (
	"hash/fnv"
	"sync"

	"loyalty-ledger/internal/domain/ledger"

	lru "github.com/hashicorp/golang-lru/v2"
)

const epochStripes = 64

// SummaryCache is an LRU of partition summaries. Each partition hashes to an
// epoch stripe; invalidation bumps the stripe so a read that started before
// an append cannot store what it saw.
type SummaryCache struct {
	lru *lru.Cache[ledger.Partition, ledger.Summary]

	mu     sync.Mutex
	epochs [epochStripes]uint64
}

// NewSummaryCache returns nil when size is not positive. A nil cache is
// valid and never holds anything.
func NewSummaryCache(size int) (*SummaryCache, error) {
	if size <= 0 {
		return nil, nil
	}
	c, err := lru.New[ledger.Partition, ledger.Summary](size)
	if err != nil {
		return nil, err
	}
	return &SummaryCache{lru: c}, nil
}

func (c *SummaryCache) Begin(p ledger.Partition) uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epochs[stripe(p)]
}

func (c *SummaryCache) Get(p ledger.Partition) (ledger.Summary, bool) {
	if c == nil {
		return ledger.Summary{}, false
	}
	return c.lru.Get(p)
}

func (c *SummaryCache) Put(p ledger.Partition, s ledger.Summary, epoch uint64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epochs[stripe(p)] != epoch {
		return
	}
	c.lru.Add(p, s)
}

// Invalidate must be called after the append that changed p has committed.
func (c *SummaryCache) Invalidate(p ledger.Partition) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epochs[stripe(p)]++
	c.lru.Remove(p)
}

func (c *SummaryCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

func stripe(p ledger.Partition) int {
	h := fnv.New32a()
	_, _ = h.Write(p.CustomerID[:])
	_, _ = h.Write(p.BusinessID[:])
	return int(h.Sum32() % epochStripes)
}

package studyblog

import (
	"sync"

	"github.com/eringen/studyblog/markdown"
)

// BlockCache memoizes the rendered blocks of each post. Rendering is pure and posts
// never change, so entries stay valid for the lifetime of the process.
type BlockCache struct {
	mu     sync.RWMutex
	blocks map[string][]markdown.Block
	store  *Store

	// onRender is called on every cache miss, for metrics.
	onRender func()
}

// NewBlockCache creates a BlockCache backed by the given Store.
func NewBlockCache(s *Store) *BlockCache {
	return &BlockCache{store: s, blocks: make(map[string][]markdown.Block)}
}

// Blocks returns the rendered content of the post with the given id. The boolean is
// false for unknown ids. The returned slice is shared and must not be modified.
func (c *BlockCache) Blocks(id string) ([]markdown.Block, bool) {
	post, ok := c.store.GetByID(id)
	if !ok {
		return nil, false
	}
	return c.ForPost(post), true
}

// ForPost returns the rendered content of post, rendering it on first use. It
// tries a read lock first and only takes the write lock on a miss. The returned
// slice is shared and must not be modified.
func (c *BlockCache) ForPost(post Post) []markdown.Block {
	c.mu.RLock()
	blocks, ok := c.blocks[post.ID]
	c.mu.RUnlock()
	if ok {
		return blocks
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if blocks, ok := c.blocks[post.ID]; ok {
		return blocks
	}
	blocks = markdown.Render(post.Content)
	c.blocks[post.ID] = blocks
	if c.onRender != nil {
		c.onRender()
	}
	return blocks
}

// Len returns the number of rendered posts held by the cache.
func (c *BlockCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blocks)
}

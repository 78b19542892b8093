package desksdk

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const detailCacheSize = 128

// detailCache memoizes public detail reads so directory screens that bounce
// between list and detail views don't refetch unchanged records. Every
// mutation of an entity must drop its entry.
type detailCache struct {
	lru *lru.Cache[string, any]
}

func newDetailCache() *detailCache {
	cache, _ := lru.New[string, any](detailCacheSize)
	return &detailCache{lru: cache}
}

func (c *detailCache) get(entityPath, id string) (any, bool) {
	return c.lru.Get(entityPath + "/" + id)
}

func (c *detailCache) put(entityPath, id string, value any) {
	c.lru.Add(entityPath+"/"+id, value)
}

func (c *detailCache) drop(entityPath, id string) {
	c.lru.Remove(entityPath + "/" + id)
}

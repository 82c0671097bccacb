package rules

import (
	"sync"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

// CountPool recycles the neighbor-count maps used while computing a generation
type CountPool struct {
	pool sync.Pool
}

func NewCountPool() *CountPool {
	return &CountPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(map[model.Coord]int)
			},
		},
	}
}

// Get retrieves an empty count map
func (p *CountPool) Get() map[model.Coord]int {
	return p.pool.Get().(map[model.Coord]int)
}

// Put clears counts and returns it to the pool
func (p *CountPool) Put(counts map[model.Coord]int) {
	clear(counts)
	p.pool.Put(counts)
}

// getCounts takes a map from pool, or allocates one when pool is nil
func getCounts(pool *CountPool, hint int) map[model.Coord]int {
	if pool == nil {
		return make(map[model.Coord]int, hint)
	}
	return pool.Get()
}

// putCounts hands counts back to pool if there is one
func putCounts(pool *CountPool, counts map[model.Coord]int) {
	if pool == nil {
		return
	}
	pool.Put(counts)
}

/*
Copyright © 2026 the Inflow authors.
This file is part of Inflow.

Inflow is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Inflow is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Inflow.  If not, see <http://www.gnu.org/licenses/>.
*/

package inflow

import (
	"context"
	"runtime"

	"github.com/ctessum/requestcache"

	"github.com/spatialmodel/inflow/timeseries"
)

// A StoreCache deduplicates the parsing of transient data files that
// are shared by more than one boundary. Stores are immutable after
// construction, so a cached store may be queried concurrently by every
// boundary that references its path. This function is concurrency-safe.
type StoreCache struct {
	maxSpecies int
	cache      *requestcache.Cache
}

// NewStoreCache creates a StoreCache that keeps up to cacheSize parsed
// stores in memory. maxSpecies is passed through to
// timeseries.LoadFile.
func NewStoreCache(maxSpecies, cacheSize int) *StoreCache {
	c := &StoreCache{maxSpecies: maxSpecies}
	c.cache = requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
		return timeseries.LoadFile(request.(string), c.maxSpecies)
	}, runtime.GOMAXPROCS(-1),
		requestcache.Deduplicate(), requestcache.Memory(cacheSize))
	return c
}

// Store returns the parsed store for the transient data file at path,
// reading the file only if no previous request has parsed it.
func (c *StoreCache) Store(path string) (*timeseries.Store, error) {
	req := c.cache.NewRequest(context.TODO(), path, path)
	result, err := req.Result()
	if err != nil {
		return nil, err
	}
	return result.(*timeseries.Store), nil
}

// NewBoundary is like the package-level NewBoundary except that the
// transient data file is read through the cache, so boundaries sharing
// one file share one parsed store.
func (c *StoreCache) NewBoundary(path string, mode Mode, m Mechanism) (*Boundary, error) {
	store, err := c.Store(path)
	if err != nil {
		return nil, err
	}
	return newBoundary(store, mode, m)
}

package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Cache keys are tracked in a concurrent set so every summary entry can be
// cleared at once without scanning the cache itself.
var (
	Cache            *ristretto.Cache
	SummaryCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func SummaryCacheKey(sessionID string) string {
	return "summary:" + sessionID
}

func SetSummaryCache(cacheKey string, value interface{}) {
	SummaryCacheKeys.Lock()
	SummaryCacheKeys.m[cacheKey] = struct{}{}
	SummaryCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelSummaryCache(cacheKey string) {
	SummaryCacheKeys.Lock()
	delete(SummaryCacheKeys.m, cacheKey)
	SummaryCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

func ClearAllSummaryCaches() {
	SummaryCacheKeys.Lock()
	for key := range SummaryCacheKeys.m {
		Cache.Del(key)
	}
	SummaryCacheKeys.m = make(map[string]struct{})
	SummaryCacheKeys.Unlock()
}

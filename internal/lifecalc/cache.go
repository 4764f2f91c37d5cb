package lifecalc

import (
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 512

// CachedEngine memoizes results of a Calculator keyed by the normalized
// record. Callers always receive their own copy of the cached result.
type CachedEngine struct {
	delegate Calculator
	cache    *lru.Cache[string, CalculationResult]

	// Observe, when set, is called with the outcome of every lookup.
	Observe func(hit bool)
}

// NewCachedEngine wraps delegate with an LRU cache holding up to size results.
// A non-positive size falls back to the default.
func NewCachedEngine(delegate Calculator, size int) *CachedEngine {
	if size <= 0 {
		size = defaultCacheSize
	}
	// lru.New only errors on a non-positive size.
	cache, _ := lru.New[string, CalculationResult](size)
	return &CachedEngine{delegate: delegate, cache: cache}
}

func (c *CachedEngine) Calculate(f FactorRecord) CalculationResult {
	f = f.Normalize()
	key, err := cacheKey(f)
	if err != nil {
		return c.delegate.Calculate(f)
	}
	cached, ok := c.cache.Get(key)
	if c.Observe != nil {
		c.Observe(ok)
	}
	if ok {
		return cloneResult(cached)
	}
	result := c.delegate.Calculate(f)
	c.cache.Add(key, cloneResult(result))
	return result
}

// Len reports the number of cached results.
func (c *CachedEngine) Len() int {
	return c.cache.Len()
}

func cacheKey(f FactorRecord) (string, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func cloneResult(r CalculationResult) CalculationResult {
	out := r
	out.Adjustments = append([]Adjustment(nil), r.Adjustments...)
	out.Recommendations = append([]Recommendation(nil), r.Recommendations...)
	return out
}

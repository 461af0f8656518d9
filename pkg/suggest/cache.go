package suggest

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// PrefixCache memoizes prefix suggestion results keyed by the exact prefix.
// Least recently used prefixes are evicted once maxEntries is reached.
type PrefixCache struct {
	trie        *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	maxEntries  int
	hits        int
	misses      int
	mu          sync.Mutex
}

func NewPrefixCache(maxEntries int) *PrefixCache {
	return &PrefixCache{
		trie:       patricia.NewTrie(),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns a copy of the cached suggestions for prefix.
func (pc *PrefixCache) Get(prefix string) ([]Suggestion, bool) {
	if prefix == "" {
		return nil, false
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	item := pc.trie.Get(patricia.Prefix(prefix))
	if item == nil {
		pc.misses++
		return nil, false
	}
	pc.hits++
	pc.markAccessed(prefix)

	cached := item.([]Suggestion)
	out := make([]Suggestion, len(cached))
	copy(out, cached)
	return out, true
}

// Put stores a copy of suggestions for prefix. The empty prefix is never cached.
func (pc *PrefixCache) Put(prefix string, suggestions []Suggestion) {
	if prefix == "" || pc.maxEntries <= 0 {
		return
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if _, exists := pc.accessTime[prefix]; !exists && len(pc.accessTime) >= pc.maxEntries {
		pc.evictLRU()
	}

	stored := make([]Suggestion, len(suggestions))
	copy(stored, suggestions)
	pc.trie.Set(patricia.Prefix(prefix), stored)
	pc.markAccessed(prefix)
}

// Invalidate drops every cached prefix of word, since registering word
// changes the results of exactly those prefixes.
func (pc *PrefixCache) Invalidate(word string) {
	if word == "" {
		return
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	var stale []string
	err := pc.trie.VisitPrefixes(patricia.Prefix(word), func(p patricia.Prefix, item patricia.Item) error {
		if string(p) != word {
			stale = append(stale, string(p))
		}
		return nil
	})
	if _, exists := pc.accessTime[word]; exists {
		stale = append(stale, word)
	}
	if err != nil {
		log.Errorf("Error visiting cached prefixes of %q: %v", word, err)
	}

	for _, prefix := range stale {
		pc.trie.Delete(patricia.Prefix(prefix))
		delete(pc.accessTime, prefix)
	}
	if len(stale) > 0 {
		log.Debugf("Invalidated %d cached prefixes for '%s'", len(stale), word)
	}
}

// Len returns the number of cached prefixes.
func (pc *PrefixCache) Len() int {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return len(pc.accessTime)
}

func (pc *PrefixCache) Stats() map[string]int {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	return map[string]int{
		"cachedPrefixes": len(pc.accessTime),
		"maxCached":      pc.maxEntries,
		"cacheHits":      pc.hits,
		"cacheMisses":    pc.misses,
	}
}

func (pc *PrefixCache) markAccessed(prefix string) {
	pc.accessCount++
	pc.accessTime[prefix] = pc.accessCount
}

func (pc *PrefixCache) evictLRU() {
	var oldest string
	var oldestTime int64 = math.MaxInt64

	for prefix, at := range pc.accessTime {
		if at < oldestTime {
			oldestTime = at
			oldest = prefix
		}
	}

	if oldest != "" {
		pc.trie.Delete(patricia.Prefix(oldest))
		delete(pc.accessTime, oldest)
		log.Debugf("Evicted prefix '%s' from cache", oldest)
	}
}

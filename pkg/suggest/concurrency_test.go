package suggest

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPrefixes = []string{
	"c", "ca", "cat", "co", "d", "do", "dog", "x", "",
}

func TestConcurrentRegisterAndQuery(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 200},
		{workers: 4, iterationsPerWorker: 100},
		{workers: 8, iterationsPerWorker: 50},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			trie := NewCachedTrie(4)
			trie.Register("cat", "animal", 3)

			var wg sync.WaitGroup
			for w := 0; w < config.workers; w++ {
				wg.Add(1)
				go func(worker int) {
					defer wg.Done()
					for i := 0; i < config.iterationsPerWorker; i++ {
						word := fmt.Sprintf("c%d_%d", worker, i)
						trie.Register(word, "generated", len(word))

						prefix := testPrefixes[i%len(testPrefixes)]
						trie.SuggestByPrefix(prefix)
						trie.AutoCorrect(prefix + "z")
						trie.CategoryOf(prefix)
						trie.SpellCheck("cat " + word)
					}
				}(w)
			}
			wg.Wait()

			expected := 1 + config.workers*config.iterationsPerWorker
			assert.Equal(t, expected, trie.Stats()["words"])
			assert.Len(t, trie.SuggestByPrefix("c"), expected)
			assert.Len(t, trie.WordsUnderCategory("generated"), expected-1)
		})
	}
}

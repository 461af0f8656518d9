package suggest

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Entry is one (category, length) record attached to a registered word.
type Entry struct {
	Category string `msgpack:"c"`
	Length   int    `msgpack:"n"`
}

// Triple is a single word list record as handed over by a loader.
type Triple struct {
	Word     string
	Category string
	Length   int
}

// Suggestion is a word found below a prefix together with its first entry.
type Suggestion struct {
	Word     string `msgpack:"w"`
	Category string `msgpack:"c"`
	Length   int    `msgpack:"n"`
}

// Node is a single character step in the trie.
// Children are kept in insertion order so every traversal is deterministic.
type Node struct {
	children map[rune]*Node
	order    []rune
	entries  []Entry
}

func newNode() *Node {
	return &Node{children: make(map[rune]*Node)}
}

// IsWord reports whether the path to this node spells a registered word.
func (n *Node) IsWord() bool {
	return len(n.entries) > 0
}

func (n *Node) child(r rune) (*Node, bool) {
	c, ok := n.children[r]
	return c, ok
}

func (n *Node) addChild(r rune) *Node {
	c := newNode()
	n.children[r] = c
	n.order = append(n.order, r)
	return c
}

// Trie is the word index. All access goes through it; nodes are never removed.
type Trie struct {
	root    *Node
	cache   *PrefixCache
	nodes   int
	words   int
	entries int
	mu      sync.RWMutex
}

// NewTrie creates an empty index without a prefix cache.
func NewTrie() *Trie {
	return &Trie{
		root:  newNode(),
		nodes: 1,
	}
}

// NewCachedTrie creates an empty index that memoizes prefix suggestions.
// A cacheSize <= 0 disables the cache.
func NewCachedTrie(cacheSize int) *Trie {
	t := NewTrie()
	if cacheSize > 0 {
		t.cache = NewPrefixCache(cacheSize)
	}
	return t
}

// Register inserts the lowercased word and appends the entry to its node.
// Registering the same word again keeps the tree shape but adds another entry.
func (t *Trie) Register(word, category string, length int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lower := strings.ToLower(word)
	node := t.root
	for _, r := range lower {
		next, ok := node.child(r)
		if !ok {
			next = node.addChild(r)
			t.nodes++
		}
		node = next
	}

	if !node.IsWord() {
		t.words++
	}
	node.entries = append(node.entries, Entry{Category: category, Length: length})
	t.entries++

	if t.cache != nil {
		t.cache.Invalidate(lower)
	}
}

// Load registers every triple in order.
func (t *Trie) Load(triples []Triple) {
	for _, tr := range triples {
		t.Register(tr.Word, tr.Category, tr.Length)
	}
	log.Debugf("Loaded %d records into index", len(triples))
}

// find walks the tree by the exact characters of key.
func (t *Trie) find(key string) *Node {
	node := t.root
	for _, r := range key {
		next, ok := node.child(r)
		if !ok {
			return nil
		}
		node = next
	}
	return node
}

// CheckWord reports whether the case-folded word is registered.
func (t *Trie) CheckWord(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.checkWord(word)
}

func (t *Trie) checkWord(word string) bool {
	node := t.find(strings.ToLower(word))
	return node != nil && node.IsWord()
}

// Entries returns every entry recorded for the case-folded word, in
// registration order. It returns nil for unknown words.
func (t *Trie) Entries(word string) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(strings.ToLower(word))
	if node == nil || !node.IsWord() {
		return nil
	}
	out := make([]Entry, len(node.entries))
	copy(out, node.entries)
	return out
}

// Stats returns node, word and entry counts, plus cache counters when enabled.
func (t *Trie) Stats() map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := map[string]int{
		"nodes":   t.nodes,
		"words":   t.words,
		"entries": t.entries,
	}
	if t.cache != nil {
		for k, v := range t.cache.Stats() {
			stats[k] = v
		}
	}
	return stats
}

package suggest

import (
	"strings"
)

// CorrectionKind tells which of the two outcomes an auto-correct produced.
type CorrectionKind int

const (
	// Unmatched means no completions were gathered and the input word is
	// the only answer. This covers both a miss on the first character and
	// a word whose whole path exists.
	Unmatched CorrectionKind = iota
	// Completions means the walk stopped at a missing character and the
	// words below the matched prefix were collected.
	Completions
)

func (k CorrectionKind) String() string {
	switch k {
	case Unmatched:
		return "unmatched"
	case Completions:
		return "completions"
	default:
		return "unknown"
	}
}

// AutoCorrectResult is the outcome of AutoCorrect.
type AutoCorrectResult struct {
	Kind        CorrectionKind
	Word        string
	Prefix      string
	Suggestions []Suggestion
}

// SuggestByPrefix returns every word at or below the node reached by prefix,
// each with its first recorded entry. The prefix is matched as given, without
// case folding. Words come out in depth-first order, parents before children
// and siblings in insertion order.
func (t *Trie) SuggestByPrefix(prefix string) []Suggestion {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.suggest(prefix)
}

// suggest is SuggestByPrefix without locking; callers hold t.mu.
func (t *Trie) suggest(prefix string) []Suggestion {
	if t.cache != nil {
		if cached, ok := t.cache.Get(prefix); ok {
			return cached
		}
	}

	node := t.find(prefix)
	if node == nil {
		return []Suggestion{}
	}
	results := collect(prefix, node)

	if t.cache != nil {
		t.cache.Put(prefix, results)
	}
	return results
}

// collect enumerates words below node in pre-order using an explicit stack.
func collect(prefix string, node *Node) []Suggestion {
	type frame struct {
		node *Node
		word string
	}

	suggestions := []Suggestion{}
	stack := []frame{{node: node, word: prefix}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.IsWord() {
			first := f.node.entries[0]
			suggestions = append(suggestions, Suggestion{
				Word:     f.word,
				Category: first.Category,
				Length:   first.Length,
			})
		}

		// push in reverse so the first-inserted child is visited first
		for i := len(f.node.order) - 1; i >= 0; i-- {
			r := f.node.order[i]
			stack = append(stack, frame{node: f.node.children[r], word: f.word + string(r)})
		}
	}
	return suggestions
}

// AutoCorrect walks word character by character without case folding. At the
// first missing transition past the first character it returns the
// completions of the prefix matched so far. A miss on the first character, an
// empty word, or a fully matched path all yield Unmatched.
func (t *Trie) AutoCorrect(word string) AutoCorrectResult {
	t.mu.RLock()
	defer t.mu.RUnlock()

	unmatched := AutoCorrectResult{Kind: Unmatched, Word: word}

	node := t.root
	for i, r := range word {
		next, ok := node.child(r)
		if !ok {
			if i == 0 {
				return unmatched
			}
			prefix := word[:i]
			return AutoCorrectResult{
				Kind:        Completions,
				Word:        word,
				Prefix:      prefix,
				Suggestions: t.suggest(prefix),
			}
		}
		node = next
	}
	return unmatched
}

// BestGuess picks the candidate that shares the most characters with the
// input word. Ties go to the candidate listed first. Unmatched results, and
// results with no candidates, answer with the input word itself.
func (r AutoCorrectResult) BestGuess() string {
	if r.Kind != Completions || len(r.Suggestions) == 0 {
		return r.Word
	}

	best := r.Suggestions[0].Word
	bestScore := Overlap(r.Word, best)
	for _, s := range r.Suggestions[1:] {
		if score := Overlap(r.Word, s.Word); score > bestScore {
			best = s.Word
			bestScore = score
		}
	}
	return best
}

// Overlap counts the characters of input that occur anywhere in candidate.
// Repeated characters in input count once per occurrence.
func Overlap(input, candidate string) int {
	score := 0
	for _, r := range input {
		if strings.ContainsRune(candidate, r) {
			score++
		}
	}
	return score
}

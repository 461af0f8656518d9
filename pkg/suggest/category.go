package suggest

// CategoryOf returns the category of the first suggestion for word whose text
// equals word exactly. The lookup goes through SuggestByPrefix, so it is not
// case folded.
func (t *Trie) CategoryOf(word string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, s := range t.suggest(word) {
		if s.Word == word {
			return s.Category, true
		}
	}
	return "", false
}

// WordsUnderCategory walks the whole tree and returns every word whose first
// entry has exactly the given category.
func (t *Trie) WordsUnderCategory(category string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	words := []string{}
	for _, s := range collect("", t.root) {
		if s.Category == category {
			words = append(words, s.Word)
		}
	}
	return words
}

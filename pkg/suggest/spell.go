package suggest

import "strings"

// SpellCheck splits sentence on whitespace and returns the tokens that are not
// registered words, in their original order and casing. Punctuation is kept
// as part of the token.
func (t *Trie) SpellCheck(sentence string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	misspelled := []string{}
	for _, token := range strings.Fields(sentence) {
		if !t.checkWord(token) {
			misspelled = append(misspelled, token)
		}
	}
	return misspelled
}

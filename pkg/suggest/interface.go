// Package suggest is the core, holding the character trie and the traversals
// behind prefix suggestions, spell checking, auto-correct and category lookups.
package suggest

// Index is the operation set exposed to callers such as the CLI and the IPC server.
type Index interface {
	// Register adds a word with one (category, length) entry
	Register(word, category string, length int)

	// Load registers a batch of triples in order
	Load(triples []Triple)

	// CheckWord reports whether the case-folded word is registered
	CheckWord(word string) bool

	// SpellCheck returns the whitespace tokens that are not registered
	SpellCheck(sentence string) []string

	// SuggestByPrefix lists the words below an exact prefix
	SuggestByPrefix(prefix string) []Suggestion

	// AutoCorrect gathers completions for the longest matching prefix
	AutoCorrect(word string) AutoCorrectResult

	// CategoryOf finds the first-registered category of a word
	CategoryOf(word string) (string, bool)

	// WordsUnderCategory lists every word whose first entry has the category
	WordsUnderCategory(category string) []string

	// Entries exposes every entry recorded for a word
	Entries(word string) []Entry

	// Stats returns statistics about the loaded index
	Stats() map[string]int
}

var _ Index = (*Trie)(nil)

package cli

import (
	"strings"
	"testing"

	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newIndex() *suggest.Trie {
	trie := suggest.NewTrie()
	trie.Load([]suggest.Triple{
		{Word: "cat", Category: "animal", Length: 3},
		{Word: "cot", Category: "furniture", Length: 3},
		{Word: "dog", Category: "animal", Length: 3},
	})
	return trie
}

func runLines(t *testing.T, idx suggest.Index, showEntries bool, lines ...string) string {
	t.Helper()
	var out strings.Builder
	h := NewInputHandler(idx, showEntries).WithIO(strings.NewReader(strings.Join(lines, "\n")), &out)
	require.NoError(t, h.Start())
	return out.String()
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "No misspelled words found.", FormatSpellCheck(nil))
	assert.Equal(t, "Misspelled words: teh, sat", FormatSpellCheck([]string{"teh", "sat"}))
	assert.Equal(t, "The category of 'cat' is 'animal'.", FormatCategory("cat", "animal", true))
	assert.Equal(t, "'bus' not found in the dictionary.", FormatCategory("bus", "", false))
	assert.Equal(t, "No words found under category 'plant'.", FormatWordsUnderCategory("plant", nil))
	assert.Equal(t, "Words under category 'animal':\ncat, dog", FormatWordsUnderCategory("animal", []string{"cat", "dog"}))
	assert.Equal(t, "Suggested words:\ncat (animal, 3)\ncot (furniture, 3)", FormatSuggestions([]suggest.Suggestion{
		{Word: "cat", Category: "animal", Length: 3},
		{Word: "cot", Category: "furniture", Length: 3},
	}))
	assert.Equal(t, "Suggested words:\n", FormatSuggestions(nil))
}

func TestFormatCorrection(t *testing.T) {
	idx := newIndex()
	assert.Equal(t, "Corrected word: cat", FormatCorrection(idx.AutoCorrect("ct")))
	assert.Equal(t, "Corrected word: xyz", FormatCorrection(idx.AutoCorrect("xyz")))
}

func TestFormatWithCommas(t *testing.T) {
	assert.Equal(t, "999", formatWithCommas(999))
	assert.Equal(t, "1,000", formatWithCommas(1000))
	assert.Equal(t, "1,234,567", formatWithCommas(1234567))
}

func TestInputHandlerCommands(t *testing.T) {
	out := runLines(t, newIndex(), false,
		"suggest c",
		"spell the cat",
		"category dog",
		"words animal",
		"correct ct",
		"",
		"stats",
	)

	assert.Contains(t, out, "Suggested words:\ncat (animal, 3)\ncot (furniture, 3)")
	assert.Contains(t, out, "Misspelled words: the")
	assert.Contains(t, out, "The category of 'dog' is 'animal'.")
	assert.Contains(t, out, "Words under category 'animal':\ncat, dog")
	assert.Contains(t, out, "Corrected word: cat")
	assert.Contains(t, out, "Index stats:")
	assert.Contains(t, out, "words")
}

func TestInputHandlerRegister(t *testing.T) {
	idx := newIndex()
	out := runLines(t, idx, true,
		"register Cow animal 3",
		"register cow farm 3",
		"register bad",
		"category cow",
		"entries cow",
	)

	assert.True(t, idx.CheckWord("cow"))
	assert.Len(t, idx.Entries("cow"), 2)
	assert.Contains(t, out, "The category of 'cow' is 'animal'.")
	assert.Contains(t, out, "Entries for 'cow':\n 1. animal (3)\n 2. farm (3)")
}

func TestInputHandlerUnknownCommand(t *testing.T) {
	out := runLines(t, newIndex(), false, "explode now")
	assert.Contains(t, out, "commands:")
}

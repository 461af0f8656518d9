package cli

import (
	"fmt"
	"strings"

	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
)

var (
	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	headerStyle = lipgloss.NewStyle().Bold(true)
)

const helpText = `commands:
  correct <word>            best guess for a misspelled word
  suggest <prefix>          words starting with prefix
  spell <sentence>          misspelled words of a sentence
  category <word>           category of a word
  words <category>          words under a category
  entries <word>            every entry recorded for a word
  register <word> <category> <length>
  stats                     index statistics
  help                      this message`

// FormatCorrection renders the best guess of an auto-correct.
func FormatCorrection(result suggest.AutoCorrectResult) string {
	return "Corrected word: " + result.BestGuess()
}

// FormatSuggestions renders one "word (category, length)" line per suggestion.
func FormatSuggestions(suggestions []suggest.Suggestion) string {
	lines := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		lines = append(lines, fmt.Sprintf("%s (%s, %d)", s.Word, s.Category, s.Length))
	}
	return "Suggested words:\n" + strings.Join(lines, "\n")
}

func FormatSpellCheck(misspelled []string) string {
	if len(misspelled) == 0 {
		return "No misspelled words found."
	}
	return "Misspelled words: " + strings.Join(misspelled, ", ")
}

func FormatCategory(word, category string, found bool) string {
	if !found {
		return fmt.Sprintf("'%s' not found in the dictionary.", word)
	}
	return fmt.Sprintf("The category of '%s' is '%s'.", word, category)
}

func FormatWordsUnderCategory(category string, words []string) string {
	if len(words) == 0 {
		return fmt.Sprintf("No words found under category '%s'.", category)
	}
	return fmt.Sprintf("Words under category '%s':\n%s", category, strings.Join(words, ", "))
}

func FormatEntries(word string, entries []suggest.Entry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("'%s' not found in the dictionary.", word)
	}
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%2d. %s (%d)", i+1, e.Category, e.Length))
	}
	return fmt.Sprintf("Entries for '%s':\n%s", word, strings.Join(lines, "\n"))
}

// formatWithCommas formats an integer with comma separators
func formatWithCommas(n int) string {
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}

	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}

// Package cli handles interactive line input against the word index.
// Each line is a command followed by its argument, mirroring the actions the
// server exposes.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler reads commands from its input and writes answers to its output.
type InputHandler struct {
	index        suggest.Index
	in           io.Reader
	out          io.Writer
	showEntries  bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler on stdin/stdout
func NewInputHandler(index suggest.Index, showEntries bool) *InputHandler {
	return &InputHandler{
		index:       index,
		in:          os.Stdin,
		out:         os.Stdout,
		showEntries: showEntries,
	}
}

// WithIO swaps the input and output streams.
func (h *InputHandler) WithIO(in io.Reader, out io.Writer) *InputHandler {
	h.in = in
	h.out = out
	return h
}

// Start begins the interface loop. It stops cleanly at end of input.
func (h *InputHandler) Start() error {
	log.Print("wordindex CLI")
	log.Print("type a command and press Enter ('help' lists them, Ctrl+C to exit):")

	reader := bufio.NewReader(h.in)
	for {
		line, err := reader.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			h.handleInput(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput splits a line into command and argument and runs it.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	start := time.Now()
	switch strings.ToLower(command) {
	case "correct":
		h.print(FormatCorrection(h.index.AutoCorrect(arg)))
	case "suggest":
		suggestions := h.index.SuggestByPrefix(arg)
		if len(suggestions) == 0 {
			log.Warnf("No suggestions found for prefix: '%s'", arg)
		}
		h.print(FormatSuggestions(suggestions))
	case "spell":
		h.print(FormatSpellCheck(h.index.SpellCheck(arg)))
	case "category":
		category, found := h.index.CategoryOf(arg)
		h.print(FormatCategory(arg, category, found))
		if found && h.showEntries {
			h.print(FormatEntries(arg, h.index.Entries(arg)))
		}
	case "words":
		h.print(FormatWordsUnderCategory(arg, h.index.WordsUnderCategory(arg)))
	case "entries":
		h.print(FormatEntries(arg, h.index.Entries(arg)))
	case "register":
		h.handleRegister(arg)
	case "stats":
		h.printStats()
	case "help":
		h.print(helpText)
	default:
		log.Errorf("Unknown command: %s", command)
		h.print(helpText)
	}
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), command)
}

func (h *InputHandler) handleRegister(arg string) {
	fields := strings.Fields(arg)
	if len(fields) != 3 {
		log.Errorf("register expects <word> <category> <length>, got: '%s'", arg)
		return
	}
	length, err := strconv.Atoi(fields[2])
	if err != nil {
		log.Errorf("Invalid length '%s': %v", fields[2], err)
		return
	}

	h.index.Register(fields[0], fields[1], length)
	h.print(fmt.Sprintf("Registered '%s' under '%s'.", wordStyle.Render(fields[0]), fields[1]))
}

func (h *InputHandler) printStats() {
	stats := h.index.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h.print(headerStyle.Render("Index stats:"))
	for _, k := range keys {
		h.print(fmt.Sprintf("  %-16s %10s", k, formatWithCommas(stats[k])))
	}
}

func (h *InputHandler) print(s string) {
	fmt.Fprintln(h.out, s)
}

/*
Package server implements msgpack IPC for the word index.

Clients write msgpack encoded requests to stdin and read msgpack encoded
responses from stdout, one response per request, in order. Every request
carries an action and an optional ID which is echoed back; when the ID is
missing the server assigns one.

A prefix suggestion request:

	{"id": "req_001", "action": "suggest", "text": "ca"}

is answered with every word below the prefix and its first entry:

	{"id": "req_001", "s": [{"w": "cat", "c": "animal", "n": 3}], "c": 1, "t": 41}

The other actions follow the same shape:

	{"action": "check", "text": "Cat"}
	{"action": "spell", "text": "the cat sat"}
	{"action": "correct", "text": "ct"}
	{"action": "category", "text": "cat"}
	{"action": "words", "text": "animal"}
	{"action": "register", "text": "cow", "category": "animal", "length": 3}
	{"action": "stats"}

Failures never stop the loop; they are reported with an ErrorResponse holding
a message and an HTTP-like status code.
*/
package server

import (
	"errors"

	"github.com/bastiangx/wordindex/pkg/suggest"
)

// Supported request actions
const (
	ActionSuggest  = "suggest"
	ActionCheck    = "check"
	ActionSpell    = "spell"
	ActionCorrect  = "correct"
	ActionCategory = "category"
	ActionWords    = "words"
	ActionRegister = "register"
	ActionStats    = "stats"
)

// ErrUnknownAction is reported for requests with an unsupported action.
var ErrUnknownAction = errors.New("unknown action")

// Request is the single request envelope for every action.
// Text holds the word, prefix, sentence or category depending on the action.
type Request struct {
	ID       string `msgpack:"id"`
	Action   string `msgpack:"action"`
	Text     string `msgpack:"text"`
	Category string `msgpack:"category,omitempty"`
	Length   int    `msgpack:"length,omitempty"`
}

// StatusResponse signals readiness and successful writes
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// SuggestResponse - prefix suggestions
type SuggestResponse struct {
	ID          string               `msgpack:"id"`
	Suggestions []suggest.Suggestion `msgpack:"s"`
	Count       int                  `msgpack:"c"`
	Total       int                  `msgpack:"total"`
	TimeTaken   int64                `msgpack:"t"`
}

// CheckResponse - single word lookup
type CheckResponse struct {
	ID    string `msgpack:"id"`
	Found bool   `msgpack:"found"`
}

// SpellResponse - misspelled tokens of a sentence
type SpellResponse struct {
	ID         string   `msgpack:"id"`
	Misspelled []string `msgpack:"misspelled"`
}

// CorrectResponse - auto-correct outcome. Kind is "unmatched" or
// "completions"; Best is the chosen guess for either kind.
type CorrectResponse struct {
	ID          string               `msgpack:"id"`
	Kind        string               `msgpack:"kind"`
	Prefix      string               `msgpack:"prefix,omitempty"`
	Suggestions []suggest.Suggestion `msgpack:"s,omitempty"`
	Best        string               `msgpack:"best"`
}

// CategoryResponse - category of a word
type CategoryResponse struct {
	ID       string `msgpack:"id"`
	Category string `msgpack:"category,omitempty"`
	Found    bool   `msgpack:"found"`
}

// WordsResponse - words under a category
type WordsResponse struct {
	ID    string   `msgpack:"id"`
	Words []string `msgpack:"words"`
	Count int      `msgpack:"c"`
}

// RegisterResponse - result of a register request
type RegisterResponse struct {
	ID      string `msgpack:"id"`
	Status  string `msgpack:"status"`
	Entries int    `msgpack:"entries"`
}

// StatsResponse - index statistics
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"code"`
}

package server

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bastiangx/wordindex/pkg/config"
	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newTestIndex() *suggest.Trie {
	trie := suggest.NewCachedTrie(8)
	trie.Load([]suggest.Triple{
		{Word: "cat", Category: "animal", Length: 3},
		{Word: "cot", Category: "furniture", Length: 3},
		{Word: "car", Category: "vehicle", Length: 3},
		{Word: "dog", Category: "animal", Length: 3},
	})
	return trie
}

// run feeds requests to a fresh server and returns a decoder over its output,
// positioned after the ready message.
func run(t *testing.T, cfg *config.Config, requests ...any) *msgpack.Decoder {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	var out bytes.Buffer
	srv := NewServer(newTestIndex(), cfg, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
	return dec
}

func TestServerSuggest(t *testing.T) {
	dec := run(t, nil, Request{ID: "s1", Action: ActionSuggest, Text: "c"})

	var resp SuggestResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "s1", resp.ID)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, []suggest.Suggestion{
		{Word: "cat", Category: "animal", Length: 3},
		{Word: "car", Category: "vehicle", Length: 3},
		{Word: "cot", Category: "furniture", Length: 3},
	}, resp.Suggestions)
}

func TestServerSuggestLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxResults = 1
	dec := run(t, cfg, Request{ID: "s1", Action: ActionSuggest, Text: "c"})

	var resp SuggestResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "cat", resp.Suggestions[0].Word)
}

func TestServerActions(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "a", Action: ActionCheck, Text: "CAT"},
		Request{ID: "b", Action: ActionSpell, Text: "the cat sat"},
		Request{ID: "c", Action: ActionCorrect, Text: "ct"},
		Request{ID: "d", Action: ActionCorrect, Text: "xyz"},
		Request{ID: "e", Action: ActionCategory, Text: "dog"},
		Request{ID: "f", Action: ActionCategory, Text: "Dog"},
		Request{ID: "g", Action: ActionWords, Text: "animal"},
	)

	var check CheckResponse
	require.NoError(t, dec.Decode(&check))
	assert.Equal(t, CheckResponse{ID: "a", Found: true}, check)

	var spell SpellResponse
	require.NoError(t, dec.Decode(&spell))
	assert.Equal(t, []string{"the", "sat"}, spell.Misspelled)

	var correct CorrectResponse
	require.NoError(t, dec.Decode(&correct))
	assert.Equal(t, "completions", correct.Kind)
	assert.Equal(t, "c", correct.Prefix)
	assert.Equal(t, "cat", correct.Best)
	assert.Len(t, correct.Suggestions, 3)

	var unmatched CorrectResponse
	require.NoError(t, dec.Decode(&unmatched))
	assert.Equal(t, "unmatched", unmatched.Kind)
	assert.Equal(t, "xyz", unmatched.Best)
	assert.Empty(t, unmatched.Suggestions)

	var category CategoryResponse
	require.NoError(t, dec.Decode(&category))
	assert.Equal(t, CategoryResponse{ID: "e", Category: "animal", Found: true}, category)

	var missing CategoryResponse
	require.NoError(t, dec.Decode(&missing))
	assert.False(t, missing.Found)

	var words WordsResponse
	require.NoError(t, dec.Decode(&words))
	assert.ElementsMatch(t, []string{"cat", "dog"}, words.Words)
	assert.Equal(t, 2, words.Count)
}

func TestServerRegisterThenSuggest(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "s1", Action: ActionSuggest, Text: "co"},
		Request{ID: "r1", Action: ActionRegister, Text: "Cow", Category: "animal", Length: 3},
		Request{ID: "r2", Action: ActionRegister, Text: "cow", Category: "farm", Length: 3},
		Request{ID: "s2", Action: ActionSuggest, Text: "co"},
		Request{ID: "st", Action: ActionStats},
	)

	var before SuggestResponse
	require.NoError(t, dec.Decode(&before))
	assert.Equal(t, 1, before.Count)

	var reg RegisterResponse
	require.NoError(t, dec.Decode(&reg))
	assert.Equal(t, RegisterResponse{ID: "r1", Status: "ok", Entries: 1}, reg)
	require.NoError(t, dec.Decode(&reg))
	assert.Equal(t, 2, reg.Entries)

	var after SuggestResponse
	require.NoError(t, dec.Decode(&after))
	assert.Equal(t, []suggest.Suggestion{
		{Word: "cot", Category: "furniture", Length: 3},
		{Word: "cow", Category: "animal", Length: 3},
	}, after.Suggestions)

	var stats StatsResponse
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, 5, stats.Stats["words"])
	assert.Equal(t, 6, stats.Stats["entries"])
}

func TestServerErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxPrefix = 4
	cfg.Server.MaxSentence = 8

	dec := run(t, cfg,
		Request{ID: "u", Action: "delete", Text: "cat"},
		Request{ID: "p", Action: ActionSuggest, Text: "toolong"},
		Request{ID: "s", Action: ActionSpell, Text: "far too long"},
		Request{ID: "r", Action: ActionRegister},
		"not a request",
		Request{ID: "ok", Action: ActionCheck, Text: "cat"},
	)

	for _, id := range []string{"u", "p", "s", "r"} {
		var resp ErrorResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, 400, resp.Code)
		assert.NotEmpty(t, resp.Error)
	}

	var invalid ErrorResponse
	require.NoError(t, dec.Decode(&invalid))
	assert.Equal(t, 400, invalid.Code)
	assert.Equal(t, "Invalid msgpack request", invalid.Error)

	// the loop keeps serving after failures
	var check CheckResponse
	require.NoError(t, dec.Decode(&check))
	assert.Equal(t, CheckResponse{ID: "ok", Found: true}, check)
}

func TestServerAssignsID(t *testing.T) {
	dec := run(t, nil, Request{Action: ActionCheck, Text: "cat"})

	var resp CheckResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Len(t, resp.ID, 36)
}

func TestDispatchUnknownAction(t *testing.T) {
	srv := NewServer(newTestIndex(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	_, err := srv.dispatch(Request{Action: "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAction))

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, 400, reqErr.Code)
}

func TestServerAppliesConfigUpdates(t *testing.T) {
	updates := make(chan *config.Config, 1)
	cfg := config.DefaultConfig()
	cfg.Server.MaxResults = 1
	updates <- cfg

	var in bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&in).Encode(Request{ID: "s", Action: ActionSuggest, Text: "c"}))

	var out bytes.Buffer
	srv := NewServer(newTestIndex(), nil, &in, &out)
	srv.WatchConfig(updates)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))

	var resp SuggestResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 1, resp.Count)
}

func TestServerStatsCountsRequests(t *testing.T) {
	dec := run(t, nil,
		Request{Action: ActionCheck, Text: "cat"},
		Request{Action: ActionStats},
	)

	var check CheckResponse
	require.NoError(t, dec.Decode(&check))

	var stats StatsResponse
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, 2, stats.Stats["requests"])
	assert.Equal(t, 4, stats.Stats["words"])
}

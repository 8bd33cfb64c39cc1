package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/predtext/pkg/config"
	"github.com/bastiangx/predtext/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func testDict() *trie.Trie {
	d := trie.New()
	d.Insert("word", 3)
	d.Insert("world", 10)
	d.Insert("build", 50)
	return d
}

// run feeds the encoded requests to a server and returns a decoder over its
// output, positioned after the ready message.
func run(t *testing.T, d *trie.Trie, cfg *config.Config, requests ...any) *msgpack.Decoder {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range requests {
		require.NoError(t, enc.Encode(r))
	}

	var out bytes.Buffer
	srv := NewServer(d, cfg, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
	require.Equal(t, d.Count(), ready.Words)
	return dec
}

func TestPredict(t *testing.T) {
	dec := run(t, testDict(), config.DefaultConfig(),
		Request{ID: "r1", Prefix: "wo", Limit: 5},
		Request{ID: "r2", Action: ActionPredict, Prefix: "wo", Limit: 1},
		Request{ID: "r3", Prefix: "zz"},
	)

	var resp PredictResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, []trie.Prediction{
		{Word: "world", Popularity: 10},
		{Word: "word", Popularity: 3},
	}, resp.Suggestions)

	resp = PredictResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "r2", resp.ID)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "world", resp.Suggestions[0].Word)

	resp = PredictResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "r3", resp.ID)
	assert.Zero(t, resp.Count)
}

func TestPredictLimitIsClamped(t *testing.T) {
	d := trie.New()
	for _, w := range []string{"aa", "ab", "ac", "ad", "ae"} {
		d.Add(w)
	}
	cfg := config.DefaultConfig()
	cfg.Server.MaxLimit = 3
	cfg.CLI.Limit = 2

	dec := run(t, d, cfg,
		Request{ID: "big", Prefix: "a", Limit: 100},
		Request{ID: "default", Prefix: "a"},
	)

	var resp PredictResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 3, resp.Count)

	resp = PredictResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 2, resp.Count)
}

func TestUnusableLimitsFallBackToDefaults(t *testing.T) {
	d := trie.New()
	for _, w := range []string{"aa", "ab", "ac", "ad", "ae", "af", "ag"} {
		d.Add(w)
	}
	cfg := config.DefaultConfig()
	cfg.Server.MaxLimit = 0
	cfg.CLI.Limit = 0

	dec := run(t, d, cfg,
		Request{ID: "two", Prefix: "a", Limit: 2},
		Request{ID: "default", Prefix: "a"},
	)

	var resp PredictResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "two", resp.ID)
	assert.Equal(t, 2, resp.Count)

	resp = PredictResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, config.DefaultConfig().CLI.Limit, resp.Count)

	assert.Zero(t, cfg.Server.MaxLimit)
}

func TestRejectedRequests(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MinPrefix = 2
	cfg.Server.MaxPrefix = 4

	dec := run(t, testDict(), cfg,
		Request{ID: "empty"},
		Request{ID: "short", Prefix: "w"},
		Request{ID: "long", Prefix: "worlds"},
		Request{ID: "action", Action: "fuzzy", Prefix: "wo"},
		Request{ID: "noword", Action: ActionContains},
		"not a map",
	)

	for _, id := range []string{"empty", "short", "long", "action", "noword", ""} {
		var resp ErrorResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, 400, resp.Code)
		assert.NotEmpty(t, resp.Error)
	}
}

func TestWordActions(t *testing.T) {
	d := testDict()
	pop := 7

	dec := run(t, d, config.DefaultConfig(),
		Request{ID: "c1", Action: ActionContains, Word: "word"},
		Request{ID: "c2", Action: ActionContains, Word: "wor"},
		Request{ID: "i1", Action: ActionInsert, Word: "wordy", Popularity: &pop},
		Request{ID: "r1", Action: ActionRemove, Word: "wordy"},
		Request{ID: "r2", Action: ActionRemove, Word: "nothing"},
	)

	var resp WordResponse
	require.NoError(t, dec.Decode(&resp))
	assert.True(t, resp.OK)
	require.NotNil(t, resp.Popularity)
	assert.Equal(t, 3, *resp.Popularity)

	resp = WordResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "c2", resp.ID)
	assert.False(t, resp.OK)

	resp = WordResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "i1", resp.ID)
	assert.True(t, resp.OK)

	resp = WordResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "r1", resp.ID)
	assert.True(t, resp.OK)
	assert.True(t, resp.Pruned)

	resp = WordResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "r2", resp.ID)
	assert.False(t, resp.OK)
	assert.False(t, resp.Pruned)

	assert.True(t, d.Contains("word"))
	assert.False(t, d.Contains("wordy"))
}

func TestStatsAndWords(t *testing.T) {
	dec := run(t, testDict(), config.DefaultConfig(),
		Request{ID: "s", Action: ActionStats},
		Request{ID: "all", Action: ActionWords},
		Request{ID: "sub", Action: ActionWords, Prefix: "wor", Limit: 1},
	)

	var stats StatsResponse
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, "s", stats.ID)
	assert.Equal(t, 3, stats.Words)
	assert.Equal(t, 5, stats.Height)
	assert.Equal(t, 2, stats.MaximumBranching)

	var words WordsResponse
	require.NoError(t, dec.Decode(&words))
	assert.Equal(t, []string{"word", "world", "build"}, words.Words)

	words = WordsResponse{}
	require.NoError(t, dec.Decode(&words))
	assert.Equal(t, []string{"word"}, words.Words)
}

/*
Package server implements a msgpack IPC front end for the predictor.

Clients write one msgpack map per request to stdin and read one msgpack map
per response from stdout. Every request carries an ID that is echoed back.
The "a" field selects the action and defaults to "predict":

	{"id": "r1", "p": "wo", "l": 5}
	{"id": "r1", "s": [{"w": "world", "p": 10}, {"w": "word", "p": 3}], "c": 2, "t": 12}

Word actions operate on a single word:

	{"id": "r2", "a": "contains", "w": "word"}          -> {"id": "r2", "ok": true}
	{"id": "r3", "a": "insert", "w": "wordy", "pop": 7} -> {"id": "r3", "ok": true}
	{"id": "r4", "a": "remove", "w": "wordy"}           -> {"id": "r4", "ok": true, "pruned": true}

"stats" returns the structural figures of the dictionary and "words" lists the
stored words under an optional prefix.

Invalid requests are answered with {"id": ..., "e": "message", "c": 400} and
never reach the dictionary. Requests are served one at a time, in order.
*/
package server

import "github.com/bastiangx/predtext/pkg/trie"

// Actions understood by the server.
const (
	ActionPredict  = "predict"
	ActionContains = "contains"
	ActionInsert   = "insert"
	ActionRemove   = "remove"
	ActionStats    = "stats"
	ActionWords    = "words"
)

// Request is the envelope for every action. Fields not used by an action are
// ignored.
type Request struct {
	ID         string `msgpack:"id"`
	Action     string `msgpack:"a,omitempty"`
	Prefix     string `msgpack:"p,omitempty"`
	Limit      int    `msgpack:"l,omitempty"`
	Word       string `msgpack:"w,omitempty"`
	Popularity *int   `msgpack:"pop,omitempty"`
}

// PredictResponse - ranked predictions for a prefix
type PredictResponse struct {
	ID          string            `msgpack:"id"`
	Suggestions []trie.Prediction `msgpack:"s"`
	Count       int               `msgpack:"c"`
	TimeTaken   int64             `msgpack:"t"`
}

// WordResponse - result of a contains/insert/remove action
type WordResponse struct {
	ID         string `msgpack:"id"`
	OK         bool   `msgpack:"ok"`
	Pruned     bool   `msgpack:"pruned,omitempty"`
	Popularity *int   `msgpack:"pop,omitempty"`
}

// StatsResponse - dictionary figures
type StatsResponse struct {
	ID         string `msgpack:"id"`
	trie.Stats `msgpack:",inline"`
	TimeTaken  int64 `msgpack:"t"`
}

// WordsResponse - stored words under a prefix
type WordsResponse struct {
	ID    string   `msgpack:"id"`
	Words []string `msgpack:"words"`
	Count int      `msgpack:"c"`
}

// ErrorResponse holds basic error information for rejected requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// StatusResponse is sent once when the server is ready.
type StatusResponse struct {
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words"`
}

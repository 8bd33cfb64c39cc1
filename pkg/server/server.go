package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/predtext/internal/logger"
	"github.com/bastiangx/predtext/internal/utils"
	"github.com/bastiangx/predtext/pkg/config"
	"github.com/bastiangx/predtext/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for word predictions
type Server struct {
	dict         *trie.Trie
	limits       config.ServerConfig
	defaultLimit int
	dec          *msgpack.Decoder
	out          *bufio.Writer
	enc          *msgpack.Encoder
	log          *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from r and writing responses
// to w. Production callers pass os.Stdin and os.Stdout. Unusable limits in
// cfg are replaced by their defaults; cfg itself is left untouched.
func NewServer(dict *trie.Trie, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	checked := *cfg
	checked.Validate()

	out := bufio.NewWriter(w)
	return &Server{
		dict:         dict,
		limits:       checked.Server,
		defaultLimit: checked.CLI.Limit,
		dec:          msgpack.NewDecoder(bufio.NewReader(r)),
		out:          out,
		enc:          msgpack.NewEncoder(out),
		log:          logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready", Words: s.dict.Count()}); err != nil {
		return err
	}

	for {
		var raw msgpack.RawMessage
		if err := s.dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Client disconnected", "requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return err
		}
		if err := s.handle(raw); err != nil {
			return err
		}
	}
}

// handle decodes one request and writes its response. Only write failures
// are returned; bad requests are answered with an ErrorResponse.
func (s *Server) handle(raw msgpack.RawMessage) error {
	s.requestCount++

	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.log.Debugf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid request", 400)
	}

	switch req.Action {
	case "", ActionPredict:
		return s.handlePredict(req)
	case ActionContains, ActionInsert, ActionRemove:
		return s.handleWord(req)
	case ActionStats:
		start := time.Now()
		stats := s.dict.Stats()
		return s.send(StatsResponse{ID: req.ID, Stats: stats, TimeTaken: time.Since(start).Microseconds()})
	case ActionWords:
		return s.handleWords(req)
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handlePredict(req Request) error {
	if msg := s.checkPrefix(req.Prefix); msg != "" {
		s.log.Debug("Rejected prefix", "id", req.ID, "reason", msg)
		return s.sendError(req.ID, msg, 400)
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.defaultLimit
	}
	limit = min(limit, s.limits.MaxLimit)

	start := time.Now()
	suggestions := s.dict.PredictScored(req.Prefix, limit)
	elapsed := time.Since(start)
	s.log.Debugf("Took [ %v ] for prefix '%s'", elapsed, req.Prefix)

	return s.send(PredictResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleWord(req Request) error {
	if req.Word == "" {
		return s.sendError(req.ID, "missing 'w' parameter", 400)
	}

	resp := WordResponse{ID: req.ID}
	switch req.Action {
	case ActionContains:
		if pop, ok := s.dict.Popularity(req.Word); ok {
			resp.OK = true
			resp.Popularity = &pop
		}
	case ActionInsert:
		pop := 0
		if req.Popularity != nil {
			pop = *req.Popularity
		}
		s.dict.Insert(req.Word, pop)
		resp.OK = true
		resp.Popularity = &pop
	case ActionRemove:
		resp.OK = s.dict.Contains(req.Word)
		resp.Pruned = s.dict.Remove(req.Word)
	}
	return s.send(resp)
}

func (s *Server) handleWords(req Request) error {
	words := s.dict.WordsWithPrefix(req.Prefix)
	if req.Limit > 0 && len(words) > req.Limit {
		words = words[:req.Limit]
	}
	return s.send(WordsResponse{ID: req.ID, Words: words, Count: len(words)})
}

// checkPrefix returns a rejection message, or "" for a usable prefix.
func (s *Server) checkPrefix(prefix string) string {
	n := utils.RuneLen(prefix)
	switch {
	case n == 0:
		return "missing 'p' parameter"
	case n < s.limits.MinPrefix:
		return fmt.Sprintf("prefix must be at least %d characters", s.limits.MinPrefix)
	case n > s.limits.MaxPrefix:
		return fmt.Sprintf("prefix exceeds maximum length of %d characters", s.limits.MaxPrefix)
	}
	return ""
}

func (s *Server) send(v any) error {
	if err := s.enc.Encode(v); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return err
	}
	return s.out.Flush()
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

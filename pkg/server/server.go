package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordindex/internal/logger"
	"github.com/bastiangx/wordindex/pkg/config"
	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// RequestError is a failed request together with the code sent to the client
type RequestError struct {
	Code int
	Err  error
}

func (e *RequestError) Error() string { return e.Err.Error() }
func (e *RequestError) Unwrap() error { return e.Err }

func badRequest(format string, args ...any) *RequestError {
	return &RequestError{Code: 400, Err: fmt.Errorf(format, args...)}
}

// Server handles the IPC for index requests
type Server struct {
	index        suggest.Index
	config       *config.Config
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	updates      <-chan *config.Config
	log          *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from r and writing responses to w
func NewServer(index suggest.Index, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	writer := bufio.NewWriter(w)
	return &Server{
		index:   index,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  writer,
		encoder: msgpack.NewEncoder(writer),
		log:     logger.New("ipc"),
	}
}

// WatchConfig makes the server apply configs from updates between requests
func (s *Server) WatchConfig(updates <-chan *config.Config) {
	s.updates = updates
}

// Start signals readiness and serves requests until the input is closed
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")

	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Client closed input")
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return fmt.Errorf("failed to read request: %w", err)
		}

		s.applyConfigUpdates()
		s.requestCount++

		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// applyConfigUpdates swaps in the newest config without blocking
func (s *Server) applyConfigUpdates() {
	for {
		select {
		case cfg, ok := <-s.updates:
			if !ok {
				s.updates = nil
				return
			}
			s.config = cfg
			s.log.Debug("Applied reloaded config",
				"maxPrefix", cfg.Server.MaxPrefix,
				"maxSentence", cfg.Server.MaxSentence,
				"maxResults", cfg.Server.MaxResults)
		default:
			return
		}
	}
}

// handleRequest decodes one request and writes exactly one response.
// Only write failures are returned.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var request Request
	if err := msgpack.Unmarshal(raw, &request); err != nil {
		s.log.Errorf("Unmarshaling request: %v", err)
		return s.send(ErrorResponse{Error: "Invalid msgpack request", Code: 400})
	}
	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	response, err := s.dispatch(request)
	if err != nil {
		code := 500
		var reqErr *RequestError
		if errors.As(err, &reqErr) {
			code = reqErr.Code
		}
		s.log.Debugf("Request %s (%s) failed: %v", request.ID, request.Action, err)
		return s.send(ErrorResponse{ID: request.ID, Error: err.Error(), Code: code})
	}
	return s.send(response)
}

// dispatch runs the action named by request and builds its response
func (s *Server) dispatch(request Request) (any, error) {
	switch request.Action {
	case ActionSuggest:
		return s.handleSuggest(request)
	case ActionCheck:
		if err := s.validateWord(request.Text); err != nil {
			return nil, err
		}
		return CheckResponse{ID: request.ID, Found: s.index.CheckWord(request.Text)}, nil
	case ActionSpell:
		if len(request.Text) > s.config.Server.MaxSentence {
			return nil, badRequest("Sentence exceeds maximum length of %d characters", s.config.Server.MaxSentence)
		}
		return SpellResponse{ID: request.ID, Misspelled: s.index.SpellCheck(request.Text)}, nil
	case ActionCorrect:
		return s.handleCorrect(request)
	case ActionCategory:
		if err := s.validateWord(request.Text); err != nil {
			return nil, err
		}
		category, found := s.index.CategoryOf(request.Text)
		return CategoryResponse{ID: request.ID, Category: category, Found: found}, nil
	case ActionWords:
		words := s.index.WordsUnderCategory(request.Text)
		return WordsResponse{ID: request.ID, Words: words, Count: len(words)}, nil
	case ActionRegister:
		return s.handleRegister(request)
	case ActionStats:
		stats := s.index.Stats()
		stats["requests"] = s.requestCount
		return StatsResponse{ID: request.ID, Stats: stats}, nil
	default:
		return nil, &RequestError{Code: 400, Err: fmt.Errorf("%w: %q", ErrUnknownAction, request.Action)}
	}
}

func (s *Server) validateWord(text string) error {
	if len(text) > s.config.Server.MaxPrefix {
		return badRequest("Text exceeds maximum length of %d characters", s.config.Server.MaxPrefix)
	}
	return nil
}

func (s *Server) handleSuggest(request Request) (any, error) {
	if err := s.validateWord(request.Text); err != nil {
		return nil, err
	}

	start := time.Now()
	suggestions := s.index.SuggestByPrefix(request.Text)
	elapsed := time.Since(start)

	total := len(suggestions)
	suggestions = s.limit(suggestions)

	return SuggestResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		Total:       total,
		TimeTaken:   elapsed.Microseconds(),
	}, nil
}

func (s *Server) handleCorrect(request Request) (any, error) {
	if err := s.validateWord(request.Text); err != nil {
		return nil, err
	}

	result := s.index.AutoCorrect(request.Text)
	return CorrectResponse{
		ID:          request.ID,
		Kind:        result.Kind.String(),
		Prefix:      result.Prefix,
		Suggestions: s.limit(result.Suggestions),
		Best:        result.BestGuess(),
	}, nil
}

func (s *Server) handleRegister(request Request) (any, error) {
	if request.Text == "" {
		return nil, badRequest("Missing 'text' parameter")
	}
	if err := s.validateWord(request.Text); err != nil {
		return nil, err
	}
	if request.Length < 0 {
		return nil, badRequest("Length must not be negative")
	}

	s.index.Register(request.Text, request.Category, request.Length)
	return RegisterResponse{
		ID:      request.ID,
		Status:  "ok",
		Entries: len(s.index.Entries(request.Text)),
	}, nil
}

// limit trims suggestions to the configured maximum, 0 meaning no limit
func (s *Server) limit(suggestions []suggest.Suggestion) []suggest.Suggestion {
	maxResults := s.config.Server.MaxResults
	if maxResults > 0 && len(suggestions) > maxResults {
		return suggestions[:maxResults]
	}
	return suggestions
}

// send encodes a response and flushes it to the client
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Marshaling response: %v", err)
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

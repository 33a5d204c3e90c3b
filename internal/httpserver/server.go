// internal/httpserver/server.go
//
// HTTP surface for the solver engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints: GET /solver/first, POST /solver/next,
//     POST /solver/candidates, POST /solver/analyze, POST /solver/solve.
//   - Live session endpoint: GET /solver/session (WebSocket).
//   - Admin token issuance: POST /auth/token.
//   - Benchmark endpoints (require auth): POST /bench/run, GET /bench/runs.
//
// Notes:
//   - The engine itself is stateless; REST clients carry their own
//     guess history in each request. Only the WebSocket endpoint keeps
//     per-connection state, via the session store.
//   - CORS is origin-aware and credentials-enabled.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/mfriedel/wordle-solver/internal/bench"
	"github.com/mfriedel/wordle-solver/internal/core"
	"github.com/mfriedel/wordle-solver/internal/solver"
	"github.com/mfriedel/wordle-solver/internal/store"
	"github.com/mfriedel/wordle-solver/internal/words"
)

// Server bundles router, session store, and optional benchmark persistence.
type Server struct {
	r          *chi.Mux
	sessions   store.Store
	db         *sql.DB
	benchStore *bench.Store
	guessPool  []core.Word
	answerPool []core.Word
}

// New constructs a Server, installs middleware, and registers routes.
// db may be nil; the /bench endpoints then respond 503.
func New(sessions store.Store, db *sql.DB) *Server {
	s := &Server{
		r:          chi.NewRouter(),
		sessions:   sessions,
		db:         db,
		guessPool:  words.GuessPool(),
		answerPool: words.AnswerPool(),
	}
	if db != nil {
		s.benchStore = bench.NewStore(db)
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(60 * time.Second)) // bound handler time; /solver/solve can be slow
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","GET /solver/first","POST /solver/next","POST /solver/candidates","POST /solver/analyze","POST /solver/solve","GET /solver/session","POST /auth/token","POST /bench/run","GET /bench/runs"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Debug: word list counts and live session count
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := words.Stats()
		n, _ := s.sessions.Count(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g, "sessions": n})
	})

	// Solver endpoints (public, stateless)
	s.r.Get("/solver/first", s.handleFirstGuess)
	s.r.Post("/solver/next", s.handleNextGuess)
	s.r.Post("/solver/candidates", s.handleCandidates)
	s.r.Post("/solver/analyze", s.handleAnalyze)
	s.r.Post("/solver/solve", s.handleSolve)

	// Live interactive session (WebSocket)
	s.r.Get("/solver/session", s.handleSession)

	// Admin auth + gated benchmark endpoints
	s.r.Post("/auth/token", s.handleToken)
	s.r.With(s.requireAuth()).Post("/bench/run", s.handleBenchRun)
	s.r.With(s.requireAuth()).Get("/bench/runs", s.handleBenchRuns)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ wire types ---------------------------------

// wireTurn is one guess/feedback pair as sent by clients.
// Pattern accepts the letter form ("GY--Y"), the emoji form, or a
// base-3 integer (0..242).
type wireTurn struct {
	Guess   string          `json:"guess"`
	Pattern json.RawMessage `json:"pattern"`
}

// parsePattern decodes a wire pattern (JSON string or number).
func parsePattern(raw json.RawMessage) (core.Pattern, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return core.ParsePattern(asString)
	}
	var asInt int
	if err := json.Unmarshal(raw, &asInt); err != nil {
		return 0, fmt.Errorf("pattern must be a string or an integer")
	}
	if asInt < 0 || asInt >= core.PatternCount {
		return 0, fmt.Errorf("pattern %d out of range [0, %d)", asInt, core.PatternCount)
	}
	return core.Pattern(asInt), nil
}

// parseHistory converts wire turns into solver turns.
func parseHistory(turns []wireTurn) ([]solver.Turn, error) {
	out := make([]solver.Turn, 0, len(turns))
	for i, t := range turns {
		g, err := core.NewWord(t.Guess)
		if err != nil {
			return nil, fmt.Errorf("turn %d: guess: %w", i+1, err)
		}
		p, err := parsePattern(t.Pattern)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i+1, err)
		}
		out = append(out, solver.Turn{Guess: g, Pattern: p})
	}
	return out, nil
}

// engineFor builds a fresh engine for the named strategy.
func (s *Server) engineFor(strategy string) *solver.Engine {
	return solver.NewEngine(solver.StrategyFromName(strategy), s.guessPool, s.answerPool)
}

// ------------------------------ solver -------------------------------------

// handleFirstGuess returns the opening guess for a strategy.
// GET /solver/first?strategy=adaptive
func (s *Server) handleFirstGuess(w http.ResponseWriter, r *http.Request) {
	strategy := r.URL.Query().Get("strategy")
	engine := s.engineFor(strategy)
	guess, ok := engine.FirstGuess()
	if !ok {
		http.Error(w, `{"error":"empty_pool"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"guess":      guess.Text(),
		"candidates": len(s.answerPool),
	})
}

type nextReq struct {
	History  []wireTurn `json:"history"`
	Strategy string     `json:"strategy"`
}

// handleNextGuess suggests the next guess given a full history.
// POST /solver/next
func (s *Server) handleNextGuess(w http.ResponseWriter, r *http.Request) {
	var req nextReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	history, err := parseHistory(req.History)
	if err != nil {
		http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
		return
	}

	engine := s.engineFor(req.Strategy)
	remaining := engine.CountCandidates(history)
	guess, ok := engine.NextGuess(history)
	if !ok {
		http.Error(w, `{"error":"no_candidates","detail":"history is contradictory"}`, http.StatusUnprocessableEntity)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"guess":      guess.Text(),
		"candidates": remaining,
	})
}

type candidatesReq struct {
	History []wireTurn `json:"history"`
	Limit   int        `json:"limit"`
}

// handleCandidates lists the answers still consistent with a history.
// POST /solver/candidates
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	var req candidatesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	history, err := parseHistory(req.History)
	if err != nil {
		http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
		return
	}

	engine := s.engineFor("")
	cands := engine.Candidates(history)

	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	texts := make([]string, 0, limit)
	for _, c := range cands {
		if len(texts) == limit {
			break
		}
		texts = append(texts, c.Text())
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"count":      len(cands),
		"candidates": texts,
	})
}

type analyzeReq struct {
	Guess   string     `json:"guess"`
	History []wireTurn `json:"history"`
}

// handleAnalyze scores one guess against the candidates a history leaves.
// POST /solver/analyze
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	guess, err := core.NewWord(req.Guess)
	if err != nil {
		http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
		return
	}
	history, err := parseHistory(req.History)
	if err != nil {
		http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
		return
	}

	engine := s.engineFor("")
	cands := engine.Candidates(history)
	m := solver.ComputeMetrics(guess, cands)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"guess":              guess.Text(),
		"candidates":         len(cands),
		"entropy":            m.Entropy,
		"expected_remaining": m.ExpectedRemaining,
		"max_partition":      m.MaxPartition,
	})
}

type solveReq struct {
	Answer   string `json:"answer"`
	Strategy string `json:"strategy"`
	First    string `json:"first"`
}

type solveTurn struct {
	Guess      string `json:"guess"`
	Pattern    string `json:"pattern"`
	Candidates int    `json:"candidates"`
}

// handleSolve plays a full game against a known answer and returns
// the turn-by-turn transcript.
// POST /solver/solve
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	answer, err := core.NewWord(req.Answer)
	if err != nil {
		http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
		return
	}

	engine := s.engineFor(req.Strategy)
	var history []solver.Turn
	var transcript []solveTurn
	solved := false

	for turn := 1; turn <= 10; turn++ {
		var guess core.Word
		if turn == 1 && req.First != "" {
			g, err := core.NewWord(req.First)
			if err != nil {
				http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
				return
			}
			guess = g
		} else {
			g, ok := engine.NextGuess(history)
			if !ok {
				break
			}
			guess = g
		}

		p := core.Calculate(guess, answer)
		transcript = append(transcript, solveTurn{
			Guess:      guess.Text(),
			Pattern:    p.Emoji(),
			Candidates: engine.CountCandidates(history),
		})
		if p.IsPerfect() {
			solved = true
			break
		}
		history = append(history, solver.Turn{Guess: guess, Pattern: p})
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"answer": answer.Text(),
		"solved": solved,
		"turns":  len(transcript),
		"game":   transcript,
	})
}

// ------------------------------ benchmark ----------------------------------

type benchReq struct {
	Strategy string `json:"strategy"`
	First    string `json:"first"`
	Limit    int    `json:"limit"`
}

// handleBenchRun executes a benchmark and persists the summary.
// POST /bench/run (auth required)
func (s *Server) handleBenchRun(w http.ResponseWriter, r *http.Request) {
	if s.benchStore == nil {
		http.Error(w, `{"error":"bench_store_unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	var req benchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	res, err := bench.Run(bench.Options{
		Strategy:   req.Strategy,
		FirstGuess: req.First,
		Limit:      req.Limit,
	}, s.guessPool, s.answerPool)
	if err != nil {
		http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
		return
	}

	id, err := s.benchStore.SaveResult(r.Context(), res)
	if err != nil {
		log.Error().Err(err).Msg("save bench run")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"id": id, "result": res})
}

// handleBenchRuns lists recent persisted benchmark runs.
// GET /bench/runs?limit=20 (auth required)
func (s *Server) handleBenchRuns(w http.ResponseWriter, r *http.Request) {
	if s.benchStore == nil {
		http.Error(w, `{"error":"bench_store_unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.benchStore.RecentRuns(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("list bench runs")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []bench.RunRow{}
	}
	_ = json.NewEncoder(w).Encode(runs)
}

// internal/httpserver/session.go
//
// Live interactive solver session over WebSocket.
// Responsibilities:
//   - Upgrade GET /solver/session and register a session in the store.
//   - Suggest a guess, wait for the client's pattern feedback, repeat.
//   - Support "undo" (drop the last turn) and "reset" (fresh game).
//
// Protocol (JSON text frames):
//   server -> client: {"type":"suggest","guess":"salet","candidates":483,"turn":1}
//                     {"type":"solved","guess":"crane","turns":3}
//                     {"type":"error","error":"..."}
//   client -> server: {"op":"pattern","pattern":"GY--Y"}   feedback for the last suggestion
//                     {"op":"pattern","guess":"crane","pattern":"GY--Y"}  off-script guess
//                     {"op":"undo"}
//                     {"op":"reset"}
//
// The session is removed from the store when the socket closes.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/mfriedel/wordle-solver/internal/core"
	"github.com/mfriedel/wordle-solver/internal/solver"
	"github.com/mfriedel/wordle-solver/internal/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true // non-browser clients
		}
		allowed := os.Getenv("CLIENT_ORIGIN")
		if allowed == "" {
			allowed = "http://localhost:5173"
		}
		return origin == allowed
	},
}

type sessionCmd struct {
	Op      string `json:"op"`
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"`
}

type sessionMsg struct {
	Type       string `json:"type"`
	Guess      string `json:"guess,omitempty"`
	Candidates int    `json:"candidates,omitempty"`
	Turn       int    `json:"turn,omitempty"`
	Turns      int    `json:"turns,omitempty"`
	Error      string `json:"error,omitempty"`
}

// handleSession runs one interactive solver game per connection.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sess := &store.Session{
		ID:        genID(),
		Strategy:  r.URL.Query().Get("strategy"),
		CreatedAt: time.Now(),
	}
	ctx := r.Context()
	if err := s.sessions.Save(ctx, sess); err != nil {
		log.Warn().Err(err).Msg("save session")
	}
	defer func() { _ = s.sessions.Delete(ctx, sess.ID) }()

	engine := s.engineFor(sess.Strategy)
	lastGuess, ok := s.suggest(conn, engine, sess)
	if !ok {
		return
	}

	for {
		var cmd sessionCmd
		if err := conn.ReadJSON(&cmd); err != nil {
			return // client gone or malformed frame; drop the session
		}

		switch cmd.Op {
		case "pattern":
			guess := lastGuess
			if guess.Text() == "" && cmd.Guess == "" {
				s.sendError(conn, "no pending suggestion; send undo or reset")
				continue
			}
			if cmd.Guess != "" {
				g, err := core.NewWord(cmd.Guess)
				if err != nil {
					s.sendError(conn, err.Error())
					continue
				}
				guess = g
			}
			p, err := core.ParsePattern(cmd.Pattern)
			if err != nil {
				s.sendError(conn, err.Error())
				continue
			}
			if p.IsPerfect() {
				_ = conn.WriteJSON(sessionMsg{
					Type:  "solved",
					Guess: guess.Text(),
					Turns: len(sess.History) + 1,
				})
				sess.History = nil
				_ = s.sessions.Save(ctx, sess)
				if lastGuess, ok = s.suggest(conn, engine, sess); !ok {
					return
				}
				continue
			}
			sess.History = append(sess.History, solver.Turn{Guess: guess, Pattern: p})
			_ = s.sessions.Save(ctx, sess)

		case "undo":
			if n := len(sess.History); n > 0 {
				sess.History = sess.History[:n-1]
				_ = s.sessions.Save(ctx, sess)
			}

		case "reset":
			sess.History = nil
			_ = s.sessions.Save(ctx, sess)

		default:
			s.sendError(conn, "unknown op: "+cmd.Op)
			continue
		}

		if lastGuess, ok = s.suggest(conn, engine, sess); !ok {
			return
		}
	}
}

// suggest computes and sends the next suggestion for the session.
// Returns false when the connection should be dropped.
func (s *Server) suggest(conn *websocket.Conn, engine *solver.Engine, sess *store.Session) (core.Word, bool) {
	remaining := engine.CountCandidates(sess.History)
	guess, ok := engine.NextGuess(sess.History)
	if !ok {
		s.sendError(conn, "history is contradictory; send reset or undo")
		// Keep the connection; the client can undo its way out.
		return core.Word{}, true
	}
	err := conn.WriteJSON(sessionMsg{
		Type:       "suggest",
		Guess:      guess.Text(),
		Candidates: remaining,
		Turn:       len(sess.History) + 1,
	})
	return guess, err == nil
}

func (s *Server) sendError(conn *websocket.Conn, msg string) {
	b, _ := json.Marshal(sessionMsg{Type: "error", Error: msg})
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}

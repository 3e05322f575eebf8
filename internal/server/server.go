package server

import (
	"context"
	"net/http"
	"sync"

	rand "math/rand/v2"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/cardtable/spades/internal/game"
	"github.com/cardtable/spades/internal/randutil"
)

// Server hosts spades tables over WebSockets. Each table serializes
// its own game; the server only routes connections to tables.
type Server struct {
	logger   zerolog.Logger
	upgrader websocket.Upgrader
	httpSrv  *http.Server

	mu     sync.RWMutex
	tables map[string]*Table
	byName map[string]*Table
}

// NewServer creates a server with one table per configured entry. Every
// table gets its own RNG: a configured seed deals deterministically,
// otherwise the seed is drawn from the server RNG here, before any
// connections exist.
func NewServer(cfg *Config, rng *rand.Rand, logger zerolog.Logger) *Server {
	s := &Server{
		logger: logger.With().Str("component", "server").Logger(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Clients are trusted peers on the same network; no
				// browser origin policy applies.
				return true
			},
		},
		tables: make(map[string]*Table),
		byName: make(map[string]*Table),
	}

	for _, tc := range cfg.Tables {
		// Tables deal from their mutating RNG under their own mutex, so
		// sharing rng itself across tables would race on redeals.
		var tableRNG *rand.Rand
		if tc.Seed != nil {
			tableRNG = randutil.New(*tc.Seed)
		} else {
			tableRNG = randutil.New(rng.Int64())
		}
		table := NewTable(tc.Name, game.NewShuffledDealer(tableRNG), logger)
		s.tables[table.ID] = table
		s.byName[table.Name] = table
		s.logger.Info().Str("table", table.Name).Str("id", table.ID).Msg("Table registered")
	}
	return s
}

// Table looks up a table by ID or name.
func (s *Server) Table(idOrName string) (*Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tables[idOrName]; ok {
		return t, true
	}
	t, ok := s.byName[idOrName]
	return t, ok
}

// Start listens on addr and serves until Shutdown or failure.
func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpSrv = &http.Server{Addr: addr, Handler: mux}
	s.logger.Info().Str("addr", addr).Msg("Starting WebSocket server")
	return s.httpSrv.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to upgrade connection")
		return
	}

	client := newConnection(conn, s, s.logger)
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

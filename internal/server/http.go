package server

import (
	"encoding/json"
	"net/http"

	"github.com/sir-pinecone/rusty-roguelike/internal/engine"
	"github.com/sir-pinecone/rusty-roguelike/internal/version"
	"github.com/sir-pinecone/rusty-roguelike/pkg/logger"
)

// Server принимает подключения рендер/инпут-коллабораторов.
// Каждое websocket-подключение получает СВОЮ сессию: рогалик однопользовательский.
type Server struct {
	BaseCfg engine.Config
	Port    string

	// FixedSeed true, если сид задан явно и должен воспроизводиться
	// для каждой новой сессии.
	FixedSeed bool
}

func New(cfg engine.Config, port string, fixedSeed bool) *Server {
	return &Server{
		BaseCfg:   cfg,
		Port:      port,
		FixedSeed: fixedSeed,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	logger.Log.Infof("Dungeon simulation server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client, err := NewClient(s.sessionConfig(), conn)
	if err != nil {
		// Ошибка конфигурации фатальна для сессии, но не для сервера
		logger.Log.WithError(err).Error("Failed to start session")
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// sessionConfig выдает конфиг для новой сессии: с фиксированным сидом
// уровни воспроизводимы, иначе каждый клиент получает свой мир.
func (s *Server) sessionConfig() engine.Config {
	cfg := s.BaseCfg
	if !s.FixedSeed {
		cfg.Seed = engine.NewConfig().Seed
	}
	return cfg
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(version.Info())
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/game"
	"github.com/pervaizahmed26/snake-game/pkg/scores"
	"github.com/pervaizahmed26/snake-game/pkg/wire"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Server owns the shared collaborators of all sessions
type Server struct {
	settings config.Settings
	store    scores.Store
	logger   *log.Logger

	// One live game per client IP
	activeIPs sync.Map
}

// NewServer creates a server around a score store
func NewServer(settings config.Settings, store scores.Store, logger *log.Logger) *Server {
	return &Server{settings: settings, store: store, logger: logger}
}

// Routes registers the HTTP handlers
func (srv *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(srv.settings.StaticDir)))
	mux.HandleFunc("/ws", srv.handleWebSocket)
	mux.HandleFunc("/api/scores", srv.handleScores)
	return mux
}

func (srv *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	codec, err := wire.CodecFor(r.URL.Query().Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	mode, err := game.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		srv.logger.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if _, loaded := srv.activeIPs.LoadOrStore(ip, true); loaded {
		srv.logger.Printf("Connection rejected: IP %s is already connected", ip)
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Already connected"))
		return
	}
	defer srv.activeIPs.Delete(ip)

	session := NewSession(conn, codec, srv.settings, mode, srv.store, srv.logger)
	srv.logger.Printf("Session %s started for %s (%s, %s)", session.id, r.RemoteAddr, mode, codec.Name())
	session.Run()
	srv.logger.Printf("Session %s ended", session.id)
}

func (srv *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	mode, err := game.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wire.ScoresMessage(mode, srv.store.Load(mode)))
}

func main() {
	logger := log.New(os.Stderr, "[webserver] ", log.LstdFlags)

	settings, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load settings: ", err)
	}

	var store scores.Store
	if db, err := scores.OpenSQLite(settings.DBPath); err != nil {
		logger.Printf("High scores kept in memory: %v", err)
		store = scores.NewMemoryStore()
	} else {
		db.SetLogger(logger)
		defer db.Close()
		store = db
	}

	srv := NewServer(settings, store, logger)

	fmt.Printf("🚀 Snake Game Web Server starting on http://localhost%s\n", settings.Addr)
	logger.Fatal(http.ListenAndServe(settings.Addr, srv.Routes()))
}

package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/game"
	"github.com/pervaizahmed26/snake-game/pkg/wire"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ReplayServer handles serving replay UI and data
type ReplayServer struct {
	addr      string
	recordDir string
	staticDir string
	logger    *log.Logger
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load settings: ", err)
	}

	server := &ReplayServer{
		addr:      ":8081",
		recordDir: settings.RecordDir,
		staticDir: settings.StaticDir,
		logger:    log.New(os.Stderr, "[replay] ", log.LstdFlags),
	}

	fmt.Printf("📼 Snake Replay Tool starting on http://localhost%s\n", server.addr)
	server.logger.Fatal(http.ListenAndServe(server.addr, server.Routes()))
}

// Routes registers the replay handlers
func (s *ReplayServer) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Serve static files (REUSE existing web/static)
	fs := http.FileServer(http.Dir(s.staticDir))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/view", s.handleView)
	mux.HandleFunc("/ws/replay", s.handleReplayWS)
	return mux
}

type RecordFile struct {
	Name      string
	Size      int64
	Time      time.Time
	SessionID string
}

// listRecords returns the session files, newest first
func (s *ReplayServer) listRecords() []RecordFile {
	files, err := os.ReadDir(s.recordDir)
	if err != nil {
		return nil
	}

	var records []RecordFile
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".jsonl" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		// expecting format: game_{sessionID}_{timestamp}.jsonl
		sessID := strings.TrimPrefix(f.Name(), "game_")
		if i := strings.LastIndex(sessID, "_"); i >= 0 {
			sessID = sessID[:i]
		}
		records = append(records, RecordFile{
			Name:      f.Name(),
			Size:      info.Size(),
			Time:      info.ModTime(),
			SessionID: sessID,
		})
	}

	// Sort by time desc
	sort.Slice(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})
	return records
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Snake Replays</title>
    <style>
        body { font-family: monospace; background: #1a202c; color: #e2e8f0; padding: 2rem; }
        table { border-collapse: collapse; width: 100%; }
        th, td { text-align: left; padding: .5rem 1rem; border-bottom: 1px solid #4a5568; }
        tr:hover td { background: #2d3748; }
        a { color: #63b3ed; }
    </style>
</head>
<body>
    <h1>📼 Recorded sessions</h1>
    <table>
        <tr><th>Session</th><th>Recorded</th><th>Size</th><th></th></tr>
        {{range .}}
        <tr>
            <td title="{{.Name}}">{{.SessionID}}</td>
            <td>{{.Time.Format "2006-01-02 15:04:05"}}</td>
            <td>{{.Size}} B</td>
            <td><a href="/view?file={{.Name}}">▶ watch</a></td>
        </tr>
        {{else}}
        <tr><td colspan="4">No recordings yet. Set SNAKE_RECORD=1 and play a round.</td></tr>
        {{end}}
    </table>
</body>
</html>`))

func (s *ReplayServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := indexTemplate.Execute(w, s.listRecords()); err != nil {
		s.logger.Println("Render index:", err)
	}
}

func (s *ReplayServer) handleView(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("file")
	if filename == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	// Redirect to the static HTML page with the file parameter
	http.Redirect(w, r, "/static/replay.html?file="+filename, http.StatusFound)
}

// handleReplayWS streams a recorded session at the speed it was played
func (s *ReplayServer) handleReplayWS(w http.ResponseWriter, r *http.Request) {
	codec, err := wire.CodecFor(r.URL.Query().Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Only bare file names inside the record directory
	path := filepath.Join(s.recordDir, filepath.Base(r.URL.Query().Get("file")))
	records, err := game.ReadRecords(path)
	if err != nil && len(records) == 0 {
		s.logger.Println("Failed to open record:", err)
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	if cfg, ok := replayConfig(records); ok {
		if err := wire.Write(conn, codec, wire.ConfigMessage(records[0].SessionID, cfg)); err != nil {
			return
		}
	}

	var paused atomic.Bool
	done := make(chan struct{})

	// Read Loop for controls
	go func() {
		defer close(done)
		for {
			var cmd wire.ClientMessage
			if err := wire.Read(conn, &cmd); err != nil {
				return
			}
			switch cmd.Action {
			case "pause":
				paused.Store(true)
			case "resume":
				paused.Store(false)
			}
		}
	}()

	// Stream Loop
	for _, rec := range records {
		for paused.Load() {
			select {
			case <-done:
				return
			case <-time.After(100 * time.Millisecond):
			}
		}

		select {
		case <-done:
			return
		case <-time.After(playbackDelay(rec)):
		}

		if err := wire.Write(conn, codec, wire.RecordMessage(rec)); err != nil {
			break
		}
	}
}

// replayConfig derives the board settings from the first recorded snapshot
func replayConfig(records []game.StepRecord) (game.GameConfig, bool) {
	for _, rec := range records {
		if rec.State == nil {
			continue
		}
		policy := rec.Mode.Policy()
		return game.GameConfig{
			Width:     rec.State.Width,
			Height:    rec.State.Height,
			Mode:      rec.Mode.String(),
			TimeLimit: int(policy.TimeLimit.Seconds()),
			MinSpeed:  policy.MinSpeed,
			MaxSpeed:  policy.MaxSpeed,
		}, true
	}
	return game.GameConfig{}, false
}

// playbackDelay is one grid tick at the recorded speed
func playbackDelay(rec game.StepRecord) time.Duration {
	speed := rec.Stats.Speed
	if speed <= 0 {
		speed = config.ClassicInitialSpeed
	}
	return time.Second / time.Duration(speed)
}

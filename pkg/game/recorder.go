package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StepRecord is one recorded frame of a session
type StepRecord struct {
	SessionID string     `json:"session"`
	StepID    int        `json:"step"`
	Time      time.Time  `json:"time"`
	Mode      Mode       `json:"mode"`
	Status    string     `json:"status"`
	Stats     Stats      `json:"stats"`
	Head      Point      `json:"head"`
	Direction string     `json:"direction"`
	Length    int        `json:"length"`
	Events    []Event    `json:"events,omitempty"`
	State     *GameState `json:"state,omitempty"`
}

// NewStepRecord captures g after a tick that produced out
func NewStepRecord(sessionID string, g *Game, out TickOutcome) StepRecord {
	rec := StepRecord{
		SessionID: sessionID,
		StepID:    g.Ticks(),
		Time:      time.Now(),
		Mode:      g.Mode(),
		Status:    out.Status.String(),
		Stats:     g.Stats(),
		Direction: g.Direction().String(),
		Length:    len(g.snake),
		Events:    out.Events,
	}
	if len(g.snake) > 0 {
		rec.Head = g.snake[0]
	}
	state := g.GetGameStateSnapshot()
	rec.State = &state
	return rec
}

// GameRecorder handles asynchronous logging of game steps
type GameRecorder struct {
	path       string
	file       *os.File
	writer     *bufio.Writer
	recordChan chan StepRecord
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	dropped    int
}

// NewRecorder creates a new recorder that writes to dir.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(dir, sessionID string) (*GameRecorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}

	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("game_%s_%d.jsonl", sessionID, timestamp)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &GameRecorder{
		path:       path,
		file:       f,
		writer:     bufio.NewWriter(f),
		recordChan: make(chan StepRecord, 1000), // Buffer up to 1000 frames
	}

	// Start background writer
	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// Path returns the file being written
func (r *GameRecorder) Path() string {
	return r.path
}

// RecordStep queues a record to be written. Non-blocking (drops if full).
func (r *GameRecorder) RecordStep(rec StepRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.recordChan <- rec:
	default:
		// Channel full, drop frame to protect game loop performance
		r.dropped++
	}
}

// Dropped returns how many records were discarded because the queue was full
func (r *GameRecorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Close flushes the buffer and closes the file
func (r *GameRecorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.recordChan)
	r.mu.Unlock()

	r.wg.Wait() // Wait for writeLoop to finish
	return r.file.Close()
}

func (r *GameRecorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.recordChan {
		if err := encoder.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording frame: %v\n", err)
			continue
		}
	}
	r.writer.Flush()
}

// ReadRecords loads every record of a JSONL session file
func ReadRecords(path string) ([]StepRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	var records []StepRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var rec StepRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return records, fmt.Errorf("decode record %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("scan record file: %w", err)
	}
	return records, nil
}

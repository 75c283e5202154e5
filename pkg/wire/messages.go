// Package wire defines the websocket frames exchanged with browser clients.
package wire

import (
	"github.com/pervaizahmed26/snake-game/pkg/game"
)

// Server message types
const (
	TypeConfig = "config"
	TypeState  = "state"
	TypeScores = "scores"
	TypeRecord = "record"
	TypeError  = "error"
)

// Client actions
const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionLeft    = "left"
	ActionRight   = "right"
	ActionPause   = "pause"
	ActionRestart = "restart"
	ActionMode    = "mode"
	ActionScores  = "scores"
)

// ServerMessage is every frame sent to a client
type ServerMessage struct {
	Type      string           `json:"type"`
	SessionID string           `json:"sessionId,omitempty"`
	Config    *game.GameConfig `json:"config,omitempty"`
	State     *game.GameState  `json:"state,omitempty"`
	Events    []game.Event     `json:"events,omitempty"`
	Paused    bool             `json:"paused,omitempty"`
	Mode      string           `json:"mode,omitempty"`
	Scores    []int            `json:"scores,omitempty"`
	Record    *game.StepRecord `json:"record,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// ClientMessage is a command sent by a client
type ClientMessage struct {
	Action string `json:"action"`
	Mode   string `json:"mode,omitempty"`
}

// ConfigMessage announces the session and board settings
func ConfigMessage(sessionID string, cfg game.GameConfig) ServerMessage {
	return ServerMessage{Type: TypeConfig, SessionID: sessionID, Config: &cfg}
}

// StateMessage carries a snapshot and the events that led to it
func StateMessage(state game.GameState, events []game.Event, paused bool) ServerMessage {
	return ServerMessage{Type: TypeState, State: &state, Events: events, Paused: paused}
}

// ScoresMessage carries a mode's high-score list
func ScoresMessage(mode game.Mode, scores []int) ServerMessage {
	return ServerMessage{Type: TypeScores, Mode: mode.String(), Scores: scores}
}

// RecordMessage carries one recorded step for replay
func RecordMessage(rec game.StepRecord) ServerMessage {
	return ServerMessage{Type: TypeRecord, Record: &rec}
}

// ErrorMessage reports a rejected command
func ErrorMessage(err string) ServerMessage {
	return ServerMessage{Type: TypeError, Error: err}
}

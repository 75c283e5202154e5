package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/game"
	"github.com/pervaizahmed26/snake-game/pkg/scores"
	"github.com/pervaizahmed26/snake-game/pkg/wire"
)

// Session is one game driven by one websocket connection. Only the run
// loop touches the game; the reader hands actions over a channel.
type Session struct {
	id       string
	conn     *websocket.Conn
	codec    wire.Codec
	game     *game.Game
	store    scores.Store
	recorder *game.GameRecorder
	logger   *log.Logger

	started bool
	paused  bool
	saved   bool
	actions chan wire.ClientMessage
	done    chan struct{}
}

// NewSession creates a session and its game
func NewSession(conn *websocket.Conn, codec wire.Codec, settings config.Settings, mode game.Mode, store scores.Store, logger *log.Logger) *Session {
	s := &Session{
		id:      uuid.NewString(),
		conn:    conn,
		codec:   codec,
		store:   store,
		logger:  logger,
		actions: make(chan wire.ClientMessage, 16),
		done:    make(chan struct{}),
	}
	s.game = game.NewGame(game.Config{
		Width:  settings.Width,
		Height: settings.Height,
		Mode:   mode,
		Seed:   settings.EffectiveSeed(),
	})
	s.game.SetLogger(logger)

	if settings.Record {
		rec, err := game.NewRecorder(settings.RecordDir, s.id)
		if err != nil {
			logger.Printf("session %s: recording disabled: %v", s.id, err)
		} else {
			s.recorder = rec
		}
	}
	return s
}

// Run sends the initial frames, then drives the game until the client
// goes away
func (s *Session) Run() {
	defer s.close()
	defer close(s.done)

	if err := s.send(wire.ConfigMessage(s.id, s.game.GetGameConfig())); err != nil {
		return
	}
	if err := s.sendState(nil); err != nil {
		return
	}

	go s.readLoop()

	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case msg, ok := <-s.actions:
			if !ok {
				return
			}
			if err := s.handleAction(msg); err != nil {
				s.logger.Printf("session %s: write error: %v", s.id, err)
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if !s.started || s.paused || s.game.IsGameOver() {
				continue
			}

			out := s.game.Advance(dt)
			if out.Steps == 0 && len(out.Events) == 0 {
				continue
			}
			if s.recorder != nil {
				s.recorder.RecordStep(game.NewStepRecord(s.id, s.game, out))
			}
			if err := s.sendState(out.Events); err != nil {
				s.logger.Printf("session %s: write error: %v", s.id, err)
				return
			}
			if out.Status == game.StatusGameOver {
				if err := s.finishRound(); err != nil {
					return
				}
			}
		}
	}
}

func (s *Session) readLoop() {
	defer close(s.actions)
	for {
		var msg wire.ClientMessage
		if err := wire.Read(s.conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Printf("session %s: read error: %v", s.id, err)
			}
			return
		}
		select {
		case s.actions <- msg:
		case <-s.done:
			return
		}
	}
}

func (s *Session) handleAction(msg wire.ClientMessage) error {
	if dir, ok := game.ParseDirection(msg.Action); ok {
		if !s.game.IsGameOver() {
			s.started = true
			s.paused = false
			s.game.SetIntendedDirection(dir)
		}
		return nil
	}

	switch msg.Action {
	case wire.ActionPause:
		if s.started && !s.game.IsGameOver() {
			s.paused = !s.paused
		}
	case wire.ActionRestart:
		if s.game.IsGameOver() {
			s.reset()
		}
	case wire.ActionMode:
		mode, err := game.ParseMode(msg.Mode)
		if err != nil {
			return s.send(wire.ErrorMessage(err.Error()))
		}
		s.game.SetMode(mode)
		if !s.started || s.game.IsGameOver() {
			s.reset()
			if err := s.send(wire.ConfigMessage(s.id, s.game.GetGameConfig())); err != nil {
				return err
			}
		}
	case wire.ActionScores:
		return s.send(wire.ScoresMessage(s.game.Mode(), s.store.Load(s.game.Mode())))
	default:
		return s.send(wire.ErrorMessage("unknown action: " + msg.Action))
	}
	return s.sendState(nil)
}

func (s *Session) reset() {
	s.game.Reset()
	s.started = false
	s.paused = false
	s.saved = false
}

// finishRound saves the score once and pushes the updated list
func (s *Session) finishRound() error {
	if s.saved {
		return nil
	}
	s.saved = true
	mode := s.game.Mode()
	if err := s.store.Save(mode, s.game.Stats().Score); err != nil {
		s.logger.Printf("session %s: save score: %v", s.id, err)
	}
	return s.send(wire.ScoresMessage(mode, s.store.Load(mode)))
}

func (s *Session) sendState(events []game.Event) error {
	return s.send(wire.StateMessage(s.game.GetGameStateSnapshot(), events, s.paused))
}

func (s *Session) send(msg wire.ServerMessage) error {
	return wire.Write(s.conn, s.codec, msg)
}

func (s *Session) close() {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Close(); err != nil {
		s.logger.Printf("session %s: close recorder: %v", s.id, err)
	}
	if n := s.recorder.Dropped(); n > 0 {
		s.logger.Printf("session %s: %d records dropped", s.id, n)
	}
}

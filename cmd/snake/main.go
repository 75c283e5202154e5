package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/pervaizahmed26/snake-game/pkg/audio"
	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/fx"
	"github.com/pervaizahmed26/snake-game/pkg/game"
	"github.com/pervaizahmed26/snake-game/pkg/input"
	"github.com/pervaizahmed26/snake-game/pkg/renderer"
	"github.com/pervaizahmed26/snake-game/pkg/scores"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load settings: ", err)
	}

	// The terminal belongs to the renderer, so logs go to a file
	logger := log.New(io.Discard, "", 0)
	if err := os.MkdirAll(filepath.Dir(settings.DBPath), 0755); err == nil {
		if f, err := os.OpenFile(filepath.Join(filepath.Dir(settings.DBPath), "snake.log"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			defer f.Close()
			logger = log.New(f, "[snake] ", log.LstdFlags)
		}
	}

	mode, err := game.ParseMode(settings.Mode)
	if err != nil {
		logger.Printf("%v, using classic", err)
	}

	var store scores.Store
	if db, err := scores.OpenSQLite(settings.DBPath); err != nil {
		logger.Printf("high scores kept in memory: %v", err)
		store = scores.NewMemoryStore()
	} else {
		db.SetLogger(logger)
		defer db.Close()
		store = db
	}

	player := audio.NewPlayer(settings.AudioEnabled, settings.Volume)
	if settings.AudioEnabled {
		if err := player.Init(); err != nil {
			logger.Printf("audio disabled: %v", err)
		}
	}
	defer player.Close()

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	seed := settings.EffectiveSeed()
	g := game.NewGame(game.Config{Width: settings.Width, Height: settings.Height, Mode: mode, Seed: seed})
	g.SetLogger(logger)

	sessionID := uuid.NewString()
	var recorder *game.GameRecorder
	if settings.Record {
		if recorder, err = game.NewRecorder(settings.RecordDir, sessionID); err != nil {
			logger.Printf("recording disabled: %v", err)
			recorder = nil
		} else {
			defer recorder.Close()
		}
	}

	particles := fx.NewSystem(seed)
	locale := renderer.NewLocale(settings.LocaleDir, settings.Lang)
	render := renderer.NewTerminalRenderer(g.Width(), g.Height(), os.Stdout, locale)
	render.HideCursor()
	defer render.ShowCursor()

	hud := renderer.HUD{BestScore: best(store.Load(g.Mode()))}
	paused := false
	saved := false

	// finishRound persists the score once per round
	finishRound := func() {
		if saved {
			return
		}
		saved = true
		top := store.Load(g.Mode())
		hud.NewHighScore = scores.IsHighScore(top, g.Stats().Score)
		if err := store.Save(g.Mode(), g.Stats().Score); err != nil {
			logger.Printf("save score: %v", err)
		}
		hud.BestScore = best(store.Load(g.Mode()))
	}

	restart := func() {
		g.Reset()
		particles.Clear()
		paused = false
		saved = false
		hud.NewHighScore = false
		hud.BestScore = best(store.Load(g.Mode()))
	}

	inputChan := inputHandler.GetInputChan()

	// Game loop ticker
	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()
	last := time.Now()

	// Initial render
	render.Render(g.GetGameStateSnapshot(), nil, hud)

	// Main game loop
	for {
		select {
		case inputEvent := <-inputChan:
			if input.IsQuit(inputEvent) {
				render.ShowCursor()
				fmt.Println("\n  Thanks for playing! 👋")
				return
			}

			if input.IsRestart(inputEvent) && g.IsGameOver() {
				restart()
			}

			if m, ok := input.ParseMode(inputEvent); ok {
				g.SetMode(m)
				if g.IsGameOver() || g.Ticks() == 0 {
					restart()
				}
			}

			if input.IsPause(inputEvent) && !g.IsGameOver() {
				paused = !paused
			}

			if input.IsMute(inputEvent) {
				hud.Muted = !player.Toggle()
			}

			if dir, ok := input.ParseDirection(inputEvent); ok && !paused {
				g.SetIntendedDirection(dir)
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			if !paused && !g.IsGameOver() {
				out := g.Advance(dt)
				particles.Emit(out.Events)
				player.HandleEvents(out.Events)
				if recorder != nil && out.Steps > 0 {
					recorder.RecordStep(game.NewStepRecord(sessionID, g, out))
				}
				if out.Status == game.StatusGameOver {
					finishRound()
				}
			}
			if !paused {
				particles.Update(dt)
			}

			hud.Paused = paused
			render.Render(g.GetGameStateSnapshot(), particles.Cells(g.Width(), g.Height()), hud)
		}
	}
}

func best(top []int) int {
	if len(top) == 0 {
		return 0
	}
	return top[0]
}

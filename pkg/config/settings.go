package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Settings holds runtime options shared by the hosts
type Settings struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Mode         string  `json:"mode"`
	Seed         uint64  `json:"seed"` // 0 picks a time-based seed
	DBPath       string  `json:"db_path"`
	RecordDir    string  `json:"record_dir"`
	Record       bool    `json:"record"`
	Addr         string  `json:"addr"`
	StaticDir    string  `json:"static_dir"`
	AudioEnabled bool    `json:"audio_enabled"`
	Volume       float64 `json:"volume"` // 0.0 - 1.0
	Lang         string  `json:"lang"`
	LocaleDir    string  `json:"locale_dir"`
}

// DefaultSettings returns the built-in defaults
func DefaultSettings() Settings {
	return Settings{
		Width:        StandardWidth,
		Height:       StandardHeight,
		Mode:         "classic",
		DBPath:       "data/game.db",
		RecordDir:    "records",
		Addr:         ":8080",
		StaticDir:    "web/static",
		AudioEnabled: true,
		Volume:       0.6,
		Lang:         "en",
		LocaleDir:    "locales",
	}
}

// Load builds Settings from defaults, the JSON file named by SNAKE_CONFIG
// and SNAKE_* environment variables, in that order of precedence.
func Load() (Settings, error) {
	s := DefaultSettings()

	if path := os.Getenv("SNAKE_CONFIG"); path != "" {
		if err := s.mergeFile(path); err != nil {
			return s, err
		}
	}

	s.applyEnv()
	return s, nil
}

func (s *Settings) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	// Decode over a copy so a malformed file leaves the defaults intact
	merged := *s
	if err := json.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if merged.Width < 5 || merged.Height < 5 {
		merged.Width, merged.Height = s.Width, s.Height
	}
	*s = merged
	return nil
}

func (s *Settings) applyEnv() {
	if v, ok := envInt("SNAKE_WIDTH"); ok && v >= 5 {
		s.Width = v
	}
	if v, ok := envInt("SNAKE_HEIGHT"); ok && v >= 5 {
		s.Height = v
	}
	if mode := os.Getenv("SNAKE_MODE"); mode != "" {
		s.Mode = mode
	}
	if seed := os.Getenv("SNAKE_SEED"); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			s.Seed = val
		}
	}
	if path := os.Getenv("SNAKE_DB_PATH"); path != "" {
		s.DBPath = path
	}
	if dir := os.Getenv("SNAKE_RECORD_DIR"); dir != "" {
		s.RecordDir = dir
	}
	if rec := os.Getenv("SNAKE_RECORD"); rec != "" {
		if val, err := strconv.ParseBool(rec); err == nil {
			s.Record = val
		}
	}
	if addr := os.Getenv("SNAKE_ADDR"); addr != "" {
		s.Addr = addr
	}
	if dir := os.Getenv("SNAKE_STATIC_DIR"); dir != "" {
		s.StaticDir = dir
	}
	if enabled := os.Getenv("SNAKE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			s.AudioEnabled = val
		}
	}
	// Volume is given as 0-100
	if v, ok := envInt("SNAKE_VOLUME"); ok {
		s.Volume = float64(v) / 100.0
		if s.Volume < 0 {
			s.Volume = 0
		}
		if s.Volume > 1 {
			s.Volume = 1
		}
	}
	if lang := os.Getenv("SNAKE_LANG"); lang != "" {
		s.Lang = lang
	}
	if dir := os.Getenv("SNAKE_LOCALE_DIR"); dir != "" {
		s.LocaleDir = dir
	}
}

// EffectiveSeed returns the configured seed, or a time-based one when unset
func (s Settings) EffectiveSeed() uint64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return uint64(time.Now().UnixNano())
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return val, true
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/game"
	"github.com/pervaizahmed26/snake-game/pkg/scores"
)

// LegacyScore is one entry of an exported score list
type LegacyScore struct {
	Mode  string `json:"mode"`
	Score int    `json:"score"`
}

func main() {
	path := "scores.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// 1. Check if the export exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Fatalf("%s not found. Pass the exported score file as the first argument.", path)
	}

	settings, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load settings: ", err)
	}

	// 2. Open SQLite DB (creates the schema if the game has not run yet)
	store, err := scores.OpenSQLite(settings.DBPath)
	if err != nil {
		log.Fatal("Failed to open DB: ", err)
	}
	defer store.Close()

	// 3. Read and Parse JSON
	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}
	entries, err := parseLegacy(content)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}

	// 4. Import
	log.Printf("Found %d scores to import...", len(entries))
	count := 0
	for _, e := range entries {
		mode, err := game.ParseMode(e.Mode)
		if err != nil {
			log.Printf("Skipping score %d: %v", e.Score, err)
			continue
		}
		if err := store.Save(mode, e.Score); err != nil {
			log.Printf("Error importing score %d for %s: %v", e.Score, mode, err)
			continue
		}
		count++
	}

	fmt.Printf("✅ Import complete! Imported %d scores into %s\n", count, settings.DBPath)
}

// parseLegacy accepts either {"classic": [120, 80], ...} or
// [{"mode": "classic", "score": 120}, ...]
func parseLegacy(content []byte) ([]LegacyScore, error) {
	var byMode map[string][]int
	// Try parsing as map first (what the old scores file held)
	err := json.Unmarshal(content, &byMode)
	if err != nil {
		// If map failed, try array
		var list []LegacyScore
		if err2 := json.Unmarshal(content, &list); err2 != nil {
			return nil, err
		}
		return list, nil
	}

	names := make([]string, 0, len(byMode))
	for name := range byMode {
		names = append(names, name)
	}
	sort.Strings(names)

	var entries []LegacyScore
	for _, name := range names {
		for _, s := range byMode[name] {
			entries = append(entries, LegacyScore{Mode: name, Score: s})
		}
	}
	return entries, nil
}

package game

import (
	"errors"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"

	"github.com/pervaizahmed26/snake-game/pkg/config"
)

// ErrPlacementExhausted is returned when no free cell was found within the attempt cap
var ErrPlacementExhausted = errors.New("placement exhausted: no free cell found")

// Placer picks random grid cells
type Placer struct {
	width    int
	height   int
	attempts int
	rng      *rand.Rand
}

// NewPlacer creates a placer for a width x height grid seeded with seed
func NewPlacer(width, height int, seed uint64) *Placer {
	return &Placer{
		width:    width,
		height:   height,
		attempts: config.PlacementAttempts,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Rand exposes the placer's generator so every random draw of a round
// comes from one seeded stream
func (p *Placer) Rand() *rand.Rand {
	return p.rng
}

// InBounds reports whether pt lies on the grid
func (p *Placer) InBounds(pt Point) bool {
	return pt.X >= 0 && pt.X < p.width && pt.Y >= 0 && pt.Y < p.height
}

// PickFreeCell draws uniformly from the grid until a cell outside excluded
// is found, giving up after the attempt cap.
func (p *Placer) PickFreeCell(excluded mapset.Set[Point]) (Point, error) {
	if excluded.Size() >= p.width*p.height {
		return Point{}, ErrPlacementExhausted
	}
	for attempts := 0; attempts < p.attempts; attempts++ {
		pos := Point{
			X: p.rng.Intn(p.width),
			Y: p.rng.Intn(p.height),
		}
		if !excluded.Has(pos) {
			return pos, nil
		}
	}
	return Point{}, ErrPlacementExhausted
}

// exclusion builds an exclusion set from any number of point groups
func exclusion(groups ...[]Point) mapset.Set[Point] {
	set := mapset.New[Point]()
	for _, g := range groups {
		for _, p := range g {
			set.Put(p)
		}
	}
	return set
}

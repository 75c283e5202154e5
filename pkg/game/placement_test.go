package game

import (
	"errors"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

// TestPickFreeCellSkipsExcluded finds the only free cell
func TestPickFreeCellSkipsExcluded(t *testing.T) {
	p := NewPlacer(2, 2, 9)
	excluded := exclusion([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})

	got, err := p.PickFreeCell(excluded)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != (Point{X: 1, Y: 1}) {
		t.Errorf("Expected (1,1), got %v", got)
	}
}

// TestPickFreeCellExhausted reports a full grid instead of looping
func TestPickFreeCellExhausted(t *testing.T) {
	p := NewPlacer(2, 2, 9)
	full := exclusion([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}})

	if _, err := p.PickFreeCell(full); !errors.Is(err, ErrPlacementExhausted) {
		t.Errorf("Expected ErrPlacementExhausted, got %v", err)
	}

	// A zero attempt cap gives up even on an empty grid
	p.attempts = 0
	if _, err := p.PickFreeCell(mapset.New[Point]()); !errors.Is(err, ErrPlacementExhausted) {
		t.Errorf("Expected ErrPlacementExhausted, got %v", err)
	}
}

// TestPickFreeCellInBounds never returns a cell off the grid
func TestPickFreeCellInBounds(t *testing.T) {
	p := NewPlacer(7, 5, 3)
	for i := 0; i < 500; i++ {
		pt, err := p.PickFreeCell(mapset.New[Point]())
		if err != nil {
			t.Fatal(err)
		}
		if !p.InBounds(pt) {
			t.Fatalf("Cell %v is off the 7x5 grid", pt)
		}
	}
}

// TestPlacerSeeded repeats the same draws for the same seed
func TestPlacerSeeded(t *testing.T) {
	a, b := NewPlacer(25, 25, 77), NewPlacer(25, 25, 77)
	empty := mapset.New[Point]()
	for i := 0; i < 50; i++ {
		pa, _ := a.PickFreeCell(empty)
		pb, _ := b.PickFreeCell(empty)
		if pa != pb {
			t.Fatalf("draw %d differs: %v vs %v", i, pa, pb)
		}
	}
}

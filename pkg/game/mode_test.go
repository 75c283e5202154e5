package game

import (
	"testing"
	"time"
)

// TestParseMode accepts the names hosts and clients send
func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"classic", ModeClassic, false},
		{"", ModeClassic, false},
		{"survival", ModeSurvival, false},
		{"time_attack", ModeTimeAttack, false},
		{"time-attack", ModeTimeAttack, false},
		{"zen", ModeClassic, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestModePolicies checks the per-mode parameters
func TestModePolicies(t *testing.T) {
	classic := ModeClassic.Policy()
	if classic.InitialSpeed != 10 || classic.LevelThreshold != 50 || classic.HasTimer() {
		t.Errorf("Unexpected classic policy: %+v", classic)
	}
	if classic.ObstacleCount(500, 9) != 0 {
		t.Error("Classic never places obstacles")
	}

	survival := ModeSurvival.Policy()
	if survival.InitialSpeed != 12 || survival.LevelThreshold != 30 {
		t.Errorf("Unexpected survival policy: %+v", survival)
	}
	if n := survival.ObstacleCount(250, 3); n != 4+6+2 {
		t.Errorf("Expected 12 survival obstacles, got %d", n)
	}

	timed := ModeTimeAttack.Policy()
	if !timed.HasTimer() || timed.TimeLimit != 60*time.Second {
		t.Errorf("Time attack should run a 60s clock, got %v", timed.TimeLimit)
	}
	if n := timed.ObstacleCount(0, 4); n != 6 {
		t.Errorf("Expected 6 time attack obstacles, got %d", n)
	}

	for _, m := range AllModes() {
		p := m.Policy()
		if p.MinSpeed != 8 || p.MaxSpeed != 25 {
			t.Errorf("%v: unexpected speed range [%d,%d]", m, p.MinSpeed, p.MaxSpeed)
		}
	}
}

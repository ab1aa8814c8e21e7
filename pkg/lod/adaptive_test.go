package lod

import "testing"

func TestControllerBand(t *testing.T) {
	tests := []struct {
		name   string
		avgFPS float32
		want   int
	}{
		{"well below target", 40, -1},
		{"just below band", 47.9, -1},
		{"lower band edge", 48, 0},
		{"on target", 60, 0},
		{"upper band edge", 72, 0},
		{"above band", 72.1, 1},
		{"well above target", 120, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig() // target 60, band [48, 72]
			if got := NewController(cfg).Update(tt.avgFPS); got != tt.want {
				t.Errorf("Update(%v) = %d, want %d", tt.avgFPS, got, tt.want)
			}
		})
	}
}

func TestReduceQuality(t *testing.T) {
	cfg := DefaultConfig()
	c := NewController(cfg)

	c.Update(40)

	if cfg.MaxRenderDistance != 135 {
		t.Errorf("MaxRenderDistance = %v, want 135", cfg.MaxRenderDistance)
	}
	if cfg.Levels[0].MaxArtifacts != 90 {
		t.Errorf("level 0 MaxArtifacts = %d, want 90", cfg.Levels[0].MaxArtifacts)
	}
	if cfg.Levels[3].MaxArtifacts != 900 {
		t.Errorf("level 3 MaxArtifacts = %d, want 900", cfg.Levels[3].MaxArtifacts)
	}
}

func TestReduceQualityFloors(t *testing.T) {
	cfg := DefaultConfig()
	c := NewController(cfg)

	prev := cfg.MaxRenderDistance
	for i := 0; i < 100; i++ {
		c.ReduceQuality()
		if cfg.MaxRenderDistance > prev {
			t.Fatalf("MaxRenderDistance grew during reduction: %v > %v", cfg.MaxRenderDistance, prev)
		}
		prev = cfg.MaxRenderDistance
	}

	if cfg.MaxRenderDistance != MinRenderDistance {
		t.Errorf("MaxRenderDistance = %v, want floor %v", cfg.MaxRenderDistance, float32(MinRenderDistance))
	}
	for i, l := range cfg.Levels {
		if l.MaxArtifacts != MinLevelArtifacts {
			t.Errorf("level %d MaxArtifacts = %d, want floor %d", i, l.MaxArtifacts, MinLevelArtifacts)
		}
	}
}

func TestIncreaseQualityCeilings(t *testing.T) {
	cfg := DefaultConfig()
	c := NewController(cfg)

	for i := 0; i < 200; i++ {
		c.IncreaseQuality()
	}

	if cfg.MaxRenderDistance != MaxRenderDistanceCeiling {
		t.Errorf("MaxRenderDistance = %v, want ceiling %v", cfg.MaxRenderDistance, float32(MaxRenderDistanceCeiling))
	}
	for i, l := range cfg.Levels {
		if l.MaxArtifacts != MaxLevelArtifacts {
			t.Errorf("level %d MaxArtifacts = %d, want ceiling %d", i, l.MaxArtifacts, MaxLevelArtifacts)
		}
	}
}

func TestBudgetsRecoverFromFloor(t *testing.T) {
	cfg := DefaultConfig()
	c := NewController(cfg)

	for i := 0; i < 100; i++ {
		c.ReduceQuality()
	}
	// 10 * 1.05 truncated would stall at 10; rounding up recovers.
	c.IncreaseQuality()

	if cfg.Levels[0].MaxArtifacts != 11 {
		t.Errorf("level 0 MaxArtifacts = %d, want 11 after one growth step", cfg.Levels[0].MaxArtifacts)
	}
}

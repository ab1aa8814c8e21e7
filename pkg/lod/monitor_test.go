package lod

import (
	"testing"
)

func TestMonitorRecord(t *testing.T) {
	m := NewMonitor()
	m.Record(1.0 / 60.0)

	got := m.Metrics()
	if got.FPS < 59.9 || got.FPS > 60.1 {
		t.Errorf("FPS = %v, want ~60", got.FPS)
	}
	if got.FrameTime < 16.6 || got.FrameTime > 16.8 {
		t.Errorf("FrameTime = %v ms, want ~16.67", got.FrameTime)
	}
	if got.LastUpdate.IsZero() {
		t.Error("LastUpdate should be set")
	}
	if got.MemoryUsage == 0 {
		t.Error("MemoryUsage should be sampled")
	}
}

func TestMonitorIgnoresNonPositiveDelta(t *testing.T) {
	m := NewMonitor()
	m.Record(0)
	m.Record(-0.016)

	if m.SampleCount() != 0 {
		t.Errorf("SampleCount = %d, want 0", m.SampleCount())
	}
	if m.AverageFPS() != 0 {
		t.Errorf("AverageFPS = %v, want 0 with no samples", m.AverageFPS())
	}
}

func TestMonitorRingCap(t *testing.T) {
	m := NewMonitor()
	for i := 0; i < 200; i++ {
		m.Record(0.016)
	}

	if m.SampleCount() != historySize {
		t.Errorf("SampleCount = %d, want %d", m.SampleCount(), historySize)
	}
}

func TestMonitorAverageFPS(t *testing.T) {
	m := NewMonitor()
	m.Record(0.01) // 100 fps
	m.Record(0.02) // 50 fps

	if avg := m.AverageFPS(); avg < 74.9 || avg > 75.1 {
		t.Errorf("AverageFPS = %v, want ~75", avg)
	}
}

func TestMonitorOldSamplesAge(t *testing.T) {
	m := NewMonitor()
	// Fill the ring with 100 fps samples, then overwrite with 50 fps.
	for i := 0; i < historySize; i++ {
		m.Record(0.01)
	}
	for i := 0; i < historySize; i++ {
		m.Record(0.02)
	}

	if avg := m.AverageFPS(); avg < 49.9 || avg > 50.1 {
		t.Errorf("AverageFPS = %v, want ~50 after full overwrite", avg)
	}
}

func TestMonitorSetCounts(t *testing.T) {
	m := NewMonitor()
	m.SetCounts(12, 34)

	got := m.Metrics()
	if got.RenderCount != 12 || got.CulledCount != 34 {
		t.Errorf("counts = (%d, %d), want (12, 34)", got.RenderCount, got.CulledCount)
	}
}

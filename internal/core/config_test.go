package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 || cfg.TickRate != 60 {
		t.Errorf("DefaultConfig() = %+v, expected 80x24 at 60 ticks", cfg)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, expected 0 so the host picks one", cfg.Seed)
	}
}
